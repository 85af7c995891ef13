package game_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plus3/blockfall/game"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*game.Config)
		ok     bool
	}{
		{"defaults", func(*game.Config) {}, true},
		{"zero step delay", func(c *game.Config) { c.StepDelay = 0 }, false},
		{"negative soft drop", func(c *game.Config) { c.SoftDropDelay = -1 }, false},
		{"spawn off the right", func(c *game.Config) { c.SpawnX = 10 }, false},
		{"spawn below the floor", func(c *game.Config) { c.SpawnY = 22 }, false},
		{"negative preview", func(c *game.Config) { c.PreviewSize = -1 }, false},
		{"no preview", func(c *game.Config) { c.PreviewSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, game.ErrInvalidConfig)
			}
		})
	}
}

func TestParseAction(t *testing.T) {
	for _, a := range game.Actions() {
		got, err := game.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := game.ParseAction("jump")
	assert.Error(t, err)
}

func TestSameSeedSameGame(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 1234
	cfg.StepDelay = 2

	a, err := game.NewSession(cfg)
	require.NoError(t, err)
	b, err := game.NewSession(cfg)
	require.NoError(t, err)

	script := []game.Input{
		game.Pressed(game.MoveLeft),
		game.Pressed(game.RotateRight),
		game.Pressed(game.HardDrop),
		game.Pressed(game.MoveRight),
		game.Pressed(game.Hold),
	}
	for frame := 0; frame < 400; frame++ {
		in := script[frame%len(script)]
		assert.Equal(t, a.Step(in), b.Step(in))
	}
	assert.Equal(t, a.Snapshot().Board, b.Snapshot().Board)
}

func TestLoggerRecordsGameOver(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := game.DefaultConfig()
	cfg.Seed = 5

	s, err := game.NewSession(cfg, game.WithLogger(zap.New(core)))
	require.NoError(t, err)

	for frame := 0; frame < 2000 && !s.GameOver(); frame++ {
		s.Step(game.Pressed(game.HardDrop))
	}
	require.True(t, s.GameOver(), "stacking in one column tops out")

	assert.Equal(t, 1, logs.FilterMessage("session started").Len())
	assert.Equal(t, 1, logs.FilterMessage("game over").Len())
	assert.NotZero(t, logs.FilterMessage("piece locked").Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	s, err := game.NewSession(game.DefaultConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inputs := make(chan game.Input, 1)
	inputs <- game.Pressed(game.MoveRight)

	frames := 0
	err = s.Run(ctx, time.Millisecond, inputs, func(snap game.Snapshot) {
		frames++
		if frames == 3 {
			cancel()
		}
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, frames, 3)
	assert.GreaterOrEqual(t, s.Frame(), uint64(3))
}

// ExampleSession drops three pieces straight down from the spawn point.
func ExampleSession() {
	cfg := game.DefaultConfig()
	cfg.Seed = 7

	s, err := game.NewSession(cfg)
	if err != nil {
		panic(err)
	}

	locks := 0
	for locks < 3 {
		for _, e := range s.Step(game.Pressed(game.HardDrop)) {
			if e.Kind == game.Locked {
				fmt.Println(e)
				locks++
			}
		}
	}
	// Output:
	// locked I at (5,18) lines=0
	// locked L at (5,16) lines=0
	// locked J at (5,14) lines=0
}
