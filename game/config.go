package game

import (
	"errors"
	"fmt"

	"github.com/plus3/blockfall/board"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config holds the session tunables. Timing is counted in frames, so the
// speed of play follows the rate at which the frontend calls Step.
type Config struct {
	// StepDelay is the number of frames between gravity ticks.
	StepDelay int
	// SoftDropDelay replaces StepDelay while soft drop is held.
	SoftDropDelay int
	// SpawnX and SpawnY anchor every new piece.
	SpawnX, SpawnY int
	// PreviewSize is how many upcoming templates Snapshot exposes.
	PreviewSize int
	// Seed drives the bag shuffle. Zero picks a random seed.
	Seed uint64
}

// DefaultConfig returns the settings used by the bundled frontends, tuned
// for 60 frames per second.
func DefaultConfig() Config {
	return Config{
		StepDelay:     48,
		SoftDropDelay: 6,
		SpawnX:        5,
		SpawnY:        0,
		PreviewSize:   6,
	}
}

// Validate checks the config against the board geometry.
func (c Config) Validate() error {
	switch {
	case c.StepDelay <= 0:
		return fmt.Errorf("%w: step delay %d must be positive", ErrInvalidConfig, c.StepDelay)
	case c.SoftDropDelay <= 0:
		return fmt.Errorf("%w: soft drop delay %d must be positive", ErrInvalidConfig, c.SoftDropDelay)
	case c.SpawnX < 0 || c.SpawnX >= board.Width:
		return fmt.Errorf("%w: spawn column %d outside [0,%d)", ErrInvalidConfig, c.SpawnX, board.Width)
	case c.SpawnY < 0 || c.SpawnY >= board.Height:
		return fmt.Errorf("%w: spawn row %d outside [0,%d)", ErrInvalidConfig, c.SpawnY, board.Height)
	case c.PreviewSize < 0:
		return fmt.Errorf("%w: preview size %d is negative", ErrInvalidConfig, c.PreviewSize)
	}
	return nil
}
