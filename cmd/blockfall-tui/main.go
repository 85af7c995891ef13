package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/palette"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.StepDelay, "step-delay", cfg.StepDelay, "Frames between gravity ticks.")
	flag.IntVar(&cfg.SoftDropDelay, "soft-drop-delay", cfg.SoftDropDelay, "Frames between gravity ticks while soft drop is on.")
	flag.IntVar(&cfg.PreviewSize, "preview", 3, "Number of upcoming pieces to show.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Bag shuffle seed; 0 picks one at random.")
	fps := flag.Int("fps", 60, "Simulation frames per second.")
	logPath := flag.String("log", "", "Write JSON logs to this file. Logging is off when empty.")
	flag.Parse()

	if err := run(cfg, *fps, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-tui: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to path, since stderr belongs to the terminal UI.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}

func run(cfg game.Config, fps int, logPath string) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	logger, err := newLogger(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()

	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inputs := make(chan game.Input, 64)
	go pollKeys(screen, inputs, cancel)

	v := newView(screen, palette.Default())
	err = session.Run(ctx, time.Second/time.Duration(fps), inputs, v.draw)
	logger.Info("Session ended", zap.Uint64("frame", session.Frame()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollKeys forwards key events until the user quits or the screen is
// finalized.
func pollKeys(screen tcell.Screen, inputs chan<- game.Input, cancel context.CancelFunc) {
	var keys keyMapper
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			in, quit := keys.translate(ev)
			if quit {
				cancel()
				return
			}
			for _, i := range in {
				select {
				case inputs <- i:
				default:
				}
			}
		}
	}
}
