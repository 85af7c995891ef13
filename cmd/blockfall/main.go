package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	"github.com/plus3/blockfall/palette"
)

const (
	ScreenWidth  = 600
	ScreenHeight = 560
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.StepDelay, "step-delay", cfg.StepDelay, "Frames between gravity ticks.")
	flag.IntVar(&cfg.SoftDropDelay, "soft-drop-delay", cfg.SoftDropDelay, "Frames between gravity ticks while soft drop is held.")
	flag.IntVar(&cfg.PreviewSize, "preview", cfg.PreviewSize, "Number of upcoming pieces to show.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Bag shuffle seed; 0 picks one at random.")
	debug := flag.Bool("debug", false, "Show the ImGui session inspector.")
	verbose := flag.Bool("verbose", false, "Log at debug level.")
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		logger.Fatal("Failed to start session", zap.Error(err))
	}

	pal := palette.Default()
	g := NewGame(session, pal, logger)

	if *debug {
		overlay := debugui.NewOverlay("blockfall", ScreenWidth+320, ScreenHeight+120)
		overlay.Add(
			debugui.NewSessionInspector(session, pal),
			debugui.NewPerformanceStats(session, 120),
		)
		g.overlay = overlay
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("blockfall")
	}
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("Game loop failed", zap.Error(err))
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
