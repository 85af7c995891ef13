package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/game/debugui"
	"github.com/plus3/blockfall/palette"
)

type binding struct {
	key    ebiten.Key
	action game.Action
}

var bindings = []binding{
	{ebiten.KeyArrowDown, game.SoftDrop},
	{ebiten.KeySpace, game.HardDrop},
	{ebiten.KeyArrowLeft, game.MoveLeft},
	{ebiten.KeyArrowRight, game.MoveRight},
	{ebiten.KeyZ, game.RotateLeft},
	{ebiten.KeyX, game.RotateRight},
	{ebiten.KeyC, game.Hold},
}

// Game adapts a session to ebiten: one Update is one simulation frame.
type Game struct {
	session  *game.Session
	renderer *Renderer
	overlay  *debugui.Overlay
	logger   *zap.Logger

	inputs []game.Input
}

func NewGame(session *game.Session, pal *palette.Palette, logger *zap.Logger) *Game {
	return &Game{
		session:  session,
		renderer: NewRenderer(pal),
		logger:   logger,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("Quit requested", zap.Uint64("frame", g.session.Frame()))
		return ebiten.Termination
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	g.inputs = g.inputs[:0]
	if g.overlay == nil || !g.overlay.WantCaptureKeyboard() {
		g.inputs = pollInputs(g.inputs)
	}

	for _, e := range g.session.Step(g.inputs...) {
		if e.Kind == game.GameOver {
			g.logger.Info("Game over", zap.Stringer("round", g.session.Round()))
		}
	}
	return nil
}

// pollInputs appends one input per key transition seen this tick.
func pollInputs(dst []game.Input) []game.Input {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			dst = append(dst, game.Pressed(b.action))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			dst = append(dst, game.Released(b.action))
		}
	}
	return dst
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session.Snapshot())

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}
