package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/game"
)

// keyMapper turns terminal key events into session inputs. Terminals only
// report presses, so the soft-drop key toggles between press and release.
type keyMapper struct {
	softDrop bool
}

// translate returns the inputs for ev and whether the user asked to quit.
func (m *keyMapper) translate(ev *tcell.EventKey) ([]game.Input, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyLeft:
		return []game.Input{game.Pressed(game.MoveLeft)}, false
	case tcell.KeyRight:
		return []game.Input{game.Pressed(game.MoveRight)}, false
	case tcell.KeyDown:
		m.softDrop = !m.softDrop
		if m.softDrop {
			return []game.Input{game.Pressed(game.SoftDrop)}, false
		}
		return []game.Input{game.Released(game.SoftDrop)}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch ev.Rune() {
	case 'q':
		return nil, true
	case 'z', 'Z':
		return []game.Input{game.Pressed(game.RotateLeft)}, false
	case 'x', 'X':
		return []game.Input{game.Pressed(game.RotateRight)}, false
	case 'c', 'C':
		return []game.Input{game.Pressed(game.Hold)}, false
	case ' ':
		return []game.Input{game.Pressed(game.HardDrop)}, false
	}
	return nil, false
}
