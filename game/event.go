package game

import (
	"fmt"

	"github.com/plus3/blockfall/shape"
)

// EventKind classifies what happened during a frame.
type EventKind uint8

const (
	// Locked fires when the active piece is written into the board.
	Locked EventKind = iota
	// GameOver fires when a piece locks at or above the spawn row.
	GameOver
	// Restarted fires on the tick that clears the board after a game over.
	Restarted
	// Held fires when the active piece is parked or swapped.
	Held
	// Moved fires after a legal horizontal move.
	Moved
	// Rotated fires after a committed rotation.
	Rotated
	// Spawned fires when a fresh piece enters at the spawn anchor.
	Spawned
)

var eventNames = [...]string{
	Locked:    "locked",
	GameOver:  "game-over",
	Restarted: "restarted",
	Held:      "held",
	Moved:     "moved",
	Rotated:   "rotated",
	Spawned:   "spawned",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event describes a state change observed during one frame.
type Event struct {
	Kind  EventKind
	Frame uint64
	// Piece is the shape involved, when there is one.
	Piece shape.Kind
	// Lines is the number of rows removed by a lock.
	Lines int
	// X and Y are the anchor after the change.
	X, Y int
}

func (e Event) String() string {
	switch e.Kind {
	case Locked:
		return fmt.Sprintf("%s %s at (%d,%d) lines=%d", e.Kind, e.Piece, e.X, e.Y, e.Lines)
	case GameOver, Restarted:
		return e.Kind.String()
	default:
		return fmt.Sprintf("%s %s at (%d,%d)", e.Kind, e.Piece, e.X, e.Y)
	}
}
