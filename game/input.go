package game

import "fmt"

// Action is one of the logical controls a frontend can report.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	RotateLeft
	RotateRight
	SoftDrop
	HardDrop
	Hold
)

var actionNames = [...]string{
	MoveLeft:    "move-left",
	MoveRight:   "move-right",
	RotateLeft:  "rotate-left",
	RotateRight: "rotate-right",
	SoftDrop:    "soft-drop",
	HardDrop:    "hard-drop",
	Hold:        "hold",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction maps a name such as "rotate-left" back to its Action.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("game: unknown action %q", name)
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Edge is the key transition that produced an input.
type Edge uint8

const (
	Press Edge = iota
	Release
)

func (e Edge) String() string {
	if e == Release {
		return "release"
	}
	return "press"
}

// Input is a single press or release of an action, delivered once per key
// transition.
type Input struct {
	Action Action
	Edge   Edge
}

// Pressed returns the press edge of a.
func Pressed(a Action) Input {
	return Input{Action: a, Edge: Press}
}

// Released returns the release edge of a.
func Released(a Action) Input {
	return Input{Action: a, Edge: Release}
}

func (in Input) String() string {
	return in.Action.String() + ":" + in.Edge.String()
}
