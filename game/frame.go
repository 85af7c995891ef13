package game

// UpdateFrame carries one frame's inputs and bookkeeping through the systems.
type UpdateFrame struct {
	// Number is the frame counter value this frame runs at.
	Number uint64
	// Inputs are the key transitions reported since the previous frame.
	Inputs []Input
	// Locked is set when gravity locked a piece this frame. Nothing else may
	// touch the active piece once it is set.
	Locked bool
	// Ticks counts the gravity ticks that fired this frame.
	Ticks    int
	Commands *Commands
}

func newUpdateFrame(number uint64, inputs []Input) *UpdateFrame {
	return &UpdateFrame{
		Number:   number,
		Inputs:   inputs,
		Commands: newCommands(),
	}
}

// System is one stage of the per-frame update.
type System interface {
	Execute(frame *UpdateFrame)
}
