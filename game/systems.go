package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/shape"
)

// GravitySystem fires gravity ticks: every StepDelay frames, or on every
// frame while a hard drop is in progress. A hard drop keeps ticking within the
// same frame until the piece locks.
type GravitySystem struct {
	Session *Session
}

func (g *GravitySystem) Execute(frame *UpdateFrame) {
	s := g.Session
	if frame.Number%uint64(s.stepDelay) != 0 && !s.hardDrop {
		return
	}

	for {
		frame.Ticks++
		if g.tick(frame) {
			frame.Locked = true
			return
		}
		if !s.hardDrop {
			return
		}
	}
}

// tick runs one gravity step and reports whether the active piece locked.
func (g *GravitySystem) tick(frame *UpdateFrame) bool {
	s := g.Session

	if s.gameOver {
		s.board.Clear()
		s.gameOver = false
		s.round = uuid.New()
		s.logger.Info("board cleared after game over", zap.Stringer("round", s.round))
		frame.Commands.Emit(s.event(Restarted, nil))
		return false
	}

	if !s.board.AtBottom(s.active) {
		s.active.Y++
		return false
	}

	g.lock(frame)
	return true
}

func (g *GravitySystem) lock(frame *UpdateFrame) {
	s := g.Session
	p := s.active

	if p.Y < 1 {
		s.gameOver = true
		s.logger.Info("game over",
			zap.Stringer("round", s.round),
			zap.Stringer("piece", p.Kind()),
			zap.Uint64("frame", frame.Number))
		frame.Commands.Emit(s.event(GameOver, p))
	} else {
		s.board.Place(p)
	}

	lines := s.board.ClearLines()
	if !s.gameOver {
		e := s.event(Locked, p)
		e.Lines = lines
		frame.Commands.Emit(e)
		s.logger.Debug("piece locked",
			zap.Stringer("piece", p.Kind()),
			zap.Int("x", p.X),
			zap.Int("y", p.Y),
			zap.Int("lines", lines))
	}

	s.active = s.spawn()
	frame.Commands.Emit(s.event(Spawned, s.active))
	s.hardDrop = false
	s.swapped = false
}

// InputSystem applies the frame's key transitions to the active piece. It
// does nothing on a frame where gravity locked a piece.
type InputSystem struct {
	Session *Session
}

func (in *InputSystem) Execute(frame *UpdateFrame) {
	if frame.Locked {
		return
	}

	for _, input := range frame.Inputs {
		in.apply(frame, input)
	}
}

func (in *InputSystem) apply(frame *UpdateFrame, input Input) {
	s := in.Session

	if input.Action == SoftDrop {
		if input.Edge == Press {
			s.stepDelay = s.cfg.SoftDropDelay
		} else {
			s.stepDelay = s.cfg.StepDelay
		}
		return
	}

	if input.Edge != Press {
		return
	}

	switch input.Action {
	case MoveLeft:
		in.shift(frame, -1)
	case MoveRight:
		in.shift(frame, 1)
	case RotateLeft:
		in.rotate(frame, shape.Left)
	case RotateRight:
		in.rotate(frame, shape.Right)
	case HardDrop:
		s.hardDrop = true
	case Hold:
		in.hold(frame)
	}
}

// shift moves the active piece one column unless it already touches that
// wall or the neighbouring cells are taken.
func (in *InputSystem) shift(frame *UpdateFrame, dx int) {
	s := in.Session
	walls := s.board.OnWalls(s.active)
	if (dx < 0 && walls.Left) || (dx > 0 && walls.Right) {
		return
	}
	if s.board.Collides(s.active, dx, 0) {
		return
	}

	s.active.X += dx
	frame.Commands.Emit(s.event(Moved, s.active))
}

// rotate tries the rotation on a scratch copy and commits it with the first
// kick that applies. All probes run on the rotated shape at the unmoved
// anchor: clear in place commits as is, a hit one column right shifts left,
// a hit one column left shifts right, a hit one row down lifts by one.
// Otherwise the rotation is dropped.
func (in *InputSystem) rotate(frame *UpdateFrame, d shape.Direction) {
	s := in.Session
	trial := s.active.Clone()
	trial.Rotate(d)

	dx, dy := 0, 0
	switch {
	case !s.board.Collides(trial, 0, 0):
	case s.board.Collides(trial, 1, 0):
		dx = -1
	case s.board.Collides(trial, -1, 0):
		dx = 1
	case s.board.Collides(trial, 0, 1):
		dy = -1
	default:
		return
	}

	s.active.X += dx
	s.active.Y += dy
	s.active.Rotate(d)
	frame.Commands.Emit(s.event(Rotated, s.active))
}

// hold parks the active piece, or swaps it with the parked one. It works once
// between locks.
func (in *InputSystem) hold(frame *UpdateFrame) {
	s := in.Session
	if s.swapped {
		return
	}

	if s.hold == nil {
		s.hold = s.active
		s.active = s.spawn()
	} else {
		s.hold.MoveTo(s.cfg.SpawnX, s.cfg.SpawnY)
		s.active.MoveTo(s.cfg.SpawnX, s.cfg.SpawnY)
		s.hold, s.active = s.active, s.hold
	}
	s.swapped = true

	s.logger.Debug("hold", zap.Stringer("held", s.hold.Kind()), zap.Stringer("active", s.active.Kind()))
	frame.Commands.Emit(s.event(Held, s.active))
}
