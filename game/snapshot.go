package game

import (
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
)

// PieceView is a detached copy of a piece for display.
type PieceView struct {
	Kind  shape.Kind
	X, Y  int
	Size  int
	Cells [][]shape.Cell
}

func viewOf(p *piece.Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Kind:  p.Kind(),
		X:     p.X,
		Y:     p.Y,
		Size:  p.Size(),
		Cells: p.Matrix().Rows(),
	}
}

// Snapshot is everything a presentation layer needs to draw one frame. It
// shares no memory with the session.
type Snapshot struct {
	Frame     uint64
	Board     [][]shape.Cell
	Active    PieceView
	Hold      *PieceView
	Preview   []shape.Template
	StepDelay int
	HardDrop  bool
	Swapped   bool
	GameOver  bool
}

// Snapshot copies the current state for display.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frame:     s.frame,
		Board:     s.board.Rows(),
		Active:    *viewOf(s.active),
		Hold:      viewOf(s.hold),
		Preview:   s.bag.Preview(s.cfg.PreviewSize),
		StepDelay: s.stepDelay,
		HardDrop:  s.hardDrop,
		Swapped:   s.swapped,
		GameOver:  s.gameOver,
	}
}

// Composite returns the board with the active piece drawn over it. Active
// cells off the board are skipped.
func (snap Snapshot) Composite() [][]shape.Cell {
	out := make([][]shape.Cell, len(snap.Board))
	for y, row := range snap.Board {
		out[y] = append([]shape.Cell(nil), row...)
	}

	for dy, row := range snap.Active.Cells {
		for dx, c := range row {
			x, y := snap.Active.X+dx, snap.Active.Y+dy
			if !c.Occupied() || y < 0 || y >= len(out) || x < 0 || x >= len(out[y]) {
				continue
			}
			out[y][x] = c
		}
	}
	return out
}
