// Package game drives a falling-block session frame by frame: gravity,
// locking, line clears, hold and the player's moves, on top of the board,
// piece and bag packages.
package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/bag"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/shape"
)

// Session owns every piece of live game state. It is not safe for concurrent
// use; frontends call Step from a single goroutine and read Snapshot between
// steps.
type Session struct {
	cfg    Config
	logger *zap.Logger

	board  *board.Board
	bag    *bag.Bag
	active *piece.Piece
	hold   *piece.Piece

	frame     uint64
	stepDelay int
	hardDrop  bool
	swapped   bool
	gameOver  bool
	round     uuid.UUID

	scheduler   *Scheduler
	subscribers []func(Event)
}

// Option customises a Session at construction.
type Option func(*Session)

// WithLogger routes session diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRand replaces the bag's random source, overriding Config.Seed.
func WithRand(src rand.Source) Option {
	return func(s *Session) {
		s.bag = bag.New(shape.Catalog(), src)
	}
}

// WithBoard starts the session on an existing board.
func WithBoard(b *board.Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// NewSession validates cfg and starts a session with a freshly spawned piece.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:       cfg,
		logger:    zap.NewNop(),
		stepDelay: cfg.StepDelay,
		round:     uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.board == nil {
		s.board = board.New()
	}
	if s.bag == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		s.bag = bag.NewSeeded(seed)
	}

	s.logger = s.logger.With(zap.Stringer("session", s.round))

	s.scheduler = NewScheduler()
	s.scheduler.Register(&GravitySystem{Session: s})
	s.scheduler.Register(&InputSystem{Session: s})

	s.active = s.spawn()

	s.logger.Info("session started",
		zap.Int("step_delay", cfg.StepDelay),
		zap.Int("soft_drop_delay", cfg.SoftDropDelay),
		zap.Stringer("first", s.active.Kind()))

	return s, nil
}

// Subscribe registers fn to receive every event at the end of each frame.
func (s *Session) Subscribe(fn func(Event)) {
	s.subscribers = append(s.subscribers, fn)
}

// Step advances the simulation by one frame, applying inputs after gravity,
// and returns the events the frame produced.
func (s *Session) Step(inputs ...Input) []Event {
	frame := newUpdateFrame(s.frame, inputs)
	s.scheduler.Once(frame)
	s.frame++
	return frame.Commands.Flush(s.subscribers)
}

// spawn draws the next template and anchors it at the spawn point.
func (s *Session) spawn() *piece.Piece {
	t := s.bag.Draw()
	p, err := piece.New(t)
	if err != nil {
		s.logger.Error("malformed template", zap.Stringer("kind", t.Kind()), zap.Error(err))
	}
	p.MoveTo(s.cfg.SpawnX, s.cfg.SpawnY)
	return p
}

func (s *Session) event(kind EventKind, p *piece.Piece) Event {
	e := Event{Kind: kind, Frame: s.frame}
	if p != nil {
		e.Piece = p.Kind()
		e.X, e.Y = p.X, p.Y
	}
	return e
}

// Frame returns the number of frames stepped so far.
func (s *Session) Frame() uint64 { return s.frame }

// StepDelay returns the current frames-per-tick.
func (s *Session) StepDelay() int { return s.stepDelay }

// GameOver reports whether the board will be cleared on the next tick.
func (s *Session) GameOver() bool { return s.gameOver }

// HardDropping reports whether a hard drop is in progress.
func (s *Session) HardDropping() bool { return s.hardDrop }

// Swapped reports whether hold has been used since the last lock.
func (s *Session) Swapped() bool { return s.swapped }

// Round identifies the current game; it changes on every restart.
func (s *Session) Round() uuid.UUID { return s.round }

// Config returns the settings the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Stats returns per-system timings.
func (s *Session) Stats() *SchedulerStats { return s.scheduler.GetStats() }

// BagCursor returns how far into the current bag sequence the session is.
func (s *Session) BagCursor() int { return s.bag.Cursor() }

func (s *Session) String() string {
	return fmt.Sprintf("session %s frame=%d active=%s", s.round, s.frame, s.active)
}
