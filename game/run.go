package game

import (
	"context"
	"time"
)

// Run steps the session every interval until ctx is cancelled. Inputs that
// arrive between frames are batched into the next Step; draw, when non-nil,
// receives a snapshot after every frame. Everything runs on the calling
// goroutine.
func (s *Session) Run(ctx context.Context, interval time.Duration, inputs <-chan Input, draw func(Snapshot)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pending []Input
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok := <-inputs:
			if !ok {
				inputs = nil
				continue
			}
			pending = append(pending, in)
		case <-ticker.C:
			s.Step(pending...)
			pending = pending[:0]
			if draw != nil {
				draw(s.Snapshot())
			}
		}
	}
}
