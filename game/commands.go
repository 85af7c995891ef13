package game

// Commands buffers events raised while systems run. The buffer is flushed
// once every system has executed, so subscribers only ever see state between
// frames.
type Commands struct {
	events []Event
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event for delivery at the end of the frame.
func (c *Commands) Emit(e Event) {
	c.events = append(c.events, e)
}

// Events returns the events queued so far.
func (c *Commands) Events() []Event {
	return c.events
}

// Flush hands queued events to every subscriber in order and resets the
// buffer. It returns the events that were delivered.
func (c *Commands) Flush(subscribers []func(Event)) []Event {
	delivered := c.events

	for _, e := range delivered {
		for _, fn := range subscribers {
			fn(e)
		}
	}

	c.events = nil
	return delivered
}
