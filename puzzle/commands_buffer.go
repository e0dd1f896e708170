package puzzle

// Commands buffers player intents and deferred calls gathered while systems
// run. They reach the puzzle at the end of the frame, in submission order.
type Commands struct {
	pending []Command
	defers  []func()
	results []error
}

func newCommands() *Commands {
	return &Commands{}
}

// Submit queues a command for the end of the frame.
func (c *Commands) Submit(cmd Command) {
	c.pending = append(c.pending, cmd)
}

// Defer queues a function to run after the queued commands.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.pending)
}

// Flush submits every queued command to p, runs the deferred functions and
// resets the buffer. It returns the result of each command in order; the
// slice is reused by the next Flush.
func (c *Commands) Flush(p *Puzzle) []error {
	c.results = c.results[:0]
	for _, cmd := range c.pending {
		c.results = append(c.results, p.Submit(cmd))
	}
	for _, fn := range c.defers {
		fn()
	}

	clear(c.pending)
	c.pending = c.pending[:0]
	clear(c.defers)
	c.defers = c.defers[:0]
	return c.results
}
