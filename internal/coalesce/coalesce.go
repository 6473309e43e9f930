// Package coalesce batches rapid mutations into a single recompute and
// notification pass. It is single-threaded: deferred work runs on the same
// cooperative loop that drives the owner, via an injected scheduler.
package coalesce

// State of the coalescer.
type State int

const (
	// Idle means no recompute is outstanding.
	Idle State = iota
	// BulkUpdating means a Begin/End window is open and recomputes are
	// suppressed until End.
	BulkUpdating
	// UpdateScheduled means a deferred recompute is pending.
	UpdateScheduled
)

// Scheduler queues fn to run at the next cooperative scheduling point on
// the owner's loop. It must not run fn concurrently with the caller.
type Scheduler func(fn func())

// Coalescer is the update state machine. Flush is the recompute the owner
// wants coalesced; the coalescer decides when it runs.
type Coalescer struct {
	flush    func()
	schedule Scheduler
	state    State
	depth    int
	gen      uint64 // invalidates previously scheduled callbacks
}

// New creates a coalescer around the given recompute. The scheduler may be
// nil, in which case deferred work stays pending until FlushPending.
func New(flush func()) *Coalescer {
	return &Coalescer{flush: flush}
}

// SetScheduler installs the deferred-callback scheduler.
func (c *Coalescer) SetScheduler(s Scheduler) {
	c.schedule = s
}

// State returns the current state.
func (c *Coalescer) State() State {
	return c.state
}

// Pending reports whether a deferred recompute is outstanding.
func (c *Coalescer) Pending() bool {
	return c.state == UpdateScheduled
}

// InBulk reports whether a Begin/End window is open.
func (c *Coalescer) InBulk() bool {
	return c.state == BulkUpdating
}

// Begin opens a bulk window. A pending deferred recompute is cancelled; the
// eventual End supersedes it. Begin nests.
func (c *Coalescer) Begin() {
	if c.state == UpdateScheduled {
		c.gen++
	}
	c.depth++
	c.state = BulkUpdating
}

// End closes a bulk window. Closing the outermost window synchronously runs
// one full recompute.
func (c *Coalescer) End() {
	if c.state != BulkUpdating {
		return
	}
	if c.depth > 0 {
		c.depth--
	}
	if c.depth > 0 {
		return
	}
	c.state = Idle
	c.flush()
}

// Mark records that a non-bulk mutation happened. In a bulk window it is a
// no-op (End recomputes); otherwise the first Mark schedules one deferred
// recompute and later Marks coalesce into it.
func (c *Coalescer) Mark() {
	switch c.state {
	case BulkUpdating, UpdateScheduled:
		return
	}
	c.state = UpdateScheduled
	if c.schedule == nil {
		return
	}
	gen := c.gen
	c.schedule(func() {
		c.run(gen)
	})
}

// run executes a deferred recompute if it has not been superseded.
func (c *Coalescer) run(gen uint64) {
	if c.state != UpdateScheduled || gen != c.gen {
		return
	}
	c.state = Idle
	c.flush()
}

// FlushPending runs an outstanding deferred recompute immediately. Callers
// use it to settle derived state before a query. Returns true when a
// recompute ran.
func (c *Coalescer) FlushPending() bool {
	if c.state != UpdateScheduled {
		return false
	}
	c.gen++
	c.state = Idle
	c.flush()
	return true
}
