package engine

import (
	"sort"
	"time"
)

type scheduledTask struct {
	due time.Duration
	fn  func()
}

// Scheduler runs deferred callbacks against game time advanced by Tick
// Single-threaded: After and Tick must be called from the tick owner
// Callbacks fire in due order, FIFO among equal due times; a callback scheduled
// while firing runs no earlier than the next Tick
type Scheduler struct {
	now     time.Duration
	pending []scheduledTask // sorted by due, then insertion
}

// NewScheduler creates an empty scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make([]scheduledTask, 0, 4),
	}
}

// After queues fn to run once delay of game time has passed
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	task := scheduledTask{due: s.now + delay, fn: fn}

	// Insert after every task due at or before this one to keep FIFO order
	pos := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due > task.due
	})
	s.pending = append(s.pending, scheduledTask{})
	copy(s.pending[pos+1:], s.pending[pos:])
	s.pending[pos] = task
}

// Tick advances game time by dt and fires every task now due
// Returns the number of callbacks fired
func (s *Scheduler) Tick(dt time.Duration) int {
	s.now += dt

	n := 0
	for n < len(s.pending) && s.pending[n].due <= s.now {
		n++
	}
	if n == 0 {
		return 0
	}

	due := make([]scheduledTask, n)
	copy(due, s.pending[:n])
	s.pending = append(s.pending[:0], s.pending[n:]...)

	for _, task := range due {
		task.fn()
	}
	return n
}

// Now returns accumulated game time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks not yet fired
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

