package engine

import (
	"context"
	"sync/atomic"
	"time"
)

const inboxSize = 64

// Loop drives a fixed-step update on the game clock and owns all game state
// Work from other goroutines reaches the loop through Post and runs between ticks
type Loop struct {
	clock    *PausableClock
	interval time.Duration
	update   func(dt time.Duration)
	draw     func()

	inbox     chan func()
	tickCount atomic.Uint64
}

// NewLoop creates a loop calling update every interval of game time
// draw is optional and runs after every tick and every posted command
func NewLoop(clock *PausableClock, interval time.Duration, update func(dt time.Duration), draw func()) *Loop {
	return &Loop{
		clock:    clock,
		interval: interval,
		update:   update,
		draw:     draw,
		inbox:    make(chan func(), inboxSize),
	}
}

// Post queues fn to run on the loop goroutine, returns false if the inbox is full
func (l *Loop) Post(fn func()) bool {
	select {
	case l.inbox <- fn:
		return true
	default:
		return false
	}
}

// TickCount returns the number of updates run so far
func (l *Loop) TickCount() uint64 {
	return l.tickCount.Load()
}

// Run blocks until ctx is cancelled, returning ctx.Err()
// Deadlines advance by interval for drift correction; falling more than two
// intervals behind resynchronizes instead of bursting catch-up ticks
func (l *Loop) Run(ctx context.Context) error {
	nextDeadline := l.clock.Now().Add(l.interval)

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case fn := <-l.inbox:
			fn()
			l.redraw()
			continue

		case <-timer.C:
		}

		var sleep time.Duration
		if l.clock.IsPaused() {
			// Longer sleep while paused, deadline restarts on resume
			sleep = l.interval * 2
			nextDeadline = l.clock.Now().Add(l.interval)
		} else {
			gameNow := l.clock.Now()
			if !gameNow.Before(nextDeadline) {
				l.update(l.interval)
				l.tickCount.Add(1)
				l.redraw()

				nextDeadline = nextDeadline.Add(l.interval)
				if gameNow.Sub(nextDeadline) > l.interval*2 {
					nextDeadline = gameNow.Add(l.interval)
				}
			}
			sleep = nextDeadline.Sub(l.clock.Now())
		}

		if sleep < time.Millisecond {
			sleep = time.Millisecond
		}
		timer.Reset(sleep)
	}
}

func (l *Loop) redraw() {
	if l.draw != nil {
		l.draw()
	}
}
