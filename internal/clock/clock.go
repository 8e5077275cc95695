// Package clock schedules one-shot callbacks at absolute times. The follow-up
// scheduler builds on it so tests can drive time by hand.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Handle cancels a scheduled callback. Cancel reports whether it stopped the
// callback before it ran; cancelling twice is safe.
type Handle interface {
	Cancel() bool
}

// Scheduler registers a callback to run at an absolute instant.
type Scheduler interface {
	ScheduleAt(at time.Time, fn func()) Handle
}

// System is the production Scheduler backed by time.AfterFunc.
type System struct{}

// ScheduleAt fires fn at the given instant. Instants in the past fire
// immediately.
func (System) ScheduleAt(at time.Time, fn func()) Handle {
	d := time.Until(at)
	if d < 0 {
		d = 0
	}
	return timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.timer.Stop()
}

// Manual is a test Scheduler that holds callbacks until Advance moves its
// notion of time past their fire instants. Callbacks run synchronously inside
// Advance, in fire-time order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	entries []*manualEntry
}

type manualEntry struct {
	at        time.Time
	fn        func()
	cancelled bool
	fired     bool
	owner     *Manual
}

// NewManual creates a manual scheduler anchored at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// ScheduleAt registers fn without running it, even if at is already due.
func (m *Manual) ScheduleAt(at time.Time, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &manualEntry{at: at, fn: fn, owner: m}
	m.entries = append(m.entries, e)
	return e
}

// Advance moves the clock to t and fires every pending callback due at or
// before it.
func (m *Manual) Advance(t time.Time) {
	m.mu.Lock()
	m.now = t
	var due []*manualEntry
	for _, e := range m.entries {
		if !e.cancelled && !e.fired && !e.at.After(t) {
			e.fired = true
			due = append(due, e)
		}
	}
	m.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, e := range due {
		e.fn()
	}
}

// Pending returns the number of callbacks that have neither fired nor been
// cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.cancelled && !e.fired {
			n++
		}
	}
	return n
}

func (e *manualEntry) Cancel() bool {
	e.owner.mu.Lock()
	defer e.owner.mu.Unlock()
	if e.fired || e.cancelled {
		return false
	}
	e.cancelled = true
	return true
}
