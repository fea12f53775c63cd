// Package timer schedules one-shot callbacks against game-loop time.
//
// Nothing runs on its own goroutine: callbacks fire from Tick, on whatever
// goroutine drives the loop.
package timer

import (
	"sort"
	"time"
)

// ID identifies a scheduled callback
type ID uint64

type entry struct {
	id  ID
	at  time.Duration
	fn  func()
	seq uint64
}

// Scheduler holds pending callbacks
type Scheduler struct {
	now     time.Duration
	nextID  ID
	seq     uint64
	pending []entry
}

// New creates an empty scheduler at time zero
func New() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once d from now
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	s.nextID++
	s.seq++
	s.pending = append(s.pending, entry{id: s.nextID, at: s.now + d, fn: fn, seq: s.seq})
	return s.nextID
}

// Cancel removes a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(id ID) bool {
	for i, e := range s.pending {
		if e.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops every pending callback
func (s *Scheduler) Clear() {
	s.pending = nil
}

// Pending returns the number of scheduled callbacks
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Now returns the scheduler's clock
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Tick advances the clock by dt and runs every callback that came due, earliest first.
// Callbacks scheduled from inside a callback wait for a later Tick.
func (s *Scheduler) Tick(dt time.Duration) {
	s.now += dt

	var due []entry
	kept := s.pending[:0]
	for _, e := range s.pending {
		if e.at <= s.now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, e := range due {
		e.fn()
	}
}
