package dom

import (
	"slices"
	"time"
)

// Timer is a deferred callback on the scene clock.
type Timer struct {
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
	fired   bool
}

// Stop prevents the timer from firing. It returns false if the timer has
// already fired or been stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// AfterFunc schedules fn to run once the scene clock has advanced by d.
// Timers fire during Update/Advance, ordered by deadline and then by
// scheduling order. A timer scheduled from inside another timer's callback
// fires on a later frame at the earliest. Non-positive delays fire on the
// next update.
func (s *Scene) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.timerSeq++
	t := &Timer{at: s.now + d, seq: s.timerSeq, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Now returns the scene clock: the total time advanced so far.
func (s *Scene) Now() time.Duration {
	return s.now
}

// PendingTimers returns the number of timers that have neither fired nor
// been stopped.
func (s *Scene) PendingTimers() int {
	count := 0
	for _, t := range s.timers {
		if !t.stopped {
			count++
		}
	}
	return count
}

// runTimers fires every timer whose deadline has passed and returns how
// many fired.
func (s *Scene) runTimers() int {
	if len(s.timers) == 0 {
		return 0
	}
	due := s.timerBuf[:0]
	pending := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case t.at <= s.now:
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	for i := len(pending); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = pending

	slices.SortFunc(due, func(a, b *Timer) int {
		if a.at != b.at {
			if a.at < b.at {
				return -1
			}
			return 1
		}
		if a.seq < b.seq {
			return -1
		}
		return 1
	})

	fired := 0
	for _, t := range due {
		if t.stopped {
			continue
		}
		t.fired = true
		fired++
		t.fn()
	}
	clear(due)
	s.timerBuf = due[:0]
	return fired
}
