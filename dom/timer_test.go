package dom

import (
	"testing"
	"time"
)

func TestAfterFuncFiresOnDeadline(t *testing.T) {
	s := NewScene(10, 10)
	fired := 0
	s.AfterFunc(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Fatal("fired before deadline")
	}
	if s.PendingTimers() != 1 {
		t.Errorf("PendingTimers = %d, want 1", s.PendingTimers())
	}
	s.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("fired %d times, want 1", fired)
	}
	if s.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", s.PendingTimers())
	}
	s.Advance(time.Second)
	if fired != 1 {
		t.Error("timer fired twice")
	}
}

func TestAfterFuncOrder(t *testing.T) {
	s := NewScene(10, 10)
	var order []string
	s.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	s.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })

	s.Advance(time.Second)
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("order = %v, want [a b c]", order)
	}
}

func TestAfterFuncNonPositiveDelay(t *testing.T) {
	s := NewScene(10, 10)
	fired := false
	s.AfterFunc(-time.Second, func() { fired = true })
	if fired {
		t.Fatal("timer must not fire synchronously")
	}
	s.Advance(0)
	if !fired {
		t.Error("zero-delay timer should fire on the next update")
	}
}

func TestAfterFuncScheduledFromTimer(t *testing.T) {
	s := NewScene(10, 10)
	inner := false
	s.AfterFunc(0, func() {
		s.AfterFunc(0, func() { inner = true })
	})
	s.Advance(0)
	if inner {
		t.Fatal("nested timer fired in the same frame")
	}
	s.Advance(0)
	if !inner {
		t.Error("nested timer should fire on the following frame")
	}
}

func TestTimerStop(t *testing.T) {
	s := NewScene(10, 10)
	fired := false
	tm := s.AfterFunc(10*time.Millisecond, func() { fired = true })
	if !tm.Stop() {
		t.Error("Stop should report a pending timer")
	}
	if tm.Stop() {
		t.Error("second Stop should report false")
	}
	if s.PendingTimers() != 0 {
		t.Errorf("PendingTimers = %d, want 0", s.PendingTimers())
	}
	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}

	done := s.AfterFunc(0, func() {})
	s.Advance(0)
	if done.Stop() {
		t.Error("Stop after firing should report false")
	}
	var nilTimer *Timer
	if nilTimer.Stop() {
		t.Error("nil timer Stop should report false")
	}
}

func TestNow(t *testing.T) {
	s := NewScene(10, 10)
	s.Advance(40 * time.Millisecond)
	s.Advance(-time.Second)
	s.Advance(10 * time.Millisecond)
	if s.Now() != 50*time.Millisecond {
		t.Errorf("Now = %v, want 50ms", s.Now())
	}
}
