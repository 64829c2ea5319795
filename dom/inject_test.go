package dom

import (
	"testing"
	"time"
)

func TestInjectClick(t *testing.T) {
	s := NewScene(800, 600)
	target := box(s.Root(), "target", 0, 0, 100, 100)

	var clicked bool
	s.OnClick(func(ctx ClickContext) {
		clicked = true
		if ctx.Node != target {
			t.Error("expected target node")
		}
	})

	s.InjectClick(50, 50)
	if s.PendingInput() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInput())
	}

	// Frame 1: press
	s.Advance(time.Millisecond)
	if s.PendingInput() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", s.PendingInput())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release → click fires
	s.Advance(time.Millisecond)
	if s.PendingInput() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", s.PendingInput())
	}
	if !clicked {
		t.Error("click should fire on release frame")
	}
}

func TestInjectPressRelease(t *testing.T) {
	s := NewScene(800, 600)
	box(s.Root(), "target", 0, 0, 100, 100)

	var events []string
	s.OnPointerDown(func(PointerContext) { events = append(events, "down") })
	s.OnPointerUp(func(PointerContext) { events = append(events, "up") })
	s.OnClick(func(ClickContext) { events = append(events, "click") })

	s.InjectPress(10, 10)
	s.InjectRelease(300, 300)
	s.Advance(0)
	s.Advance(0)

	if len(events) != 2 || events[0] != "down" || events[1] != "up" {
		t.Errorf("events = %v, want [down up]", events)
	}
}

func TestInjectAfterTimers(t *testing.T) {
	// Timers of a frame run before its input: a node hidden by a timer is
	// not clicked in the same frame.
	s := NewScene(800, 600)
	target := box(s.Root(), "target", 0, 0, 100, 100)
	clicks := 0
	target.OnClick(func(ClickContext) { clicks++ })

	s.InjectClick(50, 50)
	s.Advance(0) // press
	s.AfterFunc(0, target.Hide)
	s.Advance(0) // timer hides, then release misses
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}
