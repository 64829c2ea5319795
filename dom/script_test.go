package dom

import (
	"strings"
	"testing"
	"time"
)

func TestLoadScript(t *testing.T) {
	data := []byte(`
steps:
  - action: click
    x: 10
    y: 20
  - action: wait
    frames: 3
  - action: advance
    for: 200ms
`)
	script, err := LoadScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(script.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(script.steps))
	}
	if script.steps[0].X != 10 || script.steps[0].Y != 20 {
		t.Errorf("click step = %+v", script.steps[0])
	}
	if script.steps[2].For != 200*time.Millisecond {
		t.Errorf("advance for = %v, want 200ms", script.steps[2].For)
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps:\n  - action: drag\n", `unknown action "drag"`},
		{"bad yaml", "steps: [", "parse input script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestScriptPlayback(t *testing.T) {
	s := NewScene(800, 600)
	target := box(s.Root(), "target", 0, 0, 100, 100)
	clicks := 0
	target.OnClick(func(ClickContext) { clicks++ })

	var clickedAt time.Duration
	target.OnClick(func(ClickContext) { clickedAt = s.Now() })

	script, err := LoadScript([]byte(`
steps:
  - action: click
    x: 50
    y: 50
  - action: advance
    for: 1s
  - action: click
    x: 500
    y: 500
`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)

	for i := 0; i < 20 && !script.Done(); i++ {
		s.Advance(10 * time.Millisecond)
	}
	if !script.Done() {
		t.Fatal("script did not finish")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if clickedAt >= time.Second {
		t.Errorf("first click at %v, want before the advance step", clickedAt)
	}
	if s.Now() < time.Second {
		t.Errorf("Now = %v, advance step should add 1s", s.Now())
	}
}

func TestScriptWait(t *testing.T) {
	s := NewScene(10, 10)
	script, err := LoadScript([]byte("steps:\n  - action: wait\n    frames: 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	s.SetScript(script)

	frames := 0
	for !script.Done() && frames < 10 {
		s.Advance(0)
		frames++
	}
	if frames != 4 {
		t.Errorf("finished after %d frames, want 4", frames)
	}
}
