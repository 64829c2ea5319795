package dom

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string        `yaml:"action"`
	X      float64       `yaml:"x,omitempty"`
	Y      float64       `yaml:"y,omitempty"`
	Frames int           `yaml:"frames,omitempty"`
	For    time.Duration `yaml:"for,omitempty"`
}

// scriptFile is the top-level YAML structure for an input script.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script plays back synthetic input across frames: one step per frame,
// waiting for queued clicks to drain before moving on. Attach it to a
// Scene via SetScript.
//
//	steps:
//	  - action: click
//	    x: 100
//	    y: 200
//	  - action: wait
//	    frames: 3
//	  - action: advance
//	    for: 200ms
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("parse input script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "wait", "advance":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the scene. Its step method runs at the
// start of every Update/Advance. Pass nil to detach.
func (s *Scene) SetScript(script *Script) {
	s.script = script
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		s.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "advance":
		// Extra clock time on top of the frame's own delta.
		s.tick(st.For)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
