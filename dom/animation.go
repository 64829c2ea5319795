package dom

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultEasing matches the "swing" curve browsers' animation helpers use
// by default.
var DefaultEasing ease.TweenFunc = ease.InOutSine

// fade animates a single node's opacity toward a target value.
type fade struct {
	node    *Node
	tween   *gween.Tween
	done    func()
	stopped bool
}

// Animate fades n's opacity from its current value to `to` over d on the
// scene clock and calls done (if non-nil) once the target is reached.
// Starting a fade on a node that is already fading replaces the running
// fade; the replaced fade's done callback never fires. A non-positive
// duration applies the target immediately and calls done synchronously.
//
// There is no global animation manager beyond the scene: fades advance only
// when the scene is updated.
func (s *Scene) Animate(n *Node, to float64, d time.Duration, done func()) {
	if n == nil {
		return
	}
	s.StopAnimation(n)
	if d <= 0 {
		n.SetOpacity(to)
		if done != nil {
			done()
		}
		return
	}
	easing := s.Easing
	if easing == nil {
		easing = DefaultEasing
	}
	s.fades = append(s.fades, &fade{
		node:  n,
		tween: gween.New(float32(n.Alpha), float32(clamp01(to)), float32(d.Seconds()), easing),
		done:  done,
	})
}

// StopAnimation halts any fade running on n, leaving its opacity where it
// is. The fade's completion callback is not called. Returns true if a fade
// was running.
func (s *Scene) StopAnimation(n *Node) bool {
	for _, f := range s.fades {
		if f.node == n && !f.stopped {
			f.stopped = true
			return true
		}
	}
	return false
}

// Animating reports whether a fade is running on n.
func (s *Scene) Animating(n *Node) bool {
	for _, f := range s.fades {
		if f.node == n && !f.stopped {
			return true
		}
	}
	return false
}

// updateFades advances every running fade by dt seconds and writes the
// interpolated opacity to its node. Completion callbacks run after the final
// value is written; fades they start are first advanced on the next frame.
func (s *Scene) updateFades(dt float32) {
	if len(s.fades) == 0 {
		return
	}
	batch := append(s.fadeBuf[:0], s.fades...)
	for _, f := range batch {
		if f.stopped {
			continue
		}
		val, finished := f.tween.Update(dt)
		f.node.SetOpacity(float64(val))
		if finished {
			f.stopped = true
			if f.done != nil {
				f.done()
			}
		}
	}
	s.fadeBuf = batch[:0]

	live := s.fades[:0]
	for _, f := range s.fades {
		if !f.stopped {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(s.fades); i++ {
		s.fades[i] = nil
	}
	s.fades = live
}
