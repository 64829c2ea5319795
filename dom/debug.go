package dom

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// frameStats holds per-frame timing and clock metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	elapsed     time.Duration
	timersFired int
	fadesActive int
}

// debugLog logs per-frame stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		zap.Uint64("frame", s.frame),
		zap.Duration("clock", s.now),
		zap.Duration("elapsed", stats.elapsed),
		zap.Int("timers_fired", stats.timersFired),
		zap.Int("timers_pending", len(s.timers)),
		zap.Int("fades", stats.fadesActive))
}

// debugLogger receives tree warnings from node operations, which have no
// scene pointer. Set by SetDebugMode.
var debugLogger = zap.NewNop()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode; in release mode
// callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("dom debug: %s on disposed node %s", op, n.describe()))
	}
}

// debugMaxTreeDepth is the depth past which AddChild logs a warning.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("node", n.describe()))
	}
}

// describe renders a node as a short selector-like string for logs and
// panic messages, e.g. div#mask.overlay.
func (n *Node) describe() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(n.Tag)
	if n.ID != "" {
		b.WriteByte('#')
		b.WriteString(n.ID)
	}
	for _, c := range strings.Fields(n.Class) {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if n.disposed {
		b.WriteString(" (disposed)")
	}
	return b.String()
}
