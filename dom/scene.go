package dom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"
)

// Scene is the document: it owns the node tree, the viewport, the frame
// clock with its timers and fades, input state and the logger.
//
// A Scene is driven by its host program. Inside an ebiten game call Update
// and Draw from the game's own methods; headless code (tests, servers
// replaying scripts) calls Advance instead. A Scene is not safe for
// concurrent use.
type Scene struct {
	root          *Node
	width, height float64

	// ClearColor fills the screen before nodes are drawn. Transparent by
	// default, leaving whatever the host drew underneath.
	ClearColor Color

	// Easing shapes every fade started through Animate. Nil means
	// DefaultEasing.
	Easing ease.TweenFunc

	// Clock
	now      time.Duration
	frame    uint64
	timers   []*Timer
	timerSeq uint64
	timerBuf []*Timer
	fades    []*fade
	fadeBuf  []*fade

	// Input
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent
	script      *Script

	logger *zap.Logger
	debug  bool
}

// NewScene creates a scene with a viewport of the given size and a root
// "body" element that fills it.
func NewScene(width, height float64) *Scene {
	root := NewElement("body")
	root.Style["width"] = "100%"
	root.Style["height"] = "100%"
	s := &Scene{
		root:   root,
		width:  width,
		height: height,
		logger: zap.NewNop(),
	}
	s.reflow()
	return s
}

// Root returns the scene's root element.
func (s *Scene) Root() *Node {
	return s.root
}

// Size returns the viewport size.
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// SetSize resizes the viewport. Percentage and fixed layouts follow on the
// next reflow.
func (s *Scene) SetSize(width, height float64) {
	s.width, s.height = width, height
}

// Layout matches ebiten.Game's Layout: it adopts the outside size as the
// viewport and returns it unchanged.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Logger returns the scene's logger. Never nil.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetLogger replaces the scene's logger. A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are logged, and per-frame stats are
// logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = s.logger
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Update runs one ebiten tick: it advances the clock by one tick duration,
// then consumes one injected pointer event or, if none is queued, polls the
// mouse.
func (s *Scene) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	s.tick(tickDuration())
	if !s.processInjectedInput() {
		s.processDeviceInput()
	}
}

// Advance steps the scene by dt without polling devices: timers and fades
// advance, then at most one injected pointer event is consumed.
func (s *Scene) Advance(dt time.Duration) {
	if s.script != nil {
		s.script.step(s)
	}
	s.tick(dt)
	s.processInjectedInput()
}

// tick moves the clock forward, fires due timers and advances fades.
func (s *Scene) tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.frame++
	s.now += dt
	stats.timersFired = s.runTimers()
	stats.fadesActive = len(s.fades)
	s.updateFades(float32(dt.Seconds()))

	if s.debug {
		stats.elapsed = time.Since(t0)
		s.debugLog(stats)
	}
}

// reflow resolves layout for the whole tree against the viewport.
func (s *Scene) reflow() {
	viewport := Rect{Width: s.width, Height: s.height}
	layout(s.root, viewport, viewport)
}

// tickDuration returns the wall time of one ebiten tick.
func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
