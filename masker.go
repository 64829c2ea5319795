package masker

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phanxgames/masker/dom"
)

// clickThroughDelay is how long a dismissed volatile mask stays present but
// transparent, swallowing the pointer input that dismissed it.
const clickThroughDelay = 200 * time.Millisecond

// Host is the document a Masker renders into. *dom.Scene implements it.
type Host interface {
	// Query resolves a container selector, or returns nil.
	Query(selector string) *dom.Node
	// InsertHTML appends the elements of markup to container and returns
	// the ones it appended, also on error.
	InsertHTML(container *dom.Node, markup string) ([]*dom.Node, error)
	// Animate fades n to opacity `to` over d, replacing any running fade,
	// and calls done when finished.
	Animate(n *dom.Node, to float64, d time.Duration, done func())
	// AfterFunc runs fn once d has elapsed on the host clock.
	AfterFunc(d time.Duration, fn func()) *dom.Timer
	// Logger returns the host's logger.
	Logger() *zap.Logger
}

// state is the private record behind a Masker. It is dropped on Destroy.
type state struct {
	sample    string
	style     map[string]string
	container string
	opacity   float64
	duration  time.Duration
	fadeIn    time.Duration
	fadeOut   time.Duration
	volatile  bool

	node    *dom.Node
	emitter *emitter
	host    Host
	log     *zap.Logger
}

// Masker is an overlay that dims and blocks a region of its host. The zero
// value is not usable; construct one with New.
//
// A Masker is not safe for concurrent use. Like its host it belongs to the
// goroutine that drives the frame loop.
type Masker struct {
	id string
	st *state
}

// New constructs a Masker rendering into host. opts are decoded over the
// process-wide defaults (see Config for the recognized keys); nil opts use
// the defaults unchanged. Nothing is rendered until Render or Show.
func New(host Host, opts Options) (*Masker, error) {
	if host == nil {
		return nil, errors.New("masker: nil host")
	}
	cfg, err := configFor(opts)
	if err != nil {
		return nil, fmt.Errorf("masker: %w", err)
	}
	id := cfg.ID
	if id == "" {
		id = "masker-" + uuid.NewString()
	}
	log := host.Logger()
	if log == nil {
		log = zap.NewNop()
	}

	return &Masker{
		id: id,
		st: &state{
			sample:    cfg.Sample,
			style:     StyleOf(cfg),
			container: cfg.Container,
			opacity:   cfg.Opacity,
			duration:  cfg.Duration,
			fadeIn:    cfg.FadeIn,
			fadeOut:   cfg.FadeOut,
			volatile:  cfg.Volatile,
			emitter:   newEmitter(),
			host:      host,
			log:       log.Named("masker").With(zap.String("id", id)),
		},
	}, nil
}

// ID returns the identity of the mask, which is also the element id of its
// node. It survives Destroy.
func (m *Masker) ID() string {
	return m.id
}

// Node returns the rendered node, or nil before the first render, after
// Remove and after Destroy.
func (m *Masker) Node() *dom.Node {
	if m.st == nil {
		return nil
	}
	return m.st.node
}

// On registers h for event. Handlers run synchronously in registration
// order.
func (m *Masker) On(event Event, h Handler) error {
	if m.st == nil {
		return &StateError{Op: "on", ID: m.id}
	}
	m.st.emitter.on(event, h)
	return nil
}

// Render creates the node of the mask, hidden, and fires EventRender. Only
// the first call has an effect; later calls return nil until Remove.
func (m *Masker) Render() error {
	st := m.st
	if st == nil {
		return &StateError{Op: "render", ID: m.id}
	}
	if st.node != nil {
		return nil
	}

	markup, err := Format(st.sample, SampleData{ID: m.id, Style: Stringify(st.style)})
	if err != nil {
		return fmt.Errorf("masker %s: render: %w", m.id, err)
	}
	container := st.host.Query(st.container)
	if container == nil {
		return fmt.Errorf("masker %s: render %q: %w", m.id, st.container, ErrContainerNotFound)
	}
	added, err := st.host.InsertHTML(container, markup)
	if err != nil {
		detach(added)
		return fmt.Errorf("masker %s: render: %w", m.id, err)
	}
	// Only the inserted markup is searched; another element may carry the
	// same id.
	var node *dom.Node
	for _, n := range added {
		if node = n.Find(m.id); node != nil {
			break
		}
	}
	if node == nil {
		detach(added)
		return fmt.Errorf("masker %s: render: %w", m.id, ErrNodeNotFound)
	}
	st.node = node

	if st.volatile {
		node.OnClick(func(dom.ClickContext) { m.dismiss() })
	}
	st.log.Debug("rendered", zap.String("container", st.container), zap.Bool("volatile", st.volatile))
	st.emitter.fire(EventRender, m)
	return nil
}

// detach removes nodes left behind by a failed render.
func detach(nodes []*dom.Node) {
	for _, n := range nodes {
		n.RemoveFromParent()
	}
}

// Show makes the mask visible, rendering it first if needed, and fires
// EventShow unless Quiet is given. The fade-in does not block: it runs on
// the host clock.
func (m *Masker) Show(opts ...ShowOption) error {
	st := m.st
	if st == nil {
		return &StateError{Op: "show", ID: m.id}
	}
	cfg := showConfig{duration: st.duration, fadeIn: st.fadeIn}
	for _, opt := range opts {
		opt(&cfg)
	}

	if st.node == nil {
		if err := m.Render(); err != nil {
			return err
		}
	}
	node := st.node
	if node == nil {
		// A render handler removed the mask again.
		return nil
	}

	if cfg.duration > 0 {
		log := st.log
		st.host.AfterFunc(cfg.duration, func() {
			// The timer is never cancelled. After Destroy the hide fails.
			if _, err := m.Hide(); err != nil {
				log.Debug("auto-hide", zap.Error(err))
			}
		})
	}

	if cfg.fadeIn > 0 {
		node.SetOpacity(0)
		node.Show()
		st.host.Animate(node, st.opacity, cfg.fadeIn, nil)
	} else {
		st.host.Animate(node, st.opacity, 0, nil)
		node.Show()
	}

	st.log.Debug("shown",
		zap.Duration("fade_in", cfg.fadeIn),
		zap.Duration("duration", cfg.duration),
		zap.Bool("quiet", cfg.quiet))
	if !cfg.quiet {
		st.emitter.fire(EventShow, m)
	}
	return nil
}

// Hide fires EventHide and, unless a handler returned false, hides the
// mask. It reports false when the hide was vetoed. Hiding a mask that has
// no node does nothing and fires nothing.
//
// With a fade-out the node fades to transparent, then gets its configured
// opacity back and is hidden. Without one, a running fade stops and the node
// is hidden at its configured opacity.
func (m *Masker) Hide(opts ...HideOption) (bool, error) {
	st := m.st
	if st == nil {
		return false, &StateError{Op: "hide", ID: m.id}
	}
	if st.node == nil {
		return true, nil
	}
	cfg := hideConfig{fadeOut: st.fadeOut}
	for _, opt := range opts {
		opt(&cfg)
	}

	if vetoed(st.emitter.fire(EventHide, m)) {
		st.log.Debug("hide vetoed")
		return false, nil
	}

	node := st.node
	if node == nil {
		// A handler removed the mask.
		return true, nil
	}
	if cfg.fadeOut > 0 {
		opacity := st.opacity
		st.host.Animate(node, 0, cfg.fadeOut, func() {
			node.SetOpacity(opacity)
			node.Hide()
		})
	} else {
		st.host.Animate(node, st.opacity, 0, nil)
		node.Hide()
	}
	st.log.Debug("hidden", zap.Duration("fade_out", cfg.fadeOut))
	return true, nil
}

// Remove detaches the node, unbinds its handlers and fires EventRemove.
// It does nothing if the mask has no node.
func (m *Masker) Remove() error {
	st := m.st
	if st == nil {
		return &StateError{Op: "remove", ID: m.id}
	}
	if st.node == nil {
		return nil
	}
	node := st.node
	node.RemoveFromParent()
	node.Off()
	st.node = nil

	st.log.Debug("removed")
	st.emitter.fire(EventRemove, m)
	return nil
}

// Destroy removes the mask and releases its state. Every later call on m
// returns an error matching ErrInvalidState. Timers already scheduled by
// Show still fire.
func (m *Masker) Destroy() error {
	st := m.st
	if st == nil {
		return &StateError{Op: "destroy", ID: m.id}
	}
	if err := m.Remove(); err != nil {
		return err
	}
	st.emitter.destroy()
	st.log.Debug("destroyed")
	m.st = nil
	return nil
}

// dismiss handles a click on a volatile mask. After a successful hide the
// mask is shown again fully transparent so the same click cannot reach
// whatever it uncovered, then hidden for good once clickThroughDelay has
// passed.
func (m *Masker) dismiss() {
	ok, err := m.Hide()
	if err != nil || !ok {
		return
	}
	st := m.st
	if st == nil || st.node == nil {
		// A hide handler removed or destroyed the mask.
		return
	}
	node := st.node
	opacity := node.Opacity()

	if err := m.Show(Quiet(), WithDuration(0), WithFadeIn(0)); err != nil {
		st.log.Debug("dismiss", zap.Error(err))
		return
	}
	node.SetOpacity(0)

	st.host.AfterFunc(clickThroughDelay, func() {
		node.SetOpacity(opacity)
		node.Hide()
	})
}
