package masker

// Event names a lifecycle notification.
type Event string

const (
	// EventRender fires once the node has been created. Results are ignored.
	EventRender Event = "render"
	// EventShow fires after the mask is made visible, unless quiet.
	EventShow Event = "show"
	// EventHide fires before the mask is hidden. A handler returning false
	// cancels the hide.
	EventHide Event = "hide"
	// EventRemove fires after the node has been detached.
	EventRemove Event = "remove"
)

// Handler receives lifecycle events. Its return value is collected by the
// firing operation; only EventHide inspects it, where the boolean false
// vetoes the transition. Return nil when there is nothing to say.
type Handler func(m *Masker) any

// emitter is a synchronous, ordered callback registry that hands the
// results of a fire back to the caller.
type emitter struct {
	handlers map[Event][]Handler
	disposed bool
}

func newEmitter() *emitter {
	return &emitter{handlers: make(map[Event][]Handler)}
}

// on appends h to the handlers of name. Ignored once disposed.
func (e *emitter) on(name Event, h Handler) {
	if e.disposed || h == nil {
		return
	}
	e.handlers[name] = append(e.handlers[name], h)
}

// fire calls the handlers of name in registration order and returns every
// result, nil included. A disposed emitter calls nothing and returns nil.
func (e *emitter) fire(name Event, target *Masker) []any {
	if e.disposed {
		return nil
	}
	hs := e.handlers[name]
	if len(hs) == 0 {
		return nil
	}
	// Handlers registered while firing wait for the next fire.
	results := make([]any, 0, len(hs))
	for _, h := range hs {
		results = append(results, h(target))
	}
	return results
}

// destroy drops every handler; later fires are no-ops.
func (e *emitter) destroy() {
	e.disposed = true
	clear(e.handlers)
}

// vetoed reports whether any result is the boolean false, regardless of
// position.
func vetoed(results []any) bool {
	for _, r := range results {
		if b, ok := r.(bool); ok && !b {
			return true
		}
	}
	return false
}
