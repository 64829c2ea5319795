package dom

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// --- Per-pointer state ---

type pointerState struct {
	down    bool
	lastX   float64
	lastY   float64
	hitNode *Node
	button  MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	click       []clickHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered callback, either scene-level
// or bound to a single node.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	node  *Node
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.node != nil {
		h.node.clicks = removeClickHandler(h.node.clicks, h.id)
		return
	}
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventClick:
		h.reg.click = removeClickHandler(h.reg.click, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeClickHandler(s []clickHandler, id uint32) []clickHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Node-level binding ---

// OnClick binds fn to clicks that land on this node itself. Clicks on
// descendants do not reach it: events are delivered to the hit node only.
// Handlers run in binding order.
func (n *Node) OnClick(fn func(ClickContext)) CallbackHandle {
	n.nextClick++
	id := n.nextClick
	n.clicks = append(n.clicks, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, node: n, event: EventClick}
}

// Off unbinds every handler bound to this node.
func (n *Node) Off() {
	clear(n.clicks)
	n.clicks = n.clicks[:0]
}

// NumHandlers returns the number of handlers bound to this node.
func (n *Node) NumHandlers() int {
	return len(n.clicks)
}

// --- Scene-level event registration ---

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerDown = append(s.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.pointerUp = append(s.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerUp}
}

// OnClick registers a scene-level callback for click events. Scene-level
// handlers run before the hit node's own handlers.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// --- Hit testing ---

// collectInteractable walks the tree in paint order (DFS, ZIndex-sorted),
// appending interactable nodes with area to buf. Skips hidden or
// non-interactable subtrees. Transparent nodes are still collected: an
// element at opacity 0 keeps receiving pointer input.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n != s.root && !n.Bounds.Empty() {
		buf = append(buf, n)
	}
	for _, child := range n.paintOrder() {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// HitTest returns the topmost interactable node at (x, y), or nil.
func (s *Scene) HitTest(x, y float64) *Node {
	s.reflow()
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse paint order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		if n.Bounds.Contains(x, y) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processDeviceInput reads the mouse through ebiten and feeds it to the
// pointer state machine.
func (s *Scene) processDeviceInput() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}

	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the press/release state machine for the pointer.
// A click fires when the release lands on the node that received the press.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	if !pressed && !ps.down {
		ps.lastX, ps.lastY = x, y
		return
	}

	target := s.HitTest(x, y)

	if pressed && !ps.down {
		ps.down = true
		ps.button = button
		ps.hitNode = target
		ps.lastX, ps.lastY = x, y
		s.firePointerDown(target, x, y, button)
		return
	}

	if !pressed && ps.down {
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, x, y, ps.button)
		}
		s.firePointerUp(target, x, y, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX, ps.lastY = x, y
}

// --- Event dispatch ---

func (s *Scene) firePointerDown(node *Node, x, y float64, button MouseButton) {
	ctx := PointerContext{Node: node, GlobalX: x, GlobalY: y, Button: button}
	if node != nil {
		ctx.LocalX, ctx.LocalY = x-node.Bounds.X, y-node.Bounds.Y
	}
	for _, h := range s.handlers.pointerDown {
		h.fn(ctx)
	}
}

func (s *Scene) firePointerUp(node *Node, x, y float64, button MouseButton) {
	ctx := PointerContext{Node: node, GlobalX: x, GlobalY: y, Button: button}
	if node != nil {
		ctx.LocalX, ctx.LocalY = x-node.Bounds.X, y-node.Bounds.Y
	}
	for _, h := range s.handlers.pointerUp {
		h.fn(ctx)
	}
}

func (s *Scene) fireClick(node *Node, x, y float64, button MouseButton) {
	ctx := ClickContext{Node: node, GlobalX: x, GlobalY: y, Button: button}
	if node != nil {
		ctx.LocalX, ctx.LocalY = x-node.Bounds.X, y-node.Bounds.Y
	}
	if s.debug {
		s.logger.Debug("click", zap.String("node", node.describe()),
			zap.Float64("x", x), zap.Float64("y", y))
	}
	// Scene-level handlers first.
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node == nil || len(node.clicks) == 0 {
		return
	}
	// Handlers may unbind (or rebind) while running; iterate a snapshot.
	snapshot := append([]clickHandler(nil), node.clicks...)
	for _, h := range snapshot {
		h.fn(ctx)
	}
}
