package dom

import "strings"

// nodeSerialCounter is a plain counter; scenes are single-threaded.
var nodeSerialCounter uint32

func nextNodeSerial() uint32 {
	nodeSerialCounter++
	return nodeSerialCounter
}

// Node is the fundamental document element. A single flat struct is used for
// every element kind; the tag only matters to markup and queries.
type Node struct {
	// Identity
	ID     string // element id attribute, may be empty
	Tag    string
	Class  string
	serial uint32

	// Hierarchy
	Parent   *Node
	children []*Node

	// Style holds the inline declarations by lowercase property name.
	// Write through SetCSS so resolved fields stay in sync.
	Style map[string]string

	// Resolved presentation
	Bounds       Rect // scene-space layout, refreshed by the scene each frame
	Alpha        float64
	Visible      bool
	Interactable bool
	ZIndex       int
	Background   Color
	Text         string

	// Metadata
	UserData any

	// Per-node click handlers in registration order.
	clicks    []clickHandler
	nextClick uint32

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// NewElement creates a detached element with default presentation:
// fully opaque, visible and interactable.
func NewElement(tag string) *Node {
	return &Node{
		Tag:            strings.ToLower(tag),
		serial:         nextNodeSerial(),
		Style:          make(map[string]string),
		Alpha:          1,
		Visible:        true,
		Interactable:   true,
		childrenSorted: true,
	}
}

// Serial returns the node's process-unique serial number. It is zero after
// Dispose.
func (n *Node) Serial() uint32 {
	return n.serial
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dom: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("dom: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("dom: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// Find returns the first node in this subtree (including n) whose element id
// equals id, searching depth-first in document order.
func (n *Node) Find(id string) *Node {
	if id == "" {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Attached reports whether the node's ancestor chain ends at root.
func (n *Node) Attached(root *Node) bool {
	return isAncestor(root, n)
}

// --- Presentation ---

// Opacity returns the node's own opacity.
func (n *Node) Opacity() float64 {
	return n.Alpha
}

// SetOpacity sets the node's opacity, clamped to [0, 1], and mirrors it into
// the inline style.
func (n *Node) SetOpacity(a float64) {
	n.Alpha = clamp01(a)
	n.Style["opacity"] = formatNumber(n.Alpha)
}

// Show makes the node visible.
func (n *Node) Show() {
	n.Visible = true
	delete(n.Style, "display")
}

// Hide makes the node invisible. Hidden subtrees are neither drawn nor hit.
func (n *Node) Hide() {
	n.Visible = false
	n.Style["display"] = "none"
}

// IsShown reports whether the node itself is visible.
func (n *Node) IsShown() bool {
	return n.Visible
}

// CSS returns the inline value of a style property, or "" if unset.
func (n *Node) CSS(prop string) string {
	return n.Style[strings.ToLower(strings.TrimSpace(prop))]
}

// SetCSS sets an inline style property and updates the resolved fields it
// drives. Unknown properties are stored verbatim.
func (n *Node) SetCSS(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	value = strings.TrimSpace(value)
	n.Style[prop] = value
	applyDeclaration(n, prop, value)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.serial = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.UserData = nil
	n.clicks = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// paintOrder returns the children in ZIndex order, rebuilding the cached
// order when it is stale.
func (n *Node) paintOrder() []*Node {
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		return n.sortedChildren
	}
	return n.children
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	n.childrenSorted = true

	needsSort := false
	for i := 1; i < nc; i++ {
		if n.children[i].ZIndex < n.children[i-1].ZIndex {
			needsSort = true
			break
		}
	}
	if !needsSort {
		n.sortedChildren = nil
		return
	}

	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	} else {
		n.sortedChildren = n.sortedChildren[:nc]
	}
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		cur := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > cur.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = cur
	}
}
