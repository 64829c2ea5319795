package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilContainer is returned when markup is inserted into a nil node.
var ErrNilContainer = errors.New("dom: nil container")

// InsertHTML parses markup as an HTML body fragment and appends the
// resulting top-level elements to container, in document order. Inline
// style attributes are parsed into Node.Style and resolved immediately.
// Text is kept on the nearest element; top-level text is dropped.
func (s *Scene) InsertHTML(container *Node, markup string) ([]*Node, error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	frags, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	var added []*Node
	for _, f := range frags {
		if f.Type != html.ElementNode {
			continue
		}
		n, err := buildNode(f)
		if err != nil {
			return added, err
		}
		container.AddChild(n)
		added = append(added, n)
	}
	if s.debug {
		s.logger.Debug("markup inserted",
			zap.String("container", container.describe()),
			zap.Int("elements", len(added)))
	}
	return added, nil
}

// buildNode converts an element and its subtree into Nodes.
func buildNode(h *html.Node) (*Node, error) {
	n := NewElement(h.Data)
	for _, attr := range h.Attr {
		switch attr.Key {
		case "id":
			n.ID = attr.Val
		case "class":
			n.Class = attr.Val
		case "style":
			if err := applyInlineStyle(n, attr.Val); err != nil {
				return nil, fmt.Errorf("element %q: %w", n.ID, err)
			}
		}
	}

	var text strings.Builder
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			child, err := buildNode(c)
			if err != nil {
				return nil, err
			}
			n.AddChild(child)
		case html.TextNode:
			text.WriteString(c.Data)
		}
	}
	n.Text = strings.TrimSpace(text.String())
	return n, nil
}

// applyInlineStyle parses a style attribute and applies each declaration in
// source order. Later declarations win.
func applyInlineStyle(n *Node, style string) error {
	style = strings.TrimSpace(style)
	if style == "" {
		return nil
	}
	// The parser only ends a declaration at ';', so the last one of an
	// attribute written without a trailing semicolon would lose its value.
	if !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return fmt.Errorf("parse style: %w", err)
	}
	for _, d := range decls {
		n.SetCSS(d.Property, d.Value)
	}
	return nil
}

// ElementByID returns the first attached node whose element id is id, or nil.
func (s *Scene) ElementByID(id string) *Node {
	return s.root.Find(id)
}

// Query resolves a simple selector against the document: "" / "body" /
// "html" select the root, "#id" selects by id, ".name" selects the first
// element carrying that class, and a bare word selects the first element
// with that tag. Returns nil if nothing matches.
func (s *Scene) Query(selector string) *Node {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "" || selector == "body" || selector == "html":
		return s.root
	case strings.HasPrefix(selector, "#"):
		return s.ElementByID(selector[1:])
	case strings.HasPrefix(selector, "."):
		name := selector[1:]
		return findFirst(s.root, func(n *Node) bool {
			for _, c := range strings.Fields(n.Class) {
				if c == name {
					return true
				}
			}
			return false
		})
	default:
		tag := strings.ToLower(selector)
		return findFirst(s.root, func(n *Node) bool { return n.Tag == tag })
	}
}

// findFirst walks the subtree depth-first in document order.
func findFirst(n *Node, match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, child := range n.children {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}
