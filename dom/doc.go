// Package dom is a small retained-mode document for [Ebitengine] overlays.
//
// It provides the pieces a self-managing widget needs from a page: an
// element tree built from HTML markup, inline CSS resolved into layout and
// presentation, per-node click binding, opacity fades, deferred timers and a
// renderer. It is deliberately not a browser: only the properties listed
// below have any effect.
//
// # Scene
//
// A [Scene] owns the tree, the viewport and the frame clock. Drive it from an
// [ebiten.Game]:
//
//	type Game struct{ scene *dom.Scene }
//
//	func (g *Game) Update() error               { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)        { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int)  { return g.scene.Layout(w, h) }
//
// or step it headless with [Scene.Advance].
//
// # Markup and style
//
// [Scene.InsertHTML] parses an HTML fragment (via golang.org/x/net/html) and
// appends its elements to a container. The id, class and style attributes
// are kept; inline style is parsed with douceur. Resolved properties:
//
//   - position (fixed positions against the viewport), left, top, right,
//     bottom, width, height in px or %
//   - opacity, display: none, z-index, pointer-events: none
//   - background / background-color as hex, rgb(), rgba() or a CSS name
//
// # Time
//
// Timers ([Scene.AfterFunc]) and fades ([Scene.Animate], via [gween]) run
// on the scene clock. Nothing happens between frames, and nothing runs on
// another goroutine.
//
// # Input
//
// Clicks hit the topmost visible, interactable element under the pointer,
// including fully transparent ones. Events are not bubbled: a handler bound
// with [Node.OnClick] sees clicks on that element only. Tests and scripted
// playback inject clicks with [Scene.InjectClick] or a YAML [Script].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package dom
