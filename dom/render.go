package dom

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to paint backgrounds.
// Created on first Draw so that headless use never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{1, 1, 1, 1}.toRGBA())
	}
	return whitePixel
}

// Draw paints the scene onto screen: the clear color first, then every
// visible node with a background, parents before children and siblings in
// ZIndex order. A node's effective alpha is its own opacity multiplied by
// its ancestors'.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.reflow()
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.paint(screen, s.root, 1)
}

// paint draws n and its subtree with the inherited alpha.
func (s *Scene) paint(screen *ebiten.Image, n *Node, parentAlpha float64) {
	if !n.Visible {
		return
	}
	alpha := parentAlpha * n.Alpha
	if alpha <= 0 {
		// Children cannot be more opaque than their parent.
		return
	}
	if n.Background.A > 0 && !n.Bounds.Empty() {
		var op ebiten.DrawImageOptions
		op.GeoM.Scale(n.Bounds.Width, n.Bounds.Height)
		op.GeoM.Translate(n.Bounds.X, n.Bounds.Y)
		bg := n.Background
		op.ColorScale.Scale(float32(bg.R), float32(bg.G), float32(bg.B), 1)
		op.ColorScale.ScaleAlpha(float32(bg.A * alpha))
		screen.DrawImage(ensureWhitePixel(), &op)
	}
	for _, child := range n.paintOrder() {
		s.paint(screen, child, alpha)
	}
}
