package dom

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// applyDeclaration updates the resolved presentation fields driven by a
// single style declaration. Length properties are resolved at layout time
// and are not handled here.
func applyDeclaration(n *Node, prop, value string) {
	switch prop {
	case "opacity":
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			n.Alpha = clamp01(f)
		}
	case "display":
		n.Visible = value != "none"
	case "z-index":
		if z, err := strconv.Atoi(value); err == nil {
			n.SetZIndex(z)
		} else if value == "auto" {
			n.SetZIndex(0)
		}
	case "background", "background-color":
		if c, ok := ParseColor(value); ok {
			n.Background = c
		}
	case "pointer-events":
		n.Interactable = value != "none"
	}
}

// ParseColor parses a CSS color: "transparent", #rgb, #rgba, #rrggbb,
// #rrggbbaa, rgb(), rgba() and CSS named colors.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return Color{}, false
	case s == "transparent":
		return ColorTransparent, true
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseFuncColor(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, true
	}
	return Color{}, false
}

func parseHexColor(h string) (Color, bool) {
	var digits [4]uint64
	switch len(h) {
	case 3, 4:
		for i := 0; i < len(h); i++ {
			v, err := strconv.ParseUint(h[i:i+1], 16, 8)
			if err != nil {
				return Color{}, false
			}
			digits[i] = v*16 + v
		}
		if len(h) == 3 {
			digits[3] = 255
		}
	case 6, 8:
		for i := 0; i < len(h)/2; i++ {
			v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
			if err != nil {
				return Color{}, false
			}
			digits[i] = v
		}
		if len(h) == 6 {
			digits[3] = 255
		}
	default:
		return Color{}, false
	}
	return Color{
		R: float64(digits[0]) / 255,
		G: float64(digits[1]) / 255,
		B: float64(digits[2]) / 255,
		A: float64(digits[3]) / 255,
	}, true
}

func parseFuncColor(s string) (Color, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Color{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, false
	}
	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i < 3 {
			if strings.HasSuffix(p, "%") {
				f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
				if err != nil {
					return Color{}, false
				}
				ch[i] = clamp01(f / 100)
				continue
			}
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return Color{}, false
			}
			ch[i] = clamp01(f / 255)
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Color{}, false
		}
		ch[3] = clamp01(f)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// parseLength resolves a CSS length against a reference size (used for
// percentages). Unitless numbers are treated as pixels. "auto" and
// unparseable values report false.
func parseLength(v string, ref float64) (float64, bool) {
	v = strings.TrimSpace(v)
	switch {
	case v == "" || v == "auto":
		return 0, false
	case strings.HasSuffix(v, "%"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, false
		}
		return ref * f / 100, true
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSuffix(v, "px")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// formatNumber renders a float the way CSS serializers do: shortest form,
// no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// layout resolves the node's Bounds from its length properties. Fixed
// nodes are positioned against the viewport, everything else against the
// parent's bounds. An element without a width fills its containing block;
// without a height it has none unless top and bottom are both set.
func layout(n *Node, containing, viewport Rect) {
	base := containing
	if n.Style["position"] == "fixed" {
		base = viewport
	}

	left, hasLeft := parseLength(n.Style["left"], base.Width)
	right, hasRight := parseLength(n.Style["right"], base.Width)
	top, hasTop := parseLength(n.Style["top"], base.Height)
	bottom, hasBottom := parseLength(n.Style["bottom"], base.Height)

	w, hasW := parseLength(n.Style["width"], base.Width)
	if !hasW {
		w = base.Width
		if hasLeft {
			w -= left
		}
		if hasRight {
			w -= right
		}
	}
	h, hasH := parseLength(n.Style["height"], base.Height)
	if !hasH {
		h = 0
		if hasTop && hasBottom {
			h = base.Height - top - bottom
		}
	}

	x := base.X + left
	if !hasLeft && hasRight {
		x = base.X + base.Width - right - w
	}
	y := base.Y + top
	if !hasTop && hasBottom {
		y = base.Y + base.Height - bottom - h
	}

	n.Bounds = Rect{X: x, Y: y, Width: max(w, 0), Height: max(h, 0)}
	for _, child := range n.children {
		layout(child, n.Bounds, viewport)
	}
}
