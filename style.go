package masker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// unitless lists the properties whose numeric values carry no unit.
var unitless = map[string]bool{
	"opacity":     true,
	"z-index":     true,
	"zoom":        true,
	"font-weight": true,
	"line-height": true,
	"flex":        true,
	"flex-grow":   true,
	"flex-shrink": true,
	"order":       true,
}

// StyleOf derives the normalized style of a mask from its configuration:
// property names are lowercased kebab-case, numbers become CSS values
// (pixels unless the property is unitless), the configured opacity is
// applied and the node starts hidden.
func StyleOf(cfg Config) map[string]string {
	style := make(map[string]string, len(cfg.Style)+2)
	for k, v := range cfg.Style {
		prop := kebab(k)
		if prop == "" || v == nil {
			continue
		}
		style[prop] = cssValue(prop, v)
	}
	style["opacity"] = strconv.FormatFloat(cfg.Opacity, 'f', -1, 64)
	style["display"] = "none"
	return style
}

// Stringify serializes a style mapping into an inline stylesheet,
// properties sorted by name: "a: 1; b: 2;".
func Stringify(style map[string]string) string {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(style[k])
		b.WriteByte(';')
	}
	return b.String()
}

// kebab converts backgroundColor or BackgroundColor to background-color.
// Already kebab-cased names pass through lowercased.
func kebab(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cssValue formats a configured style value.
func cssValue(prop string, v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	if n, ok := asNumber(v); ok {
		num := strconv.FormatFloat(n, 'f', -1, 64)
		if unitless[prop] || n == 0 {
			return num
		}
		return num + "px"
	}
	return fmt.Sprint(v)
}
