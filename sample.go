package masker

import (
	"fmt"
	"strings"
	"text/template"
)

// DefaultSample is the markup of a mask: one empty element carrying the
// instance id and its inline style.
const DefaultSample = `<div id="{{.ID}}" class="masker" style="{{.Style}}"></div>`

// SampleData holds the fields a sample template may reference.
type SampleData struct {
	ID    string
	Style string
}

// Format fills a sample template. Templates use text/template syntax.
func Format(sample string, data SampleData) (string, error) {
	tmpl, err := template.New("sample").Option("missingkey=error").Parse(sample)
	if err != nil {
		return "", fmt.Errorf("parse sample: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("execute sample: %w", err)
	}
	return b.String(), nil
}
