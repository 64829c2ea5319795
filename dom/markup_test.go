package dom

import (
	"errors"
	"testing"
)

func TestInsertHTML(t *testing.T) {
	s := NewScene(800, 600)
	added, err := s.InsertHTML(s.Root(), `
		<div id="panel" class="card wide" style="background-color: #ff0000; opacity: 0.4; z-index: 3">
			<span>Hello</span>
		</div>
		<p id="note">Note</p>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 2 {
		t.Fatalf("added %d elements, want 2", len(added))
	}

	panel := added[0]
	if panel.ID != "panel" || panel.Tag != "div" || panel.Class != "card wide" {
		t.Errorf("panel = %s", panel.describe())
	}
	if panel.Opacity() != 0.4 {
		t.Errorf("panel opacity = %v, want 0.4", panel.Opacity())
	}
	if panel.ZIndex != 3 {
		t.Errorf("panel ZIndex = %d, want 3", panel.ZIndex)
	}
	if panel.Background != (Color{1, 0, 0, 1}) {
		t.Errorf("panel background = %+v", panel.Background)
	}
	if panel.NumChildren() != 1 || panel.ChildAt(0).Text != "Hello" {
		t.Error("span child missing")
	}
	if added[1].Text != "Note" {
		t.Errorf("note text = %q", added[1].Text)
	}
	if s.Root().NumChildren() != 2 {
		t.Errorf("root has %d children, want 2", s.Root().NumChildren())
	}
}

func TestInsertHTMLHiddenElement(t *testing.T) {
	s := NewScene(800, 600)
	added, err := s.InsertHTML(s.Root(), `<div id="m" style="display: none; opacity: 0.5"></div>`)
	if err != nil {
		t.Fatal(err)
	}
	n := added[0]
	if n.IsShown() {
		t.Error("display: none should start hidden")
	}
	n.Show()
	if !n.IsShown() || n.Opacity() != 0.5 {
		t.Error("Show should reveal at inline opacity")
	}
}

func TestInlineStyleLastDeclaration(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"no trailing semicolon", "left: 1px; height: 100px"},
		{"trailing semicolon", "left: 1px; height: 100px;"},
		{"trailing whitespace", "  left: 1px; height: 100px  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewElement("div")
			if err := applyInlineStyle(n, tt.style); err != nil {
				t.Fatal(err)
			}
			if n.Style["left"] != "1px" || n.Style["height"] != "100px" {
				t.Errorf("style = %v, want left 1px and height 100px", n.Style)
			}
		})
	}
}

func TestInsertHTMLStyleWithoutSemicolon(t *testing.T) {
	s := NewScene(800, 600)
	added, err := s.InsertHTML(s.Root(), `<div style="position: fixed; left: 10px; top: 20px; width: 30px; height: 40px; background: rgb(0, 0, 255)"></div>`)
	if err != nil {
		t.Fatal(err)
	}
	n := added[0]
	if s.HitTest(25, 55) != n {
		t.Error("hit below the top edge missed the element")
	}
	if n.Bounds != (Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("bounds = %+v", n.Bounds)
	}
	if n.Background != (Color{0, 0, 1, 1}) {
		t.Errorf("background = %+v, want blue", n.Background)
	}
}

func TestInsertHTMLNilContainer(t *testing.T) {
	s := NewScene(10, 10)
	_, err := s.InsertHTML(nil, `<div></div>`)
	if !errors.Is(err, ErrNilContainer) {
		t.Errorf("err = %v, want ErrNilContainer", err)
	}
}

func TestInsertHTMLDropsTopLevelText(t *testing.T) {
	s := NewScene(10, 10)
	added, err := s.InsertHTML(s.Root(), `just text`)
	if err != nil {
		t.Fatal(err)
	}
	if len(added) != 0 || s.Root().NumChildren() != 0 {
		t.Error("text-only markup should add nothing")
	}
}

func TestQuery(t *testing.T) {
	s := NewScene(800, 600)
	if _, err := s.InsertHTML(s.Root(), `
		<section id="main"><div class="overlay dim"></div></section>
		<div id="second" class="dim"></div>`); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		selector string
		wantID   string
		wantTag  string
	}{
		{"", "", "body"},
		{"body", "", "body"},
		{"html", "", "body"},
		{"#main", "main", "section"},
		{" #second ", "second", "div"},
		{".dim", "", "div"},
		{"section", "main", "section"},
		{"SECTION", "main", "section"},
	}
	for _, tt := range tests {
		n := s.Query(tt.selector)
		if n == nil {
			t.Errorf("Query(%q) = nil", tt.selector)
			continue
		}
		if n.ID != tt.wantID || n.Tag != tt.wantTag {
			t.Errorf("Query(%q) = %s", tt.selector, n.describe())
		}
	}

	// Document order: the nested .dim comes first.
	if got := s.Query(".dim"); got.Parent.ID != "main" {
		t.Errorf("Query(.dim) = %s, want the element inside #main", got.describe())
	}
	for _, sel := range []string{"#none", ".none", "article"} {
		if s.Query(sel) != nil {
			t.Errorf("Query(%q) should be nil", sel)
		}
	}
}

func TestElementByIDDetached(t *testing.T) {
	s := NewScene(10, 10)
	added, err := s.InsertHTML(s.Root(), `<div id="x"></div>`)
	if err != nil {
		t.Fatal(err)
	}
	if s.ElementByID("x") != added[0] {
		t.Fatal("ElementByID should find inserted element")
	}
	added[0].RemoveFromParent()
	if s.ElementByID("x") != nil {
		t.Error("detached element should not be found")
	}
}
