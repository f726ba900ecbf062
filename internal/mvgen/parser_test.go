package mvgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignorePositions drops source positions from AST comparisons; they are
// covered by the lexer position tests.
var ignorePositions = cmpopts.IgnoreTypes(Position{})

func parseSource(t *testing.T, src string) (*File, *Parser) {
	t.Helper()
	p, err := NewParser("test.mv", src)
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	f, err := p.ParseFile()
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	return f, p
}

// parseBody parses markup wrapped in a minimal view and returns the view body.
func parseBody(t *testing.T, markup string) (*ChildrenSpec, *Parser) {
	t.Helper()
	f, p := parseSource(t, "package test\nview V() {\n"+markup+"\n}")
	if len(f.Views) != 1 {
		t.Fatalf("expected 1 view, got %d", len(f.Views))
	}
	return f.Views[0].Body, p
}

// firstNode parses markup and returns its single root node.
func firstNode(t *testing.T, markup string) (Node, *Parser) {
	t.Helper()
	body, p := parseBody(t, markup)
	if len(body.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d: %v", len(body.Nodes), body.Nodes)
	}
	return body.Nodes[0], p
}

func requireNoErrors(t *testing.T, p *Parser) {
	t.Helper()
	if p.Errors().HasErrors() {
		t.Fatalf("unexpected diagnostics:\n%v", p.Errors())
	}
}

func TestParser_FileWrapper(t *testing.T) {
	src := `package pages

import (
	"strconv"
	alias "example.com/other"
)

view Counter(count int, label string) {
	div;
}

view Empty() {
	span;
}
`
	f, p := parseSource(t, src)
	requireNoErrors(t, p)

	if f.Package != "pages" {
		t.Errorf("package = %q, want %q", f.Package, "pages")
	}
	wantImports := []Import{
		{Path: "strconv"},
		{Alias: "alias", Path: "example.com/other"},
	}
	if diff := cmp.Diff(wantImports, f.Imports, ignorePositions); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
	if len(f.Views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(f.Views))
	}
	if f.Views[0].Name != "Counter" {
		t.Errorf("view name = %q, want %q", f.Views[0].Name, "Counter")
	}
	if f.Views[0].Params != "count int, label string" {
		t.Errorf("view params = %q", f.Views[0].Params)
	}
	if f.Views[1].Name != "Empty" || f.Views[1].Params != "" {
		t.Errorf("second view = %q(%q)", f.Views[1].Name, f.Views[1].Params)
	}
}

func TestParser_SingleImport(t *testing.T) {
	f, p := parseSource(t, "package x\nimport \"strconv\"\nview V() { div; }")
	requireNoErrors(t, p)
	if len(f.Imports) != 1 || f.Imports[0].Path != "strconv" {
		t.Errorf("imports = %+v", f.Imports)
	}
}

func TestParser_InvalidImportPath(t *testing.T) {
	_, p := parseSource(t, "package x\nimport \"bad path!\"\nview V() { div; }")
	if !p.Errors().HasErrors() {
		t.Fatal("expected a diagnostic for the invalid import path")
	}
	if !strings.Contains(p.Errors().Error(), "invalid import path") {
		t.Errorf("unexpected diagnostic: %v", p.Errors())
	}
}

func TestParser_MissingPackage(t *testing.T) {
	p, err := NewParser("test.mv", "view V() { div; }")
	if err != nil {
		t.Fatalf("NewParser() error: %v", err)
	}
	if _, err := p.ParseFile(); err == nil {
		t.Fatal("expected an error for the missing package clause")
	}
}

func TestParser_RecoversBetweenViews(t *testing.T) {
	// The first view is malformed; the second should still parse.
	src := `package x
view Broken { div; }
view Fine() { div; }
`
	f, p := parseSource(t, src)
	if !p.Errors().HasErrors() {
		t.Fatal("expected diagnostics from the malformed view")
	}
	if len(f.Views) != 1 || f.Views[0].Name != "Fine" {
		t.Fatalf("expected recovery to reach view Fine, got %+v", f.Views)
	}
}

func TestParser_Elements(t *testing.T) {
	type tc struct {
		markup   string
		expected Node
	}

	tests := map[string]tc{
		"bare element": {
			markup:   `div;`,
			expected: &Element{Tag: "div"},
		},
		"kebab element keeps hyphens": {
			markup:   `custom-element;`,
			expected: &Element{Tag: "custom-element"},
		},
		"selectors": {
			markup: `div.primary.wide #main;`,
			expected: &Element{
				Tag: "div",
				Selectors: []Selector{
					{Kind: SelectorClass, Name: "primary"},
					{Kind: SelectorClass, Name: "wide"},
					{Kind: SelectorID, Name: "main"},
				},
			},
		},
		"string child": {
			markup: `strong("hello")`,
			expected: &Element{
				Tag: "strong",
				Children: &ChildrenSpec{
					Nodes: []Node{&Text{Value: "hello"}},
				},
			},
		},
		"nested": {
			markup: `div.primary(strong("hello"))`,
			expected: &Element{
				Tag:       "div",
				Selectors: []Selector{{Kind: SelectorClass, Name: "primary"}},
				Children: &ChildrenSpec{
					Nodes: []Node{&Element{
						Tag: "strong",
						Children: &ChildrenSpec{
							Nodes: []Node{&Text{Value: "hello"}},
						},
					}},
				},
			},
		},
		"brace children": {
			markup: `div { span; }`,
			expected: &Element{
				Tag: "div",
				Children: &ChildrenSpec{
					Nodes: []Node{&Element{Tag: "span"}},
				},
			},
		},
		"block child": {
			markup: `p({name})`,
			expected: &Element{
				Tag: "p",
				Children: &ChildrenSpec{
					Nodes: []Node{&Block{Code: "name"}},
				},
			},
		},
		"bracketed child": {
			markup: `p([count.Get()])`,
			expected: &Element{
				Tag: "p",
				Children: &ChildrenSpec{
					Nodes: []Node{&Bracketed{Code: "count.Get()"}},
				},
			},
		},
		"format child": {
			markup: `p(f["%d", count])`,
			expected: &Element{
				Tag: "p",
				Children: &ChildrenSpec{
					Nodes: []Node{&Bracketed{Code: `"%d", count`, Format: true}},
				},
			},
		},
		"doctype": {
			markup:   `!DOCTYPE html;`,
			expected: &Doctype{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node, p := firstNode(t, tt.markup)
			requireNoErrors(t, p)
			if diff := cmp.Diff(tt.expected, node, ignorePositions); diff != "" {
				t.Errorf("node mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Components(t *testing.T) {
	type tc struct {
		markup   string
		expected Node
	}

	tests := map[string]tc{
		"simple": {
			markup:   `Card;`,
			expected: &Component{Path: []string{"Card"}},
		},
		"path": {
			markup:   `pages::Card;`,
			expected: &Component{Path: []string{"pages", "Card"}},
		},
		"generics": {
			markup:   `Generic<T>;`,
			expected: &Component{Path: []string{"Generic"}, Generics: "T"},
		},
		"explicit generics marker": {
			markup:   `Generic::<T>;`,
			expected: &Component{Path: []string{"Generic"}, Generics: "T"},
		},
		"nested generics": {
			markup:   `Table<map[string]List<int>>;`,
			expected: &Component{Path: []string{"Table"}, Generics: "map[string]List<int>"},
		},
		"path with generics": {
			markup:   `widgets::Select<string>;`,
			expected: &Component{Path: []string{"widgets", "Select"}, Generics: "string"},
		},
		"selectors on component": {
			markup: `Card.primary;`,
			expected: &Component{
				Path:      []string{"Card"},
				Selectors: []Selector{{Kind: SelectorClass, Name: "primary"}},
			},
		},
		"children": {
			markup: `Card("inner")`,
			expected: &Component{
				Path: []string{"Card"},
				Children: &ChildrenSpec{
					Nodes: []Node{&Text{Value: "inner"}},
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			node, p := firstNode(t, tt.markup)
			requireNoErrors(t, p)
			if diff := cmp.Diff(tt.expected, node, ignorePositions); diff != "" {
				t.Errorf("node mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_IDSelectorNeedsSpace(t *testing.T) {
	_, p := firstNode(t, `div#main;`)
	if !p.Errors().HasErrors() {
		t.Fatal("expected a diagnostic for the attached id selector")
	}
	if !strings.Contains(p.Errors().Error(), "preceded by a space") {
		t.Errorf("unexpected diagnostic: %v", p.Errors())
	}
}

func TestParser_LiteralChildren(t *testing.T) {
	type tc struct {
		markup  string
		wantErr bool
	}

	tests := map[string]tc{
		"string ok":        {markup: `p("0")`},
		"int rejected":     {markup: `p(0)`, wantErr: true},
		"float rejected":   {markup: `p(1.5)`, wantErr: true},
		"true rejected":    {markup: `p(true)`, wantErr: true},
		"false rejected":   {markup: `p(false)`, wantErr: true},
		"raw string ok":    {markup: "p(`raw`)"},
		"quoted bool ok":   {markup: `p("true")`},
		"quoted float ok":  {markup: `p("1.5")`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, p := firstNode(t, tt.markup)
			if tt.wantErr != p.Errors().HasErrors() {
				t.Errorf("HasErrors() = %v, want %v (%v)",
					p.Errors().HasErrors(), tt.wantErr, p.Errors())
			}
		})
	}
}
