package view_test

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/mview-lang/mview/pkg/view"
)

func render(t *testing.T, n view.Node) string {
	t.Helper()
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return sb.String()
}

func TestElement_Render(t *testing.T) {
	type tc struct {
		node view.Node
		want string
	}

	tests := map[string]tc{
		"empty": {
			node: view.El("div"),
			want: `<div></div>`,
		},
		"classes merge": {
			node: view.El("div").Class("a b").Class("c"),
			want: `<div class="a b c"></div>`,
		},
		"id": {
			node: view.El("div").ID("main"),
			want: `<div id="main"></div>`,
		},
		"string attribute": {
			node: view.El("input").Attr("type", "checkbox"),
			want: `<input type="checkbox">`,
		},
		"bare boolean": {
			node: view.El("input").BoolAttr("checked"),
			want: `<input checked>`,
		},
		"true value renders bare": {
			node: view.El("input").Attr("checked", true),
			want: `<input checked>`,
		},
		"false value disappears": {
			node: view.El("input").Attr("disabled", false),
			want: `<input>`,
		},
		"dynamic attribute resolves": {
			node: view.El("input").Attr("value", func() any { return 42 }),
			want: `<input value="42">`,
		},
		"text child escapes": {
			node: view.El("p").Child(view.Text("a < b")),
			want: `<p>a &lt; b</p>`,
		},
		"string child": {
			node: view.El("p").Child("hi"),
			want: `<p>hi</p>`,
		},
		"dynamic child": {
			node: view.El("p").Child(func() any { return "now" }),
			want: `<p>now</p>`,
		},
		"nested": {
			node: view.El("div").Class("primary").Child(view.El("strong").Child(view.Text("hello"))),
			want: `<div class="primary"><strong>hello</strong></div>`,
		},
		"style props merge": {
			node: view.El("div").StyleProp("color", "red").StyleProp("width", func() any { return "10px" }),
			want: `<div style="color: red; width: 10px;"></div>`,
		},
		"class toggle on": {
			node: view.El("div").Class("base").ClassToggle("red", true),
			want: `<div class="base red"></div>`,
		},
		"class toggle off": {
			node: view.El("div").Class("base").ClassToggle("red", func() any { return false }),
			want: `<div class="base"></div>`,
		},
		"events do not render": {
			node: view.El("button").On("click", func() {}).Child("go"),
			want: `<button>go</button>`,
		},
		"props and bindings do not render": {
			node: view.El("input").Prop("value", "x").Bind("value", nil).Clone("s", nil),
			want: `<input>`,
		},
		"frag": {
			node: view.Frag(view.El("a"), view.El("b")),
			want: `<a></a><b></b>`,
		},
		"doctype": {
			node: view.Frag(view.DoctypeHTML(), view.El("html")),
			want: `<!DOCTYPE html><html></html>`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := render(t, tt.node); got != tt.want {
				t.Errorf("render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElement_RecordsEvents(t *testing.T) {
	called := false
	el := view.El("button").On("click", func() { called = true })

	events := el.Events()
	if len(events) != 1 || events[0].Name != "click" {
		t.Fatalf("events = %+v", events)
	}
	events[0].Handler.(func())()
	if !called {
		t.Error("handler did not run")
	}
}

func TestElement_ParsesAsHTML(t *testing.T) {
	out := render(t, view.El("div").Class("card").ID("main").Child(
		view.El("span").Child(view.Text("hi")),
	))

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("html.Parse() error: %v", err)
	}

	var div *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			div = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if div == nil {
		t.Fatal("no div in parsed output")
	}
	attrs := map[string]string{}
	for _, a := range div.Attr {
		attrs[a.Key] = a.Val
	}
	if attrs["class"] != "card" || attrs["id"] != "main" {
		t.Errorf("div attrs = %v", attrs)
	}
	if div.FirstChild == nil || div.FirstChild.Data != "span" {
		t.Errorf("div child = %+v", div.FirstChild)
	}
}
