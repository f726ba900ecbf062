package view_test

import (
	"testing"

	"github.com/mview-lang/mview/pkg/view"
)

// card is a test component exercising props and children.
func card(p view.Props) view.Node {
	return view.El("div").
		Class("card").
		Attr("data-title", p.GetString("title")).
		Child(p.Children())
}

func TestComponent_PropsAndChildren(t *testing.T) {
	got := render(t, view.Component(card).
		Prop("title", "hi").
		Child(view.Text("inner")))

	want := `<div class="card" data-title="hi">inner</div>`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestComponent_DynamicProp(t *testing.T) {
	n := 0
	counter := func(p view.Props) view.Node {
		return view.El("span").Child(p.Get("count"))
	}
	b := view.Component(counter).Prop("count", func() any { return n })

	n = 7
	if got := render(t, b); got != "<span>7</span>" {
		t.Errorf("render = %q", got)
	}
}

func TestComponent_PropAccessors(t *testing.T) {
	probe := func(p view.Props) view.Node {
		if !p.Has("present") {
			t.Error("Has(present) = false")
		}
		if p.Has("absent") {
			t.Error("Has(absent) = true")
		}
		if p.Get("absent") != nil {
			t.Error("Get(absent) != nil")
		}
		if !p.GetBool("flag") {
			t.Error("GetBool(flag) = false")
		}
		if got := p.Names(); len(got) != 2 || got[0] != "present" || got[1] != "flag" {
			t.Errorf("Names() = %v", got)
		}
		return nil
	}
	render(t, view.Component(probe).Prop("present", "x").Prop("flag", true))
}

func TestComponent_ChildrenClosure(t *testing.T) {
	await := func(p view.Props) view.Node {
		return p.Children("result")
	}
	got := render(t, view.Component(await).
		Children(func(args ...any) view.Node {
			monkeys := args[0]
			return view.El("p").Child(monkeys)
		}))

	if got != "<p>result</p>" {
		t.Errorf("render = %q", got)
	}
}

func TestComponent_SlotChildrenClosure(t *testing.T) {
	awaitIf := func(p view.Props) view.Node {
		if !p.GetBool("cond") {
			return view.Frag()
		}
		if s, ok := p.Slot("then"); ok {
			return s.Children("ready")
		}
		return view.Frag()
	}
	got := render(t, view.Component(awaitIf).
		Prop("cond", true).
		Slot(view.NewSlot("then").
			Children(func(args ...any) view.Node {
				data := args[0]
				return view.El("p").Child(data)
			})))

	if got != "<p>ready</p>" {
		t.Errorf("render = %q", got)
	}
}

// slotIf mirrors the conditional component from the slot contract: cond picks
// the scalar then slot, otherwise the first matching else_if instance,
// otherwise the scalar fallback slot.
func slotIf(p view.Props) view.Node {
	if p.GetBool("cond") {
		if s, ok := p.Slot("then"); ok {
			return s.Children()
		}
		return view.Frag()
	}
	for _, s := range p.Slots("else_if") {
		if s.GetBool("cond") {
			return s.Children()
		}
	}
	if s, ok := p.Slot("fallback"); ok {
		return s.Children()
	}
	return view.Frag()
}

func TestComponent_SlotIfEvenOdd(t *testing.T) {
	build := func(n int) view.Node {
		return view.Component(slotIf).
			Prop("cond", func() any { return n%2 == 0 }).
			Slot(view.NewSlot("then").Child(view.Text("even"))).
			Slot(view.NewSlot("fallback").Child(view.Text("odd")))
	}

	if got := render(t, build(4)); got != "even" {
		t.Errorf("render(4) = %q, want even", got)
	}
	if got := render(t, build(3)); got != "odd" {
		t.Errorf("render(3) = %q, want odd", got)
	}
}

func TestComponent_SlotCollection(t *testing.T) {
	tabs := func(p view.Props) view.Node {
		var items []any
		for _, tab := range p.Slots("tab") {
			items = append(items, view.El("li").
				Attr("data-label", tab.Get("label")).
				Child(tab.Children()))
		}
		return view.El("ul").Child(items...)
	}

	got := render(t, view.Component(tabs).
		Slot(view.NewSlot("tab").Prop("label", "a").Child(view.Text("one"))).
		Slot(view.NewSlot("tab").Prop("label", "b").Child(view.Text("two"))))

	want := `<ul><li data-label="a">one</li><li data-label="b">two</li></ul>`
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestComponent_OptionalSlotAbsent(t *testing.T) {
	got := render(t, view.Component(slotIf).
		Prop("cond", false).
		Slot(view.NewSlot("then").Child(view.Text("even"))))

	// No else_if or fallback instances: renders nothing, not an error.
	if got != "" {
		t.Errorf("render = %q, want empty", got)
	}
}

func TestComponent_NilResult(t *testing.T) {
	empty := func(p view.Props) view.Node { return nil }
	if got := render(t, view.Component(empty)); got != "" {
		t.Errorf("render = %q, want empty", got)
	}
}
