package view

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
)

type attrEntry struct {
	name  string
	value any
	bare  bool
}

type styleEntry struct {
	name  string
	value any
}

type classToggle struct {
	name string
	cond any
}

// UseCall records a use: directive: a directive function and its optional
// argument.
type UseCall struct {
	Fn  any
	Arg any
}

// BindCall records a bind: directive.
type BindCall struct {
	Key   string
	Value any
}

// CloneCall records a clone: directive. Closure capture makes it a no-op at
// render time; it is kept so generated calls line up with the source.
type CloneCall struct {
	Name  string
	Value any
}

// ElementBuilder accumulates the attributes, directives, and children of one
// HTML element. All methods return the receiver for chaining.
type ElementBuilder struct {
	tag     string
	classes []string
	toggles []classToggle
	id      string
	attrs   []attrEntry
	styles  []styleEntry
	props   []attrEntry
	events  []Event
	uses    []UseCall
	binds   []BindCall
	clones  []CloneCall

	children []any
}

// El starts building an element with the given tag.
func El(tag string) *ElementBuilder {
	return &ElementBuilder{tag: tag}
}

// Class adds space-separated static classes.
func (e *ElementBuilder) Class(classes string) *ElementBuilder {
	e.classes = append(e.classes, strings.Fields(classes)...)
	return e
}

// ID sets the element id.
func (e *ElementBuilder) ID(id string) *ElementBuilder {
	e.id = id
	return e
}

// Attr sets an attribute. The value is resolved at render time; a boolean
// value renders as a bare attribute when true and disappears when false.
func (e *ElementBuilder) Attr(name string, value any) *ElementBuilder {
	e.attrs = append(e.attrs, attrEntry{name: name, value: value})
	return e
}

// BoolAttr sets a bare boolean attribute.
func (e *ElementBuilder) BoolAttr(name string) *ElementBuilder {
	e.attrs = append(e.attrs, attrEntry{name: name, bare: true})
	return e
}

// ClassToggle includes the class while the condition resolves to true.
func (e *ElementBuilder) ClassToggle(name string, cond any) *ElementBuilder {
	e.toggles = append(e.toggles, classToggle{name: name, cond: cond})
	return e
}

// StyleProp sets one style property, merged into the style attribute.
func (e *ElementBuilder) StyleProp(name string, value any) *ElementBuilder {
	e.styles = append(e.styles, styleEntry{name: name, value: value})
	return e
}

// On records an event handler. Handlers do not render.
func (e *ElementBuilder) On(name string, handler any) *ElementBuilder {
	e.events = append(e.events, Event{Name: name, Handler: handler})
	return e
}

// Prop records a DOM property. Properties do not render.
func (e *ElementBuilder) Prop(name string, value any) *ElementBuilder {
	e.props = append(e.props, attrEntry{name: name, value: value})
	return e
}

// Use records a use: directive function with an optional argument.
func (e *ElementBuilder) Use(fn any, arg ...any) *ElementBuilder {
	u := UseCall{Fn: fn}
	if len(arg) > 0 {
		u.Arg = arg[0]
	}
	e.uses = append(e.uses, u)
	return e
}

// Bind records a two-way binding. Bindings do not render.
func (e *ElementBuilder) Bind(key string, value any) *ElementBuilder {
	e.binds = append(e.binds, BindCall{Key: key, Value: value})
	return e
}

// Clone records a clone: directive.
func (e *ElementBuilder) Clone(name string, value any) *ElementBuilder {
	e.clones = append(e.clones, CloneCall{Name: name, Value: value})
	return e
}

// Child appends children: nodes, strings, or dynamic values.
func (e *ElementBuilder) Child(children ...any) *ElementBuilder {
	e.children = append(e.children, children...)
	return e
}

// Events returns the recorded event handlers.
func (e *ElementBuilder) Events() []Event {
	return e.events
}

// Render lowers the element to a gomponents node and renders it.
func (e *ElementBuilder) Render(w io.Writer) error {
	var parts []g.Node

	classes := append([]string{}, e.classes...)
	for _, t := range e.toggles {
		if truthy(t.cond) {
			classes = append(classes, t.name)
		}
	}
	if len(classes) > 0 {
		parts = append(parts, g.Attr("class", strings.Join(classes, " ")))
	}
	if e.id != "" {
		parts = append(parts, g.Attr("id", e.id))
	}
	if len(e.styles) > 0 {
		var sb strings.Builder
		for _, s := range e.styles {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(s.name)
			sb.WriteString(": ")
			sb.WriteString(toString(s.value))
			sb.WriteByte(';')
		}
		parts = append(parts, g.Attr("style", sb.String()))
	}

	for _, a := range e.attrs {
		if a.bare {
			parts = append(parts, g.Attr(a.name))
			continue
		}
		switch v := resolve(a.value).(type) {
		case nil:
			// Placeholder from a diagnosed source; nothing to render.
		case bool:
			if v {
				parts = append(parts, g.Attr(a.name))
			}
		default:
			parts = append(parts, g.Attr(a.name, toString(v)))
		}
	}

	for _, c := range e.children {
		if n := nodeOf(c); n != nil {
			parts = append(parts, g.Node(n))
		}
	}

	return g.El(e.tag, parts...).Render(w)
}
