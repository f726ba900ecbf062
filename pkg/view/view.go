// Package view is the builder API that generated view code calls. It
// constructs element, component, and slot trees and renders them to HTML by
// lowering onto gomponents nodes.
//
// Rendering is one-shot: dynamic values (zero-argument closures produced by
// bracketed template expressions) are evaluated at render time, and the
// reactive surface (event handlers, bindings, directives) is recorded on the
// tree without affecting HTML output.
package view

import (
	"fmt"
	"io"
	"reflect"

	g "maragu.dev/gomponents"
)

// Node is a renderable piece of a view tree. It matches the gomponents node
// contract, so gomponents nodes can be used as children directly.
type Node interface {
	Render(w io.Writer) error
}

// Event records an event handler attached with an on: directive.
type Event struct {
	Name    string
	Handler any
}

// frag renders its children in order with no wrapper.
type frag struct {
	children []any
}

// Frag groups children without introducing an element. A view body with
// multiple roots returns a Frag.
func Frag(children ...any) Node {
	return &frag{children: children}
}

func (f *frag) Render(w io.Writer) error {
	for _, c := range f.children {
		n := nodeOf(c)
		if n == nil {
			continue
		}
		if err := n.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Text returns an HTML-escaped text node.
func Text(t string) Node {
	return g.Text(t)
}

// Textf returns an HTML-escaped formatted text node.
func Textf(format string, args ...any) Node {
	return g.Textf(format, args...)
}

// Raw returns an unescaped text node.
func Raw(t string) Node {
	return g.Raw(t)
}

// DoctypeHTML returns the HTML5 doctype preamble.
func DoctypeHTML() Node {
	return g.Raw("<!DOCTYPE html>")
}

// resolve evaluates niladic function values until a plain value remains.
// Bracketed template expressions compile to func() any; user expressions may
// also be func() bool, func() string, or a node constructor.
func resolve(v any) any {
	for v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Func || rv.Type().NumIn() != 0 || rv.Type().NumOut() == 0 {
			return v
		}
		out := rv.Call(nil)
		v = out[0].Interface()
	}
	return v
}

// truthy reports whether a resolved value toggles a conditional directive on.
func truthy(v any) bool {
	b, ok := resolve(v).(bool)
	return ok && b
}

// toString renders a resolved value as attribute or text content.
func toString(v any) string {
	v = resolve(v)
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// nodeOf converts a child value to a renderable node. Nodes pass through;
// strings and other scalars become escaped text; nil disappears.
func nodeOf(v any) Node {
	v = resolve(v)
	switch v := v.(type) {
	case nil:
		return nil
	case Node:
		return v
	case string:
		return g.Text(v)
	default:
		return g.Text(fmt.Sprint(v))
	}
}
