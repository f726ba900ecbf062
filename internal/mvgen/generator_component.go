package mvgen

import (
	"strconv"
	"strings"
)

// componentExpr renders a component invocation as a view.Component builder
// chain. The component value is the Go function named by the path, with
// generic arguments becoming Go type arguments.
func (g *Generator) componentExpr(c *Component, indent int) string {
	name := strings.Join(c.Path, ".")
	if c.Generics != "" {
		name += "[" + c.Generics + "]"
	}

	var sb strings.Builder
	sb.WriteString("view.Component(")
	sb.WriteString(name)
	sb.WriteString(")")

	g.writeSelectors(&sb, indent, c.Selectors)
	g.writeComponentAttrs(&sb, indent, c.Attrs)
	g.writeChildren(&sb, indent, c.Children, true, true)
	return sb.String()
}

// writeComponentAttrs emits component attributes. Plain attributes become
// Prop calls; unlike elements, boolean values stay explicit so the component
// can distinguish prop=false from an absent prop.
func (g *Generator) writeComponentAttrs(sb *strings.Builder, indent int, attrs []Attribute) {
	for i := range attrs {
		a := &attrs[i]
		switch a.Kind {
		case AttrBool:
			chain(sb, indent, "Prop("+strconv.Quote(a.Key)+", true)")
		case AttrKeyValue:
			chain(sb, indent, "Prop("+strconv.Quote(a.Key)+", "+g.valueExpr(a.Value)+")")
		case AttrDirective:
			g.writeDirective(sb, indent, a)
		}
	}
}

// slotExpr renders one slot instance as a view.NewSlot builder chain. Slots
// carry the component attribute surface.
func (g *Generator) slotExpr(s *Slot, indent int) string {
	var sb strings.Builder
	sb.WriteString("view.NewSlot(")
	sb.WriteString(strconv.Quote(snakeCase(s.Name)))
	sb.WriteString(")")

	g.writeComponentAttrs(&sb, indent, s.Attrs)
	g.writeChildren(&sb, indent, s.Children, false, true)
	return sb.String()
}
