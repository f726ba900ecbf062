package mvgen

import (
	"strconv"
	"strings"
)

// elementExpr renders an element as a view.El builder chain.
func (g *Generator) elementExpr(e *Element, indent int) string {
	var sb strings.Builder
	sb.WriteString("view.El(")
	sb.WriteString(strconv.Quote(e.Tag))
	sb.WriteString(")")

	if e.Generics != "" {
		g.errors.AddError(e.Position, "elements do not take generic arguments")
	}

	g.writeSelectors(&sb, indent, e.Selectors)

	for i := range e.Attrs {
		a := &e.Attrs[i]
		switch a.Kind {
		case AttrBool:
			chain(&sb, indent, "BoolAttr("+strconv.Quote(a.Key)+")")

		case AttrKeyValue:
			if a.Value != nil && a.Value.Kind == ValueBool {
				// Elements treat boolean attributes by presence: true is the
				// bare attribute, false is omitted entirely.
				if a.Value.Bool {
					chain(&sb, indent, "BoolAttr("+strconv.Quote(a.Key)+")")
				}
				continue
			}
			chain(&sb, indent, "Attr("+strconv.Quote(a.Key)+", "+g.valueExpr(a.Value)+")")

		case AttrDirective:
			g.writeDirective(&sb, indent, a)
		}
	}

	g.writeChildren(&sb, indent, e.Children, false, false)
	return sb.String()
}

// writeSelectors merges class selectors into one Class call and emits the id
// selector as the ID call. A node takes at most one id.
func (g *Generator) writeSelectors(sb *strings.Builder, indent int, sels []Selector) {
	var classes []string
	id := ""
	for _, s := range sels {
		switch s.Kind {
		case SelectorClass:
			classes = append(classes, s.Name)
		case SelectorID:
			if id != "" {
				g.errors.AddErrorWithHint(s.Position,
					"duplicate id selector #"+s.Name,
					"a node takes a single #id")
				continue
			}
			id = s.Name
		}
	}
	if len(classes) > 0 {
		chain(sb, indent, "Class("+strconv.Quote(strings.Join(classes, " "))+")")
	}
	if id != "" {
		chain(sb, indent, "ID("+strconv.Quote(id)+")")
	}
}

// writeDirective emits the builder call for one directive attribute. The
// directive surface is identical for elements and components.
func (g *Generator) writeDirective(sb *strings.Builder, indent int, a *Attribute) {
	val := g.valueExpr(a.Value)
	switch a.Dir {
	case "class":
		if a.KeyLit && strings.ContainsAny(a.Key, " \t\n") {
			g.errors.AddErrorWithHint(a.Position,
				"class: name contains whitespace",
				"toggle one class per directive")
			return
		}
		chain(sb, indent, "ClassToggle("+strconv.Quote(a.Key)+", "+val+")")
	case "style":
		chain(sb, indent, "StyleProp("+strconv.Quote(a.Key)+", "+val+")")
	case "on":
		chain(sb, indent, "On("+strconv.Quote(a.Key)+", "+val+")")
	case "prop":
		chain(sb, indent, "Prop("+strconv.Quote(a.Key)+", "+val+")")
	case "attr":
		chain(sb, indent, "Attr("+strconv.Quote(a.Key)+", "+val+")")
	case "bind":
		chain(sb, indent, "Bind("+strconv.Quote(a.Key)+", "+val+")")
	case "use":
		if a.Value == nil {
			chain(sb, indent, "Use("+underscore(a.Key)+")")
		} else {
			chain(sb, indent, "Use("+underscore(a.Key)+", "+val+")")
		}
	case "clone":
		ident := underscore(a.Key)
		chain(sb, indent, "Clone("+strconv.Quote(ident)+", "+ident+")")
	default:
		// Unknown directives were diagnosed at parse time.
	}
}

// writeChildren emits Child calls (or a Children closure when parameters are
// declared). allowSlots permits slot children (components only); allowClosure
// permits closure parameters (components and slots).
func (g *Generator) writeChildren(sb *strings.Builder, indent int, spec *ChildrenSpec, allowSlots, allowClosure bool) {
	if spec == nil {
		return
	}

	if len(spec.Params) > 0 {
		if !allowClosure {
			g.errors.AddError(spec.Position,
				"closure parameters are only valid on component or slot children")
		}
		g.writeChildrenClosure(sb, indent, spec)
		return
	}

	if !allowSlots {
		for _, n := range spec.Nodes {
			if s, ok := n.(*Slot); ok {
				g.errors.AddError(s.Position, "slot children are only valid inside a component")
				continue
			}
			chain(sb, indent, "Child("+g.nodeExpr(n, indent+1)+")")
		}
		return
	}

	// Ordinary children keep source order; slot instances are grouped by name
	// (first-appearance group order, declaration order within a group) so the
	// emitted calls mirror the runtime aggregate.
	ordinary, groups := GroupSlots(spec.Nodes)
	for _, n := range ordinary {
		chain(sb, indent, "Child("+g.nodeExpr(n, indent+1)+")")
	}
	for _, grp := range groups {
		for _, s := range grp.Instances {
			chain(sb, indent, "Slot("+g.slotExpr(s, indent+1)+")")
		}
	}
}

// writeChildrenClosure emits children declared with |a, b| parameters as a
// Children call taking a variadic closure; each parameter binds one argument
// positionally.
func (g *Generator) writeChildrenClosure(sb *strings.Builder, indent int, spec *ChildrenSpec) {
	var body strings.Builder
	body.WriteString("Children(func(args ...any) view.Node {\n")
	for i, p := range spec.Params {
		body.WriteString(tabs(indent + 2))
		body.WriteString(p)
		body.WriteString(" := args[")
		body.WriteString(strconv.Itoa(i))
		body.WriteString("]\n")
	}
	body.WriteString(tabs(indent + 2))
	body.WriteString("return ")
	body.WriteString(g.closureBodyExpr(spec, indent+2))
	body.WriteString("\n")
	body.WriteString(tabs(indent + 1))
	body.WriteString("})")
	chain(sb, indent, body.String())
}

// closureBodyExpr renders the nodes of a parameterized children group.
func (g *Generator) closureBodyExpr(spec *ChildrenSpec, indent int) string {
	for _, n := range spec.Nodes {
		if s, ok := n.(*Slot); ok {
			g.errors.AddError(s.Position,
				"slot children cannot be combined with closure parameters")
		}
	}
	if len(spec.Nodes) == 1 {
		return g.nodeExpr(spec.Nodes[0], indent)
	}
	var sb strings.Builder
	sb.WriteString("view.Frag(\n")
	for _, n := range spec.Nodes {
		if _, ok := n.(*Slot); ok {
			continue
		}
		sb.WriteString(tabs(indent + 1))
		sb.WriteString(g.nodeExpr(n, indent+1))
		sb.WriteString(",\n")
	}
	sb.WriteString(tabs(indent))
	sb.WriteString(")")
	return sb.String()
}
