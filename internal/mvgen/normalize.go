package mvgen

import (
	"strings"
	"unicode"
)

// Normalize rewrites the AST in place so the generator only sees canonical
// forms:
//
//   - shorthand attributes become key=value pairs (element keys keep hyphens,
//     component and slot keys translate them to underscores; the value
//     identifier always translates hyphens to underscores)
//   - bracketed expressions expand into zero-argument closures, with the
//     format prefix expanding to fmt.Sprintf
//   - directives that need a value but lack one get a diagnostic and a
//     placeholder
func Normalize(f *File, errs *ErrorList) {
	for _, v := range f.Views {
		normalizeChildren(f, v.Body, errs)
	}
}

func normalizeChildren(f *File, spec *ChildrenSpec, errs *ErrorList) {
	if spec == nil {
		return
	}
	for i, node := range spec.Nodes {
		switch n := node.(type) {
		case *Element:
			normalizeAttrs(f, n.Attrs, false, errs)
			normalizeChildren(f, n.Children, errs)
		case *Component:
			normalizeAttrs(f, n.Attrs, true, errs)
			normalizeChildren(f, n.Children, errs)
		case *Slot:
			normalizeAttrs(f, n.Attrs, true, errs)
			normalizeChildren(f, n.Children, errs)
		case *Bracketed:
			spec.Nodes[i] = &Block{
				Code:     f.expandBracket(n.Code, n.Format),
				Position: n.Position,
			}
		}
	}
}

func normalizeAttrs(f *File, attrs []Attribute, component bool, errs *ErrorList) {
	for i := range attrs {
		a := &attrs[i]
		switch a.Kind {
		case AttrShorthand:
			ident := underscore(a.Key)
			if component {
				a.Key = ident
			}
			a.Kind = AttrKeyValue
			a.Value = &Value{Kind: ValueBlock, Raw: ident, Position: a.Position}

		case AttrKeyValue:
			if component {
				a.Key = underscore(a.Key)
			}
			f.normalizeValue(a.Value)

		case AttrDirective:
			if a.Shorthand {
				a.Value = &Value{Kind: ValueBlock, Raw: underscore(a.Key), Position: a.Position}
			}
			f.normalizeValue(a.Value)
			if a.Value == nil && directiveNeedsValue(a.Dir) {
				errs.AddErrorWithHint(a.Position,
					a.Dir+": directive requires a value",
					"write "+a.Dir+":"+a.Key+"={...}")
				a.Value = &Value{Kind: ValuePlaceholder, Position: a.Position}
			}
		}
	}
}

// directiveNeedsValue reports whether a directive kind requires an = value.
// use: accepts an optional argument and clone: names its identifier through
// the sub-key, so both may stand alone.
func directiveNeedsValue(kind string) bool {
	switch kind {
	case "use", "clone":
		return false
	}
	return true
}

func (f *File) normalizeValue(v *Value) {
	if v == nil || v.Kind != ValueBracketed {
		return
	}
	v.Raw = f.expandBracket(v.Raw, v.Format)
	v.Kind = ValueBlock
	v.Format = false
}

// expandBracket turns a bracketed expression into its closure form.
func (f *File) expandBracket(code string, format bool) string {
	if format {
		f.NeedsFmt = true
		return "func() any { return fmt.Sprintf(" + code + ") }"
	}
	return "func() any { return " + code + " }"
}

// underscore translates kebab-case to snake_case.
func underscore(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// SlotGroup collects the instances of one slot name in declaration order.
type SlotGroup struct {
	Name      string // snake_case runtime name (ElseIf -> else_if)
	Instances []*Slot
}

// GroupSlots splits a child list into ordinary children and slot groups.
// Groups keep first-appearance order; instances keep declaration order within
// a group. Zero instances of a slot simply yields no group: absence of an
// optional slot is not an error.
func GroupSlots(nodes []Node) ([]Node, []SlotGroup) {
	var ordinary []Node
	var groups []SlotGroup
	index := map[string]int{}

	for _, node := range nodes {
		s, ok := node.(*Slot)
		if !ok {
			ordinary = append(ordinary, node)
			continue
		}
		name := snakeCase(s.Name)
		if i, ok := index[name]; ok {
			groups[i].Instances = append(groups[i].Instances, s)
			continue
		}
		index[name] = len(groups)
		groups = append(groups, SlotGroup{Name: name, Instances: []*Slot{s}})
	}
	return ordinary, groups
}

// snakeCase converts a PascalCase slot name to its snake_case runtime name.
func snakeCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
