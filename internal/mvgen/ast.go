package mvgen

// Node is the interface implemented by all AST node types.
type Node interface {
	node()
	Pos() Position
}

// File is the root of a parsed .mv file: a package clause, optional imports,
// and one or more view definitions.
type File struct {
	Package  string
	Imports  []Import
	Views    []*View
	Position Position

	// NeedsFmt is set by normalization when a format expression expands to a
	// fmt.Sprintf call.
	NeedsFmt bool
}

func (f *File) node()         {}
func (f *File) Pos() Position { return f.Position }

// Import is a single import declaration from the file header.
type Import struct {
	Alias    string // optional
	Path     string
	Position Position
}

// View is a single view definition: a name, a verbatim Go parameter list, and
// a markup body.
type View struct {
	Name     string
	Params   string // verbatim Go parameter list, without parens
	Body     *ChildrenSpec
	Position Position
}

func (v *View) node()         {}
func (v *View) Pos() Position { return v.Position }

// Element is an HTML element node: lowercase tag, optional selectors,
// attributes, and children.
type Element struct {
	Tag       string
	Generics  string // verbatim type argument list, without angle brackets
	Selectors []Selector
	Attrs     []Attribute
	Children  *ChildrenSpec // nil when terminated with ;
	Position  Position
}

func (e *Element) node()         {}
func (e *Element) Pos() Position { return e.Position }

// Component is a component invocation: an uppercase-initial name or a
// ::-separated path, with the same surface as Element plus slot children.
type Component struct {
	Path      []string // one or more segments; joined with "." on emission
	Generics  string
	Selectors []Selector
	Attrs     []Attribute
	Children  *ChildrenSpec
	Position  Position
}

func (c *Component) node()         {}
func (c *Component) Pos() Position { return c.Position }

// Slot is a slot child of a component: slot:Name with attributes and children.
type Slot struct {
	Name     string // PascalCase as written
	Attrs    []Attribute
	Children *ChildrenSpec
	Position Position
}

func (s *Slot) node()         {}
func (s *Slot) Pos() Position { return s.Position }

// Text is a string literal child.
type Text struct {
	Value    string // decoded
	Position Position
}

func (t *Text) node()         {}
func (t *Text) Pos() Position { return t.Position }

// Block is a brace-delimited opaque Go expression used as a child.
type Block struct {
	Code     string // verbatim source between the braces
	Position Position
}

func (b *Block) node()         {}
func (b *Block) Pos() Position { return b.Position }

// Bracketed is a [...] child expression, optionally format-prefixed (f[...]).
// Normalization rewrites it into a Block wrapping a closure.
type Bracketed struct {
	Code     string // verbatim source between the brackets
	Format   bool
	Position Position
}

func (b *Bracketed) node()         {}
func (b *Bracketed) Pos() Position { return b.Position }

// Doctype is the fixed `!DOCTYPE html;` node.
type Doctype struct {
	Position Position
}

func (d *Doctype) node()         {}
func (d *Doctype) Pos() Position { return d.Position }

// SelectorKind distinguishes class and id selector suffixes.
type SelectorKind int

const (
	SelectorClass SelectorKind = iota // .name
	SelectorID                        // #name
)

// Selector is a .class or #id suffix on a node head.
type Selector struct {
	Kind     SelectorKind
	Name     string
	Position Position
}

// AttrKind distinguishes the surface forms an attribute can take.
type AttrKind int

const (
	AttrKeyValue  AttrKind = iota // key=value
	AttrBool                      // bare key, implies =true
	AttrShorthand                 // {key}, implies key={key}
	AttrDirective                 // kind:subkey[=value]
)

// Attribute is one attribute record on an element, component, or slot.
type Attribute struct {
	Kind AttrKind

	// Dir is the directive kind (class, style, on, prop, attr, clone, use,
	// bind) when Kind is AttrDirective.
	Dir string

	// Key is the attribute name or directive sub-key, as written (hyphens
	// preserved; normalization resolves them per target).
	Key string

	// KeyLit marks a string-literal sub-key (class:"a-b"=..).
	KeyLit bool

	// Shorthand marks a brace-group sub-key (class:{some-class}).
	Shorthand bool

	// Value is nil for AttrBool, AttrShorthand, and value-less directives.
	Value *Value

	Position Position
}

// ValueKind distinguishes the forms an attribute value can take.
type ValueKind int

const (
	ValueString      ValueKind = iota // "literal"
	ValueInt                          // 42
	ValueFloat                        // 1.5
	ValueBool                         // true / false
	ValueBlock                        // {expr}
	ValueBracketed                    // [expr] or f[args]
	ValuePlaceholder                  // substituted after a diagnostic
)

// Value is an attribute value.
type Value struct {
	Kind ValueKind

	Str    string // decoded string for ValueString
	Raw    string // verbatim source: literal text or group content
	Bool   bool   // for ValueBool
	Format bool   // for ValueBracketed: f-prefixed

	Position Position
}

// ChildrenSpec is a children group: optional closure parameters and the child
// nodes in source order.
type ChildrenSpec struct {
	Params   []string // |a, b| closure parameter names
	Nodes    []Node
	Position Position
}
