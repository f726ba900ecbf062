package mvgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// viewImportPath is the builder package every generated file calls into.
const viewImportPath = "github.com/mview-lang/mview/pkg/view"

// Generator emits Go source from a normalized AST. One generator serves one
// output file.
type Generator struct {
	buf    bytes.Buffer
	source string // .mv filename recorded in the header
	errors *ErrorList

	// SkipImports formats with go/format instead of resolving imports with
	// goimports. Used in tests where the emitted package set is closed.
	SkipImports bool
}

// NewGenerator creates a Generator for source written from the given .mv file.
func NewGenerator(sourceFile string) *Generator {
	return &Generator{
		source: sourceFile,
		errors: NewErrorList(),
	}
}

// Errors returns diagnostics raised during generation.
func (g *Generator) Errors() *ErrorList {
	return g.errors
}

// Generate emits the complete Go file for a parsed and normalized .mv file.
func (g *Generator) Generate(f *File) ([]byte, error) {
	g.writeln("// Code generated by mview generate. DO NOT EDIT.")
	g.writef("// Source: %s\n\n", g.source)
	g.writef("package %s\n\n", f.Package)

	g.writeln("import (")
	if f.NeedsFmt {
		g.writeln("\t\"fmt\"")
	}
	g.writef("\tview %q\n", viewImportPath)
	for _, imp := range f.Imports {
		if imp.Alias != "" {
			g.writef("\t%s %q\n", imp.Alias, imp.Path)
		} else {
			g.writef("\t%q\n", imp.Path)
		}
	}
	g.writeln(")")

	for _, v := range f.Views {
		g.writeln("")
		g.writeView(v)
	}

	if g.errors.HasErrors() {
		return nil, g.errors
	}

	if g.SkipImports {
		out, err := format.Source(g.buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("formatting generated code: %w\n%s", err, g.buf.String())
		}
		return out, nil
	}

	out, err := imports.Process(g.outputName(), g.buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, g.buf.String())
	}
	return out, nil
}

// outputName derives the generated filename from the source filename.
func (g *Generator) outputName() string {
	return OutputPath(g.source)
}

// OutputPath returns the generated-file path for a .mv source path.
func OutputPath(mvPath string) string {
	base := strings.TrimSuffix(mvPath, ".mv")
	return base + "_mview.go"
}

// writeView emits one view function.
func (g *Generator) writeView(v *View) {
	g.writef("func %s(%s) view.Node {\n", v.Name, v.Params)
	g.writef("\treturn %s\n", g.bodyExpr(v.Body, 1))
	g.writeln("}")
}

// bodyExpr renders a view or closure body: a single root is returned
// directly, multiple roots wrap in view.Frag.
func (g *Generator) bodyExpr(spec *ChildrenSpec, indent int) string {
	if spec == nil || len(spec.Nodes) == 0 {
		return "view.Frag()"
	}
	if len(spec.Params) > 0 {
		g.errors.AddError(spec.Position, "closure parameters are not allowed on a view body")
	}
	if len(spec.Nodes) == 1 {
		return g.nodeExpr(spec.Nodes[0], indent)
	}
	var sb strings.Builder
	sb.WriteString("view.Frag(\n")
	for _, n := range spec.Nodes {
		sb.WriteString(tabs(indent + 1))
		sb.WriteString(g.nodeExpr(n, indent+1))
		sb.WriteString(",\n")
	}
	sb.WriteString(tabs(indent))
	sb.WriteString(")")
	return sb.String()
}

// nodeExpr renders one node as a Go expression.
func (g *Generator) nodeExpr(n Node, indent int) string {
	switch n := n.(type) {
	case *Element:
		return g.elementExpr(n, indent)
	case *Component:
		return g.componentExpr(n, indent)
	case *Slot:
		g.errors.AddError(n.Position, "slot children are only valid inside a component")
		return "view.Frag()"
	case *Text:
		return "view.Text(" + strconv.Quote(n.Value) + ")"
	case *Block:
		return n.Code
	case *Bracketed:
		// Normalization rewrites these; reaching one means Generate was
		// called on a raw AST.
		g.errors.AddError(n.Position, "internal: bracketed expression not normalized")
		return "nil"
	case *Doctype:
		return "view.DoctypeHTML()"
	}
	return "nil"
}

// valueExpr renders an attribute value as a Go expression.
func (g *Generator) valueExpr(v *Value) string {
	if v == nil {
		return "nil"
	}
	switch v.Kind {
	case ValueString:
		return strconv.Quote(v.Str)
	case ValueInt, ValueFloat:
		return v.Raw
	case ValueBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValueBlock:
		return v.Raw
	case ValuePlaceholder:
		return "nil"
	}
	return "nil"
}

// chain appends one builder call on its own line.
func chain(sb *strings.Builder, indent int, call string) {
	sb.WriteString(".\n")
	sb.WriteString(tabs(indent + 1))
	sb.WriteString(call)
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}

func (g *Generator) writef(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *Generator) writeln(s string) {
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

// ParseAndGenerate runs the whole pipeline on one source file: lex, parse,
// normalize, generate. Recoverable diagnostics abort before generation so a
// partially-wrong file never produces output.
func ParseAndGenerate(filename, source string) ([]byte, error) {
	p, err := NewParser(filename, source)
	if err != nil {
		return nil, err
	}
	file, err := p.ParseFile()
	if err != nil {
		return nil, err
	}
	Normalize(file, p.Errors())
	if p.Errors().HasErrors() {
		return nil, p.Errors().Err()
	}

	gen := NewGenerator(filename)
	return gen.Generate(file)
}
