package mvgen

import (
	"errors"

	"golang.org/x/mod/module"
)

// Parser builds an AST from the lexer's token buffer. Delimiter groups arrive
// pre-balanced as single tokens; the parser re-enters a group by constructing
// a sub-parser over its nested tokens.
//
// Errors come in two severities. Recoverable diagnostics accumulate in the
// error list while parsing substitutes a placeholder and continues, so one
// invocation reports independent problems together. Fatal conditions (a
// malformed file wrapper, a node head the parser cannot anchor on) abort with
// a single error.
type Parser struct {
	filename string
	source   string
	toks     []Token
	i        int
	errors   *ErrorList
}

// NewParser creates a parser for the given source, running the lexer first.
// A lexing failure (unbalanced delimiters) is returned immediately.
func NewParser(filename, source string) (*Parser, error) {
	lex := NewLexer(filename, source)
	toks, err := lex.Lex()
	if err != nil {
		return nil, err
	}
	return &Parser{
		filename: filename,
		source:   source,
		toks:     toks,
		errors:   lex.Errors(),
	}, nil
}

// subParser returns a parser over a group's nested tokens, sharing the source
// and error list.
func (p *Parser) subParser(toks []Token) *Parser {
	return &Parser{
		filename: p.filename,
		source:   p.source,
		toks:     toks,
		errors:   p.errors,
	}
}

// Errors returns the accumulated recoverable diagnostics.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// cur returns the current token, or an EOF token past the end.
func (p *Parser) cur() Token {
	if p.i >= len(p.toks) {
		return p.eofToken()
	}
	return p.toks[p.i]
}

// peek returns the token after the current one.
func (p *Parser) peek() Token {
	if p.i+1 >= len(p.toks) {
		return p.eofToken()
	}
	return p.toks[p.i+1]
}

func (p *Parser) eofToken() Token {
	if len(p.toks) > 0 {
		last := p.toks[len(p.toks)-1]
		return Token{Type: TokenEOF, Line: last.Line, Column: last.Column, StartPos: last.EndPos, EndPos: last.EndPos}
	}
	return Token{Type: TokenEOF, Line: 1, Column: 1}
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.cur()
	if p.i < len(p.toks) {
		p.i++
	}
	return tok
}

// atEnd reports whether the token buffer is exhausted.
func (p *Parser) atEnd() bool {
	return p.i >= len(p.toks)
}

// position returns the Position of a token.
func (p *Parser) position(tok Token) Position {
	return Position{File: p.filename, Line: tok.Line, Column: tok.Column}
}

// raw returns the verbatim source text covered by a token.
func (p *Parser) raw(tok Token) string {
	if tok.StartPos < 0 || tok.EndPos > len(p.source) || tok.StartPos > tok.EndPos {
		return tok.Literal
	}
	return p.source[tok.StartPos:tok.EndPos]
}

// groupRaw returns the verbatim source inside a group token.
func (p *Parser) groupRaw(tok Token) string {
	return groupContent(p.source, tok)
}

// adjacent reports whether b starts exactly where a ends, with no intervening
// whitespace. Kebab name assembly and prefix forms (f[...], Name<T>) depend
// on this.
func adjacent(a, b Token) bool {
	return a.EndPos == b.StartPos
}

// ParseFile parses a complete .mv file: package clause, imports, and view
// definitions.
func (p *Parser) ParseFile() (*File, error) {
	file := &File{Position: p.position(p.cur())}

	pkg := p.cur()
	if pkg.Type != TokenIdent || pkg.Literal != "package" {
		return nil, NewError(p.position(pkg), "expected package clause")
	}
	p.advance()

	name := p.cur()
	if name.Type != TokenIdent {
		return nil, NewError(p.position(name), "expected package name")
	}
	file.Package = name.Literal
	p.advance()

	for p.cur().Type == TokenIdent && p.cur().Literal == "import" {
		p.parseImports(file)
	}

	for !p.atEnd() {
		tok := p.cur()
		if tok.Type == TokenIdent && tok.Literal == "view" {
			v, err := p.parseView()
			if err != nil {
				var perr *Error
				if errors.As(err, &perr) {
					p.errors.Add(perr)
				} else {
					p.errors.AddError(p.position(tok), err.Error())
				}
				p.synchronize()
				continue
			}
			file.Views = append(file.Views, v)
			continue
		}
		p.errors.AddErrorf(p.position(tok), "expected view definition, found %s", tok)
		p.synchronize()
	}

	if len(file.Views) == 0 && !p.errors.HasErrors() {
		p.errors.AddError(file.Position, "file contains no view definitions")
	}
	return file, nil
}

// parseImports parses one import declaration: a single import or a
// parenthesized group.
func (p *Parser) parseImports(file *File) {
	p.advance() // consume "import"

	tok := p.cur()
	switch {
	case tok.Type == TokenGroup && tok.Delim == DelimParen:
		p.advance()
		sub := p.subParser(tok.Sub)
		for !sub.atEnd() {
			if !sub.parseImportSpec(file) {
				return
			}
		}
	default:
		p.parseImportSpec(file)
	}
}

// parseImportSpec parses a single `[alias] "path"` import line.
func (p *Parser) parseImportSpec(file *File) bool {
	imp := Import{Position: p.position(p.cur())}

	if p.cur().Type == TokenIdent || (p.cur().Type == TokenDot && p.peek().Type == TokenString) {
		imp.Alias = p.cur().Literal
		p.advance()
	}

	tok := p.cur()
	if tok.Type != TokenString {
		p.errors.AddError(p.position(tok), "expected import path string")
		return false
	}
	imp.Path = tok.Literal
	p.advance()

	if err := module.CheckImportPath(imp.Path); err != nil {
		p.errors.AddErrorf(imp.Position, "invalid import path %q: %v", imp.Path, err)
	}
	file.Imports = append(file.Imports, imp)
	return true
}

// parseView parses one `view Name(params) { body }` definition.
func (p *Parser) parseView() (*View, error) {
	v := &View{Position: p.position(p.cur())}
	p.advance() // consume "view"

	name := p.cur()
	if name.Type != TokenIdent {
		return nil, NewError(p.position(name), "expected view name")
	}
	v.Name = name.Literal
	p.advance()

	params := p.cur()
	if params.Type != TokenGroup || params.Delim != DelimParen {
		return nil, NewErrorWithHint(p.position(params),
			"expected view parameter list",
			"write view "+v.Name+"(...) even when there are no parameters")
	}
	v.Params = p.groupRaw(params)
	p.advance()

	body := p.cur()
	if body.Type != TokenGroup || body.Delim != DelimBrace {
		return nil, NewError(p.position(body), "expected view body")
	}
	p.advance()

	sub := p.subParser(body.Sub)
	v.Body = sub.parseChildrenNodes(p.position(body), false)
	return v, nil
}

// synchronize skips tokens until the next view definition so parsing can
// resume after a fatal error inside one view.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		tok := p.cur()
		if tok.Type == TokenIdent && tok.Literal == "view" {
			return
		}
		p.advance()
	}
}
