package mvgen

import "unicode"

// parseNode parses one child node. allowSlot permits slot:Name children,
// which are legal only directly inside an element or component children
// group. The returned error is fatal.
func (p *Parser) parseNode(allowSlot bool) (Node, error) {
	tok := p.cur()

	switch tok.Type {
	case TokenString, TokenRawString:
		p.advance()
		return &Text{Value: tok.Literal, Position: p.position(tok)}, nil

	case TokenInt, TokenFloat:
		p.advance()
		p.errors.AddErrorWithHint(p.position(tok),
			"numeric literals are not valid children",
			"quote the value: \""+tok.Literal+"\"")
		return &Text{Value: tok.Literal, Position: p.position(tok)}, nil

	case TokenGroup:
		switch tok.Delim {
		case DelimBrace:
			p.advance()
			return &Block{Code: p.groupRaw(tok), Position: p.position(tok)}, nil
		case DelimBracket:
			p.advance()
			return &Bracketed{Code: p.groupRaw(tok), Position: p.position(tok)}, nil
		}
		return nil, NewErrorf(p.position(tok), "unexpected group %s as child", tok.Delim)

	case TokenBang:
		return p.parseDoctype()

	case TokenIdent:
		switch {
		case tok.Literal == "true" || tok.Literal == "false":
			p.advance()
			p.errors.AddErrorWithHint(p.position(tok),
				"boolean literals are not valid children",
				"quote the value: \""+tok.Literal+"\"")
			return &Text{Value: tok.Literal, Position: p.position(tok)}, nil

		case tok.Literal == "f" && p.peek().Type == TokenGroup &&
			p.peek().Delim == DelimBracket && adjacent(tok, p.peek()):
			p.advance()
			group := p.advance()
			return &Bracketed{Code: p.groupRaw(group), Format: true, Position: p.position(tok)}, nil

		case tok.Literal == "slot" && p.peek().Type == TokenColon:
			if !allowSlot {
				p.advance()
				p.advance()
				p.errors.AddError(p.position(tok),
					"slot children are only allowed directly inside an element or component")
				// fall through to parse the slot anyway so its body is checked
				return p.parseSlotBody(p.position(tok))
			}
			return p.parseSlot()
		}
		return p.parseTagNode()
	}

	return nil, NewErrorf(p.position(tok), "expected a node, found %s", tok)
}

// parseDoctype parses the fixed `!DOCTYPE html;` node.
func (p *Parser) parseDoctype() (Node, error) {
	bang := p.advance()
	pos := p.position(bang)

	name := p.cur()
	if name.Type != TokenIdent || name.Literal != "DOCTYPE" {
		return nil, NewError(p.position(name), "expected DOCTYPE after !")
	}
	p.advance()

	kind := p.cur()
	if kind.Type != TokenIdent || kind.Literal != "html" {
		p.errors.AddErrorWithHint(p.position(kind),
			"only the html doctype is supported", "write !DOCTYPE html;")
		if kind.Type == TokenIdent {
			p.advance()
		}
	} else {
		p.advance()
	}

	if p.cur().Type == TokenSemicolon {
		p.advance()
	}
	return &Doctype{Position: pos}, nil
}

// parseTagNode parses an element or component: head name (possibly a
// ::-separated path), optional generics, selector suffixes, attributes, and
// children.
func (p *Parser) parseTagNode() (Node, error) {
	first := p.cur()
	pos := p.position(first)

	seg, last, ok := p.parseKebabIdent()
	if !ok {
		return nil, NewError(pos, "expected node name")
	}
	path := []string{seg}

	// ::-separated component path, possibly ending in the explicit generics
	// marker (Name::<T>).
	generics := ""
	for p.cur().Type == TokenPathSep {
		if p.peek().Type == TokenLAngle {
			p.advance() // ::
			generics = p.parseGenerics()
			break
		}
		p.advance() // ::
		seg, last, ok = p.parseKebabIdent()
		if !ok {
			return nil, NewError(p.position(p.cur()), "expected path segment after ::")
		}
		path = append(path, seg)
	}

	// Implicit generics form (Name<T>): the angle must touch the name, or it
	// would be ambiguous with a stray comparison inside malformed input.
	if generics == "" && p.cur().Type == TokenLAngle && adjacent(last, p.cur()) {
		generics = p.parseGenerics()
	}

	selectors := p.parseSelectors(last)
	attrs, children, err := p.parseAttributes(true)
	if err != nil {
		return nil, err
	}

	if isComponentPath(path) {
		return &Component{
			Path:      path,
			Generics:  generics,
			Selectors: selectors,
			Attrs:     attrs,
			Children:  children,
			Position:  pos,
		}, nil
	}
	if len(path[0]) > 0 {
		return &Element{
			Tag:       path[0],
			Generics:  generics,
			Selectors: selectors,
			Attrs:     attrs,
			Children:  children,
			Position:  pos,
		}, nil
	}
	return nil, NewError(pos, "expected node name")
}

// isComponentPath reports whether a head name refers to a component: any
// ::-separated path, or a single name with an uppercase initial.
func isComponentPath(path []string) bool {
	if len(path) > 1 {
		return true
	}
	for _, r := range path[0] {
		return unicode.IsUpper(r)
	}
	return false
}

// parseKebabIdent assembles a possibly-hyphenated identifier from adjacent
// Ident/Minus/Int tokens (custom-element, aria-label, theme-2). Returns the
// assembled name and the last token consumed.
func (p *Parser) parseKebabIdent() (string, Token, bool) {
	tok := p.cur()
	if tok.Type != TokenIdent {
		return "", tok, false
	}
	p.advance()

	name := tok.Literal
	last := tok
	for p.cur().Type == TokenMinus && adjacent(last, p.cur()) {
		next := p.peek()
		if (next.Type != TokenIdent && next.Type != TokenInt) || !adjacent(p.cur(), next) {
			break
		}
		p.advance() // -
		p.advance() // segment
		name += "-" + next.Literal
		last = next
	}
	return name, last, true
}

// parseGenerics captures a verbatim type argument list. The opening angle is
// current; nested angles are depth-counted so Map<string, List<int>> captures
// whole. Group tokens keep their own brackets balanced, so only angles need
// counting here.
func (p *Parser) parseGenerics() string {
	open := p.advance() // <
	depth := 1
	start := open.EndPos
	end := start

	for !p.atEnd() {
		tok := p.cur()
		switch tok.Type {
		case TokenLAngle:
			depth++
		case TokenRAngle:
			depth--
			if depth == 0 {
				p.advance()
				return p.source[start:end]
			}
		}
		end = tok.EndPos
		p.advance()
	}

	p.errors.AddError(p.position(open), "unclosed generic argument list")
	return p.source[start:end]
}

// parseSelectors parses .class and #id suffixes after a node head. Class
// selectors attach directly to the name; an id selector must be separated
// from what precedes it by a space.
func (p *Parser) parseSelectors(prev Token) []Selector {
	var sels []Selector
	for {
		tok := p.cur()
		switch tok.Type {
		case TokenDot:
			p.advance()
			name, last, ok := p.parseKebabIdent()
			if !ok {
				p.errors.AddError(p.position(tok), "expected class name after .")
				return sels
			}
			sels = append(sels, Selector{Kind: SelectorClass, Name: name, Position: p.position(tok)})
			prev = last

		case TokenHash:
			if adjacent(prev, tok) {
				p.errors.AddErrorWithHint(p.position(tok),
					"id selector must be preceded by a space",
					"write `div #my-id`, not `div#my-id`")
			}
			p.advance()
			name, last, ok := p.parseKebabIdent()
			if !ok {
				p.errors.AddError(p.position(tok), "expected id after #")
				return sels
			}
			sels = append(sels, Selector{Kind: SelectorID, Name: name, Position: p.position(tok)})
			prev = last

		default:
			return sels
		}
	}
}
