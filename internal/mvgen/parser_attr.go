package mvgen

// directiveKinds is the fixed directive vocabulary.
var directiveKinds = map[string]bool{
	"class": true,
	"style": true,
	"on":    true,
	"prop":  true,
	"attr":  true,
	"clone": true,
	"use":   true,
	"bind":  true,
}

// parseAttributes parses the attribute records of a node head, stopping at
// the children delimiter. Returns the attributes and the children spec (nil
// when the node was terminated with `;`). A node with neither a children
// group nor `;` is fatal. allowSlot is forwarded to the children parser: it
// is false when the node itself is a slot.
func (p *Parser) parseAttributes(allowSlot bool) ([]Attribute, *ChildrenSpec, error) {
	var attrs []Attribute

	for {
		tok := p.cur()
		switch {
		case tok.Type == TokenSemicolon:
			p.advance()
			return attrs, nil, nil

		case tok.Type == TokenGroup && tok.Delim == DelimParen:
			p.advance()
			sub := p.subParser(tok.Sub)
			return attrs, sub.parseChildrenNodes(p.position(tok), allowSlot), nil

		case tok.Type == TokenGroup && tok.Delim == DelimBrace:
			// A brace group holding exactly one identifier is the shorthand
			// attribute form {key}; anything else starts brace-delimited
			// children.
			if key, ok := singleIdent(tok.Sub); ok {
				p.advance()
				attrs = append(attrs, Attribute{
					Kind:     AttrShorthand,
					Key:      key,
					Position: p.position(tok),
				})
				continue
			}
			p.advance()
			sub := p.subParser(tok.Sub)
			return attrs, sub.parseChildrenNodes(p.position(tok), allowSlot), nil

		case tok.Type == TokenIdent:
			attr, err := p.parseAttribute()
			if err != nil {
				return nil, nil, err
			}
			attrs = append(attrs, attr)

		case tok.Type == TokenEOF || p.atEnd():
			return nil, nil, NewErrorWithHint(p.position(tok),
				"expected children group or ;",
				"terminate childless nodes with ;")

		default:
			return nil, nil, NewErrorf(p.position(tok),
				"expected attribute or children, found %s", tok)
		}
	}
}

// parseAttribute parses one key=value, bare-key, or directive attribute. The
// leading identifier is current.
func (p *Parser) parseAttribute() (Attribute, error) {
	pos := p.position(p.cur())
	key, _, _ := p.parseKebabIdent()

	if p.cur().Type == TokenColon {
		return p.parseDirective(pos, key)
	}

	if p.cur().Type == TokenEquals {
		p.advance()
		val := p.parseValue()
		return Attribute{Kind: AttrKeyValue, Key: key, Value: val, Position: pos}, nil
	}

	return Attribute{Kind: AttrBool, Key: key, Position: pos}, nil
}

// parseDirective parses kind:subkey[=value] with its sub-key variants:
// a kebab identifier, a string literal (class:"a-key"), or a brace shorthand
// (class:{some-class}).
func (p *Parser) parseDirective(pos Position, kind string) (Attribute, error) {
	p.advance() // consume :

	if !directiveKinds[kind] {
		p.errors.AddErrorf(pos, "unknown directive %q", kind)
	}

	attr := Attribute{Kind: AttrDirective, Dir: kind, Position: pos}

	tok := p.cur()
	switch {
	case tok.Type == TokenIdent:
		key, _, _ := p.parseKebabIdent()
		attr.Key = key

	case tok.Type == TokenString:
		p.advance()
		attr.Key = tok.Literal
		attr.KeyLit = true

	case tok.Type == TokenGroup && tok.Delim == DelimBrace:
		key, ok := singleIdent(tok.Sub)
		if !ok {
			return Attribute{}, NewError(p.position(tok),
				"directive shorthand must contain a single identifier")
		}
		if kind == "clone" {
			// clone: names a captured variable, not a key/value pair, so the
			// {key} shorthand has nothing to expand to.
			p.errors.AddErrorWithHint(p.position(tok),
				"clone: does not take the shorthand form",
				"write clone:"+key)
		}
		p.advance()
		attr.Key = key
		attr.Shorthand = true
		return attr, nil

	default:
		return Attribute{}, NewErrorf(p.position(tok),
			"expected %s directive key, found %s", kind, tok)
	}

	if p.cur().Type == TokenEquals {
		p.advance()
		attr.Value = p.parseValue()
	}
	return attr, nil
}

// parseValue parses the value after =. On a malformed value a diagnostic is
// recorded and a placeholder is returned so parsing continues.
func (p *Parser) parseValue() *Value {
	tok := p.cur()
	pos := p.position(tok)

	switch tok.Type {
	case TokenString, TokenRawString:
		p.advance()
		return &Value{Kind: ValueString, Str: tok.Literal, Raw: p.raw(tok), Position: pos}

	case TokenInt:
		p.advance()
		return &Value{Kind: ValueInt, Raw: tok.Literal, Position: pos}

	case TokenFloat:
		p.advance()
		return &Value{Kind: ValueFloat, Raw: tok.Literal, Position: pos}

	case TokenMinus:
		next := p.peek()
		if (next.Type == TokenInt || next.Type == TokenFloat) && adjacent(tok, next) {
			p.advance()
			p.advance()
			kind := ValueInt
			if next.Type == TokenFloat {
				kind = ValueFloat
			}
			return &Value{Kind: kind, Raw: "-" + next.Literal, Position: pos}
		}

	case TokenGroup:
		switch tok.Delim {
		case DelimBrace:
			p.advance()
			return &Value{Kind: ValueBlock, Raw: p.groupRaw(tok), Position: pos}
		case DelimBracket:
			p.advance()
			return &Value{Kind: ValueBracketed, Raw: p.groupRaw(tok), Position: pos}
		}

	case TokenIdent:
		if tok.Literal == "true" || tok.Literal == "false" {
			p.advance()
			return &Value{Kind: ValueBool, Bool: tok.Literal == "true", Raw: tok.Literal, Position: pos}
		}
		if tok.Literal == "f" && p.peek().Type == TokenGroup &&
			p.peek().Delim == DelimBracket && adjacent(tok, p.peek()) {
			p.advance()
			group := p.advance()
			return &Value{Kind: ValueBracketed, Raw: p.groupRaw(group), Format: true, Position: pos}
		}
		// An identifier followed by : or = is the next attribute's key, so
		// the value is missing outright.
		if p.peek().Type == TokenColon || p.peek().Type == TokenEquals {
			break
		}
		// A bare identifier value is almost always a missing brace pair.
		p.advance()
		p.errors.AddErrorWithHint(pos,
			"attribute values that are expressions must be braced",
			"write ={"+tok.Literal+"}")
		return &Value{Kind: ValueBlock, Raw: tok.Literal, Position: pos}
	}

	p.errors.AddError(pos, "expected attribute value after =")
	return &Value{Kind: ValuePlaceholder, Position: pos}
}

// singleIdent reports whether a group's tokens form exactly one (possibly
// kebab) identifier, returning the assembled name.
func singleIdent(toks []Token) (string, bool) {
	if len(toks) == 0 || toks[0].Type != TokenIdent {
		return "", false
	}
	name := toks[0].Literal
	last := toks[0]
	i := 1
	for i < len(toks) && toks[i].Type == TokenMinus && adjacent(last, toks[i]) {
		if i+1 >= len(toks) {
			return "", false
		}
		next := toks[i+1]
		if (next.Type != TokenIdent && next.Type != TokenInt) || !adjacent(toks[i], next) {
			return "", false
		}
		name += "-" + next.Literal
		last = next
		i += 2
	}
	if i != len(toks) {
		return "", false
	}
	return name, true
}
