package mvgen

import (
	"errors"
	"unicode"
)

// parseChildrenNodes parses the contents of a children group. The receiver is
// a sub-parser over the group's tokens. pos is the group's position; allowSlot
// permits slot:Name children at this level.
func (p *Parser) parseChildrenNodes(pos Position, allowSlot bool) *ChildrenSpec {
	spec := &ChildrenSpec{Position: pos}
	spec.Params = p.parseClosureParams()

	for !p.atEnd() {
		if p.cur().Type == TokenPipe {
			// A parameter list is only meaningful before the first child; a
			// later one would have nothing to scope over.
			p.errors.AddErrorWithHint(p.position(p.cur()),
				"closure parameters must open the children group",
				"move |...| before the first child")
			p.skipMisplacedParams()
			continue
		}
		node, err := p.parseNode(allowSlot)
		if err != nil {
			var perr *Error
			if errors.As(err, &perr) {
				p.errors.Add(perr)
			} else {
				p.errors.AddError(pos, err.Error())
			}
			p.recoverChild()
			continue
		}
		if node != nil {
			spec.Nodes = append(spec.Nodes, node)
		}
	}
	return spec
}

// parseClosureParams parses an optional leading |a, b| parameter list.
func (p *Parser) parseClosureParams() []string {
	if p.cur().Type != TokenPipe {
		return nil
	}
	open := p.advance()

	var params []string
	for {
		tok := p.cur()
		switch tok.Type {
		case TokenPipe:
			p.advance()
			return params
		case TokenIdent:
			params = append(params, tok.Literal)
			p.advance()
			if p.cur().Type == TokenComma {
				p.advance()
			}
		default:
			p.errors.AddError(p.position(open), "unterminated closure parameter list")
			return params
		}
	}
}

// skipMisplacedParams consumes a |a, b| list found after the first child so
// one diagnostic covers it without cascading into the following siblings.
func (p *Parser) skipMisplacedParams() {
	p.advance() // |
	for !p.atEnd() {
		switch p.cur().Type {
		case TokenPipe:
			p.advance()
			return
		case TokenIdent, TokenComma:
			p.advance()
		default:
			return
		}
	}
}

// parseSlot parses a slot:Name child. The "slot" identifier is current.
func (p *Parser) parseSlot() (Node, error) {
	tok := p.advance() // slot
	p.advance()        // :
	return p.parseSlotBody(p.position(tok))
}

// parseSlotBody parses the slot name, attributes, and children. Slot children
// groups may not contain further slots directly.
func (p *Parser) parseSlotBody(pos Position) (Node, error) {
	name := p.cur()
	if name.Type != TokenIdent {
		return nil, NewError(p.position(name), "expected slot name after slot:")
	}
	if !startsUpper(name.Literal) {
		p.errors.AddErrorf(p.position(name),
			"slot name %q must start with an uppercase letter", name.Literal)
	}
	p.advance()

	attrs, children, err := p.parseAttributes(false)
	if err != nil {
		return nil, err
	}
	return &Slot{
		Name:     name.Literal,
		Attrs:    attrs,
		Children: children,
		Position: pos,
	}, nil
}

// recoverChild skips tokens after a failed child parse until something that
// can plausibly start the next sibling, so remaining children still get
// checked.
func (p *Parser) recoverChild() {
	for !p.atEnd() {
		switch p.cur().Type {
		case TokenIdent, TokenString, TokenRawString, TokenGroup, TokenBang:
			return
		case TokenSemicolon:
			p.advance()
			return
		}
		p.advance()
	}
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
