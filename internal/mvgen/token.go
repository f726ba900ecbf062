// Package mvgen compiles .mv template files into Go source code.
//
// The pipeline consists of:
//   - [Lexer]: tokenizes .mv source into a token buffer, capturing
//     paren/brace/bracket groups as nested sub-sequences
//   - [Parser]: builds an AST from the token buffer
//   - [Normalize]: resolves shorthands and expands bracketed values
//   - [Generator]: emits Go source calling the pkg/view builder API
package mvgen

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Special tokens
	TokenEOF   TokenType = iota // end of input
	TokenError                  // lexer error placeholder

	// Literals
	TokenIdent     // identifier (single segment, no hyphens)
	TokenString    // string literal: "..."
	TokenRawString // raw string literal: `...`
	TokenInt       // integer literal: 123
	TokenFloat     // float literal: 1.23

	// Groups
	TokenGroup // (...) {...} [...] with nested token sub-sequence

	// Punctuation
	TokenDot       // .
	TokenHash      // #
	TokenColon     // :
	TokenPathSep   // ::
	TokenSemicolon // ;
	TokenEquals    // =
	TokenComma     // ,
	TokenPipe      // |
	TokenLAngle    // <
	TokenRAngle    // >
	TokenMinus     // -
	TokenBang      // !
	TokenPunct     // any other punctuation (only significant inside opaque groups)
)

// tokenNames maps token types to their string names for debugging.
var tokenNames = map[TokenType]string{
	TokenEOF:       "EOF",
	TokenError:     "Error",
	TokenIdent:     "Ident",
	TokenString:    "String",
	TokenRawString: "RawString",
	TokenInt:       "Int",
	TokenFloat:     "Float",
	TokenGroup:     "Group",
	TokenDot:       ".",
	TokenHash:      "#",
	TokenColon:     ":",
	TokenPathSep:   "::",
	TokenSemicolon: ";",
	TokenEquals:    "=",
	TokenComma:     ",",
	TokenPipe:      "|",
	TokenLAngle:    "<",
	TokenRAngle:    ">",
	TokenMinus:     "-",
	TokenBang:      "!",
	TokenPunct:     "Punct",
}

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// Delim identifies the delimiter of a group token.
type Delim int

const (
	DelimNone    Delim = iota
	DelimParen         // ( )
	DelimBrace         // { }
	DelimBracket       // [ ]
)

// String returns the opening delimiter character.
func (d Delim) String() string {
	switch d {
	case DelimParen:
		return "("
	case DelimBrace:
		return "{"
	case DelimBracket:
		return "["
	default:
		return "?"
	}
}

// Token represents a lexical token with its literal value and source span.
// Group tokens additionally carry their delimiter kind and the nested token
// sub-sequence; downstream parsers re-enter groups explicitly.
type Token struct {
	Type    TokenType
	Literal string  // decoded value for strings, raw text otherwise
	Delim   Delim   // delimiter kind for TokenGroup
	Sub     []Token // nested tokens for TokenGroup (delimiters excluded)

	Line     int
	Column   int
	StartPos int // byte offset in source where the token starts
	EndPos   int // byte offset just past the token (including closing delimiter)
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Type == TokenGroup {
		return fmt.Sprintf("Group%s(%d tokens) at %d:%d", t.Delim, len(t.Sub), t.Line, t.Column)
	}
	if t.Literal == "" {
		return fmt.Sprintf("%s at %d:%d", t.Type, t.Line, t.Column)
	}
	lit := t.Literal
	if len(lit) > 20 {
		lit = lit[:17] + "..."
	}
	return fmt.Sprintf("%s(%q) at %d:%d", t.Type, lit, t.Line, t.Column)
}

// Position represents a source code location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}
