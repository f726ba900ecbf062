package mvgen

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes .mv source files into a token buffer. Delimiter groups are
// captured as nested sub-sequences on a single TokenGroup token; the content
// of a group is also available verbatim through its source span, which is how
// opaque host expressions are passed through untouched.
type Lexer struct {
	filename string
	source   string
	pos      int  // current position in source
	readPos  int  // next position to read
	ch       rune // current character
	line     int  // current line (1-based)
	column   int  // current column (1-based)

	// Track the start position of the current token
	tokenLine     int
	tokenColumn   int
	tokenStartPos int

	errors *ErrorList
}

// NewLexer creates a new Lexer for the given source.
func NewLexer(filename, source string) *Lexer {
	l := &Lexer{
		filename: filename,
		source:   source,
		line:     1,
		column:   0,
		errors:   NewErrorList(),
	}
	l.readChar()
	return l
}

// Errors returns any recoverable errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// Lex tokenizes the whole source. An unbalanced delimiter group is fatal and
// returned as an error; everything else is recorded in Errors and lexing
// continues.
func (l *Lexer) Lex() ([]Token, error) {
	toks, err := l.lexSequence(0, Position{})
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// lexSequence lexes tokens until EOF (closing == 0) or the closing delimiter
// rune is found. openPos is the position of the opening delimiter, used to
// anchor unclosed-group errors.
func (l *Lexer) lexSequence(closing rune, openPos Position) ([]Token, error) {
	var toks []Token
	for {
		l.skipWhitespaceAndComments()
		l.startToken()

		switch l.ch {
		case 0:
			if closing != 0 {
				return nil, NewErrorf(openPos, "unclosed delimiter %q", string(delimOpen(closing)))
			}
			return toks, nil

		case ')', '}', ']':
			if l.ch == closing {
				return toks, nil
			}
			pos := l.position()
			ch := l.ch
			l.readChar()
			return nil, NewErrorf(pos, "unexpected closing delimiter %q", string(ch))

		case '(', '{', '[':
			tok, err := l.lexGroup()
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)

		case '"':
			toks = append(toks, l.readString())

		case '`':
			toks = append(toks, l.readRawString())

		case '\'':
			toks = append(toks, l.readRune())

		case ':':
			if l.peekChar() == ':' {
				l.readChar()
				l.readChar()
				toks = append(toks, l.makeToken(TokenPathSep, "::"))
			} else {
				l.readChar()
				toks = append(toks, l.makeToken(TokenColon, ":"))
			}

		case '.':
			if isDigit(l.peekChar()) {
				toks = append(toks, l.readNumber())
			} else {
				l.readChar()
				toks = append(toks, l.makeToken(TokenDot, "."))
			}

		default:
			if typ, ok := puncts[l.ch]; ok {
				lit := string(l.ch)
				l.readChar()
				toks = append(toks, l.makeToken(typ, lit))
				break
			}
			if isLetter(l.ch) {
				toks = append(toks, l.readIdentifier())
				break
			}
			if isDigit(l.ch) {
				toks = append(toks, l.readNumber())
				break
			}
			if unicode.IsPunct(l.ch) || unicode.IsSymbol(l.ch) {
				// Operators inside opaque host expressions; the parser never
				// inspects these, spans recover the verbatim text.
				lit := string(l.ch)
				l.readChar()
				toks = append(toks, l.makeToken(TokenPunct, lit))
				break
			}
			ch := l.ch
			l.readChar()
			l.errors.AddErrorf(l.position(), "unexpected character %q", ch)
			toks = append(toks, l.makeToken(TokenError, string(ch)))
		}
	}
}

// puncts maps single-rune punctuation to dedicated token types.
var puncts = map[rune]TokenType{
	';': TokenSemicolon,
	'=': TokenEquals,
	',': TokenComma,
	'|': TokenPipe,
	'<': TokenLAngle,
	'>': TokenRAngle,
	'-': TokenMinus,
	'!': TokenBang,
	'#': TokenHash,
}

// lexGroup lexes a delimiter group into a single TokenGroup token with the
// nested token sub-sequence.
func (l *Lexer) lexGroup() (Token, error) {
	open := l.ch
	openPos := l.position()
	startLine, startCol, startPos := l.tokenLine, l.tokenColumn, l.tokenStartPos

	var delim Delim
	var closing rune
	switch open {
	case '(':
		delim, closing = DelimParen, ')'
	case '{':
		delim, closing = DelimBrace, '}'
	case '[':
		delim, closing = DelimBracket, ']'
	}

	l.readChar() // consume opening delimiter
	sub, err := l.lexSequence(closing, openPos)
	if err != nil {
		return Token{}, err
	}
	l.readChar() // consume closing delimiter

	return Token{
		Type:     TokenGroup,
		Delim:    delim,
		Sub:      sub,
		Line:     startLine,
		Column:   startCol,
		StartPos: startPos,
		EndPos:   l.pos,
	}, nil
}

// GroupContent returns the verbatim source text inside a group token,
// excluding the delimiters.
func (l *Lexer) GroupContent(t Token) string {
	return groupContent(l.source, t)
}

func groupContent(source string, t Token) string {
	if t.Type != TokenGroup || t.EndPos-t.StartPos < 2 {
		return ""
	}
	return source[t.StartPos+1 : t.EndPos-1]
}

func delimOpen(closing rune) rune {
	switch closing {
	case ')':
		return '('
	case '}':
		return '{'
	case ']':
		return '['
	}
	return closing
}

// readChar advances to the next character in the source.
func (l *Lexer) readChar() {
	prevWasNewline := l.ch == '\n'

	if l.readPos >= len(l.source) {
		l.ch = 0
		l.pos = l.readPos
		if prevWasNewline {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		return
	}

	r, size := utf8.DecodeRuneInString(l.source[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += size

	if prevWasNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.readPos:])
	return r
}

// startToken marks the beginning of a new token.
func (l *Lexer) startToken() {
	l.tokenLine = l.line
	l.tokenColumn = l.column
	l.tokenStartPos = l.pos
}

// makeToken creates a token with the current start position.
func (l *Lexer) makeToken(typ TokenType, literal string) Token {
	return Token{
		Type:     typ,
		Literal:  literal,
		Line:     l.tokenLine,
		Column:   l.tokenColumn,
		StartPos: l.tokenStartPos,
		EndPos:   l.pos,
	}
}

// position returns the current token's Position for error reporting.
func (l *Lexer) position() Position {
	return Position{
		File:   l.filename,
		Line:   l.tokenLine,
		Column: l.tokenColumn,
	}
}

// skipWhitespaceAndComments skips whitespace (including newlines: the markup
// is whitespace-insensitive) and // and /* */ comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			switch l.peekChar() {
			case '/':
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
			case '*':
				pos := l.position()
				l.readChar() // skip /
				l.readChar() // skip *
				for {
					if l.ch == 0 {
						l.errors.AddError(pos, "unterminated block comment")
						return
					}
					if l.ch == '*' && l.peekChar() == '/' {
						l.readChar()
						l.readChar()
						break
					}
					l.readChar()
				}
			default:
				// Bare slash: an operator inside an opaque expression.
				return
			}
		default:
			return
		}
	}
}

// readIdentifier reads a single identifier segment. Kebab-case names are
// assembled by the parser from adjacent Ident/Minus tokens.
func (l *Lexer) readIdentifier() Token {
	startPos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.makeToken(TokenIdent, l.source[startPos:l.pos])
}

// readNumber reads an integer or float literal.
func (l *Lexer) readNumber() Token {
	startPos := l.pos
	isFloat := false

	if l.ch == '.' {
		isFloat = true
		l.readChar()
	}

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && !isFloat && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	literal := l.source[startPos:l.pos]
	if isFloat {
		return l.makeToken(TokenFloat, literal)
	}
	return l.makeToken(TokenInt, literal)
}

// readString reads a double-quoted string with escape sequences. The token
// Literal holds the decoded value; the span holds the quoted original.
func (l *Lexer) readString() Token {
	l.readChar() // consume opening "

	var result []rune
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\n' {
			l.errors.AddError(l.position(), "unterminated string literal")
			return l.makeToken(TokenError, string(result))
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			switch l.ch {
			case 'n':
				result = append(result, '\n')
			case 't':
				result = append(result, '\t')
			case 'r':
				result = append(result, '\r')
			case '\\':
				result = append(result, '\\')
			case '"':
				result = append(result, '"')
			case '0':
				result = append(result, '\000')
			default:
				result = append(result, '\\', l.ch)
			}
		} else {
			result = append(result, l.ch)
		}
		l.readChar()
	}

	if l.ch == 0 {
		l.errors.AddError(l.position(), "unterminated string literal")
		return l.makeToken(TokenError, string(result))
	}

	l.readChar() // consume closing "
	return l.makeToken(TokenString, string(result))
}

// readRawString reads a backtick-quoted raw string.
func (l *Lexer) readRawString() Token {
	l.readChar() // consume opening `

	startPos := l.pos
	for l.ch != '`' && l.ch != 0 {
		l.readChar()
	}

	if l.ch == 0 {
		l.errors.AddError(l.position(), "unterminated raw string literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	literal := l.source[startPos:l.pos]
	l.readChar() // consume closing `
	return l.makeToken(TokenRawString, literal)
}

// readRune reads a single-quoted rune literal. Only meaningful inside opaque
// host expressions; the parser never consumes these directly.
func (l *Lexer) readRune() Token {
	l.readChar() // consume opening '

	startPos := l.pos
	for l.ch != '\'' && l.ch != 0 && l.ch != '\n' {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}

	if l.ch != '\'' {
		l.errors.AddError(l.position(), "unterminated rune literal")
		return l.makeToken(TokenError, l.source[startPos:l.pos])
	}

	literal := l.source[startPos:l.pos]
	l.readChar() // consume closing '
	return l.makeToken(TokenPunct, literal)
}

// isLetter returns true if the rune is a letter or underscore.
func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit returns true if the rune is a digit.
func isDigit(ch rune) bool {
	return unicode.IsDigit(ch)
}
