package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teiid/teiid-sub017/pkg/token"
)

const eof = -1

// Lexer tokenizes SQL input. A Lexer is used by one parse call only.
type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset after ch
	ch      rune // current char, eof at end of input
	line    int  // line of ch (1-based)
	col     int  // column of ch in runes (1-based)

	ansiQuoted bool
	hints      []string     // hint payloads waiting for the next token
	pending    *token.Token // lexical error raised while skipping comments

	// Comments collected during lexing (for tooling)
	Comments []*token.Comment
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string, info ParseInfo) *Lexer {
	l := &Lexer{
		input:      input,
		line:       1,
		ansiQuoted: info.AnsiQuotedIdentifiers,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = eof
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += w
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() rune {
	if l.ch == eof || l.readPos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// NextToken returns the next token. Hint comments directly before the
// token are attached to it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	if l.pending != nil {
		tok := *l.pending
		l.pending = nil
		return tok
	}

	start := l.pos
	pos := l.currentPos()
	tok := l.scan()
	tok.Pos = pos
	if tok.Raw == "" && tok.Type != token.EOF {
		tok.Raw = l.input[start:l.pos]
	}
	if len(l.hints) > 0 {
		tok.Hints = l.hints
		l.hints = nil
	}
	return tok
}

func (l *Lexer) scan() token.Token {
	switch l.ch {
	case eof:
		return token.Token{Type: token.EOF}
	case '+':
		return l.single(token.PLUS)
	case '-':
		return l.single(token.MINUS)
	case '*':
		return l.single(token.STAR)
	case '/':
		return l.single(token.SLASH)
	case '%':
		return l.single(token.PERCENT)
	case '=':
		if l.peekChar() == '>' {
			return l.double(token.ARROW)
		}
		return l.single(token.EQ)
	case '<':
		switch l.peekChar() {
		case '=':
			return l.double(token.LE)
		case '>':
			return l.double(token.NE)
		}
		return l.single(token.LT)
	case '>':
		if l.peekChar() == '=' {
			return l.double(token.GE)
		}
		return l.single(token.GT)
	case '!':
		if l.peekChar() == '=' {
			return l.double(token.NE)
		}
	case '|':
		if l.peekChar() == '|' {
			return l.double(token.DPIPE)
		}
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		return l.single(token.DOT)
	case ',':
		return l.single(token.COMMA)
	case '(':
		return l.single(token.LPAREN)
	case ')':
		return l.single(token.RPAREN)
	case '[':
		return l.single(token.LBRACKET)
	case ']':
		return l.single(token.RBRACKET)
	case '{':
		return l.single(token.LBRACE)
	case '}':
		return l.single(token.RBRACE)
	case '?':
		return l.single(token.QMARK)
	case ';':
		return l.single(token.SEMICOLON)
	case ':':
		return l.single(token.COLON)
	case '\'':
		return l.readString(false)
	case '"':
		return l.readQuotedIdentifier()
	default:
		switch {
		case token.IsIdentStart(l.ch):
			return l.readIdentifier()
		case isDigit(l.ch):
			return l.readNumber()
		}
	}
	ch := l.ch
	l.readChar()
	return token.Token{
		Type: token.ILLEGAL,
		Raw:  string(ch),
		Err:  fmt.Sprintf("Encountered: \"%c\" (%d), after : \"\"", ch, ch),
	}
}

func (l *Lexer) single(t token.TokenType) token.Token {
	lit := string(l.ch)
	l.readChar()
	return token.Token{Type: t, Literal: lit}
}

func (l *Lexer) double(t token.TokenType) token.Token {
	lit := string(l.ch)
	l.readChar()
	lit += string(l.ch)
	l.readChar()
	return token.Token{Type: t, Literal: lit}
}

// skipWhitespaceAndComments skips whitespace and collects comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for l.pending == nil {
		for l.ch != eof && unicode.IsSpace(l.ch) {
			l.readChar()
		}
		switch {
		case l.ch == '-' && l.peekChar() == '-':
			l.collectLineComment()
		case l.ch == '/' && l.peekChar() == '*':
			l.collectBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) collectLineComment() {
	startPos := l.currentPos()
	for l.ch != '\n' && l.ch != eof {
		l.readChar()
	}
	l.Comments = append(l.Comments, &token.Comment{
		Kind: token.LineComment,
		Text: l.input[startPos.Offset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	})
}

// collectBlockComment collects a block comment. Block comments nest.
func (l *Lexer) collectBlockComment() {
	startPos := l.currentPos()
	l.readChar() // skip '/'
	l.readChar() // skip '*'
	kind := token.BlockComment
	if l.ch == '+' {
		kind = token.HintComment
	}

	depth := 1
	for depth > 0 {
		switch {
		case l.ch == eof:
			l.pending = &token.Token{
				Type: token.ILLEGAL,
				Pos:  startPos,
				Raw:  l.input[startPos.Offset:],
				Err:  "Unterminated comment.",
			}
			return
		case l.ch == '/' && l.peekChar() == '*':
			depth++
			l.readChar()
		case l.ch == '*' && l.peekChar() == '/':
			depth--
			l.readChar()
		}
		l.readChar()
	}

	c := &token.Comment{
		Kind: kind,
		Text: l.input[startPos.Offset:l.pos],
		Span: token.Span{Start: startPos, End: l.currentPos()},
	}
	l.Comments = append(l.Comments, c)
	if c.IsHint() {
		l.hints = append(l.hints, c.HintPayload())
	}
}

// readString reads a single-quoted string literal. Doubled quotes escape a
// quote; with backslash set, C style escapes are decoded as well.
func (l *Lexer) readString(backslash bool) token.Token {
	start := l.pos
	l.readChar() // skip opening quote

	var b strings.Builder
	for {
		switch {
		case l.ch == eof:
			return token.Token{Type: token.ILLEGAL, Raw: l.input[start:], Err: "Unterminated string literal."}
		case l.ch == '\'':
			l.readChar()
			if l.ch != '\'' {
				return token.Token{Type: token.STRING, Literal: b.String()}
			}
			b.WriteRune('\'')
			l.readChar()
		case backslash && l.ch == '\\':
			l.readChar()
			if !l.readEscape(&b) {
				return token.Token{Type: token.ILLEGAL, Raw: l.input[start:l.pos], Err: "Invalid escape sequence."}
			}
		default:
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readEscape(b *strings.Builder) bool {
	switch l.ch {
	case 'n':
		b.WriteRune('\n')
	case 't':
		b.WriteRune('\t')
	case 'r':
		b.WriteRune('\r')
	case 'b':
		b.WriteRune('\b')
	case 'f':
		b.WriteRune('\f')
	case 'u':
		var hex strings.Builder
		for range 4 {
			l.readChar()
			if !isHexDigit(l.ch) {
				return false
			}
			hex.WriteRune(l.ch)
		}
		v, _ := strconv.ParseUint(hex.String(), 16, 32)
		b.WriteRune(rune(v))
	case eof:
		return false
	default:
		b.WriteRune(l.ch)
	}
	l.readChar()
	return true
}

// readQuotedIdentifier reads a double-quoted identifier, or a string literal
// when ANSI quoted identifiers are off. "" escapes a quote.
func (l *Lexer) readQuotedIdentifier() token.Token {
	start := l.pos
	l.readChar() // skip opening quote

	var b strings.Builder
	for {
		switch l.ch {
		case eof:
			return token.Token{Type: token.ILLEGAL, Raw: l.input[start:], Err: "Unterminated quoted identifier."}
		case '"':
			l.readChar()
			if l.ch == '"' {
				b.WriteRune('"')
				l.readChar()
				continue
			}
			if !l.ansiQuoted {
				return token.Token{Type: token.STRING, Literal: b.String()}
			}
			if b.Len() == 0 {
				return token.Token{Type: token.ILLEGAL, Raw: l.input[start:l.pos], Err: "Empty quoted identifier."}
			}
			return token.Token{Type: token.IDENT, Literal: b.String(), Quoted: true}
		default:
			b.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readIdentifier reads an unquoted identifier or keyword. N'..' and E'..'
// prefixed strings are recognised here.
func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	l.readChar()
	for token.IsIdentPart(l.ch) {
		l.readChar()
	}
	word := l.input[start:l.pos]

	if l.ch == '\'' && len(word) == 1 {
		switch word {
		case "N", "n":
			tok := l.readString(false)
			tok.Raw = l.input[start:l.pos]
			return tok
		case "E", "e":
			tok := l.readString(true)
			tok.Raw = l.input[start:l.pos]
			return tok
		}
	}
	return token.Token{Type: token.LookupIdent(word), Literal: word}
}

// readNumber reads an integer, decimal or exponent literal.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	kind := token.INTEGER

	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		kind = token.DECIMAL
		l.readChar() // skip '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		kind = token.FLOAT
		l.readChar() // skip 'e' or 'E'
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return token.Token{Type: kind, Literal: l.input[start:l.pos]}
}

// exponentFollows reports whether the e at ch starts an exponent.
func (l *Lexer) exponentFollows() bool {
	rest := l.input[l.readPos:]
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		rest = rest[1:]
	}
	return rest != "" && rest[0] >= '0' && rest[0] <= '9'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// Tokenize returns all tokens from the input, ending with EOF or the first
// ILLEGAL token.
func Tokenize(input string, info ParseInfo) []token.Token {
	l := NewLexer(input, info)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	return tokens
}
