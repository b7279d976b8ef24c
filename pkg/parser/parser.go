// Package parser turns federated SQL text into the AST of package core.
//
// # Usage
//
//	cmd, err := parser.ParseCommand("SELECT a FROM g WHERE b = 1")
//	if err != nil {
//	    // handle error
//	}
//
// # Grammar Overview
//
// The parser is a predictive recursive descent parser with a small amount of
// backtracking. Value expressions use precedence climbing:
//
//	command       → query_expr | insert | update | delete | exec | dynamic
//	              | create | drop | alter | create_procedure
//	query_expr    → [WITH with_list] query_body [ORDER BY ...] [limit]
//	query_body    → query_term ((UNION|EXCEPT) [ALL|DISTINCT] query_term)*
//	query_term    → query_primary (INTERSECT [ALL|DISTINCT] query_primary)*
//	query_primary → query | "(" query_body ")"
//	condition     → and_cond (OR and_cond)*
//	and_cond      → not_cond (AND not_cond)*
//	not_cond      → [NOT] predicate
//	predicate     → value [compare | BETWEEN | LIKE | IN | IS NULL ...]
//	value         → term (("||" | "+" | "-" | "*" | "/" | "%") term)*
//
// See each file for the grammar rules of that section.
package parser

import (
	"fmt"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/token"
)

// Parser parses one SQL text. A Parser holds per-call state only and must
// not be shared between goroutines.
type Parser struct {
	lexer *Lexer
	info  ParseInfo
	toks  []token.Token // tokens read so far
	idx   int           // index of the current token in toks

	refs     int         // next bind parameter index
	furthest *ParseError // deepest error seen by an abandoned alternative
}

// bailout unwinds the parser to the nearest recovery point.
type bailout struct{ err *ParseError }

// NewParser creates a new parser for the given SQL input.
func NewParser(sql string, info ParseInfo) *Parser {
	return &Parser{
		lexer: NewLexer(sql, info),
		info:  info,
	}
}

// ---------- Token Helpers ----------

// peekAt returns the token k positions after the current one.
func (p *Parser) peekAt(k int) token.Token {
	for len(p.toks) <= p.idx+k {
		if n := len(p.toks); n > 0 && (p.toks[n-1].Type == token.EOF || p.toks[n-1].Type == token.ILLEGAL) {
			return p.toks[n-1]
		}
		p.toks = append(p.toks, p.lexer.NextToken())
	}
	return p.toks[p.idx+k]
}

// tok returns the current token.
func (p *Parser) tok() token.Token {
	return p.peekAt(0)
}

// next consumes and returns the current token.
func (p *Parser) next() token.Token {
	t := p.tok()
	if t.Type == token.ILLEGAL {
		p.fail("")
	}
	if t.Type != token.EOF {
		p.idx++
	}
	return t
}

// check returns true if the current token is of the given type.
func (p *Parser) check(t token.TokenType) bool {
	return p.tok().Type == t
}

// checkPeek returns true if the token after the current one is of the given type.
func (p *Parser) checkPeek(t token.TokenType) bool {
	return p.peekAt(1).Type == t
}

// match consumes the current token if it matches and returns true.
func (p *Parser) match(t token.TokenType) bool {
	if p.check(t) {
		p.next()
		return true
	}
	return false
}

// expect consumes the current token if it matches, otherwise fails.
func (p *Parser) expect(t token.TokenType) token.Token {
	if !p.check(t) {
		p.failf(errExpecting, quoteTokenType(t))
	}
	return p.next()
}

// checkWord reports whether the current token is the non-reserved word w.
func (p *Parser) checkWord(w string) bool {
	return p.tok().Is(w)
}

// matchWord consumes the non-reserved word w if present.
func (p *Parser) matchWord(w string) bool {
	if p.checkWord(w) {
		p.next()
		return true
	}
	return false
}

// expectWord consumes the non-reserved word w or fails.
func (p *Parser) expectWord(w string) {
	if !p.matchWord(w) {
		p.failf(errExpecting, fmt.Sprintf("%q", strings.ToUpper(w)))
	}
}

// expectEOF fails unless all input has been consumed.
func (p *Parser) expectEOF() {
	if !p.check(token.EOF) {
		p.fail("")
	}
}

func quoteTokenType(t token.TokenType) string {
	switch t {
	case token.IDENT:
		return "<ID>"
	case token.STRING:
		return "<STRINGVAL>"
	case token.INTEGER:
		return "<INTEGERVAL>"
	}
	return fmt.Sprintf("%q", t.String())
}

// ---------- Failure and Recovery ----------

// fail aborts the current rule with an error at the current token. A
// lexical error in the current token takes precedence.
func (p *Parser) fail(detail string) {
	tok := p.tok()
	if tok.Type == token.ILLEGAL {
		p.abort(lexicalError(tok))
	}
	p.abort(syntaxError(tok, detail))
}

func (p *Parser) failf(format string, args ...any) {
	p.fail(fmt.Sprintf(format, args...))
}

// failAt aborts with a message that replaces the Encountered form.
func (p *Parser) failAt(tok token.Token, format string, args ...any) {
	p.abort(semanticError(tok, format, args...))
}

func (p *Parser) abort(err *ParseError) {
	panic(bailout{err})
}

// try runs fn as a tentative alternative. On failure the cursor and the
// bind parameter counter are restored and false is returned.
func (p *Parser) try(fn func()) (ok bool) {
	idx, refs := p.idx, p.refs
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout {
				panic(r)
			}
			p.remember(b.err)
			p.idx, p.refs = idx, refs
			ok = false
		}
	}()
	fn()
	return true
}

// remember keeps the error with the furthest position.
func (p *Parser) remember(err *ParseError) {
	if p.furthest == nil || err.Pos.After(p.furthest.Pos) {
		p.furthest = err
	}
}

// run executes a top level rule and converts a bailout into an error.
func (p *Parser) run(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout {
				panic(r)
			}
			perr := b.err
			if p.furthest != nil && p.furthest.Pos.After(perr.Pos) {
				perr = p.furthest
			}
			err = perr
		}
	}()
	fn()
	return nil
}

// lookaheadName reports whether a dotted name starts at the current token
// and returns the number of tokens it spans.
func (p *Parser) lookaheadName() int {
	if !p.check(token.IDENT) {
		return 0
	}
	n := 1
	for p.peekAt(n).Type == token.DOT && p.peekAt(n+1).Type == token.IDENT {
		n += 2
	}
	return n
}

// nextReference allocates the next bind parameter index.
func (p *Parser) nextReference() int {
	i := p.refs
	p.refs++
	return i
}
