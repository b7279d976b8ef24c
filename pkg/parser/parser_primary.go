package parser

import (
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Primary expression parsing.
//
// Grammar:
//
//	primary → literal | typed_literal | escape_literal | "?"
//	        | "(" (subquery | condition) ")"
//	        | CASE ... END
//	        | special_function | aggregate [OVER window]
//	        | name "(" [args] ")"
//	        | name

// parsePrimary parses a primary expression.
func (p *Parser) parsePrimary() core.Expression {
	tok := p.tok()
	switch tok.Type {
	case token.STRING:
		p.next()
		return core.NewConstant(tok.Literal)
	case token.INTEGER, token.DECIMAL, token.FLOAT:
		p.next()
		return p.parseNumber(tok)
	case token.TRUE:
		p.next()
		return core.NewConstant(true)
	case token.FALSE:
		p.next()
		return core.NewConstant(false)
	case token.UNKNOWN:
		p.next()
		return core.NullConstant(core.TypeBoolean)
	case token.NULL:
		p.next()
		return core.NullConstant(core.TypeNull)
	case token.QMARK:
		p.next()
		return &core.Reference{Index: p.nextReference()}
	case token.LPAREN:
		return p.parseParenthesized()
	case token.LBRACE:
		return p.parseBraceExpression()
	case token.CASE:
		return p.parseCase()
	case token.CAST:
		return p.parseCast()
	case token.CONVERT:
		return p.parseConvert()
	case token.ARRAY_AGG, token.XMLAGG:
		return p.parseAggregate()
	case token.XMLELEMENT:
		return p.parseXMLElement()
	case token.XMLFOREST:
		return p.parseXMLForest()
	case token.XMLQUERY:
		return p.parseXMLQuery()
	case token.XMLPARSE:
		return p.parseXMLParse()
	case token.XMLSERIALIZE:
		return p.parseXMLSerialize()
	case token.XMLPI:
		return p.parseXMLPI()
	case token.LEFT, token.RIGHT, token.CHAR, token.INSERT, token.TRANSLATE,
		token.USER, token.XMLCONCAT, token.XMLCOMMENT:
		if p.checkPeek(token.LPAREN) {
			p.next()
			return p.parseFunctionArgs(strings.ToUpper(tok.Literal))
		}
	case token.IDENT:
		return p.parseIdentPrimary()
	}
	p.fail("")
	return nil
}

// parseIdentPrimary handles everything that starts with an identifier:
// typed literals, special functions, aggregates, calls and column names.
func (p *Parser) parseIdentPrimary() core.Expression {
	tok := p.tok()
	if !tok.Quoted {
		word := strings.ToLower(tok.Literal)
		if p.peekAt(1).Type == token.STRING {
			switch word {
			case "date":
				p.next()
				return p.temporalConstant(tok, core.TypeDate, p.next().Literal)
			case "time":
				p.next()
				return p.temporalConstant(tok, core.TypeTime, p.next().Literal)
			case "timestamp":
				p.next()
				return p.temporalConstant(tok, core.TypeTimestamp, p.next().Literal)
			}
		}
		if p.checkPeek(token.LPAREN) {
			switch {
			case isAggregateName(word):
				return p.parseAggregate()
			case word == "textagg":
				return p.parseTextAgg()
			case word == "substring":
				return p.parseSubstring()
			case word == "trim":
				return p.parseTrim()
			case word == "extract":
				return p.parseExtract()
			case word == "timestampadd" || word == "timestampdiff":
				return p.parseTimestampFunction()
			}
		}
	}

	name := p.parseName()
	if p.match(token.LPAREN) {
		return p.parseFunctionArgsAfterParen(name)
	}
	return &core.ElementSymbol{Name: name}
}

// parseFunctionArgs parses "(" [expr ("," expr)*] ")" for a named call.
func (p *Parser) parseFunctionArgs(name string) core.Expression {
	p.expect(token.LPAREN)
	return p.parseFunctionArgsAfterParen(name)
}

func (p *Parser) parseFunctionArgsAfterParen(name string) core.Expression {
	fn := &core.Function{Name: name}
	if !p.check(token.RPAREN) {
		fn.Args = p.parseExpressionList()
	}
	p.expect(token.RPAREN)
	return fn
}

// parseParenthesized parses "(" subquery ")" or "(" condition ")". A
// parenthesized predicate is returned as criteria.
func (p *Parser) parseParenthesized() core.Expression {
	if p.startsSubquery(1) {
		var cmd core.Command
		if p.try(func() {
			p.expect(token.LPAREN)
			cmd = p.parseSubqueryCommand()
			p.expect(token.RPAREN)
		}) {
			return &core.ScalarSubquery{Command: cmd}
		}
	}
	p.expect(token.LPAREN)
	e := p.parseExpression()
	p.expect(token.RPAREN)
	return e
}

// startsSubquery reports whether the token at offset k can begin a
// parenthesized subquery body.
func (p *Parser) startsSubquery(k int) bool {
	switch p.peekAt(k).Type {
	case token.SELECT, token.WITH, token.LPAREN, token.EXEC, token.EXECUTE:
		return true
	}
	return false
}

// parseSubqueryCommand parses the body of a subquery: a query expression
// or a procedure call.
func (p *Parser) parseSubqueryCommand() core.Command {
	if p.check(token.EXEC) || p.check(token.EXECUTE) {
		return p.parseExec()
	}
	return p.parseQueryExpression()
}

// parseBraceExpression parses {fn ...} and escape literals.
func (p *Parser) parseBraceExpression() core.Expression {
	if p.isEscapeLiteral() {
		return p.parseEscapeLiteral()
	}
	if p.peekAt(1).Is("fn") {
		p.next()
		p.next()
		e := p.parsePrimary()
		p.expect(token.RBRACE)
		return e
	}
	p.fail("")
	return nil
}

// parseCase parses both the simple and the searched CASE forms.
func (p *Parser) parseCase() core.Expression {
	p.expect(token.CASE)
	if p.check(token.WHEN) {
		c := &core.SearchedCaseExpression{}
		for p.match(token.WHEN) {
			c.When = append(c.When, p.parseCondition())
			p.expect(token.THEN)
			c.Then = append(c.Then, p.parseExpression())
		}
		if p.match(token.ELSE) {
			c.Else = p.parseExpression()
		}
		p.expect(token.END)
		return c
	}

	c := &core.CaseExpression{Expression: p.parseExpression()}
	if !p.check(token.WHEN) {
		p.failf(errExpecting, `"WHEN"`)
	}
	for p.match(token.WHEN) {
		c.When = append(c.When, p.parseExpression())
		p.expect(token.THEN)
		c.Then = append(c.Then, p.parseExpression())
	}
	if p.match(token.ELSE) {
		c.Else = p.parseExpression()
	}
	p.expect(token.END)
	return c
}
