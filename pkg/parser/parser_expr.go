package parser

import (
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Value expression parsing using precedence climbing.
//
// Precedence levels, lowest first:
//
//	precConcat         = 1  (||)
//	precAdditive       = 2  (+, -)
//	precMultiplicative = 3  (*, /, %)
//
// All levels are left-associative. Unary minus binds tighter than any
// binary operator. Predicates (comparison, LIKE, IN, ...) and the logical
// operators sit above these levels and are parsed in parser_criteria.go.

const (
	precNone = iota
	precConcat
	precAdditive
	precMultiplicative
)

// parseExpression parses an expression. A bare predicate is accepted and
// returned as criteria; a plain value comes back unwrapped.
func (p *Parser) parseExpression() core.Expression {
	c := p.parseCondition()
	if ec, ok := c.(*core.ExpressionCriteria); ok {
		return ec.Expression
	}
	return c
}

// parseExpressionList parses expr ("," expr)*.
func (p *Parser) parseExpressionList() []core.Expression {
	list := []core.Expression{p.parseExpression()}
	for p.match(token.COMMA) {
		list = append(list, p.parseExpression())
	}
	return list
}

// parseValueExpression parses an arithmetic or concatenation expression.
func (p *Parser) parseValueExpression() core.Expression {
	return p.parseValueWithPrecedence(precConcat)
}

// parseValueWithPrecedence implements Pratt parsing over the binary value
// operators. Operators become two argument functions.
func (p *Parser) parseValueWithPrecedence(minPrecedence int) core.Expression {
	left := p.parseUnary()
	for {
		prec := infixPrecedence(p.tok().Type)
		if prec == precNone || prec < minPrecedence {
			return left
		}
		op := p.next()
		right := p.parseValueWithPrecedence(prec + 1)
		left = &core.Function{Name: operatorName(op), Args: []core.Expression{left, right}}
	}
}

// infixPrecedence returns the precedence of t as a binary value operator.
func infixPrecedence(t token.TokenType) int {
	switch t {
	case token.DPIPE:
		return precConcat
	case token.PLUS, token.MINUS:
		return precAdditive
	case token.STAR, token.SLASH, token.PERCENT:
		return precMultiplicative
	default:
		return precNone
	}
}

func operatorName(tok token.Token) string {
	switch tok.Type {
	case token.DPIPE:
		return core.FuncConcat
	case token.PLUS:
		return core.FuncPlus
	case token.MINUS:
		return core.FuncMinus
	case token.STAR:
		return core.FuncMult
	case token.SLASH:
		return core.FuncDiv
	default:
		return core.FuncMod
	}
}

// parseUnary parses [+|-] primary. A negated numeric literal folds into
// the constant; anything else is multiplied by -1.
func (p *Parser) parseUnary() core.Expression {
	switch {
	case p.match(token.PLUS):
		return p.parseUnary()
	case p.match(token.MINUS):
		operand := p.parseUnary()
		if c, ok := operand.(*core.Constant); ok {
			if neg, ok := negateConstant(c); ok {
				return neg
			}
		}
		return &core.Function{
			Name: core.FuncMult,
			Args: []core.Expression{operand, core.NewConstant(int32(-1))},
		}
	default:
		return p.parsePrimary()
	}
}

// ---------- Names ----------

// parseName parses id ("." id)* and returns the dotted name. A trailing
// ".*" is left for the caller.
func (p *Parser) parseName() string {
	if !p.check(token.IDENT) {
		p.failf(errExpecting, quoteTokenType(token.IDENT))
	}
	parts := []string{p.next().Literal}
	for p.check(token.DOT) && !p.checkPeek(token.STAR) {
		p.next()
		parts = append(parts, p.expect(token.IDENT).Literal)
	}
	return strings.Join(parts, ".")
}

// parseSimpleName parses a name that must not be qualified.
func (p *Parser) parseSimpleName() string {
	start := p.tok()
	name := p.parseName()
	if strings.Contains(name, ".") {
		p.failAt(start, errSimpleID, name)
	}
	return name
}

// parseIdentifier parses a single identifier.
func (p *Parser) parseIdentifier() string {
	return p.expect(token.IDENT).Literal
}

// parseElementList parses "(" name ("," name)* ")".
func (p *Parser) parseElementList() []*core.ElementSymbol {
	p.expect(token.LPAREN)
	var list []*core.ElementSymbol
	for {
		list = append(list, &core.ElementSymbol{Name: p.parseName()})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return list
}

// parseNameList parses name ("," name)* without parentheses.
func (p *Parser) parseNameList() []string {
	list := []string{p.parseName()}
	for p.match(token.COMMA) {
		list = append(list, p.parseName())
	}
	return list
}

// parseOptionalAlias parses [AS] id. Without AS only an unreserved
// identifier is taken as the alias.
func (p *Parser) parseOptionalAlias() string {
	if p.match(token.AS) {
		return p.parseIdentifier()
	}
	if p.check(token.IDENT) {
		return p.next().Literal
	}
	return ""
}

// parseDataType parses a type name with optional (p[, s]) arguments and
// array dimensions.
func (p *Parser) parseDataType() *core.TypeSpec {
	var name string
	switch {
	case p.check(token.CHAR):
		name = p.next().Literal
	default:
		name = p.parseIdentifier()
	}
	spec := &core.TypeSpec{Name: name}
	if p.match(token.LPAREN) {
		for {
			spec.Params = append(spec.Params, p.parseIntLiteral())
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	for p.check(token.LBRACKET) && p.checkPeek(token.RBRACKET) {
		p.next()
		p.next()
		spec.ArrayDimensions++
	}
	return spec
}

// parseTypeName parses a data type and returns its runtime name.
func (p *Parser) parseTypeName() string {
	return runtimeTypeName(p.parseDataType())
}

func runtimeTypeName(spec *core.TypeSpec) string {
	return core.CanonicalTypeName(spec.Name) + strings.Repeat("[]", spec.ArrayDimensions)
}
