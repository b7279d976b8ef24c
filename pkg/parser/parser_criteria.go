package parser

import (
	"unicode/utf8"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Criteria parsing.
//
// Grammar:
//
//	condition  → and_cond (OR and_cond)*
//	and_cond   → not_cond (AND not_cond)*
//	not_cond   → [NOT] predicate
//	predicate  → EXISTS "(" subquery ")"
//	           | HAS selector | TRANSLATE selector [WITH "(" translations ")"]
//	           | value [compare_tail | between | match | in | is_null]
//	compare    → op value | op (ANY|SOME|ALL) "(" subquery ")"
//	match      → [NOT] (LIKE | SIMILAR TO | LIKE_REGEX) value [ESCAPE STRING]
//	in         → [NOT] IN "(" (subquery | exprs) ")"
//	selector   → [op | LIKE | IN | IS NULL | BETWEEN] CRITERIA [ON "(" names ")"]

// parseCondition parses an OR chain. Chains nest to the left.
func (p *Parser) parseCondition() core.Criteria {
	left := p.parseAndCondition()
	for p.match(token.OR) {
		right := p.parseAndCondition()
		left = &core.CompoundCriteria{Operator: core.LogicalOr, Criteria: []core.Criteria{left, right}}
	}
	return left
}

func (p *Parser) parseAndCondition() core.Criteria {
	left := p.parseNotCondition()
	for p.match(token.AND) {
		right := p.parseNotCondition()
		left = &core.CompoundCriteria{Operator: core.LogicalAnd, Criteria: []core.Criteria{left, right}}
	}
	return left
}

func (p *Parser) parseNotCondition() core.Criteria {
	if p.check(token.NOT) {
		if p.checkPeek(token.EXISTS) {
			p.next()
			return p.parseExists(true)
		}
		p.next()
		return &core.NotCriteria{Criteria: p.parsePredicate()}
	}
	return p.parsePredicate()
}

// parsePredicate parses a single predicate. A value with no predicate
// operator after it becomes an ExpressionCriteria, unless the value is
// itself a parenthesized criteria.
func (p *Parser) parsePredicate() core.Criteria {
	switch {
	case p.check(token.EXISTS):
		return p.parseExists(false)
	case p.isHasCriteria():
		p.next()
		return &core.HasCriteria{Selector: p.parseCriteriaSelector()}
	case p.check(token.TRANSLATE) && !p.checkPeek(token.LPAREN):
		return p.parseTranslateCriteria()
	}

	left := p.parseValueExpression()
	return p.parsePredicateTail(left)
}

func (p *Parser) parsePredicateTail(left core.Expression) core.Criteria {
	tok := p.tok()
	if op, ok := compareOp(tok.Type); ok {
		p.next()
		q, quantified := p.parseQuantifier()
		if quantified {
			return &core.SubqueryCompareCriteria{
				Left:       left,
				Operator:   op,
				Quantifier: q,
				Command:    p.parseSubqueryInParens(),
			}
		}
		return &core.CompareCriteria{Left: left, Operator: op, Right: p.parseValueExpression()}
	}

	negated := false
	if tok.Type == token.NOT {
		switch p.peekAt(1).Type {
		case token.BETWEEN, token.LIKE, token.SIMILAR, token.LIKE_REGEX, token.IN:
			p.next()
			negated = true
		}
	}

	switch p.tok().Type {
	case token.BETWEEN:
		p.next()
		lower := p.parseValueExpression()
		p.expect(token.AND)
		upper := p.parseValueExpression()
		return &core.BetweenCriteria{Expression: left, Lower: lower, Upper: upper, Negated: negated}
	case token.LIKE:
		p.next()
		return p.parseMatchTail(left, core.MatchLike, negated)
	case token.SIMILAR:
		p.next()
		p.expect(token.TO)
		return p.parseMatchTail(left, core.MatchSimilar, negated)
	case token.LIKE_REGEX:
		p.next()
		return p.parseMatchTail(left, core.MatchRegex, negated)
	case token.IN:
		p.next()
		return p.parseInTail(left, negated)
	case token.IS:
		p.next()
		n := p.match(token.NOT)
		p.expect(token.NULL)
		return &core.IsNullCriteria{Expression: left, Negated: n}
	}

	if c, ok := left.(core.Criteria); ok {
		return c
	}
	return &core.ExpressionCriteria{Expression: left}
}

func compareOp(t token.TokenType) (core.CompareOp, bool) {
	switch t {
	case token.EQ:
		return core.CompareEQ, true
	case token.NE:
		return core.CompareNE, true
	case token.LT:
		return core.CompareLT, true
	case token.GT:
		return core.CompareGT, true
	case token.LE:
		return core.CompareLE, true
	case token.GE:
		return core.CompareGE, true
	}
	return 0, false
}

func (p *Parser) parseQuantifier() (core.Quantifier, bool) {
	switch {
	case p.match(token.ANY):
		return core.QuantifierAny, true
	case p.match(token.SOME):
		return core.QuantifierSome, true
	case p.match(token.ALL):
		return core.QuantifierAll, true
	}
	return 0, false
}

// parseMatchTail parses the pattern and optional escape of a match predicate.
func (p *Parser) parseMatchTail(left core.Expression, mode core.MatchMode, negated bool) core.Criteria {
	m := &core.MatchCriteria{Left: left, Right: p.parseValueExpression(), Negated: negated, Mode: mode}
	if mode == core.MatchRegex {
		return m
	}
	switch {
	case p.match(token.ESCAPE):
		m.EscapeChar = p.parseEscapeChar()
	case p.check(token.LBRACE) && p.checkPeek(token.ESCAPE):
		p.next()
		p.next()
		m.EscapeChar = p.parseEscapeChar()
		p.expect(token.RBRACE)
	}
	return m
}

func (p *Parser) parseEscapeChar() rune {
	tok := p.expect(token.STRING)
	if utf8.RuneCountInString(tok.Literal) != 1 {
		p.failAt(tok, errEscapeChar, tok.Literal)
	}
	r, _ := utf8.DecodeRuneInString(tok.Literal)
	return r
}

// parseInTail parses the list or subquery after IN.
func (p *Parser) parseInTail(left core.Expression, negated bool) core.Criteria {
	hint := subqueryHint(p.tok().Hints)
	if p.startsSubquery(1) {
		var cmd core.Command
		if p.try(func() { cmd = p.parseSubqueryInParens() }) {
			return &core.SubquerySetCriteria{Expression: left, Command: cmd, Negated: negated, Hint: hint}
		}
	}
	p.expect(token.LPAREN)
	values := p.parseExpressionList()
	p.expect(token.RPAREN)
	return &core.SetCriteria{Expression: left, Values: values, Negated: negated}
}

// parseExists parses EXISTS "(" subquery ")"; NOT has been consumed.
func (p *Parser) parseExists(negated bool) core.Criteria {
	p.expect(token.EXISTS)
	hint := subqueryHint(p.tok().Hints)
	return &core.ExistsCriteria{Command: p.parseSubqueryInParens(), Negated: negated, Hint: hint}
}

// parseSubqueryInParens parses "(" subquery ")".
func (p *Parser) parseSubqueryInParens() core.Command {
	p.expect(token.LPAREN)
	cmd := p.parseSubqueryCommand()
	p.expect(token.RPAREN)
	return cmd
}

// ---------- Criteria Selectors ----------

// isHasCriteria recognises HAS [op] CRITERIA. HAS is not reserved.
func (p *Parser) isHasCriteria() bool {
	if !p.checkWord("has") {
		return false
	}
	k := 1
	switch p.peekAt(k).Type {
	case token.IS:
		if p.peekAt(k+1).Type != token.NULL {
			return false
		}
		k += 2
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.LIKE, token.IN, token.BETWEEN:
		k++
	}
	return p.peekAt(k).Type == token.CRITERIA
}

// parseCriteriaSelector parses [op] CRITERIA [ON "(" names ")"].
func (p *Parser) parseCriteriaSelector() *core.CriteriaSelector {
	sel := &core.CriteriaSelector{}
	switch p.tok().Type {
	case token.EQ:
		sel.Type = core.SelectorCompareEQ
	case token.NE:
		sel.Type = core.SelectorCompareNE
	case token.LT:
		sel.Type = core.SelectorCompareLT
	case token.GT:
		sel.Type = core.SelectorCompareGT
	case token.LE:
		sel.Type = core.SelectorCompareLE
	case token.GE:
		sel.Type = core.SelectorCompareGE
	case token.LIKE:
		sel.Type = core.SelectorLike
	case token.IN:
		sel.Type = core.SelectorIn
	case token.BETWEEN:
		sel.Type = core.SelectorBetween
	case token.IS:
		p.next()
		p.expect(token.NULL)
		sel.Type = core.SelectorIsNull
	}
	if sel.Type != core.SelectorNone && sel.Type != core.SelectorIsNull {
		p.next()
	}
	p.expect(token.CRITERIA)
	if p.match(token.ON) {
		sel.Elements = p.parseElementList()
	}
	return sel
}

// parseTranslateCriteria parses TRANSLATE selector [WITH "(" elem = expr, ... ")"].
func (p *Parser) parseTranslateCriteria() core.Criteria {
	p.expect(token.TRANSLATE)
	tc := &core.TranslateCriteria{Selector: p.parseCriteriaSelector()}
	if p.match(token.WITH) {
		p.expect(token.LPAREN)
		for {
			left := &core.ElementSymbol{Name: p.parseName()}
			p.expect(token.EQ)
			tc.Translations = append(tc.Translations, &core.CompareCriteria{
				Left:     left,
				Operator: core.CompareEQ,
				Right:    p.parseExpression(),
			})
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RPAREN)
	}
	return tc
}
