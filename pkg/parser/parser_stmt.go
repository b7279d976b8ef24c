package parser

import (
	"fmt"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Command parsing: queries, set operations and data modification.
//
// Grammar:
//
//	command       → [cache_hint] (query_expr | exec | callable) [option]
//	              | (insert | update | delete) [option]
//	              | dynamic | create | drop | alter
//	query_expr    → [WITH with_item ("," with_item)*] query_body
//	with_item     → id ["(" names ")"] AS "(" query_expr ")"
//	query_body    → query_term ((UNION|EXCEPT) [ALL|DISTINCT] query_term)*
//	                [ORDER BY sort_list] [limit]
//	query_term    → query_primary (INTERSECT [ALL|DISTINCT] query_primary)*
//	query_primary → query | "(" query_expr ")"
//	query         → SELECT [source_hint] [DISTINCT|ALL] select_list [INTO name]
//	                [FROM from_list] [WHERE condition]
//	                [GROUP BY [ROLLUP] exprs] [HAVING condition]
//	select_item   → "*" | name "." "*" | expr [[AS] id]
//	limit         → LIMIT int ["," int] | [OFFSET int ROW[S]] [FETCH (FIRST|NEXT) [int] ROW[S] ONLY]
//	option        → OPTION (MAKEDEP names | MAKENOTDEP names | NOCACHE [names])*

// parseCommand parses any command.
func (p *Parser) parseCommand() core.Command {
	tok := p.tok()
	switch tok.Type {
	case token.SELECT, token.WITH, token.LPAREN:
		qc := p.parseQueryExpression()
		setCacheHint(qc, cacheHint(tok.Hints))
		setOption(qc, p.parseOption())
		return qc
	case token.INSERT, token.MERGE:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.EXEC, token.EXECUTE:
		if p.isDynamicCommand() {
			return p.parseDynamicCommand()
		}
		sp := p.parseExec()
		sp.CacheHint = cacheHint(tok.Hints)
		sp.Option = p.parseOption()
		return sp
	case token.LBRACE:
		sp := p.parseCallable()
		sp.CacheHint = cacheHint(tok.Hints)
		return sp
	case token.QMARK:
		return p.parseReturnExec()
	case token.CREATE:
		return p.parseCreateCommand()
	case token.DROP:
		return p.parseDrop()
	case token.ALTER:
		return p.parseAlterCommand()
	case token.IDENT:
		if tok.Is("upsert") {
			return p.parseInsert()
		}
	}
	p.fail("")
	return nil
}

func setCacheHint(qc core.QueryCommand, h *core.CacheHint) {
	switch q := qc.(type) {
	case *core.Query:
		q.CacheHint = h
	case *core.SetQuery:
		q.CacheHint = h
	}
}

func setOption(qc core.QueryCommand, o *core.Option) {
	switch q := qc.(type) {
	case *core.Query:
		q.Option = o
	case *core.SetQuery:
		q.Option = o
	}
}

// ---------- Query Expressions ----------

// parseQueryExpression parses [WITH ...] query_body.
func (p *Parser) parseQueryExpression() core.QueryCommand {
	var with []*core.WithQuery
	if p.match(token.WITH) {
		for {
			with = append(with, p.parseWithQuery())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	qc := p.parseQueryBody()
	if with != nil {
		clauses := qc.Clauses()
		if clauses.With != nil {
			p.failf(errDuplicateClause, "WITH")
		}
		clauses.With = with
	}
	return qc
}

// parseWithQuery parses name [(cols)] AS (query_expr).
func (p *Parser) parseWithQuery() *core.WithQuery {
	w := &core.WithQuery{Name: &core.GroupSymbol{Name: p.parseIdentifier()}}
	if p.check(token.LPAREN) {
		w.Columns = p.parseElementList()
	}
	p.expect(token.AS)
	p.expect(token.LPAREN)
	w.Command = p.parseQueryExpression()
	p.expect(token.RPAREN)
	return w
}

// parseQueryBody parses the UNION/EXCEPT level and the trailing ORDER BY
// and LIMIT, which attach to the resulting command.
func (p *Parser) parseQueryBody() core.QueryCommand {
	left := p.parseQueryTerm()
	for p.check(token.UNION) || p.check(token.EXCEPT) {
		op := core.SetUnion
		if p.next().Type == token.EXCEPT {
			op = core.SetExcept
		}
		all := p.parseSetQuantifier()
		right := p.parseQueryTerm()
		left = &core.SetQuery{Operation: op, All: all, Left: left, Right: right}
	}

	clauses := left.Clauses()
	if p.check(token.ORDER) {
		if clauses.OrderBy != nil {
			p.failf(errDuplicateClause, "ORDER BY")
		}
		clauses.OrderBy = p.parseOrderBy()
	}
	if p.isLimitStart() {
		if clauses.Limit != nil {
			p.failf(errDuplicateClause, "LIMIT")
		}
		clauses.Limit = p.parseLimit()
	}
	return left
}

func (p *Parser) parseQueryTerm() core.QueryCommand {
	left := p.parseQueryPrimary()
	for p.match(token.INTERSECT) {
		all := p.parseSetQuantifier()
		right := p.parseQueryPrimary()
		left = &core.SetQuery{Operation: core.SetIntersect, All: all, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseSetQuantifier() bool {
	if p.match(token.ALL) {
		return true
	}
	p.match(token.DISTINCT)
	return false
}

func (p *Parser) parseQueryPrimary() core.QueryCommand {
	if p.match(token.LPAREN) {
		qc := p.parseQueryExpression()
		p.expect(token.RPAREN)
		return qc
	}
	return p.parseQuery()
}

// parseQuery parses a single SELECT without ORDER BY and LIMIT.
func (p *Parser) parseQuery() *core.Query {
	p.expect(token.SELECT)
	q := &core.Query{SourceHint: sourceHint(p.tok().Hints)}

	sel := &core.Select{}
	if p.match(token.DISTINCT) {
		sel.Distinct = true
	} else {
		p.match(token.ALL)
	}
	for i := 1; ; i++ {
		sel.Symbols = append(sel.Symbols, p.parseSelectItem(i))
		if !p.match(token.COMMA) {
			break
		}
	}
	q.Select = sel

	if p.match(token.INTO) {
		q.Into = &core.Into{Group: &core.GroupSymbol{Name: p.parseName()}}
	}
	if p.check(token.FROM) {
		q.From = p.parseFrom()
	}
	if p.match(token.WHERE) {
		q.Where = p.parseCondition()
	}
	if p.match(token.GROUP) {
		p.expect(token.BY)
		q.GroupBy = &core.GroupBy{}
		if p.match(token.ROLLUP) {
			q.GroupBy.Rollup = true
			p.expect(token.LPAREN)
			q.GroupBy.Symbols = p.parseExpressionList()
			p.expect(token.RPAREN)
		} else {
			q.GroupBy.Symbols = p.parseExpressionList()
		}
	}
	if p.match(token.HAVING) {
		q.Having = p.parseCondition()
	}
	return q
}

// parseSelectItem parses one SELECT list entry. position is the 1-based
// index used to name unaliased expressions.
func (p *Parser) parseSelectItem(position int) core.SelectItem {
	if p.match(token.STAR) {
		return &core.MultipleElementSymbol{}
	}
	if n := p.lookaheadName(); n > 0 && p.peekAt(n).Type == token.DOT && p.peekAt(n+1).Type == token.STAR {
		group := p.parseName()
		p.expect(token.DOT)
		p.expect(token.STAR)
		return &core.MultipleElementSymbol{Group: group}
	}

	expr := p.parseExpression()
	if alias := p.parseOptionalAlias(); alias != "" {
		return &core.AliasSymbol{Name: alias, Symbol: expr}
	}
	if es, ok := expr.(*core.ElementSymbol); ok {
		return es
	}
	return &core.ExpressionSymbol{Name: fmt.Sprintf("expr%d", position), Expression: expr}
}

// ---------- ORDER BY and LIMIT ----------

// parseOrderBy parses ORDER BY item ("," item)*.
func (p *Parser) parseOrderBy() *core.OrderBy {
	p.expect(token.ORDER)
	p.expect(token.BY)
	ob := &core.OrderBy{}
	for {
		item := &core.OrderByItem{Expression: p.parseExpression()}
		if p.match(token.DESC) {
			item.Descending = true
		} else {
			p.match(token.ASC)
		}
		if p.checkWord("nulls") {
			p.next()
			switch {
			case p.matchWord("first"):
				item.NullOrdering = core.NullsFirst
			case p.matchWord("last"):
				item.NullOrdering = core.NullsLast
			default:
				p.failf(errExpecting, `"FIRST" | "LAST"`)
			}
		}
		ob.Items = append(ob.Items, item)
		if !p.match(token.COMMA) {
			return ob
		}
	}
}

func (p *Parser) isLimitStart() bool {
	switch p.tok().Type {
	case token.LIMIT, token.OFFSET, token.FETCH:
		return true
	}
	return false
}

// parseLimit normalizes all LIMIT/OFFSET/FETCH forms into one Limit.
func (p *Parser) parseLimit() *core.Limit {
	limit := &core.Limit{Strict: !hasHint(p.tok().Hints, "non_strict")}
	if p.match(token.LIMIT) {
		first := p.parseLimitValue()
		if p.match(token.COMMA) {
			limit.Offset = first
			limit.RowCount = p.parseLimitValue()
		} else {
			limit.RowCount = first
		}
		return limit
	}
	if p.match(token.OFFSET) {
		limit.Offset = p.parseLimitValue()
		p.expectRows()
	}
	if p.match(token.FETCH) {
		if !p.matchWord("first") {
			p.expectWord("next")
		}
		if p.check(token.INTEGER) || p.check(token.QMARK) {
			limit.RowCount = p.parseLimitValue()
		} else {
			limit.RowCount = core.NewConstant(int32(1))
		}
		p.expectRows()
		p.expect(token.ONLY)
	}
	return limit
}

func (p *Parser) expectRows() {
	if !p.match(token.ROW) {
		p.expect(token.ROWS)
	}
}

func (p *Parser) parseLimitValue() core.Expression {
	tok := p.tok()
	switch tok.Type {
	case token.INTEGER:
		p.next()
		return integerConstant(tok.Literal)
	case token.QMARK:
		p.next()
		return &core.Reference{Index: p.nextReference()}
	}
	p.failf(errExpecting, "<INTEGERVAL> | \"?\"")
	return nil
}

// parseOption parses an optional OPTION clause.
func (p *Parser) parseOption() *core.Option {
	if !p.match(token.OPTION) {
		return nil
	}
	o := &core.Option{}
	for {
		switch {
		case p.match(token.MAKEDEP):
			o.MakeDep = append(o.MakeDep, p.parseNameList()...)
		case p.match(token.MAKENOTDEP):
			o.MakeNotDep = append(o.MakeNotDep, p.parseNameList()...)
		case p.match(token.NOCACHE):
			o.NoCache = true
			if p.check(token.IDENT) {
				o.NoCacheGroups = append(o.NoCacheGroups, p.parseNameList()...)
			}
		default:
			return o
		}
	}
}

// ---------- Data Modification ----------

// parseInsert parses (INSERT | UPSERT | MERGE) INTO name [(cols)] (VALUES (...) | query).
func (p *Parser) parseInsert() core.Command {
	ins := &core.Insert{Upsert: !p.check(token.INSERT)}
	p.next()
	p.expect(token.INTO)
	ins.Group = &core.GroupSymbol{Name: p.parseName()}
	if p.check(token.LPAREN) && !p.startsSubquery(1) {
		ins.Columns = p.parseElementList()
	}
	if p.match(token.VALUES) {
		p.expect(token.LPAREN)
		ins.Values = p.parseExpressionList()
		p.expect(token.RPAREN)
	} else {
		ins.Query = p.parseQueryExpression()
	}
	ins.Option = p.parseOption()
	return ins
}

// parseUpdate parses UPDATE name SET id = expr, ... [WHERE condition].
func (p *Parser) parseUpdate() core.Command {
	p.expect(token.UPDATE)
	upd := &core.Update{Group: &core.GroupSymbol{Name: p.parseName()}}
	p.expect(token.SET)
	upd.Changes = p.parseSetClauses()
	if p.match(token.WHERE) {
		upd.Where = p.parseCondition()
	}
	upd.Option = p.parseOption()
	return upd
}

func (p *Parser) parseSetClauses() []*core.SetClause {
	var list []*core.SetClause
	for {
		sym := &core.ElementSymbol{Name: p.parseName()}
		p.expect(token.EQ)
		list = append(list, &core.SetClause{Symbol: sym, Value: p.parseExpression()})
		if !p.match(token.COMMA) {
			return list
		}
	}
}

// parseDelete parses DELETE FROM name [WHERE condition].
func (p *Parser) parseDelete() core.Command {
	p.expect(token.DELETE)
	p.expect(token.FROM)
	del := &core.Delete{Group: &core.GroupSymbol{Name: p.parseName()}}
	if p.match(token.WHERE) {
		del.Where = p.parseCondition()
	}
	del.Option = p.parseOption()
	return del
}
