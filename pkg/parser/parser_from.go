package parser

import (
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// FROM clause parsing.
//
// Grammar:
//
//	from_clause   → FROM table_ref ("," table_ref)*
//	table_ref     → table_primary (join_tail)*
//	join_tail     → CROSS JOIN table_primary
//	              | UNION JOIN table_primary
//	              | [INNER | (LEFT|RIGHT|FULL) [OUTER]] JOIN table_primary ON condition
//	table_primary → [hint] name [[AS] alias]
//	              | [hint] "(" query_expr ")" [AS] alias
//	              | [hint] (TABLE|LATERAL) "(" query_expr ")" [AS] alias
//	              | [hint] "(" table_ref ")"
//	              | "{" OJ table_ref "}"
//	              | TEXTTABLE(...) | XMLTABLE(...) | ARRAYTABLE(...)
//
// Hints written before an item attach to that item. Hints before a
// parenthesized join attach to the join.

// parseFrom parses the FROM clause.
func (p *Parser) parseFrom() *core.From {
	p.expect(token.FROM)
	f := &core.From{}
	for {
		f.Clauses = append(f.Clauses, p.parseTableReference())
		if !p.match(token.COMMA) {
			return f
		}
	}
}

// parseTableReference parses a table primary followed by any number of
// joins. Joins nest to the left.
func (p *Parser) parseTableReference() core.FromClause {
	left := p.parseTablePrimary()
	for {
		jt, ok := p.parseJoinType()
		if !ok {
			return left
		}
		join := &core.JoinPredicate{Left: left, JoinType: jt, Right: p.parseTablePrimary()}
		if jt != core.JoinCross && jt != core.JoinUnion {
			p.expect(token.ON)
			join.Criteria = core.SeparateByAnd(p.parseCondition())
		}
		left = join
	}
}

// parseJoinType consumes a join operator if one is present.
func (p *Parser) parseJoinType() (core.JoinType, bool) {
	switch p.tok().Type {
	case token.CROSS:
		p.next()
		p.expect(token.JOIN)
		return core.JoinCross, true
	case token.UNION:
		if !p.checkPeek(token.JOIN) {
			return 0, false
		}
		p.next()
		p.next()
		return core.JoinUnion, true
	case token.JOIN:
		p.next()
		return core.JoinInner, true
	case token.INNER:
		p.next()
		p.expect(token.JOIN)
		return core.JoinInner, true
	case token.LEFT, token.RIGHT, token.FULL:
		jt := core.JoinLeftOuter
		switch p.next().Type {
		case token.RIGHT:
			jt = core.JoinRightOuter
		case token.FULL:
			jt = core.JoinFullOuter
		}
		p.match(token.OUTER)
		p.expect(token.JOIN)
		return jt, true
	}
	return 0, false
}

// parseTablePrimary parses a single FROM item.
func (p *Parser) parseTablePrimary() core.FromClause {
	tok := p.tok()
	hints := fromHints(tok.Hints)

	switch {
	case tok.Type == token.LPAREN:
		return p.parseParenthesizedTable(hints)
	case tok.Type == token.LBRACE && p.peekAt(1).Is("oj"):
		p.next()
		p.next()
		clause := p.parseTableReference()
		p.expect(token.RBRACE)
		mergeFromHints(clause.FromHints(), hints)
		return clause
	case (tok.Type == token.TABLE || tok.Type == token.LATERAL) && p.checkPeek(token.LPAREN):
		p.next()
		p.expect(token.LPAREN)
		cmd := p.parseSubqueryCommand()
		p.expect(token.RPAREN)
		return &core.SubqueryFromClause{Name: p.parseRequiredAlias(), Command: cmd, Lateral: true, Hints: hints}
	case tok.Type == token.XMLTABLE:
		t := p.parseXMLTable()
		t.Hints = hints
		return t
	case tok.Is("texttable") && p.checkPeek(token.LPAREN):
		t := p.parseTextTable()
		t.Hints = hints
		return t
	case tok.Is("arraytable") && p.checkPeek(token.LPAREN):
		t := p.parseArrayTable()
		t.Hints = hints
		return t
	}

	name := p.parseName()
	group := &core.GroupSymbol{Name: name}
	if alias := p.parseOptionalAlias(); alias != "" {
		group = &core.GroupSymbol{Name: alias, Definition: name}
	}
	return &core.UnaryFromClause{Group: group, Hints: hints}
}

// parseParenthesizedTable parses "(" subquery ")" alias or "(" join ")".
func (p *Parser) parseParenthesizedTable(hints core.FromHints) core.FromClause {
	if p.startsSubquery(1) {
		var clause *core.SubqueryFromClause
		if p.try(func() {
			p.expect(token.LPAREN)
			cmd := p.parseSubqueryCommand()
			p.expect(token.RPAREN)
			clause = &core.SubqueryFromClause{Name: p.parseRequiredAlias(), Command: cmd, Hints: hints}
		}) {
			return clause
		}
	}
	p.expect(token.LPAREN)
	clause := p.parseTableReference()
	p.expect(token.RPAREN)
	mergeFromHints(clause.FromHints(), hints)
	return clause
}

// parseRequiredAlias parses the [AS] alias every derived table must have.
func (p *Parser) parseRequiredAlias() string {
	tok := p.tok()
	alias := p.parseOptionalAlias()
	if alias == "" {
		p.failAt(tok, errSubqueryAlias)
	}
	return alias
}

// ---------- Table Functions ----------

// parseTextTable parses TEXTTABLE(expr [SELECTOR s] COLUMNS ... options) [AS] name.
func (p *Parser) parseTextTable() *core.TextTable {
	p.next()
	p.expect(token.LPAREN)
	t := &core.TextTable{File: p.parseExpression()}
	if p.matchWord("selector") {
		t.Selector = p.parseStringLiteral()
	}
	p.expectWord("columns")
	for {
		t.Columns = append(t.Columns, p.parseTextColumn())
		if !p.match(token.COMMA) {
			break
		}
	}

	if p.checkWord("no") && p.checkPeek(token.ROW) {
		p.next()
		p.next()
		p.expectWord("delimiter")
		t.NoRowDelimiter = true
	} else if p.match(token.ROW) {
		p.expectWord("delimiter")
		t.RowDelimiter = p.parseStringLiteral()
	}
	if p.matchWord("delimiter") {
		t.Delimiter = p.parseStringLiteral()
	}
	switch {
	case p.matchWord("quote"):
		t.Quote = p.parseStringLiteral()
	case p.match(token.ESCAPE):
		t.Escape = p.parseStringLiteral()
	}
	if p.matchWord("header") {
		n := 1
		if p.check(token.INTEGER) {
			n = p.parseIntLiteral()
		}
		t.Header = &n
	}
	if p.matchWord("skip") {
		n := p.parseIntLiteral()
		t.Skip = &n
	}
	if p.checkWord("no") && p.peekAt(1).Is("trim") {
		p.next()
		p.next()
		t.NoTrim = true
	}
	p.expect(token.RPAREN)
	t.Name = p.parseRequiredTableAlias()
	return t
}

// parseTextColumn parses name FOR ORDINALITY or
// name type [WIDTH n [NO TRIM]] [SELECTOR s n].
func (p *Parser) parseTextColumn() *core.TextColumn {
	col := &core.TextColumn{Name: p.parseIdentifier()}
	if p.match(token.FOR) {
		p.expectWord("ordinality")
		col.Ordinality = true
		col.Type = core.TypeInteger.String()
		return col
	}
	col.Type = p.parseTypeName()
	if p.matchWord("width") {
		col.Width = p.parseIntLiteral()
		if p.checkWord("no") && p.peekAt(1).Is("trim") {
			p.next()
			p.next()
			col.NoTrim = true
		}
	}
	if p.matchWord("selector") {
		col.Selector = p.parseStringLiteral()
		col.Position = p.parseIntLiteral()
	}
	return col
}

// parseXMLTable parses XMLTABLE([XMLNAMESPACES(...),] 'xquery'
// [PASSING args] [COLUMNS cols]) [AS] name.
func (p *Parser) parseXMLTable() *core.XMLTable {
	p.expect(token.XMLTABLE)
	p.expect(token.LPAREN)
	t := &core.XMLTable{}
	if p.check(token.XMLNAMESPACES) {
		t.Namespaces = p.parseXMLNamespaces()
		p.expect(token.COMMA)
	}
	t.XQuery = p.parseStringLiteral()
	if p.matchWord("passing") {
		t.Passing = p.parseDerivedColumns()
	}
	if p.matchWord("columns") {
		for {
			t.Columns = append(t.Columns, p.parseXMLColumn())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.expect(token.RPAREN)
	t.Name = p.parseRequiredTableAlias()
	return t
}

// parseXMLColumn parses name FOR ORDINALITY or
// name type [DEFAULT expr] [PATH 'path'].
func (p *Parser) parseXMLColumn() *core.XMLColumn {
	col := &core.XMLColumn{Name: p.parseIdentifier()}
	if p.match(token.FOR) {
		p.expectWord("ordinality")
		col.Ordinality = true
		col.Type = core.TypeInteger.String()
		return col
	}
	col.Type = p.parseTypeName()
	if p.match(token.DEFAULT) {
		col.Default = p.parseExpression()
	}
	if p.matchWord("path") {
		col.Path = p.parseStringLiteral()
	}
	return col
}

// parseArrayTable parses ARRAYTABLE(expr COLUMNS name type, ...) [AS] name.
func (p *Parser) parseArrayTable() *core.ArrayTable {
	p.next()
	p.expect(token.LPAREN)
	t := &core.ArrayTable{Expression: p.parseExpression()}
	p.expectWord("columns")
	for {
		col := &core.ProjectedColumn{Name: p.parseIdentifier()}
		col.Type = p.parseTypeName()
		t.Columns = append(t.Columns, col)
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	t.Name = p.parseRequiredTableAlias()
	return t
}

func (p *Parser) parseRequiredTableAlias() string {
	p.match(token.AS)
	return p.parseIdentifier()
}
