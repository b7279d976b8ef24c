package parser

import (
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// Special function forms, aggregates and window functions.
//
// Grammar:
//
//	cast       → CAST "(" expr AS type ")"
//	convert    → CONVERT "(" expr "," type ")"
//	substring  → SUBSTRING "(" expr (FROM expr [FOR expr] | "," expr ["," expr]) ")"
//	trim       → TRIM "(" [[LEADING|TRAILING|BOTH] [expr] FROM] expr ")"
//	extract    → EXTRACT "(" field FROM expr ")"
//	aggregate  → name "(" [DISTINCT|ALL] ("*" | args) [ORDER BY ...] ")"
//	             [FILTER "(" WHERE condition ")"] [OVER window]
//	window     → "(" [PARTITION BY exprs] [ORDER BY ...] ")"

var aggregateNames = map[string]bool{
	"count": true, "sum": true, "avg": true, "min": true, "max": true,
	"every": true, "stddev_pop": true, "stddev_samp": true, "var_pop": true,
	"var_samp": true, "array_agg": true, "xmlagg": true, "string_agg": true,
	"row_number": true, "rank": true, "dense_rank": true,
}

// rankingFunctions take no arguments and are only valid with OVER.
var rankingFunctions = map[string]bool{
	"ROW_NUMBER": true, "RANK": true, "DENSE_RANK": true,
}

func isAggregateName(word string) bool {
	return aggregateNames[word]
}

var extractFields = map[string]bool{
	"YEAR": true, "MONTH": true, "DAY": true, "HOUR": true,
	"MINUTE": true, "SECOND": true, "QUARTER": true,
}

// parseAggregate parses an aggregate call and an optional OVER clause.
func (p *Parser) parseAggregate() core.Expression {
	nameTok := p.next()
	agg := &core.AggregateSymbol{Name: strings.ToUpper(nameTok.Literal)}
	p.expect(token.LPAREN)

	switch {
	case agg.Name == "COUNT" && p.check(token.STAR):
		p.next()
	case rankingFunctions[agg.Name]:
	default:
		if p.match(token.DISTINCT) {
			agg.Distinct = true
		} else {
			p.match(token.ALL)
		}
		agg.Args = p.parseExpressionList()
	}
	if p.check(token.ORDER) {
		agg.OrderBy = p.parseOrderBy()
	}
	p.expect(token.RPAREN)

	return p.parseAggregateTail(nameTok, agg)
}

// parseAggregateTail parses FILTER and OVER after an aggregate's arguments.
func (p *Parser) parseAggregateTail(nameTok token.Token, agg *core.AggregateSymbol) core.Expression {
	if p.match(token.FILTER) {
		p.expect(token.LPAREN)
		p.expect(token.WHERE)
		agg.Filter = p.parseCondition()
		p.expect(token.RPAREN)
	}
	if p.check(token.OVER) {
		return &core.WindowFunction{Function: agg, Window: p.parseWindowSpecification()}
	}
	if rankingFunctions[agg.Name] {
		p.failAt(nameTok, errOverRequired, agg.Name)
	}
	return agg
}

// parseWindowSpecification parses OVER "(" [PARTITION BY ...] [ORDER BY ...] ")".
func (p *Parser) parseWindowSpecification() *core.WindowSpecification {
	p.expect(token.OVER)
	p.expect(token.LPAREN)
	w := &core.WindowSpecification{}
	if p.match(token.PARTITION) {
		p.expect(token.BY)
		w.PartitionBy = p.parseExpressionList()
	}
	if p.check(token.ORDER) {
		w.OrderBy = p.parseOrderBy()
	}
	p.expect(token.RPAREN)
	return w
}

// parseTextAgg parses TEXTAGG([FOR] derived, ... [DELIMITER c] [QUOTE c]
// [HEADER] [ENCODING id] [ORDER BY ...]).
func (p *Parser) parseTextAgg() core.Expression {
	nameTok := p.next()
	p.expect(token.LPAREN)
	p.match(token.FOR)

	line := &core.TextLine{Args: p.parseDerivedColumns()}
	for {
		switch {
		case p.matchWord("delimiter"):
			line.Delimiter = p.parseStringLiteral()
		case p.matchWord("quote"):
			line.Quote = p.parseStringLiteral()
		case p.matchWord("header"):
			line.Header = true
		case p.matchWord("encoding"):
			line.Encoding = p.parseIdentifier()
		default:
			agg := &core.AggregateSymbol{Name: "TEXTAGG", Args: []core.Expression{line}}
			if p.check(token.ORDER) {
				agg.OrderBy = p.parseOrderBy()
			}
			p.expect(token.RPAREN)
			return p.parseAggregateTail(nameTok, agg)
		}
	}
}

// parseDerivedColumn parses expr [AS name].
func (p *Parser) parseDerivedColumn() *core.DerivedColumn {
	d := &core.DerivedColumn{Expression: p.parseExpression()}
	if p.match(token.AS) {
		d.Alias = p.parseIdentifier()
	}
	return d
}

func (p *Parser) parseDerivedColumns() []*core.DerivedColumn {
	list := []*core.DerivedColumn{p.parseDerivedColumn()}
	for p.match(token.COMMA) {
		list = append(list, p.parseDerivedColumn())
	}
	return list
}

// parseCast parses CAST(expr AS type). A cast of the untyped null folds to
// a typed null constant.
func (p *Parser) parseCast() core.Expression {
	p.expect(token.CAST)
	p.expect(token.LPAREN)
	e := p.parseExpression()
	p.expect(token.AS)
	spec := p.parseDataType()
	p.expect(token.RPAREN)

	if c, ok := e.(*core.Constant); ok && c.IsNull() && c.Type == core.TypeNull && spec.ArrayDimensions == 0 {
		if t, known := core.LookupDataType(spec.Name); known {
			return core.NullConstant(t)
		}
	}
	return &core.Function{Name: "CAST", Args: []core.Expression{e, core.NewConstant(runtimeTypeName(spec))}}
}

// parseConvert parses CONVERT(expr, type).
func (p *Parser) parseConvert() core.Expression {
	p.expect(token.CONVERT)
	p.expect(token.LPAREN)
	e := p.parseExpression()
	p.expect(token.COMMA)
	typeName := p.parseTypeName()
	p.expect(token.RPAREN)
	return &core.Function{Name: "CONVERT", Args: []core.Expression{e, core.NewConstant(typeName)}}
}

// parseSubstring parses the FROM/FOR form as well as the plain call.
func (p *Parser) parseSubstring() core.Expression {
	nameTok := p.next()
	p.expect(token.LPAREN)
	args := []core.Expression{p.parseExpression()}
	if p.match(token.FROM) {
		args = append(args, p.parseExpression())
		if p.match(token.FOR) {
			args = append(args, p.parseExpression())
		}
		p.expect(token.RPAREN)
		return &core.Function{Name: "SUBSTRING", Args: args}
	}
	for p.match(token.COMMA) {
		args = append(args, p.parseExpression())
	}
	p.expect(token.RPAREN)
	return &core.Function{Name: nameTok.Literal, Args: args}
}

// parseTrim parses TRIM([[LEADING|TRAILING|BOTH] [char] FROM] expr). The
// qualified forms become TRIM(spec, char, expr).
func (p *Parser) parseTrim() core.Expression {
	nameTok := p.next()
	p.expect(token.LPAREN)

	spec := ""
	switch {
	case p.match(token.LEADING):
		spec = "LEADING"
	case p.match(token.TRAILING):
		spec = "TRAILING"
	case p.match(token.BOTH):
		spec = "BOTH"
	}

	var char core.Expression
	if spec == "" || !p.check(token.FROM) {
		first := p.parseExpression()
		if spec == "" && !p.check(token.FROM) {
			p.expect(token.RPAREN)
			return &core.Function{Name: nameTok.Literal, Args: []core.Expression{first}}
		}
		char = first
	}
	if spec == "" {
		spec = "BOTH"
	}
	if char == nil {
		char = core.NewConstant(" ")
	}
	p.expect(token.FROM)
	target := p.parseExpression()
	p.expect(token.RPAREN)
	return &core.Function{Name: "TRIM", Args: []core.Expression{core.NewConstant(spec), char, target}}
}

// parseExtract parses EXTRACT(field FROM expr) into a call of the function
// named after the field.
func (p *Parser) parseExtract() core.Expression {
	p.next()
	p.expect(token.LPAREN)
	fieldTok := p.expect(token.IDENT)
	field := strings.ToUpper(fieldTok.Literal)
	if !extractFields[field] {
		p.failAt(fieldTok, "Invalid EXTRACT field %s.", fieldTok.Literal)
	}
	p.expect(token.FROM)
	e := p.parseExpression()
	p.expect(token.RPAREN)
	return &core.Function{Name: field, Args: []core.Expression{e}}
}

// parseTimestampFunction parses TIMESTAMPADD/TIMESTAMPDIFF whose first
// argument is a bare SQL_TSI_ interval name.
func (p *Parser) parseTimestampFunction() core.Expression {
	nameTok := p.next()
	p.expect(token.LPAREN)
	intervalTok := p.expect(token.IDENT)
	interval := strings.ToUpper(intervalTok.Literal)
	if !strings.HasPrefix(interval, "SQL_TSI_") {
		p.failAt(intervalTok, "Invalid interval %s.", intervalTok.Literal)
	}
	args := []core.Expression{core.NewConstant(interval)}
	for p.match(token.COMMA) {
		args = append(args, p.parseExpression())
	}
	p.expect(token.RPAREN)
	return &core.Function{Name: nameTok.Literal, Args: args}
}
