package format

import (
	"strconv"

	"github.com/teiid/teiid-sub017/pkg/core"
)

func (p *Printer) VisitUnaryFromClause(n *core.UnaryFromClause) {
	p.fromHints(&n.Hints)
	p.VisitGroupSymbol(n.Group)
}

func (p *Printer) VisitSubqueryFromClause(n *core.SubqueryFromClause) {
	p.fromHints(&n.Hints)
	if n.Lateral {
		p.write("LATERAL")
	}
	p.write("(")
	p.node(n.Command)
	p.write(") AS ")
	p.id(n.Name)
}

// VisitJoinPredicate renders a join. A join carrying hints is wrapped in
// parentheses so the hints attach to it rather than to its left item.
func (p *Printer) VisitJoinPredicate(n *core.JoinPredicate) {
	if n.Hints.Any() {
		p.fromHints(&n.Hints)
		p.write("(")
		p.joinBody(n)
		p.write(")")
		return
	}
	p.joinBody(n)
}

func (p *Printer) joinBody(n *core.JoinPredicate) {
	p.joinOperand(n.Left)
	p.write(" " + n.JoinType.String() + " ")
	p.joinOperand(n.Right)
	if len(n.Criteria) > 0 {
		p.write(" ON ")
		p.formatList(len(n.Criteria), func(i int) { p.conjunct(n.Criteria[i]) }, " AND ", false)
	}
}

// joinOperand parenthesizes nested joins.
func (p *Printer) joinOperand(c core.FromClause) {
	jp, ok := c.(*core.JoinPredicate)
	if !ok {
		p.node(c)
		return
	}
	p.fromHints(&jp.Hints)
	p.write("(")
	p.joinBody(jp)
	p.write(")")
}

// ---------- Table Functions ----------

func (p *Printer) VisitTextTable(n *core.TextTable) {
	p.fromHints(&n.Hints)
	p.write("TEXTTABLE(")
	p.expr(n.File)
	if n.Selector != "" {
		p.write(" SELECTOR " + quoteString(n.Selector))
	}
	p.write(" COLUMNS ")
	p.formatList(len(n.Columns), func(i int) { p.textColumn(n.Columns[i]) }, ", ", false)
	switch {
	case n.NoRowDelimiter:
		p.write(" NO ROW DELIMITER")
	case n.RowDelimiter != "":
		p.write(" ROW DELIMITER " + quoteString(n.RowDelimiter))
	}
	if n.Delimiter != "" {
		p.write(" DELIMITER " + quoteString(n.Delimiter))
	}
	switch {
	case n.Quote != "":
		p.write(" QUOTE " + quoteString(n.Quote))
	case n.Escape != "":
		p.write(" ESCAPE " + quoteString(n.Escape))
	}
	if n.Header != nil {
		p.write(" HEADER")
		if *n.Header != 1 {
			p.write(" " + strconv.Itoa(*n.Header))
		}
	}
	if n.Skip != nil {
		p.write(" SKIP " + strconv.Itoa(*n.Skip))
	}
	if n.NoTrim {
		p.write(" NO TRIM")
	}
	p.write(") AS ")
	p.id(n.Name)
}

func (p *Printer) textColumn(c *core.TextColumn) {
	p.id(c.Name)
	if c.Ordinality {
		p.write(" FOR ORDINALITY")
		return
	}
	p.write(" " + c.Type)
	if c.Width > 0 {
		p.write(" WIDTH " + strconv.Itoa(c.Width))
		if c.NoTrim {
			p.write(" NO TRIM")
		}
	}
	if c.Selector != "" {
		p.write(" SELECTOR " + quoteString(c.Selector) + " " + strconv.Itoa(c.Position))
	}
}

func (p *Printer) VisitXMLTable(n *core.XMLTable) {
	p.fromHints(&n.Hints)
	p.write("XMLTABLE(")
	if n.Namespaces != nil {
		p.VisitXMLNamespaces(n.Namespaces)
		p.write(", ")
	}
	p.write(quoteString(n.XQuery))
	if len(n.Passing) > 0 {
		p.write(" PASSING ")
		p.derivedColumns(n.Passing)
	}
	if len(n.Columns) > 0 {
		p.write(" COLUMNS ")
		p.formatList(len(n.Columns), func(i int) { p.xmlColumn(n.Columns[i]) }, ", ", false)
	}
	p.write(") AS ")
	p.id(n.Name)
}

func (p *Printer) xmlColumn(c *core.XMLColumn) {
	p.id(c.Name)
	if c.Ordinality {
		p.write(" FOR ORDINALITY")
		return
	}
	p.write(" " + c.Type)
	if c.Default != nil {
		p.write(" DEFAULT ")
		p.expr(c.Default)
	}
	if c.Path != "" {
		p.write(" PATH " + quoteString(c.Path))
	}
}

func (p *Printer) VisitArrayTable(n *core.ArrayTable) {
	p.fromHints(&n.Hints)
	p.write("ARRAYTABLE(")
	p.expr(n.Expression)
	p.write(" COLUMNS ")
	p.formatList(len(n.Columns), func(i int) {
		p.id(n.Columns[i].Name)
		p.write(" " + n.Columns[i].Type)
	}, ", ", false)
	p.write(") AS ")
	p.id(n.Name)
}
