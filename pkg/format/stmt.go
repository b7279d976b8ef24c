package format

import (
	"strconv"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// ---------- Query Commands ----------

// VisitQuery renders a SELECT with all of its clauses.
func (p *Printer) VisitQuery(n *core.Query) {
	p.cacheHint(n.CacheHint)
	p.with(n.With)
	p.kw(token.SELECT)
	p.space()
	if n.SourceHint != nil {
		p.VisitSourceHint(n.SourceHint)
		p.space()
	}
	if n.Select != nil {
		p.VisitSelect(n.Select)
	}
	if n.Into != nil {
		p.space()
		p.VisitInto(n.Into)
	}
	if n.From != nil {
		p.space()
		p.VisitFrom(n.From)
	}
	if n.Where != nil {
		p.write(" WHERE ")
		p.crit(n.Where)
	}
	if n.GroupBy != nil {
		p.space()
		p.VisitGroupBy(n.GroupBy)
	}
	if n.Having != nil {
		p.write(" HAVING ")
		p.crit(n.Having)
	}
	p.queryTail(&n.QueryClauses)
	p.option(n.Option)
}

// VisitSetQuery renders left op right. Operands are parenthesized when
// they would otherwise read back with a different shape.
func (p *Printer) VisitSetQuery(n *core.SetQuery) {
	p.cacheHint(n.CacheHint)
	p.with(n.With)
	p.setOperand(n, n.Left, false)
	p.write(" " + n.Operation.String())
	if n.All {
		p.write(" ALL")
	}
	p.space()
	p.setOperand(n, n.Right, true)
	p.queryTail(&n.QueryClauses)
	p.option(n.Option)
}

func (p *Printer) setOperand(parent *core.SetQuery, child core.QueryCommand, right bool) {
	if child == nil {
		return
	}
	if needsParens(parent, child, right) {
		p.write("(")
		child.Accept(p)
		p.write(")")
		return
	}
	child.Accept(p)
}

func needsParens(parent *core.SetQuery, child core.QueryCommand, right bool) bool {
	c := child.Clauses()
	if c.OrderBy != nil || c.Limit != nil || len(c.With) > 0 {
		return true
	}
	sq, ok := child.(*core.SetQuery)
	if !ok {
		return false
	}
	return right || setPrecedence(sq.Operation) < setPrecedence(parent.Operation)
}

// setPrecedence ranks INTERSECT above UNION and EXCEPT.
func setPrecedence(op core.SetOp) int {
	if op == core.SetIntersect {
		return 2
	}
	return 1
}

// with writes the WITH clause followed by a space.
func (p *Printer) with(list []*core.WithQuery) {
	if len(list) == 0 {
		return
	}
	p.write("WITH ")
	p.formatList(len(list), func(i int) { p.VisitWithQuery(list[i]) }, ", ", false)
	p.space()
}

func (p *Printer) VisitWithQuery(n *core.WithQuery) {
	p.id(n.Name.Name)
	if len(n.Columns) > 0 {
		p.write(" (")
		p.formatList(len(n.Columns), func(i int) { p.id(n.Columns[i].Name) }, ", ", false)
		p.write(")")
	}
	p.write(" AS (")
	p.node(n.Command)
	p.write(")")
}

// queryTail writes ORDER BY and LIMIT.
func (p *Printer) queryTail(c *core.QueryClauses) {
	if c.OrderBy != nil {
		p.space()
		p.VisitOrderBy(c.OrderBy)
	}
	if c.Limit != nil {
		p.space()
		p.VisitLimit(c.Limit)
	}
}

// ---------- Clauses ----------

func (p *Printer) VisitSelect(n *core.Select) {
	if n.Distinct {
		p.write("DISTINCT ")
	}
	p.formatList(len(n.Symbols), func(i int) { p.node(n.Symbols[i]) }, ", ", false)
}

func (p *Printer) VisitFrom(n *core.From) {
	p.write("FROM ")
	p.formatList(len(n.Clauses), func(i int) { p.node(n.Clauses[i]) }, ", ", false)
}

func (p *Printer) VisitInto(n *core.Into) {
	p.write("INTO ")
	p.name(n.Group.Name)
}

func (p *Printer) VisitGroupBy(n *core.GroupBy) {
	p.write("GROUP BY ")
	if n.Rollup {
		p.write("ROLLUP(")
		p.exprs(n.Symbols)
		p.write(")")
		return
	}
	p.exprs(n.Symbols)
}

func (p *Printer) VisitOrderBy(n *core.OrderBy) {
	p.write("ORDER BY ")
	p.formatList(len(n.Items), func(i int) { p.VisitOrderByItem(n.Items[i]) }, ", ", false)
}

func (p *Printer) VisitOrderByItem(n *core.OrderByItem) {
	p.expr(n.Expression)
	if n.Descending {
		p.write(" DESC")
	}
	switch n.NullOrdering {
	case core.NullsFirst:
		p.write(" NULLS FIRST")
	case core.NullsLast:
		p.write(" NULLS LAST")
	}
}

// VisitLimit renders LIMIT n, LIMIT o, n or OFFSET o ROWS.
func (p *Printer) VisitLimit(n *core.Limit) {
	if !n.Strict {
		p.write("/*+ NON_STRICT */ ")
	}
	if n.RowCount == nil {
		p.write("OFFSET ")
		p.expr(n.Offset)
		p.write(" ROWS")
		return
	}
	p.write("LIMIT ")
	if n.Offset != nil {
		p.expr(n.Offset)
		p.write(", ")
	}
	p.expr(n.RowCount)
}

func (p *Printer) VisitSetClause(n *core.SetClause) {
	p.VisitElementSymbol(n.Symbol)
	p.write(" = ")
	p.expr(n.Value)
}

func (p *Printer) setClauses(list []*core.SetClause) {
	p.formatList(len(list), func(i int) { p.VisitSetClause(list[i]) }, ", ", false)
}

// ---------- Data Modification ----------

func (p *Printer) VisitInsert(n *core.Insert) {
	if n.Upsert {
		p.write("UPSERT INTO ")
	} else {
		p.write("INSERT INTO ")
	}
	p.name(n.Group.Name)
	if len(n.Columns) > 0 {
		p.write(" (")
		p.formatList(len(n.Columns), func(i int) { p.VisitElementSymbol(n.Columns[i]) }, ", ", false)
		p.write(")")
	}
	if n.Query != nil {
		p.space()
		n.Query.Accept(p)
	} else {
		p.write(" VALUES (")
		p.exprs(n.Values)
		p.write(")")
	}
	p.option(n.Option)
}

func (p *Printer) VisitUpdate(n *core.Update) {
	p.write("UPDATE ")
	p.name(n.Group.Name)
	p.write(" SET ")
	p.setClauses(n.Changes)
	if n.Where != nil {
		p.write(" WHERE ")
		p.crit(n.Where)
	}
	p.option(n.Option)
}

func (p *Printer) VisitDelete(n *core.Delete) {
	p.write("DELETE FROM ")
	p.name(n.Group.Name)
	if n.Where != nil {
		p.write(" WHERE ")
		p.crit(n.Where)
	}
	p.option(n.Option)
}

// ---------- Procedure Calls ----------

// VisitStoredProcedure renders [? = ]EXEC name(args). Both the ODBC
// callable form and EXEC render this way.
func (p *Printer) VisitStoredProcedure(n *core.StoredProcedure) {
	p.cacheHint(n.CacheHint)
	if n.ReturnParameter != nil {
		p.write("? = ")
	}
	p.write("EXEC ")
	p.name(n.ProcedureName)
	p.write("(")
	var args []*core.SPParameter
	for _, param := range n.Parameters {
		if param.Expression != nil && param.Direction != core.ParamReturnValue {
			args = append(args, param)
		}
	}
	p.formatList(len(args), func(i int) { p.VisitSPParameter(args[i]) }, ", ", false)
	p.write(")")
	p.option(n.Option)
}

// VisitSPParameter renders an argument, with its name when it has one.
func (p *Printer) VisitSPParameter(n *core.SPParameter) {
	if n.Name != "" {
		p.name(n.Name)
		p.write(" => ")
	}
	p.expr(n.Expression)
}

// VisitDynamicCommand renders EXECUTE IMMEDIATE and its clauses.
func (p *Printer) VisitDynamicCommand(n *core.DynamicCommand) {
	p.write("EXECUTE IMMEDIATE ")
	p.expr(n.SQL)
	if len(n.AsColumns) > 0 {
		p.write(" AS ")
		p.formatList(len(n.AsColumns), func(i int) {
			p.id(n.AsColumns[i].Name)
			p.write(" " + n.AsColumns[i].Type)
		}, ", ", false)
	}
	if n.Into != nil {
		p.write(" INTO ")
		p.id(n.Into.Name)
	}
	if len(n.Using) > 0 {
		p.write(" USING ")
		p.setClauses(n.Using)
	}
	switch {
	case n.UpdatingModelCount < 0:
		p.write(" UPDATE *")
	case n.UpdatingModelCount > 0:
		p.write(" UPDATE " + strconv.Itoa(n.UpdatingModelCount))
	}
}

// ---------- CREATE / DROP / ALTER ----------

func (p *Printer) VisitCreate(n *core.Create) {
	if n.Foreign {
		p.write("CREATE FOREIGN TEMPORARY TABLE ")
	} else {
		p.write("CREATE LOCAL TEMPORARY TABLE ")
	}
	p.name(n.Table.Name)
	p.write(" (")
	p.formatList(len(n.Columns), func(i int) {
		col := n.Columns[i]
		p.id(col.Name)
		p.write(" " + col.Type)
		if col.NotNull {
			p.write(" NOT NULL")
		}
		if col.AutoIncrement {
			p.write(" AUTO_INCREMENT")
		}
	}, ", ", false)
	if len(n.PrimaryKey) > 0 {
		p.write(", PRIMARY KEY(")
		p.names(n.PrimaryKey)
		p.write(")")
	}
	p.write(")")
	if n.Foreign {
		p.write(" ON " + quoteString(n.On))
	}
}

func (p *Printer) VisitDrop(n *core.Drop) {
	p.write("DROP TABLE ")
	p.name(n.Table.Name)
}

func (p *Printer) VisitAlterView(n *core.AlterView) {
	p.write("ALTER VIEW ")
	p.name(n.Target.Name)
	p.write(" AS ")
	p.node(n.Definition)
}

func (p *Printer) VisitAlterProcedure(n *core.AlterProcedure) {
	p.write("ALTER PROCEDURE ")
	p.name(n.Target.Name)
	p.write(" AS")
	p.writeln()
	p.VisitBlock(n.Definition)
}

// VisitAlterTrigger renders CREATE|ALTER TRIGGER with either a new action
// or ENABLED/DISABLED.
func (p *Printer) VisitAlterTrigger(n *core.AlterTrigger) {
	if n.Create {
		p.write("CREATE TRIGGER ON ")
	} else {
		p.write("ALTER TRIGGER ON ")
	}
	p.name(n.Target.Name)
	p.write(" INSTEAD OF " + n.Event.String())
	if n.Definition != nil {
		p.write(" AS")
		p.writeln()
		p.VisitTriggerAction(n.Definition)
		return
	}
	if n.Enabled != nil {
		if *n.Enabled {
			p.write(" ENABLED")
		} else {
			p.write(" DISABLED")
		}
	}
}

func (p *Printer) VisitTriggerAction(n *core.TriggerAction) {
	p.write("FOR EACH ROW")
	p.writeln()
	p.VisitBlock(n.Block)
}

func (p *Printer) VisitCreateUpdateProcedureCommand(n *core.CreateUpdateProcedureCommand) {
	if n.Virtual {
		p.write("CREATE VIRTUAL PROCEDURE")
	} else {
		p.write("CREATE PROCEDURE")
	}
	p.writeln()
	p.VisitBlock(n.Block)
}
