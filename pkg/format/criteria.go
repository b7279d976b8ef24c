package format

import (
	"github.com/teiid/teiid-sub017/pkg/core"
)

func (p *Printer) VisitCompareCriteria(n *core.CompareCriteria) {
	p.expr(n.Left)
	p.write(" " + n.Operator.String() + " ")
	p.expr(n.Right)
}

// VisitCompoundCriteria joins the operands with AND or OR. Operands that
// are compound themselves are parenthesized.
func (p *Printer) VisitCompoundCriteria(n *core.CompoundCriteria) {
	op := " " + n.Operator.String() + " "
	p.formatList(len(n.Criteria), func(i int) { p.conjunct(n.Criteria[i]) }, op, false)
}

// conjunct renders one operand of an AND/OR list.
func (p *Printer) conjunct(c core.Criteria) {
	if _, ok := c.(*core.CompoundCriteria); ok {
		p.write("(")
		c.Accept(p)
		p.write(")")
		return
	}
	p.crit(c)
}

func (p *Printer) VisitNotCriteria(n *core.NotCriteria) {
	p.write("NOT (")
	p.crit(n.Criteria)
	p.write(")")
}

func (p *Printer) VisitMatchCriteria(n *core.MatchCriteria) {
	p.expr(n.Left)
	if n.Negated {
		p.write(" NOT")
	}
	switch n.Mode {
	case core.MatchSimilar:
		p.write(" SIMILAR TO ")
	case core.MatchRegex:
		p.write(" LIKE_REGEX ")
	default:
		p.write(" LIKE ")
	}
	p.expr(n.Right)
	if n.EscapeChar != 0 {
		p.write(" ESCAPE " + quoteString(string(n.EscapeChar)))
	}
}

func (p *Printer) VisitBetweenCriteria(n *core.BetweenCriteria) {
	p.expr(n.Expression)
	if n.Negated {
		p.write(" NOT")
	}
	p.write(" BETWEEN ")
	p.expr(n.Lower)
	p.write(" AND ")
	p.expr(n.Upper)
}

func (p *Printer) VisitIsNullCriteria(n *core.IsNullCriteria) {
	p.expr(n.Expression)
	if n.Negated {
		p.write(" IS NOT NULL")
	} else {
		p.write(" IS NULL")
	}
}

func (p *Printer) VisitSetCriteria(n *core.SetCriteria) {
	p.expr(n.Expression)
	if n.Negated {
		p.write(" NOT")
	}
	p.write(" IN (")
	p.exprs(n.Values)
	p.write(")")
}

func (p *Printer) VisitSubquerySetCriteria(n *core.SubquerySetCriteria) {
	p.expr(n.Expression)
	if n.Negated {
		p.write(" NOT")
	}
	p.write(" IN ")
	p.subqueryHint(n.Hint)
	p.write("(")
	p.node(n.Command)
	p.write(")")
}

func (p *Printer) VisitSubqueryCompareCriteria(n *core.SubqueryCompareCriteria) {
	p.expr(n.Left)
	p.write(" " + n.Operator.String() + " " + n.Quantifier.String() + " (")
	p.node(n.Command)
	p.write(")")
}

func (p *Printer) VisitExistsCriteria(n *core.ExistsCriteria) {
	if n.Negated {
		p.write("NOT ")
	}
	p.write("EXISTS ")
	p.subqueryHint(n.Hint)
	p.write("(")
	p.node(n.Command)
	p.write(")")
}

// VisitExpressionCriteria renders the wrapped boolean expression.
func (p *Printer) VisitExpressionCriteria(n *core.ExpressionCriteria) {
	p.expr(n.Expression)
}

// VisitCriteriaSelector renders [op] CRITERIA [ON (elements)].
func (p *Printer) VisitCriteriaSelector(n *core.CriteriaSelector) {
	if n.Type != core.SelectorNone {
		p.write(n.Type.String() + " ")
	}
	p.write("CRITERIA")
	if len(n.Elements) > 0 {
		p.write(" ON (")
		p.formatList(len(n.Elements), func(i int) { p.VisitElementSymbol(n.Elements[i]) }, ", ", false)
		p.write(")")
	}
}

func (p *Printer) VisitHasCriteria(n *core.HasCriteria) {
	p.write("HAS ")
	p.VisitCriteriaSelector(n.Selector)
}

func (p *Printer) VisitTranslateCriteria(n *core.TranslateCriteria) {
	p.write("TRANSLATE ")
	p.VisitCriteriaSelector(n.Selector)
	if len(n.Translations) > 0 {
		p.write(" WITH (")
		p.formatList(len(n.Translations), func(i int) { p.VisitCompareCriteria(n.Translations[i]) }, ", ", false)
		p.write(")")
	}
}
