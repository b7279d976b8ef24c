package format

import (
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// keywordFunctions are reserved words that are also function names. The
// parser stores them upper-cased and they render bare.
var keywordFunctions = map[string]bool{
	"LEFT": true, "RIGHT": true, "CHAR": true, "INSERT": true,
	"TRANSLATE": true, "USER": true, "XMLCONCAT": true, "XMLCOMMENT": true,
}

// specialForms are unreserved words the parser reads as aggregates or
// special function syntax. A plain call by that name must stay quoted.
var specialForms = map[string]bool{
	"count": true, "sum": true, "avg": true, "min": true, "max": true,
	"every": true, "stddev_pop": true, "stddev_samp": true, "var_pop": true,
	"var_samp": true, "string_agg": true, "row_number": true, "rank": true,
	"dense_rank": true, "textagg": true, "extract": true,
}

var trimSpecs = map[string]bool{"LEADING": true, "TRAILING": true, "BOTH": true}

// ---------- Symbols ----------

// VisitElementSymbol renders a column or variable name.
func (p *Printer) VisitElementSymbol(n *core.ElementSymbol) {
	p.name(n.Name)
}

// VisitGroupSymbol renders a group, with its alias when it has one.
func (p *Printer) VisitGroupSymbol(n *core.GroupSymbol) {
	if n.Definition == "" {
		p.name(n.Name)
		return
	}
	p.name(n.Definition)
	p.write(" AS ")
	p.id(n.Name)
}

// VisitAliasSymbol renders expr AS alias.
func (p *Printer) VisitAliasSymbol(n *core.AliasSymbol) {
	p.expr(n.Symbol)
	p.write(" AS ")
	p.id(n.Name)
}

// VisitExpressionSymbol renders the expression only; the name is implied
// by its position.
func (p *Printer) VisitExpressionSymbol(n *core.ExpressionSymbol) {
	p.expr(n.Expression)
}

func (p *Printer) VisitMultipleElementSymbol(n *core.MultipleElementSymbol) {
	if n.Group != "" {
		p.name(n.Group)
		p.write(".")
	}
	p.write("*")
}

func (p *Printer) VisitDerivedColumn(n *core.DerivedColumn) {
	p.expr(n.Expression)
	if n.Alias != "" {
		p.write(" AS ")
		p.id(n.Alias)
	}
}

func (p *Printer) derivedColumns(list []*core.DerivedColumn) {
	p.formatList(len(list), func(i int) { p.VisitDerivedColumn(list[i]) }, ", ", false)
}

// ---------- Functions ----------

// VisitFunction renders calls, infix operators and the special function
// forms the parser builds from CAST, CONVERT, TRIM and XMLPI.
func (p *Printer) VisitFunction(n *core.Function) {
	switch {
	case n.IsInfix():
		p.write("(")
		p.expr(n.Args[0])
		p.write(" " + n.Name + " ")
		p.expr(n.Args[1])
		p.write(")")
		return
	case n.Name == "CAST" && len(n.Args) == 2 && isStringConstant(n.Args[1]):
		p.write("CAST(")
		p.expr(n.Args[0])
		p.write(" AS " + constantString(n.Args[1]) + ")")
		return
	case n.Name == "CONVERT" && len(n.Args) == 2 && isStringConstant(n.Args[1]):
		p.write("CONVERT(")
		p.expr(n.Args[0])
		p.write(", " + constantString(n.Args[1]) + ")")
		return
	case n.Name == "TRIM" && len(n.Args) == 3 && trimSpecs[constantString(n.Args[0])]:
		p.write("TRIM(" + constantString(n.Args[0]) + " ")
		p.expr(n.Args[1])
		p.write(" FROM ")
		p.expr(n.Args[2])
		p.write(")")
		return
	case n.Name == "XMLPI" && len(n.Args) > 0 && isStringConstant(n.Args[0]):
		p.write("XMLPI(NAME ")
		p.id(constantString(n.Args[0]))
		for _, arg := range n.Args[1:] {
			p.write(", ")
			p.expr(arg)
		}
		p.write(")")
		return
	case isTimestampFunction(n):
		p.write(n.Name + "(" + constantString(n.Args[0]))
		for _, arg := range n.Args[1:] {
			p.write(", ")
			p.expr(arg)
		}
		p.write(")")
		return
	}

	p.write(functionName(n.Name))
	p.write("(")
	p.exprs(n.Args)
	p.write(")")
}

func functionName(name string) string {
	if keywordFunctions[name] {
		return name
	}
	if specialForms[strings.ToLower(name)] {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return escapeName(name)
}

func isTimestampFunction(n *core.Function) bool {
	switch strings.ToLower(n.Name) {
	case "timestampadd", "timestampdiff":
		return len(n.Args) > 0 && strings.HasPrefix(constantString(n.Args[0]), "SQL_TSI_") && !token.NeedsQuotes(n.Name)
	}
	return false
}

func isStringConstant(e core.Expression) bool {
	c, ok := e.(*core.Constant)
	if !ok {
		return false
	}
	_, ok = c.Value.(string)
	return ok
}

func constantString(e core.Expression) string {
	if c, ok := e.(*core.Constant); ok {
		if s, ok := c.Value.(string); ok {
			return s
		}
	}
	return ""
}

// VisitAggregateSymbol renders NAME([DISTINCT] args [ORDER BY ...])
// [FILTER (WHERE crit)].
func (p *Printer) VisitAggregateSymbol(n *core.AggregateSymbol) {
	p.write(n.Name)
	p.write("(")
	switch {
	case n.IsCountStar():
		p.write("*")
	default:
		if n.Distinct {
			p.write("DISTINCT ")
		}
		p.exprs(n.Args)
	}
	if n.OrderBy != nil {
		if len(n.Args) > 0 || n.IsCountStar() {
			p.space()
		}
		n.OrderBy.Accept(p)
	}
	p.write(")")
	if n.Filter != nil {
		p.write(" FILTER(WHERE ")
		p.crit(n.Filter)
		p.write(")")
	}
}

func (p *Printer) VisitWindowSpecification(n *core.WindowSpecification) {
	p.write("(")
	if len(n.PartitionBy) > 0 {
		p.write("PARTITION BY ")
		p.exprs(n.PartitionBy)
	}
	if n.OrderBy != nil {
		if len(n.PartitionBy) > 0 {
			p.space()
		}
		n.OrderBy.Accept(p)
	}
	p.write(")")
}

func (p *Printer) VisitWindowFunction(n *core.WindowFunction) {
	p.VisitAggregateSymbol(n.Function)
	p.write(" OVER ")
	p.VisitWindowSpecification(n.Window)
}

func (p *Printer) VisitCaseExpression(n *core.CaseExpression) {
	p.write("CASE ")
	p.expr(n.Expression)
	for i := range n.When {
		p.write(" WHEN ")
		p.expr(n.When[i])
		p.write(" THEN ")
		p.expr(n.Then[i])
	}
	if n.Else != nil {
		p.write(" ELSE ")
		p.expr(n.Else)
	}
	p.write(" END")
}

func (p *Printer) VisitSearchedCaseExpression(n *core.SearchedCaseExpression) {
	p.write("CASE")
	for i := range n.When {
		p.write(" WHEN ")
		p.crit(n.When[i])
		p.write(" THEN ")
		p.expr(n.Then[i])
	}
	if n.Else != nil {
		p.write(" ELSE ")
		p.expr(n.Else)
	}
	p.write(" END")
}

func (p *Printer) VisitScalarSubquery(n *core.ScalarSubquery) {
	p.write("(")
	p.node(n.Command)
	p.write(")")
}

// ---------- XML ----------

func (p *Printer) VisitXMLNamespaces(n *core.XMLNamespaces) {
	p.write("XMLNAMESPACES(")
	p.formatList(len(n.Items), func(i int) {
		item := n.Items[i]
		switch {
		case item.URI == "" && item.Prefix == "":
			p.write("NO DEFAULT")
		case item.Prefix == "":
			p.write("DEFAULT " + quoteString(item.URI))
		default:
			p.write(quoteString(item.URI) + " AS ")
			p.id(item.Prefix)
		}
	}, ", ", false)
	p.write(")")
}

func (p *Printer) VisitXMLAttributes(n *core.XMLAttributes) {
	p.write("XMLATTRIBUTES(")
	p.derivedColumns(n.Args)
	p.write(")")
}

func (p *Printer) VisitXMLElement(n *core.XMLElement) {
	p.write("XMLELEMENT(NAME ")
	p.id(n.Name)
	if n.Namespaces != nil {
		p.write(", ")
		p.VisitXMLNamespaces(n.Namespaces)
	}
	if n.Attributes != nil {
		p.write(", ")
		p.VisitXMLAttributes(n.Attributes)
	}
	for _, c := range n.Content {
		p.write(", ")
		p.expr(c)
	}
	p.write(")")
}

func (p *Printer) VisitXMLForest(n *core.XMLForest) {
	p.write("XMLFOREST(")
	if n.Namespaces != nil {
		p.VisitXMLNamespaces(n.Namespaces)
		p.write(", ")
	}
	p.derivedColumns(n.Args)
	p.write(")")
}

func (p *Printer) VisitXMLQuery(n *core.XMLQuery) {
	p.write("XMLQUERY(")
	if n.Namespaces != nil {
		p.VisitXMLNamespaces(n.Namespaces)
		p.write(", ")
	}
	p.write(quoteString(n.XQuery))
	if len(n.Passing) > 0 {
		p.write(" PASSING ")
		p.derivedColumns(n.Passing)
	}
	if n.EmptyOnEmpty != nil {
		if *n.EmptyOnEmpty {
			p.write(" EMPTY ON EMPTY")
		} else {
			p.write(" NULL ON EMPTY")
		}
	}
	p.write(")")
}

func (p *Printer) VisitXMLParse(n *core.XMLParse) {
	p.write("XMLPARSE(")
	if n.Document {
		p.write("DOCUMENT ")
	} else {
		p.write("CONTENT ")
	}
	p.expr(n.Expression)
	if n.WellFormed {
		p.write(" WELLFORMED")
	}
	p.write(")")
}

func (p *Printer) VisitXMLSerialize(n *core.XMLSerialize) {
	p.write("XMLSERIALIZE(")
	if n.Document != nil {
		if *n.Document {
			p.write("DOCUMENT ")
		} else {
			p.write("CONTENT ")
		}
	}
	p.expr(n.Expression)
	if n.TypeName != "" {
		p.write(" AS " + n.TypeName)
	}
	if n.Encoding != "" {
		p.write(" ENCODING ")
		p.id(n.Encoding)
	}
	if n.Version != "" {
		p.write(" VERSION " + quoteString(n.Version))
	}
	if n.Declaration != nil {
		if *n.Declaration {
			p.write(" INCLUDING XMLDECLARATION")
		} else {
			p.write(" EXCLUDING XMLDECLARATION")
		}
	}
	p.write(")")
}

// VisitTextLine renders the FOR clause of TEXTAGG.
func (p *Printer) VisitTextLine(n *core.TextLine) {
	p.write("FOR ")
	p.derivedColumns(n.Args)
	if n.Delimiter != "" {
		p.write(" DELIMITER " + quoteString(n.Delimiter))
	}
	if n.Quote != "" {
		p.write(" QUOTE " + quoteString(n.Quote))
	}
	if n.Header {
		p.write(" HEADER")
	}
	if n.Encoding != "" {
		p.write(" ENCODING ")
		p.id(n.Encoding)
	}
}
