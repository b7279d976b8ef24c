package core

import (
	"strings"
)

// ---------- Symbols ----------

// ElementSymbol is a possibly qualified column or variable reference.
// Name holds the full dotted name as written, without quotes.
type ElementSymbol struct {
	Name string
}

func (*ElementSymbol) exprNode()       {}
func (*ElementSymbol) selectItemNode() {}

// ShortName returns the last segment of the name.
func (e *ElementSymbol) ShortName() string {
	if i := strings.LastIndexByte(e.Name, '.'); i >= 0 {
		return e.Name[i+1:]
	}
	return e.Name
}

// GroupName returns the qualifier, or "" for an unqualified name.
func (e *ElementSymbol) GroupName() string {
	if i := strings.LastIndexByte(e.Name, '.'); i >= 0 {
		return e.Name[:i]
	}
	return ""
}

// GroupSymbol names a table, view or procedure. When the group is aliased,
// Name is the alias and Definition the real name.
type GroupSymbol struct {
	Name       string
	Definition string
}

// NonCorrelationName returns the real group name.
func (g *GroupSymbol) NonCorrelationName() string {
	if g.Definition != "" {
		return g.Definition
	}
	return g.Name
}

// AliasSymbol is a SELECT item renamed with AS.
type AliasSymbol struct {
	Name   string
	Symbol Expression
}

func (*AliasSymbol) exprNode()       {}
func (*AliasSymbol) selectItemNode() {}

// ExpressionSymbol is an unaliased non-column SELECT item. The parser
// assigns generated names of the form exprN.
type ExpressionSymbol struct {
	Name       string
	Expression Expression
}

func (*ExpressionSymbol) exprNode()       {}
func (*ExpressionSymbol) selectItemNode() {}

// MultipleElementSymbol is * or group.*.
type MultipleElementSymbol struct {
	Group string // "" for a bare *
}

func (*MultipleElementSymbol) selectItemNode() {}

// DerivedColumn is an expression with an optional name, used by XML
// functions, PASSING clauses and TEXTAGG.
type DerivedColumn struct {
	Alias      string
	Expression Expression
}

// ---------- Values ----------

// Constant is a typed literal. Value is nil for a typed null.
//
// Value types: string, bool, int32, int64, *big.Int, float64,
// decimal.Decimal, time.Time (date, time and timestamp share it and Type
// tells them apart).
type Constant struct {
	Type  DataType
	Value any
}

func (*Constant) exprNode() {}

// IsNull reports whether the constant is a (typed) null.
func (c *Constant) IsNull() bool { return c.Value == nil }

// NewConstant builds a constant whose type is inferred from v.
func NewConstant(v any) *Constant {
	return &Constant{Type: TypeOfValue(v), Value: v}
}

// NullConstant builds a null of the given type.
func NullConstant(t DataType) *Constant {
	return &Constant{Type: t}
}

// Reference is a positional bind parameter (?). Index is 0-based in parse
// order.
type Reference struct {
	Index int
}

func (*Reference) exprNode() {}

// ---------- Functions ----------

// Operator function names. Infix arithmetic and concatenation are
// represented as two-argument functions with these names.
const (
	FuncPlus   = "+"
	FuncMinus  = "-"
	FuncMult   = "*"
	FuncDiv    = "/"
	FuncMod    = "%"
	FuncConcat = "||"
)

// Function is a scalar function call or an infix operator.
type Function struct {
	Name string
	Args []Expression
}

func (*Function) exprNode() {}

// IsInfix reports whether the function is one of the infix operators.
func (f *Function) IsInfix() bool {
	switch f.Name {
	case FuncPlus, FuncMinus, FuncMult, FuncDiv, FuncMod, FuncConcat:
		return len(f.Args) == 2
	}
	return false
}

// AggregateSymbol is an aggregate function invocation.
type AggregateSymbol struct {
	Name     string // upper case: COUNT, SUM, ARRAY_AGG, TEXTAGG, ...
	Distinct bool
	Args     []Expression // nil for COUNT(*)
	OrderBy  *OrderBy
	Filter   Criteria
}

func (*AggregateSymbol) exprNode() {}

// IsCountStar reports whether this is COUNT(*).
func (a *AggregateSymbol) IsCountStar() bool {
	return a.Name == "COUNT" && len(a.Args) == 0
}

// WindowSpecification is the OVER clause of a window function.
type WindowSpecification struct {
	PartitionBy []Expression
	OrderBy     *OrderBy
}

// WindowFunction applies an aggregate or ranking function over a window.
type WindowFunction struct {
	Function *AggregateSymbol
	Window   *WindowSpecification
}

func (*WindowFunction) exprNode() {}

// CaseExpression is CASE expr WHEN v THEN r ... [ELSE e] END.
type CaseExpression struct {
	Expression Expression
	When       []Expression
	Then       []Expression
	Else       Expression
}

func (*CaseExpression) exprNode() {}

// SearchedCaseExpression is CASE WHEN crit THEN r ... [ELSE e] END.
type SearchedCaseExpression struct {
	When []Criteria
	Then []Expression
	Else Expression
}

func (*SearchedCaseExpression) exprNode() {}

// ScalarSubquery is a parenthesized command used as a value.
type ScalarSubquery struct {
	Command Command
}

func (*ScalarSubquery) exprNode() {}

// ---------- XML ----------

// NamespaceItem is one entry of XMLNAMESPACES. A default namespace has an
// empty Prefix; NO DEFAULT has both fields empty.
type NamespaceItem struct {
	URI    string
	Prefix string
}

// XMLNamespaces declares namespaces for XML constructors and XMLTABLE.
type XMLNamespaces struct {
	Items []*NamespaceItem
}

// XMLAttributes is the attribute list of XMLELEMENT.
type XMLAttributes struct {
	Args []*DerivedColumn
}

// XMLElement is XMLELEMENT(NAME n, ...).
type XMLElement struct {
	Name       string
	Namespaces *XMLNamespaces
	Attributes *XMLAttributes
	Content    []Expression
}

func (*XMLElement) exprNode() {}

// XMLForest is XMLFOREST([namespaces,] expr [AS name], ...).
type XMLForest struct {
	Namespaces *XMLNamespaces
	Args       []*DerivedColumn
}

func (*XMLForest) exprNode() {}

// XMLQuery is XMLQUERY('xquery' PASSING ...).
type XMLQuery struct {
	Namespaces   *XMLNamespaces
	XQuery       string
	Passing      []*DerivedColumn
	EmptyOnEmpty *bool // NULL ON EMPTY / EMPTY ON EMPTY
}

func (*XMLQuery) exprNode() {}

// XMLParse is XMLPARSE(DOCUMENT|CONTENT expr [WELLFORMED]).
type XMLParse struct {
	Document   bool
	Expression Expression
	WellFormed bool
}

func (*XMLParse) exprNode() {}

// XMLSerialize is XMLSERIALIZE([DOCUMENT|CONTENT] expr [AS type] ...).
type XMLSerialize struct {
	Document    *bool
	Expression  Expression
	TypeName    string
	Encoding    string
	Version     string
	Declaration *bool // INCLUDING / EXCLUDING XMLDECLARATION
}

func (*XMLSerialize) exprNode() {}

// TextLine is the FOR clause of TEXTAGG.
type TextLine struct {
	Args      []*DerivedColumn
	Delimiter string
	Quote     string
	Header    bool
	Encoding  string
}

func (*TextLine) exprNode() {}
