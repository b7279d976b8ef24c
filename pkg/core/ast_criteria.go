package core

// CompareOp is a comparison operator.
type CompareOp int

// Comparison operators.
const (
	CompareEQ CompareOp = iota
	CompareNE
	CompareLT
	CompareGT
	CompareLE
	CompareGE
)

var compareOpText = [...]string{"=", "<>", "<", ">", "<=", ">="}

func (o CompareOp) String() string { return compareOpText[o] }

// LogicalOp joins the operands of a CompoundCriteria.
type LogicalOp int

// Logical operators.
const (
	LogicalAnd LogicalOp = iota
	LogicalOr
)

func (o LogicalOp) String() string {
	if o == LogicalOr {
		return "OR"
	}
	return "AND"
}

// MatchMode selects the pattern language of a MatchCriteria.
type MatchMode int

// Match modes.
const (
	MatchLike MatchMode = iota
	MatchSimilar
	MatchRegex
)

// Quantifier is the ANY/SOME/ALL of a quantified subquery comparison.
type Quantifier int

// Quantifiers.
const (
	QuantifierAny Quantifier = iota
	QuantifierSome
	QuantifierAll
)

func (q Quantifier) String() string {
	switch q {
	case QuantifierSome:
		return "SOME"
	case QuantifierAll:
		return "ALL"
	default:
		return "ANY"
	}
}

// CompareCriteria is left op right.
type CompareCriteria struct {
	Left     Expression
	Operator CompareOp
	Right    Expression
}

// CompoundCriteria is an AND/OR combination. The parser always produces
// exactly two operands with chains nested to the left.
type CompoundCriteria struct {
	Operator LogicalOp
	Criteria []Criteria
}

// NotCriteria negates an arbitrary criteria.
type NotCriteria struct {
	Criteria Criteria
}

// MatchCriteria is LIKE, SIMILAR TO or LIKE_REGEX. EscapeChar is 0 when no
// ESCAPE clause was given.
type MatchCriteria struct {
	Left       Expression
	Right      Expression
	EscapeChar rune
	Negated    bool
	Mode       MatchMode
}

// BetweenCriteria is expr [NOT] BETWEEN lower AND upper.
type BetweenCriteria struct {
	Expression Expression
	Lower      Expression
	Upper      Expression
	Negated    bool
}

// IsNullCriteria is expr IS [NOT] NULL.
type IsNullCriteria struct {
	Expression Expression
	Negated    bool
}

// SetCriteria is expr [NOT] IN (v1, v2, ...).
type SetCriteria struct {
	Expression Expression
	Values     []Expression
	Negated    bool
}

// SubquerySetCriteria is expr [NOT] IN (subquery).
type SubquerySetCriteria struct {
	Expression Expression
	Command    Command
	Negated    bool
	Hint       *SubqueryHint
}

// SubqueryCompareCriteria is expr op ANY|SOME|ALL (subquery).
type SubqueryCompareCriteria struct {
	Left       Expression
	Operator   CompareOp
	Quantifier Quantifier
	Command    Command
}

// ExistsCriteria is [NOT] EXISTS (subquery).
type ExistsCriteria struct {
	Command Command
	Negated bool
	Hint    *SubqueryHint
}

// ExpressionCriteria uses a boolean valued expression as a predicate.
type ExpressionCriteria struct {
	Expression Expression
}

// SelectorType is the operator filter of a CriteriaSelector.
type SelectorType int

// Selector types. SelectorNone matches criteria of any kind.
const (
	SelectorNone SelectorType = iota
	SelectorCompareEQ
	SelectorCompareNE
	SelectorCompareLT
	SelectorCompareGT
	SelectorCompareLE
	SelectorCompareGE
	SelectorLike
	SelectorIn
	SelectorIsNull
	SelectorBetween
)

var selectorText = [...]string{"", "=", "<>", "<", ">", "<=", ">=", "LIKE", "IN", "IS NULL", "BETWEEN"}

func (s SelectorType) String() string { return selectorText[s] }

// CriteriaSelector picks the criteria of an update procedure's caller that
// HAS CRITERIA and TRANSLATE CRITERIA operate on.
type CriteriaSelector struct {
	Type     SelectorType
	Elements []*ElementSymbol
}

// HasCriteria tests whether the caller supplied matching criteria.
type HasCriteria struct {
	Selector *CriteriaSelector
}

// TranslateCriteria rewrites the caller's criteria onto other elements.
type TranslateCriteria struct {
	Selector     *CriteriaSelector
	Translations []*CompareCriteria
}

func (*CompareCriteria) exprNode()         {}
func (*CompoundCriteria) exprNode()        {}
func (*NotCriteria) exprNode()             {}
func (*MatchCriteria) exprNode()           {}
func (*BetweenCriteria) exprNode()         {}
func (*IsNullCriteria) exprNode()          {}
func (*SetCriteria) exprNode()             {}
func (*SubquerySetCriteria) exprNode()     {}
func (*SubqueryCompareCriteria) exprNode() {}
func (*ExistsCriteria) exprNode()          {}
func (*ExpressionCriteria) exprNode()      {}
func (*HasCriteria) exprNode()             {}
func (*TranslateCriteria) exprNode()       {}

func (*CompareCriteria) criteriaNode()         {}
func (*CompoundCriteria) criteriaNode()        {}
func (*NotCriteria) criteriaNode()             {}
func (*MatchCriteria) criteriaNode()           {}
func (*BetweenCriteria) criteriaNode()         {}
func (*IsNullCriteria) criteriaNode()          {}
func (*SetCriteria) criteriaNode()             {}
func (*SubquerySetCriteria) criteriaNode()     {}
func (*SubqueryCompareCriteria) criteriaNode() {}
func (*ExistsCriteria) criteriaNode()          {}
func (*ExpressionCriteria) criteriaNode()      {}
func (*HasCriteria) criteriaNode()             {}
func (*TranslateCriteria) criteriaNode()       {}

// Combine joins criteria with op, nesting to the left. Nil entries are
// skipped; a single operand is returned as is.
func Combine(op LogicalOp, crits ...Criteria) Criteria {
	var result Criteria
	for _, c := range crits {
		if c == nil {
			continue
		}
		if result == nil {
			result = c
			continue
		}
		result = &CompoundCriteria{Operator: op, Criteria: []Criteria{result, c}}
	}
	return result
}

// SeparateByAnd flattens nested AND compounds into their conjuncts.
func SeparateByAnd(c Criteria) []Criteria {
	if c == nil {
		return nil
	}
	cc, ok := c.(*CompoundCriteria)
	if !ok || cc.Operator != LogicalAnd {
		return []Criteria{c}
	}
	var out []Criteria
	for _, child := range cc.Criteria {
		out = append(out, SeparateByAnd(child)...)
	}
	return out
}
