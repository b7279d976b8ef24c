package core

// JoinType is the kind of a JoinPredicate.
type JoinType int

// Join types.
const (
	JoinInner JoinType = iota
	JoinCross
	JoinLeftOuter
	JoinRightOuter
	JoinFullOuter
	JoinUnion
)

var joinTypeText = [...]string{"INNER JOIN", "CROSS JOIN", "LEFT OUTER JOIN", "RIGHT OUTER JOIN", "FULL OUTER JOIN", "UNION JOIN"}

func (j JoinType) String() string { return joinTypeText[j] }

// UnaryFromClause is a single group reference.
type UnaryFromClause struct {
	Group *GroupSymbol
	Hints FromHints
}

// SubqueryFromClause is (command) AS name. Lateral marks TABLE(...) and
// LATERAL(...) items that may reference preceding FROM items.
type SubqueryFromClause struct {
	Name    string
	Command Command
	Lateral bool
	Hints   FromHints
}

// JoinPredicate joins two FROM items. Criteria holds the ON clause split
// into its AND-ed conjuncts.
type JoinPredicate struct {
	Left     FromClause
	Right    FromClause
	JoinType JoinType
	Criteria []Criteria
	Hints    FromHints
}

// ProjectedColumn is a typed output column of a table function.
type ProjectedColumn struct {
	Name string
	Type string
}

// TextColumn is a column of TEXTTABLE.
type TextColumn struct {
	Name       string
	Type       string
	Ordinality bool
	Width      int
	NoTrim     bool
	Selector   string
	Position   int
}

// TextTable is TEXTTABLE(expr COLUMNS ...) AS name.
type TextTable struct {
	File           Expression
	Selector       string
	Columns        []*TextColumn
	NoRowDelimiter bool
	RowDelimiter   string
	Delimiter      string
	Quote          string
	Escape         string
	Header         *int
	Skip           *int
	NoTrim         bool
	Name           string
	Hints          FromHints
}

// XMLColumn is a column of XMLTABLE.
type XMLColumn struct {
	Name       string
	Type       string
	Ordinality bool
	Default    Expression
	Path       string
}

// XMLTable is XMLTABLE([namespaces,] 'xquery' PASSING ... COLUMNS ...) AS name.
type XMLTable struct {
	Namespaces *XMLNamespaces
	XQuery     string
	Passing    []*DerivedColumn
	Columns    []*XMLColumn
	Name       string
	Hints      FromHints
}

// ArrayTable is ARRAYTABLE(expr COLUMNS name type, ...) AS name.
type ArrayTable struct {
	Expression Expression
	Columns    []*ProjectedColumn
	Name       string
	Hints      FromHints
}

func (*UnaryFromClause) fromClauseNode()    {}
func (*SubqueryFromClause) fromClauseNode() {}
func (*JoinPredicate) fromClauseNode()      {}
func (*TextTable) fromClauseNode()          {}
func (*XMLTable) fromClauseNode()           {}
func (*ArrayTable) fromClauseNode()         {}

// FromHints implements FromClause.
func (f *UnaryFromClause) FromHints() *FromHints { return &f.Hints }

// FromHints implements FromClause.
func (f *SubqueryFromClause) FromHints() *FromHints { return &f.Hints }

// FromHints implements FromClause.
func (f *JoinPredicate) FromHints() *FromHints { return &f.Hints }

// FromHints implements FromClause.
func (f *TextTable) FromHints() *FromHints { return &f.Hints }

// FromHints implements FromClause.
func (f *XMLTable) FromHints() *FromHints { return &f.Hints }

// FromHints implements FromClause.
func (f *ArrayTable) FromHints() *FromHints { return &f.Hints }
