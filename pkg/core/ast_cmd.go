package core

// ---------- Query clauses ----------

// Select is the SELECT list.
type Select struct {
	Distinct bool
	Symbols  []SelectItem
}

// From is the FROM clause. Comma separated items are implicit cross joins.
type From struct {
	Clauses []FromClause
}

// Into is SELECT ... INTO group.
type Into struct {
	Group *GroupSymbol
}

// GroupBy is the GROUP BY clause.
type GroupBy struct {
	Symbols []Expression
	Rollup  bool
}

// NullOrdering is NULLS FIRST / NULLS LAST.
type NullOrdering int

// Null orderings.
const (
	NullsDefault NullOrdering = iota
	NullsFirst
	NullsLast
)

// OrderByItem is one sort key.
type OrderByItem struct {
	Expression   Expression
	Descending   bool
	NullOrdering NullOrdering
}

// OrderBy is an ORDER BY clause.
type OrderBy struct {
	Items []*OrderByItem
}

// Limit is the normalized form of LIMIT, OFFSET and FETCH FIRST. Either
// bound may be nil. Strict is false when the NON_STRICT hint was given.
type Limit struct {
	Offset   Expression
	RowCount Expression
	Strict   bool
}

// WithQuery is a common table expression.
type WithQuery struct {
	Name    *GroupSymbol
	Columns []*ElementSymbol
	Command QueryCommand
}

// QueryClauses are the clauses both Query and SetQuery carry.
type QueryClauses struct {
	With    []*WithQuery
	OrderBy *OrderBy
	Limit   *Limit
}

// ---------- Query commands ----------

// Query is a single SELECT.
type Query struct {
	QueryClauses
	CacheHint  *CacheHint
	SourceHint *SourceHint
	Select     *Select
	Into       *Into
	From       *From
	Where      Criteria
	GroupBy    *GroupBy
	Having     Criteria
	Option     *Option
}

// SetOp is a set operator.
type SetOp int

// Set operators.
const (
	SetUnion SetOp = iota
	SetIntersect
	SetExcept
)

func (o SetOp) String() string {
	switch o {
	case SetIntersect:
		return "INTERSECT"
	case SetExcept:
		return "EXCEPT"
	default:
		return "UNION"
	}
}

// SetQuery combines two query commands.
type SetQuery struct {
	QueryClauses
	CacheHint *CacheHint
	Operation SetOp
	All       bool
	Left      QueryCommand
	Right     QueryCommand
	Option    *Option
}

// Clauses implements QueryCommand.
func (q *Query) Clauses() *QueryClauses { return &q.QueryClauses }

// Clauses implements QueryCommand.
func (q *SetQuery) Clauses() *QueryClauses { return &q.QueryClauses }

// ---------- Data modification ----------

// SetClause is name = value in UPDATE and USING lists.
type SetClause struct {
	Symbol *ElementSymbol
	Value  Expression
}

// Insert is INSERT|UPSERT INTO group [(cols)] VALUES (...) | query.
type Insert struct {
	Group   *GroupSymbol
	Columns []*ElementSymbol
	Values  []Expression
	Query   QueryCommand
	Upsert  bool
	Option  *Option
}

// Update is UPDATE group SET ... [WHERE crit].
type Update struct {
	Group   *GroupSymbol
	Changes []*SetClause
	Where   Criteria
	Option  *Option
}

// Delete is DELETE FROM group [WHERE crit].
type Delete struct {
	Group  *GroupSymbol
	Where  Criteria
	Option *Option
}

// ---------- Procedures ----------

// ParameterDirection is the direction of a procedure parameter.
type ParameterDirection int

// Parameter directions.
const (
	ParamIn ParameterDirection = iota
	ParamOut
	ParamInOut
	ParamReturnValue
	ParamResultSet
)

var paramDirectionText = [...]string{"IN", "OUT", "INOUT", "RETURN", "RESULTSET"}

func (d ParameterDirection) String() string { return paramDirectionText[d] }

// SPParameter is an argument of a procedure call. Index is 1-based.
type SPParameter struct {
	Index      int
	Name       string
	Direction  ParameterDirection
	Expression Expression
}

// StoredProcedure is EXEC name(args) or the callable {?=call name(args)}.
type StoredProcedure struct {
	ProcedureName          string
	Parameters             []*SPParameter
	ReturnParameter        *SPParameter
	CallableStatement      bool
	DisplayNamedParameters bool
	CacheHint              *CacheHint
	Option                 *Option
}

// ReturnsScalarValue reports whether the call has a ?= return parameter.
func (s *StoredProcedure) ReturnsScalarValue() bool {
	return s.ReturnParameter != nil
}

// InputParameters returns the IN parameters in order.
func (s *StoredProcedure) InputParameters() []*SPParameter {
	var out []*SPParameter
	for _, p := range s.Parameters {
		if p.Direction == ParamIn {
			out = append(out, p)
		}
	}
	return out
}

// ColumnDef is a name and runtime type, as used by temp table creation and
// dynamic SQL AS clauses.
type ColumnDef struct {
	Name          string
	Type          string
	NotNull       bool
	AutoIncrement bool
}

// DynamicCommand is EXECUTE IMMEDIATE expr [AS ...] [INTO ...] [USING ...]
// [UPDATE n|*]. UpdatingModelCount is 0 when absent and -1 for *.
type DynamicCommand struct {
	SQL                Expression
	AsColumns          []*ColumnDef
	Into               *GroupSymbol
	Using              []*SetClause
	UpdatingModelCount int
}

// Create is CREATE LOCAL TEMPORARY TABLE or CREATE FOREIGN TEMPORARY TABLE.
type Create struct {
	Table      *GroupSymbol
	Columns    []*ColumnDef
	PrimaryKey []string
	Foreign    bool
	On         string
}

// Drop is DROP TABLE group.
type Drop struct {
	Table *GroupSymbol
}

// AlterView is ALTER VIEW name AS query.
type AlterView struct {
	Target     *GroupSymbol
	Definition QueryCommand
}

// AlterProcedure is ALTER PROCEDURE name AS block.
type AlterProcedure struct {
	Target     *GroupSymbol
	Definition *Block
}

// TriggerEvent is the operation an INSTEAD OF trigger replaces.
type TriggerEvent int

// Trigger events.
const (
	TriggerInsert TriggerEvent = iota
	TriggerUpdate
	TriggerDelete
)

func (e TriggerEvent) String() string {
	switch e {
	case TriggerUpdate:
		return "UPDATE"
	case TriggerDelete:
		return "DELETE"
	default:
		return "INSERT"
	}
}

// TriggerAction is FOR EACH ROW block.
type TriggerAction struct {
	Block *Block
}

// AlterTrigger is CREATE|ALTER TRIGGER ON group INSTEAD OF event followed
// by either a new definition or ENABLED/DISABLED.
type AlterTrigger struct {
	Target     *GroupSymbol
	Event      TriggerEvent
	Definition *TriggerAction
	Enabled    *bool
	Create     bool
}

// CreateUpdateProcedureCommand is CREATE [VIRTUAL] PROCEDURE block.
type CreateUpdateProcedureCommand struct {
	Block   *Block
	Virtual bool
}

func (*Query) commandNode()                        {}
func (*SetQuery) commandNode()                     {}
func (*Insert) commandNode()                       {}
func (*Update) commandNode()                       {}
func (*Delete) commandNode()                       {}
func (*StoredProcedure) commandNode()              {}
func (*DynamicCommand) commandNode()               {}
func (*Create) commandNode()                       {}
func (*Drop) commandNode()                         {}
func (*AlterView) commandNode()                    {}
func (*AlterProcedure) commandNode()               {}
func (*AlterTrigger) commandNode()                 {}
func (*CreateUpdateProcedureCommand) commandNode() {}

// Type implements Command.
func (*Query) Type() CommandType { return CommandQuery }

// Type implements Command.
func (*SetQuery) Type() CommandType { return CommandQuery }

// Type implements Command.
func (*Insert) Type() CommandType { return CommandInsert }

// Type implements Command.
func (*Update) Type() CommandType { return CommandUpdate }

// Type implements Command.
func (*Delete) Type() CommandType { return CommandDelete }

// Type implements Command.
func (*StoredProcedure) Type() CommandType { return CommandStoredProcedure }

// Type implements Command.
func (*DynamicCommand) Type() CommandType { return CommandDynamic }

// Type implements Command.
func (*Create) Type() CommandType { return CommandCreate }

// Type implements Command.
func (*Drop) Type() CommandType { return CommandDrop }

// Type implements Command.
func (*AlterView) Type() CommandType { return CommandAlter }

// Type implements Command.
func (*AlterProcedure) Type() CommandType { return CommandAlter }

// Type implements Command.
func (*AlterTrigger) Type() CommandType { return CommandAlter }

// Type implements Command.
func (*CreateUpdateProcedureCommand) Type() CommandType { return CommandUpdateProcedure }

// Alter and drop commands double as DDL statements.
func (*AlterView) ddlNode()      {}
func (*AlterProcedure) ddlNode() {}
func (*AlterTrigger) ddlNode()   {}
func (*Drop) ddlNode()           {}
