package core

// Node is the base interface for all AST nodes.
type Node interface {
	// Accept dispatches to the Visitor method for the concrete node type.
	Accept(v Visitor)
}

// Expression is a marker interface for value-producing nodes.
type Expression interface {
	Node
	exprNode()
}

// Criteria is a boolean predicate. Every criteria is also an expression so
// bare predicates can appear wherever a value is expected.
type Criteria interface {
	Expression
	criteriaNode()
}

// SelectItem is an entry of a SELECT list.
type SelectItem interface {
	Node
	selectItemNode()
}

// FromClause is an item of a FROM clause.
type FromClause interface {
	Node
	fromClauseNode()
	// FromHints returns the planner hints attached to the item.
	FromHints() *FromHints
}

// Command is a complete executable statement.
type Command interface {
	Node
	commandNode()
	Type() CommandType
}

// QueryCommand is a Query or a SetQuery.
type QueryCommand interface {
	Command
	// Clauses returns the WITH/ORDER BY/LIMIT clauses shared by both forms.
	Clauses() *QueryClauses
}

// Statement is a statement of the procedural block language.
type Statement interface {
	Node
	statementNode()
}

// DDLStatement is a metadata-defining statement.
type DDLStatement interface {
	Node
	ddlNode()
}

// CommandType identifies the kind of a Command.
type CommandType int

// Command types.
const (
	CommandQuery CommandType = iota + 1
	CommandInsert
	CommandUpdate
	CommandDelete
	CommandStoredProcedure
	CommandUpdateProcedure
	CommandCreate
	CommandDrop
	CommandDynamic
	CommandAlter
)

var commandTypeNames = map[CommandType]string{
	CommandQuery:           "QUERY",
	CommandInsert:          "INSERT",
	CommandUpdate:          "UPDATE",
	CommandDelete:          "DELETE",
	CommandStoredProcedure: "STORED_PROCEDURE",
	CommandUpdateProcedure: "UPDATE_PROCEDURE",
	CommandCreate:          "CREATE",
	CommandDrop:            "DROP",
	CommandDynamic:         "DYNAMIC",
	CommandAlter:           "ALTER",
}

func (c CommandType) String() string {
	return commandTypeNames[c]
}
