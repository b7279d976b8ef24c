package core

// TypeSpec is a declared type: name, optional (length[, scale]) arguments
// and array dimensions. Name keeps the spelling used in the source.
type TypeSpec struct {
	Name            string
	Params          []int
	ArrayDimensions int
}

// OptionEntry is one KEY value pair of an OPTIONS (...) list.
type OptionEntry struct {
	Key   string
	Value Expression
}

// ColumnDefinition is a column of CREATE FOREIGN TABLE / CREATE VIEW or a
// procedure result column.
type ColumnDefinition struct {
	Name          string
	Type          *TypeSpec
	NotNull       bool
	AutoIncrement bool
	PrimaryKey    bool
	Unique        bool
	Index         bool
	Default       Expression
	Options       []*OptionEntry
}

// ConstraintKind identifies a table level constraint.
type ConstraintKind int

// Constraint kinds.
const (
	ConstraintPrimaryKey ConstraintKind = iota
	ConstraintUnique
	ConstraintIndex
	ConstraintAccessPattern
	ConstraintForeignKey
)

var constraintText = [...]string{"PRIMARY KEY", "UNIQUE", "INDEX", "ACCESSPATTERN", "FOREIGN KEY"}

func (k ConstraintKind) String() string { return constraintText[k] }

// ConstraintDefinition is a table level key, index or access pattern.
// Expressions is set for function based indexes; ReferenceTable and
// ReferenceColumns for foreign keys.
type ConstraintDefinition struct {
	Kind             ConstraintKind
	Name             string
	Columns          []string
	Expressions      []Expression
	ReferenceTable   string
	ReferenceColumns []string
	Options          []*OptionEntry
}

// TableKind distinguishes the CREATE ... TABLE forms.
type TableKind int

// Table kinds.
const (
	TableForeign TableKind = iota
	TableView
	TableGlobalTemporary
)

// CreateTable is CREATE FOREIGN TABLE, CREATE [VIRTUAL] VIEW or
// CREATE GLOBAL TEMPORARY TABLE.
type CreateTable struct {
	Name        string
	Kind        TableKind
	Columns     []*ColumnDefinition
	Constraints []*ConstraintDefinition
	Options     []*OptionEntry
	Query       QueryCommand
}

// ProcedureKind is FOREIGN or VIRTUAL.
type ProcedureKind int

// Procedure kinds.
const (
	ProcedureForeign ProcedureKind = iota
	ProcedureVirtual
)

// ParameterDefinition is a parameter of CREATE PROCEDURE / FUNCTION.
type ParameterDefinition struct {
	Direction ParameterDirection
	Name      string
	Type      *TypeSpec
	NotNull   bool
	Result    bool
	Varargs   bool
	Default   Expression
	Options   []*OptionEntry
}

// CreateProcedure is CREATE [FOREIGN|VIRTUAL] PROCEDURE|FUNCTION.
type CreateProcedure struct {
	Name          string
	Kind          ProcedureKind
	Function      bool
	Parameters    []*ParameterDefinition
	ReturnType    *TypeSpec
	ResultColumns []*ColumnDefinition
	Options       []*OptionEntry
	Body          Statement
}

// AlterTargetKind is the kind of object an ALTER ... OPTIONS changes.
type AlterTargetKind int

// Alter targets.
const (
	TargetTable AlterTargetKind = iota
	TargetView
	TargetProcedure
	TargetFunction
)

// AlterChildKind selects a column or parameter of the target.
type AlterChildKind int

// Alter children.
const (
	ChildNone AlterChildKind = iota
	ChildColumn
	ChildParameter
)

// OptionAction is ADD, SET or DROP.
type OptionAction int

// Option actions.
const (
	OptionAdd OptionAction = iota
	OptionSet
	OptionDrop
)

func (a OptionAction) String() string {
	switch a {
	case OptionSet:
		return "SET"
	case OptionDrop:
		return "DROP"
	default:
		return "ADD"
	}
}

// OptionChange is one entry of ALTER ... OPTIONS (...). Value is nil for
// DROP.
type OptionChange struct {
	Action OptionAction
	Key    string
	Value  Expression
}

// AlterOptions is ALTER <target> name [ALTER COLUMN|PARAMETER child]
// OPTIONS (ADD|SET|DROP ...).
type AlterOptions struct {
	TargetKind AlterTargetKind
	Foreign    bool
	Name       string
	ChildKind  AlterChildKind
	ChildName  string
	Changes    []*OptionChange
}

// SetNamespace is SET NAMESPACE 'uri' AS prefix.
type SetNamespace struct {
	URI    string
	Prefix string
}

func (*CreateTable) ddlNode()     {}
func (*CreateProcedure) ddlNode() {}
func (*AlterOptions) ddlNode()    {}
func (*SetNamespace) ddlNode()    {}
