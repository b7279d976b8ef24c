package metadata

import (
	"github.com/teiid/teiid-sub017/pkg/core"
)

// Unset is the value of a numeric attribute that was never given or was
// dropped with ALTER ... OPTIONS (DROP ...).
const Unset = -1

// NullType is the nullability of a column or parameter.
type NullType string

// Nullability values.
const (
	NoNulls         NullType = "NO_NULLS"
	Nullable        NullType = "NULLABLE"
	NullableUnknown NullType = "UNKNOWN"
)

// SearchType is the searchability of a column.
type SearchType string

// Searchability values.
const (
	Searchable    SearchType = "SEARCHABLE"
	Unsearchable  SearchType = "UNSEARCHABLE"
	LikeOnly      SearchType = "LIKE_ONLY"
	AllExceptLike SearchType = "ALL_EXCEPT_LIKE"
)

// TableType distinguishes the kinds of table a schema holds.
type TableType string

// Table types.
const (
	TableTypeTable           TableType = "TABLE"
	TableTypeView            TableType = "VIEW"
	TableTypeGlobalTemporary TableType = "GLOBAL_TEMPORARY"
)

// KeyType is the kind of a KeyRecord.
type KeyType string

// Key types.
const (
	KeyPrimary       KeyType = "PRIMARY"
	KeyUnique        KeyType = "UNIQUE"
	KeyIndex         KeyType = "INDEX"
	KeyAccessPattern KeyType = "ACCESS_PATTERN"
	KeyForeign       KeyType = "FOREIGN"
)

// Determinism values of a function.
const (
	Deterministic        = "DETERMINISTIC"
	CommandDeterministic = "COMMAND_DETERMINISTIC"
	SessionDeterministic = "SESSION_DETERMINISTIC"
	UserDeterministic    = "USER_DETERMINISTIC"
	Nondeterministic     = "NONDETERMINISTIC"
)

// PushDown tells the planner where a function may be evaluated.
type PushDown string

// Pushdown modes.
const (
	CanPushdown    PushDown = "CAN_PUSHDOWN"
	MustPushdown   PushDown = "MUST_PUSHDOWN"
	CannotPushdown PushDown = "CANNOT_PUSHDOWN"
)

// Properties holds options that have no dedicated attribute. Namespaced
// keys are stored expanded as {uri}name.
type Properties map[string]string

// Schema is the metadata of one schema built from DDL.
type Schema struct {
	Name       string            `json:"name" yaml:"name"`
	Tables     []*Table          `json:"tables,omitempty" yaml:"tables,omitempty"`
	Procedures []*Procedure      `json:"procedures,omitempty" yaml:"procedures,omitempty"`
	Functions  []*FunctionMethod `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// Table returns the table with the given name, compared case-insensitively.
func (s *Schema) Table(name string) (*Table, bool) {
	return findByName(s.Tables, name, func(t *Table) string { return t.Name })
}

// Procedure returns the procedure with the given name.
func (s *Schema) Procedure(name string) (*Procedure, bool) {
	return findByName(s.Procedures, name, func(p *Procedure) string { return p.Name })
}

// FunctionsNamed returns every overload of the named function.
func (s *Schema) FunctionsNamed(name string) []*FunctionMethod {
	var out []*FunctionMethod
	key := fold(name)
	for _, f := range s.Functions {
		if fold(f.Name) == key {
			out = append(out, f)
		}
	}
	return out
}

// Table is a foreign table, view or global temporary table.
type Table struct {
	Name     string    `json:"name" yaml:"name"`
	FullName string    `json:"full_name" yaml:"full_name"`
	UUID     string    `json:"uuid" yaml:"uuid"`
	Type     TableType `json:"type" yaml:"type"`
	Virtual  bool      `json:"virtual" yaml:"virtual"`

	Columns              []*Column     `json:"columns,omitempty" yaml:"columns,omitempty"`
	PrimaryKey           *KeyRecord    `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	UniqueKeys           []*KeyRecord  `json:"unique_keys,omitempty" yaml:"unique_keys,omitempty"`
	Indexes              []*KeyRecord  `json:"indexes,omitempty" yaml:"indexes,omitempty"`
	FunctionBasedIndexes []*KeyRecord  `json:"function_based_indexes,omitempty" yaml:"function_based_indexes,omitempty"`
	AccessPatterns       []*KeyRecord  `json:"access_patterns,omitempty" yaml:"access_patterns,omitempty"`
	ForeignKeys          []*ForeignKey `json:"foreign_keys,omitempty" yaml:"foreign_keys,omitempty"`

	Cardinality       int64  `json:"cardinality" yaml:"cardinality"`
	NameInSource      string `json:"name_in_source,omitempty" yaml:"name_in_source,omitempty"`
	Annotation        string `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Updatable         bool   `json:"updatable" yaml:"updatable"`
	Materialized      bool   `json:"materialized,omitempty" yaml:"materialized,omitempty"`
	MaterializedTable string `json:"materialized_table,omitempty" yaml:"materialized_table,omitempty"`

	// Canonical SQL of the view definition and the INSTEAD OF triggers.
	SelectTransformation string `json:"select_transformation,omitempty" yaml:"select_transformation,omitempty"`
	InsertPlan           string `json:"insert_plan,omitempty" yaml:"insert_plan,omitempty"`
	UpdatePlan           string `json:"update_plan,omitempty" yaml:"update_plan,omitempty"`
	DeletePlan           string `json:"delete_plan,omitempty" yaml:"delete_plan,omitempty"`
	InsertPlanEnabled    bool   `json:"insert_plan_enabled,omitempty" yaml:"insert_plan_enabled,omitempty"`
	UpdatePlanEnabled    bool   `json:"update_plan_enabled,omitempty" yaml:"update_plan_enabled,omitempty"`
	DeletePlanEnabled    bool   `json:"delete_plan_enabled,omitempty" yaml:"delete_plan_enabled,omitempty"`

	Properties Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	return findByName(t.Columns, name, func(c *Column) string { return c.Name })
}

// Column is a column of a table or of a procedure result set.
type Column struct {
	Name            string        `json:"name" yaml:"name"`
	UUID            string        `json:"uuid" yaml:"uuid"`
	Position        int           `json:"position" yaml:"position"`
	Datatype        string        `json:"datatype" yaml:"datatype"`
	RuntimeType     core.DataType `json:"-" yaml:"-"`
	ArrayDimensions int           `json:"array_dimensions,omitempty" yaml:"array_dimensions,omitempty"`
	Length          int           `json:"length,omitempty" yaml:"length,omitempty"`
	Precision       int           `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale           int           `json:"scale,omitempty" yaml:"scale,omitempty"`
	Radix           int           `json:"radix,omitempty" yaml:"radix,omitempty"`
	NullType        NullType      `json:"null_type" yaml:"null_type"`
	DefaultValue    string        `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	AutoIncrement   bool          `json:"auto_increment,omitempty" yaml:"auto_increment,omitempty"`

	SearchType      SearchType `json:"search_type" yaml:"search_type"`
	Selectable      bool       `json:"selectable" yaml:"selectable"`
	Updatable       bool       `json:"updatable" yaml:"updatable"`
	CaseSensitive   bool       `json:"case_sensitive" yaml:"case_sensitive"`
	Signed          bool       `json:"signed" yaml:"signed"`
	Currency        bool       `json:"currency,omitempty" yaml:"currency,omitempty"`
	FixedLength     bool       `json:"fixed_length,omitempty" yaml:"fixed_length,omitempty"`
	MinValue        string     `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue        string     `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	CharOctetLength int        `json:"char_octet_length" yaml:"char_octet_length"`
	NullValues      int        `json:"null_values" yaml:"null_values"`
	DistinctValues  int        `json:"distinct_values" yaml:"distinct_values"`
	NativeType      string     `json:"native_type,omitempty" yaml:"native_type,omitempty"`
	NameInSource    string     `json:"name_in_source,omitempty" yaml:"name_in_source,omitempty"`
	Annotation      string     `json:"annotation,omitempty" yaml:"annotation,omitempty"`

	Properties Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// KeyRecord is a primary key, unique key, index or access pattern. A
// function based index lists its canonical expressions and the columns they
// reference.
type KeyRecord struct {
	Name        string     `json:"name,omitempty" yaml:"name,omitempty"`
	UUID        string     `json:"uuid" yaml:"uuid"`
	Type        KeyType    `json:"type" yaml:"type"`
	Columns     []*Column  `json:"-" yaml:"-"`
	ColumnNames []string   `json:"columns" yaml:"columns"`
	Expressions []string   `json:"expressions,omitempty" yaml:"expressions,omitempty"`
	Properties  Properties `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// ForeignKey references a primary or unique key of another table by name.
// Reference stays nil until a Store resolves it.
type ForeignKey struct {
	KeyRecord          `yaml:",inline"`
	ReferenceTableName string   `json:"reference_table" yaml:"reference_table"`
	ReferenceColumns   []string `json:"reference_columns,omitempty" yaml:"reference_columns,omitempty"`
	Reference          *KeyRef  `json:"reference,omitempty" yaml:"reference,omitempty"`
	ReferenceTable     string   `json:"resolved_table,omitempty" yaml:"resolved_table,omitempty"`
}

// KeyRef locates a key in the table registry of a Store. Table indexes
// Store.Tables; Key 0 is the primary key and Key i > 0 is UniqueKeys[i-1].
type KeyRef struct {
	Table int `json:"table" yaml:"table"`
	Key   int `json:"key" yaml:"key"`
}

// Procedure is a foreign or virtual procedure.
type Procedure struct {
	Name          string                `json:"name" yaml:"name"`
	FullName      string                `json:"full_name" yaml:"full_name"`
	UUID          string                `json:"uuid" yaml:"uuid"`
	Virtual       bool                  `json:"virtual" yaml:"virtual"`
	Parameters    []*ProcedureParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ResultColumns []*Column             `json:"result_columns,omitempty" yaml:"result_columns,omitempty"`
	UpdateCount   int                   `json:"update_count" yaml:"update_count"`
	NameInSource  string                `json:"name_in_source,omitempty" yaml:"name_in_source,omitempty"`
	Annotation    string                `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	QueryPlan     string                `json:"query_plan,omitempty" yaml:"query_plan,omitempty"`
	Properties    Properties            `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Parameter returns the parameter with the given name.
func (p *Procedure) Parameter(name string) (*ProcedureParameter, bool) {
	return findByName(p.Parameters, name, func(pp *ProcedureParameter) string { return pp.Name })
}

// ProcedureParameter is a parameter of a procedure or function.
type ProcedureParameter struct {
	Name            string                  `json:"name" yaml:"name"`
	UUID            string                  `json:"uuid" yaml:"uuid"`
	Position        int                     `json:"position" yaml:"position"`
	Direction       core.ParameterDirection `json:"-" yaml:"-"`
	DirectionName   string                  `json:"direction" yaml:"direction"`
	Datatype        string                  `json:"datatype" yaml:"datatype"`
	RuntimeType     core.DataType           `json:"-" yaml:"-"`
	ArrayDimensions int                     `json:"array_dimensions,omitempty" yaml:"array_dimensions,omitempty"`
	Length          int                     `json:"length,omitempty" yaml:"length,omitempty"`
	Precision       int                     `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale           int                     `json:"scale,omitempty" yaml:"scale,omitempty"`
	Radix           int                     `json:"radix,omitempty" yaml:"radix,omitempty"`
	NullType        NullType                `json:"null_type" yaml:"null_type"`
	DefaultValue    string                  `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	VarArg          bool                    `json:"vararg,omitempty" yaml:"vararg,omitempty"`
	NameInSource    string                  `json:"name_in_source,omitempty" yaml:"name_in_source,omitempty"`
	Annotation      string                  `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Properties      Properties              `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// AggregateAttributes describe a user defined aggregate function.
type AggregateAttributes struct {
	AllowsDistinct   bool `json:"allows_distinct" yaml:"allows_distinct"`
	AllowsOrderBy    bool `json:"allows_order_by" yaml:"allows_order_by"`
	Analytic         bool `json:"analytic" yaml:"analytic"`
	Decomposable     bool `json:"decomposable" yaml:"decomposable"`
	UsesDistinctRows bool `json:"uses_distinct_rows" yaml:"uses_distinct_rows"`
}

// FunctionMethod is a scalar or aggregate function. UUID is its lookup key.
type FunctionMethod struct {
	Name            string                `json:"name" yaml:"name"`
	FullName        string                `json:"full_name" yaml:"full_name"`
	UUID            string                `json:"uuid" yaml:"uuid"`
	Virtual         bool                  `json:"virtual" yaml:"virtual"`
	PushDown        PushDown              `json:"pushdown" yaml:"pushdown"`
	Category        string                `json:"category,omitempty" yaml:"category,omitempty"`
	Determinism     string                `json:"determinism" yaml:"determinism"`
	NullOnNull      bool                  `json:"null_on_null" yaml:"null_on_null"`
	VarArgs         bool                  `json:"varargs,omitempty" yaml:"varargs,omitempty"`
	InvocationClass string                `json:"invocation_class,omitempty" yaml:"invocation_class,omitempty"`
	InvocationMeth  string                `json:"invocation_method,omitempty" yaml:"invocation_method,omitempty"`
	Inputs          []*ProcedureParameter `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Output          *ProcedureParameter   `json:"output" yaml:"output"`
	Aggregate       *AggregateAttributes  `json:"aggregate,omitempty" yaml:"aggregate,omitempty"`
	NameInSource    string                `json:"name_in_source,omitempty" yaml:"name_in_source,omitempty"`
	Annotation      string                `json:"annotation,omitempty" yaml:"annotation,omitempty"`
	Body            string                `json:"body,omitempty" yaml:"body,omitempty"`
	Properties      Properties            `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Parameter returns the input parameter with the given name.
func (f *FunctionMethod) Parameter(name string) (*ProcedureParameter, bool) {
	return findByName(f.Inputs, name, func(pp *ProcedureParameter) string { return pp.Name })
}

func findByName[T any](list []T, name string, nameOf func(T) string) (T, bool) {
	key := fold(name)
	for _, v := range list {
		if fold(nameOf(v)) == key {
			return v, true
		}
	}
	var zero T
	return zero, false
}
