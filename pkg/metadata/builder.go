// Package metadata builds in-memory schema metadata from parsed DDL.
//
// Build walks CREATE, ALTER, DROP and SET NAMESPACE statements in order and
// produces a Factory holding one Schema: tables with their columns and
// keys, procedures and functions. Build does no I/O. A Factory is handed to
// a Store with MergeInto, and the Store resolves foreign keys across
// schemas.
package metadata

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/format"
)

// Factory is the result of Build: the metadata of one schema plus the
// namespaces and datatypes it was built with.
type Factory struct {
	schema     *Schema
	namespaces map[string]string
	datatypes  *Datatypes
}

// Schema returns the built schema.
func (f *Factory) Schema() *Schema { return f.schema }

// Namespaces returns the prefix to URI bindings in effect after the last
// statement, including the built-in ones.
func (f *Factory) Namespaces() map[string]string { return maps.Clone(f.namespaces) }

// Datatypes returns the registry columns were resolved against.
func (f *Factory) Datatypes() *Datatypes { return f.datatypes }

// MergeInto adds the schema to store.
func (f *Factory) MergeInto(store *Store) error {
	return store.AddSchema(f.schema)
}

// BuildOption configures Build.
type BuildOption func(*builder)

// WithLogger sets the logger Build reports applied statements to.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

type builder struct {
	schema     *Schema
	datatypes  *Datatypes
	namespaces map[string]string
	logger     *slog.Logger

	functionUUIDs map[string]*FunctionMethod
	functionSigs  map[string]*FunctionMethod
}

// Build turns DDL statements into the metadata of schema. Unknown type
// names are resolved against datatypes, or the builtin types when it is
// nil. The first violated rule stops the build with a *MetadataError or
// *DuplicateRecordError.
func Build(stmts []core.DDLStatement, schema string, datatypes *Datatypes, opts ...BuildOption) (*Factory, error) {
	if datatypes == nil {
		datatypes = DefaultDatatypes()
	}
	b := &builder{
		schema:        &Schema{Name: schema},
		datatypes:     datatypes,
		namespaces:    builtinNamespaces(),
		logger:        slog.New(slog.DiscardHandler),
		functionUUIDs: make(map[string]*FunctionMethod),
		functionSigs:  make(map[string]*FunctionMethod),
	}
	for _, opt := range opts {
		opt(b)
	}

	for _, stmt := range stmts {
		kind, name, err := b.apply(stmt)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("ddl statement applied", "schema", schema, "kind", kind, "name", name)
	}

	return &Factory{schema: b.schema, namespaces: b.namespaces, datatypes: datatypes}, nil
}

func (b *builder) apply(stmt core.DDLStatement) (kind, name string, err error) {
	switch s := stmt.(type) {
	case *core.CreateTable:
		return "table", s.Name, b.createTable(s)
	case *core.CreateProcedure:
		if s.Function {
			return "function", s.Name, b.createFunction(s)
		}
		return "procedure", s.Name, b.createProcedure(s)
	case *core.AlterOptions:
		return "options", s.Name, b.alterOptions(s)
	case *core.SetNamespace:
		return "namespace", s.Prefix, b.setNamespace(s)
	case *core.AlterView:
		return "view", s.Target.Name, b.alterView(s)
	case *core.AlterProcedure:
		return "procedure", s.Target.Name, b.alterProcedure(s)
	case *core.AlterTrigger:
		return "trigger", s.Target.Name, b.alterTrigger(s)
	case *core.Drop:
		return "drop", s.Table.Name, b.dropTable(s)
	}
	return "", "", fmt.Errorf("metadata: unsupported statement %T", stmt)
}

func (b *builder) fullName(name string) string {
	return b.schema.Name + "." + name
}

// recordUUID derives a stable UUID from a record's path so that building
// the same DDL twice yields equal metadata.
func recordUUID(path string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(path)).String()
}

// ---------- tables ----------

func (b *builder) createTable(ct *core.CreateTable) error {
	if _, ok := b.schema.Table(ct.Name); ok {
		return &DuplicateRecordError{Kind: "table", Name: ct.Name}
	}

	t := &Table{
		Name:        ct.Name,
		FullName:    b.fullName(ct.Name),
		Cardinality: Unset,
	}
	switch ct.Kind {
	case core.TableView:
		t.Type = TableTypeView
		t.Virtual = true
		t.SelectTransformation = format.SQL(ct.Query)
	case core.TableGlobalTemporary:
		t.Type = TableTypeGlobalTemporary
		t.Virtual = true
		if ct.Query != nil {
			return metadataErrorf(ct.Name, "a temporary table cannot have a query definition")
		}
	default:
		t.Type = TableTypeTable
		if ct.Query != nil {
			return metadataErrorf(ct.Name, "a foreign table cannot have a query definition")
		}
	}

	for i, cd := range ct.Columns {
		if _, ok := t.Column(cd.Name); ok {
			return &DuplicateRecordError{Kind: "column", Name: t.Name + "." + cd.Name}
		}
		c, err := b.newColumn(t.FullName, i+1, cd)
		if err != nil {
			return err
		}
		t.Columns = append(t.Columns, c)
	}

	for _, cd := range ct.Columns {
		var kinds []core.ConstraintKind
		if cd.PrimaryKey {
			kinds = append(kinds, core.ConstraintPrimaryKey)
		}
		if cd.Unique {
			kinds = append(kinds, core.ConstraintUnique)
		}
		if cd.Index {
			kinds = append(kinds, core.ConstraintIndex)
		}
		for _, k := range kinds {
			if err := b.addConstraint(t, &core.ConstraintDefinition{Kind: k, Columns: []string{cd.Name}}); err != nil {
				return err
			}
		}
	}
	for _, c := range ct.Constraints {
		if err := b.addConstraint(t, c); err != nil {
			return err
		}
	}

	if err := b.applyOptions(t.Name, tableAttributes(t), &t.Properties, ct.Options); err != nil {
		return err
	}
	if t.UUID == "" {
		t.UUID = recordUUID(t.FullName)
	}

	b.schema.Tables = append(b.schema.Tables, t)
	return nil
}

// typeInfo is a declared type resolved against the registry.
type typeInfo struct {
	name    string
	runtime core.DataType
	dims    int
	length  int

	precision, scale, radix int
}

func lengthType(t core.DataType) bool {
	switch t {
	case core.TypeString, core.TypeChar, core.TypeVarbinary, core.TypeBlob,
		core.TypeClob, core.TypeXML, core.TypeObject, core.TypeJSON, core.TypeGeometry:
		return true
	}
	return false
}

func (b *builder) resolveType(owner string, spec *core.TypeSpec) (typeInfo, error) {
	dt, ok := b.datatypes.Lookup(spec.Name)
	if !ok {
		return typeInfo{}, metadataErrorf(owner, "unknown datatype %s", spec.Name)
	}
	ti := typeInfo{
		name:      dt.Name,
		runtime:   dt.RuntimeType,
		dims:      spec.ArrayDimensions,
		length:    dt.Length,
		precision: dt.Precision,
		scale:     dt.Scale,
		radix:     dt.Radix,
	}
	switch {
	case len(spec.Params) == 0:
	case lengthType(dt.RuntimeType):
		if len(spec.Params) > 1 {
			return typeInfo{}, metadataErrorf(owner, "%s takes a single length argument", spec.Name)
		}
		ti.length = spec.Params[0]
	default:
		if len(spec.Params) > 2 {
			return typeInfo{}, metadataErrorf(owner, "%s takes at most precision and scale", spec.Name)
		}
		ti.precision = spec.Params[0]
		ti.scale = 0
		if len(spec.Params) == 2 {
			ti.scale = spec.Params[1]
		}
		if ti.scale > ti.precision {
			return typeInfo{}, metadataErrorf(owner, "scale %d exceeds precision %d", ti.scale, ti.precision)
		}
	}
	return ti, nil
}

// parseUDT reads a UDT option value of the form name(length, precision, scale).
func (b *builder) parseUDT(owner, text string) (typeInfo, error) {
	name, rest, ok := strings.Cut(text, "(")
	args, closed := strings.CutSuffix(strings.TrimSpace(rest), ")")
	parts := strings.Split(args, ",")
	if !ok || !closed || len(parts) != 3 {
		return typeInfo{}, metadataErrorf(owner, "invalid UDT %q, expected name(length, precision, scale)", text)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return typeInfo{}, metadataErrorf(owner, "invalid UDT %q, expected name(length, precision, scale)", text)
		}
		nums[i] = n
	}
	dt, found := b.datatypes.Lookup(strings.TrimSpace(name))
	if !found {
		return typeInfo{}, metadataErrorf(owner, "unknown datatype %s", strings.TrimSpace(name))
	}
	return typeInfo{
		name:      dt.Name,
		runtime:   dt.RuntimeType,
		length:    nums[0],
		precision: nums[1],
		scale:     nums[2],
		radix:     dt.Radix,
	}, nil
}

func (b *builder) newColumn(owner string, position int, cd *core.ColumnDefinition) (*Column, error) {
	path := owner + "." + cd.Name
	ti, err := b.resolveType(path, cd.Type)
	if err != nil {
		return nil, err
	}
	c := &Column{
		Name:            cd.Name,
		Position:        position,
		NullType:        Nullable,
		AutoIncrement:   cd.AutoIncrement,
		SearchType:      Searchable,
		Selectable:      true,
		Updatable:       true,
		Signed:          ti.runtime.IsNumeric(),
		CharOctetLength: Unset,
		NullValues:      Unset,
		DistinctValues:  Unset,
	}
	c.setType(ti)
	if cd.NotNull {
		c.NullType = NoNulls
	}
	if cd.Default != nil {
		c.DefaultValue = format.SQL(cd.Default)
	}

	if err := b.applyOptions(path, b.columnAttributes(c), &c.Properties, cd.Options); err != nil {
		return nil, err
	}
	if c.UUID == "" {
		c.UUID = recordUUID(path)
	}
	return c, nil
}

func (c *Column) setType(ti typeInfo) {
	c.Datatype = ti.name
	c.RuntimeType = ti.runtime
	c.ArrayDimensions = ti.dims
	c.Length = ti.length
	c.Precision = ti.precision
	c.Scale = ti.scale
	c.Radix = ti.radix
}

// columnAttributes adds the UDT option, which needs the registry, to the
// plain column attributes.
func (b *builder) columnAttributes(c *Column) attributes {
	attrs := columnAttributes(c)
	attrs["udt"] = func(owner string, v core.Expression) error {
		if v == nil {
			return nil
		}
		ti, err := b.parseUDT(owner, optionText(v))
		if err != nil {
			return err
		}
		ti.dims = c.ArrayDimensions
		c.setType(ti)
		return nil
	}
	return attrs
}

func (b *builder) keyColumns(t *Table, names []string) ([]*Column, error) {
	cols := make([]*Column, 0, len(names))
	for _, n := range names {
		c, ok := t.Column(n)
		if !ok {
			return nil, metadataErrorf(t.Name, "column %s not found", n)
		}
		cols = append(cols, c)
	}
	return cols, nil
}

func columnNames(cols []*Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

var keyTypes = map[core.ConstraintKind]KeyType{
	core.ConstraintPrimaryKey:    KeyPrimary,
	core.ConstraintUnique:        KeyUnique,
	core.ConstraintIndex:         KeyIndex,
	core.ConstraintAccessPattern: KeyAccessPattern,
	core.ConstraintForeignKey:    KeyForeign,
}

func (b *builder) addConstraint(t *Table, cd *core.ConstraintDefinition) error {
	key := &KeyRecord{Name: cd.Name, Type: keyTypes[cd.Kind]}

	if len(cd.Expressions) > 0 {
		seen := map[*Column]bool{}
		for _, e := range cd.Expressions {
			key.Expressions = append(key.Expressions, format.SQL(e))
			var missing string
			core.Inspect(e, func(es *core.ElementSymbol) {
				c, ok := t.Column(es.ShortName())
				switch {
				case !ok && missing == "":
					missing = es.Name
				case ok && !seen[c]:
					seen[c] = true
					key.Columns = append(key.Columns, c)
				}
			})
			if missing != "" {
				return metadataErrorf(t.Name, "column %s not found", missing)
			}
		}
	} else {
		cols, err := b.keyColumns(t, cd.Columns)
		if err != nil {
			return err
		}
		key.Columns = cols
	}
	key.ColumnNames = columnNames(key.Columns)

	if err := b.applyOptions(t.Name, attributes{"uuid": setString(&key.UUID)}, &key.Properties, cd.Options); err != nil {
		return err
	}
	if key.UUID == "" {
		seed := fmt.Sprintf("%s/%s/%s/%s", t.FullName, key.Type, key.Name,
			strings.Join(append(slices.Clone(key.ColumnNames), key.Expressions...), ","))
		key.UUID = recordUUID(seed)
	}

	switch cd.Kind {
	case core.ConstraintPrimaryKey:
		if t.PrimaryKey != nil {
			return metadataErrorf(t.Name, "duplicate primary key")
		}
		t.PrimaryKey = key
	case core.ConstraintUnique:
		t.UniqueKeys = append(t.UniqueKeys, key)
	case core.ConstraintIndex:
		if len(key.Expressions) > 0 {
			t.FunctionBasedIndexes = append(t.FunctionBasedIndexes, key)
		} else {
			t.Indexes = append(t.Indexes, key)
		}
	case core.ConstraintAccessPattern:
		t.AccessPatterns = append(t.AccessPatterns, key)
	case core.ConstraintForeignKey:
		if len(cd.ReferenceColumns) > 0 && len(cd.ReferenceColumns) != len(key.Columns) {
			return metadataErrorf(t.Name, "foreign key has %d columns but references %d",
				len(key.Columns), len(cd.ReferenceColumns))
		}
		t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
			KeyRecord:          *key,
			ReferenceTableName: cd.ReferenceTable,
			ReferenceColumns:   cd.ReferenceColumns,
		})
	}
	return nil
}

// ---------- procedures and functions ----------

// bodySQL renders a procedure or function body. A single command body is
// stored without its statement terminator.
func bodySQL(body core.Statement) string {
	switch s := body.(type) {
	case nil:
		return ""
	case *core.CommandStatement:
		return format.SQL(s.Command)
	default:
		return format.SQL(s)
	}
}

func (b *builder) newParameter(owner string, position int, pd *core.ParameterDefinition) (*ProcedureParameter, error) {
	path := owner + "." + pd.Name
	ti, err := b.resolveType(path, pd.Type)
	if err != nil {
		return nil, err
	}
	p := &ProcedureParameter{
		Name:            pd.Name,
		Position:        position,
		Direction:       pd.Direction,
		Datatype:        ti.name,
		RuntimeType:     ti.runtime,
		ArrayDimensions: ti.dims,
		Length:          ti.length,
		Precision:       ti.precision,
		Scale:           ti.scale,
		Radix:           ti.radix,
		NullType:        Nullable,
		VarArg:          pd.Varargs,
	}
	if pd.Result {
		if pd.Direction != core.ParamOut {
			return nil, metadataErrorf(path, "only an OUT parameter can be the RESULT")
		}
		p.Direction = core.ParamReturnValue
	}
	p.DirectionName = p.Direction.String()
	if pd.NotNull {
		p.NullType = NoNulls
	}
	if pd.Default != nil {
		p.DefaultValue = format.SQL(pd.Default)
	}
	if err := b.applyOptions(path, parameterAttributes(p), &p.Properties, pd.Options); err != nil {
		return nil, err
	}
	if p.UUID == "" {
		p.UUID = recordUUID(path)
	}
	return p, nil
}

// returnParameter builds the implicit return value of RETURNS type.
func (b *builder) returnParameter(owner string, spec *core.TypeSpec) (*ProcedureParameter, error) {
	return b.newParameter(owner, 1, &core.ParameterDefinition{
		Direction: core.ParamReturnValue,
		Name:      "return",
		Type:      spec,
	})
}

func checkVarargs(owner string, params []*core.ParameterDefinition) error {
	for i, pd := range params {
		if pd.Varargs && i != len(params)-1 {
			return metadataErrorf(owner, "only the last parameter can be VARIADIC")
		}
	}
	return nil
}

func (b *builder) createProcedure(cp *core.CreateProcedure) error {
	if _, ok := b.schema.Procedure(cp.Name); ok {
		return &DuplicateRecordError{Kind: "procedure", Name: cp.Name}
	}
	p := &Procedure{
		Name:        cp.Name,
		FullName:    b.fullName(cp.Name),
		Virtual:     cp.Kind == core.ProcedureVirtual,
		UpdateCount: 1,
	}
	if !p.Virtual && cp.Body != nil {
		return metadataErrorf(cp.Name, "a foreign procedure cannot have a definition")
	}
	if err := checkVarargs(cp.Name, cp.Parameters); err != nil {
		return err
	}

	if cp.ReturnType != nil {
		ret, err := b.returnParameter(p.FullName, cp.ReturnType)
		if err != nil {
			return err
		}
		p.Parameters = append(p.Parameters, ret)
	}
	for _, pd := range cp.Parameters {
		if _, ok := p.Parameter(pd.Name); ok {
			return &DuplicateRecordError{Kind: "parameter", Name: cp.Name + "." + pd.Name}
		}
		param, err := b.newParameter(p.FullName, len(p.Parameters)+1, pd)
		if err != nil {
			return err
		}
		if param.Direction == core.ParamReturnValue && hasReturn(p.Parameters) {
			return metadataErrorf(cp.Name, "a procedure can have only one return parameter")
		}
		p.Parameters = append(p.Parameters, param)
	}
	for i, cd := range cp.ResultColumns {
		c, err := b.newColumn(p.FullName, i+1, cd)
		if err != nil {
			return err
		}
		p.ResultColumns = append(p.ResultColumns, c)
	}

	if err := b.applyOptions(cp.Name, procedureAttributes(p), &p.Properties, cp.Options); err != nil {
		return err
	}
	if p.UUID == "" {
		p.UUID = recordUUID(p.FullName)
	}
	p.QueryPlan = bodySQL(cp.Body)

	b.schema.Procedures = append(b.schema.Procedures, p)
	return nil
}

func hasReturn(params []*ProcedureParameter) bool {
	for _, p := range params {
		if p.Direction == core.ParamReturnValue {
			return true
		}
	}
	return false
}

func (b *builder) createFunction(cp *core.CreateProcedure) error {
	f := &FunctionMethod{
		Name:        cp.Name,
		FullName:    b.fullName(cp.Name),
		Virtual:     cp.Kind == core.ProcedureVirtual,
		Determinism: Deterministic,
		PushDown:    CanPushdown,
	}
	if !f.Virtual {
		if cp.Body != nil {
			return metadataErrorf(cp.Name, "a foreign function cannot have a definition")
		}
		f.PushDown = MustPushdown
	}
	if len(cp.ResultColumns) > 0 {
		return metadataErrorf(cp.Name, "a function cannot return a table")
	}
	if cp.ReturnType == nil {
		return metadataErrorf(cp.Name, "a function must declare a RETURNS type")
	}
	if err := checkVarargs(cp.Name, cp.Parameters); err != nil {
		return err
	}

	for i, pd := range cp.Parameters {
		if pd.Direction != core.ParamIn || pd.Result {
			return metadataErrorf(cp.Name, "function parameters must be IN parameters")
		}
		if _, ok := f.Parameter(pd.Name); ok {
			return &DuplicateRecordError{Kind: "parameter", Name: cp.Name + "." + pd.Name}
		}
		param, err := b.newParameter(f.FullName, i+1, pd)
		if err != nil {
			return err
		}
		f.VarArgs = f.VarArgs || param.VarArg
		f.Inputs = append(f.Inputs, param)
	}
	out, err := b.returnParameter(f.FullName, cp.ReturnType)
	if err != nil {
		return err
	}
	f.Output = out

	if err := b.applyOptions(cp.Name, functionAttributes(f), &f.Properties, cp.Options); err != nil {
		return err
	}
	if f.UUID == "" {
		return metadataErrorf(cp.Name, "a function requires a UUID option")
	}
	if _, ok := b.functionUUIDs[f.UUID]; ok {
		return &DuplicateRecordError{Kind: "function", Name: f.Name, Key: f.UUID}
	}
	sig := fmt.Sprintf("%s/%d", fold(f.Name), len(f.Inputs))
	if _, ok := b.functionSigs[sig]; ok {
		return &DuplicateRecordError{Kind: "function", Name: f.Name, Key: fmt.Sprintf("%s(%d arguments)", f.Name, len(f.Inputs))}
	}
	f.Body = bodySQL(cp.Body)

	b.functionUUIDs[f.UUID] = f
	b.functionSigs[sig] = f
	b.schema.Functions = append(b.schema.Functions, f)
	return nil
}

// ---------- ALTER, DROP, SET NAMESPACE ----------

func (b *builder) alterOptions(a *core.AlterOptions) error {
	var (
		owner = a.Name
		attrs attributes
		props *Properties
	)

	switch a.TargetKind {
	case core.TargetTable, core.TargetView:
		t, ok := b.schema.Table(a.Name)
		if !ok {
			return metadataErrorf(a.Name, "table not found")
		}
		if a.TargetKind == core.TargetView && !t.Virtual {
			return metadataErrorf(a.Name, "not a view")
		}
		if a.Foreign && t.Virtual {
			return metadataErrorf(a.Name, "not a foreign table")
		}
		attrs, props = tableAttributes(t), &t.Properties
		if a.ChildKind == core.ChildParameter {
			return metadataErrorf(a.Name, "a table has no parameters")
		}
		if a.ChildKind == core.ChildColumn {
			c, ok := t.Column(a.ChildName)
			if !ok {
				return metadataErrorf(a.Name, "column %s not found", a.ChildName)
			}
			owner = a.Name + "." + c.Name
			attrs, props = b.columnAttributes(c), &c.Properties
		}

	case core.TargetProcedure:
		p, ok := b.schema.Procedure(a.Name)
		if !ok {
			return metadataErrorf(a.Name, "procedure not found")
		}
		attrs, props = procedureAttributes(p), &p.Properties
		switch a.ChildKind {
		case core.ChildParameter:
			pp, ok := p.Parameter(a.ChildName)
			if !ok {
				return metadataErrorf(a.Name, "parameter %s not found", a.ChildName)
			}
			owner = a.Name + "." + pp.Name
			attrs, props = parameterAttributes(pp), &pp.Properties
		case core.ChildColumn:
			c, ok := findByName(p.ResultColumns, a.ChildName, func(c *Column) string { return c.Name })
			if !ok {
				return metadataErrorf(a.Name, "result column %s not found", a.ChildName)
			}
			owner = a.Name + "." + c.Name
			attrs, props = b.columnAttributes(c), &c.Properties
		}

	case core.TargetFunction:
		overloads := b.schema.FunctionsNamed(a.Name)
		switch len(overloads) {
		case 0:
			return metadataErrorf(a.Name, "function not found")
		case 1:
		default:
			return metadataErrorf(a.Name, "function name is ambiguous, %d overloads exist", len(overloads))
		}
		f := overloads[0]
		attrs, props = functionAttributes(f), &f.Properties
		switch a.ChildKind {
		case core.ChildParameter:
			pp, ok := f.Parameter(a.ChildName)
			if !ok {
				return metadataErrorf(a.Name, "parameter %s not found", a.ChildName)
			}
			owner = a.Name + "." + pp.Name
			attrs, props = parameterAttributes(pp), &pp.Properties
		case core.ChildColumn:
			return metadataErrorf(a.Name, "a function has no result columns")
		}
	}

	for _, ch := range a.Changes {
		v := ch.Value
		if ch.Action == core.OptionDrop {
			v = nil
		}
		if err := b.applyOption(owner, attrs, props, ch.Key, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) setNamespace(s *core.SetNamespace) error {
	key := fold(s.Prefix)
	if uri, ok := b.namespaces[key]; ok && uri != s.URI {
		return metadataErrorf("", "namespace prefix %s is already bound to %s", s.Prefix, uri)
	}
	b.namespaces[key] = s.URI
	return nil
}

func (b *builder) view(name string) (*Table, error) {
	t, ok := b.schema.Table(name)
	if !ok {
		return nil, metadataErrorf(name, "view not found")
	}
	if !t.Virtual || t.Type != TableTypeView {
		return nil, metadataErrorf(name, "not a view")
	}
	return t, nil
}

func (b *builder) alterView(a *core.AlterView) error {
	t, err := b.view(a.Target.Name)
	if err != nil {
		return err
	}
	t.SelectTransformation = format.SQL(a.Definition)
	return nil
}

func (b *builder) alterProcedure(a *core.AlterProcedure) error {
	p, ok := b.schema.Procedure(a.Target.Name)
	if !ok {
		return metadataErrorf(a.Target.Name, "procedure not found")
	}
	if !p.Virtual {
		return metadataErrorf(a.Target.Name, "a foreign procedure cannot have a definition")
	}
	p.QueryPlan = format.SQL(a.Definition)
	return nil
}

func (b *builder) alterTrigger(a *core.AlterTrigger) error {
	t, err := b.view(a.Target.Name)
	if err != nil {
		return err
	}
	plan, enabled := &t.InsertPlan, &t.InsertPlanEnabled
	switch a.Event {
	case core.TriggerUpdate:
		plan, enabled = &t.UpdatePlan, &t.UpdatePlanEnabled
	case core.TriggerDelete:
		plan, enabled = &t.DeletePlan, &t.DeletePlanEnabled
	}

	if a.Definition != nil {
		switch {
		case a.Create && *plan != "":
			return &DuplicateRecordError{Kind: "trigger", Name: t.Name + " INSTEAD OF " + a.Event.String()}
		case !a.Create && *plan == "":
			return metadataErrorf(t.Name, "no INSTEAD OF %s trigger to alter", a.Event)
		}
		*plan = format.SQL(a.Definition)
		*enabled = true
	}
	if a.Enabled != nil {
		if *plan == "" {
			return metadataErrorf(t.Name, "no INSTEAD OF %s trigger to alter", a.Event)
		}
		*enabled = *a.Enabled
	}
	return nil
}

func (b *builder) dropTable(d *core.Drop) error {
	key := fold(d.Table.Name)
	i := slices.IndexFunc(b.schema.Tables, func(t *Table) bool { return fold(t.Name) == key })
	if i < 0 {
		return metadataErrorf(d.Table.Name, "table not found")
	}
	b.schema.Tables = slices.Delete(b.schema.Tables, i, i+1)
	return nil
}
