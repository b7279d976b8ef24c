package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/metadata"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func mergeSchema(t *testing.T, store *metadata.Store, name, ddl string) {
	t.Helper()
	f, err := parser.ParseDDL(ddl, name, nil)
	require.NoError(t, err)
	require.NoError(t, f.MergeInto(store))
}

func TestStore_ResolveForeignKeys(t *testing.T) {
	store := metadata.NewStore()
	mergeSchema(t, store, "parts", `
CREATE FOREIGN TABLE supplier (id integer PRIMARY KEY, code string UNIQUE);
CREATE FOREIGN TABLE part (id integer, supplier_id integer,
	FOREIGN KEY (supplier_id) REFERENCES supplier);`)
	mergeSchema(t, store, "orders", `
CREATE FOREIGN TABLE line (part integer, supplier_code string,
	FOREIGN KEY (supplier_code) REFERENCES parts.supplier (code));`)

	require.NoError(t, store.ResolveForeignKeys())

	part, ok := store.Table("part", "parts")
	require.True(t, ok)
	fk := part.ForeignKeys[0]
	require.NotNil(t, fk.Reference)
	assert.Equal(t, 0, fk.Reference.Key)
	assert.Equal(t, "parts.supplier", fk.ReferenceTable)

	tables := store.Tables()
	require.Len(t, tables, 3)
	target, key, ok := store.Key(*fk.Reference)
	require.True(t, ok)
	assert.Same(t, tables[fk.Reference.Table], target)
	assert.Equal(t, "parts.supplier", target.FullName)
	assert.Equal(t, metadata.KeyPrimary, key.Type)

	line, ok := store.Table("orders.line", "")
	require.True(t, ok)
	fk = line.ForeignKeys[0]
	require.NotNil(t, fk.Reference)
	assert.Equal(t, 1, fk.Reference.Key)
	target, key, ok = store.Key(*fk.Reference)
	require.True(t, ok)
	assert.Equal(t, "parts.supplier", target.FullName)
	assert.Equal(t, metadata.KeyUnique, key.Type)
	assert.Equal(t, []string{"code"}, key.ColumnNames)

	_, _, ok = store.Key(metadata.KeyRef{Table: len(tables)})
	assert.False(t, ok)
	_, _, ok = store.Key(metadata.KeyRef{Table: fk.Reference.Table, Key: 5})
	assert.False(t, ok)

	names := make([]string, 0, 2)
	for _, s := range store.Schemas() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"orders", "parts"}, names)
}

func TestStore_ResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"missing table", "CREATE FOREIGN TABLE a (x integer, FOREIGN KEY (x) REFERENCES nope)"},
		{"no primary key", "CREATE FOREIGN TABLE b (y integer); CREATE FOREIGN TABLE a (x integer, FOREIGN KEY (x) REFERENCES b)"},
		{"no matching key", "CREATE FOREIGN TABLE b (y integer PRIMARY KEY, z integer); CREATE FOREIGN TABLE a (x integer, FOREIGN KEY (x) REFERENCES b (z))"},
		{"arity mismatch", "CREATE FOREIGN TABLE b (y integer, z integer, PRIMARY KEY (y, z)); CREATE FOREIGN TABLE a (x integer, FOREIGN KEY (x) REFERENCES b)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := metadata.NewStore()
			mergeSchema(t, store, "s", tt.ddl)
			requireMetadataError(t, store.ResolveForeignKeys())
		})
	}
}

func TestStore_DuplicateSchema(t *testing.T) {
	store := metadata.NewStore()
	mergeSchema(t, store, "s", "CREATE FOREIGN TABLE a (x integer)")

	f, err := parser.ParseDDL("CREATE FOREIGN TABLE b (x integer)", "S", nil)
	require.NoError(t, err)
	de := requireDuplicate(t, f.MergeInto(store))
	assert.Equal(t, "schema", de.Kind)
}

func TestDatatypes(t *testing.T) {
	dts := metadata.DefaultDatatypes()

	tests := []struct {
		name string
		want core.DataType
	}{
		{"varchar", core.TypeString},
		{"TINYINT", core.TypeByte},
		{"smallint", core.TypeShort},
		{"Real", core.TypeFloat},
		{"decimal", core.TypeBigDecimal},
		{"bigint", core.TypeLong},
		{"xml", core.TypeXML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, ok := dts.Lookup(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.want, dt.RuntimeType)
			assert.True(t, dt.Builtin)
		})
	}

	_, ok := dts.Lookup("null")
	assert.False(t, ok)
	assert.Contains(t, dts.Names(), "bigdecimal")

	require.NoError(t, dts.Register(&metadata.Datatype{Name: "money", RuntimeType: core.TypeBigDecimal}))
	requireDuplicate(t, dts.Register(&metadata.Datatype{Name: "MONEY"}))
	requireDuplicate(t, dts.Register(&metadata.Datatype{Name: "varchar"}))
}

func TestUserDefinedTypes(t *testing.T) {
	dts := metadata.DefaultDatatypes()
	require.NoError(t, dts.Register(&metadata.Datatype{Name: "money", RuntimeType: core.TypeBigDecimal}))

	f, err := parser.ParseDDL(`CREATE FOREIGN TABLE t (
		a money,
		b string OPTIONS (UDT 'money(10, 8, 2)')
	)`, "s", dts)
	require.NoError(t, err)
	assert.Same(t, dts, f.Datatypes())

	tbl, _ := f.Schema().Table("t")
	a, _ := tbl.Column("a")
	assert.Equal(t, "money", a.Datatype)
	assert.Equal(t, core.TypeBigDecimal, a.RuntimeType)

	b, _ := tbl.Column("b")
	assert.Equal(t, "money", b.Datatype)
	assert.Equal(t, 10, b.Length)
	assert.Equal(t, 8, b.Precision)
	assert.Equal(t, 2, b.Scale)

	_, err = parser.ParseDDL("CREATE FOREIGN TABLE t (b string OPTIONS (UDT 'money(1)'))", "s", dts)
	requireMetadataError(t, err)
}

func TestFactory_Namespaces(t *testing.T) {
	f, err := parser.ParseDDL("SET NAMESPACE 'urn:a' AS a", "s", nil)
	require.NoError(t, err)

	ns := f.Namespaces()
	assert.Equal(t, "urn:a", ns["a"])
	assert.Equal(t, metadata.RelationalURI, ns["teiid_rel"])

	ns["a"] = "changed"
	assert.Equal(t, "urn:a", f.Namespaces()["a"])
}
