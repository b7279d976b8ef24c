package metadata_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/internal/testutil"
	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/metadata"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func build(t *testing.T, ddl string) *metadata.Schema {
	t.Helper()
	f, err := parser.ParseDDL(ddl, "model", nil, metadata.WithLogger(testutil.NewTestLogger(t)))
	require.NoError(t, err)
	return f.Schema()
}

func buildErr(t *testing.T, ddl string) error {
	t.Helper()
	_, err := parser.ParseDDL(ddl, "model", nil)
	require.Error(t, err)
	return err
}

func requireMetadataError(t *testing.T, err error) {
	t.Helper()
	var me *metadata.MetadataError
	require.True(t, errors.As(err, &me), "want *MetadataError, got %T: %v", err, err)
}

func requireDuplicate(t *testing.T, err error) *metadata.DuplicateRecordError {
	t.Helper()
	var de *metadata.DuplicateRecordError
	require.True(t, errors.As(err, &de), "want *DuplicateRecordError, got %T: %v", err, err)
	return de
}

func TestBuild_PrimaryKeyIsDeterministic(t *testing.T) {
	const ddl = "CREATE FOREIGN TABLE G1(e1 integer primary key, e2 varchar unique)"

	s := build(t, ddl)
	tbl, ok := s.Table("g1")
	require.True(t, ok)
	require.NotNil(t, tbl.PrimaryKey)
	assert.Equal(t, []string{"e1"}, tbl.PrimaryKey.ColumnNames)
	assert.Same(t, tbl.Columns[0], tbl.PrimaryKey.Columns[0])
	require.Len(t, tbl.UniqueKeys, 1)
	assert.Equal(t, []string{"e2"}, tbl.UniqueKeys[0].ColumnNames)

	assert.Equal(t, s, build(t, ddl))
}

func TestBuild_Columns(t *testing.T) {
	s := build(t, `CREATE FOREIGN TABLE t (
		a varchar(10) NOT NULL DEFAULT 'x',
		b TINYINT,
		c smallint AUTO_INCREMENT,
		d real,
		e decimal(12, 2),
		f string,
		g integer[]
	)`)
	tbl, _ := s.Table("t")
	require.Len(t, tbl.Columns, 7)

	tests := []struct {
		col       string
		datatype  string
		length    int
		precision int
		scale     int
	}{
		{"a", "string", 10, 0, 0},
		{"b", "byte", 0, 3, 0},
		{"c", "short", 0, 5, 0},
		{"d", "float", 0, 20, 0},
		{"e", "bigdecimal", 0, 12, 2},
		{"f", "string", metadata.DefaultStringLength, 0, 0},
		{"g", "integer", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.col, func(t *testing.T) {
			c, ok := tbl.Column(tt.col)
			require.True(t, ok)
			assert.Equal(t, tt.datatype, c.Datatype)
			assert.Equal(t, tt.length, c.Length)
			assert.Equal(t, tt.precision, c.Precision)
			assert.Equal(t, tt.scale, c.Scale)
		})
	}

	a, _ := tbl.Column("A")
	assert.Equal(t, 1, a.Position)
	assert.Equal(t, metadata.NoNulls, a.NullType)
	assert.Equal(t, "'x'", a.DefaultValue)
	assert.Equal(t, core.TypeString, a.RuntimeType)

	c, _ := tbl.Column("c")
	assert.True(t, c.AutoIncrement)
	assert.True(t, c.Signed)
	assert.Equal(t, metadata.Nullable, c.NullType)

	g, _ := tbl.Column("g")
	assert.Equal(t, 1, g.ArrayDimensions)
}

func TestBuild_Constraints(t *testing.T) {
	s := build(t, `CREATE FOREIGN TABLE t (
		a integer,
		b string INDEX,
		c string,
		CONSTRAINT pk PRIMARY KEY (a, c),
		UNIQUE (b),
		ACCESSPATTERN (c),
		INDEX (upper(b), c),
		FOREIGN KEY (c) REFERENCES other.u (k)
	)`)
	tbl, _ := s.Table("t")

	require.NotNil(t, tbl.PrimaryKey)
	assert.Equal(t, "pk", tbl.PrimaryKey.Name)
	assert.Equal(t, metadata.KeyPrimary, tbl.PrimaryKey.Type)
	assert.Equal(t, []string{"a", "c"}, tbl.PrimaryKey.ColumnNames)

	require.Len(t, tbl.UniqueKeys, 1)
	require.Len(t, tbl.Indexes, 1)
	assert.Equal(t, []string{"b"}, tbl.Indexes[0].ColumnNames)
	require.Len(t, tbl.AccessPatterns, 1)

	require.Len(t, tbl.FunctionBasedIndexes, 1)
	fbi := tbl.FunctionBasedIndexes[0]
	assert.Len(t, fbi.Expressions, 2)
	assert.Equal(t, []string{"b", "c"}, fbi.ColumnNames)

	require.Len(t, tbl.ForeignKeys, 1)
	fk := tbl.ForeignKeys[0]
	assert.Equal(t, "other.u", fk.ReferenceTableName)
	assert.Equal(t, []string{"k"}, fk.ReferenceColumns)
	assert.Nil(t, fk.Reference)
}

func TestBuild_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"two inline primary keys", "CREATE FOREIGN TABLE t (a integer PRIMARY KEY, b integer PRIMARY KEY)"},
		{"inline and table primary key", "CREATE FOREIGN TABLE t (a integer PRIMARY KEY, b integer, PRIMARY KEY (b))"},
		{"unknown key column", "CREATE FOREIGN TABLE t (a integer, UNIQUE (z))"},
		{"unknown index expression column", "CREATE FOREIGN TABLE t (a integer, INDEX (upper(z)))"},
		{"foreign key arity", "CREATE FOREIGN TABLE t (a integer, FOREIGN KEY (a) REFERENCES u (x, y))"},
		{"unknown type", "CREATE FOREIGN TABLE t (a nosuchtype)"},
		{"too many length arguments", "CREATE FOREIGN TABLE t (a string(1, 2))"},
		{"foreign table with query", "CREATE FOREIGN TABLE t (a integer) AS SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireMetadataError(t, buildErr(t, tt.ddl))
		})
	}
}

func TestBuild_DuplicateRecords(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
		kind string
	}{
		{"table", "CREATE FOREIGN TABLE t (a integer); CREATE VIEW T AS SELECT 1", "table"},
		{"column", "CREATE FOREIGN TABLE t (a integer, A string)", "column"},
		{"procedure", "CREATE FOREIGN PROCEDURE p (); CREATE FOREIGN PROCEDURE p ()", "procedure"},
		{"parameter", "CREATE FOREIGN PROCEDURE p (x integer, x string)", "parameter"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := requireDuplicate(t, buildErr(t, tt.ddl))
			assert.Equal(t, tt.kind, de.Kind)
		})
	}
}

func TestBuild_Options(t *testing.T) {
	s := build(t, `
SET NAMESPACE 'http://example.org/ns' AS ex;
CREATE FOREIGN TABLE t (
	a integer OPTIONS (NAMEINSOURCE 'A_COL', SEARCHABLE 'like_only', teiid_rel:native_type 'int4', custom 'v')
) OPTIONS (CARDINALITY 100, UPDATABLE 'true', ex:owner 'me', plain 1);
ALTER FOREIGN TABLE t OPTIONS (DROP CARDINALITY, SET ANNOTATION 'doc', DROP plain);
ALTER TABLE t ALTER COLUMN a OPTIONS (ADD DISTINCT_VALUES 7, DROP custom);`)

	tbl, _ := s.Table("t")
	assert.Equal(t, int64(metadata.Unset), tbl.Cardinality)
	assert.True(t, tbl.Updatable)
	assert.Equal(t, "doc", tbl.Annotation)
	assert.Equal(t, metadata.Properties{"{http://example.org/ns}owner": "me"}, tbl.Properties)

	a, _ := tbl.Column("a")
	assert.Equal(t, "A_COL", a.NameInSource)
	assert.Equal(t, metadata.LikeOnly, a.SearchType)
	assert.Equal(t, 7, a.DistinctValues)
	assert.Equal(t, metadata.Unset, a.NullValues)
	assert.Equal(t, metadata.Properties{"{" + metadata.RelationalURI + "}native_type": "int4"}, a.Properties)
}

func TestBuild_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"bad number", "CREATE FOREIGN TABLE t (a integer) OPTIONS (CARDINALITY 'many')"},
		{"bad boolean", "CREATE FOREIGN TABLE t (a integer) OPTIONS (UPDATABLE 'perhaps')"},
		{"bad enum", "CREATE FOREIGN TABLE t (a integer OPTIONS (SEARCHABLE 'sometimes'))"},
		{"alter missing table", "ALTER TABLE t OPTIONS (SET CARDINALITY 1)"},
		{"alter missing column", "CREATE FOREIGN TABLE t (a integer); ALTER TABLE t ALTER COLUMN b OPTIONS (SET x 1)"},
		{"alter view on table", "CREATE FOREIGN TABLE t (a integer); ALTER VIEW t OPTIONS (SET x 1)"},
		{"rebind prefix", "SET NAMESPACE 'urn:x' AS teiid_rel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireMetadataError(t, buildErr(t, tt.ddl))
		})
	}
}

func TestBuild_Procedures(t *testing.T) {
	s := build(t, `
CREATE FOREIGN PROCEDURE getCount (IN x integer, OUT y string RESULT) OPTIONS (UPDATECOUNT 2);
CREATE FOREIGN PROCEDURE scalar (a string) RETURNS integer;
CREATE VIRTUAL PROCEDURE listRows (a string) RETURNS TABLE (c integer, d string) AS BEGIN SELECT 1, 'x'; END;
ALTER PROCEDURE getCount OPTIONS (DROP UPDATECOUNT);
ALTER PROCEDURE getCount ALTER PARAMETER x OPTIONS (SET NAMEINSOURCE 'X')`)

	p, ok := s.Procedure("GETCOUNT")
	require.True(t, ok)
	assert.False(t, p.Virtual)
	assert.Equal(t, metadata.Unset, p.UpdateCount)
	require.Len(t, p.Parameters, 2)
	assert.Equal(t, "X", p.Parameters[0].NameInSource)
	assert.Equal(t, core.ParamReturnValue, p.Parameters[1].Direction)
	assert.Equal(t, "RETURN", p.Parameters[1].DirectionName)

	scalar, _ := s.Procedure("scalar")
	require.Len(t, scalar.Parameters, 2)
	assert.Equal(t, "return", scalar.Parameters[0].Name)
	assert.Equal(t, 1, scalar.Parameters[0].Position)
	assert.Equal(t, core.ParamReturnValue, scalar.Parameters[0].Direction)
	assert.Equal(t, 2, scalar.Parameters[1].Position)
	assert.Equal(t, 1, scalar.UpdateCount)

	rows, _ := s.Procedure("listRows")
	assert.True(t, rows.Virtual)
	require.Len(t, rows.ResultColumns, 2)
	assert.Contains(t, rows.QueryPlan, "BEGIN")
}

func TestBuild_ProcedureErrors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"foreign with body", "CREATE FOREIGN PROCEDURE p () AS SELECT 1"},
		{"two returns", "CREATE FOREIGN PROCEDURE p (OUT y string RESULT) RETURNS integer"},
		{"result on in parameter", "CREATE FOREIGN PROCEDURE p (IN y string RESULT)"},
		{"variadic not last", "CREATE FOREIGN PROCEDURE p (VARIADIC a integer, b integer)"},
		{"alter foreign procedure body", "CREATE FOREIGN PROCEDURE p (); ALTER PROCEDURE p AS BEGIN END"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireMetadataError(t, buildErr(t, tt.ddl))
		})
	}
}

func TestBuild_Functions(t *testing.T) {
	s := build(t, `
CREATE FOREIGN FUNCTION f (x integer) RETURNS integer OPTIONS (UUID 'u1', DETERMINISM 'nondeterministic');
CREATE FOREIGN FUNCTION f (x integer, y integer) RETURNS integer OPTIONS (UUID 'u2');
CREATE VIRTUAL FUNCTION agg (VARIADIC v string) RETURNS string OPTIONS (UUID 'u3', AGGREGATE 'true', "ALLOWS-DISTINCT" 'true');
CREATE VIRTUAL FUNCTION body (x integer) RETURNS integer OPTIONS (UUID 'u4') AS SELECT 1`)

	overloads := s.FunctionsNamed("F")
	require.Len(t, overloads, 2)
	assert.Equal(t, "u1", overloads[0].UUID)
	assert.Equal(t, metadata.Nondeterministic, overloads[0].Determinism)
	assert.Equal(t, metadata.MustPushdown, overloads[0].PushDown)
	assert.Equal(t, metadata.Deterministic, overloads[1].Determinism)
	require.NotNil(t, overloads[0].Output)
	assert.Equal(t, "integer", overloads[0].Output.Datatype)

	agg := s.FunctionsNamed("agg")[0]
	assert.True(t, agg.VarArgs)
	require.NotNil(t, agg.Aggregate)
	assert.True(t, agg.Aggregate.AllowsDistinct)
	assert.Equal(t, metadata.CanPushdown, agg.PushDown)

	assert.Equal(t, "SELECT 1", s.FunctionsNamed("body")[0].Body)
}

func TestBuild_FunctionErrors(t *testing.T) {
	t.Run("missing uuid", func(t *testing.T) {
		requireMetadataError(t, buildErr(t, "CREATE FOREIGN FUNCTION f (x integer) RETURNS integer"))
	})
	t.Run("foreign with body", func(t *testing.T) {
		requireMetadataError(t, buildErr(t, "CREATE FOREIGN FUNCTION f (x integer) RETURNS integer OPTIONS (UUID 'u') AS SELECT 1"))
	})
	t.Run("no return type", func(t *testing.T) {
		requireMetadataError(t, buildErr(t, "CREATE FOREIGN FUNCTION f (x integer) OPTIONS (UUID 'u')"))
	})
	t.Run("out parameter", func(t *testing.T) {
		requireMetadataError(t, buildErr(t, "CREATE FOREIGN FUNCTION f (OUT x integer) RETURNS integer OPTIONS (UUID 'u')"))
	})
	t.Run("duplicate uuid", func(t *testing.T) {
		de := requireDuplicate(t, buildErr(t, `
CREATE FOREIGN FUNCTION f (x integer) RETURNS integer OPTIONS (UUID 'u');
CREATE FOREIGN FUNCTION g (x integer) RETURNS integer OPTIONS (UUID 'u')`))
		assert.Equal(t, "function", de.Kind)
		assert.Equal(t, "u", de.Key)
	})
	t.Run("duplicate signature", func(t *testing.T) {
		de := requireDuplicate(t, buildErr(t, `
CREATE FOREIGN FUNCTION f (x integer) RETURNS integer OPTIONS (UUID 'a');
CREATE FOREIGN FUNCTION F (y string) RETURNS string OPTIONS (UUID 'b')`))
		assert.Equal(t, "F", de.Name)
	})
}

func TestBuild_ViewsTriggersAndDrop(t *testing.T) {
	s := build(t, `
CREATE FOREIGN TABLE g1 (e1 integer);
CREATE FOREIGN TABLE g2 (e1 integer);
CREATE VIEW v (e1 integer) AS SELECT e1 FROM g1;
ALTER VIEW v AS SELECT e1 FROM g2;
CREATE TRIGGER ON v INSTEAD OF INSERT AS FOR EACH ROW BEGIN ATOMIC INSERT INTO g2 (e1) VALUES (NEW.e1); END;
ALTER TRIGGER ON v INSTEAD OF INSERT DISABLED;
DROP TABLE g1`)

	_, ok := s.Table("g1")
	assert.False(t, ok)
	require.Len(t, s.Tables, 2)

	v, ok := s.Table("v")
	require.True(t, ok)
	assert.True(t, v.Virtual)
	assert.Equal(t, metadata.TableTypeView, v.Type)
	assert.Equal(t, "SELECT e1 FROM g2", v.SelectTransformation)
	assert.Contains(t, v.InsertPlan, "FOR EACH ROW")
	assert.False(t, v.InsertPlanEnabled)
	assert.Empty(t, v.UpdatePlan)
}

func TestBuild_TriggerErrors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"trigger on foreign table", "CREATE FOREIGN TABLE g (e integer); CREATE TRIGGER ON g INSTEAD OF DELETE AS FOR EACH ROW BEGIN END"},
		{"alter missing trigger", "CREATE VIEW v AS SELECT 1; ALTER TRIGGER ON v INSTEAD OF UPDATE ENABLED"},
		{"drop missing table", "DROP TABLE nope"},
		{"alter missing view", "ALTER VIEW nope AS SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireMetadataError(t, buildErr(t, tt.ddl))
		})
	}

	de := requireDuplicate(t, buildErr(t, `
CREATE VIEW v AS SELECT 1;
CREATE TRIGGER ON v INSTEAD OF DELETE AS FOR EACH ROW BEGIN END;
CREATE TRIGGER ON v INSTEAD OF DELETE AS FOR EACH ROW BEGIN END`))
	assert.Equal(t, "trigger", de.Kind)
}

func TestBuild_SyntaxErrorIsParseError(t *testing.T) {
	err := buildErr(t, "CREATE FOREIGN TABLE t (a integer")
	var pe *parser.ParseError
	assert.True(t, errors.As(err, &pe))
	var me *metadata.MetadataError
	assert.False(t, errors.As(err, &me))
}
