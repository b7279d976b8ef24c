package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func TestDDL_ForeignTable(t *testing.T) {
	stmts, err := parser.ParseDDLStatements(`
CREATE FOREIGN TABLE G1 (
	e1 integer PRIMARY KEY,
	e2 varchar(10) UNIQUE NOT NULL DEFAULT 'x',
	e3 decimal(12, 2) OPTIONS (NAMEINSOURCE 'E3', teiid_rel:native_type 'numeric'),
	e4 string[],
	CONSTRAINT fk FOREIGN KEY (e2) REFERENCES other.G2 (k),
	INDEX (upper(e2))
) OPTIONS (CARDINALITY 100);`)
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	tbl, ok := stmts[0].(*core.CreateTable)
	require.True(t, ok)
	assert.Equal(t, "G1", tbl.Name)
	assert.Equal(t, core.TableForeign, tbl.Kind)
	require.Len(t, tbl.Columns, 4)
	require.Len(t, tbl.Constraints, 2)

	assert.True(t, tbl.Columns[0].PrimaryKey)
	assert.Equal(t, &core.TypeSpec{Name: "varchar", Params: []int{10}}, tbl.Columns[1].Type)
	assert.True(t, tbl.Columns[1].NotNull)
	assert.Equal(t, core.NewConstant("x"), tbl.Columns[1].Default)
	assert.Equal(t, &core.TypeSpec{Name: "decimal", Params: []int{12, 2}}, tbl.Columns[2].Type)
	require.Len(t, tbl.Columns[2].Options, 2)
	assert.Equal(t, "teiid_rel:native_type", tbl.Columns[2].Options[1].Key)
	assert.Equal(t, 1, tbl.Columns[3].Type.ArrayDimensions)

	fk := tbl.Constraints[0]
	assert.Equal(t, core.ConstraintForeignKey, fk.Kind)
	assert.Equal(t, "fk", fk.Name)
	assert.Equal(t, "other.G2", fk.ReferenceTable)
	assert.Equal(t, []string{"k"}, fk.ReferenceColumns)

	idx := tbl.Constraints[1]
	assert.Equal(t, core.ConstraintIndex, idx.Kind)
	assert.Empty(t, idx.Columns)
	require.Len(t, idx.Expressions, 1)

	assert.Equal(t, []*core.OptionEntry{{Key: "CARDINALITY", Value: core.NewConstant(int32(100))}}, tbl.Options)
}

func TestDDL_ViewAndProcedures(t *testing.T) {
	stmts, err := parser.ParseDDLStatements(`
CREATE VIEW v (a integer) AS SELECT e1 FROM G1;
CREATE VIEW w AS SELECT e1 FROM G1;
CREATE FOREIGN PROCEDURE p (IN x integer, OUT y string RESULT) RETURNS TABLE (c integer);
CREATE VIRTUAL FUNCTION f (VARIADIC z integer) RETURNS integer OPTIONS (UUID 'u1') AS SELECT 1;
CREATE PROCEDURE q () AS BEGIN SELECT 1; END;
SET NAMESPACE 'http://example.org' AS ex;
ALTER FOREIGN TABLE G1 ALTER COLUMN e1 OPTIONS (SET NAMEINSOURCE 'x', DROP ANNOTATION);
DROP TABLE G1`)
	require.NoError(t, err)
	require.Len(t, stmts, 8)

	v := stmts[0].(*core.CreateTable)
	assert.Equal(t, core.TableView, v.Kind)
	assert.NotNil(t, v.Query)
	assert.Empty(t, stmts[1].(*core.CreateTable).Columns)

	p := stmts[2].(*core.CreateProcedure)
	assert.Equal(t, core.ProcedureForeign, p.Kind)
	require.Len(t, p.Parameters, 2)
	assert.Equal(t, core.ParamOut, p.Parameters[1].Direction)
	assert.True(t, p.Parameters[1].Result)
	require.Len(t, p.ResultColumns, 1)

	f := stmts[3].(*core.CreateProcedure)
	assert.True(t, f.Function)
	assert.Equal(t, core.ProcedureVirtual, f.Kind)
	assert.True(t, f.Parameters[0].Varargs)
	assert.Equal(t, &core.TypeSpec{Name: "integer"}, f.ReturnType)
	assert.IsType(t, &core.CommandStatement{}, f.Body)

	q := stmts[4].(*core.CreateProcedure)
	assert.Equal(t, core.ProcedureVirtual, q.Kind)
	assert.IsType(t, &core.Block{}, q.Body)

	assert.Equal(t, &core.SetNamespace{URI: "http://example.org", Prefix: "ex"}, stmts[5])

	alter := stmts[6].(*core.AlterOptions)
	assert.True(t, alter.Foreign)
	assert.Equal(t, core.ChildColumn, alter.ChildKind)
	assert.Equal(t, "e1", alter.ChildName)
	require.Len(t, alter.Changes, 2)
	assert.Equal(t, core.OptionDrop, alter.Changes[1].Action)
	assert.Nil(t, alter.Changes[1].Value)

	assert.IsType(t, &core.Drop{}, stmts[7])
}

func TestDDL_Errors(t *testing.T) {
	tests := []struct {
		name string
		ddl  string
	}{
		{"option value must be literal", "CREATE FOREIGN TABLE t (a integer) OPTIONS (x a + 1)"},
		{"view needs query", "CREATE VIEW v (a integer)"},
		{"missing separator", "CREATE VIEW v AS SELECT 1 CREATE VIEW w AS SELECT 1"},
		{"unknown statement", "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseDDLStatements(tt.ddl)
			require.Error(t, err)
		})
	}
}
