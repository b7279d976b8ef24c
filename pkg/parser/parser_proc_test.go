package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func TestUpdateProcedure(t *testing.T) {
	sql := `CREATE VIRTUAL PROCEDURE
BEGIN ATOMIC
	DECLARE integer x = 1;
	DECLARE string s = SELECT a FROM g;
	LOOP ON (SELECT a FROM g) AS c
	BEGIN
		IF (c.a > x)
			BREAK;
		ELSE
		BEGIN
			x = x + 1;
		END
	END
	WHILE (x < 10) x = x * 2;
	ERROR 'failed';
END`

	cmd, err := parser.ParseUpdateProcedure(sql)
	require.NoError(t, err)
	require.True(t, cmd.Virtual)
	require.True(t, cmd.Block.Atomic)
	require.Len(t, cmd.Block.Statements, 5)

	decl, ok := cmd.Block.Statements[1].(*core.DeclareStatement)
	require.True(t, ok)
	assert.Equal(t, "string", decl.VariableType)
	assert.IsType(t, &core.ScalarSubquery{}, decl.Value)

	loop, ok := cmd.Block.Statements[2].(*core.LoopStatement)
	require.True(t, ok)
	assert.Equal(t, "c", loop.Cursor)

	ifStmt, ok := loop.Block.Statements[0].(*core.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.IfBlock.Statements, 1)
	assert.Equal(t, &core.BranchingStatement{Mode: core.BranchBreak}, ifStmt.IfBlock.Statements[0])
	require.NotNil(t, ifStmt.ElseBlock)

	while, ok := cmd.Block.Statements[3].(*core.WhileStatement)
	require.True(t, ok)
	assert.Len(t, while.Block.Statements, 1)

	raise, ok := cmd.Block.Statements[4].(*core.RaiseErrorStatement)
	require.True(t, ok)
	assert.Equal(t, core.NewConstant("failed"), raise.Expression)
}

func TestUpdateProcedure_BareBlock(t *testing.T) {
	cmd, err := parser.ParseUpdateProcedure("BEGIN SELECT a FROM g; END")
	require.NoError(t, err)
	require.Len(t, cmd.Block.Statements, 1)
	assert.IsType(t, &core.CommandStatement{}, cmd.Block.Statements[0])
}

func TestUpdateProcedure_Errors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"missing end", "BEGIN SELECT a FROM g;"},
		{"missing semicolon", "BEGIN SELECT a FROM g END"},
		{"loop without alias", "BEGIN LOOP ON (SELECT a FROM g) BEGIN END END"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseUpdateProcedure(tt.sql)
			require.Error(t, err)
		})
	}
}

func TestTriggerCommands(t *testing.T) {
	cmd, err := parser.ParseCommand("CREATE TRIGGER ON v INSTEAD OF INSERT AS FOR EACH ROW BEGIN ATOMIC INSERT INTO g (a) VALUES (1); END")
	require.NoError(t, err)

	trig, ok := cmd.(*core.AlterTrigger)
	require.True(t, ok)
	assert.True(t, trig.Create)
	assert.Equal(t, core.TriggerInsert, trig.Event)
	require.NotNil(t, trig.Definition)
	assert.True(t, trig.Definition.Block.Atomic)

	cmd, err = parser.ParseCommand("ALTER TRIGGER ON v INSTEAD OF UPDATE DISABLED")
	require.NoError(t, err)
	trig = cmd.(*core.AlterTrigger)
	require.NotNil(t, trig.Enabled)
	assert.False(t, *trig.Enabled)
}

func TestTempTable(t *testing.T) {
	cmd, err := parser.ParseCommand("CREATE LOCAL TEMPORARY TABLE #t (a integer NOT NULL, b serial, PRIMARY KEY (a))")
	require.NoError(t, err)

	create, ok := cmd.(*core.Create)
	require.True(t, ok)
	assert.Equal(t, "#t", create.Table.Name)
	require.Len(t, create.Columns, 2)
	assert.True(t, create.Columns[0].NotNull)
	assert.Equal(t, []string{"a"}, create.PrimaryKey)
}
