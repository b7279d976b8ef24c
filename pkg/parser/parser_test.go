package parser_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func parseQuery(t *testing.T, sql string) *core.Query {
	t.Helper()
	cmd, err := parser.ParseCommand(sql)
	require.NoError(t, err)
	q, ok := cmd.(*core.Query)
	require.True(t, ok, "expected *core.Query, got %T", cmd)
	return q
}

// ---------- Select List ----------

func TestSelectItems(t *testing.T) {
	q := parseQuery(t, "SELECT a, 1, b AS c, g.*, * FROM g")
	require.Len(t, q.Select.Symbols, 5)

	assert.Equal(t, &core.ElementSymbol{Name: "a"}, q.Select.Symbols[0])
	assert.Equal(t, &core.ExpressionSymbol{Name: "expr2", Expression: core.NewConstant(int32(1))}, q.Select.Symbols[1])
	assert.Equal(t, &core.AliasSymbol{Name: "c", Symbol: &core.ElementSymbol{Name: "b"}}, q.Select.Symbols[2])
	assert.Equal(t, &core.MultipleElementSymbol{Group: "g"}, q.Select.Symbols[3])
	assert.Equal(t, &core.MultipleElementSymbol{}, q.Select.Symbols[4])
}

func TestQuotedNames(t *testing.T) {
	q := parseQuery(t, `SELECT "db"."g"."a" FROM db.g`)
	assert.Equal(t, &core.ElementSymbol{Name: "db.g.a"}, q.Select.Symbols[0])

	_, err := parser.ParseCommand("SELECT g.select FROM g")
	require.Error(t, err)

	q = parseQuery(t, `SELECT g."select" FROM g`)
	assert.Equal(t, &core.ElementSymbol{Name: "g.select"}, q.Select.Symbols[0])
}

// ---------- Literals ----------

func TestLiterals(t *testing.T) {
	tests := []struct {
		sql  string
		want *core.Constant
	}{
		{"SELECT 1", core.NewConstant(int32(1))},
		{"SELECT 3000000000", core.NewConstant(int64(3000000000))},
		{"SELECT -2147483648", core.NewConstant(int32(-2147483648))},
		{"SELECT 1.3e8", core.NewConstant(1.3e8)},
		{"SELECT 'x'", core.NewConstant("x")},
		{"SELECT TRUE", core.NewConstant(true)},
		{"SELECT {b'true'}", core.NewConstant(true)},
		{"SELECT {b'false'}", core.NewConstant(false)},
		{"SELECT UNKNOWN", core.NullConstant(core.TypeBoolean)},
		{"SELECT NULL", core.NullConstant(core.TypeNull)},
		{"SELECT CAST(NULL AS integer)", core.NullConstant(core.TypeInteger)},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			q := parseQuery(t, tt.sql)
			sym, ok := q.Select.Symbols[0].(*core.ExpressionSymbol)
			require.True(t, ok)
			assert.Equal(t, tt.want, sym.Expression)
		})
	}
}

func TestLiterals_Numeric(t *testing.T) {
	q := parseQuery(t, "SELECT 99999999999999999999, 1.50")

	big1, ok := q.Select.Symbols[0].(*core.ExpressionSymbol).Expression.(*core.Constant)
	require.True(t, ok)
	want, _ := new(big.Int).SetString("99999999999999999999", 10)
	assert.Equal(t, core.TypeBigInteger, big1.Type)
	assert.Equal(t, 0, want.Cmp(big1.Value.(*big.Int)))

	dec, ok := q.Select.Symbols[1].(*core.ExpressionSymbol).Expression.(*core.Constant)
	require.True(t, ok)
	assert.Equal(t, core.TypeBigDecimal, dec.Type)
	assert.True(t, decimal.RequireFromString("1.50").Equal(dec.Value.(decimal.Decimal)))

	p := parser.NewQueryParser(parser.ParseInfo{AnsiQuotedIdentifiers: true, DecimalAsDouble: true})
	cmd, err := p.ParseCommand("SELECT 1.5")
	require.NoError(t, err)
	sym := cmd.(*core.Query).Select.Symbols[0].(*core.ExpressionSymbol)
	assert.Equal(t, core.NewConstant(1.5), sym.Expression)
}

func TestEscapeLiteralEquivalence(t *testing.T) {
	a := parseQuery(t, "SELECT {b'true'}")
	b := parseQuery(t, "SELECT TRUE")
	assert.True(t, core.Equal(a, b))
}

// ---------- Expressions and Criteria ----------

func TestParseExpression(t *testing.T) {
	expr, err := parser.ParseExpression("5 - 4 - 3")
	require.NoError(t, err)

	want := &core.Function{Name: "-", Args: []core.Expression{
		&core.Function{Name: "-", Args: []core.Expression{core.NewConstant(int32(5)), core.NewConstant(int32(4))}},
		core.NewConstant(int32(3)),
	}}
	assert.Equal(t, want, expr)
}

func TestParseExpression_Predicate(t *testing.T) {
	expr, err := parser.ParseExpression("a = 1")
	require.NoError(t, err)
	assert.IsType(t, &core.CompareCriteria{}, expr)
}

func TestParseCriteria_BinaryCompound(t *testing.T) {
	crit, err := parser.ParseCriteria("a = 1 AND b = 2 AND c = 3")
	require.NoError(t, err)

	top, ok := crit.(*core.CompoundCriteria)
	require.True(t, ok)
	require.Len(t, top.Criteria, 2)
	left, ok := top.Criteria[0].(*core.CompoundCriteria)
	require.True(t, ok)
	assert.Len(t, left.Criteria, 2)
	assert.Len(t, core.SeparateByAnd(crit), 3)
}

func TestParseCriteria_Negations(t *testing.T) {
	tests := []struct {
		sql  string
		want core.Criteria
	}{
		{
			sql:  "a IS NOT NULL",
			want: &core.IsNullCriteria{Expression: &core.ElementSymbol{Name: "a"}, Negated: true},
		},
		{
			sql:  "a NOT IN (1, 2)",
			want: &core.SetCriteria{Expression: &core.ElementSymbol{Name: "a"}, Values: []core.Expression{core.NewConstant(int32(1)), core.NewConstant(int32(2))}, Negated: true},
		},
		{
			sql:  "a NOT LIKE 'x%'",
			want: &core.MatchCriteria{Left: &core.ElementSymbol{Name: "a"}, Right: core.NewConstant("x%"), Negated: true},
		},
		{
			sql:  "NOT a = 1",
			want: &core.NotCriteria{Criteria: &core.CompareCriteria{Left: &core.ElementSymbol{Name: "a"}, Operator: core.CompareEQ, Right: core.NewConstant(int32(1))}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			crit, err := parser.ParseCriteria(tt.sql)
			require.NoError(t, err)
			assert.Equal(t, tt.want, crit)
		})
	}
}

// ---------- FROM and Set Operations ----------

func TestJoinsNestLeft(t *testing.T) {
	q := parseQuery(t, "SELECT * FROM a JOIN b ON a.x = b.x JOIN c ON b.y = c.y")
	require.Len(t, q.From.Clauses, 1)

	outer, ok := q.From.Clauses[0].(*core.JoinPredicate)
	require.True(t, ok)
	assert.Equal(t, &core.UnaryFromClause{Group: &core.GroupSymbol{Name: "c"}}, outer.Right)

	inner, ok := outer.Left.(*core.JoinPredicate)
	require.True(t, ok)
	assert.Equal(t, core.JoinInner, inner.JoinType)
}

func TestJoinHints(t *testing.T) {
	q := parseQuery(t, "SELECT * FROM /*+ MAKEDEP */ (a JOIN /*+ optional */ b ON a.x = b.x)")
	join, ok := q.From.Clauses[0].(*core.JoinPredicate)
	require.True(t, ok)
	assert.True(t, join.Hints.MakeDep)

	right, ok := join.Right.(*core.UnaryFromClause)
	require.True(t, ok)
	assert.True(t, right.Hints.Optional)
}

func TestSubqueryNeedsAlias(t *testing.T) {
	_, err := parser.ParseCommand("SELECT * FROM (SELECT a FROM g)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A subquery in the FROM clause must have an alias.")
}

func TestSetOperationPrecedence(t *testing.T) {
	cmd, err := parser.ParseCommand("SELECT a FROM g EXCEPT SELECT a FROM h INTERSECT SELECT a FROM i")
	require.NoError(t, err)

	root, ok := cmd.(*core.SetQuery)
	require.True(t, ok)
	assert.Equal(t, core.SetExcept, root.Operation)
	assert.IsType(t, &core.Query{}, root.Left)

	right, ok := root.Right.(*core.SetQuery)
	require.True(t, ok)
	assert.Equal(t, core.SetIntersect, right.Operation)
}

// ---------- Limit ----------

func TestLimitNormalization(t *testing.T) {
	a := parseQuery(t, "SELECT a FROM g FETCH FIRST ROW ONLY")
	b := parseQuery(t, "SELECT a FROM g LIMIT 1")
	assert.True(t, core.Equal(a.Limit, b.Limit))

	c := parseQuery(t, "SELECT a FROM g OFFSET 2 ROWS FETCH FIRST 5 ROWS ONLY")
	d := parseQuery(t, "SELECT a FROM g LIMIT 2, 5")
	assert.True(t, core.Equal(c.Limit, d.Limit))
	assert.True(t, c.Limit.Strict)

	e := parseQuery(t, "SELECT a FROM g /*+ non_strict */ LIMIT 5")
	assert.False(t, e.Limit.Strict)
}

// ---------- Procedure Calls ----------

func TestCallableStatement(t *testing.T) {
	cmd, err := parser.ParseCommand("{?=call procedure_name(?, ?, ?)}")
	require.NoError(t, err)

	sp, ok := cmd.(*core.StoredProcedure)
	require.True(t, ok)
	assert.True(t, sp.CallableStatement)
	assert.True(t, sp.ReturnsScalarValue())
	assert.Equal(t, "procedure_name", sp.ProcedureName)

	in := sp.InputParameters()
	require.Len(t, in, 3)
	for i, param := range in {
		assert.Equal(t, i+1, param.Index)
		assert.Equal(t, &core.Reference{Index: i + 1}, param.Expression)
	}
	assert.Equal(t, &core.Reference{Index: 0}, sp.ReturnParameter.Expression)
}

func TestExecParameters(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		cmd, err := parser.ParseCommand("EXEC proc(a => 1, b = 2)")
		require.NoError(t, err)
		sp := cmd.(*core.StoredProcedure)
		assert.True(t, sp.DisplayNamedParameters)
		require.Len(t, sp.Parameters, 2)
		assert.Equal(t, "a", sp.Parameters[0].Name)
		assert.Equal(t, "b", sp.Parameters[1].Name)
	})

	t.Run("string equality is positional", func(t *testing.T) {
		cmd, err := parser.ParseCommand("EXEC proc1('a' = 'b')")
		require.NoError(t, err)
		sp := cmd.(*core.StoredProcedure)
		assert.False(t, sp.DisplayNamedParameters)
		require.Len(t, sp.Parameters, 1)
		assert.Empty(t, sp.Parameters[0].Name)
		assert.IsType(t, &core.CompareCriteria{}, sp.Parameters[0].Expression)
	})

	t.Run("mixed", func(t *testing.T) {
		_, err := parser.ParseCommand("EXEC proc(a => 1, 2)")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Named and positional parameters cannot be mixed.")
	})
}

func TestDynamicCommand(t *testing.T) {
	cmd, err := parser.ParseCommand("EXECUTE STRING 'SELECT 1' AS x integer INTO #t USING a = 1 UPDATE *")
	require.NoError(t, err)

	dc, ok := cmd.(*core.DynamicCommand)
	require.True(t, ok)
	assert.Equal(t, []*core.ColumnDef{{Name: "x", Type: "integer"}}, dc.AsColumns)
	assert.Equal(t, "#t", dc.Into.Name)
	assert.Equal(t, -1, dc.UpdatingModelCount)

	_, err = parser.ParseCommand("EXECUTE IMMEDIATE 'SELECT 1' AS a.b integer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid simple identifier format: [a.b]")
}

// ---------- Errors ----------

func TestEmptyInput(t *testing.T) {
	_, errEmpty := parser.ParseCommand("")
	require.Error(t, errEmpty)
	assert.True(t, errors.Is(errEmpty, parser.ErrEmptySQL))

	_, errNil := parser.NewQueryParser(parser.DefaultParseInfo()).ParseCommandReader(nil)
	require.Error(t, errNil)
	assert.Equal(t, errEmpty.Error(), errNil.Error())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		sql     string
		message string
	}{
		{
			name:    "unexpected token",
			sql:     "SELECT a FROM g WHERE",
			message: `Parsing error: Encountered "<EOF>" at line 1, column 22.`,
		},
		{
			name:    "reserved word",
			sql:     "SELECT a FROM select",
			message: `Parsing error: Encountered "select" at line 1, column 15.`,
		},
		{
			name:    "escape char length",
			sql:     "SELECT a FROM g WHERE a LIKE 'x' ESCAPE 'ab'",
			message: "must be a single character",
		},
		{
			name:    "bad date",
			sql:     "SELECT {d'2024-13-45'}",
			message: "Invalid date literal '2024-13-45'.",
		},
		{
			name:    "lexical",
			sql:     "SELECT 'abc",
			message: "Parsing error: Lexical error at line 1, column 8.",
		},
		{
			name:    "trailing tokens",
			sql:     "SELECT a FROM g g2 g3",
			message: `Encountered "g3"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseCommand(tt.sql)
			require.Error(t, err)

			var perr *parser.ParseError
			require.True(t, errors.As(err, &perr))
			assert.True(t, strings.Contains(err.Error(), tt.message), "%q does not contain %q", err.Error(), tt.message)
		})
	}
}

// ---------- Clone ----------

func TestCloneLaw(t *testing.T) {
	sqls := []string{
		"SELECT a, 1.50, {ts'2024-01-02 03:04:05.6'} FROM g WHERE b IN (SELECT c FROM h) ORDER BY a LIMIT 5",
		"SELECT 99999999999999999999 FROM g UNION ALL SELECT b FROM h",
		"/*+ cache(ttl:100) */ SELECT COUNT(*) OVER (PARTITION BY a) FROM g",
		"EXEC proc(a => ?)",
	}
	for _, sql := range sqls {
		t.Run(sql, func(t *testing.T) {
			cmd, err := parser.ParseCommand(sql)
			require.NoError(t, err)

			clone := core.Clone(cmd)
			assert.True(t, core.Equal(cmd, clone))
			assert.NotSame(t, cmd, clone)
		})
	}
}

func TestCloneSharesNoState(t *testing.T) {
	q := parseQuery(t, "SELECT a FROM g WHERE b = 1")
	clone := core.Clone(q)

	clone.Select.Symbols[0].(*core.ElementSymbol).Name = "changed"
	clone.Where.(*core.CompareCriteria).Right = core.NewConstant(int32(2))

	assert.Equal(t, "a", q.Select.Symbols[0].(*core.ElementSymbol).Name)
	assert.Equal(t, core.NewConstant(int32(1)), q.Where.(*core.CompareCriteria).Right)
}
