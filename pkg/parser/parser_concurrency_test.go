package parser_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func TestParseConcurrent(t *testing.T) {
	qp := parser.NewQueryParser(parser.DefaultParseInfo())

	const n = 32
	results := make([]core.Command, n)

	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			cmd, err := qp.ParseCommand(fmt.Sprintf("SELECT a, ? FROM g WHERE b = %d", i))
			if err != nil {
				return err
			}
			results[i] = cmd
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, cmd := range results {
		q, ok := cmd.(*core.Query)
		require.True(t, ok)
		cmp, ok := q.Where.(*core.CompareCriteria)
		require.True(t, ok)
		assert.Equal(t, core.NewConstant(int32(i)), cmp.Right)
		// reference numbering is per call
		assert.Equal(t, &core.ExpressionSymbol{Name: "expr2", Expression: &core.Reference{Index: 0}}, q.Select.Symbols[1])
	}
}
