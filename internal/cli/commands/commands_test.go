package commands

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	"github.com/teiid/teiid-sub017/internal/cli/testutil"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

func configWith(mutate func(c *config.Config)) *config.Config {
	cfg := &config.Config{
		AnsiQuotedIdentifiers: true,
		OutputFormat:          config.OutputText,
		Indent:                config.DefaultIndent,
	}
	if mutate != nil {
		mutate(cfg)
	}
	return cfg
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		name  string
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{"format", NewFormatCommand(), "format [files...]", nil},
		{"ddl", NewDDLCommand(), "ddl <file>...", []string{"schema"}},
		{"tokens", NewTokensCommand(), "tokens [sql]", nil},
		{"repl", NewREPLCommand(), "repl", []string{"history", "mode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, f := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(f), "flag %q should exist", f)
			}
		})
	}
}

func TestFormat_Stdin(t *testing.T) {
	res := testutil.Execute(t, NewFormatCommand(), nil, "select a from g where b=1")
	require.NoError(t, res.Err)
	assert.Equal(t, "SELECT a FROM g WHERE b = 1\n", res.Output())

	res = testutil.Execute(t, NewFormatCommand(), nil, "delete from g where a = 1;", "-")
	require.NoError(t, res.Err)
	assert.Equal(t, "DELETE FROM g WHERE a = 1\n", res.Output())
}

func TestFormat_FilesInOrder(t *testing.T) {
	files := map[string]string{
		"a.sql": "select 1",
		"b.sql": "insert into g (a, b) values (1, 'x');",
		"c.sql": "SELECT a FROM g WHERE a IS NOT NULL\n",
	}
	paths := testutil.WriteFiles(t, t.TempDir(), files, "c.sql", "a.sql", "b.sql")

	res := testutil.Execute(t, NewFormatCommand(), nil, "", paths...)
	require.NoError(t, res.Err)
	assert.Equal(t, []string{
		"SELECT a FROM g WHERE a IS NOT NULL",
		"SELECT 1",
		"INSERT INTO g (a, b) VALUES (1, 'x')",
	}, strings.Split(strings.TrimSuffix(res.Output(), "\n"), "\n"))
}

func TestFormat_Errors(t *testing.T) {
	dir := t.TempDir()
	paths := testutil.WriteFiles(t, dir, map[string]string{
		"ok.sql":  "select 1",
		"bad.sql": "select from g",
	}, "ok.sql", "bad.sql", "missing.sql")

	t.Run("parse error names the file", func(t *testing.T) {
		res := testutil.Execute(t, NewFormatCommand(), nil, "", paths[0], paths[1])
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "bad.sql")

		var pe *parser.ParseError
		require.True(t, errors.As(res.Err, &pe))
		assert.Contains(t, pe.Error(), "Parsing error")
		assert.Empty(t, res.Output(), "nothing is printed when an input fails")
		assert.NotContains(t, res.ErrorOutput(), "Usage:")
	})

	t.Run("missing file", func(t *testing.T) {
		res := testutil.Execute(t, NewFormatCommand(), nil, "", paths[2])
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "failed to read")
	})

	t.Run("empty stdin", func(t *testing.T) {
		res := testutil.Execute(t, NewFormatCommand(), nil, "")
		require.Error(t, res.Err)
		assert.ErrorIs(t, res.Err, parser.ErrEmptySQL)
	})
}

const partsDDL = `
CREATE FOREIGN TABLE supplier (id integer PRIMARY KEY, name string);
CREATE FOREIGN TABLE part (id integer, supplier_id integer,
	FOREIGN KEY (supplier_id) REFERENCES supplier);
CREATE FOREIGN PROCEDURE lookup(IN id integer) RETURNS TABLE (name string);
`

func TestDDL_Table(t *testing.T) {
	paths := testutil.WriteFiles(t, t.TempDir(), map[string]string{"parts.ddl": partsDDL}, "parts.ddl")

	res := testutil.Execute(t, NewDDLCommand(), nil, "", paths...)
	require.NoError(t, res.Err)

	out := res.Output()
	testutil.AssertNoANSI(t, out)
	for _, want := range []string{"supplier", "id integer", "(supplier_id) → parts.supplier", "lookup", "foreign"} {
		assert.Contains(t, out, want)
	}
}

func TestDDL_JSONAndYAML(t *testing.T) {
	paths := testutil.WriteFiles(t, t.TempDir(), map[string]string{"parts.ddl": partsDDL}, "parts.ddl")

	t.Run("json", func(t *testing.T) {
		cfg := configWith(func(c *config.Config) { c.OutputFormat = config.OutputJSON })
		res := testutil.Execute(t, NewDDLCommand(), cfg, "", paths...)
		require.NoError(t, res.Err)

		var schemas []map[string]any
		require.NoError(t, json.Unmarshal(res.Out.Bytes(), &schemas))
		require.Len(t, schemas, 1)
		assert.Equal(t, "parts", schemas[0]["name"])
		assert.Len(t, schemas[0]["tables"], 2)
		assert.Len(t, schemas[0]["procedures"], 1)
	})

	t.Run("yaml with schema flag", func(t *testing.T) {
		cfg := configWith(func(c *config.Config) { c.OutputFormat = config.OutputYAML })
		res := testutil.Execute(t, NewDDLCommand(), cfg, "", "--schema", "inventory", paths[0])
		require.NoError(t, res.Err)

		var schemas []map[string]any
		require.NoError(t, yaml.Unmarshal(res.Out.Bytes(), &schemas))
		require.Len(t, schemas, 1)
		assert.Equal(t, "inventory", schemas[0]["name"])
	})
}

func TestDDL_CrossSchemaAndTypes(t *testing.T) {
	paths := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"parts.ddl":  partsDDL,
		"orders.ddl": "CREATE FOREIGN TABLE line (part integer, price money, FOREIGN KEY (part) REFERENCES parts.supplier)",
	}, "parts.ddl", "orders.ddl")

	cfg := configWith(func(c *config.Config) { c.Types = []string{"money=bigdecimal"} })
	res := testutil.Execute(t, NewDDLCommand(), cfg, "", paths...)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output(), "price money")
	assert.Contains(t, res.Output(), "(part) → parts.supplier")
}

func TestDDL_Errors(t *testing.T) {
	dir := t.TempDir()
	paths := testutil.WriteFiles(t, dir, map[string]string{
		"bad.ddl":    "CREATE FOREIGN TABLE t (a integer",
		"dangle.ddl": "CREATE FOREIGN TABLE t (a integer, FOREIGN KEY (a) REFERENCES nowhere)",
		"dup.ddl":    "CREATE FOREIGN TABLE t (a integer); CREATE FOREIGN TABLE T (b integer)",
		"ok.ddl":     "CREATE FOREIGN TABLE t (a integer)",
	}, "bad.ddl", "dangle.ddl", "dup.ddl", "ok.ddl")

	tests := []struct {
		name      string
		cfg       *config.Config
		args      []string
		errSubstr string
	}{
		{"syntax", nil, []string{paths[0]}, "bad.ddl"},
		{"unresolved foreign key", nil, []string{paths[1]}, "nowhere"},
		{"duplicate table", nil, []string{paths[2]}, "duplicate"},
		{"schema with several files", nil, []string{"--schema", "s", paths[3], paths[3]}, "single file"},
		{"bad type declaration", configWith(func(c *config.Config) { c.Types = []string{"money"} }), []string{paths[3]}, "invalid datatypes"},
		{"no args", nil, nil, "requires at least 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := testutil.Execute(t, NewDDLCommand(), tt.cfg, "", tt.args...)
			require.Error(t, res.Err)
			assert.Contains(t, res.Err.Error(), tt.errSubstr)
		})
	}
}

func TestSchemaName(t *testing.T) {
	assert.Equal(t, "pm1", schemaName("/tmp/x/pm1.ddl"))
	assert.Equal(t, "orders", schemaName("orders"))
	assert.Equal(t, "stdin", schemaName(stdinName))
}

func TestTokens(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		cfg := configWith(func(c *config.Config) { c.OutputFormat = config.OutputJSON })
		res := testutil.Execute(t, NewTokensCommand(), cfg, "", "SELECT /*+ sh */ e1,", "'it''s'")
		require.NoError(t, res.Err)

		var rows []tokenRow
		require.NoError(t, json.Unmarshal(res.Out.Bytes(), &rows))
		require.Len(t, rows, 5)
		assert.Equal(t, "SELECT", rows[0].Type)
		assert.Equal(t, "IDENT", rows[1].Type)
		assert.Equal(t, []string{"sh"}, rows[1].Hints)
		assert.Equal(t, 18, rows[1].Column)
		assert.Equal(t, "STRING", rows[3].Type)
		assert.Equal(t, "'it''s'", rows[3].Image)
		assert.Equal(t, "it's", rows[3].Value)
		assert.Equal(t, "EOF", rows[4].Type)
	})

	t.Run("table from stdin", func(t *testing.T) {
		res := testutil.Execute(t, NewTokensCommand(), nil, "a <> 1.5")
		require.NoError(t, res.Err)
		for _, want := range []string{"IDENT", "<>", "DECIMAL", "1.5", "EOF"} {
			assert.Contains(t, res.Output(), want)
		}
	})

	t.Run("non ansi quoting", func(t *testing.T) {
		cfg := configWith(func(c *config.Config) {
			c.OutputFormat = config.OutputYAML
			c.AnsiQuotedIdentifiers = false
		})
		res := testutil.Execute(t, NewTokensCommand(), cfg, "", `"abc"`)
		require.NoError(t, res.Err)

		var rows []tokenRow
		require.NoError(t, yaml.Unmarshal(res.Out.Bytes(), &rows))
		require.NotEmpty(t, rows)
		assert.Equal(t, "STRING", rows[0].Type)
	})

	t.Run("lexical error", func(t *testing.T) {
		res := testutil.Execute(t, NewTokensCommand(), nil, "", "select 'abc")
		require.Error(t, res.Err)
		assert.Contains(t, res.Err.Error(), "lexical error at line 1, column 8")
		assert.Contains(t, res.Output(), "ILLEGAL")
	})
}
