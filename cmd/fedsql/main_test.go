// Package main provides tests for the fedsql CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/internal/cli"
	"github.com/teiid/teiid-sub017/internal/cli/config"
)

type run struct {
	out, errOut string
	err         error
}

func execute(t *testing.T, stdin string, args ...string) run {
	t.Helper()
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return run{out: out.String(), errOut: errOut.String(), err: err}
}

func TestVersionCommand(t *testing.T) {
	r := execute(t, "", "version")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "fedsql v"+cli.Version)
}

func TestHelpCommand(t *testing.T) {
	r := execute(t, "", "--help")
	require.NoError(t, r.err)
	for _, expected := range []string{"format", "ddl", "tokens", "repl", "version", "completion"} {
		assert.Contains(t, r.out, expected)
	}
}

func TestFormatCommand(t *testing.T) {
	r := execute(t, "select e1 from pm1.g1 order by e1 desc", "format")
	require.NoError(t, r.err)
	assert.Equal(t, "SELECT e1 FROM pm1.g1 ORDER BY e1 DESC\n", r.out)
}

func TestTokensCommand_OutputFlag(t *testing.T) {
	r := execute(t, "", "tokens", "-o", "json", "--indent", "0", "a")
	require.NoError(t, r.err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "IDENT", rows[0]["type"])
}

func TestDDLCommand_VerboseLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pm1.ddl")
	require.NoError(t, os.WriteFile(path, []byte("CREATE FOREIGN TABLE g1 (e1 integer)"), 0600))

	r := execute(t, "", "ddl", "-v", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "g1")
	assert.Contains(t, r.errOut, "ddl statement applied")

	r = execute(t, "", "ddl", path)
	require.NoError(t, r.err)
	assert.NotContains(t, r.errOut, "ddl statement applied")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: yaml\n"), 0600))

	r := execute(t, "", "--config", cfgPath, "tokens", "x")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "type: IDENT")
}

func TestInvalidOutput(t *testing.T) {
	r := execute(t, "", "tokens", "-o", "xml", "a")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "unknown output format")
}

func TestCompletionCommand(t *testing.T) {
	r := execute(t, "", "completion", "bash")
	require.NoError(t, r.err)
	assert.Contains(t, r.out, "fedsql")
}

func TestFormatCommand_ParseErrorWithoutUsage(t *testing.T) {
	r := execute(t, "select from g", "format")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "Parsing error")
	assert.Empty(t, r.out)
	assert.NotContains(t, r.errOut, "Usage:")
}
