package commands

import (
	"bytes"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/internal/cli/testutil"
)

// scriptedReader replays lines, then reports EOF.
type scriptedReader struct {
	steps   []step
	prompts []string
}

type step struct {
	line string
	err  error
}

func lines(ss ...string) []step {
	out := make([]step, len(ss))
	for i, s := range ss {
		out[i] = step{line: s}
	}
	return out
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	s := r.steps[0]
	r.steps = r.steps[1:]
	return s.line, s.err
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func runSession(t *testing.T, steps []step) (out, errOut string, rd *scriptedReader) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	s := newREPLSession(cmd, configWith(nil))
	rd = &scriptedReader{steps: steps}
	require.NoError(t, s.run(rd))
	return testutil.StripANSI(stdout.String()), testutil.StripANSI(stderr.String()), rd
}

func TestREPL_Commands(t *testing.T) {
	out, errOut, rd := runSession(t, lines(
		"select a",
		"  from g where b=1;",
		"",
		"select from;",
	))

	assert.Contains(t, out, "SELECT a FROM g WHERE b = 1")
	assert.Contains(t, errOut, "Parsing error")
	assert.Equal(t, []string{continuationPrompt, primaryPrompt, primaryPrompt}, rd.prompts)
}

func TestREPL_Modes(t *testing.T) {
	tests := []struct {
		name  string
		steps []step
		want  string
	}{
		{
			name:  "expression",
			steps: lines(".mode expression", "1 + 2;"),
			want:  "(1 + 2)",
		},
		{
			name:  "criteria",
			steps: lines(".mode criteria", "a = 1", "and b is null;"),
			want:  "a = 1 AND b IS NULL",
		},
		{
			name:  "procedure continues until the block is closed",
			steps: lines(".mode procedure", "BEGIN", "select 1;", "END;"),
			want:  "CREATE VIRTUAL PROCEDURE\nBEGIN\n\tSELECT 1;\nEND",
		},
		{
			name:  "ddl",
			steps: lines(".MODE ddl", "CREATE FOREIGN TABLE t (a integer);"),
			want:  "CREATE FOREIGN TABLE t (\n\ta integer\n);",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut, _ := runSession(t, tt.steps)
			assert.Empty(t, errOut)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestREPL_DotCommands(t *testing.T) {
	out, errOut, _ := runSession(t, lines(
		".help",
		".mode",
		".mode nope",
		".bogus",
		".quit",
		"select 1;",
	))

	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "mode: command")
	assert.Contains(t, errOut, `unknown mode "nope"`)
	assert.Contains(t, errOut, "Unknown command: .bogus")
	assert.NotContains(t, out, "SELECT 1", "input after .quit is not read")
}

func TestREPL_InterruptDiscardsInput(t *testing.T) {
	out, _, rd := runSession(t, []step{
		{line: "select a"},
		{err: readline.ErrInterrupt},
		{line: "select b;"},
	})

	assert.NotContains(t, out, "SELECT a")
	assert.Contains(t, out, "SELECT b")
	assert.Equal(t, primaryPrompt, rd.prompts[1])
}

func TestIncomplete(t *testing.T) {
	s := newREPLSession(&cobra.Command{}, configWith(nil))

	_, err := s.eval("select a from")
	assert.True(t, incomplete(err))

	_, err = s.eval("select a from )")
	assert.False(t, incomplete(err))

	_, err = s.eval("")
	assert.False(t, incomplete(err))
	assert.False(t, incomplete(nil))
}

func TestSetMode(t *testing.T) {
	s := newREPLSession(&cobra.Command{}, configWith(nil))
	for _, m := range replModes {
		require.NoError(t, s.setMode(string(m)))
		assert.Equal(t, m, s.mode)
	}
	assert.Error(t, s.setMode("sql"))
}
