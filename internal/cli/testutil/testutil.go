// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	logutil "github.com/teiid/teiid-sub017/internal/testutil"
)

// WriteFiles creates files under dir, keyed by their relative path, and
// returns the absolute paths in the order of names.
func WriteFiles(t *testing.T, dir string, files map[string]string, names ...string) []string {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// Result holds the captured output of a command run.
type Result struct {
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
	Err    error
}

// Output returns the captured standard output.
func (r *Result) Output() string {
	return r.Out.String()
}

// ErrorOutput returns the captured standard error.
func (r *Result) ErrorOutput() string {
	return r.ErrOut.String()
}

// Execute runs cmd with args and stdin, with cfg and a test logger in the
// context. A nil cfg selects the defaults. Usage and error printing are
// silenced as they are under the root command.
func Execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin string, args ...string) *Result {
	t.Helper()

	if cfg == nil {
		cfg = config.GetConfig(context.Background())
	}
	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, logutil.NewTestLogger(t))

	res := &Result{Out: &bytes.Buffer{}, ErrOut: &bytes.Buffer{}}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(res.Out)
	cmd.SetErr(res.ErrOut)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	res.Err = cmd.ExecuteContext(ctx)
	return res
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
