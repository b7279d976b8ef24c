package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	"github.com/teiid/teiid-sub017/pkg/format"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

// stdinName is the argument that selects standard input.
const stdinName = "-"

// maxParallelFiles bounds how many inputs are parsed at once.
const maxParallelFiles = 8

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [files...]",
		Short: "Print the canonical form of SQL commands",
		Long: `Parse each input as a single command and print its canonical SQL.

With no arguments, or the argument "-", the command is read from stdin.
Several files are parsed concurrently and printed in argument order.`,
		Example: `  fedsql format query.sql
  echo "select a from g where b=1" | fedsql format
  fedsql format --ansi-quoted-identifiers=false a.sql b.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			return runFormat(cmd, args)
		},
	}
}

func runFormat(cmd *cobra.Command, inputs []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)
	qp := parser.NewQueryParser(cfg.ParseInfo())

	results := make([]string, len(inputs))
	g, gctx := errgroup.WithContext(ctxOrBackground(ctx))
	g.SetLimit(maxParallelFiles)
	for i, name := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sql, err := readInput(cmd.InOrStdin(), name)
			if err != nil {
				return err
			}
			command, err := qp.ParseCommand(sql)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = format.SQL(command)
			logger.Debug("formatted command", "input", name, "type", command.Type().String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, sql := range results {
		_, _ = fmt.Fprintln(out, sql)
	}
	return nil
}

// readInput returns the contents of the named file, or of stdin for "-".
func readInput(stdin io.Reader, name string) (string, error) {
	if name == stdinName {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(name) //nolint:gosec // user supplied input file
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(b), nil
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
