package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	"github.com/teiid/teiid-sub017/pkg/parser"
	"github.com/teiid/teiid-sub017/pkg/token"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [sql]",
		Short: "Show the token stream of a SQL string",
		Long: `Run the lexer over the arguments, joined by spaces, or over stdin when no
argument is given, and list every token with its position.`,
		Example: `  fedsql tokens "SELECT /*+ sh */ e1 FROM pm1.g1"
  fedsql tokens -o json < query.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sql string
			if len(args) == 0 {
				in, err := readInput(cmd.InOrStdin(), stdinName)
				if err != nil {
					return err
				}
				sql = in
			} else {
				sql = strings.Join(args, " ")
			}
			cfg := config.GetConfig(cmd.Context())
			return renderTokens(cmd.OutOrStdout(), parser.Tokenize(sql, cfg.ParseInfo()), cfg)
		},
	}
}

// tokenRow is the serialized form of one token.
type tokenRow struct {
	Type   string   `json:"type" yaml:"type"`
	Image  string   `json:"image" yaml:"image"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
	Line   int      `json:"line" yaml:"line"`
	Column int      `json:"column" yaml:"column"`
	Hints  []string `json:"hints,omitempty" yaml:"hints,omitempty"`
}

func tokenRows(tokens []token.Token) []tokenRow {
	rows := make([]tokenRow, 0, len(tokens))
	for _, tok := range tokens {
		row := tokenRow{
			Type:   tok.Type.String(),
			Image:  tok.Raw,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
			Hints:  tok.Hints,
		}
		if tok.Literal != tok.Raw {
			row.Value = tok.Literal
		}
		rows = append(rows, row)
	}
	return rows
}

// renderTokens prints the stream and fails when it ends in a lexical error.
func renderTokens(w io.Writer, tokens []token.Token, cfg *config.Config) error {
	rows := tokenRows(tokens)

	switch cfg.OutputFormat {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		if err := enc.Encode(rows); err != nil {
			return err
		}
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(cfg.Indent, 2))
		if err := enc.Encode(rows); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		t := newTable(w, table.Row{"#", "Type", "Image", "Value", "Line", "Col", "Hints"})
		for i, r := range rows {
			t.AppendRow(table.Row{i + 1, r.Type, r.Image, r.Value, r.Line, r.Column, strings.Join(r.Hints, "; ")})
		}
		t.Render()
	}

	if last := tokens[len(tokens)-1]; last.Type == token.ILLEGAL {
		return fmt.Errorf("lexical error at %s: %s", last.Pos, last.Err)
	}
	return nil
}
