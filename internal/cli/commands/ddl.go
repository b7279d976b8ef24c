package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	"github.com/teiid/teiid-sub017/pkg/metadata"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

// NewDDLCommand creates the ddl command.
func NewDDLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ddl <file>...",
		Short: "Build schema metadata from DDL files",
		Long: `Parse each file as the DDL of one schema, merge the schemas and resolve
their foreign keys, then print the resulting metadata.

The schema name is taken from --schema when a single file is given, and
from the file name otherwise.`,
		Example: `  fedsql ddl --schema pm1 pm1.ddl
  fedsql ddl -o json parts.ddl orders.ddl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDDL(cmd, args)
		},
	}
	cmd.Flags().String("schema", "", "Schema name (single file only)")
	return cmd
}

func runDDL(cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	schemaFlag, _ := cmd.Flags().GetString("schema")
	if schemaFlag == "" {
		schemaFlag = cfg.Schema
	}
	if schemaFlag != "" && len(files) > 1 {
		return fmt.Errorf("--schema can only be used with a single file")
	}

	datatypes, err := cfg.Datatypes()
	if err != nil {
		return fmt.Errorf("invalid datatypes: %w", err)
	}

	qp := parser.NewQueryParser(cfg.ParseInfo())
	store := metadata.NewStore()
	for _, file := range files {
		ddl, err := readInput(cmd.InOrStdin(), file)
		if err != nil {
			return err
		}
		schema := schemaFlag
		if schema == "" {
			schema = schemaName(file)
		}
		factory, err := qp.ParseDDL(ddl, schema, datatypes, metadata.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if err := factory.MergeInto(store); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	if err := store.ResolveForeignKeys(); err != nil {
		return err
	}

	return renderSchemas(cmd.OutOrStdout(), store.Schemas(), cfg)
}

// schemaName derives a schema name from a file name: dir/pm1.ddl → pm1.
func schemaName(file string) string {
	if file == stdinName {
		return "stdin"
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func renderSchemas(w io.Writer, schemas []*metadata.Schema, cfg *config.Config) error {
	switch cfg.OutputFormat {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", cfg.Indent))
		return enc.Encode(schemas)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(cfg.Indent, 2))
		if err := enc.Encode(schemas); err != nil {
			return err
		}
		return enc.Close()
	default:
		renderSchemaTables(w, schemas)
		return nil
	}
}

func renderSchemaTables(w io.Writer, schemas []*metadata.Schema) {
	tables := newTable(w, table.Row{"Schema", "Table", "Type", "Columns", "Primary Key", "Foreign Keys"})
	procs := newTable(w, table.Row{"Schema", "Procedure", "Kind", "Parameters", "Result"})
	funcs := newTable(w, table.Row{"Schema", "Function", "Kind", "Inputs", "Returns"})

	var nTables, nProcs, nFuncs int
	for _, s := range schemas {
		for _, t := range s.Tables {
			tables.AppendRow(table.Row{s.Name, t.Name, t.Type, columnList(t.Columns), keyColumns(t.PrimaryKey), foreignKeys(t.ForeignKeys)})
			nTables++
		}
		for _, p := range s.Procedures {
			procs.AppendRow(table.Row{s.Name, p.Name, kind(p.Virtual), parameterList(p.Parameters), columnList(p.ResultColumns)})
			nProcs++
		}
		for _, f := range s.Functions {
			ret := ""
			if f.Output != nil {
				ret = f.Output.Datatype
			}
			funcs.AppendRow(table.Row{s.Name, f.Name, kind(f.Virtual), parameterList(f.Inputs), ret})
			nFuncs++
		}
	}

	if nTables == 0 && nProcs == 0 && nFuncs == 0 {
		_, _ = fmt.Fprintln(w, "(no metadata)")
		return
	}
	if nTables > 0 {
		tables.Render()
	}
	if nProcs > 0 {
		procs.Render()
	}
	if nFuncs > 0 {
		funcs.Render()
	}
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}

func kind(virtual bool) string {
	if virtual {
		return "virtual"
	}
	return "foreign"
}

func columnList(cols []*metadata.Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c.Name + " " + c.Datatype + strings.Repeat("[]", c.ArrayDimensions)
	}
	return strings.Join(parts, "\n")
}

func parameterList(params []*metadata.ProcedureParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.DirectionName + " " + p.Name + " " + p.Datatype
	}
	return strings.Join(parts, "\n")
}

func keyColumns(k *metadata.KeyRecord) string {
	if k == nil {
		return ""
	}
	return strings.Join(k.ColumnNames, ", ")
}

func foreignKeys(fks []*metadata.ForeignKey) string {
	parts := make([]string, len(fks))
	for i, fk := range fks {
		target := fk.ReferenceTable
		if target == "" {
			target = fk.ReferenceTableName
		}
		parts[i] = fmt.Sprintf("(%s) → %s", strings.Join(fk.ColumnNames, ", "), target)
	}
	return strings.Join(parts, "\n")
}
