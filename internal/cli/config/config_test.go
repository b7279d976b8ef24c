package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teiid/teiid-sub017/pkg/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fedsql.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.AnsiQuotedIdentifiers)
	assert.False(t, cfg.DecimalAsDouble)
	assert.Equal(t, OutputText, cfg.OutputFormat)
	assert.Equal(t, DefaultIndent, cfg.Indent)
	assert.Empty(t, cfg.Types)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, `ansi_quoted_identifiers: false
decimal_as_double: true
schema: pm1
output: JSON
indent: 4
types:
  - money=bigdecimal
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, GetConfigFileUsed())
	assert.False(t, cfg.AnsiQuotedIdentifiers)
	assert.True(t, cfg.DecimalAsDouble)
	assert.Equal(t, "pm1", cfg.Schema)
	assert.Equal(t, OutputJSON, cfg.OutputFormat)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, []string{"money=bigdecimal"}, cfg.Types)
}

func TestLoadConfig_DiscoveredInParent(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "fedsql.yml"), []byte("schema: found\n"), 0600))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	t.Chdir(nested)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "found", cfg.Schema)
}

func TestLoadConfig_EnvVars(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("FEDSQL_DECIMAL_AS_DOUBLE", "true")
	t.Setenv("FEDSQL_INDENT", "3")
	t.Setenv("FEDSQL_TYPES", "money=bigdecimal,code=string")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.True(t, cfg.DecimalAsDouble)
	assert.Equal(t, 3, cfg.Indent)
	assert.Equal(t, []string{"money=bigdecimal", "code=string"}, cfg.Types)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "schema: from_file\noutput: yaml\n")
	t.Setenv("FEDSQL_SCHEMA", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("schema", "", "schema name")
	flags.String("output", "", "output format")
	flags.Bool("ansi-quoted-identifiers", true, "ansi quoting")
	require.NoError(t, flags.Set("schema", "from_flag"))
	require.NoError(t, flags.Set("ansi-quoted-identifiers", "false"))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag", cfg.Schema)
	// unchanged flags do not override the file
	assert.Equal(t, OutputYAML, cfg.OutputFormat)
	assert.False(t, cfg.AnsiQuotedIdentifiers)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"unknown output", "output: xml\n", "unknown output format"},
		{"negative indent", "indent: -1\n", "indent must not be negative"},
		{"bad yaml", "output: [\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
	})
}

func TestConfig_ParseInfo(t *testing.T) {
	cfg := &Config{AnsiQuotedIdentifiers: false, DecimalAsDouble: true}
	info := cfg.ParseInfo()
	assert.False(t, info.AnsiQuotedIdentifiers)
	assert.True(t, info.DecimalAsDouble)
}

func TestConfig_Datatypes(t *testing.T) {
	t.Run("declared types", func(t *testing.T) {
		cfg := &Config{Types: []string{"money = bigdecimal", "code=varchar"}}
		dts, err := cfg.Datatypes()
		require.NoError(t, err)

		dt, ok := dts.Lookup("MONEY")
		require.True(t, ok)
		assert.Equal(t, core.TypeBigDecimal, dt.RuntimeType)
		assert.False(t, dt.Builtin)

		dt, ok = dts.Lookup("code")
		require.True(t, ok)
		assert.Equal(t, core.TypeString, dt.RuntimeType)
	})

	tests := []struct {
		name      string
		types     []string
		errSubstr string
	}{
		{"no separator", []string{"money"}, "expected name=runtime"},
		{"empty runtime", []string{"money="}, "expected name=runtime"},
		{"unknown runtime", []string{"money=cash"}, "unknown runtime type"},
		{"builtin name", []string{"string=integer"}, "duplicate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Config{Types: tt.types}).Datatypes()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestContextAccessors(t *testing.T) {
	ctx := context.Background()

	def := GetConfig(ctx)
	assert.True(t, def.AnsiQuotedIdentifiers)
	assert.Equal(t, OutputText, def.OutputFormat)
	assert.NotNil(t, GetLogger(ctx))

	cfg := &Config{Schema: "s"}
	assert.Same(t, cfg, GetConfig(WithConfig(ctx, cfg)))
}
