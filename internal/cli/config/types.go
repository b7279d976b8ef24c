// Package config provides configuration management for the fedsql CLI.
//
// Values are layered from built-in defaults, a fedsql.yaml file, FEDSQL_
// environment variables and command line flags, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/teiid/teiid-sub017/pkg/core"
	"github.com/teiid/teiid-sub017/pkg/metadata"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

// Config holds all CLI configuration options.
type Config struct {
	AnsiQuotedIdentifiers bool   `koanf:"ansi_quoted_identifiers"`
	DecimalAsDouble       bool   `koanf:"decimal_as_double"`
	Schema                string `koanf:"schema"`
	OutputFormat          string `koanf:"output"`
	Verbose               bool   `koanf:"verbose"`
	Indent                int    `koanf:"indent"`

	// Types declares extra datatypes as name=runtime pairs, for example
	// money=bigdecimal. The env and flag forms are comma separated.
	Types []string `koanf:"types"`
}

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// Default configuration values.
const (
	DefaultOutput = OutputText
	DefaultIndent = 2
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{OutputText, OutputJSON, OutputYAML, OutputTable}

// ParseInfo returns the parse options selected by the configuration.
func (c *Config) ParseInfo() parser.ParseInfo {
	return parser.ParseInfo{
		AnsiQuotedIdentifiers: c.AnsiQuotedIdentifiers,
		DecimalAsDouble:       c.DecimalAsDouble,
	}
}

// Datatypes returns the built-in datatypes plus the ones declared in Types.
func (c *Config) Datatypes() (*metadata.Datatypes, error) {
	dts := metadata.DefaultDatatypes()
	for _, decl := range c.Types {
		name, runtime, ok := strings.Cut(decl, "=")
		name, runtime = strings.TrimSpace(name), strings.TrimSpace(runtime)
		if !ok || name == "" || runtime == "" {
			return nil, fmt.Errorf("invalid type declaration %q, expected name=runtime", decl)
		}
		rt, ok := core.LookupDataType(runtime)
		if !ok {
			return nil, fmt.Errorf("type %s: unknown runtime type %q", name, runtime)
		}
		if err := dts.Register(&metadata.Datatype{Name: name, RuntimeType: rt}); err != nil {
			return nil, err
		}
	}
	return dts, nil
}
