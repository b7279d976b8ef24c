package config

import (
	"fmt"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (expected one of %s)",
			c.OutputFormat, strings.Join(OutputFormats, ", "))
	}
	if c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}
