// Package main provides the fedsql command.
package main

import (
	"os"

	"github.com/teiid/teiid-sub017/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
