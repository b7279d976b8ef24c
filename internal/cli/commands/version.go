package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display fedsql version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fedsql v%s (%s)\n", version, commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Federated SQL parser and canonicalizer, %s %s/%s\n",
				runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
