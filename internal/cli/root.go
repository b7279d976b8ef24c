// Package cli provides the command-line interface for fedsql.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/teiid/teiid-sub017/internal/cli/commands"
	"github.com/teiid/teiid-sub017/internal/cli/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "fedsql",
		Short: "fedsql - federated SQL parser",
		Long: `fedsql parses the federated SQL dialect: queries, procedural blocks and
metadata DDL. It prints canonical SQL, token streams and the schema metadata
built from DDL.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg.Verbose)
			if used := config.GetConfigFileUsed(); used != "" {
				logger.Debug("using config file", "path", used)
			}

			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: fedsql.yaml in the current or a parent directory)")
	flags.StringP("output", "o", "", "Output format (text|json|yaml|table)")
	flags.BoolP("verbose", "v", false, "Verbose output")
	flags.Bool("ansi-quoted-identifiers", true, `Treat "x" as an identifier rather than a string`)
	flags.Bool("decimal-as-double", false, "Parse decimal literals as double")
	flags.Int("indent", config.DefaultIndent, "Indent width of json and yaml output")
	flags.StringSlice("types", nil, "Extra datatypes as name=runtime pairs")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewVersionCommand(Version, GitCommit))
	rootCmd.AddCommand(commands.NewFormatCommand())
	rootCmd.AddCommand(commands.NewDDLCommand())
	rootCmd.AddCommand(commands.NewTokensCommand())
	rootCmd.AddCommand(commands.NewREPLCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// newLogger builds the stderr logger. Debug output needs --verbose.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fedsql.

To load completions:

Bash:
  $ source <(fedsql completion bash)

Zsh:
  $ fedsql completion zsh > "${fpath[1]}/_fedsql"

Fish:
  $ fedsql completion fish | source

PowerShell:
  PS> fedsql completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
