package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/teiid/teiid-sub017/internal/cli/config"
	"github.com/teiid/teiid-sub017/pkg/format"
	"github.com/teiid/teiid-sub017/pkg/parser"
)

const (
	primaryPrompt      = "fedsql> "
	continuationPrompt = "   ...> "
)

// replMode selects the parse entry point used for REPL input.
type replMode string

const (
	modeCommand    replMode = "command"
	modeExpression replMode = "expression"
	modeCriteria   replMode = "criteria"
	modeProcedure  replMode = "procedure"
	modeDDL        replMode = "ddl"
)

var replModes = []replMode{modeCommand, modeExpression, modeCriteria, modeProcedure, modeDDL}

var (
	sqlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).TabWidth(lipgloss.NoTabConversion)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	infoStyle  = lipgloss.NewStyle().Faint(true)
)

// paint styles every line separately so multi-line output is not padded.
func paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive parse and canonicalize loop",
		Long: `Start an interactive session that parses each ;-terminated input and prints
its canonical SQL. Input that is incomplete continues on the next line.

Type .help for commands, .quit to exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			history, _ := cmd.Flags().GetString("history")
			mode, _ := cmd.Flags().GetString("mode")

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          primaryPrompt,
				HistoryFile:     history,
				AutoComplete:    newDotCompleter(),
				InterruptPrompt: "^C",
				EOFPrompt:       ".quit",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize REPL: %w", err)
			}
			defer func() { _ = rl.Close() }()

			s := newREPLSession(cmd, config.GetConfig(cmd.Context()))
			if err := s.setMode(mode); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(s.out, infoStyle.Render("fedsql REPL (mode: "+string(s.mode)+")"))
			_, _ = fmt.Fprintln(s.out, infoStyle.Render("Type .help for commands, .quit to exit"))
			return s.run(rl)
		},
	}
	cmd.Flags().String("history", "", "History file (none when empty)")
	cmd.Flags().String("mode", string(modeCommand), "Initial input mode")
	return cmd
}

func newDotCompleter() *readline.PrefixCompleter {
	modes := make([]readline.PrefixCompleterInterface, len(replModes))
	for i, m := range replModes {
		modes[i] = readline.PcItem(string(m))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".mode", modes...),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}

// lineReader is the part of *readline.Instance the session uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

type replSession struct {
	qp     *parser.QueryParser
	mode   replMode
	out    io.Writer
	errOut io.Writer
	buf    strings.Builder
}

func newREPLSession(cmd *cobra.Command, cfg *config.Config) *replSession {
	return &replSession{
		qp:     parser.NewQueryParser(cfg.ParseInfo()),
		mode:   modeCommand,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

func (s *replSession) setMode(name string) error {
	for _, m := range replModes {
		if string(m) == strings.ToLower(name) {
			s.mode = m
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", name)
}

func (s *replSession) run(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buf.Reset()
			rl.SetPrompt(primaryPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if s.buf.Len() == 0 {
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ".") {
				if quit := s.handleDotCommand(trimmed); quit {
					return nil
				}
				continue
			}
		}

		terminated := strings.HasSuffix(trimmed, ";")
		if terminated && (s.mode == modeExpression || s.mode == modeCriteria) {
			// expressions have no statement separator of their own
			line = strings.TrimSuffix(trimmed, ";")
		}
		if s.buf.Len() > 0 {
			s.buf.WriteByte('\n')
		}
		s.buf.WriteString(line)
		if !terminated {
			rl.SetPrompt(continuationPrompt)
			continue
		}

		out, err := s.eval(s.buf.String())
		if incomplete(err) {
			rl.SetPrompt(continuationPrompt)
			continue
		}
		s.buf.Reset()
		rl.SetPrompt(primaryPrompt)
		if err != nil {
			_, _ = fmt.Fprintln(s.errOut, paint(errorStyle, err.Error()))
			continue
		}
		_, _ = fmt.Fprintln(s.out, paint(sqlStyle, out))
	}
}

// incomplete reports whether err was raised at the end of the input, in
// which case more lines may complete it.
func incomplete(err error) bool {
	var pe *parser.ParseError
	return errors.As(err, &pe) && pe.Token == "<EOF>" && !errors.Is(err, parser.ErrEmptySQL)
}

// eval parses input in the current mode and returns its canonical form.
func (s *replSession) eval(input string) (string, error) {
	switch s.mode {
	case modeExpression:
		expr, err := s.qp.ParseExpression(input)
		if err != nil {
			return "", err
		}
		return format.SQL(expr), nil
	case modeCriteria:
		crit, err := s.qp.ParseCriteria(input)
		if err != nil {
			return "", err
		}
		return format.SQL(crit), nil
	case modeProcedure:
		proc, err := s.qp.ParseUpdateProcedure(input)
		if err != nil {
			return "", err
		}
		return format.SQL(proc), nil
	case modeDDL:
		stmts, err := s.qp.ParseDDLStatements(input)
		if err != nil {
			return "", err
		}
		return format.DDL(stmts), nil
	default:
		command, err := s.qp.ParseCommand(input)
		if err != nil {
			return "", err
		}
		return format.SQL(command), nil
	}
}

func (s *replSession) handleDotCommand(line string) (quit bool) {
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(s.out)
	case ".mode":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(s.out, "mode: %s\n", s.mode)
			return false
		}
		if err := s.setMode(parts[1]); err != nil {
			_, _ = fmt.Fprintln(s.errOut, paint(errorStyle, err.Error()))
			return false
		}
		_, _ = fmt.Fprintf(s.out, "mode: %s\n", s.mode)
	default:
		_, _ = fmt.Fprintln(s.errOut, paint(errorStyle,
			fmt.Sprintf("Unknown command: %s (type .help for commands)", parts[0])))
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .mode [name]    Show or set the input mode:
                  command, expression, criteria, procedure, ddl
  .quit / .exit   Exit the REPL

Tips:
  - Input must end with a semicolon (;)
  - Incomplete input continues on the next line
  - Ctrl-C discards the current input
`
	_, _ = fmt.Fprintln(w, help)
}
