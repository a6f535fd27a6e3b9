// Command asm8051 assembles MCS-51 source files into Intel HEX object code.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/retroenv/asm8051"
	"github.com/retroenv/asm8051/internal/lexer"
	"github.com/retroenv/asm8051/internal/parser"
	"github.com/retroenv/asm8051/internal/vocab"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/config"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// cliDefaults holds the optional asm8051.conf settings that seed the
// assemble subcommand's flag defaults. A command-line flag always
// overrides a config value.
type cliDefaults struct {
	OutputPath string `config:"output.path,default=-"`
	LogLevel   string `config:"log.level,default=info"`
}

// loadDefaults reads asm8051.conf from the working directory if present.
// A missing file is not an error; a malformed one is.
func loadDefaults() (cliDefaults, error) {
	defaults := cliDefaults{OutputPath: "-", LogLevel: "info"}
	err := config.Load("asm8051.conf", &defaults)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return defaults, fmt.Errorf("loading asm8051.conf: %w", err)
	}
	return defaults, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New()

	defaults, err := loadDefaults()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if level, ok := parseLevel(defaults.LogLevel); ok {
		logger.SetLevel(level)
	}

	root := &cobra.Command{
		Use:           "asm8051",
		Short:         "Two-pass MCS-51 cross-assembler",
		Version:       buildinfo.Version(version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	var outputPath string
	assembleCmd := &cobra.Command{
		Use:   "assemble <source-path>",
		Short: "Assemble a source file and print Intel HEX to standard output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			logger.Debug("assembling", log.String("source", args[0]))
			hex, err := asm8051.Assemble(string(text))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outputPath != "" && outputPath != "-" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			_, err = fmt.Fprint(out, hex)
			return err
		},
	}
	assembleCmd.Flags().StringVarP(&outputPath, "output", "o", defaults.OutputPath, "output file path, - for standard output")
	root.AddCommand(assembleCmd)

	tokensCmd := &cobra.Command{
		Use:   "tokens <source-path>",
		Short: "Print the token stream for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens, err := asm8051.Tokenize(string(text))
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				fmt.Fprintln(cmd.OutOrStdout(), describeToken(tok))
			}
			return nil
		},
	}
	root.AddCommand(tokensCmd)

	astCmd := &cobra.Command{
		Use:   "ast <source-path>",
		Short: "Print the parsed program structure for a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens, err := asm8051.Tokenize(string(text))
			if err != nil {
				return err
			}
			program, err := asm8051.Parse(tokens)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(describeProgram(program))
		},
	}
	root.AddCommand(astCmd)

	statsCmd := &cobra.Command{
		Use:   "stats <source-path>",
		Short: "Report which mnemonics a source file uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			tokens, err := asm8051.Tokenize(string(text))
			if err != nil {
				return err
			}
			program, err := asm8051.Parse(tokens)
			if err != nil {
				return err
			}
			used := usedOperators(program)
			fmt.Fprintf(cmd.OutOrStdout(), "%d distinct mnemonics used:\n", used.Size())
			used.ForEach(func(n int) {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", vocab.Operator(n))
			})
			return nil
		},
	}
	root.AddCommand(statsCmd)

	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger.Error("assemble failed", log.String("error", err.Error()))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// parseLevel maps a config log-level string to a log.Level.
func parseLevel(s string) (log.Level, bool) {
	switch s {
	case "debug":
		return log.DebugLevel, true
	case "info":
		return log.InfoLevel, true
	case "warn":
		return log.WarnLevel, true
	case "error":
		return log.ErrorLevel, true
	default:
		return 0, false
	}
}

func describeToken(tok lexer.Token) string {
	if tok.Text != "" {
		return fmt.Sprintf("%-16s %q (row %d, col %d)", tok.Kind, tok.Text, tok.Pos.Row, tok.Pos.Column)
	}
	return fmt.Sprintf("%-16s (row %d, col %d)", tok.Kind, tok.Pos.Row, tok.Pos.Column)
}

// usedOperators collects the set of mnemonics a program invokes, using a
// BitSet since vocab.Operator is a small dense enum (well under 64 values).
func usedOperators(program *parser.Program) set.BitSet {
	s := set.NewBitSet()
	for _, line := range program.Lines {
		pl, ok := line.(parser.ProgramLine)
		if !ok || pl.Body == nil {
			continue
		}
		if cl, ok := pl.Body.(parser.CodeLine); ok {
			s.Add(int(cl.Operator))
		}
	}
	return s
}

// lineDesc is a plain, JSON-friendly mirror of one parser.Line, built for
// the `ast` subcommand (the AST itself uses unexported interface methods
// that don't marshal).
type lineDesc struct {
	Kind     string      `json:"kind"`
	Address  uint16      `json:"address,omitempty"`
	ID       string      `json:"id,omitempty"`
	Value    int32       `json:"value,omitempty"`
	Label    string      `json:"label,omitempty"`
	Operator string      `json:"operator,omitempty"`
	Operands []string    `json:"operands,omitempty"`
	Values   []string    `json:"values,omitempty"`
}

func describeProgram(program *parser.Program) []lineDesc {
	descs := make([]lineDesc, 0, len(program.Lines))
	for _, line := range program.Lines {
		descs = append(descs, describeLine(line))
	}
	return descs
}

func describeLine(line parser.Line) lineDesc {
	switch l := line.(type) {
	case parser.OrgLine:
		return lineDesc{Kind: "org", Address: l.Address}
	case parser.EquDef:
		return lineDesc{Kind: "equ", ID: l.ID, Value: l.Value}
	case parser.ProgramLine:
		desc := lineDesc{Kind: "line", Label: l.Label}
		switch b := l.Body.(type) {
		case parser.CodeLine:
			desc.Operator = b.Operator.String()
			for _, op := range b.Operands {
				desc.Operands = append(desc.Operands, op.String())
			}
		case parser.ValueDef:
			for _, v := range b.Values {
				desc.Values = append(desc.Values, fmt.Sprintf("% X", v.Bytes()))
			}
		}
		return desc
	default:
		return lineDesc{Kind: "unknown"}
	}
}
