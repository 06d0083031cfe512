package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.gatech.edu/ECEInnovation/JASM-Language-Server/resolver"
)

var (
	// ErrNoResult is returned by hover and definition when nothing is found.
	ErrNoResult = errors.New("no result")
	// ErrDiagnostics is returned by check when a file has error diagnostics.
	ErrDiagnostics = errors.New("file has errors")
)

// parsePosition reads a 1-based LINE:COL pair.
func parsePosition(s string) (resolver.TextPosition, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return resolver.TextPosition{}, errors.Errorf("invalid position %q: expected LINE:COL", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return resolver.TextPosition{}, errors.Errorf("invalid line in position %q", s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return resolver.TextPosition{}, errors.Errorf("invalid column in position %q", s)
	}
	return resolver.TextPosition{Line: line - 1, Char: col - 1}, nil
}

func (a *app) readLines(cmd *cobra.Command, path string) ([]string, error) {
	b, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, errors.Errorf("could not read file %s: %w", path, err)
	}
	lines := resolver.SplitLines(string(b))
	zerolog.Ctx(cmd.Context()).Debug().Str("file", path).Int("lines", len(lines)).Msg("read document")
	return lines, nil
}

func (a *app) newHoverCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hover FILE LINE:COL",
		Short: "describe the word at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			lines, err := a.readLines(cmd, args[0])
			if err != nil {
				return err
			}

			info, ok := a.resolver.ResolveAt(lines, pos)
			if !ok {
				return errors.Errorf("%w at %s:%s", ErrNoResult, args[0], args[1])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", info.Name, info.Kind.Detail())
			if info.Doc != "" {
				fmt.Fprintln(out, info.Doc)
			}
			if info.Example != "" {
				fmt.Fprintf(out, "\n    %s\n", info.Example)
			}
			return nil
		},
	}
}

func (a *app) newDefinitionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "definition FILE LINE:COL",
		Short: "print where the label or macro at a position is declared",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			lines, err := a.readLines(cmd, args[0])
			if err != nil {
				return err
			}

			site, ok := a.resolver.ResolveDefinitionLocation(lines, pos)
			if !ok {
				return errors.Errorf("%w at %s:%s", ErrNoResult, args[0], args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s\n", args[0], site.Line+1, site.Start+1, strings.TrimSpace(site.Text))
			return nil
		},
	}
}

func (a *app) newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete FILE",
		Short: "list the completions offered in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args[0])
			if err != nil {
				return err
			}
			for _, c := range a.resolver.ListCompletions(lines) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Label, c.Detail)
			}
			return nil
		},
	}
}

func (a *app) newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "report declaration problems in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args[0])
			if err != nil {
				return err
			}

			errorCount := 0
			for _, diag := range resolver.Diagnose(lines) {
				if diag.Severity == resolver.Error {
					errorCount++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s: %s\n", args[0],
					diag.Range.Start.Line+1, diag.Range.Start.Char+1, diag.Severity, diag.Message)
			}
			if errorCount > 0 {
				return errors.Errorf("%w: %d in %s", ErrDiagnostics, errorCount, args[0])
			}
			return nil
		},
	}
}
