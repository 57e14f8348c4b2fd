package cli

import (
	"errors"
	"fmt"
	"io"

	"monkey/internal/driver"
	"monkey/internal/pipeline"

	"github.com/spf13/cobra"
)

// ErrParseFailed is returned when any source had syntax errors.
var ErrParseFailed = errors.New("parsing failed")

func newParseCmd(a *app) *cobra.Command {
	var (
		code    string
		format  string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse source files and print the program",
		Long: `Parses each file, or the code given with -e, and prints the program.

Formats:
  text  canonical rendering, one statement per line
  json  AST dump
  yaml  AST dump

Files are parsed concurrently; output follows the order given.
Diagnostics go to stderr and the exit status is non-zero on errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			results, err := a.collect(cmd, args, code)
			if err != nil && len(results) == 0 {
				return err
			}

			failed := a.report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)
			if summary || len(results) > 1 {
				pipeline.PrintSummary(cmd.ErrOrStderr(), results)
			}

			if err != nil {
				return err
			}
			if failed {
				return ErrParseFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&code, "eval", "e", "", "parse this code instead of files")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a summary even for a single source")

	return cmd
}

// collect parses the inline code or the named files.
func (a *app) collect(cmd *cobra.Command, args []string, code string) ([]*pipeline.Result, error) {
	p := pipeline.New(a.logger)

	if cmd.Flags().Changed("eval") {
		if len(args) > 0 {
			return nil, fmt.Errorf("cannot combine -e with files")
		}
		return []*pipeline.Result{p.Parse("<eval>", code)}, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("nothing to parse: name files or use -e")
	}

	return p.ParseAll(cmd.Context(), args)
}

// report prints every program and its diagnostics. It returns true when
// any source failed.
func (a *app) report(out, errOut io.Writer, results []*pipeline.Result) bool {
	failed := false
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed = true
		case res.HasErrors():
			failed = true
			res.Diagnostics.Emit(errOut)
		default:
			if err := driver.WriteProgram(out, res.Program, a.cfg.Format); err != nil {
				a.logger.Error("write program", "source", res.Name, "error", err)
				failed = true
			}
		}
	}
	return failed
}
