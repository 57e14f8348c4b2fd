package cli

import (
	"context"
	"io"

	"monkey/internal/config"
	"monkey/internal/repl"

	"github.com/spf13/cobra"
)

func newREPLCmd(a *app) *cobra.Command {
	var (
		mode     string
		prompt   string
		noBanner bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive REPL",
		Long: `Reads one line at a time, parses it and prints the result.

In parse mode each statement is printed in its canonical form.
In tokens mode every token is printed with its position.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("mode") {
				a.cfg.Mode = mode
			}
			if flags.Changed("prompt") {
				a.cfg.Prompt = prompt
			}
			if noBanner {
				a.cfg.Banner = false
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runREPL(cmd.Context(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", config.ModeParse, "parse or tokens")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "prompt shown before each line")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "do not print the banner")

	return cmd
}

func (a *app) runREPL(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return repl.Start(ctx, out, a.cfg, a.logger)
}
