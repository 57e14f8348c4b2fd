package cli

import (
	"fmt"
	"os"

	"monkey/internal/driver"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "tokens [files...]",
		Short: "Print the token stream of source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("eval") {
				if len(args) > 0 {
					return fmt.Errorf("cannot combine -e with files")
				}
				driver.WriteTokens(out, "<eval>", code)
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("nothing to tokenize: name files or use -e")
			}

			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("cannot read file %s: %w", path, err)
				}
				a.logger.Debug("tokenizing", "source", path, "bytes", len(content))
				driver.WriteTokens(out, path, string(content))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&code, "eval", "e", "", "tokenize this code instead of files")

	return cmd
}
