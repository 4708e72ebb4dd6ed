package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	var showRPN bool

	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate a single expression",
		Example: `  calc eval "2 * (3 + 4)"
  calc eval 2 '*' 3 --rpn`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine()
			if err != nil {
				return reportError(cmd, err)
			}

			value, postfix, err := eng.Evaluate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return reportError(cmd, err)
			}

			if showRPN {
				fmt.Fprintf(cmd.OutOrStdout(), "rpn: %s\n", postfix)
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.format(value))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRPN, "rpn", false, "Also print the postfix (RPN) form")
	return cmd
}
