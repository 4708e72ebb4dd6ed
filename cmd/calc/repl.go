package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const prompt = "expression: "

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions line by line and print their RPN and result",
		Long: `repl reads one expression per line. For every line it prints the postfix
form followed by the result. Errors are reported and the loop continues.
Type exit or quit, or send EOF, to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := opts.engine()
			if err != nil {
				return reportError(cmd, err)
			}

			in := cmd.InOrStdin()
			out := cmd.OutOrStdout()
			interactive := isTerminal(in)

			scanner := bufio.NewScanner(in)
			for {
				if interactive {
					fmt.Fprint(out, prompt)
				}
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				switch line {
				case "":
					continue
				case "exit", "quit":
					return nil
				}

				value, postfix, err := eng.Evaluate(cmd.Context(), line)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "rpn: %s\n", postfix)
				fmt.Fprintf(out, "result: %s\n", opts.format(value))
			}

			if interactive {
				fmt.Fprintln(out)
			}
			return scanner.Err()
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
