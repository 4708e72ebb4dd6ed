package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/client"
	"github.com/DjordjeVuckovic/calc-hunter/pkg/utils"
	"github.com/spf13/cobra"
)

const apiURLEnv = "CALC_API_URL"

type options struct {
	remote    string
	precision int
	verbose   bool
}

// engine evaluates one expression and returns the result with its postfix form.
type engine interface {
	Evaluate(ctx context.Context, expression string) (float64, string, error)
}

type localEngine struct {
	calculator *calc.Calculator
}

func (l localEngine) Evaluate(_ context.Context, expression string) (float64, string, error) {
	res, err := l.calculator.EvaluateDetailed(expression)
	if err != nil {
		return 0, "", err
	}
	return res.Value, res.RPN(), nil
}

type remoteEngine struct {
	client *client.Client
}

func (r remoteEngine) Evaluate(ctx context.Context, expression string) (float64, string, error) {
	resp, err := r.client.Evaluate(ctx, expression, true)
	if err != nil {
		return 0, "", err
	}
	return resp.Res, resp.RPN, nil
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions with + - * / and parentheses.

Expressions are evaluated in-process unless --remote (or CALC_API_URL) points
at a running calc API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&opts.remote, "remote", os.Getenv(apiURLEnv), "Base URL of a calc API (env "+apiURLEnv+")")
	rootCmd.PersistentFlags().IntVarP(&opts.precision, "precision", "p", -1, "Round results to this many decimal places, -1 disables rounding")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newEvalCmd(opts),
		newReplCmd(opts),
		newEchoCmd(opts),
	)

	return rootCmd
}

func (o *options) engine() (engine, error) {
	if o.remote == "" {
		return localEngine{calculator: calc.New()}, nil
	}
	c, err := client.New(o.remote)
	if err != nil {
		return nil, err
	}
	slog.Debug("Using remote calc API", "url", o.remote)
	return remoteEngine{client: c}, nil
}

func (o *options) format(v float64) string {
	return strconv.FormatFloat(utils.RoundDecimal(v, o.precision), 'g', -1, 64)
}

// reportError prints err in the console format and hands it back so RunE fails.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	return err
}
