package main

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/client"
	"github.com/spf13/cobra"
)

func newEchoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "echo",
		Short: "Check that the remote calc API answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.remote == "" {
				return reportError(cmd, errors.New("echo requires --remote or "+apiURLEnv))
			}
			c, err := client.New(opts.remote)
			if err != nil {
				return reportError(cmd, err)
			}

			res, err := c.Echo(cmd.Context())
			if err != nil {
				return reportError(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}
