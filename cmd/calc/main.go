// Package main is the calc console client. It evaluates expressions in-process
// or against a running calc API.
package main

import (
	"context"
	"os"
)

func main() {
	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
