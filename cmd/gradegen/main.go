package main

import (
	"errors"
	"fmt"
	"os"

	"gradegen/internal/cli"
)

// main is a thin boundary: flags and environment are canonicalized into an
// Invocation before any interactive logic runs.
func main() {
	result, err := cli.Run(os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		var invErr *cli.InvocationError
		if errors.As(err, &invErr) {
			fmt.Fprintln(os.Stderr, invErr.Message)
			os.Exit(invErr.ExitCode)
		}
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(result.ExitCode)
}
