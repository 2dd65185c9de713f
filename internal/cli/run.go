package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"gradegen/internal/config"
	"gradegen/internal/core"
	"gradegen/internal/export"
)

// RunResult is the outcome of one interactive session.
type RunResult struct {
	ExitCode int

	// Assignments are the records the operator entered, in input order.
	Assignments []core.Assignment

	// Summary is nil when no records were entered.
	Summary *core.Summary

	// OutputPath is the CSV destination actually written. Empty when no
	// records were entered: the empty session produces no file.
	OutputPath string
}

// Run is the high-level entrypoint suitable for black-box tests. It accepts
// the argument slice (excluding argv[0]) plus the session's input and output
// streams, and returns the semantic exit code alongside any error.
func Run(args []string, stdin io.Reader, stdout io.Writer) (RunResult, error) {
	inv, err := ParseInvocation(args, config.Load())
	if err != nil {
		return RunResult{ExitCode: ExitCode(err)}, err
	}
	return Execute(inv, stdin, stdout)
}

// Execute maps a canonical Invocation onto one interactive session.
//
// Flow: collect records interactively, short-circuit the empty session
// (the summarizer is never invoked on an empty list), summarize, print the
// report, export the CSV, and confirm the saved path.
func Execute(inv Invocation, stdin io.Reader, stdout io.Writer) (RunResult, error) {
	res := RunResult{ExitCode: ExitSuccess}

	assignments, err := NewCollector(stdin, stdout).Collect()
	if err != nil {
		res.ExitCode = ExitCode(err)
		return res, err
	}
	res.Assignments = assignments

	if len(assignments) == 0 {
		fmt.Fprintln(stdout, "No assignments were entered. Exiting.")
		return res, nil
	}

	summary := core.Summarize(assignments)
	res.Summary = &summary
	WriteReport(stdout, assignments, summary)

	if err := export.WriteCSV(inv.OutputPath, assignments); err != nil {
		res.ExitCode = ExitExportFailure
		return res, err
	}
	res.OutputPath = inv.OutputPath

	abs, absErr := filepath.Abs(inv.OutputPath)
	if absErr != nil {
		abs = inv.OutputPath
	}
	fmt.Fprintf(stdout, "\nSaved CSV to %s\n", abs)
	return res, nil
}
