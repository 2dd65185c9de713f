package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gradegen/internal/config"
	"gradegen/internal/export"
)

const (
	ExitSuccess           = 0
	ExitInternalError     = 1
	ExitInvalidInvocation = 2
	ExitInputAborted      = 3
	ExitExportFailure     = 4
)

// Invocation is the canonical description of a run: every default is
// resolved here, before any interactive or export logic sees it.
type Invocation struct {
	// OutputPath is the CSV destination after flag > environment >
	// built-in default resolution.
	OutputPath string

	// OriginalOutput preserves the raw -output flag value.
	OriginalOutput string
}

type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ParseInvocation parses CLI flags into a canonical Invocation.
//
// Precedence for the CSV destination: the -output flag, then the
// GRADEGEN_OUTPUT environment variable carried in cfg, then the built-in
// grades.csv default.
func ParseInvocation(args []string, cfg config.Config) (Invocation, error) {
	fs := flag.NewFlagSet("gradegen", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // parsing errors are returned, not printed

	var output string
	fs.StringVar(&output, "output", "", "CSV destination path (optional).")

	if err := fs.Parse(args); err != nil {
		return Invocation{}, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return Invocation{}, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}

	inv := Invocation{OriginalOutput: output}
	switch {
	case strings.TrimSpace(output) != "":
		inv.OutputPath = output
	case strings.TrimSpace(cfg.OutputPath) != "":
		inv.OutputPath = cfg.OutputPath
	default:
		inv.OutputPath = export.DefaultPath
	}
	return inv, nil
}

// ExitCode extracts a semantic exit code from an error.
// Unknown errors map to ExitInternalError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	var inErr *InputError
	if errors.As(err, &inErr) {
		return ExitInputAborted
	}
	return ExitInternalError
}
