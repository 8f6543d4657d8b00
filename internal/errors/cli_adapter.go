package errors

import (
	"fmt"
	"io"
	"log/slog"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitBadInput = 2
)

// CLIErrorAdapter handles error presentation and exit code determination.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	switch GetCategory(err) {
	case CategoryUsage, CategoryManifest:
		return ExitBadInput
	default:
		return ExitFailure
	}
}

// FormatError formats an error for display on stderr.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	ee, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	switch ee.Category {
	case CategoryUsage:
		if ee.Cause != nil {
			return fmt.Sprintf("%v\n%s", ee.Cause, ee.Message)
		}
		return ee.Message
	case CategoryManifest:
		if ee.Cause != nil {
			return fmt.Sprintf("%s: %v", ee.Message, ee.Cause)
		}
		return ee.Message
	default:
		if a.verbose {
			return "Error: " + ee.Error()
		}
		if ee.Cause != nil {
			return fmt.Sprintf("Error: %s: %v", ee.Message, ee.Cause)
		}
		return "Error: " + ee.Message
	}
}

// Handle writes the formatted error to w and returns the exit code.
// A nil error writes nothing and returns ExitOK.
func (a *CLIErrorAdapter) Handle(err error, w io.Writer) int {
	if err == nil {
		return ExitOK
	}

	code := a.ExitCodeFor(err)
	if a.shouldLog(err) {
		a.logger.Debug("command failed",
			slog.String("category", string(GetCategory(err))),
			slog.Int("exit_code", code),
			slog.String("error", err.Error()))
	}

	fmt.Fprintln(w, a.FormatError(err))
	return code
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	cat := GetCategory(err)
	return cat == CategoryInternal || cat == CategoryFileSystem
}
