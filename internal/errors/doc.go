// Package errors provides a categorized error type (ExemplarError) and the
// CLI adapter that turns it into a user-facing message and a process exit code.
package errors
