package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/routinely/internal/logger"
)

// Sentinel errors for the failure taxonomy surfaced by every engine
// operation. Callers match with errors.Is and render short messages;
// raw internal errors are never shown verbatim.
var (
	// ErrCorruptState indicates a persisted document exists but cannot be
	// parsed. Never auto-repaired: overwriting corrupt state would destroy
	// history.
	ErrCorruptState = errors.New("corrupt state")

	// ErrNotFound indicates a referenced event or identifier does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or out-of-range input, rejected
	// before any state is mutated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIO indicates an underlying storage read/write failure. Propagated
	// to the caller, never retried internally.
	ErrIO = errors.New("storage failure")
)

// NotFoundf wraps ErrNotFound with an identifier-specific message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidInputf wraps ErrInvalidInput with a field-specific message.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
