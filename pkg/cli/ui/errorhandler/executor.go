package errorhandler

import (
	"strings"

	"github.com/spf13/cobra"
)

// Executor type.

// Executor runs a Cobra command tree and turns its failure into a CommandError with a
// normalized message. The command's error stream is left untouched because the wrapped
// package manager writes to it directly.
type Executor struct {
	normalizer DefaultNormalizer
}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{normalizer: DefaultNormalizer{}}
}

// Execute runs cmd. It returns nil on success, or a *CommandError carrying the normalized
// message and the original error so errors.Is and errors.As keep working.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	return NewCommandError(e.normalizer.Normalize(err.Error()), err)
}

// CommandError type.

// CommandError is a Cobra execution failure with a message fit for the terminal.
type CommandError struct {
	message string
	cause   error
}

// NewCommandError wraps cause with a display message.
func NewCommandError(message string, cause error) *CommandError {
	return &CommandError{message: message, cause: cause}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		cause := e.cause.Error()
		if strings.Contains(e.message, cause) || strings.Contains(cause, e.message) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As consumers.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// DefaultNormalizer implementation.

// DefaultNormalizer cleans up error text produced by Cobra and wrapped errors.
type DefaultNormalizer struct{}

// Normalize trims whitespace, removes a leading "Error:" prefix and keeps any
// following lines such as usage hints.
func (DefaultNormalizer) Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
