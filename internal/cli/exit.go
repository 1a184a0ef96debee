package cli

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors caused by how the command was invoked: unknown
// commands or flags, wrong arity, or unparseable argument values.
var ErrUsage = errors.New("invalid usage")

// Usage marks err as a usage error. The message is unchanged and err stays
// reachable through errors.Is and errors.As.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func (e *usageError) Is(target error) bool { return target == ErrUsage }

// ExitError signals a non-zero exit code for a command that already wrote
// its own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// ExitCode maps an error returned by Execute to a process exit status:
// 0 for nil, the code of an ExitError, 2 for usage errors, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	if errors.Is(err, ErrUsage) {
		return 2
	}
	return 1
}

// Silent reports whether err only carries an exit code and should not be
// printed.
func Silent(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr)
}
