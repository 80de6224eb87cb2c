package cli

import (
	"errors"
	"fmt"
)

// Exit codes of the check command.
const (
	ExitValid   = 0
	ExitInvalid = 1
	ExitAborted = 2
	ExitFailure = 3
)

// ExitError carries a process exit code out of a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitValid
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}
