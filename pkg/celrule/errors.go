package celrule

import "errors"

var (
	// ErrEnvironment is returned when a CEL environment cannot be created.
	ErrEnvironment = errors.New("failed to create CEL environment")

	// ErrCompile is returned when a check or prepare expression does not compile.
	ErrCompile = errors.New("failed to compile rule expression")

	// ErrEmptyCheck is returned when a rule has no check expression.
	ErrEmptyCheck = errors.New("rule check expression is empty")
)
