package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOp indicates a step whose op has no registered builder.
	ErrUnknownOp = errors.New("transform: unknown op")

	// ErrNonFinite indicates a step produced a NaN or infinite coordinate.
	ErrNonFinite = errors.New("transform: non-finite result")
)

// StepError wraps an error with the step that caused it.
type StepError struct {
	Index   int
	Step    Step
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
