package geom

import (
	"errors"
	"fmt"
)

// ErrInvalidAxis indicates an axis identifier outside {x, y, z}.
var ErrInvalidAxis = errors.New("geom: invalid axis")

// AxisError wraps ErrInvalidAxis with the rejected identifier.
type AxisError struct {
	Axis string
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidAxis.Error(), e.Axis)
}

func (e *AxisError) Unwrap() error {
	return ErrInvalidAxis
}
