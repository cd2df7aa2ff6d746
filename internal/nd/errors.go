package nd

import (
	"errors"
	"fmt"
)

// Domain errors for coordinate operations.
var (
	// ErrFeatureNotSupported indicates a call that needs an execution
	// context the host does not provide.
	ErrFeatureNotSupported = errors.New("nd: feature not supported in this execution context")

	// ErrDimensionMismatch indicates a component count that differs from the rank.
	ErrDimensionMismatch = errors.New("nd: dimension mismatch")

	// ErrOutOfRange indicates a coordinate or flat index outside its range.
	ErrOutOfRange = errors.New("nd: index out of range")

	// ErrUnknownOp indicates an operator symbol with no component-wise form.
	ErrUnknownOp = errors.New("nd: unknown operator")
)

// BoundsError is raised (as a panic value) by ndassert builds when a
// precondition on an index is violated.
type BoundsError struct {
	What  string
	Dim   int
	Value uint
	Limit uint
}

func (e *BoundsError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("nd: %s %d out of range [0, %d)", e.What, e.Value, e.Limit)
	}
	return fmt.Sprintf("nd: %s %d out of range [0, %d) in dimension %d", e.What, e.Value, e.Limit, e.Dim)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfRange
}
