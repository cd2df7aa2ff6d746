package compute

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend indicates a backend name with no implementation.
	ErrUnknownBackend = errors.New("compute: unknown backend")
)

// KernelError wraps a kernel failure with the work-item it happened at.
type KernelError struct {
	Flat    uint
	Coord   string
	Wrapped error
}

func (e *KernelError) Error() string {
	return fmt.Sprintf("compute: kernel failed at %s (flat %d): %v", e.Coord, e.Flat, e.Wrapped)
}

func (e *KernelError) Unwrap() error {
	return e.Wrapped
}
