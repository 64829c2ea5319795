package masker

import (
	"errors"
	"fmt"
)

// ErrInvalidState matches every error returned by an operation on a Masker
// that has been destroyed.
var ErrInvalidState = errors.New("masker: invalid state")

// StateError reports a lifecycle operation invoked on a destroyed Masker.
type StateError struct {
	// Op is the operation that was attempted (e.g. "show").
	Op string
	// ID is the identity the Masker had before it was destroyed.
	ID string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("masker %s: %s after destroy", e.ID, e.Op)
}

// Is reports whether target is ErrInvalidState.
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// ErrContainerNotFound is returned by Render when the configured container
// selector matches nothing in the host.
var ErrContainerNotFound = errors.New("masker: container not found")

// ErrNodeNotFound is returned by Render when the sample markup did not
// produce an element carrying the mask id.
var ErrNodeNotFound = errors.New("masker: node not found after insert")
