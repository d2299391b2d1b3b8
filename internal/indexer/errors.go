package indexer

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds is the sentinel wrapped by every OutOfBoundsError.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrIndexSpaceExhausted is returned when every representable index is in use.
	ErrIndexSpaceExhausted = errors.New("index space exhausted")
)

// OutOfBoundsError reports an index that is not valid for the requested
// access.
type OutOfBoundsError struct {
	// Kind names what the index addresses, e.g. "vertex type".
	Kind string
	// Index is the rejected index.
	Index uint32
	// Class is "public" or "private" when the index is valid but of the
	// other visibility class, empty otherwise.
	Class string
}

func (e *OutOfBoundsError) Error() string {
	if e.Class != "" {
		return fmt.Sprintf("%s index %d is not a valid %s index", e.Kind, e.Index, e.Class)
	}
	return fmt.Sprintf("%s index %d is not valid", e.Kind, e.Index)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrIndexOutOfBounds }
