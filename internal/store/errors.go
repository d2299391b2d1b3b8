package store

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexElementNotEmpty is wrapped by VertexElementNotEmptyError.
	ErrVertexElementNotEmpty = errors.New("vertex element not empty")

	// ErrTypeMismatch is returned when a typed operation addresses a
	// container of another value type.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrInvalidMask is returned when an operator mask addresses the wrong
	// kind of container.
	ErrInvalidMask = errors.New("invalid operator mask")
)

// VertexElementNotEmptyError reports a vertex element that already holds a
// value of the given vertex type.
type VertexElementNotEmptyError struct {
	VertexType uint32
	Index      uint32
}

func (e *VertexElementNotEmptyError) Error() string {
	return fmt.Sprintf("vertex %d already has a value of vertex type %d", e.Index, e.VertexType)
}

func (e *VertexElementNotEmptyError) Unwrap() error { return ErrVertexElementNotEmpty }

// TypeMismatchError reports a typed access to a container of another type.
type TypeMismatchError struct {
	Kind     string
	Index    uint32
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s %d has value type %s, not %s", e.Kind, e.Index, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }
