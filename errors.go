package propgraph

import (
	"errors"
	"fmt"

	"github.com/hupe1980/propgraph/internal/indexer"
	"github.com/hupe1980/propgraph/internal/sparse"
	"github.com/hupe1980/propgraph/internal/store"
	"github.com/hupe1980/propgraph/internal/txn"
)

var (
	// ErrIndexOutOfBounds is returned when a vertex type, edge type or vertex
	// index is not valid for the requested access.
	ErrIndexOutOfBounds = indexer.ErrIndexOutOfBounds

	// ErrIndexSpaceExhausted is returned when all 2^32 indices of a kind are
	// in use.
	ErrIndexSpaceExhausted = indexer.ErrIndexSpaceExhausted

	// ErrVertexElementNotEmpty is returned by SetNewVertex when the vertex
	// already has a value of the vertex type.
	ErrVertexElementNotEmpty = store.ErrVertexElementNotEmpty

	// ErrTypeMismatch is returned when an operator's value type differs from
	// the value type of its product.
	ErrTypeMismatch = store.ErrTypeMismatch

	// ErrInvalidMask is returned when an operator mask addresses the wrong
	// kind of type.
	ErrInvalidMask = store.ErrInvalidMask

	// ErrDimensionMismatch is returned when operator operands do not fit.
	ErrDimensionMismatch = sparse.ErrDimensionMismatch

	// ErrTxClosed is returned when a closed transaction is used.
	ErrTxClosed = txn.ErrTxClosed
)

// IndexOutOfBoundsError reports an invalid index.
//
// Kind names what the index addresses ("vertex", "vertex type" or "edge
// type"). Class is set when the index is valid but of the other visibility
// class.
type IndexOutOfBoundsError = indexer.OutOfBoundsError

// VertexElementNotEmptyError reports a vertex that already holds a value of
// a vertex type.
type VertexElementNotEmptyError = store.VertexElementNotEmptyError

// TypeMismatchError reports an operator whose value type differs from its
// product's.
type TypeMismatchError = store.TypeMismatchError

func translateError(err error) error {
	if err == nil {
		return nil
	}

	// Engine range errors surface through unchecked paths only.
	if errors.Is(err, sparse.ErrIndexOutOfRange) {
		return fmt.Errorf("%w: %w", ErrIndexOutOfBounds, err)
	}

	return err
}
