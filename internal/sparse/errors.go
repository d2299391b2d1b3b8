package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned when operand dimensions are incompatible.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange is returned when an element index lies outside a
	// vector's size or a matrix's shape.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func dimensionError(op string, want, got string) error {
	return fmt.Errorf("%s: %w: expected %s, got %s", op, ErrDimensionMismatch, want, got)
}

func rangeError(i uint32, size int) error {
	return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, i, size)
}

func coordRangeError(c Coord, rows, cols int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrIndexOutOfRange, c.Row, c.Col, rows, cols)
}
