// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has an axis of size ≤ 0
	// or more elements than an int can count.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrSizeMismatch indicates that a flat initializer does not hold exactly
	// product(shape) elements.
	ErrSizeMismatch = errors.New("tensor: initializer size mismatch")

	// ErrOutOfBounds indicates a coordinate of the wrong rank, a component
	// outside [0, shape[axis]), or a flat index outside [0, Len()).
	ErrOutOfBounds = errors.New("tensor: index out of bounds")
)

// Method tags used in error wrappers.
const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxPtr     = "Ptr"
	ctxOffset  = "Offset"
	ctxCoordOf = "CoordOf"
	ctxNew     = "New"
)

// tensorErrorf attaches the method tag and argument to a sentinel error.
func tensorErrorf(method string, arg any, err error) error {
	return fmt.Errorf("Tensor.%s(%v): %w", method, arg, err)
}
