// SPDX-License-Identifier: MIT

package tensor

// InShape reports whether c is a valid coordinate for shape:
// len(c) == len(shape) and 0 ≤ c[i] < shape[i] on every axis.
// It never fails.
// Complexity: O(rank).
func InShape(c Coord, shape []int) bool {
	if len(c) != len(shape) {
		return false
	}
	for axis, v := range c {
		if v < 0 || v >= shape[axis] {
			return false
		}
	}

	return true
}

// InBounds reports whether c addresses an element of t.
// Complexity: O(rank).
func (t *Tensor[T]) InBounds(c Coord) bool {
	return InShape(c, t.shape)
}

// offset is the unchecked row-major formula, computed right to left with a
// running multiplier.
func (t *Tensor[T]) offset(c Coord) int {
	idx, mul := 0, 1
	for axis := len(t.shape) - 1; axis >= 0; axis-- {
		idx += c[axis] * mul
		mul *= t.shape[axis]
	}

	return idx
}

// Offset returns the flat row-major position of c.
// Stage 1 (Validate): InBounds, else ErrOutOfBounds.
// Stage 2 (Execute): Σ c[i]·Π_{j>i} shape[j].
// Complexity: O(rank).
func (t *Tensor[T]) Offset(c Coord) (int, error) {
	if !t.InBounds(c) {
		return 0, tensorErrorf(ctxOffset, c, ErrOutOfBounds)
	}

	return t.offset(c), nil
}

// CoordOf is the inverse of Offset: for each axis from last to first,
// c[axis] = i % shape[axis]; i /= shape[axis].
// Returns ErrOutOfBounds unless 0 ≤ i < Len(). A rank-0 tensor maps index 0
// to the empty Coord.
// Complexity: O(rank).
func (t *Tensor[T]) CoordOf(i int) (Coord, error) {
	if i < 0 || i >= len(t.data) {
		return nil, tensorErrorf(ctxCoordOf, i, ErrOutOfBounds)
	}
	c := make(Coord, len(t.shape))
	for axis := len(t.shape) - 1; axis >= 0; axis-- {
		c[axis] = i % t.shape[axis]
		i /= t.shape[axis]
	}

	return c, nil
}

// At returns the element at c.
// Complexity: O(rank).
func (t *Tensor[T]) At(c Coord) (T, error) {
	if !t.InBounds(c) {
		var zero T
		return zero, tensorErrorf(ctxAt, c, ErrOutOfBounds)
	}

	return t.data[t.offset(c)], nil
}

// Set stores v at c.
// Complexity: O(rank).
func (t *Tensor[T]) Set(c Coord, v T) error {
	if !t.InBounds(c) {
		return tensorErrorf(ctxSet, c, ErrOutOfBounds)
	}
	t.data[t.offset(c)] = v

	return nil
}

// Ptr returns a pointer to the element at c for in-place mutation.
// The pointer stays valid for the lifetime of t.
// Complexity: O(rank).
func (t *Tensor[T]) Ptr(c Coord) (*T, error) {
	if !t.InBounds(c) {
		return nil, tensorErrorf(ctxPtr, c, ErrOutOfBounds)
	}

	return &t.data[t.offset(c)], nil
}
