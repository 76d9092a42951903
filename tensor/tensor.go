// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Coord addresses one element: one component per axis, each in [0, shape[axis]).
// The zero-length Coord addresses the single element of a rank-0 tensor.
type Coord []int

// Equal reports whether c and other have the same length and components.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of c.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)

	return out
}

// String renders c as "(c0,c1,...)".
func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	sb.WriteByte(')')

	return sb.String()
}

// Tensor is a dense row-major N-dimensional array.
//   - shape holds one positive size per axis; rank == len(shape).
//   - data is a flat buffer of length product(shape) (1 for rank 0).
type Tensor[T any] struct {
	shape []int // per-axis sizes, immutable after construction
	data  []T   // row-major storage, len == ElementCount(shape)
}

// Compile-time check for fmt.Stringer conformance.
var _ fmt.Stringer = (*Tensor[int])(nil)

// ElementCount returns product(shape), or ErrBadShape if any axis is ≤ 0 or
// the product does not fit in an int. The empty shape has one element.
// Complexity: O(rank).
func ElementCount(shape []int) (int, error) {
	n := 1
	for axis, size := range shape {
		if size <= 0 {
			return 0, fmt.Errorf("axis %d has size %d: %w", axis, size, ErrBadShape)
		}
		if n > math.MaxInt/size {
			return 0, fmt.Errorf("shape %v: element count overflows int: %w", shape, ErrBadShape)
		}
		n *= size
	}

	return n, nil
}

// New creates a tensor of the given shape with zero-valued elements.
// Stage 1 (Validate): every axis > 0.
// Stage 2 (Prepare): copy the shape and allocate the flat buffer.
// Complexity: O(n).
func New[T any](shape ...int) (*Tensor[T], error) {
	n, err := ElementCount(shape)
	if err != nil {
		return nil, tensorErrorf(ctxNew, shape, err)
	}
	own := make([]int, len(shape))
	copy(own, shape)

	return &Tensor[T]{shape: own, data: make([]T, n)}, nil
}

// NewFunc creates a tensor whose elements are produced by supply,
// called exactly once per element in row-major order.
// Complexity: O(n) calls to supply.
func NewFunc[T any](supply func() T, shape ...int) (*Tensor[T], error) {
	t, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = supply()
	}

	return t, nil
}

// Fill creates a tensor with every element set to v.
// Complexity: O(n).
func Fill[T any](v T, shape ...int) (*Tensor[T], error) {
	return NewFunc(func() T { return v }, shape...)
}

// FromSlice creates a tensor from a flat slice consumed in row-major order.
// The slice is copied. Returns ErrSizeMismatch if len(values) != product(shape).
// Complexity: O(n).
func FromSlice[T any](values []T, shape ...int) (*Tensor[T], error) {
	t, err := New[T](shape...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(t.data) {
		return nil, fmt.Errorf("Tensor.FromSlice: got %d values for shape %v (%d elements): %w",
			len(values), shape, len(t.data), ErrSizeMismatch)
	}
	copy(t.data, values)

	return t, nil
}

// Shape returns a copy of the per-axis sizes.
func (t *Tensor[T]) Shape() []int {
	out := make([]int, len(t.shape))
	copy(out, t.shape)

	return out
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// Len returns the total number of elements.
func (t *Tensor[T]) Len() int {
	return len(t.data)
}

// Clone returns a deep copy sharing no storage with t.
// Complexity: O(n).
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)

	return &Tensor[T]{shape: t.Shape(), data: data}
}

// String implements fmt.Stringer with a compact shape summary.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v[%d]", t.shape, len(t.data))
}
