// SPDX-License-Identifier: MIT

package tensor

// ForEach calls f on every element in storage (row-major) order.
// Complexity: O(n).
func (t *Tensor[T]) ForEach(f func(T)) {
	for _, v := range t.data {
		f(v)
	}
}

// ForEachCoord calls f with the coordinate and value of every element in
// row-major order. The Coord passed to f is freshly allocated per call.
// Complexity: O(n·rank).
func (t *Tensor[T]) ForEachCoord(f func(Coord, T)) {
	c := make(Coord, len(t.shape))
	for i, v := range t.data {
		f(c.Clone(), v)
		t.advance(c, i)
	}
}

// advance increments c to the next row-major coordinate (an odometer step).
// i is the flat index c currently addresses; the last index leaves c untouched.
func (t *Tensor[T]) advance(c Coord, i int) {
	if i+1 >= len(t.data) {
		return
	}
	for axis := len(t.shape) - 1; axis >= 0; axis-- {
		c[axis]++
		if c[axis] < t.shape[axis] {
			return
		}
		c[axis] = 0
	}
}

// FindFirst scans in row-major order and returns the coordinate of the first
// element satisfying pred.
// Complexity: O(n) worst case.
func (t *Tensor[T]) FindFirst(pred func(T) bool) (Coord, bool) {
	for i, v := range t.data {
		if pred(v) {
			c, _ := t.CoordOf(i) // i < Len() by construction

			return c, true
		}
	}

	return nil, false
}

// Map returns a new tensor of the same shape with result[c] = f(t[c]),
// evaluated in row-major order.
// Complexity: O(n).
func Map[T, R any](t *Tensor[T], f func(T) R) *Tensor[R] {
	out := &Tensor[R]{shape: t.Shape(), data: make([]R, len(t.data))}
	for i, v := range t.data {
		out.data[i] = f(v)
	}

	return out
}
