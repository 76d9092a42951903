// SPDX-License-Identifier: MIT

package neighborhood

import (
	"github.com/katalvlaran/ndmines/tensor"
)

// radix is the number of offsets per axis: −1, 0, +1.
const radix = 3

// pow3 returns 3^r.
func pow3(r int) int {
	n := 1
	for i := 0; i < r; i++ {
		n *= radix
	}

	return n
}

// self returns the counter value whose base-3 digits are all 1,
// i.e. the all-zero offset vector.
func self(r int) int {
	n := 0
	for i := 0; i < r; i++ {
		n = n*radix + 1
	}

	return n
}

// decode writes the offset vector for counter value n into dst (len(dst) == rank).
// The last axis is the least significant digit.
func decode(n int, dst []int) {
	for axis := len(dst) - 1; axis >= 0; axis-- {
		dst[axis] = n%radix - 1
		n /= radix
	}
}

// Offsets returns the 3^rank − 1 non-zero offset vectors in counter order.
// Rank 0 yields an empty slice.
func Offsets(rank int) []tensor.Coord {
	total := pow3(rank)
	skip := self(rank)
	out := make([]tensor.Coord, 0, total-1)
	for n := 0; n < total; n++ {
		if n == skip {
			continue
		}
		off := make(tensor.Coord, rank)
		decode(n, off)
		out = append(out, off)
	}

	return out
}

// Of returns the in-bounds Moore neighbors of c within shape.
// c is expected to have len(shape) components; candidates are kept only if
// tensor.InShape accepts them, so a c of the wrong rank yields no neighbors.
//
// Stage 1: walk the base-3 counter, skipping the self offset.
// Stage 2: candidate[i] = c[i] + offset[i].
// Stage 3: keep in-bounds candidates.
func Of(c tensor.Coord, shape []int) []tensor.Coord {
	rank := len(shape)
	if len(c) != rank {
		return nil
	}
	total := pow3(rank)
	skip := self(rank)

	var out []tensor.Coord
	off := make([]int, rank)
	for n := 0; n < total; n++ {
		if n == skip {
			continue
		}
		decode(n, off)
		cand := make(tensor.Coord, rank)
		for axis := range cand {
			cand[axis] = c[axis] + off[axis]
		}
		if tensor.InShape(cand, shape) {
			out = append(out, cand)
		}
	}

	return out
}

// AreNeighbors reports whether a and b are distinct coordinates of equal
// length that differ by at most 1 on every axis. No bounds are applied.
func AreNeighbors(a, b tensor.Coord) bool {
	if len(a) != len(b) || a.Equal(b) {
		return false
	}
	for i := range a {
		d := a[i] - b[i]
		if d < -1 || d > 1 {
			return false
		}
	}

	return true
}
