// SPDX-License-Identifier: MIT

// Package neighborhood enumerates N-dimensional Moore neighborhoods.
//
// What
//
//   - Of(c, shape): every in-bounds coordinate that differs from c by at most 1
//     on every axis, excluding c itself.
//   - Offsets(rank): the 3^rank − 1 raw offset vectors in {−1,0,+1}^rank.
//   - AreNeighbors(a, b): the boundless pairwise check.
//
// How
//
//	Candidate offsets are produced by a mixed-radix (base-3) counter n over
//	[0, 3^R). Axis i reads digit (n / 3^(R-1-i)) mod 3, so axis 0 is the most
//	significant digit and the enumeration follows row-major axis order. Digit
//	d maps to offset d−1. The counter value whose digits are all 1 (the cell
//	itself) is skipped.
//
// Determinism
//
//	Results are returned in counter order; each offset is produced once, so
//	the slice never contains duplicates.
//
// Complexity (R = rank)
//
//   - Of:      O(3^R · R) time, O(3^R · R) memory.
//   - Offsets: O(3^R · R).
//   - AreNeighbors: O(R).
package neighborhood
