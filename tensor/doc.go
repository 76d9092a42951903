// SPDX-License-Identifier: MIT

// Package tensor provides Tensor[T], a dense, fixed-shape, N-dimensional array
// with row-major linear storage and bounds-checked multi-index access.
//
// What
//
//   - Tensor[T] holds a shape (one positive size per axis) and a flat buffer of
//     Len() == product(shape) elements. Rank 0 is legal and holds exactly one element.
//   - Row-major layout: the last axis varies fastest, offset = Σ c[i]·Π_{j>i} shape[j].
//   - Coord is the addressing key: one component per axis.
//   - Constructors: New (zero values), NewFunc (supplier), Fill (single value),
//     FromSlice (flat row-major initializer).
//   - Accessors: At, Set, Ptr (in-place mutation), Offset, CoordOf, InBounds.
//   - Traversal: ForEach, ForEachCoord, FindFirst and the generic Map.
//
// Why
//
//   - A single homogeneous container for boards of any dimensionality: game
//     cells, rendered text panels, or any other element type.
//   - Offset and CoordOf are exact inverses, so algorithms can freely move
//     between coordinates and flat positions (sets keyed by offset, etc.).
//
// Errors
//
//   - ErrBadShape: some axis size is ≤ 0.
//   - ErrSizeMismatch: FromSlice got a slice whose length differs from the element count.
//   - ErrOutOfBounds: coordinate rank or range violation, or a flat index outside [0, Len()).
//
// Public methods never panic on user input; they return sentinel errors wrapped
// with the method name and the offending coordinate. Match them with errors.Is.
//
// Complexity
//
//   - Constructors, Map, ForEach, FindFirst, Clone: O(n) where n = Len().
//   - At, Set, Ptr, Offset, CoordOf, InBounds: O(rank).
package tensor
