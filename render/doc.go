// SPDX-License-Identifier: MIT

// Package render turns N-dimensional boards into printable text by folding
// the outer axes into nested boxed 2-D panels.
//
// What
//
//   - Glyph: per-cell text (X covered, F flagged, B uncovered mine, digit otherwise).
//   - Fold: generic folding of any tensor.Tensor[T] given a glyph function.
//   - Render: Fold over a minefield.Field snapshot.
//   - Box, JoinHorizontal, JoinVertical: the Block primitives Fold is built from.
//
// Folding
//
//	Rank 0 is one line, rank 1 one line of glyphs, rank 2 a plain grid. For
//	rank R > 2 the last two axes form unboxed inner panels, collected in a
//	tensor of rank R−2. While that tensor has rank ≥ 2 its last two axes are
//	reduced: each row of panels is joined side by side with one space, the
//	rows are stacked with a blank line between them and the result is boxed.
//	If one axis is left over (odd R) its panels are joined side by side and
//	boxed once more.
//
//	A 4-D board of shape 2×2×2×2 with every cell covered renders as
//
//	+-----+
//	|XX XX|
//	|XX XX|
//	|     |
//	|XX XX|
//	|XX XX|
//	+-----+
//
// Determinism
//
//	Row-major axis order and fixed left-to-right, top-to-bottom joins make the
//	output identical for identical boards.
package render
