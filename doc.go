// SPDX-License-Identifier: MIT

// Package ndmines is Minesweeper generalised to boards of any rank, from a
// single cell (rank 0) to as many axes as memory allows.
//
// What is in the box?
//
//	tensor/        generic dense N-dimensional array, row-major storage
//	neighborhood/  Moore neighborhood of a coordinate (up to 3^R − 1 cells)
//	minefield/     cells, mine placement, reveal/flag state machine, win check
//	flood/         cascading reveal of zero-adjacency regions
//	render/        folds any rank into nested 2-D text panels
//	game/          input parsing and the terminal game loop
//	cmd/ndmines    the command (flags, env, YAML presets, logging)
//
// Quick example (rank 4, shape 2×2×2×3, one flagged mine, one flood):
//
//	+-------+
//	|F10 X10|
//	|X10 X10|
//	|       |
//	|X10 X10|
//	|X10 X10|
//	+-------+
//
// The last two axes form each inner grid; the two axes before them lay the
// grids out in rows and columns inside a box. Every further pair of axes adds
// one more level of boxes.
//
//	go install github.com/katalvlaran/ndmines/cmd/ndmines@latest
package ndmines
