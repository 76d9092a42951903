// SPDX-License-Identifier: MIT

// Package minefield holds the state of an N-dimensional Minesweeper board.
//
// What
//
//   - Cell: per-position state (Covered, Flagged, Uncovered), mine flag and
//     adjacent-mine count.
//   - Field: owns one tensor.Tensor[Cell]; places mines, reveals cells,
//     toggles flags and reports wins.
//
// Cell state machine
//
//	Covered --ToggleFlag--> Flagged --ToggleFlag--> Covered
//	Covered --Reveal------> Uncovered (terminal)
//	Flagged --Reveal------> rejected with ErrInvalidTransition
//
// Setup
//
//	New validates the shape and mine count. PlaceMines must then be called
//	exactly once: it shuffles every flat index with the field's random source
//	(Fisher–Yates), marks the first mineCount positions as mines and increments
//	the Adjacent count of each of their Moore neighbors. A second call fails
//	with ErrMinesPlaced.
//
// Errors
//
//   - ErrInvalidShape, ErrInvalidMineCount: construction.
//   - ErrMinesPlaced: PlaceMines called twice.
//   - ErrOutOfBounds: coordinate violations, propagated unchanged from tensor.
//   - ErrInvalidTransition: Reveal on a flagged cell; state is unchanged.
//
// Concurrency
//
//	A Field is not safe for concurrent use. Readers that need a stable view
//	take a Snapshot.
package minefield
