// SPDX-License-Identifier: MIT

// Package game runs a terminal Minesweeper session on top of minefield,
// flood and render.
//
// Input format
//
//	3 4 1      reveal the cell at (3,4,1)
//	F 3 4 1    toggle the flag on (3,4,1)
//	q | quit   leave the game
//
// Coordinates are whitespace-separated integers, one per axis. Bad lines are
// reported and the player is prompted again; they never end the session.
//
// Rules applied by Session.Apply
//
//   - Reveal on a Covered cell uncovers it. A zero-adjacency cell also runs
//     flood.Run from it.
//   - Reveal on a Flagged cell removes the flag and leaves it Covered.
//   - Flag toggles Covered and Flagged; Uncovered cells are unchanged.
//   - An uncovered mine loses; minefield.Field.IsWon wins.
//
// Prompts and Play read line by line and never past the line they handle,
// so they can run in sequence on one reader such as os.Stdin. Wrapping it in
// a bufio.Reader once and passing that everywhere avoids byte-sized reads.
package game
