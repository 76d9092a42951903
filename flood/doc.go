// SPDX-License-Identifier: MIT

// Package flood implements the cascading reveal of zero-risk regions on a
// minefield.Field.
//
// What
//
//	Run starts from a non-mine cell whose Adjacent count is 0 and uncovers the
//	maximal Moore-connected region of zero-adjacency cells together with the
//	cells bordering it. Mines are never uncovered.
//
// How
//
//	A frontier set (initially {start}) and a visited set are kept as map sets
//	keyed by flat row-major offset; a FIFO work queue holds frontier members
//	not yet visited. Each dequeued cell is uncovered and marked visited; when
//	its Adjacent count is 0 every neighbor not yet in the frontier is added to
//	both the frontier and the queue. The loop ends once every frontier member
//	is visited.
//
// Flags
//
//	A flagged cell reached by the fill is a neighbor of a zero-adjacency cell
//	and therefore safe; its flag is cleared and it is uncovered.
//
// Idempotence
//
//	Running again over an already revealed region changes nothing and returns
//	no coordinates.
//
// Board analysis
//
//	Openings lists the zero regions of a field without touching its state,
//	and Clicks counts the fewest reveals that clear the board (one per
//	opening plus every numbered cell no opening borders).
//
// Complexity
//
//	Time O(n·3^R) worst case (each cell visited once, each visit enumerates
//	up to 3^R − 1 neighbors), memory O(n).
package flood
