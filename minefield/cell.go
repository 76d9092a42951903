// SPDX-License-Identifier: MIT

package minefield

// State is the visibility of a cell.
type State uint8

const (
	// Covered is the initial state.
	Covered State = iota
	// Flagged marks a cell the player believes is a mine.
	Flagged
	// Uncovered is terminal.
	Uncovered
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Uncovered:
		return "uncovered"
	default:
		return "unknown"
	}
}

// Cell is the per-position game state. Cells have no identity of their own;
// they are addressed by coordinate within a Field.
type Cell struct {
	State    State // visibility, Covered on creation
	Mine     bool  // set once by PlaceMines
	Adjacent int   // mines in the Moore neighborhood, set by PlaceMines
}

// Exploded reports whether this cell ends the game: an uncovered mine.
func (c Cell) Exploded() bool {
	return c.Mine && c.State == Uncovered
}
