// SPDX-License-Identifier: MIT

package render

import (
	"strconv"

	"github.com/katalvlaran/ndmines/minefield"
)

// Cell glyphs.
const (
	GlyphCovered = "X"
	GlyphFlagged = "F"
	GlyphMine    = "B"
)

// Glyph returns the text for one cell: X covered, F flagged, B an uncovered
// mine, otherwise the decimal Adjacent count.
func Glyph(c minefield.Cell) string {
	switch c.State {
	case minefield.Flagged:
		return GlyphFlagged
	case minefield.Uncovered:
		if c.Mine {
			return GlyphMine
		}
		return strconv.Itoa(c.Adjacent)
	default:
		return GlyphCovered
	}
}

// Render folds the current board of f into printable lines.
func Render(f *minefield.Field) []string {
	return Fold(f.Snapshot(), Glyph)
}
