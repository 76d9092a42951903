// SPDX-License-Identifier: MIT

package render

import (
	"strings"
	"unicode/utf8"
)

// Box drawing literals.
const (
	_corner     = "+"
	_horizontal = "-"
	_vertical   = "|"
	_pad        = " "
	_hsep       = " " // between panels in a row
	_vsep       = ""  // line between rows of panels
)

// Block is an ordered list of text lines.
type Block []string

// Width returns the length in runes of the longest line.
func (b Block) Width() int {
	w := 0
	for _, line := range b {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}

	return w
}

// padRight extends s with spaces to width runes.
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(_pad, width-n)
	}

	return s
}

// Box surrounds b with a border: "+---+" rules sized to the longest line and
// "|" on both sides, padding every line with spaces to that width.
func Box(b Block) Block {
	w := b.Width()
	rule := _corner + strings.Repeat(_horizontal, w) + _corner

	out := make(Block, 0, len(b)+2)
	out = append(out, rule)
	for _, line := range b {
		out = append(out, _vertical+padRight(line, w)+_vertical)
	}

	return append(out, rule)
}

// JoinHorizontal concatenates left and right line by line with sep between.
// Lines of left are padded to its width so right starts in one column.
// Blocks of unequal height are joined as if the shorter one ended in empty lines.
func JoinHorizontal(left, right Block, sep string) Block {
	n := max(len(left), len(right))
	lw := left.Width()

	out := make(Block, n)
	for i := range out {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out[i] = padRight(l, lw) + sep + r
	}

	return out
}

// JoinVertical stacks top above bottom with one sep line between them.
func JoinVertical(top, bottom Block, sep string) Block {
	out := make(Block, 0, len(top)+len(bottom)+1)
	out = append(out, top...)
	out = append(out, sep)

	return append(out, bottom...)
}
