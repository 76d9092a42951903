// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/katalvlaran/ndmines/tensor"
)

// must unwraps tensor results whose arguments are derived from the tensor's
// own shape; an error there is a bug in this package.
func must[T any](v T, err error) T {
	if err != nil {
		panic("render: " + err.Error())
	}

	return v
}

// check is must for calls that return only an error.
func check(err error) {
	if err != nil {
		panic("render: " + err.Error())
	}
}

// Fold renders t into a single block using glyph for each element.
//
// Stage 1: glyphs in row-major order.
// Stage 2: rank ≤ 2 returns directly (single line, line, grid).
// Stage 3: cut the last two axes into inner panels held in a rank R−2 tensor.
// Stage 4: reduce pairs of trailing outer axes into boxed panels.
// Stage 5: join a leftover single axis and box it.
//
// Complexity: O(n) glyph calls; text copying grows with nesting depth.
func Fold[T any](t *tensor.Tensor[T], glyph func(T) string) Block {
	glyphs := make([]string, 0, t.Len())
	t.ForEach(func(v T) {
		glyphs = append(glyphs, glyph(v))
	})

	shape := t.Shape()
	rank := len(shape)
	switch rank {
	case 0:
		return Block{glyphs[0]}
	case 1:
		return Block{strings.Join(glyphs, "")}
	case 2:
		return grid(glyphs, shape[0], shape[1])
	}

	h, w := shape[rank-2], shape[rank-1]
	panels := make([]Block, len(glyphs)/(h*w))
	for i := range panels {
		panels[i] = grid(glyphs[i*h*w:(i+1)*h*w], h, w)
	}
	boards := must(tensor.FromSlice(panels, shape[:rank-2]...))

	for boards.Rank() >= 2 {
		boards = foldPair(boards)
	}
	if boards.Rank() == 1 {
		boards = foldLine(boards)
	}

	return must(boards.At(tensor.Coord{}))
}

// grid lays out h·w glyphs as h lines of w glyphs each.
func grid(glyphs []string, h, w int) Block {
	out := make(Block, h)
	for r := range out {
		out[r] = strings.Join(glyphs[r*w:(r+1)*w], "")
	}

	return out
}

// foldPair reduces the last two axes of boards: for every prefix coordinate
// the rows × cols panels become one boxed panel.
func foldPair(boards *tensor.Tensor[Block]) *tensor.Tensor[Block] {
	shape := boards.Shape()
	r := len(shape)
	rows, cols := shape[r-2], shape[r-1]

	next := must(tensor.New[Block](shape[:r-2]...))
	for j := 0; j < next.Len(); j++ {
		prefix := must(next.CoordOf(j))

		var acc Block
		for k := 0; k < rows; k++ {
			line := panelAt(boards, prefix, k, 0)
			for l := 1; l < cols; l++ {
				line = JoinHorizontal(line, panelAt(boards, prefix, k, l), _hsep)
			}
			if k == 0 {
				acc = line
			} else {
				acc = JoinVertical(acc, line, _vsep)
			}
		}
		check(next.Set(prefix, Box(acc)))
	}

	return next
}

// foldLine joins the panels of a rank-1 tensor side by side and boxes them.
func foldLine(boards *tensor.Tensor[Block]) *tensor.Tensor[Block] {
	line := must(boards.At(tensor.Coord{0}))
	for i := 1; i < boards.Len(); i++ {
		line = JoinHorizontal(line, must(boards.At(tensor.Coord{i})), _hsep)
	}

	return must(tensor.FromSlice([]Block{Box(line)}))
}

// panelAt fetches boards[prefix..., k, l].
func panelAt(boards *tensor.Tensor[Block], prefix tensor.Coord, k, l int) Block {
	c := make(tensor.Coord, 0, len(prefix)+2)
	c = append(c, prefix...)
	c = append(c, k, l)

	return must(boards.At(c))
}
