// SPDX-License-Identifier: MIT

package flood

import (
	"github.com/gammazero/deque"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/ndmines/minefield"
	"github.com/katalvlaran/ndmines/neighborhood"
	"github.com/katalvlaran/ndmines/tensor"
)

// Openings returns the zero regions of f: maximal Moore-connected sets of
// safe cells whose Adjacent count is 0. Cell states are ignored.
// Regions are ordered by their lowest offset; cells inside a region are in
// breadth-first order from that cell.
//
// Time O(n·3^R), memory O(n).
func Openings(f *minefield.Field) ([][]tensor.Coord, error) {
	if f == nil {
		return nil, ErrFieldNil
	}
	board := f.Snapshot()
	shape := board.Shape()
	seen := make([]bool, board.Len())

	var regions [][]tensor.Coord
	for i := 0; i < board.Len(); i++ {
		if seen[i] {
			continue
		}
		c, err := board.CoordOf(i)
		if err != nil {
			return nil, err
		}
		if cell, _ := board.At(c); !isZero(cell) {
			continue
		}

		// BFS to collect the region
		seen[i] = true
		var queue deque.Deque[tensor.Coord]
		queue.PushBack(c)
		var region []tensor.Coord
		for queue.Len() > 0 {
			u := queue.PopFront()
			region = append(region, u)
			for _, nb := range neighborhood.Of(u, shape) {
				v, err := board.Offset(nb)
				if err != nil {
					return nil, err
				}
				if seen[v] {
					continue
				}
				if cell, _ := board.At(nb); !isZero(cell) {
					continue
				}
				seen[v] = true
				queue.PushBack(nb)
			}
		}
		regions = append(regions, region)
	}

	return regions, nil
}

// Clicks returns the fewest reveals that clear f: one per opening, plus one
// for every safe numbered cell that does not border an opening.
func Clicks(f *minefield.Field) (int, error) {
	regions, err := Openings(f)
	if err != nil {
		return 0, err
	}
	board := f.Snapshot()
	shape := board.Shape()

	// offsets opened for free by some Run
	opened := mapset.New[int]()
	for _, region := range regions {
		for _, c := range region {
			for _, nb := range neighborhood.Of(c, shape) {
				off, err := board.Offset(nb)
				if err != nil {
					return 0, err
				}
				opened.Put(off)
			}
		}
	}

	clicks := len(regions)
	for i := 0; i < board.Len(); i++ {
		c, err := board.CoordOf(i)
		if err != nil {
			return 0, err
		}
		cell, _ := board.At(c)
		if !cell.Mine && cell.Adjacent > 0 && !opened.Has(i) {
			clicks++
		}
	}

	return clicks, nil
}

func isZero(c minefield.Cell) bool {
	return !c.Mine && c.Adjacent == 0
}
