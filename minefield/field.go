// SPDX-License-Identifier: MIT

package minefield

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ndmines/neighborhood"
	"github.com/katalvlaran/ndmines/tensor"
)

// Field is an N-dimensional Minesweeper board. It exclusively owns its cells;
// all mutation goes through PlaceMines, Reveal and ToggleFlag.
type Field struct {
	cells     *tensor.Tensor[Cell] // board state, row-major
	mineCount int                  // fixed at construction
	rng       *rand.Rand           // nil means the global math/rand/v2 source
	placed    bool                 // PlaceMines has run
	log       logrus.FieldLogger
}

// RevealResult is the outcome of a Reveal call.
type RevealResult struct {
	State State // cell state after the call
	Lost  bool  // the cell is an uncovered mine
}

// Counts tallies cells per state.
type Counts struct {
	Covered   int
	Flagged   int
	Uncovered int
}

// New creates a field of the given shape with every cell Covered and no mines.
// Stage 1 (Validate): shape axes > 0, 0 ≤ mineCount ≤ cells.
// Stage 2 (Prepare): allocate the cell tensor.
// The random source is used by PlaceMines; nil selects the global source.
func New(shape []int, mineCount int, rng *rand.Rand, opts ...Option) (*Field, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cells, err := tensor.New[Cell](shape...)
	if err != nil {
		return nil, fmt.Errorf("minefield.New(%v): %w: %w", shape, ErrInvalidShape, err)
	}
	if mineCount < 0 || mineCount > cells.Len() {
		return nil, fmt.Errorf("minefield.New: %d mines for %d cells: %w",
			mineCount, cells.Len(), ErrInvalidMineCount)
	}

	return &Field{
		cells:     cells,
		mineCount: mineCount,
		rng:       rng,
		log:       o.log,
	}, nil
}

// shuffle permutes idx uniformly at random.
func (f *Field) shuffle(idx []int) {
	swap := func(i, j int) { idx[i], idx[j] = idx[j], idx[i] }
	if f.rng != nil {
		f.rng.Shuffle(len(idx), swap)
		return
	}
	rand.Shuffle(len(idx), swap)
}

// PlaceMines lays out MineCount mines uniformly at random and computes the
// adjacency counts. It must be called once; later calls return ErrMinesPlaced.
// Complexity: O(n + m·3^R) for n cells, m mines and rank R.
func (f *Field) PlaceMines() error {
	if f.placed {
		return ErrMinesPlaced
	}
	order := make([]int, f.cells.Len())
	for i := range order {
		order[i] = i
	}
	f.shuffle(order)

	coords := make([]tensor.Coord, 0, f.mineCount)
	for _, i := range order[:f.mineCount] {
		c, err := f.cells.CoordOf(i)
		if err != nil {
			return err
		}
		coords = append(coords, c)
	}

	return f.place(coords)
}

// PlaceMinesAt lays out mines at exactly the given coordinates, which is how
// a known board is reproduced. len(coords) must equal MineCount and the
// coordinates must be distinct; the same once-only rule as PlaceMines applies.
func (f *Field) PlaceMinesAt(coords ...tensor.Coord) error {
	if f.placed {
		return ErrMinesPlaced
	}
	if len(coords) != f.mineCount {
		return fmt.Errorf("minefield.PlaceMinesAt: %d coordinates for %d mines: %w",
			len(coords), f.mineCount, ErrInvalidMineCount)
	}
	seen := make(map[int]struct{}, len(coords))
	for _, c := range coords {
		off, err := f.cells.Offset(c)
		if err != nil {
			return err
		}
		if _, dup := seen[off]; dup {
			return fmt.Errorf("minefield.PlaceMinesAt: duplicate %v: %w", c, ErrInvalidMineCount)
		}
		seen[off] = struct{}{}
	}

	return f.place(coords)
}

// place marks coords as mines and increments each mine's neighbors.
// coords are in bounds and distinct.
func (f *Field) place(coords []tensor.Coord) error {
	shape := f.cells.Shape()
	for _, c := range coords {
		p, err := f.cells.Ptr(c)
		if err != nil {
			return err
		}
		p.Mine = true
		for _, nb := range neighborhood.Of(c, shape) {
			q, err := f.cells.Ptr(nb)
			if err != nil {
				return err
			}
			q.Adjacent++
		}
	}
	f.placed = true

	f.log.WithFields(logrus.Fields{
		"shape": shape,
		"mines": len(coords),
		"cells": f.cells.Len(),
	}).Debug("mines placed")

	return nil
}

// Reveal uncovers the cell at c.
//   - Covered: becomes Uncovered.
//   - Uncovered: no-op.
//   - Flagged: ErrInvalidTransition, state unchanged.
//
// Lost is true when the cell is an uncovered mine.
func (f *Field) Reveal(c tensor.Coord) (RevealResult, error) {
	p, err := f.cells.Ptr(c)
	if err != nil {
		return RevealResult{}, err
	}
	switch p.State {
	case Flagged:
		return RevealResult{State: Flagged}, fmt.Errorf("minefield.Reveal(%v): %s cell: %w",
			c, p.State, ErrInvalidTransition)
	case Covered:
		p.State = Uncovered
	}

	return RevealResult{State: p.State, Lost: p.Exploded()}, nil
}

// ToggleFlag flips Covered and Flagged. Uncovered cells are left unchanged.
// Returns the resulting state.
func (f *Field) ToggleFlag(c tensor.Coord) (State, error) {
	p, err := f.cells.Ptr(c)
	if err != nil {
		return 0, err
	}
	switch p.State {
	case Covered:
		p.State = Flagged
	case Flagged:
		p.State = Covered
	}

	return p.State, nil
}

// IsWon reports whether every mine is Covered or Flagged and every other
// cell is Uncovered.
// Complexity: O(n).
func (f *Field) IsWon() bool {
	won := true
	f.cells.ForEach(func(c Cell) {
		if c.Mine {
			won = won && c.State != Uncovered
		} else {
			won = won && c.State == Uncovered
		}
	})

	return won
}

// Cell returns a copy of the cell at c.
func (f *Field) Cell(c tensor.Coord) (Cell, error) {
	return f.cells.At(c)
}

// Snapshot returns a deep copy of the board for read-only consumers such as
// renderers.
// Complexity: O(n).
func (f *Field) Snapshot() *tensor.Tensor[Cell] {
	return f.cells.Clone()
}

// Shape returns a copy of the board shape.
func (f *Field) Shape() []int {
	return f.cells.Shape()
}

// Len returns the number of cells.
func (f *Field) Len() int {
	return f.cells.Len()
}

// MineCount returns the number of mines fixed at construction.
func (f *Field) MineCount() int {
	return f.mineCount
}

// Placed reports whether mines have been laid out.
func (f *Field) Placed() bool {
	return f.placed
}

// Stats counts cells per state.
// Complexity: O(n).
func (f *Field) Stats() Counts {
	var n Counts
	f.cells.ForEach(func(c Cell) {
		switch c.State {
		case Covered:
			n.Covered++
		case Flagged:
			n.Flagged++
		case Uncovered:
			n.Uncovered++
		}
	})

	return n
}

// RemainingMines is MineCount minus the number of flags; it goes negative
// when the player over-flags.
func (f *Field) RemainingMines() int {
	return f.mineCount - f.Stats().Flagged
}
