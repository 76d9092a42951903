// SPDX-License-Identifier: MIT

package flood

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/ndmines/minefield"
	"github.com/katalvlaran/ndmines/neighborhood"
	"github.com/katalvlaran/ndmines/tensor"
)

// Run uncovers the zero-adjacency region containing start and its border.
// It returns the coordinates it newly uncovered, in visit order.
//
// Errors: ErrFieldNil; minefield.ErrOutOfBounds for a bad start; ErrUnsafeStart
// when start is a mine or has mines around it. Errors from the field are
// returned unchanged together with the cells uncovered so far.
func Run(f *minefield.Field, start tensor.Coord, opts ...Option) ([]tensor.Coord, error) {
	if f == nil {
		return nil, ErrFieldNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate start.
	first, err := f.Cell(start)
	if err != nil {
		return nil, err
	}
	if first.Mine || first.Adjacent != 0 {
		return nil, fmt.Errorf("flood.Run(%v): %w", start, ErrUnsafeStart)
	}

	// index is a zero-size tensor used only for offset arithmetic.
	shape := f.Shape()
	index, err := tensor.New[struct{}](shape...)
	if err != nil {
		return nil, err
	}
	startOff, err := index.Offset(start)
	if err != nil {
		return nil, err
	}

	frontier := mapset.New[int]()
	visited := mapset.New[int]()
	var queue deque.Deque[int]
	frontier.Put(startOff)
	queue.PushBack(startOff)

	var revealed []tensor.Coord
	for queue.Len() > 0 {
		off := queue.PopFront()
		if visited.Has(off) {
			continue
		}
		visited.Put(off)

		c, err := index.CoordOf(off)
		if err != nil {
			return revealed, err
		}
		cell, err := f.Cell(c)
		if err != nil {
			return revealed, err
		}
		// Unreachable from a valid start: only zero-adjacency cells expand and
		// all of their neighbors are safe. The check keeps mines covered even
		// if that ever stops holding.
		if cell.Mine {
			o.log.WithField("coord", c.String()).Warn("flood reached a mine; left as is")
			continue
		}

		if cell.State != minefield.Uncovered {
			if cell.State == minefield.Flagged {
				if _, err = f.ToggleFlag(c); err != nil {
					return revealed, err
				}
			}
			if _, err = f.Reveal(c); err != nil {
				return revealed, err
			}
			revealed = append(revealed, c)
			o.onReveal(c.Clone())
		}

		if cell.Adjacent != 0 {
			continue
		}
		for _, nb := range neighborhood.Of(c, shape) {
			n, err := index.Offset(nb)
			if err != nil {
				return revealed, err
			}
			if frontier.Has(n) {
				continue
			}
			frontier.Put(n)
			queue.PushBack(n)
		}
	}

	o.log.WithFields(logrus.Fields{
		"start":    start.String(),
		"visited":  visited.Size(),
		"revealed": len(revealed),
	}).Debug("flood reveal finished")

	return revealed, nil
}
