// SPDX-License-Identifier: MIT

package minefield

import (
	"errors"

	"github.com/katalvlaran/ndmines/tensor"
)

var (
	// ErrInvalidShape is returned by New when some axis size is ≤ 0.
	ErrInvalidShape = errors.New("minefield: invalid shape")

	// ErrInvalidMineCount is returned by New when mineCount is outside [0, cells].
	ErrInvalidMineCount = errors.New("minefield: invalid mine count")

	// ErrMinesPlaced is returned when PlaceMines runs on a field that already has mines.
	ErrMinesPlaced = errors.New("minefield: mines already placed")

	// ErrInvalidTransition is returned when revealing a flagged cell.
	ErrInvalidTransition = errors.New("minefield: invalid cell transition")

	// ErrOutOfBounds is the tensor bounds sentinel, re-exported so callers of
	// this package need not import tensor to match it.
	ErrOutOfBounds = tensor.ErrOutOfBounds
)
