// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ndmines/tensor"
)

// Action is what a Move asks for.
type Action uint8

const (
	// Reveal uncovers a cell, or takes the flag off a flagged one.
	Reveal Action = iota
	// Flag toggles a cell between Covered and Flagged.
	Flag
	// Quit ends the session.
	Quit
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Move is one parsed line of player input. Coord is nil for Quit.
type Move struct {
	Action Action
	Coord  tensor.Coord
}

// Outcome is the state of a session after a move.
type Outcome uint8

const (
	// Playing means the game goes on.
	Playing Outcome = iota
	// Won means every safe cell is uncovered.
	Won
	// Lost means a mine was uncovered.
	Lost
	// Abandoned means the player quit or input ended.
	Abandoned
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Abandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// flagToken prefixes a flag command; it is case-sensitive.
const flagToken = "F"

// ParseMove parses a move for a board of the given rank. Bounds are not
// checked here; the field reports them.
func ParseMove(line string, rank int) (Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 && isQuit(fields[0]) {
		return Move{Action: Quit}, nil
	}

	m := Move{Action: Reveal}
	if len(fields) == rank+1 {
		if fields[0] != flagToken {
			return Move{}, fmt.Errorf("%w: %q is not a flag command", ErrBadInput, fields[0])
		}
		m.Action = Flag
		fields = fields[1:]
	}
	if len(fields) != rank {
		return Move{}, fmt.Errorf("%w: want %d coordinates, got %d", ErrBadInput, rank, len(fields))
	}

	c, err := parseInts(fields)
	if err != nil {
		return Move{}, err
	}
	m.Coord = tensor.Coord(c)

	return m, nil
}

func isQuit(s string) bool {
	return strings.EqualFold(s, "q") || strings.EqualFold(s, "quit")
}

// MaxCells bounds the boards ParseShape accepts.
const MaxCells = 1 << 24

// ParseShape parses whitespace-separated axis lengths. At least one axis is
// required, every axis must be positive and the board may hold at most
// MaxCells cells.
func ParseShape(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no dimensions", ErrBadInput)
	}
	shape, err := parseInts(fields)
	if err != nil {
		return nil, err
	}
	for _, n := range shape {
		if n <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is not positive", ErrBadInput, n)
		}
	}
	if total, err := tensor.ElementCount(shape); err != nil || total > MaxCells {
		return nil, fmt.Errorf("%w: board larger than %d cells", ErrBadInput, MaxCells)
	}

	return shape, nil
}

// ParseMineCount parses a single integer in [0, total].
func ParseMineCount(line string, total int) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: want one number of mines", ErrBadInput)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadInput, fields[0])
	}
	if n < 0 || n > total {
		return 0, fmt.Errorf("%w: %d mines for %d cells", ErrBadInput, n, total)
	}

	return n, nil
}

func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadInput, f)
		}
		out[i] = n
	}

	return out, nil
}
