// SPDX-License-Identifier: MIT

package game

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ndmines/tensor"
)

// Setup prompts.
const (
	MsgShapePrompt = "Please put board dimensions (separated by spaces)"
	MsgMinesPrompt = "Please put number of mines"
)

// PromptShape asks for board dimensions on out until in yields a valid line.
// It reads in only up to the end of that line, so PromptMineCount and Play
// can continue on the same reader. It returns io.ErrUnexpectedEOF if input
// ends first.
func PromptShape(in io.Reader, out io.Writer) ([]int, error) {
	for {
		if _, err := fmt.Fprintln(out, MsgShapePrompt); err != nil {
			return nil, err
		}
		line, err := readLine(in)
		if err != nil {
			return nil, eofUnexpected(err)
		}
		shape, err := ParseShape(line)
		if err == nil {
			return shape, nil
		}
		if _, err = fmt.Fprintln(out, badInput(err)); err != nil {
			return nil, err
		}
	}
}

// PromptMineCount prints the cell total for shape and asks for a mine count
// in [0, total] until in yields a valid line. Like PromptShape it leaves
// the rest of in unread.
func PromptMineCount(in io.Reader, out io.Writer, shape []int) (int, error) {
	total, err := tensor.ElementCount(shape)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	if _, err := fmt.Fprintf(out, "Total cells: %d\n", total); err != nil {
		return 0, err
	}
	for {
		if _, err := fmt.Fprintln(out, MsgMinesPrompt); err != nil {
			return 0, err
		}
		line, err := readLine(in)
		if err != nil {
			return 0, eofUnexpected(err)
		}
		n, err := ParseMineCount(line, total)
		if err == nil {
			return n, nil
		}
		if _, err = fmt.Fprintln(out, badInput(err)); err != nil {
			return 0, err
		}
	}
}

func eofUnexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
