// SPDX-License-Identifier: MIT

package flood

import "errors"

var (
	// ErrFieldNil is returned when Run receives a nil field.
	ErrFieldNil = errors.New("flood: field is nil")

	// ErrUnsafeStart is returned when the start cell is a mine or has a
	// non-zero Adjacent count.
	ErrUnsafeStart = errors.New("flood: start cell is not a zero-adjacency safe cell")
)
