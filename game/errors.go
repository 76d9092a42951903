// SPDX-License-Identifier: MIT

package game

import "errors"

// ErrBadInput is returned by the parsers for lines that are not a valid
// shape, mine count or move.
var ErrBadInput = errors.New("game: bad input")
