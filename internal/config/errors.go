// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalidPreset is returned for presets with a missing name, a bad shape
// or a mine count outside [0, cells].
var ErrInvalidPreset = errors.New("config: invalid preset")

// ErrUnknownPreset is returned when a requested preset name is not defined.
var ErrUnknownPreset = errors.New("config: unknown preset")
