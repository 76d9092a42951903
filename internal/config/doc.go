// SPDX-License-Identifier: MIT

// Package config loads ndmines settings from the environment and board
// presets from YAML.
//
// Environment
//
//	NDMINES_SEED       int64, 0 draws a random seed
//	NDMINES_LOG_LEVEL  logrus level name, default "warn"
//	NDMINES_PRESETS    path to a presets file merged over the built-ins
//
// Presets file
//
//	presets:
//	  - name: cube
//	    dims: [4, 4, 4]
//	    mines: 6
package config
