// SPDX-License-Identifier: MIT

// Package cli wires the ndmines command line: flags, environment, presets,
// logging and the game session.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds the flags of the root command.
type RootOptions struct {
	Dims        string // "3 3 3"; empty means prompt
	Mines       int    // negative means prompt (or preset)
	Seed        int64  // 0 means NDMINES_SEED, then random
	Preset      string
	PresetsPath string
	Verbose     bool
}

// NewRootCommand creates the root command for the ndmines CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "ndmines",
		Short: "Minesweeper in any number of dimensions",
		Long: `Play Minesweeper on a board with any number of axes.

Boards of rank three and above are printed as nested panels: the last two
axes form each small grid, and every further pair of axes arranges those
grids into rows and columns inside a box.

Moves are one integer per axis ("1 2 0"); prefix with F to toggle a flag
("F 1 2 0"); q quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.PresetsPath, "presets", "", "YAML presets file (default $NDMINES_PRESETS)")

	cmd.Flags().StringVar(&opts.Dims, "dims", "", `board dimensions, e.g. "4 4 4"`)
	cmd.Flags().IntVar(&opts.Mines, "mines", -1, "number of mines")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed for mine placement (default $NDMINES_SEED or random)")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "named board from the presets")
	cmd.MarkFlagsMutuallyExclusive("dims", "preset")

	cmd.AddCommand(NewPresetsCommand(opts))

	return cmd
}
