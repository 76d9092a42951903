// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndmines/internal/config"
)

// NewPresetsCommand creates the presets command, which lists the boards
// available to --preset.
func NewPresetsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "presets",
		Short:         "List the named boards",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv()
			if err != nil {
				return err
			}
			presets, err := config.ResolvePresets(presetsPath(rootOpts, env))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range presets.Names() {
				p, _ := presets.Find(name)
				if _, err = fmt.Fprintf(w, "%-10s %-14v %3d mines  %s\n", p.Name, p.Dims, p.Mines, p.Description); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
