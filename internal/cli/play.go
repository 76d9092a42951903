// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ndmines/flood"
	"github.com/katalvlaran/ndmines/game"
	"github.com/katalvlaran/ndmines/internal/config"
	"github.com/katalvlaran/ndmines/minefield"
)

// board is a resolved setup.
type board struct {
	shape []int
	mines int
}

func runGame(cmd *cobra.Command, opts *RootOptions) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	log, err := newLogger(cmd.ErrOrStderr(), env, opts.Verbose)
	if err != nil {
		return err
	}

	// One buffered reader shared by the prompts and the game loop.
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	b, err := resolveBoard(cmd, opts, env, in)
	if err != nil {
		return err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = env.Seed
	}
	if seed == 0 {
		if seed, err = config.NewSeed(); err != nil {
			return err
		}
	}

	field, err := minefield.New(b.shape, b.mines, config.NewRand(seed), minefield.WithLogger(log))
	if err != nil {
		return err
	}
	if err = field.PlaceMines(); err != nil {
		return err
	}

	clicks, err := flood.Clicks(field)
	if err != nil {
		return err
	}

	s := game.NewSession(field, out, game.WithLogger(log))
	log.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"shape":   b.shape,
		"mines":   b.mines,
		"seed":    seed,
		"clicks":  clicks,
	}).Info("game started")

	outcome, err := s.Play(in)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	log.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"outcome": outcome.String(),
		"moves":   s.Moves(),
	}).Info("game over")

	return nil
}

// resolveBoard takes the shape and mine count from --preset, then --dims and
// --mines, and prompts for whatever is still missing.
func resolveBoard(cmd *cobra.Command, opts *RootOptions, env config.Env, in *bufio.Reader) (board, error) {
	var b board
	minesSet := cmd.Flags().Changed("mines")

	switch {
	case opts.Preset != "":
		p, err := findPreset(opts, env, opts.Preset)
		if err != nil {
			return board{}, err
		}
		b.shape, b.mines = p.Dims, p.Mines
		if !minesSet {
			return b, nil
		}
	case opts.Dims != "":
		shape, err := game.ParseShape(opts.Dims)
		if err != nil {
			return board{}, fmt.Errorf("--dims: %w", err)
		}
		b.shape = shape
	default:
		shape, err := game.PromptShape(in, cmd.OutOrStdout())
		if err != nil {
			return board{}, err
		}
		b.shape = shape
	}

	if minesSet {
		b.mines = opts.Mines
		return b, nil
	}
	n, err := game.PromptMineCount(in, cmd.OutOrStdout(), b.shape)
	if err != nil {
		return board{}, err
	}
	b.mines = n

	return b, nil
}

// presetsPath prefers --presets over NDMINES_PRESETS.
func presetsPath(opts *RootOptions, env config.Env) string {
	if opts.PresetsPath != "" {
		return opts.PresetsPath
	}

	return env.PresetsPath
}

func findPreset(opts *RootOptions, env config.Env, name string) (config.Preset, error) {
	presets, err := config.ResolvePresets(presetsPath(opts, env))
	if err != nil {
		return config.Preset{}, err
	}
	p, ok := presets.Find(name)
	if !ok {
		return config.Preset{}, fmt.Errorf("%w: %q (have %v)", config.ErrUnknownPreset, name, presets.Names())
	}

	return p, nil
}
