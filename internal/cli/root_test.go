package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndmines/game"
	"github.com/katalvlaran/ndmines/internal/config"
	"github.com/katalvlaran/ndmines/minefield"
)

// clearEnv isolates a test from the caller's NDMINES_* variables.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NDMINES_SEED", "")
	t.Setenv("NDMINES_LOG_LEVEL", "")
	t.Setenv("NDMINES_PRESETS", "")
}

// execute runs the root command with args and stdin, returning stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "ndmines", cmd.Use)
	assert.Contains(t, cmd.Long, "nested panels")

	sub, _, err := cmd.Find([]string{"presets"})
	require.NoError(t, err)
	assert.Equal(t, "presets", sub.Name())
}

func TestFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	mines := cmd.Flags().Lookup("mines")
	require.NotNil(t, mines)
	assert.Equal(t, "-1", mines.DefValue)

	for _, name := range []string{"dims", "seed", "preset"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("presets"))
}

// TestRunTranscripts pins full sessions against golden files.
func TestRunTranscripts(t *testing.T) {
	clearEnv(t)
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	out, _, err := execute(t, "0 0\n", "--dims", "1 3", "--mines", "0", "--seed", "1")
	require.NoError(t, err)
	g.Assert(t, "flags_win", []byte(out))

	out, _, err = execute(t, "2 2\n0\n0 0\n")
	require.NoError(t, err)
	g.Assert(t, "prompted_win", []byte(out))
}

// TestRunSeedReproducible: one seed, one layout.
func TestRunSeedReproducible(t *testing.T) {
	clearEnv(t)
	args := []string{"--dims", "6 6", "--mines", "8", "--seed", "99"}

	a, _, err := execute(t, "q\n", args...)
	require.NoError(t, err)
	b, _, err := execute(t, "q\n", args...)
	require.NoError(t, err)
	require.Equal(t, a, b)

	// The same seed from the environment gives the same board.
	field := func(seed int64) *minefield.Field {
		f, err := minefield.New([]int{6, 6}, 8, config.NewRand(seed))
		require.NoError(t, err)
		require.NoError(t, f.PlaceMines())
		return f
	}
	require.Equal(t, field(99).Snapshot(), field(99).Snapshot())
}

// TestRunPreset plays a built-in preset until quit.
func TestRunPreset(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "quit\n", "--preset", "classic", "--seed", "3")
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Equal(t, "XXXXXXXXX", lines[0])
	require.Equal(t, "Mines left: 10", lines[9])
	require.Equal(t, game.MsgMovePrompt, lines[10])
}

// TestRunPresetMinesOverride: --mines replaces the preset count.
func TestRunPresetMinesOverride(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "q\n", "--preset", "line", "--mines", "0", "--seed", "3")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, strings.Repeat("X", 20)+"\nMines left: 0\n"))
}

// TestRunVerboseLogs writes structured logs to stderr only.
func TestRunVerboseLogs(t *testing.T) {
	clearEnv(t)
	out, errOut, err := execute(t, "0\n", "--dims", "2", "--mines", "0", "--seed", "5", "-v")
	require.NoError(t, err)
	require.NotContains(t, out, "level=")
	require.Contains(t, errOut, "game started")
	require.Contains(t, errOut, "game over")
	require.Contains(t, errOut, "outcome=won")
}

// TestRunErrors returns configuration errors to main.
func TestRunErrors(t *testing.T) {
	clearEnv(t)

	_, _, err := execute(t, "", "--dims", "0 2", "--mines", "0")
	require.ErrorIs(t, err, game.ErrBadInput)

	_, _, err = execute(t, "", "--dims", "4294967296 4294967296", "--mines", "0")
	require.ErrorIs(t, err, game.ErrBadInput)

	_, _, err = execute(t, "", "--dims", "2 2", "--mines", "9")
	require.ErrorIs(t, err, minefield.ErrInvalidMineCount)

	_, _, err = execute(t, "", "--preset", "nope")
	require.ErrorIs(t, err, config.ErrUnknownPreset)

	_, _, err = execute(t, "", "--preset", "cube", "--dims", "2 2")
	require.Error(t, err)

	_, _, err = execute(t, "")
	require.ErrorContains(t, err, "unexpected EOF")

	t.Setenv("NDMINES_LOG_LEVEL", "shout")
	_, _, err = execute(t, "", "--dims", "2", "--mines", "0")
	require.ErrorContains(t, err, "NDMINES_LOG_LEVEL")
}

// TestPresetsCommand lists built-ins plus a presets file.
func TestPresetsCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := execute(t, "", "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "classic")
	assert.Contains(t, out, "tesseract")

	out, _, err = execute(t, "", "presets", "--presets", "../config/testdata/extra.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "slab")
	assert.Contains(t, out, "[16 16]")
}
