package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndmines/game"
	"github.com/katalvlaran/ndmines/tensor"
)

// TestParseMove covers reveal, flag, quit and every rejection.
func TestParseMove(t *testing.T) {
	cases := []struct {
		name string
		line string
		rank int
		want game.Move
		bad  bool
	}{
		{"reveal", "1 2 3", 3, game.Move{Action: game.Reveal, Coord: tensor.Coord{1, 2, 3}}, false},
		{"extra spaces", "  1\t2  ", 2, game.Move{Action: game.Reveal, Coord: tensor.Coord{1, 2}}, false},
		{"flag", "F 0 4", 2, game.Move{Action: game.Flag, Coord: tensor.Coord{0, 4}}, false},
		{"lowercase flag token", "f 0 4", 2, game.Move{}, true},
		{"quit", "q", 2, game.Move{Action: game.Quit}, false},
		{"quit word", "QUIT", 3, game.Move{Action: game.Quit}, false},
		{"rank 0 reveal", "", 0, game.Move{Action: game.Reveal, Coord: tensor.Coord{}}, false},
		{"rank 0 flag", "F", 0, game.Move{Action: game.Flag, Coord: tensor.Coord{}}, false},
		{"negative passes parse", "-1 0", 2, game.Move{Action: game.Reveal, Coord: tensor.Coord{-1, 0}}, false},
		{"too few", "1", 2, game.Move{}, true},
		{"too many", "1 2 3 4", 2, game.Move{}, true},
		{"long but not flag", "G 1 2", 2, game.Move{}, true},
		{"not integers", "a b", 2, game.Move{}, true},
		{"empty", "", 2, game.Move{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := game.ParseMove(tc.line, tc.rank)
			if tc.bad {
				require.ErrorIs(t, err, game.ErrBadInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestParseShape accepts positive axes only.
func TestParseShape(t *testing.T) {
	shape, err := game.ParseShape("3 3 3")
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3}, shape)

	_, err = game.ParseShape("4096 4097")
	require.ErrorIs(t, err, game.ErrBadInput) // over MaxCells

	for _, line := range []string{"", "   ", "3 0", "2 -1", "x 2", "4294967296 4294967296", "9223372036854775807 2"} {
		_, err = game.ParseShape(line)
		require.ErrorIs(t, err, game.ErrBadInput, "line %q", line)
	}
}

// TestParseMineCount bounds the count by the cell total.
func TestParseMineCount(t *testing.T) {
	n, err := game.ParseMineCount(" 5 ", 16)
	require.NoError(t, err)
	require.Equal(t, 5, n)

	n, err = game.ParseMineCount("16", 16)
	require.NoError(t, err)
	require.Equal(t, 16, n)

	for _, line := range []string{"", "17", "-1", "five", "1 2"} {
		_, err = game.ParseMineCount(line, 16)
		require.ErrorIs(t, err, game.ErrBadInput, "line %q", line)
	}
}

// TestStrings pins the Stringer output used in logs.
func TestStrings(t *testing.T) {
	require.Equal(t, "flag", game.Flag.String())
	require.Equal(t, "quit", game.Quit.String())
	require.Equal(t, "unknown", game.Action(9).String())
	require.Equal(t, "won", game.Won.String())
	require.Equal(t, "abandoned", game.Abandoned.String())
	require.Equal(t, "unknown", game.Outcome(9).String())
}
