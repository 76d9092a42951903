package flood_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ndmines/flood"
	"github.com/katalvlaran/ndmines/minefield"
	"github.com/katalvlaran/ndmines/tensor"
)

// TestOpeningsLine: 0 1 M 1 0 has two single-cell openings.
func TestOpeningsLine(t *testing.T) {
	f := board(t, []int{5}, tensor.Coord{2})

	regions, err := flood.Openings(f)
	require.NoError(t, err)
	require.Equal(t, [][]tensor.Coord{{{0}}, {{4}}}, regions)

	clicks, err := flood.Clicks(f)
	require.NoError(t, err)
	require.Equal(t, 2, clicks)
}

// TestOpeningsNone: a mine in the middle of 3×3 leaves only numbers.
func TestOpeningsNone(t *testing.T) {
	f := board(t, []int{3, 3}, tensor.Coord{1, 1})

	regions, err := flood.Openings(f)
	require.NoError(t, err)
	require.Empty(t, regions)

	clicks, err := flood.Clicks(f)
	require.NoError(t, err)
	require.Equal(t, 8, clicks)
}

// TestOpeningsDiagonal joins zero cells that only touch at a corner.
func TestOpeningsDiagonal(t *testing.T) {
	// 4×4 with mines at (0,3) and (3,0): the 2×2 zero blocks in the top-left
	// and bottom-right corners touch only at (1,1)-(2,2).
	f := board(t, []int{4, 4}, tensor.Coord{0, 3}, tensor.Coord{3, 0})

	regions, err := flood.Openings(f)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.Equal(t, tensor.Coord{0, 0}, regions[0][0])
	require.Len(t, regions[0], 8)

	clicks, err := flood.Clicks(f)
	require.NoError(t, err)
	require.Equal(t, 1, clicks)
}

// TestClicksClearsBoard plays the counted clicks on random boards and wins.
func TestClicksClearsBoard(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		f, err := minefield.New([]int{5, 4, 3}, 6, seeded(seed))
		require.NoError(t, err)
		require.NoError(t, f.PlaceMines())

		want, err := flood.Clicks(f)
		require.NoError(t, err)
		regions, err := flood.Openings(f)
		require.NoError(t, err)

		used := 0
		for _, region := range regions {
			_, err = flood.Run(f, region[0])
			require.NoError(t, err)
			used++
		}
		for i := 0; i < f.Len(); i++ {
			c, err := f.Snapshot().CoordOf(i)
			require.NoError(t, err)
			cell, err := f.Cell(c)
			require.NoError(t, err)
			if cell.Mine || cell.State == minefield.Uncovered {
				continue
			}
			_, err = f.Reveal(c)
			require.NoError(t, err)
			used++
		}
		require.True(t, f.IsWon(), "seed %d", seed)
		require.Equal(t, want, used, "seed %d", seed)
	}
}

func TestOpeningsNil(t *testing.T) {
	_, err := flood.Openings(nil)
	require.ErrorIs(t, err, flood.ErrFieldNil)
	_, err = flood.Clicks(nil)
	require.ErrorIs(t, err, flood.ErrFieldNil)
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
