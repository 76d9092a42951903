package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultPresets are valid and ordered.
func TestDefaultPresets(t *testing.T) {
	p := DefaultPresets()
	require.Equal(t, []string{"classic", "line", "cube", "tesseract"}, p.Names())

	cube, ok := p.Find("cube")
	require.True(t, ok)
	require.Equal(t, []int{4, 4, 4}, cube.Dims)
	require.Equal(t, 6, cube.Mines)

	_, ok = p.Find("nope")
	require.False(t, ok)
}

// TestResolvePresetsOverride: file entries follow and override built-ins.
func TestResolvePresetsOverride(t *testing.T) {
	p, err := ResolvePresets("testdata/extra.yaml")
	require.NoError(t, err)
	require.Equal(t, []string{"classic", "line", "cube", "tesseract", "slab"}, p.Names())

	classic, ok := p.Find("classic")
	require.True(t, ok)
	require.Equal(t, []int{16, 16}, classic.Dims)
	require.Equal(t, 40, classic.Mines)
}

// TestLoadPresetsErrors covers I/O, decoding and validation failures.
func TestLoadPresetsErrors(t *testing.T) {
	_, err := LoadPresets("testdata/missing.yaml")
	require.ErrorContains(t, err, "failed to read presets file")

	_, err = LoadPresets("testdata/bad_mines.yaml")
	require.ErrorIs(t, err, ErrInvalidPreset)
	require.ErrorContains(t, err, "presets[0]")

	_, err = LoadPresets("testdata/unknown_field.yaml")
	require.ErrorContains(t, err, "failed to parse YAML")
}

// TestPresetValidate is table-driven over the rejection rules.
func TestPresetValidate(t *testing.T) {
	cases := []struct {
		name string
		pr   Preset
		ok   bool
	}{
		{"ok", Preset{Name: "a", Dims: []int{2, 2}, Mines: 4}, true},
		{"no mines", Preset{Name: "a", Dims: []int{1}}, true},
		{"no name", Preset{Dims: []int{2}, Mines: 1}, false},
		{"no dims", Preset{Name: "a"}, false},
		{"zero axis", Preset{Name: "a", Dims: []int{2, 0}}, false},
		{"negative mines", Preset{Name: "a", Dims: []int{2}, Mines: -1}, false},
		{"too many mines", Preset{Name: "a", Dims: []int{2}, Mines: 3}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.pr.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}
