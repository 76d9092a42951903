// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ndmines/tensor"
)

//go:embed presets.yaml
var builtinPresets []byte

// Preset is a named board setup.
type Preset struct {
	// Name selects the preset on the command line.
	Name string `yaml:"name"`

	// Dims is the board shape, one positive length per axis.
	Dims []int `yaml:"dims"`

	// Mines is the number of mines, at most the product of Dims.
	Mines int `yaml:"mines"`

	// Description is shown in listings.
	Description string `yaml:"description,omitempty"`
}

// Presets is an ordered preset list. Later entries win on name clashes.
type Presets []Preset

type presetsFile struct {
	Presets Presets `yaml:"presets"`
}

// Find returns the last preset called name.
func (p Presets) Find(name string) (Preset, bool) {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Name == name {
			return p[i], true
		}
	}

	return Preset{}, false
}

// Names lists preset names in order, without duplicates.
func (p Presets) Names() []string {
	seen := make(map[string]bool, len(p))
	names := make([]string, 0, len(p))
	for _, pr := range p {
		if !seen[pr.Name] {
			seen[pr.Name] = true
			names = append(names, pr.Name)
		}
	}

	return names
}

// Validate checks the preset describes a playable board.
func (pr Preset) Validate() error {
	if pr.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPreset)
	}
	if len(pr.Dims) == 0 {
		return fmt.Errorf("%w: %s: dims must be non-empty", ErrInvalidPreset, pr.Name)
	}
	total, err := tensor.ElementCount(pr.Dims)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidPreset, pr.Name, err)
	}
	if pr.Mines < 0 || pr.Mines > total {
		return fmt.Errorf("%w: %s: %d mines for %d cells", ErrInvalidPreset, pr.Name, pr.Mines, total)
	}

	return nil
}

// ParsePresets decodes a presets document, rejecting unknown fields.
func ParsePresets(data []byte) (Presets, error) {
	var file presetsFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	for i, pr := range file.Presets {
		if err := pr.Validate(); err != nil {
			return nil, fmt.Errorf("presets[%d]: %w", i, err)
		}
	}

	return file.Presets, nil
}

// LoadPresets reads and parses a presets file.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	return ParsePresets(data)
}

// DefaultPresets returns the presets compiled into the binary.
func DefaultPresets() Presets {
	p, err := ParsePresets(builtinPresets)
	if err != nil {
		panic("config: builtin presets: " + err.Error())
	}

	return p
}

// ResolvePresets returns the built-ins followed by the entries of path, if
// path is set.
func ResolvePresets(path string) (Presets, error) {
	p := DefaultPresets()
	if path == "" {
		return p, nil
	}
	extra, err := LoadPresets(path)
	if err != nil {
		return nil, err
	}

	return append(p, extra...), nil
}
