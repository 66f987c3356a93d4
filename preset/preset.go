// seehuhn.de/go/brush - pressure-sensitive stroke stamping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package preset reads and writes brush presets in TOML format.
//
// A preset file contains one [[brush]] table per brush:
//
//	[[brush]]
//	name = "pencil"
//	renderer = "disc"
//	size = 3
//	color = "#202020e0"
//	spacing = 0.1
//	blend = "multiply"
//
// Only name and size are required. Fields which are missing or zero take
// the values from [brush.DefaultParams].
package preset

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/stamp"
)

// ErrInvalid is returned (wrapped) for preset files which decode but
// do not describe usable brushes.
var ErrInvalid = errors.New("invalid brush preset")

// Preset is a named brush configuration.
type Preset struct {
	Name      string  `toml:"name"`
	Renderer  string  `toml:"renderer,omitempty"`
	Size      float64 `toml:"size"`
	Color     string  `toml:"color,omitempty"`
	Pressure  float64 `toml:"pressure,omitzero"`
	Velocity  float64 `toml:"velocity,omitzero"`
	Spacing   float64 `toml:"spacing,omitzero"`
	MinRadius float64 `toml:"min_radius,omitzero"`
	Blend     string  `toml:"blend,omitempty"`
}

type file struct {
	Brush []Preset `toml:"brush"`
}

//go:embed default.toml
var defaultPresets string

// Default returns the built-in presets.
func Default() []Preset {
	presets, err := Decode(defaultPresets)
	if err != nil {
		panic(err)
	}
	return presets
}

// Decode parses presets from a TOML document.
func Decode(data string) ([]Preset, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, keys[0].String())
	}

	seen := make(map[string]bool, len(f.Brush))
	for i := range f.Brush {
		p := &f.Brush[i]
		if p.Name == "" {
			return nil, fmt.Errorf("%w: brush %d has no name", ErrInvalid, i+1)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate brush %q", ErrInvalid, p.Name)
		}
		seen[p.Name] = true

		if !stamp.Known(p.Renderer) {
			return nil, fmt.Errorf("%w: brush %q: unknown renderer %q", ErrInvalid, p.Name, p.Renderer)
		}
		if _, err := p.Params(); err != nil {
			return nil, fmt.Errorf("brush %q: %w", p.Name, err)
		}
	}
	return f.Brush, nil
}

// Load reads presets from r.
func Load(r io.Reader) ([]Preset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(string(data))
}

// LoadFile reads presets from the named file.
func LoadFile(name string) ([]Preset, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	presets, err := Load(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return presets, nil
}

// Write encodes presets as TOML.
func Write(w io.Writer, presets []Preset) error {
	return toml.NewEncoder(w).Encode(file{Brush: presets})
}

// Find returns the preset with the given name.
func Find(presets []Preset, name string) (*Preset, error) {
	for i := range presets {
		if presets[i].Name == name {
			return &presets[i], nil
		}
	}
	return nil, fmt.Errorf("brush %q not found", name)
}

// Params converts the preset into validated brush parameters.
func (p *Preset) Params() (brush.Params, error) {
	params := brush.DefaultParams(p.Size)
	if p.Color != "" {
		c, err := ParseColor(p.Color)
		if err != nil {
			return brush.Params{}, err
		}
		params.Color = c
	}
	if p.Pressure != 0 {
		params.Pressure = p.Pressure
	}
	params.Velocity = p.Velocity
	if p.Spacing != 0 {
		params.Spacing = p.Spacing
	}
	if p.MinRadius != 0 {
		params.MinRadius = p.MinRadius
	}
	mode, err := brush.ParseBlendMode(p.Blend)
	if err != nil {
		return brush.Params{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	params.Blend = mode

	if err := params.Validate(); err != nil {
		return brush.Params{}, err
	}
	return params, nil
}

// NewRenderer returns the stamp renderer selected by the preset.
func (p *Preset) NewRenderer(ctm matrix.Matrix) (brush.Renderer, error) {
	return stamp.New(p.Renderer, ctm)
}

// ParseColor parses a colour of the form "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: colour %q", ErrInvalid, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor is the inverse of [ParseColor].
func FormatColor(c color.NRGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
