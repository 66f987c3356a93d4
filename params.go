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

package brush

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidParams is returned (wrapped) when brush parameters fail
// validation.
var ErrInvalidParams = errors.New("invalid brush parameters")

// BlendMode selects how stamp colour is combined with the canvas.
type BlendMode int

// These are the supported blend modes.
const (
	Normal BlendMode = iota
	Multiply
	Screen
	Darken
	Lighten
	Add
	Erase

	numBlendModes
)

var blendModeNames = [numBlendModes]string{
	Normal:   "normal",
	Multiply: "multiply",
	Screen:   "screen",
	Darken:   "darken",
	Lighten:  "lighten",
	Add:      "add",
	Erase:    "erase",
}

func (m BlendMode) String() string {
	if m < 0 || m >= numBlendModes {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendModeNames[m]
}

// ParseBlendMode returns the blend mode with the given name.
// The empty string maps to [Normal].
func ParseBlendMode(s string) (BlendMode, error) {
	if s == "" {
		return Normal, nil
	}
	for m, name := range blendModeNames {
		if name == s {
			return BlendMode(m), nil
		}
	}
	return Normal, fmt.Errorf("unknown blend mode %q", s)
}

// Params describes a brush. A copy is taken when a stroke starts; the
// values are fixed for the lifetime of the stroke.
type Params struct {
	// Size is the brush diameter in pixels at pressure 1. Must be positive.
	Size float64

	// Color is the stamp colour (not premultiplied).
	Color color.NRGBA

	// Pressure is used for events which carry no pressure value.
	// Must be finite and non-negative.
	Pressure float64

	// Velocity is used for events which carry no velocity value.
	Velocity float64

	// Spacing is the distance between stamps, as a fraction of Size.
	// Must be positive.
	Spacing float64

	// MinRadius is the smallest stamp radius in pixels, used when the
	// pressure is close to zero.
	MinRadius float64

	// Blend is the compositing mode used by renderers.
	Blend BlendMode
}

// Default values for brush parameters.
const (
	defaultSpacing   = 0.2
	defaultMinRadius = 0.5
	defaultPressure  = 1.0

	// minStep is the smallest stamp spacing in pixels. Without this limit,
	// tiny brushes would place an unbounded number of stamps on each pixel.
	minStep = 1.0 / 16
)

// DefaultParams returns opaque black brush parameters of the given size,
// with default spacing, minimum radius and pressure.
func DefaultParams(size float64) Params {
	return Params{
		Size:      size,
		Color:     color.NRGBA{A: 255},
		Pressure:  defaultPressure,
		Spacing:   defaultSpacing,
		MinRadius: defaultMinRadius,
	}
}

// Validate checks that the parameters can be used for a stroke.
func (p *Params) Validate() error {
	switch {
	case !(p.Size > 0) || math.IsInf(p.Size, 0):
		return fmt.Errorf("%w: size %g", ErrInvalidParams, p.Size)
	case !(p.Spacing > 0) || math.IsInf(p.Spacing, 0):
		return fmt.Errorf("%w: spacing %g", ErrInvalidParams, p.Spacing)
	case !isFinite(p.MinRadius) || p.MinRadius < 0:
		return fmt.Errorf("%w: minimum radius %g", ErrInvalidParams, p.MinRadius)
	case !isFinite(p.Pressure) || p.Pressure < 0:
		return fmt.Errorf("%w: pressure %g", ErrInvalidParams, p.Pressure)
	case !isFinite(p.Velocity):
		return fmt.Errorf("%w: velocity %g", ErrInvalidParams, p.Velocity)
	case p.Blend < 0 || p.Blend >= numBlendModes:
		return fmt.Errorf("%w: %s", ErrInvalidParams, p.Blend)
	}
	return nil
}

// Radius returns the stamp radius for the given pressure.
func (p *Params) Radius(pressure float64) float64 {
	return max(p.MinRadius, p.Size*pressure*0.5)
}

// Step returns the arclength between consecutive stamps.
func (p *Params) Step() float64 {
	return max(minStep, p.Size*p.Spacing)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
