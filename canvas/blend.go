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

package canvas

import (
	"image/color"
	"math"

	"seehuhn.de/go/brush"
)

// pixel holds non-premultiplied channel values in the range [0, 1].
type pixel struct {
	r, g, b, a float64
}

func pixelOf(c color.NRGBA) pixel {
	return pixel{
		r: float64(c.R) / 255,
		g: float64(c.G) / 255,
		b: float64(c.B) / 255,
		a: float64(c.A) / 255,
	}
}

func unpremultiply(p []uint8) pixel {
	if p[3] == 0 {
		return pixel{}
	}
	a := float64(p[3]) / 255
	return pixel{
		r: min(float64(p[0])/255/a, 1),
		g: min(float64(p[1])/255/a, 1),
		b: min(float64(p[2])/255/a, 1),
		a: a,
	}
}

func (p pixel) nrgba() color.NRGBA {
	return color.NRGBA{R: quantize(p.r), G: quantize(p.g), B: quantize(p.b), A: quantize(p.a)}
}

func (p pixel) storePremultiplied(dst []uint8) {
	dst[0] = quantize(p.r * p.a)
	dst[1] = quantize(p.g * p.a)
	dst[2] = quantize(p.b * p.a)
	dst[3] = quantize(p.a)
}

func quantize(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// blend composes src over dst. The effective source alpha sa already
// includes the coverage. The blend function is applied where both the
// source and the backdrop are opaque, as in the PDF and CSS compositing
// models.
func blend(dst, src pixel, sa float64, mode brush.BlendMode) pixel {
	if sa <= 0 {
		return dst
	}
	if mode == brush.Erase {
		dst.a *= 1 - sa
		if dst.a == 0 {
			return pixel{}
		}
		return dst
	}

	f := separable(mode)
	ab := dst.a
	mix := func(cb, cs float64) float64 {
		return (1-ab)*cs + ab*f(cb, cs)
	}

	ao := sa + ab*(1-sa)
	if ao <= 0 {
		return pixel{}
	}
	over := func(cb, cs float64) float64 {
		return (sa*mix(cb, cs) + ab*(1-sa)*cb) / ao
	}
	return pixel{
		r: over(dst.r, src.r),
		g: over(dst.g, src.g),
		b: over(dst.b, src.b),
		a: ao,
	}
}

func separable(mode brush.BlendMode) func(cb, cs float64) float64 {
	switch mode {
	case brush.Multiply:
		return func(cb, cs float64) float64 { return cb * cs }
	case brush.Screen:
		return func(cb, cs float64) float64 { return cb + cs - cb*cs }
	case brush.Darken:
		return math.Min
	case brush.Lighten:
		return math.Max
	case brush.Add:
		return func(cb, cs float64) float64 { return min(cb+cs, 1) }
	default:
		return func(_, cs float64) float64 { return cs }
	}
}
