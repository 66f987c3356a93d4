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

package testcases

import (
	"image/color"

	"seehuhn.de/go/brush"
)

var textureCases = []Scenario{
	{
		Name:     "ring",
		Width:    128,
		Height:   48,
		Params:   params(24, func(p *brush.Params) { p.Spacing = 0.5 }),
		Renderer: "ring",
		Events:   trace(wave(pt(16, 24), 96, 6, 1, 12), nil),
	},
	{
		Name:     "ring_dense",
		Width:    128,
		Height:   48,
		Params:   params(24, func(p *brush.Params) { p.Spacing = 0.05 }),
		Renderer: "ring",
		Events:   trace(line(pt(16, 24), pt(112, 24), 4), nil),
	},
	{
		Name:   "grain",
		Width:  128,
		Height: 48,
		Params: params(20, func(p *brush.Params) {
			p.Color = color.NRGBA{R: 40, G: 40, B: 40, A: 160}
			p.Spacing = 0.25
		}),
		Renderer: "grain",
		Events: trace(line(pt(12, 24), pt(116, 24), 6), pressure(func(u float64) float64 {
			return 1 - 0.6*u
		})),
	},
}
