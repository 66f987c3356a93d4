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

// blendStroke is a loop which crosses itself, so that overlapping stamps
// show how the blend mode accumulates.
var blendStroke = trace(polyline(4,
	pt(8, 40), pt(56, 8), pt(56, 56), pt(8, 24), pt(56, 24),
), nil)

func blendParams(c color.NRGBA, mode brush.BlendMode) brush.Params {
	return params(10, func(p *brush.Params) {
		p.Color = c
		p.Blend = mode
	})
}

var blendCases = []Scenario{
	{
		Name:       "normal_translucent",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{R: 0, G: 80, B: 200, A: 64}, brush.Normal),
		Background: color.NRGBA{R: 250, G: 240, B: 200, A: 255},
		Events:     blendStroke,
	},
	{
		Name:       "multiply",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{R: 255, G: 40, B: 40, A: 255}, brush.Multiply),
		Background: color.NRGBA{R: 160, G: 200, B: 255, A: 255},
		Events:     blendStroke,
	},
	{
		Name:       "screen",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{R: 40, G: 80, B: 255, A: 255}, brush.Screen),
		Background: color.NRGBA{R: 60, G: 20, B: 20, A: 255},
		Events:     blendStroke,
	},
	{
		// A highlighter: translucent and never lighter than the page.
		Name:   "darken",
		Width:  64,
		Height: 64,
		Params: blendParams(color.NRGBA{R: 255, G: 220, B: 0, A: 128}, brush.Darken),
		Events: blendStroke,
	},
	{
		Name:       "lighten",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{R: 200, G: 200, B: 255, A: 255}, brush.Lighten),
		Background: color.NRGBA{R: 30, G: 30, B: 60, A: 255},
		Events:     blendStroke,
	},
	{
		Name:       "add",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{R: 20, G: 10, B: 0, A: 255}, brush.Add),
		Background: color.NRGBA{R: 40, G: 40, B: 40, A: 255},
		Events:     blendStroke,
	},
	{
		Name:       "erase",
		Width:      64,
		Height:     64,
		Params:     blendParams(color.NRGBA{A: 255}, brush.Erase),
		Background: color.NRGBA{R: 200, G: 30, B: 30, A: 255},
		Events:     blendStroke,
	},
}
