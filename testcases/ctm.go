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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// ctmStroke is drawn in a 32x32 user space around the origin.
var ctmStroke = trace(wave(pt(-14, 0), 28, 6, 1, 12), pressure(func(u float64) float64 {
	return 0.5 + 0.5*u
}))

var ctmCases = []Scenario{
	{
		Name:   "scale_2x",
		Width:  96,
		Height: 64,
		Params: params(6),
		Events: ctmStroke,
		CTM:    matrix.Scale(2, 2).Translate(48, 32),
	},
	{
		Name:   "scale_half",
		Width:  32,
		Height: 32,
		Params: params(6),
		Events: ctmStroke,
		CTM:    matrix.Scale(0.5, 0.5).Translate(16, 16),
	},
	{
		// Discs become ellipses.
		Name:   "scale_anisotropic",
		Width:  128,
		Height: 64,
		Params: params(6),
		Events: ctmStroke,
		CTM:    matrix.Scale(3, 1).Translate(64, 32),
	},
	{
		Name:   "rotate_30",
		Width:  96,
		Height: 96,
		Params: params(6),
		Events: ctmStroke,
		CTM:    rotScale(30, 2, 48, 48),
	},
	{
		Name:   "skew",
		Width:  96,
		Height: 64,
		Params: params(6),
		Events: ctmStroke,
		CTM:    matrix.Matrix{2, 0, 1, 2, 0, 0}.Translate(48, 32),
	},
}

// rotScale rotates by deg degrees and scales by f, then moves the origin
// to (x, y).
func rotScale(deg, f, x, y float64) matrix.Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{f * c, f * s, -f * s, f * c, x, y}
}
