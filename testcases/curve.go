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

	"seehuhn.de/go/geom/vec"
)

var curveCases = []Scenario{
	{
		Name:   "arc",
		Width:  96,
		Height: 64,
		Params: params(8),
		Events: trace(arc(pt(48, 56), 40, 180, 360, 16), nil),
	},
	{
		Name:   "circle",
		Width:  96,
		Height: 96,
		Params: params(6),
		Events: trace(arc(pt(48, 48), 36, 0, 360, 32), nil),
	},
	{
		// Few samples on a tight curve; the smoothing cuts the corners.
		Name:   "coarse_circle",
		Width:  96,
		Height: 96,
		Params: params(6),
		Events: trace(arc(pt(48, 48), 36, 0, 360, 6), nil),
	},
	{
		Name:   "zigzag",
		Width:  128,
		Height: 64,
		Params: params(5),
		Events: trace([]vec.Vec2{
			pt(8, 56), pt(32, 8), pt(56, 56), pt(80, 8), pt(104, 56), pt(120, 8),
		}, nil),
	},
	{
		Name:   "zigzag_dense",
		Width:  128,
		Height: 64,
		Params: params(5),
		Events: trace(polyline(6,
			pt(8, 56), pt(32, 8), pt(56, 56), pt(80, 8), pt(104, 56), pt(120, 8),
		), nil),
	},
	{
		// The stroke reverses direction.
		Name:   "hairpin",
		Width:  96,
		Height: 32,
		Params: params(6),
		Events: trace([]vec.Vec2{pt(8, 12), pt(88, 12), pt(8, 20)}, nil),
	},
	{
		Name:   "spiral",
		Width:  96,
		Height: 96,
		Params: params(3),
		Events: trace(spiral(pt(48, 48), 2, 42, 4, 160), nil),
	},
	{
		Name:   "wave",
		Width:  128,
		Height: 64,
		Params: params(4),
		Events: trace(wave(pt(8, 32), 112, 20, 3, 48), nil),
	},
}

// spiral returns n+1 points on an Archimedean spiral around c, with the
// radius growing from r0 to r1 over the given number of turns.
func spiral(c vec.Vec2, r0, r1, turns float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		u := float64(i) / float64(n)
		a := 2 * math.Pi * turns * u
		r := r0 + (r1-r0)*u
		pts[i] = vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// wave returns n+1 points on a sine wave starting at p.
func wave(p vec.Vec2, length, amplitude, periods float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		u := float64(i) / float64(n)
		pts[i] = vec.Vec2{
			X: p.X + length*u,
			Y: p.Y - amplitude*math.Sin(2*math.Pi*periods*u),
		}
	}
	return pts
}
