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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
)

var lineCases = []Scenario{
	{
		// 100 pixels with a 20 pixel brush, delivered as a single move.
		Name:   "straight",
		Width:  128,
		Height: 32,
		Params: params(20),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(14, 16), brush.WithPressure(1)),
			event(brush.PhaseMove, pt(114, 16), brush.WithPressure(1)),
			event(brush.PhaseEnd, pt(114, 16)),
		},
	},
	{
		// The same line as "straight", sampled 50 times.
		Name:   "straight_dense",
		Width:  128,
		Height: 32,
		Params: params(20),
		Events: trace(append(line(pt(14, 16), pt(114, 16), 50), pt(114, 16)), nil),
	},
	{
		Name:   "diagonal",
		Width:  128,
		Height: 64,
		Params: params(6),
		Events: trace(line(pt(8, 8), pt(120, 56), 12), nil),
	},
	{
		Name:   "vertical",
		Width:  32,
		Height: 128,
		Params: params(9),
		Events: trace(line(pt(16.5, 120), pt(16.5, 8), 5), nil),
	},
	{
		Name:   "hairline",
		Width:  64,
		Height: 64,
		Params: params(0.5, func(p *brush.Params) { p.MinRadius = 0.25 }),
		Events: trace(line(pt(4, 60), pt(60, 4), 8), nil),
	},
	{
		// Individual stamps are visible.
		Name:   "sparse",
		Width:  128,
		Height: 32,
		Params: params(12, func(p *brush.Params) { p.Spacing = 1.5 }),
		Events: trace(line(pt(10, 16), pt(118, 16), 4), nil),
	},
	{
		// Unevenly spaced samples along a straight line.
		Name:   "uneven_samples",
		Width:  128,
		Height: 32,
		Params: params(10),
		Events: trace([]vec.Vec2{
			pt(8, 16), pt(9, 16), pt(30, 16), pt(31, 16), pt(32, 16),
			pt(90, 16), pt(100, 16), pt(120, 16),
		}, nil),
	},
}
