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
	"time"

	"seehuhn.de/go/brush"
)

var dynamicsCases = []Scenario{
	{
		Name:   "pressure_ramp",
		Width:  128,
		Height: 48,
		Params: params(32),
		Events: trace(line(pt(12, 24), pt(116, 24), 10), pressure(func(u float64) float64 {
			return u
		})),
	},
	{
		Name:   "pressure_taper",
		Width:  128,
		Height: 48,
		Params: params(24),
		Events: trace(wave(pt(12, 24), 104, 8, 1, 20), pressure(func(u float64) float64 {
			return math.Sin(math.Pi * u)
		})),
	},
	{
		// Every sample has zero pressure, so all stamps have the minimum
		// radius.
		Name:   "pressure_zero",
		Width:  128,
		Height: 32,
		Params: params(20, func(p *brush.Params) { p.MinRadius = 2 }),
		Events: trace(line(pt(8, 16), pt(120, 16), 6), pressure(func(float64) float64 {
			return 0
		})),
	},
	{
		// The events carry no pressure; the brush default applies.
		Name:   "default_pressure",
		Width:  128,
		Height: 32,
		Params: params(20, func(p *brush.Params) { p.Pressure = 0.4 }),
		Events: trace(line(pt(8, 16), pt(120, 16), 6), nil),
	},
	{
		// Pressure jumps between consecutive samples.
		Name:   "pressure_steps",
		Width:  128,
		Height: 48,
		Params: params(28),
		Events: trace(line(pt(12, 24), pt(116, 24), 8), pressure(func(u float64) float64 {
			if int(math.Round(u*8))%2 == 0 {
				return 0.2
			}
			return 1
		})),
	},
	{
		// Timestamps and velocities, as delivered by a tablet driver.
		Name:   "timed",
		Width:  128,
		Height: 64,
		Params: params(10),
		Events: trace(arc(pt(64, 60), 50, 200, 340, 20), func(u float64) []brush.EventOption {
			return []brush.EventOption{
				brush.WithTime(time.Duration(u * float64(400*time.Millisecond))),
				brush.WithVelocity(300 * math.Sin(math.Pi*u)),
				brush.WithPressure(0.3 + 0.7*u),
			}
		}),
	},
}
