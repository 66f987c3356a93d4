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
	"time"

	"seehuhn.de/go/brush"
)

var tapCases = []Scenario{
	{
		Name:   "dot",
		Width:  32,
		Height: 32,
		Params: params(20),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(16, 16)),
			event(brush.PhaseEnd, pt(16, 16)),
		},
	},
	{
		Name:   "dot_light",
		Width:  32,
		Height: 32,
		Params: params(20),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(16, 16), brush.WithPressure(0.2)),
			event(brush.PhaseEnd, pt(16, 16), brush.WithPressure(0.2)),
		},
	},
	{
		Name:   "dot_offset",
		Width:  32,
		Height: 32,
		Params: params(7),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(10.3, 21.7)),
			event(brush.PhaseEnd, pt(10.3, 21.7)),
		},
	},
	{
		// The pointer does not move between press and release.
		Name:   "zero_length",
		Width:  32,
		Height: 32,
		Params: params(12),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(16, 16), brush.WithTime(0)),
			event(brush.PhaseMove, pt(16, 16), brush.WithTime(10*time.Millisecond)),
			event(brush.PhaseMove, pt(16, 16), brush.WithTime(20*time.Millisecond)),
			event(brush.PhaseEnd, pt(16, 16), brush.WithTime(30*time.Millisecond)),
		},
	},
	{
		// A short flick, shorter than the stamp spacing.
		Name:   "flick",
		Width:  32,
		Height: 32,
		Params: params(16),
		Events: []brush.Event{
			event(brush.PhaseStart, pt(14, 16)),
			event(brush.PhaseMove, pt(15, 16)),
			event(brush.PhaseEnd, pt(16.5, 16.5)),
		},
	},
}
