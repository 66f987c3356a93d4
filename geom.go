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

import "seehuhn.de/go/geom/vec"

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}

// segment is one quadratic Bézier piece of the smoothed stroke.
// P0 is the start point, P1 the control point, P2 the end point.
type segment struct {
	P0, P1, P2 vec.Vec2
}

// at evaluates the curve at parameter t in [0, 1].
func (s segment) at(t float64) vec.Vec2 {
	// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
	omt := 1 - t
	return s.P0.Mul(omt * omt).Add(s.P1.Mul(2 * omt * t)).Add(s.P2.Mul(t * t))
}

// estimateLength approximates the arclength of the segment as the chord
// length plus half the excess of the control polygon over the chord.
// The estimate is only used to choose a subdivision count and has no
// error bound.
func (s segment) estimateLength() float64 {
	chord := s.P2.Sub(s.P0).Length()
	poly := s.P1.Sub(s.P0).Length() + s.P2.Sub(s.P1).Length()
	return chord + (poly-chord)/2
}
