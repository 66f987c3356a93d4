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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// Circle returns a closed path approximating the circle with the given
// center and radius by four cubic Bézier curves. The path runs clockwise
// in a y-down coordinate system.
func Circle(c vec.Vec2, radius float64) *path.Data {
	k := kappa * radius
	pt := func(dx, dy float64) vec.Vec2 {
		return vec.Vec2{X: c.X + dx, Y: c.Y + dy}
	}
	return (&path.Data{}).
		MoveTo(pt(0, -radius)).
		CubeTo(pt(k, -radius), pt(radius, -k), pt(radius, 0)).
		CubeTo(pt(radius, k), pt(k, radius), pt(0, radius)).
		CubeTo(pt(-k, radius), pt(-radius, k), pt(-radius, 0)).
		CubeTo(pt(-radius, -k), pt(-k, -radius), pt(0, -radius)).
		Close()
}
