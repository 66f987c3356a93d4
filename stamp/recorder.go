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

package stamp

import (
	"image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
)

// Stamp is a single renderer invocation seen by a [Recorder].
type Stamp struct {
	Center vec.Vec2
	Radius float64
	State  brush.ShaderState
}

// Recorder records every stamp before passing it on to Next.
// If Next is nil, nothing is drawn and Apply returns the bounding box of
// the stamp circle.
type Recorder struct {
	Next   brush.Renderer
	Stamps []Stamp
}

// Apply implements the [brush.Renderer] interface.
func (r *Recorder) Apply(dst draw.Image, center vec.Vec2, radius float64, st brush.ShaderState) rect.Rect {
	r.Stamps = append(r.Stamps, Stamp{Center: center, Radius: radius, State: st})
	if r.Next != nil {
		return r.Next.Apply(dst, center, radius, st)
	}
	return rect.Rect{
		LLx: center.X - radius,
		LLy: center.Y - radius,
		URx: center.X + radius,
		URy: center.Y + radius,
	}
}

// Reset discards the recorded stamps.
func (r *Recorder) Reset() {
	r.Stamps = r.Stamps[:0]
}
