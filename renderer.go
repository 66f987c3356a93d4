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

import (
	"image/color"
	"image/draw"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ShaderState is the snapshot of dynamic parameters for a single stamp.
// It is passed to renderers by value.
type ShaderState struct {
	Pos      vec.Vec2
	Pressure float64
	Velocity float64

	// Elapsed is the time since the start of the stroke.
	Elapsed time.Duration

	// Distance is the arclength of the stroke up to this stamp.
	Distance float64

	// Index is the sequence number of the stamp within the stroke,
	// starting at 0.
	Index int

	Color color.NRGBA
	Size  float64
	Blend BlendMode
}

// Renderer draws a single stamp.
//
// Apply draws one stamp centred at center into dst and returns a rectangle
// (LLx, LLy being the minimum coordinates) which contains every pixel it
// changed. A larger rectangle only costs repaint work; a smaller one leaves
// stale pixels on screen.
//
// Implementations must be deterministic: the same arguments and the same
// destination contents must give the same pixels. Randomness in the stamp
// appearance must be derived from the arguments, for example by hashing
// coordinates.
//
// Panics raised by Apply are not recovered and reach the caller of the
// [Session] method.
type Renderer interface {
	Apply(dst draw.Image, center vec.Vec2, radius float64, st ShaderState) rect.Rect
}

// RendererFunc adapts an ordinary function to the [Renderer] interface.
type RendererFunc func(dst draw.Image, center vec.Vec2, radius float64, st ShaderState) rect.Rect

// Apply calls f(dst, center, radius, st).
func (f RendererFunc) Apply(dst draw.Image, center vec.Vec2, radius float64, st ShaderState) rect.Rect {
	return f(dst, center, radius, st)
}
