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
	"image/draw"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"
)

// Subdivision parameters for walking a segment.
const (
	// minSubdivisions is the smallest number of chords used for a segment.
	minSubdivisions = 8

	// maxSubdivisions bounds the work for a single, very long segment.
	maxSubdivisions = 1 << 16

	// subdivisionPx is the approximate chord length in pixels.
	subdivisionPx = 2.0
)

// walker places stamps along a sequence of curve segments, keeping the
// distance between consecutive stamps fixed at step. The distance travelled
// since the last stamp is carried from one segment to the next in residual.
type walker struct {
	dst      draw.Image
	renderer Renderer
	params   Params
	step     float64
	t0       time.Duration // time of the first event

	residual float64 // arclength since the last stamp, 0 <= residual < step
	distance float64 // total arclength walked so far
	stamps   int     // number of stamps drawn
}

// stamp draws a single stamp at pos and returns the touched region.
func (w *walker) stamp(pos vec.Vec2, d dynamics) Dirty {
	st := ShaderState{
		Pos:      pos,
		Pressure: d.pressure,
		Velocity: d.velocity,
		Elapsed:  d.time - w.t0,
		Distance: w.distance,
		Index:    w.stamps,
		Color:    w.params.Color,
		Size:     w.params.Size,
		Blend:    w.params.Blend,
	}
	r := w.renderer.Apply(w.dst, pos, w.params.Radius(d.pressure), st)
	w.stamps++
	return DirtyOf(r)
}

// walk places stamps along s. The dynamics are interpolated from `from` at
// the start of the segment to `to` at its end.
//
// The curve is approximated by n chords of equal parameter length. Stamp
// positions are found by distance along the chords, while pressure,
// velocity and time are interpolated by curve parameter.
func (w *walker) walk(s segment, from, to dynamics) Dirty {
	n := int(math.Ceil(s.estimateLength() / subdivisionPx))
	n = min(max(n, minSubdivisions), maxSubdivisions)

	var dirty Dirty
	prev := s.P0
	for i := 1; i <= n; i++ {
		var next vec.Vec2
		if i == n {
			next = s.P2
		} else {
			next = s.at(float64(i) / float64(n))
		}

		l := next.Sub(prev).Length()
		used := 0.0 // part of this chord which lies before the latest stamp
		for w.residual+(l-used) >= w.step {
			adv := w.step - w.residual
			used += adv
			f := min(used/l, 1)
			t := (float64(i-1) + f) / float64(n)

			w.distance += adv
			w.residual = 0
			dirty = dirty.Union(w.stamp(lerpVec(prev, next, f), from.lerp(to, t)))
		}
		rest := max(l-used, 0)
		w.residual += rest
		w.distance += rest

		prev = next
	}
	return dirty
}
