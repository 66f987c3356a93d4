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
	"image"
	"math"

	"seehuhn.de/go/geom/rect"
)

// Dirty is an axis-aligned region of the canvas which needs repainting.
// The zero value is the empty region.
//
// Union is associative and commutative, and the empty region is its
// identity, so per-stamp regions can be combined in any order and any
// grouping.
type Dirty struct {
	r  rect.Rect
	ok bool
}

// DirtyOf returns the region covering r. LLx and LLy are taken to be the
// minimum coordinates. Rectangles with a NaN coordinate give the empty
// region.
func DirtyOf(r rect.Rect) Dirty {
	if math.IsNaN(r.LLx) || math.IsNaN(r.LLy) || math.IsNaN(r.URx) || math.IsNaN(r.URy) {
		return Dirty{}
	}
	return Dirty{
		r: rect.Rect{
			LLx: min(r.LLx, r.URx),
			LLy: min(r.LLy, r.URy),
			URx: max(r.LLx, r.URx),
			URy: max(r.LLy, r.URy),
		},
		ok: true,
	}
}

// Union returns the smallest region enclosing both d and o.
func (d Dirty) Union(o Dirty) Dirty {
	if !d.ok {
		return o
	}
	if !o.ok {
		return d
	}
	return Dirty{
		r: rect.Rect{
			LLx: min(d.r.LLx, o.r.LLx),
			LLy: min(d.r.LLy, o.r.LLy),
			URx: max(d.r.URx, o.r.URx),
			URy: max(d.r.URy, o.r.URy),
		},
		ok: true,
	}
}

// IsEmpty reports whether d is the empty region.
func (d Dirty) IsEmpty() bool {
	return !d.ok
}

// Rect returns the bounding rectangle. The second return value is false
// for the empty region.
func (d Dirty) Rect() (rect.Rect, bool) {
	return d.r, d.ok
}

// Pixels returns the smallest integer rectangle containing the region.
// The result is empty for the empty region.
func (d Dirty) Pixels() image.Rectangle {
	if !d.ok {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(d.r.LLx)),
		int(math.Floor(d.r.LLy)),
		int(math.Ceil(d.r.URx)),
		int(math.Ceil(d.r.URy)),
	)
}

// Equal reports whether d and o describe the same region.
func (d Dirty) Equal(o Dirty) bool {
	if !d.ok || !o.ok {
		return d.ok == o.ok
	}
	return d.r == o.r
}
