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

// Package stamp provides renderers which draw brush stamps.
//
// All renderers here are deterministic: the pixels they produce depend only
// on their arguments and on the destination image.
package stamp

import (
	"image/draw"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
	"seehuhn.de/go/brush/raster"
)

// Disc draws each stamp as an anti-aliased filled circle in the stamp
// colour. This is the reference renderer.
type Disc struct {
	// CTM maps stroke coordinates to canvas pixels.
	// The zero matrix is treated as the identity.
	CTM matrix.Matrix

	rast *raster.Rasterizer
}

// Apply implements the [brush.Renderer] interface.
func (d *Disc) Apply(dst draw.Image, center vec.Vec2, radius float64, st brush.ShaderState) rect.Rect {
	ctm := effectiveCTM(d.CTM)
	d.rast = prepare(d.rast, dst, ctm)
	d.rast.Fill(raster.Circle(center, radius), func(y, xMin int, coverage []float32) {
		canvas.Composite(dst, y, xMin, coverage, st.Color, st.Blend)
	})
	return deviceBox(ctm, center, radius)
}

// Ring draws each stamp as the outline of a circle.
type Ring struct {
	// CTM maps stroke coordinates to canvas pixels.
	// The zero matrix is treated as the identity.
	CTM matrix.Matrix

	// Thickness is the line width as a fraction of the stamp radius.
	// Zero selects the default of 0.25.
	Thickness float64

	rast *raster.Rasterizer
}

const defaultThickness = 0.25

// Apply implements the [brush.Renderer] interface.
func (r *Ring) Apply(dst draw.Image, center vec.Vec2, radius float64, st brush.ShaderState) rect.Rect {
	thickness := r.Thickness
	if thickness <= 0 {
		thickness = defaultThickness
	}
	width := thickness * radius

	ctm := effectiveCTM(r.CTM)
	r.rast = prepare(r.rast, dst, ctm)
	r.rast.Width = width
	r.rast.Stroke(raster.Circle(center, radius).Iter(), func(y, xMin int, coverage []float32) {
		canvas.Composite(dst, y, xMin, coverage, st.Color, st.Blend)
	})
	return deviceBox(ctm, center, radius+width/2)
}

func effectiveCTM(m matrix.Matrix) matrix.Matrix {
	if m == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return m
}

// prepare returns a rasterizer clipped to the bounds of dst.
func prepare(r *raster.Rasterizer, dst draw.Image, ctm matrix.Matrix) *raster.Rasterizer {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if r == nil {
		r = raster.NewRasterizer(clip)
	} else {
		r.Reset(clip)
	}
	r.CTM = ctm
	return r
}

// deviceBox returns the device space bounding box of the circle, grown by
// one pixel on every side for anti-aliasing.
func deviceBox(ctm matrix.Matrix, center vec.Vec2, radius float64) rect.Rect {
	box := rect.Rect{
		LLx: math.Inf(1),
		LLy: math.Inf(1),
		URx: math.Inf(-1),
		URy: math.Inf(-1),
	}
	for _, c := range [4]vec.Vec2{
		{X: center.X - radius, Y: center.Y - radius},
		{X: center.X + radius, Y: center.Y - radius},
		{X: center.X - radius, Y: center.Y + radius},
		{X: center.X + radius, Y: center.Y + radius},
	} {
		p := apply(ctm, c)
		box.LLx = min(box.LLx, p.X)
		box.LLy = min(box.LLy, p.Y)
		box.URx = max(box.URx, p.X)
		box.URy = max(box.URy, p.Y)
	}
	box.LLx--
	box.LLy--
	box.URx++
	box.URy++
	return box
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
