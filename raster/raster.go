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

// Package raster computes anti-aliased pixel coverage for brush stamps.
//
// Coverage is the exact fraction of each pixel's area inside the shape.
// It is delivered row by row to an [Emitter], which typically composites
// the row into a canvas.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Emitter receives the coverage values of one pixel row, starting at
// column xMin. The slice is only valid for the duration of the call.
type Emitter func(y, xMin int, coverage []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, used to find x at a given y
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge's line at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasterizer turns closed shapes and stroke outlines into coverage values.
// Internal buffers grow as needed and are reused, so that drawing many
// stamps of similar size does not allocate.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user coordinates to device (pixel) coordinates.
	// Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this integer-aligned device rectangle.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the chords used to approximate it. Must be positive.
	Flatness float64

	// Width is the stroke width in user coordinates.
	Width float64

	// Cap is the style used at the ends of open stroked paths.
	Cap graphics.LineCapStyle

	// Join is the style used at corners of stroked paths.
	Join graphics.LineJoinStyle

	// MiterLimit limits the length of miter joins. Must be at least 1.
	MiterLimit float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterised using a full 2D cell grid. Larger shapes are processed
	// one scanline at a time.
	denseLimit int

	edges  []edge
	bounds devBounds

	cover  []float32 // signed vertical extent of edges per cell
	area   []float32 // cover weighted by the horizontal position in the cell
	active []int     // indices of the edges crossing the current scanline
	used   []bool    // rows which received at least one edge

	// stroke outline construction
	segs    []strokeSegment
	subpath []subpathInfo
	dots    []vec.Vec2 // subpaths without extent
	outline []vec.Vec2 // outline vertices of all polygons
	polys   []int      // start index of each polygon in outline
}

// devBounds tracks the device space bounding box of the edge list.
type devBounds struct {
	xMin, xMax float64
	yMin, yMax float64
	empty      bool
}

func (b *devBounds) reset() {
	*b = devBounds{empty: true}
}

func (b *devBounds) add(x, y float64) {
	if b.empty {
		*b = devBounds{xMin: x, xMax: x, yMin: y, yMax: y}
		return
	}
	b.xMin = min(b.xMin, x)
	b.xMax = max(b.xMax, x)
	b.yMin = min(b.yMin, y)
	b.yMax = max(b.yMax, y)
}

// NewRasterizer returns a Rasterizer for the given device clip rectangle.
// Stroke parameters default to a round-capped, round-joined line of
// width 1.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	r.MiterLimit = defaultMiterLimit
	r.denseLimit = denseLimit
}

// toDevice applies the CTM to a point.
func (r *Rasterizer) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceScale returns the largest factor by which the CTM stretches a
// vector. It converts device tolerances into user space.
func (r *Rasterizer) deviceScale() float64 {
	m := r.CTM
	return max(math.Hypot(m[0], m[1]), math.Hypot(m[2], m[3]))
}

// Fill computes the coverage of the closed shape p, using the nonzero
// winding rule. Open subpaths are closed implicitly.
func (r *Rasterizer) Fill(p *path.Data, emit Emitter) {
	r.startEdges()

	var cur, first vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != first {
				r.addEdge(cur, first)
			}
			cur = p.Coords[k]
			first = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, p.Coords[k], p.Coords[k+1], r.addEdge)
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != first {
				r.addEdge(cur, first)
			}
			cur = first
		}
	}
	if cur != first {
		r.addEdge(cur, first)
	}

	r.scan(emit)
}

// flattenQuadratic approximates a quadratic Bézier by chords, calling emit
// for each of them. The number of chords follows from the deviation of
// the control point, measured in device space.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length() * r.deviceScale()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier by chords, calling emit for each
// of them. The chord count is given by Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2).Length()
	d2 := p1.Sub(p2.Mul(2)).Add(p3).Length()
	dev := max(d1, d2) * r.deviceScale()

	n := 1
	if f := math.Sqrt(3 * dev / (4 * r.Flatness)); f > 1 {
		n = int(math.Ceil(f))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) startEdges() {
	r.edges = r.edges[:0]
	r.bounds.reset()
}

// addEdge transforms a user space line segment to device space and adds
// it to the edge list. Horizontal edges carry no coverage and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	da := r.toDevice(a)
	db := r.toDevice(b)

	dy := db.Y - da.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: da.X, y0: da.Y,
		x1: db.X, y1: db.Y,
		dxdy: (db.X - da.X) / dy,
	})
	r.bounds.add(da.X, da.Y)
	r.bounds.add(db.X, db.Y)
}

// scan converts the edge list into coverage rows.
func (r *Rasterizer) scan(emit Emitter) {
	if len(r.edges) == 0 {
		return
	}

	b := &r.bounds
	xMin := max(int(math.Floor(b.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(b.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(b.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(b.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	if (xMax-xMin)*(yMax-yMin) <= r.denseLimit {
		r.scanDense(xMin, xMax, yMin, yMax, emit)
	} else {
		r.scanSparse(xMin, xMax, yMin, yMax, emit)
	}
}

// Each edge deposits two values into the cells of a scanline: cover, the
// signed height of the part of the edge inside the cell, and area, the
// cover weighted by the distance from the edge to the right cell border.
// Summing cover from the left and adding the local area gives the signed
// area of the shape inside each pixel; see resolveRow.

// deposit adds the contribution of one edge piece, of signed height h and
// mean horizontal position x, to cell pix. Pieces left of the row are
// folded into the first cell, pieces right of the row are dropped.
func deposit(cover, area []float32, xMin, xMax, pix int, h float32, x float64) {
	switch {
	case pix < xMin:
		cover[0] += h
		area[0] += h
	case pix < xMax:
		i := pix - xMin
		cover[i] += h
		area[i] += h * float32(float64(pix+1)-x)
	}
}

// accumulate adds the part of e within scanline y to the row buffers,
// which cover the columns [xMin, xMax).
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}

	var sign float32 = 1
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))

	if right < xMin || left == right {
		h := sign * float32(yBot-yTop)
		deposit(cover, area, xMin, xMax, left, h, e.xAt((yTop+yBot)/2))
		return
	}
	if left >= xMax {
		return
	}

	// The edge crosses several columns; split it at the column borders.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		deposit(cover, area, xMin, xMax, pix, sign*float32(hi-lo), e.xAt((lo+hi)/2))
	}
}

// resolveRow turns the accumulated cell values of one row into coverage,
// in place, and returns the non-zero part of the row and its offset.
func resolveRow(cover, area []float32) ([]float32, int) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}

	lo, hi := 0, len(cover)
	for lo < hi && cover[lo] == 0 {
		lo++
	}
	for hi > lo && cover[hi-1] == 0 {
		hi--
	}
	return cover[lo:hi], lo
}

// scanDense rasterises small shapes using a cell grid covering the whole
// bounding box, visiting every edge exactly once.
func (r *Rasterizer) scanDense(xMin, xMax, yMin, yMax int, emit Emitter) {
	w, h := xMax-xMin, yMax-yMin
	n := w * h
	r.cover = slices.Grow(r.cover[:0], n)[:n]
	r.area = slices.Grow(r.area[:0], n)[:n]
	r.used = slices.Grow(r.used[:0], h)[:h]
	clear(r.cover)
	clear(r.area)
	clear(r.used)

	for i := range r.edges {
		e := &r.edges[i]
		from := max(int(math.Floor(e.top())), yMin)
		to := min(int(math.Floor(e.bottom()))+1, yMax)
		for y := from; y < to; y++ {
			row := y - yMin
			off := row * w
			accumulate(e, y, r.cover[off:off+w], r.area[off:off+w], xMin, xMax)
			r.used[row] = true
		}
	}

	for row := range h {
		if !r.used[row] {
			continue
		}
		off := row * w
		if cov, dx := resolveRow(r.cover[off:off+w], r.area[off:off+w]); len(cov) > 0 {
			emit(yMin+row, xMin+dx, cov)
		}
	}
}

// scanSparse rasterises large shapes one scanline at a time, keeping a list
// of the edges which cross the current scanline.
func (r *Rasterizer) scanSparse(xMin, xMax, yMin, yMax int, emit Emitter) {
	w := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], w)[:w]
	r.area = slices.Grow(r.area[:0], w)[:w]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		for next < len(r.edges) && r.edges[next].top() < yf+1 {
			r.active = append(r.active, next)
			next++
		}

		// retire edges which end above this scanline
		r.active = slices.DeleteFunc(r.active, func(i int) bool {
			return r.edges[i].bottom() <= yf
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			accumulate(&r.edges[i], y, r.cover, r.area, xMin, xMax)
		}
		if cov, dx := resolveRow(r.cover, r.area); len(cov) > 0 {
			emit(y, xMin+dx, cov)
		}
	}
}

// Default values for rasterizer parameters.
const (
	// defaultFlatness is the default curve tolerance in device pixels.
	// 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript: joins with an interior
	// angle below about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	// denseLimit is the default for Rasterizer.denseLimit.
	denseLimit = 65536
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment which is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the smallest |sin| of the turning angle for
	// which a join is drawn.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves; cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
