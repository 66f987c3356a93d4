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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a stroked path, in user space.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // unit normal, T rotated by 90°
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// subpathInfo locates one flattened subpath in Rasterizer.segs.
type subpathInfo struct {
	start, end int
	closed     bool
}

// Stroke computes the coverage of the outline of p, using Width, Cap, Join
// and MiterLimit. All outline polygons are filled together with the
// nonzero rule, so that overlapping parts are covered once.
func (r *Rasterizer) Stroke(p path.Path, emit Emitter) {
	r.flattenStroke(p)

	r.outline = r.outline[:0]
	r.polys = r.polys[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginPoly()
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.endPoly()
		}
	}

	for _, sp := range r.subpath {
		segs := r.segs[sp.start:sp.end]
		first, last := segs[0], segs[len(segs)-1]

		r.beginPoly()
		if sp.closed {
			r.offsetSide(segs, false, true, d)
			r.offsetSide(segs, true, true, d)
		} else {
			r.addCap(first.A, first.T.Mul(-1), d)
			r.offsetSide(segs, false, false, d)
			r.addCap(last.B, last.T, d)
			r.offsetSide(segs, true, false, d)
		}
		r.endPoly()
	}

	r.startEdges()
	for i, start := range r.polys {
		end := len(r.outline)
		if i+1 < len(r.polys) {
			end = r.polys[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(emit)
}

func (r *Rasterizer) beginPoly() {
	r.polys = append(r.polys, len(r.outline))
}

// endPoly discards the current polygon if it has no area.
func (r *Rasterizer) endPoly() {
	start := r.polys[len(r.polys)-1]
	if len(r.outline)-start < 3 {
		r.outline = r.outline[:start]
		r.polys = r.polys[:len(r.polys)-1]
	}
}

func (r *Rasterizer) emitPoint(p vec.Vec2) {
	r.outline = append(r.outline, p)
}

// flattenStroke splits p into subpaths of straight segments. Subpaths
// which have no extent, but contain a drawing command or are closed, are
// collected in r.dots.
func (r *Rasterizer) flattenStroke(p path.Path) {
	r.segs = r.segs[:0]
	r.subpath = r.subpath[:0]
	r.dots = r.dots[:0]

	var cur, first vec.Vec2
	open := false  // inside a subpath
	drawn := false // the subpath has a drawing command
	start := 0

	finish := func(closed bool) {
		switch {
		case len(r.segs) > start:
			r.subpath = append(r.subpath, subpathInfo{start: start, end: len(r.segs), closed: closed})
		case drawn || closed:
			r.dots = append(r.dots, first)
		}
		start = len(r.segs)
		open = false
		drawn = false
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				finish(false)
			}
			cur = pts[0]
			first = cur
			open = true
		case path.CmdLineTo:
			if open {
				drawn = true
				r.addStrokeSegment(cur, pts[0])
				cur = pts[0]
			}
		case path.CmdQuadTo:
			if open {
				drawn = true
				r.flattenQuadratic(cur, pts[0], pts[1], r.addStrokeSegment)
				cur = pts[1]
			}
		case path.CmdCubeTo:
			if open {
				drawn = true
				r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addStrokeSegment)
				cur = pts[2]
			}
		case path.CmdClose:
			if open {
				if cur != first {
					r.addStrokeSegment(cur, first)
				}
				finish(true)
				cur = first
			}
		}
	}
	if open {
		finish(false)
	}
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// offsetSide appends the outline on the +N side of segs. If rev is set,
// the segments are traversed backwards, which produces the -N side of the
// original direction. Corners turning towards +N get the inner offset
// intersection, corners turning away get a join.
func (r *Rasterizer) offsetSide(segs []strokeSegment, rev, closed bool, d float64) {
	n := len(segs)
	get := func(i int) strokeSegment {
		if rev {
			return segs[n-1-i].reversed()
		}
		return segs[i]
	}

	if closed {
		first := get(0)
		r.emitPoint(first.A.Add(first.N.Mul(d)))
		for i := range n {
			seg, next := get(i), get((i+1)%n)
			sin := cross(seg.T, next.T)
			switch {
			case math.Abs(sin) < collinearityThreshold:
				r.emitPoint(seg.B.Add(seg.N.Mul(d)))
				r.emitPoint(next.A.Add(next.N.Mul(d)))
			case sin > 0:
				r.addInner(seg.B, seg, next, d)
			default:
				r.emitPoint(seg.B.Add(seg.N.Mul(d)))
				r.addJoin(seg.B, seg.T, next.T, d)
				r.emitPoint(next.A.Add(next.N.Mul(d)))
			}
		}
		return
	}

	skip := false
	for i := range n {
		seg := get(i)
		if !skip {
			r.emitPoint(seg.A.Add(seg.N.Mul(d)))
		}
		skip = false

		if i == n-1 {
			r.emitPoint(seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := get(i + 1)
		sin := cross(seg.T, next.T)
		switch {
		case math.Abs(sin) < collinearityThreshold:
			r.emitPoint(seg.B.Add(seg.N.Mul(d)))
		case sin > 0:
			skip = r.addInner(seg.B, seg, next, d)
		default:
			r.emitPoint(seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d)
		}
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// addCap adds the cap at the end point P of an open subpath. T points
// away from the line.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.emitPoint(ext.Add(N.Mul(d)))
		r.emitPoint(ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
	// butt caps need no extra points
}

// addInner handles the inner side of the corner at P between seg and next.
// If the two offset lines intersect, only the intersection is added and
// the result is true. Otherwise both offset points are added.
func (r *Rasterizer) addInner(P vec.Vec2, seg, next strokeSegment, d float64) bool {
	if q, ok := innerIntersection(P, seg.T, next.T, d); ok {
		r.emitPoint(q)
		return true
	}
	r.emitPoint(P.Add(seg.N.Mul(d)))
	r.emitPoint(P.Add(next.N.Mul(d)))
	return false
}

// innerIntersection returns the point where the +N offset lines of two
// segments meeting at P cross.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2) // cos(θ/2)
	if half < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y, Y: T1.X}.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (l * half))), true
}

// addJoin adds the join at P, on the +N side, where the tangent turns from
// T1 to T2.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		// the path doubles back: use caps instead of a join
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2), where
		// φ is the interior angle; sin(φ/2) = cos(θ/2).
		const eps = 1e-10
		half := math.Sqrt((1 + cos) / 2)
		if half <= 0 || 1/half > r.MiterLimit+eps {
			return // bevel
		}
		bis := N1.Add(vec.Vec2{X: -T2.Y, Y: T2.X})
		if l := bis.Length(); l > zeroLengthThreshold {
			r.emitPoint(P.Add(bis.Mul(d / (l * half))))
		}
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if sin < 0 {
			angle = -angle
		}
		r.addArc(P, d, N1, angle, false)
	}
	// bevel joins need no extra points
}

// addArc adds points along a circular arc around center. startDir is the
// unit vector towards the first point, sweep the signed angle in radians.
// If includeStart is false, the first point is assumed to be present
// already.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	rotate := func(a float64) vec.Vec2 {
		c, s := math.Cos(a), math.Sin(a)
		return vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
	}

	devRadius := radius * r.deviceScale()
	n := 1
	if devRadius >= r.Flatness {
		// A chord spanning angle θ deviates from the circle by
		// r(1-cos(θ/2)); solve for a deviation of Flatness.
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i := 1
	if includeStart {
		i = 0
	}
	for ; i <= n; i++ {
		r.emitPoint(center.Add(rotate(sweep * float64(i) / float64(n)).Mul(radius)))
	}
}
