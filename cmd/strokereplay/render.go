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

package main

import (
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
	"seehuhn.de/go/brush/raster"
	"seehuhn.de/go/brush/stamp"
	"seehuhn.de/go/brush/testcases"
)

var spineColor = color.NRGBA{R: 230, G: 0, B: 0, A: 255}

type result struct {
	img    *image.RGBA
	dirty  brush.Dirty // in output pixels
	stamps int
	length float64
}

// render replays sc on a canvas which is scale times larger than the
// scenario's canvas and scales the result down.
func render(sc testcases.Scenario, scale int, spine bool) (*result, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	ctm := sc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	for i := range ctm {
		ctm[i] *= float64(scale)
	}

	r, err := stamp.New(sc.Renderer, ctm)
	if err != nil {
		return nil, err
	}
	rec := &stamp.Recorder{Next: r}

	w, h := sc.Width*scale, sc.Height*scale
	big := canvas.New(w, h, sc.BackgroundColor())

	curve := &path.Data{}
	hook := func(p0, p1, p2 vec.Vec2) {
		if len(curve.Cmds) == 0 {
			curve.MoveTo(p0)
		}
		curve.QuadTo(p1, p2)
	}
	dirty, err := testcases.Replay(big, sc, rec, brush.WithSegmentHook(hook))
	if err != nil {
		return nil, err
	}

	if spine && len(curve.Cmds) > 0 {
		rast := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
		rast.CTM = ctm
		rast.Width = 1 / matrixScale(sc.CTM)
		rast.Stroke(curve.Iter(), func(y, xMin int, coverage []float32) {
			canvas.Composite(big, y, xMin, coverage, spineColor, brush.Normal)
		})
	}

	res := &result{img: big, stamps: len(rec.Stamps)}
	for _, d := range dirty {
		res.dirty = res.dirty.Union(d)
	}
	if n := len(rec.Stamps); n > 0 {
		res.length = rec.Stamps[n-1].State.Distance
	}

	if scale > 1 {
		small := image.NewRGBA(image.Rect(0, 0, sc.Width, sc.Height))
		canvas.Downsample(small, big)
		res.img = small
		if box, ok := res.dirty.Rect(); ok {
			s := float64(scale)
			res.dirty = brush.DirtyOf(rect.Rect{LLx: box.LLx / s, LLy: box.LLy / s, URx: box.URx / s, URy: box.URy / s})
		}
	}
	return res, nil
}

// matrixScale returns the size of one stroke unit in scenario pixels.
func matrixScale(m matrix.Matrix) float64 {
	if m == (matrix.Matrix{}) {
		return 1
	}
	return max(vec.Vec2{X: m[0], Y: m[1]}.Length(), vec.Vec2{X: m[2], Y: m[3]}.Length())
}
