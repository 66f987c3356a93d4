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

// Package testcases contains recorded strokes which are used for tests,
// reference images and the strokereplay command.
package testcases

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
)

// Scenario is a single recorded stroke.
type Scenario struct {
	Name       string        // lowercase a-z, 0-9 and _ only
	Width      int           // canvas width in pixels
	Height     int           // canvas height in pixels
	Params     brush.Params  // brush parameters
	Renderer   string        // stamp renderer name, empty for "disc"
	Background color.NRGBA   // canvas colour (zero value means white)
	CTM        matrix.Matrix // stroke to canvas transformation (zero value means identity)
	Events     []brush.Event // start, any number of moves, end
}

// BackgroundColor returns the canvas colour of the scenario.
func (sc *Scenario) BackgroundColor() color.NRGBA {
	if sc.Background == (color.NRGBA{}) {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return sc.Background
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func event(phase brush.Phase, p vec.Vec2, opts ...brush.EventOption) brush.Event {
	ev, err := brush.NewEvent(phase, p, opts...)
	if err != nil {
		panic(err)
	}
	return ev
}

// trace turns a polyline of at least two points into the events of one
// stroke. If dyn is not nil, it is called with the fraction of the stroke
// (by event count) to obtain the options for each event.
func trace(pts []vec.Vec2, dyn func(u float64) []brush.EventOption) []brush.Event {
	n := len(pts)
	events := make([]brush.Event, 0, n)
	for i, p := range pts {
		var opts []brush.EventOption
		if dyn != nil {
			opts = dyn(float64(i) / float64(n-1))
		}
		phase := brush.PhaseMove
		switch i {
		case 0:
			phase = brush.PhaseStart
		case n - 1:
			phase = brush.PhaseEnd
		}
		events = append(events, event(phase, p, opts...))
	}
	return events
}

// line returns n+1 equally spaced points from a to b.
func line(a, b vec.Vec2, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		t := float64(i) / float64(n)
		pts[i] = a.Add(b.Sub(a).Mul(t))
	}
	pts[n] = b
	return pts
}

// polyline returns the given corner points, with n-1 additional points
// on each edge.
func polyline(n int, corners ...vec.Vec2) []vec.Vec2 {
	pts := []vec.Vec2{corners[0]}
	for i := 1; i < len(corners); i++ {
		pts = append(pts, line(corners[i-1], corners[i], n)[1:]...)
	}
	return pts
}

// arc returns n+1 points on a circular arc. Angles are in degrees,
// measured clockwise from the positive x-axis in the y-down canvas.
func arc(c vec.Vec2, r, from, to float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n+1)
	for i := range pts {
		a := (from + (to-from)*float64(i)/float64(n)) * math.Pi / 180
		pts[i] = vec.Vec2{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

func pressure(f func(u float64) float64) func(u float64) []brush.EventOption {
	return func(u float64) []brush.EventOption {
		return []brush.EventOption{brush.WithPressure(f(u))}
	}
}

func params(size float64, modify ...func(*brush.Params)) brush.Params {
	p := brush.DefaultParams(size)
	for _, m := range modify {
		m(&p)
	}
	return p
}
