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
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
)

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func state(index int) brush.ShaderState {
	return brush.ShaderState{
		Index:    index,
		Pressure: 1,
		Color:    color.NRGBA{A: 255},
		Blend:    brush.Normal,
	}
}

func renderers() map[string]func() brush.Renderer {
	return map[string]func() brush.Renderer{
		"disc":       func() brush.Renderer { return &Disc{} },
		"ring":       func() brush.Renderer { return &Ring{} },
		"thick_ring": func() brush.Renderer { return &Ring{Thickness: 0.8} },
		"grain":      func() brush.Renderer { return &Grain{Amount: 0.7, Seed: 3} },
		"scaled":     func() brush.Renderer { return &Disc{CTM: matrix.Scale(2, 1.5)} },
		"rotated":    func() brush.Renderer { return &Ring{CTM: matrix.RotateDeg(30).Translate(20, 0)} },
	}
}

func TestDiscCoverage(t *testing.T) {
	img := canvas.New(40, 40, white)
	r := &Disc{}
	const radius = 8.3
	r.Apply(img, vec.Vec2{X: 20.2, Y: 19.7}, radius, state(0))

	var ink float64
	for y := range 40 {
		for x := range 40 {
			ink += 1 - float64(img.RGBAAt(x, y).R)/255
		}
	}
	want := math.Pi * radius * radius
	if math.Abs(ink-want) > 0.02*want {
		t.Errorf("ink %.2f, want %.2f", ink, want)
	}
	if c := img.RGBAAt(20, 19); c.R != 0 {
		t.Errorf("center pixel not covered: %v", c)
	}
	if c := img.RGBAAt(20, 30); c.R != 255 {
		t.Errorf("pixel outside the disc changed: %v", c)
	}
}

func TestRingHollow(t *testing.T) {
	img := canvas.New(40, 40, white)
	r := &Ring{}
	r.Apply(img, vec.Vec2{X: 20, Y: 20}, 12, state(0))

	if c := img.RGBAAt(20, 20); c.R != 255 {
		t.Errorf("ring center changed: %v", c)
	}
	if c := img.RGBAAt(32, 20); c.R > 10 {
		t.Errorf("ring outline not drawn: %v", c)
	}
}

func TestCTM(t *testing.T) {
	img := canvas.New(30, 30, white)
	r := &Disc{CTM: matrix.Scale(2, 2)}
	box := r.Apply(img, vec.Vec2{X: 5, Y: 5}, 3, state(0))

	if c := img.RGBAAt(10, 10); c.R != 0 {
		t.Errorf("device center not covered: %v", c)
	}
	if c := img.RGBAAt(10, 14); c.R != 0 {
		t.Errorf("pixel inside the scaled disc not covered: %v", c)
	}
	if c := img.RGBAAt(10, 18); c.R != 255 {
		t.Errorf("pixel outside the scaled disc changed: %v", c)
	}
	if box.LLx != 3 || box.LLy != 3 || box.URx != 17 || box.URy != 17 {
		t.Errorf("wrong device box %v", box)
	}
}

// TestBounds checks that the rectangle returned by each renderer contains
// every pixel the renderer changed.
func TestBounds(t *testing.T) {
	centers := []vec.Vec2{
		{X: 20, Y: 20},
		{X: 13.7, Y: 21.2},
		{X: 2, Y: 35}, // partly outside the canvas
	}
	radii := []float64{0.3, 2.5, 9}

	for name, mk := range renderers() {
		t.Run(name, func(t *testing.T) {
			r := mk()
			for i, c := range centers {
				for _, radius := range radii {
					before := canvas.New(48, 48, white)
					after := canvas.New(48, 48, white)
					box := r.Apply(after, c, radius, state(i))
					bounds := brush.DirtyOf(box).Pixels()

					for y := range 48 {
						for x := range 48 {
							if before.RGBAAt(x, y) == after.RGBAAt(x, y) {
								continue
							}
							if !(image.Point{X: x, Y: y}).In(bounds) {
								t.Fatalf("center %v, radius %g: pixel (%d,%d) outside %v",
									c, radius, x, y, bounds)
							}
						}
					}
				}
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	for name, mk := range renderers() {
		t.Run(name, func(t *testing.T) {
			draw := func() *image.RGBA {
				img := canvas.New(48, 48, white)
				r := mk()
				for i := range 10 {
					c := vec.Vec2{X: 8 + 3.1*float64(i), Y: 24 + 1.7*float64(i%3)}
					r.Apply(img, c, 6, state(i))
				}
				return img
			}
			a, b := draw(), draw()
			if !bytes.Equal(a.Pix, b.Pix) {
				t.Error("repeated rendering gave different pixels")
			}
		})
	}
}

func TestGrain(t *testing.T) {
	c := vec.Vec2{X: 16, Y: 16}

	plain := canvas.New(32, 32, white)
	(&Disc{}).Apply(plain, c, 10, state(0))
	smooth := canvas.New(32, 32, white)
	(&Grain{}).Apply(smooth, c, 10, state(0))
	if !bytes.Equal(plain.Pix, smooth.Pix) {
		t.Error("grain with amount 0 differs from a plain disc")
	}

	g := &Grain{Amount: 1}
	first := canvas.New(32, 32, white)
	g.Apply(first, c, 10, state(0))
	second := canvas.New(32, 32, white)
	g.Apply(second, c, 10, state(1))
	if bytes.Equal(first.Pix, second.Pix) {
		t.Error("noise does not depend on the stamp index")
	}
	if bytes.Equal(first.Pix, plain.Pix) {
		t.Error("noise has no effect")
	}

	for x := range 1000 {
		v := g.noise(x, 7, 0)
		if v < 0 || v >= 1 {
			t.Fatalf("noise(%d, 7, 0) = %g, out of range", x, v)
		}
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	box := rec.Apply(nil, vec.Vec2{X: 3, Y: 4}, 2, state(5))
	if box.LLx != 1 || box.LLy != 2 || box.URx != 5 || box.URy != 6 {
		t.Errorf("wrong box %v", box)
	}
	if len(rec.Stamps) != 1 || rec.Stamps[0].State.Index != 5 || rec.Stamps[0].Radius != 2 {
		t.Errorf("wrong recording %v", rec.Stamps)
	}

	img := canvas.New(10, 10, white)
	rec = &Recorder{Next: &Disc{}}
	rec.Apply(img, vec.Vec2{X: 5, Y: 5}, 3, state(0))
	if c := img.RGBAAt(5, 5); c.R != 0 {
		t.Errorf("wrapped renderer did not draw: %v", c)
	}
	rec.Reset()
	if len(rec.Stamps) != 0 {
		t.Error("Reset kept stamps")
	}
}

func TestNew(t *testing.T) {
	for _, name := range append([]string{""}, Names...) {
		if _, err := New(name, matrix.Identity); err != nil {
			t.Errorf("New(%q): %v", name, err)
		}
		if !Known(name) {
			t.Errorf("Known(%q) = false", name)
		}
	}
	if _, err := New("airbrush", matrix.Identity); err == nil {
		t.Error("unknown renderer accepted")
	}
}
