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

package canvas

import (
	"image"
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/brush"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
)

func full(n int) []float32 {
	cov := make([]float32, n)
	for i := range cov {
		cov[i] = 1
	}
	return cov
}

func TestCompositeNormal(t *testing.T) {
	img := New(4, 1, white)
	Composite(img, 0, 1, []float32{1, 0.5}, black, brush.Normal)

	want := []uint8{255, 0, 128, 255}
	for x, w := range want {
		got := img.RGBAAt(x, 0)
		if diff(got.R, w) > 1 || got.A != 255 {
			t.Errorf("pixel %d: got %v, want grey %d", x, got, w)
		}
	}
}

func TestCompositeModes(t *testing.T) {
	bg := color.NRGBA{R: 128, G: 64, B: 255, A: 255}
	src := color.NRGBA{R: 255, G: 128, B: 0, A: 255}
	cases := []struct {
		mode brush.BlendMode
		want color.RGBA
	}{
		{brush.Normal, color.RGBA{255, 128, 0, 255}},
		{brush.Multiply, color.RGBA{128, 32, 0, 255}},
		{brush.Screen, color.RGBA{255, 160, 255, 255}},
		{brush.Darken, color.RGBA{128, 64, 0, 255}},
		{brush.Lighten, color.RGBA{255, 128, 255, 255}},
		{brush.Add, color.RGBA{255, 192, 255, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.mode.String(), func(t *testing.T) {
			img := New(1, 1, bg)
			Composite(img, 0, 0, []float32{1}, src, tc.mode)
			got := img.RGBAAt(0, 0)
			if diff(got.R, tc.want.R) > 1 || diff(got.G, tc.want.G) > 1 ||
				diff(got.B, tc.want.B) > 1 || got.A != tc.want.A {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCompositeTransparentBackdrop(t *testing.T) {
	// On a transparent canvas every mode reduces to plain source-over.
	for _, mode := range []brush.BlendMode{brush.Normal, brush.Multiply, brush.Darken} {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		Composite(img, 0, 0, []float32{0.5}, red, mode)
		got := img.RGBAAt(0, 0)
		if diff(got.A, 128) > 1 || diff(got.R, 128) > 1 || got.G != 0 {
			t.Errorf("%s: got %v", mode, got)
		}
	}
}

func TestCompositeErase(t *testing.T) {
	img := New(2, 1, red)
	Composite(img, 0, 0, []float32{1, 0.25}, black, brush.Erase)

	if got := img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("fully erased pixel: got %v", got)
	}
	got := img.RGBAAt(1, 0)
	if diff(got.A, 191) > 1 || got.R != got.A {
		t.Errorf("partially erased pixel: got %v", got)
	}
}

func TestCompositeClip(t *testing.T) {
	img := New(3, 2, white)
	Composite(img, -1, 0, full(3), black, brush.Normal)
	Composite(img, 2, 0, full(3), black, brush.Normal)
	Composite(img, 0, -5, full(3), black, brush.Normal)
	Composite(img, 0, 3, full(3), black, brush.Normal)
	for y := range 2 {
		for x := range 3 {
			if got := img.RGBAAt(x, y); got != (color.RGBA{255, 255, 255, 255}) {
				t.Fatalf("pixel (%d,%d) changed to %v", x, y, got)
			}
		}
	}

	Composite(img, 1, -2, full(4), black, brush.Normal)
	for x := range 3 {
		want := uint8(255)
		if x < 2 {
			want = 0
		}
		if got := img.RGBAAt(x, 1); got.R != want {
			t.Errorf("pixel %d: got %v, want grey %d", x, got, want)
		}
	}
}

// TestCompositeGeneric checks that the fallback path for arbitrary images
// agrees with the RGBA fast path.
func TestCompositeGeneric(t *testing.T) {
	bg := color.NRGBA{R: 10, G: 200, B: 90, A: 255}
	src := color.NRGBA{R: 200, G: 30, B: 160, A: 200}
	cov := []float32{0.1, 0.3, 0.5, 0.7, 1}
	for mode := brush.Normal; mode <= brush.Erase; mode++ {
		fast := New(len(cov), 1, bg)
		slow := image.NewNRGBA(fast.Bounds())
		for x := range cov {
			slow.SetNRGBA(x, 0, bg)
		}
		Composite(fast, 0, 0, cov, src, mode)
		Composite(slow, 0, 0, cov, src, mode)

		for x := range cov {
			a := fast.RGBAAt(x, 0)
			b := color.RGBAModel.Convert(slow.At(x, 0)).(color.RGBA)
			if diff(a.R, b.R) > 2 || diff(a.G, b.G) > 2 || diff(a.B, b.B) > 2 || diff(a.A, b.A) > 1 {
				t.Errorf("%s, pixel %d: fast %v, generic %v", mode, x, a, b)
			}
		}
	}
}

func TestPresent(t *testing.T) {
	src := New(10, 10, black)
	dst := New(10, 10, white)
	Present(dst, src, brush.DirtyOf(rect.Rect{LLx: 2.5, LLy: 3, URx: 4.2, URy: 5}))

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 3 && y < 5
			got := dst.RGBAAt(x, y).R
			if inside && got != 0 || !inside && got != 255 {
				t.Errorf("pixel (%d,%d): got %d", x, y, got)
			}
		}
	}

	// An empty region copies nothing.
	dst = New(10, 10, white)
	Present(dst, src, brush.Dirty{})
	if got := dst.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("empty dirty region changed the destination")
	}
}

func TestDownsample(t *testing.T) {
	grey := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	src := New(40, 20, grey)
	dst := image.NewRGBA(image.Rect(0, 0, 10, 5))
	Downsample(dst, src)
	for y := range 5 {
		for x := range 10 {
			if got := dst.RGBAAt(x, y); diff(got.R, 100) > 1 || got.A != 255 {
				t.Fatalf("pixel (%d,%d): got %v", x, y, got)
			}
		}
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
