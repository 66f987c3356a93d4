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
	"image"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/brush/testcases"
)

func scenario(t *testing.T, name string) testcases.Scenario {
	t.Helper()
	sc, ok := testcases.Find(name)
	if !ok {
		t.Fatalf("scenario %s not found", name)
	}
	return sc
}

func TestRenderScaled(t *testing.T) {
	sc := scenario(t, "tap_dot")
	for _, scale := range []int{1, 2, 4} {
		res, err := render(sc, scale, false)
		if err != nil {
			t.Fatal(err)
		}
		if b := res.img.Bounds(); b != image.Rect(0, 0, sc.Width, sc.Height) {
			t.Errorf("scale %d: image bounds %v", scale, b)
		}
		if c := res.img.RGBAAt(16, 16); c.R > 20 {
			t.Errorf("scale %d: center pixel %v", scale, c)
		}
		if c := res.img.RGBAAt(1, 1); c.R < 235 {
			t.Errorf("scale %d: corner pixel %v", scale, c)
		}
		if res.stamps != 2 {
			t.Errorf("scale %d: %d stamps", scale, res.stamps)
		}
		box := res.dirty.Pixels()
		if !image.Rect(5, 5, 27, 27).In(box) {
			t.Errorf("scale %d: dirty region %v", scale, box)
		}
	}

	if _, err := render(sc, 0, false); err == nil {
		t.Error("scale 0 accepted")
	}
}

func TestRenderSpine(t *testing.T) {
	sc := scenario(t, "line_straight")
	sc.Params.Size = 2 // keep the spine visible next to the stamps

	plain, err := render(sc, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	marked, err := render(sc, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if c := plain.img.RGBAAt(64, 15); c.R != c.G {
		t.Errorf("unexpected colour %v without spine", c)
	}
	if c := marked.img.RGBAAt(64, 15); c.R <= c.G {
		t.Errorf("spine not drawn: %v", c)
	}
	if plain.length < 99 || plain.length > 101 {
		t.Errorf("length %g, want about 100", plain.length)
	}
}

func TestWritePNG(t *testing.T) {
	res, err := render(scenario(t, "tap_dot"), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "dot.png")
	if err := writePNG(name, res); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(name); err != nil || fi.Size() == 0 {
		t.Errorf("no output written: %v", err)
	}
}
