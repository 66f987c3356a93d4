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

package testcases

import (
	"bytes"
	"image"
	"image/png"
	"maps"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
	"seehuhn.de/go/brush/stamp"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	seen := map[string]bool{}
	for category, cases := range All {
		for _, sc := range cases {
			if !validName.MatchString(sc.Name) {
				t.Errorf("%s: invalid name %q", category, sc.Name)
			}
			full := category + "_" + sc.Name
			if seen[full] {
				t.Errorf("duplicate scenario %s", full)
			}
			seen[full] = true
		}
	}
}

// TestRender replays every scenario and checks that the dirty regions
// cover all changed pixels, and that rendering is repeatable.
func TestRender(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, sc := range All[category] {
			name := category + "_" + sc.Name
			t.Run(name, func(t *testing.T) {
				img, dirty, err := Render(sc, nil)
				if err != nil {
					t.Fatal(err)
				}
				if len(dirty) != len(sc.Events) {
					t.Fatalf("%d dirty regions for %d events", len(dirty), len(sc.Events))
				}

				var total brush.Dirty
				for _, d := range dirty {
					total = total.Union(d)
				}
				bounds := total.Pixels()
				blank := canvas.New(sc.Width, sc.Height, sc.BackgroundColor())
				changed := 0
				for y := range sc.Height {
					for x := range sc.Width {
						if img.RGBAAt(x, y) == blank.RGBAAt(x, y) {
							continue
						}
						changed++
						if !(image.Point{X: x, Y: y}).In(bounds) {
							writePNG(t, name, img)
							t.Fatalf("pixel (%d,%d) changed outside %v", x, y, bounds)
						}
					}
				}
				if changed == 0 {
					t.Error("nothing was drawn")
				}

				again, dirty2, err := Render(sc, nil)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.Equal(img.Pix, again.Pix) {
					t.Error("second rendering differs")
				}
				for i := range dirty {
					if !dirty[i].Equal(dirty2[i]) {
						t.Errorf("event %d: dirty region %v, then %v",
							i, dirty[i].Pixels(), dirty2[i].Pixels())
					}
				}
			})
		}
	}
}

func record(t *testing.T, name string) []stamp.Stamp {
	t.Helper()
	sc, ok := Find(name)
	if !ok {
		t.Fatalf("scenario %s not found", name)
	}
	rec := &stamp.Recorder{}
	if _, err := Replay(nil, sc, rec); err != nil {
		t.Fatal(err)
	}
	return rec.Stamps
}

func TestStraight(t *testing.T) {
	coarse := record(t, "line_straight")
	if n := len(coarse); n < 26 || n > 27 {
		t.Errorf("%d stamps, want 26 or 27", n)
	}
	for _, s := range coarse {
		if s.Radius != 10 || math.Abs(s.Center.Y-16) > 1e-9 {
			t.Errorf("unexpected stamp %+v", s)
		}
	}

	dense := record(t, "line_straight_dense")
	if d := len(coarse) - len(dense); d < -1 || d > 1 {
		t.Errorf("%d stamps from 2 events, %d from 51 events", len(coarse), len(dense))
	}
}

func TestTaps(t *testing.T) {
	for _, name := range []string{"dot", "dot_light", "zero_length"} {
		stamps := record(t, name)
		if len(stamps) != 2 {
			t.Errorf("%s: %d stamps, want 2", name, len(stamps))
			continue
		}
		if stamps[0].Center != stamps[1].Center {
			t.Errorf("%s: stamps at %v and %v", name, stamps[0].Center, stamps[1].Center)
		}
	}
}

func TestPressureZero(t *testing.T) {
	for _, s := range record(t, "pressure_zero") {
		if s.Radius != 2 {
			t.Errorf("radius %g, want the minimum radius 2", s.Radius)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var all []Scenario
	for _, cases := range All {
		all = append(all, cases...)
	}

	buf := &bytes.Buffer{}
	if err := WriteJSON(buf, all); err != nil {
		t.Fatal(err)
	}
	back, err := ReadJSON(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(all) {
		t.Fatalf("read %d scenarios, wrote %d", len(back), len(all))
	}

	for i, sc := range all {
		got := back[i]
		if got.Name != sc.Name || got.Width != sc.Width || got.Height != sc.Height ||
			got.Renderer != sc.Renderer || got.Background != sc.Background ||
			got.CTM != sc.CTM || got.Params != sc.Params {
			t.Errorf("%s: got %+v", sc.Name, got)
			continue
		}
		if len(got.Events) != len(sc.Events) {
			t.Errorf("%s: %d events, want %d", sc.Name, len(got.Events), len(sc.Events))
			continue
		}
		for j, ev := range sc.Events {
			ev2 := got.Events[j]
			p1, ok1 := ev.Pressure()
			p2, ok2 := ev2.Pressure()
			if ev.Phase != ev2.Phase || ev.Pos != ev2.Pos || p1 != p2 || ok1 != ok2 ||
				math.Abs(float64(ev.Time-ev2.Time)) > 1000 {
				t.Errorf("%s: event %d: got %+v, want %+v", sc.Name, j, ev2, ev)
			}
		}
	}
}

func TestReadJSONErrors(t *testing.T) {
	cases := map[string]string{
		"syntax": `{"scenarios": [`,
		"size":   `{"scenarios": [{"name": "a", "width": 0, "height": 5, "brush": {"size": 1}}]}`,
		"brush":  `{"scenarios": [{"name": "a", "width": 5, "height": 5, "brush": {"size": -1}}]}`,
		"phase": `{"scenarios": [{"name": "a", "width": 5, "height": 5, "brush": {"size": 1},
			"events": [{"phase": "hover", "x": 1, "y": 1}]}]}`,
		"ctm": `{"scenarios": [{"name": "a", "width": 5, "height": 5, "brush": {"size": 1},
			"ctm": [1, 0, 0]}]}`,
	}
	for name, data := range cases {
		if _, err := ReadJSON(bytes.NewBufferString(data)); err == nil {
			t.Errorf("%s: invalid input accepted", name)
		}
	}
}

func TestFind(t *testing.T) {
	a, ok1 := Find("circle")
	b, ok2 := Find("curve_circle")
	if !ok1 || !ok2 || a.Name != b.Name {
		t.Error("lookup with and without category differ")
	}
	if _, ok := Find("no_such_scenario"); ok {
		t.Error("unknown scenario found")
	}
}

func writePNG(t *testing.T, name string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll("debug", 0755); err != nil {
		t.Log(err)
		return
	}
	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		t.Log(err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Log(err)
	}
}
