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

// Command genpdf generates reference images for the stroke scenarios.
// It records the stamps of each scenario, writes them as vector
// shapes to a PDF file and renders the PDF to PNG using Ghostscript.
// A second PDF shows the smoothed curve through the input samples.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/raster"
	"seehuhn.de/go/brush/stamp"
	"seehuhn.de/go/brush/testcases"
)

const refDir = "testdata/reference"

// ringThickness must match the default of stamp.Ring.
const ringThickness = 0.25

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name

			rec := &stamp.Recorder{}
			spine := &path.Data{}
			hook := func(p0, p1, p2 vec.Vec2) {
				if len(spine.Cmds) == 0 {
					spine.MoveTo(p0)
				}
				spine.QuadTo(p1, p2)
			}
			if _, err := testcases.Replay(nil, sc, rec, brush.WithSegmentHook(hook)); err != nil {
				panic(err)
			}

			stampsPDF := filepath.Join(refDir, name+".pdf")
			if err := generateStamps(sc, rec.Stamps, stampsPDF); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(stampsPDF, filepath.Join(refDir, name+".png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if len(spine.Cmds) == 0 {
				continue
			}
			spinePDF := filepath.Join(refDir, name+"_spine.pdf")
			if err := generateSpine(sc, spine, spinePDF); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(spinePDF, filepath.Join(refDir, name+"_spine.png")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// newPage starts a page with black background and a coordinate system
// matching the scenario's stroke coordinates.
func newPage(sc testcases.Scenario, pdfPath string) (*document.Page, error) {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(sc.Width),
		URy: float64(sc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// Black background, so that grey levels are coverage values.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(sc.Width), float64(sc.Height))
	page.Fill()

	// PDF origin is bottom-left; scenarios assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(sc.Height)})
	if sc.CTM != (matrix.Matrix{}) && sc.CTM != matrix.Identity {
		page.Transform(sc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	return page, nil
}

func generateStamps(sc testcases.Scenario, stamps []stamp.Stamp, pdfPath string) error {
	page, err := newPage(sc, pdfPath)
	if err != nil {
		return err
	}

	ring := sc.Renderer == "ring"
	for _, s := range stamps {
		if ring {
			page.SetLineWidth(ringThickness * s.Radius)
		}
		drawPath(page, raster.Circle(s.Center, s.Radius))
		if ring {
			page.Stroke()
		} else {
			page.Fill()
		}
	}

	return page.Close()
}

func generateSpine(sc testcases.Scenario, spine *path.Data, pdfPath string) error {
	page, err := newPage(sc, pdfPath)
	if err != nil {
		return err
	}

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)
	drawPath(page, spine)
	page.Stroke()

	return page.Close()
}

// drawPath adds p to the current path, converting quadratic segments to
// cubic ones (PDF has no quadratic Bézier curves).
func drawPath(page *document.Page, p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale coverage
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
