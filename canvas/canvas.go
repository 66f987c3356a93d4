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

// Package canvas composites anti-aliased coverage into images.
//
// Coverage rows, as produced by [seehuhn.de/go/brush/raster.Rasterizer],
// are combined with a stamp colour under one of the brush blend modes.
// The blend formulas act on non-premultiplied colour channels and the
// result is composed with the destination using source-over alpha.
package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"seehuhn.de/go/brush"
)

// New allocates an RGBA canvas of the given size, filled with bg.
func New(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// Composite blends one row of coverage values into dst. Pixel xMin+i of
// row y receives colour c with coverage coverage[i]. Pixels outside the
// bounds of dst are ignored.
func Composite(dst draw.Image, y, xMin int, coverage []float32, c color.NRGBA, mode brush.BlendMode) {
	b := dst.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if xMin < b.Min.X {
		skip := b.Min.X - xMin
		if skip >= len(coverage) {
			return
		}
		coverage = coverage[skip:]
		xMin = b.Min.X
	}
	if n := b.Max.X - xMin; n < len(coverage) {
		if n <= 0 {
			return
		}
		coverage = coverage[:n]
	}

	src := pixelOf(c)
	if img, ok := dst.(*image.RGBA); ok {
		compositeRGBA(img, y, xMin, coverage, src, mode)
		return
	}
	for i, a := range coverage {
		if a <= 0 {
			continue
		}
		x := xMin + i
		bg := color.NRGBAModel.Convert(dst.At(x, y)).(color.NRGBA)
		out := blend(pixelOf(bg), src, float64(a)*src.a, mode)
		dst.Set(x, y, out.nrgba())
	}
}

func compositeRGBA(img *image.RGBA, y, xMin int, coverage []float32, src pixel, mode brush.BlendMode) {
	off := img.PixOffset(xMin, y)
	row := img.Pix[off : off+4*len(coverage) : off+4*len(coverage)]
	for i, a := range coverage {
		if a <= 0 {
			continue
		}
		p := row[4*i : 4*i+4 : 4*i+4]
		bg := unpremultiply(p)
		out := blend(bg, src, float64(a)*src.a, mode)
		out.storePremultiplied(p)
	}
}

// Present copies the pixels of src inside the dirty region d to dst.
func Present(dst draw.Image, src image.Image, d brush.Dirty) {
	r := d.Pixels().Intersect(dst.Bounds()).Intersect(src.Bounds())
	if r.Empty() {
		return
	}
	draw.Copy(dst, r.Min, src, r, draw.Src, nil)
}

// Downsample scales src to fill dst, using a Catmull-Rom filter.
// This is used to render supersampled strokes at their final size.
func Downsample(dst draw.Image, src image.Image) {
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
}
