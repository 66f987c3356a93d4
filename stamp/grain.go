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
	"encoding/binary"
	"hash"
	"hash/fnv"
	"image/draw"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
	"seehuhn.de/go/brush/raster"
)

// Grain draws a disc whose coverage is modulated by per-pixel noise,
// giving a textured, dry-brush look. The noise for a pixel depends on
// the pixel coordinates, the stamp index and the seed, so that replaying
// a stroke reproduces it exactly.
type Grain struct {
	Disc

	// Amount is the strength of the noise, between 0 (plain disc) and 1.
	Amount float64

	// Seed selects the noise pattern.
	Seed uint64

	h   hash.Hash64
	buf []float32
}

// Apply implements the [brush.Renderer] interface.
func (g *Grain) Apply(dst draw.Image, center vec.Vec2, radius float64, st brush.ShaderState) rect.Rect {
	amount := float32(min(max(g.Amount, 0), 1))
	ctm := effectiveCTM(g.CTM)
	g.rast = prepare(g.rast, dst, ctm)
	g.rast.Fill(raster.Circle(center, radius), func(y, xMin int, coverage []float32) {
		g.buf = append(g.buf[:0], coverage...)
		for i := range g.buf {
			g.buf[i] *= 1 - amount*g.noise(xMin+i, y, st.Index)
		}
		canvas.Composite(dst, y, xMin, g.buf, st.Color, st.Blend)
	})
	return deviceBox(ctm, center, radius)
}

// noise returns a pseudo-random value in [0, 1) for the given pixel.
func (g *Grain) noise(x, y, index int) float32 {
	if g.h == nil {
		g.h = fnv.New64a()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:], g.Seed)
	binary.LittleEndian.PutUint64(key[8:], uint64(index))
	binary.LittleEndian.PutUint64(key[16:], uint64(x))
	binary.LittleEndian.PutUint64(key[24:], uint64(y))
	g.h.Reset()
	_, _ = g.h.Write(key[:]) // fnv.Write never returns an error
	return float32(g.h.Sum64()>>40) / (1 << 24)
}
