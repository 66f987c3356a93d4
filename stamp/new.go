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
	"fmt"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/brush"
)

// Names lists the renderers known to [New].
var Names = []string{"disc", "ring", "grain"}

// New returns the renderer with the given name, using ctm to map stroke
// coordinates to canvas pixels. The empty name selects "disc".
func New(name string, ctm matrix.Matrix) (brush.Renderer, error) {
	switch name {
	case "", "disc":
		return &Disc{CTM: ctm}, nil
	case "ring":
		return &Ring{CTM: ctm}, nil
	case "grain":
		return &Grain{Disc: Disc{CTM: ctm}, Amount: 0.6}, nil
	}
	return nil, fmt.Errorf("unknown renderer %q (known: %v)", name, Names)
}

// Known reports whether New accepts the given name.
func Known(name string) bool {
	return name == "" || slices.Contains(Names, name)
}
