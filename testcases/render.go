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
	"fmt"
	"image"
	"image/draw"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/canvas"
	"seehuhn.de/go/brush/stamp"
)

// Render replays the scenario on a fresh canvas and returns the image,
// together with the dirty region reported for every event.
// If r is nil, the renderer named in the scenario is used.
func Render(sc Scenario, r brush.Renderer) (*image.RGBA, []brush.Dirty, error) {
	if r == nil {
		var err error
		r, err = stamp.New(sc.Renderer, sc.CTM)
		if err != nil {
			return nil, nil, err
		}
	}
	img := canvas.New(sc.Width, sc.Height, sc.BackgroundColor())
	dirty, err := Replay(img, sc, r)
	if err != nil {
		return nil, nil, err
	}
	return img, dirty, nil
}

// Replay feeds the events of the scenario to a new session drawing
// into dst.
func Replay(dst draw.Image, sc Scenario, r brush.Renderer, opts ...brush.Option) ([]brush.Dirty, error) {
	s := brush.NewSession(dst, r, opts...)
	dirty := make([]brush.Dirty, 0, len(sc.Events))
	for i, ev := range sc.Events {
		d, err := s.Handle(sc.Params, ev)
		if err != nil {
			return nil, fmt.Errorf("%s: event %d: %w", sc.Name, i, err)
		}
		dirty = append(dirty, d)
	}
	if s.Active() {
		return nil, fmt.Errorf("%s: stroke not ended", sc.Name)
	}
	return dirty, nil
}
