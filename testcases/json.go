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
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/preset"
)

// The JSON form of a scenario list, as written by the export command
// and read by strokereplay.
type jsonFile struct {
	Scenarios []jsonScenario `json:"scenarios"`
}

type jsonScenario struct {
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Renderer   string      `json:"renderer,omitempty"`
	Background string      `json:"background,omitempty"`
	CTM        []float64   `json:"ctm,omitempty"`
	Brush      jsonBrush   `json:"brush"`
	Events     []jsonEvent `json:"events"`
}

type jsonBrush struct {
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
	Pressure  float64 `json:"pressure"`
	Velocity  float64 `json:"velocity,omitempty"`
	Spacing   float64 `json:"spacing"`
	MinRadius float64 `json:"min_radius"`
	Blend     string  `json:"blend"`
}

type jsonEvent struct {
	Phase    string   `json:"phase"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Pressure *float64 `json:"pressure,omitempty"`
	Velocity *float64 `json:"velocity,omitempty"`
	TimeMS   float64  `json:"time_ms,omitempty"`
}

// WriteJSON writes the scenarios in JSON format.
func WriteJSON(w io.Writer, scenarios []Scenario) error {
	var out jsonFile
	for _, sc := range scenarios {
		out.Scenarios = append(out.Scenarios, toJSON(sc))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ReadJSON reads scenarios written by [WriteJSON].
func ReadJSON(r io.Reader) ([]Scenario, error) {
	var in jsonFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, err
	}
	res := make([]Scenario, 0, len(in.Scenarios))
	for _, js := range in.Scenarios {
		sc, err := fromJSON(js)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", js.Name, err)
		}
		res = append(res, sc)
	}
	return res, nil
}

func toJSON(sc Scenario) jsonScenario {
	js := jsonScenario{
		Name:     sc.Name,
		Width:    sc.Width,
		Height:   sc.Height,
		Renderer: sc.Renderer,
		Brush: jsonBrush{
			Size:      sc.Params.Size,
			Color:     preset.FormatColor(sc.Params.Color),
			Pressure:  sc.Params.Pressure,
			Velocity:  sc.Params.Velocity,
			Spacing:   sc.Params.Spacing,
			MinRadius: sc.Params.MinRadius,
			Blend:     sc.Params.Blend.String(),
		},
	}
	if sc.Background != (color.NRGBA{}) {
		js.Background = preset.FormatColor(sc.Background)
	}
	if sc.CTM != (matrix.Matrix{}) {
		js.CTM = sc.CTM[:]
	}
	for _, ev := range sc.Events {
		je := jsonEvent{
			Phase:  ev.Phase.String(),
			X:      ev.Pos.X,
			Y:      ev.Pos.Y,
			TimeMS: float64(ev.Time) / float64(time.Millisecond),
		}
		if p, ok := ev.Pressure(); ok {
			je.Pressure = &p
		}
		if v, ok := ev.Velocity(); ok {
			je.Velocity = &v
		}
		js.Events = append(js.Events, je)
	}
	return js
}

func fromJSON(js jsonScenario) (Scenario, error) {
	sc := Scenario{
		Name:     js.Name,
		Width:    js.Width,
		Height:   js.Height,
		Renderer: js.Renderer,
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return Scenario{}, fmt.Errorf("invalid canvas size %dx%d", sc.Width, sc.Height)
	}

	var err error
	if js.Background != "" {
		sc.Background, err = preset.ParseColor(js.Background)
		if err != nil {
			return Scenario{}, err
		}
	}
	switch len(js.CTM) {
	case 0:
	case 6:
		sc.CTM = matrix.Matrix(js.CTM)
	default:
		return Scenario{}, fmt.Errorf("ctm needs 6 entries, got %d", len(js.CTM))
	}

	p := preset.Preset{
		Name:      js.Name,
		Renderer:  js.Renderer,
		Size:      js.Brush.Size,
		Color:     js.Brush.Color,
		Pressure:  js.Brush.Pressure,
		Velocity:  js.Brush.Velocity,
		Spacing:   js.Brush.Spacing,
		MinRadius: js.Brush.MinRadius,
		Blend:     js.Brush.Blend,
	}
	sc.Params, err = p.Params()
	if err != nil {
		return Scenario{}, err
	}
	// Unlike presets, scenarios state the pressure exactly.
	sc.Params.Pressure = js.Brush.Pressure

	for i, je := range js.Events {
		phase, ok := phases[je.Phase]
		if !ok {
			return Scenario{}, fmt.Errorf("event %d: unknown phase %q", i, je.Phase)
		}
		opts := []brush.EventOption{
			brush.WithTime(time.Duration(math.Round(je.TimeMS * float64(time.Millisecond)))),
		}
		if je.Pressure != nil {
			opts = append(opts, brush.WithPressure(*je.Pressure))
		}
		if je.Velocity != nil {
			opts = append(opts, brush.WithVelocity(*je.Velocity))
		}
		ev, err := brush.NewEvent(phase, vec.Vec2{X: je.X, Y: je.Y}, opts...)
		if err != nil {
			return Scenario{}, fmt.Errorf("event %d: %w", i, err)
		}
		sc.Events = append(sc.Events, ev)
	}
	return sc, nil
}

var phases = map[string]brush.Phase{
	brush.PhaseStart.String(): brush.PhaseStart,
	brush.PhaseMove.String():  brush.PhaseMove,
	brush.PhaseEnd.String():   brush.PhaseEnd,
}
