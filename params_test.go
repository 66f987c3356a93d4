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

package brush

import (
	"errors"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/geom/vec"
)

func TestParamsValidate(t *testing.T) {
	good := DefaultParams(10)
	if err := good.Validate(); err != nil {
		t.Fatalf("default parameters rejected: %v", err)
	}

	cases := map[string]func(*Params){
		"zero size":         func(p *Params) { p.Size = 0 },
		"negative size":     func(p *Params) { p.Size = -3 },
		"NaN size":          func(p *Params) { p.Size = math.NaN() },
		"infinite size":     func(p *Params) { p.Size = math.Inf(1) },
		"zero spacing":      func(p *Params) { p.Spacing = 0 },
		"negative radius":   func(p *Params) { p.MinRadius = -1 },
		"negative pressure": func(p *Params) { p.Pressure = -0.5 },
		"NaN velocity":      func(p *Params) { p.Velocity = math.NaN() },
		"bad blend mode":    func(p *Params) { p.Blend = numBlendModes },
	}
	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams(10)
			modify(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("got %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestParamsStep(t *testing.T) {
	p := DefaultParams(20)
	if got := p.Step(); got != 4 {
		t.Errorf("step %g, want 4", got)
	}
	p = DefaultParams(0.01)
	if got := p.Step(); got != minStep {
		t.Errorf("step %g for a tiny brush, want %g", got, minStep)
	}
}

func TestParamsRadius(t *testing.T) {
	p := DefaultParams(20)
	if got := p.Radius(1); got != 10 {
		t.Errorf("radius %g, want 10", got)
	}
	if got := p.Radius(0); got != defaultMinRadius {
		t.Errorf("radius %g at zero pressure, want %g", got, defaultMinRadius)
	}
}

func TestBlendModeNames(t *testing.T) {
	for m := Normal; m < numBlendModes; m++ {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("%s: got %v, %v", m, got, err)
		}
	}
	if m, err := ParseBlendMode(""); err != nil || m != Normal {
		t.Errorf("empty name: got %v, %v", m, err)
	}
	if _, err := ParseBlendMode("overlay"); err == nil {
		t.Error("unknown blend mode accepted")
	}
	if s := BlendMode(99).String(); s != "BlendMode(99)" {
		t.Errorf("got %q", s)
	}
}

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent(PhaseMove, vec.Vec2{X: 1, Y: 2},
		WithPressure(0.3), WithTime(5*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := ev.Pressure(); !ok || p != 0.3 {
		t.Errorf("pressure %g %t", p, ok)
	}
	if _, ok := ev.Velocity(); ok {
		t.Error("velocity set without WithVelocity")
	}
	if ev.Time != 5*time.Millisecond {
		t.Errorf("time %s", ev.Time)
	}

	bad := map[string]struct {
		phase Phase
		pos   vec.Vec2
		opts  []EventOption
	}{
		"NaN x":             {PhaseStart, vec.Vec2{X: math.NaN()}, nil},
		"infinite y":        {PhaseStart, vec.Vec2{Y: math.Inf(-1)}, nil},
		"negative pressure": {PhaseMove, vec.Vec2{}, []EventOption{WithPressure(-1)}},
		"NaN pressure":      {PhaseMove, vec.Vec2{}, []EventOption{WithPressure(math.NaN())}},
		"infinite velocity": {PhaseEnd, vec.Vec2{}, []EventOption{WithVelocity(math.Inf(1))}},
		"unknown phase":     {Phase(7), vec.Vec2{}, nil},
	}
	for name, tc := range bad {
		if _, err := NewEvent(tc.phase, tc.pos, tc.opts...); !errors.Is(err, ErrInvalidEvent) {
			t.Errorf("%s: got %v, want ErrInvalidEvent", name, err)
		}
	}
}

func TestDynamicsDefaults(t *testing.T) {
	p := DefaultParams(10)
	p.Pressure = 0.7
	p.Velocity = 3

	d := dynamicsOf(Event{}, &p)
	if d.pressure != 0.7 || d.velocity != 3 {
		t.Errorf("defaults not applied: %+v", d)
	}
	ev, _ := NewEvent(PhaseMove, vec.Vec2{}, WithPressure(0), WithVelocity(-2))
	d = dynamicsOf(ev, &p)
	if d.pressure != 0 || d.velocity != -2 {
		t.Errorf("event values not used: %+v", d)
	}
}
