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
	"fmt"
	"math"
	"time"

	"seehuhn.de/go/geom/vec"
)

// ErrInvalidEvent is returned (wrapped) by [NewEvent] for samples which
// cannot be used in curve computations.
var ErrInvalidEvent = errors.New("invalid gesture event")

// Phase says where in a gesture an event occurs.
type Phase uint8

// These are the gesture phases.
const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Event is one pointer sample. Events are values and are not modified
// after construction; use [NewEvent] to build one.
type Event struct {
	Phase Phase
	Pos   vec.Vec2

	// Time is the sample time, relative to an arbitrary origin.
	// Only differences between events of the same stroke are used.
	Time time.Duration

	pressure    float64
	velocity    float64
	hasPressure bool
	hasVelocity bool
}

// EventOption sets an optional field of an [Event].
type EventOption func(*Event)

// WithPressure sets the pen pressure, normally in the range 0 to 1.
func WithPressure(p float64) EventOption {
	return func(e *Event) {
		e.pressure = p
		e.hasPressure = true
	}
}

// WithVelocity sets the pointer velocity.
func WithVelocity(v float64) EventOption {
	return func(e *Event) {
		e.velocity = v
		e.hasVelocity = true
	}
}

// WithTime sets the sample time.
func WithTime(t time.Duration) EventOption {
	return func(e *Event) {
		e.Time = t
	}
}

// NewEvent returns a validated event.
func NewEvent(phase Phase, pos vec.Vec2, opts ...EventOption) (Event, error) {
	e := Event{Phase: phase, Pos: pos}
	for _, opt := range opts {
		opt(&e)
	}
	if err := e.validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

func (e *Event) validate() error {
	switch {
	case e.Phase > PhaseEnd:
		return fmt.Errorf("%w: %s", ErrInvalidEvent, e.Phase)
	case !isFinite(e.Pos.X) || !isFinite(e.Pos.Y):
		return fmt.Errorf("%w: position (%g, %g)", ErrInvalidEvent, e.Pos.X, e.Pos.Y)
	case e.hasPressure && (!isFinite(e.pressure) || e.pressure < 0):
		return fmt.Errorf("%w: pressure %g", ErrInvalidEvent, e.pressure)
	case e.hasVelocity && !isFinite(e.velocity):
		return fmt.Errorf("%w: velocity %g", ErrInvalidEvent, e.velocity)
	}
	return nil
}

// Pressure returns the pressure carried by the event, if any.
func (e Event) Pressure() (float64, bool) {
	return e.pressure, e.hasPressure
}

// Velocity returns the velocity carried by the event, if any.
func (e Event) Velocity() (float64, bool) {
	return e.velocity, e.hasVelocity
}

// dynamics holds the interpolated per-sample quantities.
type dynamics struct {
	pressure float64
	velocity float64
	time     time.Duration
}

// dynamicsOf resolves the event's optional fields against the brush defaults.
func dynamicsOf(e Event, p *Params) dynamics {
	d := dynamics{
		pressure: p.Pressure,
		velocity: p.Velocity,
		time:     e.Time,
	}
	if e.hasPressure {
		d.pressure = e.pressure
	}
	if e.hasVelocity {
		d.velocity = e.velocity
	}
	return d
}

func (d dynamics) lerp(o dynamics, t float64) dynamics {
	return dynamics{
		pressure: lerp(d.pressure, o.pressure, t),
		velocity: lerp(d.velocity, o.velocity, t),
		time:     d.time + time.Duration(math.Round(t*float64(o.time-d.time))),
	}
}
