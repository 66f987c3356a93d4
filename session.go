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
	"image/draw"
	"log/slog"

	"seehuhn.de/go/geom/vec"
)

// Errors returned for calls in the wrong order. All of them wrap
// [ErrInvalidUsage].
var (
	ErrInvalidUsage   = errors.New("invalid stroke session usage")
	ErrNotStarted     = fmt.Errorf("%w: stroke not started", ErrInvalidUsage)
	ErrAlreadyStarted = fmt.Errorf("%w: stroke already started", ErrInvalidUsage)
	ErrEnded          = fmt.Errorf("%w: stroke already ended", ErrInvalidUsage)
)

// strokeState is the smoothing state of a session. The concrete types
// are emptyState, singleState, curvingState and endedState.
type strokeState interface {
	isStrokeState()
}

// emptyState is the state before Start.
type emptyState struct{}

// singleState is the state after Start, before the first move.
type singleState struct {
	pt  vec.Vec2
	dyn dynamics
}

// curvingState holds the sliding window of the smoother: anchor is the end
// of the last segment drawn, control is the latest raw sample.
type curvingState struct {
	anchor  vec.Vec2
	control vec.Vec2
	dyn     dynamics // dynamics at anchor
	last    dynamics // dynamics at control
}

// endedState is the state after End. No further calls are allowed.
type endedState struct{}

func (emptyState) isStrokeState()   {}
func (singleState) isStrokeState()  {}
func (curvingState) isStrokeState() {}
func (endedState) isStrokeState()   {}

// Session renders one stroke, from pointer down to pointer up.
//
// Stamps are placed along a chain of quadratic Bézier segments. Each
// segment ends at the midpoint between two consecutive samples and uses
// the earlier sample as control point, giving a smooth curve through the
// samples with constant memory.
//
// A Session is used for exactly one stroke. It is not safe for concurrent
// use; separate sessions share no state.
type Session struct {
	state  strokeState
	w      walker
	hook   func(p0, p1, p2 vec.Vec2)
	logger *slog.Logger
}

// Option configures a [Session].
type Option func(*Session)

// WithSegmentHook registers a function which is called for every smoothed
// curve segment, before stamps are placed on it. The arguments are the
// start, control and end points of a quadratic Bézier curve.
func WithSegmentHook(fn func(p0, p1, p2 vec.Vec2)) Option {
	return func(s *Session) {
		s.hook = fn
	}
}

// WithLogger sets the logger for the session, overriding [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession returns a session which draws into dst using r.
func NewSession(dst draw.Image, r Renderer, opts ...Option) *Session {
	s := &Session{
		state: emptyState{},
		w: walker{
			dst:      dst,
			renderer: r,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = Logger()
	}
	return s
}

// Start begins the stroke at ev.Pos and draws the first stamp there.
func (s *Session) Start(p Params, ev Event) (Dirty, error) {
	switch s.state.(type) {
	case emptyState:
	case endedState:
		return s.misuse("start", ErrEnded)
	default:
		return s.misuse("start", ErrAlreadyStarted)
	}
	if err := p.Validate(); err != nil {
		return Dirty{}, err
	}
	if err := ev.validate(); err != nil {
		return Dirty{}, err
	}

	s.w.params = p
	s.w.step = p.Step()
	s.w.t0 = ev.Time
	s.w.residual = 0
	s.w.distance = 0
	s.w.stamps = 0

	dyn := dynamicsOf(ev, &s.w.params)
	s.state = singleState{pt: ev.Pos, dyn: dyn}

	s.logger.Debug("stroke started",
		"x", ev.Pos.X, "y", ev.Pos.Y,
		"size", p.Size, "step", s.w.step, "blend", p.Blend)

	return s.w.stamp(ev.Pos, dyn), nil
}

// Move extends the stroke towards ev.Pos.
//
// The part of the curve between the previous sample and ev.Pos is only
// drawn by the next call to Move or End, since its shape depends on the
// sample after ev.
func (s *Session) Move(ev Event) (Dirty, error) {
	if err := s.checkActive("move"); err != nil {
		return Dirty{}, err
	}
	if err := ev.validate(); err != nil {
		return Dirty{}, err
	}
	return s.advance(ev.Pos, dynamicsOf(ev, &s.w.params), false), nil
}

// End completes the stroke. The curve is continued to ev.Pos and a final
// stamp is drawn exactly at ev.Pos. After End returns, the session
// cannot be used again.
func (s *Session) End(ev Event) (Dirty, error) {
	if err := s.checkActive("end"); err != nil {
		return Dirty{}, err
	}
	if err := ev.validate(); err != nil {
		return Dirty{}, err
	}

	dyn := dynamicsOf(ev, &s.w.params)
	dirty := s.advance(ev.Pos, dyn, true)
	dirty = dirty.Union(s.w.stamp(ev.Pos, dyn))
	s.state = endedState{}

	s.logger.Debug("stroke ended",
		"x", ev.Pos.X, "y", ev.Pos.Y,
		"stamps", s.w.stamps, "length", s.w.distance)

	return dirty, nil
}

// Handle dispatches ev to Start, Move or End according to its phase.
// The brush parameters are only used for start events.
func (s *Session) Handle(p Params, ev Event) (Dirty, error) {
	switch ev.Phase {
	case PhaseStart:
		return s.Start(p, ev)
	case PhaseMove:
		return s.Move(ev)
	case PhaseEnd:
		return s.End(ev)
	default:
		return Dirty{}, fmt.Errorf("%w: %s", ErrInvalidEvent, ev.Phase)
	}
}

// advance adds the next segment of the smoothed curve and walks it.
// If final is set, the segment ends at pt instead of at the midpoint
// between the previous sample and pt.
func (s *Session) advance(pt vec.Vec2, dyn dynamics, final bool) Dirty {
	var seg segment
	var from, to dynamics

	switch st := s.state.(type) {
	case singleState:
		end := midpoint(st.pt, pt)
		to = st.dyn.lerp(dyn, 0.5)
		if final {
			end = pt
			to = dyn
		}
		seg = segment{P0: st.pt, P1: midpoint(st.pt, end), P2: end}
		from = st.dyn
	case curvingState:
		end := midpoint(st.control, pt)
		to = st.last.lerp(dyn, 0.5)
		if final {
			end = pt
			to = dyn
		}
		seg = segment{P0: st.anchor, P1: st.control, P2: end}
		from = st.dyn
	default:
		panic("unreachable")
	}

	s.state = curvingState{
		anchor:  seg.P2,
		control: pt,
		dyn:     to,
		last:    dyn,
	}

	if s.hook != nil {
		s.hook(seg.P0, seg.P1, seg.P2)
	}
	return s.w.walk(seg, from, to)
}

func (s *Session) checkActive(op string) error {
	switch s.state.(type) {
	case singleState, curvingState:
		return nil
	case endedState:
		_, err := s.misuse(op, ErrEnded)
		return err
	default:
		_, err := s.misuse(op, ErrNotStarted)
		return err
	}
}

func (s *Session) misuse(op string, err error) (Dirty, error) {
	s.logger.Warn("invalid stroke session call", "op", op, "err", err)
	return Dirty{}, fmt.Errorf("%s: %w", op, err)
}

// Active reports whether the stroke has been started and not yet ended.
func (s *Session) Active() bool {
	switch s.state.(type) {
	case singleState, curvingState:
		return true
	}
	return false
}

// Stamps returns the number of stamps drawn so far.
func (s *Session) Stamps() int {
	return s.w.stamps
}

// Length returns the arclength of the smoothed curve walked so far.
func (s *Session) Length() float64 {
	return s.w.distance
}

// Residual returns the arclength walked since the most recent stamp placed
// along the curve.
func (s *Session) Residual() float64 {
	return s.w.residual
}

// Step returns the stamp spacing of the current stroke, or 0 before Start.
func (s *Session) Step() float64 {
	return s.w.step
}
