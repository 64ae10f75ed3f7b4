package scroll

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// maxWheelDelta bounds a single normalized wheel event, in pixels.
const maxWheelDelta = 100

// settleDistance is how close the smoothed offset must be to the target to snap.
const settleDistance = 0.5

// State is the scroll position shared by every consumer. Consumers receive copies.
type State struct {
	Raw       float64 // target offset requested by input
	Smoothed  float64 // offset consumers animate against
	Velocity  float64 // pixels per second of the smoothed offset
	Direction int     // 1 down, -1 up, 0 at rest
	Limit     float64 // largest reachable offset
}

// Progress is the smoothed offset as a fraction of the scrollable range.
func (s State) Progress() float64 {
	if s.Limit <= 0 {
		return 0
	}
	return clamp(s.Smoothed/s.Limit, 0, 1)
}

type Listener func(State)

// Source turns discrete input deltas into a continuous offset. Input only moves
// the target; the smoothed offset changes once per Advance.
type Source struct {
	cfg   Config
	state State

	jump bool

	// duration mode
	from    float64
	elapsed float64

	// spring mode, rebuilt whenever the frame interval changes
	spring    harmonica.Spring
	springDt  float64
	springVel float64

	listeners []Listener
}

func NewSource(cfg Config) *Source {
	return &Source{cfg: cfg}
}

// OnScroll registers l to receive the state after every change of the smoothed offset.
func (s *Source) OnScroll(l Listener) {
	s.listeners = append(s.listeners, l)
}

func (s *Source) State() State { return s.state }

func (s *Source) Config() Config { return s.cfg }

// SetLimit updates the scrollable range, e.g. after a resize, and clamps the target.
func (s *Source) SetLimit(limit float64) {
	if limit < 0 {
		limit = 0
	}
	s.state.Limit = limit
	s.setTarget(s.state.Raw, false)
	if s.state.Smoothed > limit {
		s.jump = true
	}
}

// Wheel feeds one wheel event. Deltas are in pixels, positive scrolls down.
func (s *Source) Wheel(dx, dy float64) {
	if s.cfg.NormalizeWheel {
		dx = clamp(dx, -maxWheelDelta, maxWheelDelta)
		dy = clamp(dy, -maxWheelDelta, maxWheelDelta)
	}

	var delta float64
	switch s.cfg.GestureOrientation {
	case Horizontal:
		delta = dx
	case Both:
		delta = dy
		if math.Abs(dx) > math.Abs(dy) {
			delta = dx
		}
	default:
		delta = dy
	}
	if delta == 0 {
		return
	}

	s.setTarget(s.state.Raw+delta*s.cfg.WheelMultiplier, !s.cfg.SmoothWheel)
}

// ScrollBy moves the target by delta pixels with the configured smoothing.
func (s *Source) ScrollBy(delta float64) {
	s.setTarget(s.state.Raw+delta, false)
}

// ScrollTo moves the target to offset. With immediate set the next Advance lands
// on it without smoothing.
func (s *Source) ScrollTo(offset float64, immediate bool) {
	s.setTarget(offset, immediate)
}

func (s *Source) setTarget(offset float64, immediate bool) {
	offset = clamp(offset, 0, s.state.Limit)
	if offset != s.state.Raw {
		s.from = s.state.Smoothed
		s.elapsed = 0
	}
	s.state.Raw = offset
	if immediate {
		s.jump = true
	}
}

// Animating reports whether the smoothed offset still has to move.
func (s *Source) Animating() bool {
	return s.jump || s.state.Smoothed != s.state.Raw
}

// Advance moves the smoothed offset by dt seconds and notifies listeners when it
// changed. It reports whether a change happened.
func (s *Source) Advance(dt float64) bool {
	if !s.Animating() {
		if s.state.Velocity != 0 || s.state.Direction != 0 {
			s.state.Velocity = 0
			s.state.Direction = 0
		}
		return false
	}
	if dt <= 0 && !s.jump {
		return false
	}

	prev := s.state.Smoothed
	target := s.state.Raw

	switch {
	case s.jump:
		s.state.Smoothed = target
		s.springVel = 0
		s.jump = false
	case s.cfg.Mode == ModeDuration:
		s.elapsed += dt
		p := clamp(s.elapsed/s.cfg.Duration, 0, 1)
		s.state.Smoothed = s.from + (target-s.from)*durationEase(p)
		if p >= 1 {
			s.state.Smoothed = target
		}
	case s.cfg.Mode == ModeSpring:
		if dt != s.springDt {
			s.spring = harmonica.NewSpring(dt, s.cfg.SpringFrequency, s.cfg.SpringDamping)
			s.springDt = dt
		}
		s.state.Smoothed, s.springVel = s.spring.Update(s.state.Smoothed, s.springVel, target)
		if math.Abs(target-s.state.Smoothed) < settleDistance && math.Abs(s.springVel) < settleDistance {
			s.state.Smoothed = target
			s.springVel = 0
		}
	default:
		s.state.Smoothed = damp(s.state.Smoothed, target, s.cfg.Lerp*60, dt)
		if math.Abs(target-s.state.Smoothed) < settleDistance {
			s.state.Smoothed = target
		}
	}

	s.state.Smoothed = clamp(s.state.Smoothed, 0, s.state.Limit)
	if s.state.Smoothed == prev {
		return false
	}

	if dt > 0 {
		s.state.Velocity = (s.state.Smoothed - prev) / dt
	}
	switch {
	case s.state.Smoothed > prev:
		s.state.Direction = 1
	case s.state.Smoothed < prev:
		s.state.Direction = -1
	}

	st := s.state
	for _, l := range s.listeners {
		l(st)
	}
	return true
}

// damp is a frame-rate independent lerp: the remaining distance decays by
// exp(-lambda*dt) per call.
func damp(x, y, lambda, dt float64) float64 {
	return x + (y-x)*(1-math.Exp(-lambda*dt))
}

func durationEase(t float64) float64 {
	return math.Min(1, 1.001-math.Pow(2, -10*t))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
