package trigger

import (
	"fmt"
	"math"

	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
)

// scrubRate scales 1/Scrub into the exponential catch-up rate; after Scrub seconds
// about 98% of the gap is closed.
const scrubRate = 4

// scrubEpsilon is the gap below which a scrubbed value snaps to its target.
const scrubEpsilon = 1e-4

// Binding describes one trigger: the element box, when it starts and ends, and how
// much the applied value lags behind.
type Binding struct {
	Name   string
	Bounds page.Bounds
	Start  Condition
	End    Condition
	Scrub  float64
}

// Trigger is a registered Binding with its current range and progress.
type Trigger struct {
	Binding

	start, end float64
	raw        float64
	applied    float64
	onUpdate   []func(*Trigger)
}

// Progress is the raw linear progress through the range, in [0,1].
func (t *Trigger) Progress() float64 { return t.raw }

// Applied is the scrub-damped progress consumers should use.
func (t *Trigger) Applied() float64 { return t.applied }

// Range returns the scroll offsets at which the trigger starts and ends.
func (t *Trigger) Range() (start, end float64) { return t.start, t.end }

// Active reports whether the raw progress is strictly inside the range.
func (t *Trigger) Active() bool { return t.raw > 0 && t.raw < 1 }

// Settled reports whether the applied value has caught up with the raw progress.
func (t *Trigger) Settled() bool { return t.applied == t.raw }

// OnUpdate registers fn to run whenever the applied value changes.
func (t *Trigger) OnUpdate(fn func(*Trigger)) {
	t.onUpdate = append(t.onUpdate, fn)
}

func (t *Trigger) setApplied(v float64) {
	if v == t.applied {
		return
	}
	t.applied = v
	for _, fn := range t.onUpdate {
		fn(t)
	}
}

func (t *Trigger) measure(viewportHeight float64) {
	t.start = t.Start.ScrollOffset(t.Bounds, viewportHeight)
	t.end = t.End.ScrollOffset(t.Bounds, viewportHeight)
}

// ProgressAt maps offset into [0,1] across [start, end]. Before start it is 0,
// after end it is 1. A degenerate range flips from 0 to 1 at start.
func ProgressAt(start, end, offset float64) float64 {
	if end <= start {
		if offset >= start {
			return 1
		}
		return 0
	}
	p := (offset - start) / (end - start)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Registry recomputes every trigger's progress from the single scroll offset it is
// fed. It does not poll: progress changes only through Update and Refresh, and
// scrub catch-up only through Step.
type Registry struct {
	triggers       []*Trigger
	viewportHeight float64
	offset         float64
}

func NewRegistry(viewportHeight float64) *Registry {
	return &Registry{viewportHeight: viewportHeight}
}

// Add registers b and measures it against the current offset. The applied value
// starts at the raw progress so nothing animates in from zero.
func (r *Registry) Add(b Binding) (*Trigger, error) {
	if b.Scrub < 0 || math.IsNaN(b.Scrub) {
		return nil, fmt.Errorf("trigger %s: scrub must be >= 0, got %v", b.Name, b.Scrub)
	}
	t := &Trigger{Binding: b}
	t.measure(r.viewportHeight)
	t.raw = ProgressAt(t.start, t.end, r.offset)
	t.applied = t.raw
	r.triggers = append(r.triggers, t)
	return t, nil
}

// Update is the scroll listener: it recomputes raw progress for the new offset.
// Unscrubbed triggers apply the new value immediately.
func (r *Registry) Update(st scroll.State) {
	r.offset = st.Smoothed
	r.recompute()
}

// Refresh re-measures every trigger for a new viewport height.
func (r *Registry) Refresh(viewportHeight float64) {
	r.viewportHeight = viewportHeight
	for _, t := range r.triggers {
		t.measure(viewportHeight)
	}
	r.recompute()
}

func (r *Registry) recompute() {
	for _, t := range r.triggers {
		t.raw = ProgressAt(t.start, t.end, r.offset)
		if t.Scrub <= 0 {
			t.setApplied(t.raw)
		}
	}
}

// Step moves scrubbed triggers toward their raw progress by dt seconds.
func (r *Registry) Step(dt float64) {
	for _, t := range r.triggers {
		if t.Scrub <= 0 || t.Settled() {
			continue
		}
		alpha := 1 - math.Exp(-scrubRate*dt/t.Scrub)
		next := t.applied + (t.raw-t.applied)*alpha
		if math.Abs(t.raw-next) < scrubEpsilon {
			next = t.raw
		}
		t.setApplied(next)
	}
}

func (r *Registry) Offset() float64 { return r.offset }

func (r *Registry) ViewportHeight() float64 { return r.viewportHeight }

func (r *Registry) Triggers() []*Trigger { return r.triggers }

func (r *Registry) Len() int { return len(r.triggers) }
