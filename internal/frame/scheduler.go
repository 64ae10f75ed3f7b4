package frame

import "time"

// Frame is passed to every callback of one refresh.
type Frame struct {
	Index uint64
	Time  time.Time
	Delta float64 // seconds since the previous refresh, clamped
}

type Callback func(Frame)

type entry struct {
	name string
	fn   Callback
}

// Scheduler is the host's per-refresh callback mechanism: every registered
// callback runs once per Tick, in registration order, on the calling goroutine.
type Scheduler struct {
	entries  []entry
	maxDelta float64
	last     time.Time
	index    uint64
}

// NewScheduler clamps per-frame deltas to maxDelta seconds so a stalled frame does
// not turn into one large jump. Zero disables the clamp.
func NewScheduler(maxDelta float64) *Scheduler {
	return &Scheduler{maxDelta: maxDelta}
}

func (s *Scheduler) Register(name string, fn Callback) {
	s.entries = append(s.entries, entry{name: name, fn: fn})
}

// Tick runs one refresh at now. The first tick has a zero delta.
func (s *Scheduler) Tick(now time.Time) Frame {
	var dt float64
	if !s.last.IsZero() {
		dt = now.Sub(s.last).Seconds()
	}
	if dt < 0 {
		dt = 0
	}
	if s.maxDelta > 0 && dt > s.maxDelta {
		dt = s.maxDelta
	}
	s.last = now

	f := Frame{Index: s.index, Time: now, Delta: dt}
	s.index++
	for _, e := range s.entries {
		e.fn(f)
	}
	return f
}

// Names lists callbacks in run order.
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

func (s *Scheduler) Frames() uint64 { return s.index }
