package frame

import "scrollscene/internal/scroll"

// Clock advances the scroll source once per refresh. It is never gated on
// visibility, so scroll state keeps moving while nothing is painted.
type Clock struct {
	source *scroll.Source
	ticks  uint64
	moves  uint64
}

func NewClock(src *scroll.Source) *Clock {
	return &Clock{source: src}
}

// Tick is the frame callback. Listeners of the source (the trigger registry) are
// notified from inside Advance when the offset changed.
func (c *Clock) Tick(f Frame) {
	c.ticks++
	if c.source.Advance(f.Delta) {
		c.moves++
	}
}

func (c *Clock) Ticks() uint64 { return c.ticks }

// Moves counts ticks on which the smoothed offset changed.
func (c *Clock) Moves() uint64 { return c.moves }
