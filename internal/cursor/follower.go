package cursor

import (
	"scrollscene/internal/page"
	"scrollscene/internal/tween"
)

// tweenKey is the scheduler slot owned by the follower. Only one tween may be
// pending under it.
const tweenKey = "cursor"

type Options struct {
	Duration float64
	Ease     string
}

// Source yields the pointer position in window coordinates. ok is false when the
// pointer cannot be read this frame.
type Source interface {
	Pointer() (x, y float64, ok bool)
}

type SourceFunc func() (float64, float64, bool)

func (f SourceFunc) Pointer() (float64, float64, bool) { return f() }

// Follower eases a marker toward the pointer. Every move starts a fresh tween from
// wherever the marker is now, replacing the previous one.
type Follower struct {
	tweens   *tween.Scheduler
	duration float64
	ease     tween.Ease

	pos    page.Vec2
	target page.Vec2
	last   page.Vec2
	seen   bool
	moves  int
}

func NewFollower(s *tween.Scheduler, opts Options) (*Follower, error) {
	ease, err := tween.ParseEase(opts.Ease)
	if err != nil {
		return nil, err
	}
	return &Follower{tweens: s, duration: opts.Duration, ease: ease}, nil
}

// Move handles one pointer-move event.
func (f *Follower) Move(x, y float64) {
	to := page.Vec2{X: x, Y: y}
	if to == f.target && f.tweens.Active(tweenKey) {
		return
	}
	from := f.pos
	f.target = to
	f.moves++
	f.tweens.Set(tweenKey, &tween.Tween{
		Duration: f.duration,
		Ease:     f.ease,
		OnUpdate: func(v float64) {
			f.pos = page.Vec2{
				X: from.X + (to.X-from.X)*v,
				Y: from.Y + (to.Y-from.Y)*v,
			}
		},
	})
}

// Jump places the marker without animating, cancelling any pending tween.
func (f *Follower) Jump(x, y float64) {
	f.tweens.Kill(tweenKey)
	f.pos = page.Vec2{X: x, Y: y}
	f.target = f.pos
}

// Poll reads src and turns a changed position into a move event.
func (f *Follower) Poll(src Source) {
	x, y, ok := src.Pointer()
	if !ok {
		return
	}
	p := page.Vec2{X: x, Y: y}
	if f.seen && p == f.last {
		return
	}
	if !f.seen {
		f.seen = true
		f.last = p
		f.Jump(x, y)
		return
	}
	f.last = p
	f.Move(x, y)
}

func (f *Follower) Position() page.Vec2 { return f.pos }

func (f *Follower) Target() page.Vec2 { return f.target }

// Moves counts move events that started a tween.
func (f *Follower) Moves() int { return f.moves }
