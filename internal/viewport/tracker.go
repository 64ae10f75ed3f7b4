package viewport

import "scrollscene/internal/utils"

var logger = utils.For("viewport")

type Size struct {
	Width  int
	Height int
}

func (s Size) Aspect() float64 {
	if s.Height == 0 {
		return 1
	}
	return float64(s.Width) / float64(s.Height)
}

// Tracker coalesces resize events. Resize only records the latest size; Apply,
// called once per frame before painting, pushes it to the camera and listeners.
type Tracker struct {
	camera    *Camera
	size      Size
	pending   *Size
	applied   int
	listeners []func(Size)
}

// NewTracker applies initial to cam immediately.
func NewTracker(cam *Camera, initial Size) *Tracker {
	t := &Tracker{camera: cam}
	t.apply(initial)
	return t
}

// OnResize registers fn to run after each applied resize.
func (t *Tracker) OnResize(fn func(Size)) {
	t.listeners = append(t.listeners, fn)
}

// Resize records a resize event. Zero or negative sizes, as reported while a
// window is minimized, are ignored.
func (t *Tracker) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s := Size{Width: width, Height: height}
	if t.pending == nil && s == t.size {
		return
	}
	t.pending = &s
}

// Apply pushes the last recorded size, if any, and reports whether it did.
func (t *Tracker) Apply() bool {
	if t.pending == nil {
		return false
	}
	s := *t.pending
	t.pending = nil
	if s == t.size {
		return false
	}
	t.apply(s)
	for _, fn := range t.listeners {
		fn(s)
	}
	return true
}

func (t *Tracker) apply(s Size) {
	t.size = s
	t.camera.Aspect = s.Aspect()
	t.camera.SetOutputSize(s.Width, s.Height)
	t.camera.UpdateProjectionMatrix()
	t.applied++
	logger.Debug("Viewport resized to %dx%d (aspect %.3f)", s.Width, s.Height, t.camera.Aspect)
}

func (t *Tracker) Size() Size { return t.size }

func (t *Tracker) Pending() bool { return t.pending != nil }

// Applied counts how many sizes have been pushed, including the initial one.
func (t *Tracker) Applied() int { return t.applied }

func (t *Tracker) Camera() *Camera { return t.camera }
