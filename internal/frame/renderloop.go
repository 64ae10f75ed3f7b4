package frame

import (
	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
)

// Visibility reports whether the host window is currently shown.
type Visibility interface {
	Visible() bool
}

type VisibilityFunc func() bool

func (f VisibilityFunc) Visible() bool { return f() }

// Painter issues one render of the current scene.
type Painter interface {
	Paint()
}

type PainterFunc func()

func (f PainterFunc) Paint() { f() }

type RenderLoopOptions struct {
	Drift      page.Vec2 // rotation added to the field every visible frame
	ScrollLift float64   // field PositionY per pixel of smoothed scroll
}

// RenderLoop paints once per refresh while the window is visible. Hidden frames
// are dropped, not queued: no drift accumulates and nothing is painted.
type RenderLoop struct {
	visibility Visibility
	painter    Painter
	field      *particle.Field
	source     *scroll.Source
	opts       RenderLoopOptions

	painted uint64
	skipped uint64
}

// NewRenderLoop builds a loop. field and source may be nil.
func NewRenderLoop(v Visibility, p Painter, field *particle.Field, source *scroll.Source, opts RenderLoopOptions) *RenderLoop {
	return &RenderLoop{visibility: v, painter: p, field: field, source: source, opts: opts}
}

// Tick is the frame callback. It reports whether a frame was painted.
func (r *RenderLoop) Tick(Frame) bool {
	if r.visibility != nil && !r.visibility.Visible() {
		r.skipped++
		return false
	}

	if r.field != nil {
		r.field.AddDrift(r.opts.Drift)
		if r.opts.ScrollLift != 0 && r.source != nil {
			r.field.PositionY = r.source.State().Smoothed * r.opts.ScrollLift
		}
	}

	r.painter.Paint()
	r.painted++
	return true
}

func (r *RenderLoop) Painted() uint64 { return r.painted }

func (r *RenderLoop) Skipped() uint64 { return r.skipped }
