package frame

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollscene/internal/engine2D/particle"
	"scrollscene/internal/page"
	"scrollscene/internal/scroll"
)

type countingPainter struct{ calls int }

func (p *countingPainter) Paint() { p.calls++ }

func newScrollSource() *scroll.Source {
	src := scroll.NewSource(scroll.DefaultConfig())
	src.SetLimit(5000)
	return src
}

func TestSchedulerRunsInRegistrationOrder(t *testing.T) {
	s := NewScheduler(0.1)
	var order []string
	s.Register("clock", func(Frame) { order = append(order, "clock") })
	s.Register("render", func(Frame) { order = append(order, "render") })

	start := time.Unix(100, 0)
	f := s.Tick(start)
	assert.Equal(t, 0.0, f.Delta)
	f = s.Tick(start.Add(16 * time.Millisecond))
	assert.InDelta(t, 0.016, f.Delta, 1e-9)
	assert.Equal(t, uint64(1), f.Index)

	assert.Equal(t, []string{"clock", "render", "clock", "render"}, order)
	assert.Equal(t, []string{"clock", "render"}, s.Names())
	assert.Equal(t, uint64(2), s.Frames())
}

func TestSchedulerClampsDelta(t *testing.T) {
	s := NewScheduler(0.1)
	start := time.Unix(100, 0)
	s.Tick(start)
	f := s.Tick(start.Add(3 * time.Second))
	assert.Equal(t, 0.1, f.Delta)
	f = s.Tick(start.Add(time.Second))
	assert.Equal(t, 0.0, f.Delta, "clock going backwards")
}

func TestHiddenWindowSkipsRenderButClockAdvances(t *testing.T) {
	src := newScrollSource()
	clock := NewClock(src)
	painter := &countingPainter{}
	field := &particle.Field{}
	visible := false
	loop := NewRenderLoop(VisibilityFunc(func() bool { return visible }), painter, field, src,
		RenderLoopOptions{Drift: page.Vec2{X: 0.0001, Y: 0.0005}})

	s := NewScheduler(0.1)
	s.Register("clock", clock.Tick)
	s.Register("render", func(f Frame) { loop.Tick(f) })

	src.ScrollTo(600, false)
	now := time.Unix(0, 0)
	for i := 0; i < 30; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Tick(now)
	}

	assert.Zero(t, painter.calls)
	assert.Equal(t, uint64(30), loop.Skipped())
	assert.Greater(t, src.State().Smoothed, 0.0, "scroll keeps moving while hidden")
	assert.Greater(t, clock.Moves(), uint64(0))
	assert.Equal(t, page.Vec2{}, field.Drift, "no backlog of drift")

	visible = true
	now = now.Add(16 * time.Millisecond)
	s.Tick(now)
	assert.Equal(t, 1, painter.calls)
	assert.InDelta(t, 0.0005, field.Drift.Y, 1e-12)
	assert.InDelta(t, 0.0001, field.Drift.X, 1e-12)
}

func TestRenderLoopPaintsOncePerVisibleFrame(t *testing.T) {
	painter := &countingPainter{}
	loop := NewRenderLoop(nil, painter, nil, nil, RenderLoopOptions{})
	for i := 0; i < 5; i++ {
		assert.True(t, loop.Tick(Frame{}))
	}
	assert.Equal(t, 5, painter.calls)
	assert.Equal(t, uint64(5), loop.Painted())
}

func TestRenderLoopScrollLift(t *testing.T) {
	src := newScrollSource()
	src.ScrollTo(1000, true)
	src.Advance(0)
	field := &particle.Field{}
	field.Base.Y = 1

	loop := NewRenderLoop(VisibilityFunc(func() bool { return true }), PainterFunc(func() {}), field, src,
		RenderLoopOptions{Drift: page.Vec2{Y: 0.0002}, ScrollLift: 0.0005})
	loop.Tick(Frame{})

	assert.InDelta(t, 0.5, field.PositionY, 1e-12)
	assert.InDelta(t, 1.0002, field.Rotation().Y, 1e-12, "drift composes with the scroll-driven base")
}

func TestMailboxDrainsOnLoopThread(t *testing.T) {
	m := NewMailbox()
	var wg sync.WaitGroup
	results := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Post(func() { results++ })
		}()
	}
	wg.Wait()

	require.Equal(t, 50, m.Len())
	assert.Equal(t, 50, m.Drain())
	assert.Equal(t, 50, results)
	assert.Equal(t, 0, m.Drain())
}

func TestMailboxPostDuringDrainWaits(t *testing.T) {
	m := NewMailbox()
	ran := 0
	m.Post(func() {
		ran++
		m.Post(func() { ran++ })
	})
	assert.Equal(t, 1, m.Drain())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, m.Drain())
	assert.Equal(t, 2, ran)
}
