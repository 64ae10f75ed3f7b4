package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

func newSource(t *testing.T, mutate func(*Config)) *Source {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	require.NoError(t, cfg.Validate())
	s := NewSource(cfg)
	s.SetLimit(1000)
	return s
}

// settle advances until the source stops moving and returns the emitted states.
func settle(t *testing.T, s *Source, maxFrames int) []State {
	t.Helper()
	var states []State
	s.OnScroll(func(st State) { states = append(states, st) })
	for i := 0; i < maxFrames && s.Animating(); i++ {
		s.Advance(frame)
	}
	require.False(t, s.Animating(), "source did not settle in %d frames", maxFrames)
	return states
}

func TestLerpConvergesMonotonically(t *testing.T) {
	s := newSource(t, nil)
	s.Wheel(0, 100)
	assert.InDelta(t, 110, s.State().Raw, 1e-9)
	assert.Equal(t, 0.0, s.State().Smoothed, "input must not move the smoothed offset")

	states := settle(t, s, 600)
	require.NotEmpty(t, states)

	prev := 0.0
	for _, st := range states {
		assert.GreaterOrEqual(t, st.Smoothed, prev)
		assert.LessOrEqual(t, st.Smoothed, st.Raw)
		assert.Equal(t, 1, st.Direction)
		prev = st.Smoothed
	}
	assert.Equal(t, s.State().Raw, s.State().Smoothed)
	assert.Greater(t, len(states), 10, "lerp should take several frames")
}

func TestAdvanceAtRestEmitsNothing(t *testing.T) {
	s := newSource(t, nil)
	called := 0
	s.OnScroll(func(State) { called++ })
	for i := 0; i < 10; i++ {
		assert.False(t, s.Advance(frame))
	}
	assert.Zero(t, called)
}

func TestWheelNormalization(t *testing.T) {
	s := newSource(t, nil)
	s.Wheel(0, 500)
	assert.InDelta(t, 110, s.State().Raw, 1e-9)

	raw := newSource(t, func(c *Config) { c.NormalizeWheel = false })
	raw.Wheel(0, 500)
	assert.InDelta(t, 550, raw.State().Raw, 1e-9)
}

func TestWheelOrientation(t *testing.T) {
	h := newSource(t, func(c *Config) { c.GestureOrientation = Horizontal; c.WheelMultiplier = 1 })
	h.Wheel(50, 10)
	assert.InDelta(t, 50, h.State().Raw, 1e-9)

	both := newSource(t, func(c *Config) { c.GestureOrientation = Both; c.WheelMultiplier = 1 })
	both.Wheel(30, 10)
	assert.InDelta(t, 30, both.State().Raw, 1e-9)
	both.Wheel(5, 20)
	assert.InDelta(t, 50, both.State().Raw, 1e-9)
}

func TestTargetClampedToLimit(t *testing.T) {
	s := newSource(t, nil)
	s.ScrollTo(5000, false)
	assert.Equal(t, 1000.0, s.State().Raw)
	s.ScrollTo(-20, false)
	assert.Equal(t, 0.0, s.State().Raw)

	s.ScrollTo(1000, true)
	s.Advance(frame)
	assert.Equal(t, 1.0, s.State().Progress())
}

func TestImmediateWithoutSmoothWheel(t *testing.T) {
	s := newSource(t, func(c *Config) { c.SmoothWheel = false })
	s.Wheel(0, 100)
	require.True(t, s.Advance(frame))
	assert.Equal(t, s.State().Raw, s.State().Smoothed)
	assert.False(t, s.Animating())
}

func TestDurationMode(t *testing.T) {
	s := newSource(t, func(c *Config) { c.Mode = ModeDuration; c.Duration = 0.5 })
	s.ScrollTo(400, false)
	for i := 0; i < 15; i++ {
		s.Advance(frame)
	}
	mid := s.State().Smoothed
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 400.0)

	for i := 0; i < 30; i++ {
		s.Advance(frame)
	}
	assert.Equal(t, 400.0, s.State().Smoothed)
}

func TestSpringModeSettles(t *testing.T) {
	s := newSource(t, func(c *Config) { c.Mode = ModeSpring })
	s.ScrollTo(300, false)
	settle(t, s, 1200)
	assert.Equal(t, 300.0, s.State().Smoothed)
}

func TestSpringFollowsFrameInterval(t *testing.T) {
	run := func(dt float64) float64 {
		s := newSource(t, func(c *Config) { c.Mode = ModeSpring })
		s.ScrollTo(800, false)
		for i := 0; i < 10; i++ {
			s.Advance(dt)
		}
		return s.State().Smoothed
	}

	fast, slow := run(1.0/240), run(1.0/60)
	assert.Greater(t, fast, 0.0)
	assert.Less(t, fast, slow, "ten short frames cover less time than ten long ones")
}

func TestZeroIntervalDoesNotMove(t *testing.T) {
	for _, mode := range []Mode{ModeLerp, ModeDuration, ModeSpring} {
		t.Run(string(mode), func(t *testing.T) {
			s := newSource(t, func(c *Config) { c.Mode = mode })
			s.ScrollTo(300, false)
			assert.False(t, s.Advance(0))
			assert.Equal(t, 0.0, s.State().Smoothed)
			assert.True(t, s.Animating())
		})
	}
}

func TestShrinkingLimitPullsOffsetBack(t *testing.T) {
	s := newSource(t, nil)
	s.ScrollTo(900, true)
	s.Advance(frame)
	require.Equal(t, 900.0, s.State().Smoothed)

	s.SetLimit(500)
	assert.Equal(t, 500.0, s.State().Raw)
	s.Advance(frame)
	assert.Equal(t, 500.0, s.State().Smoothed)
	assert.Equal(t, -1, s.State().Direction)
}

func TestConfigValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Mode = "warp" },
		func(c *Config) { c.Lerp = 0 },
		func(c *Config) { c.Mode = ModeDuration; c.Duration = 0 },
		func(c *Config) { c.Mode = ModeSpring; c.SpringDamping = 0 },
		func(c *Config) { c.GestureOrientation = "diagonal" },
		func(c *Config) { c.WheelMultiplier = 0 },
	}
	for i, mutate := range bad {
		cfg := DefaultConfig()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}
	assert.NoError(t, DefaultConfig().Validate())
}
