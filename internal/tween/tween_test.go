package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEaseEndpoints(t *testing.T) {
	names := []string{"none", "linear", "", "power1", "power1.in", "power2.out", "power3.inOut",
		"power4.out", "sine.in", "sine.inOut", "expo.out", "circ.in", "quad.out", "cubic.inOut"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			e, err := ParseEase(name)
			require.NoError(t, err)
			assert.InDelta(t, 0, e(0), 1e-9)
			assert.InDelta(t, 1, e(1), 1e-9)
			assert.InDelta(t, 0, e(-0.5), 1e-9)
			assert.InDelta(t, 1, e(1.5), 1e-9)

			prev := e(0)
			for i := 1; i <= 100; i++ {
				cur := e(float64(i) / 100)
				assert.GreaterOrEqual(t, cur+1e-12, prev, "ease must be monotonic")
				prev = cur
			}
		})
	}
}

func TestParseEaseShapes(t *testing.T) {
	out := MustEase("power1.out")
	in := MustEase("power1.in")
	assert.Greater(t, out(0.5), 0.5)
	assert.Less(t, in(0.5), 0.5)
	assert.InDelta(t, 0.75, out(0.5), 1e-9)
	assert.InDelta(t, 0.5, MustEase("power2.inOut")(0.5), 1e-9)
}

func TestParseEaseOvershootFamilies(t *testing.T) {
	back := MustEase("back.out")
	assert.Greater(t, back(0.7), 1.0, "back overshoots the end value")
	assert.Equal(t, 1.0, back(1))

	for _, name := range []string{"bounce.out", "bounce.in", "bounce.inOut", "expo.in", "expo.out"} {
		e := MustEase(name)
		for i := 0; i <= 100; i++ {
			v := e(float64(i) / 100)
			assert.GreaterOrEqual(t, v, 0.0, name)
			assert.LessOrEqual(t, v, 1.0, name)
		}
	}

	elastic := MustEase("elastic.out")
	assert.Equal(t, 0.0, elastic(0))
	assert.Equal(t, 1.0, elastic(1))
}

func TestParseEaseRejectsUnknown(t *testing.T) {
	_, err := ParseEase("wobble.out")
	assert.Error(t, err)
	_, err = ParseEase("power1.sideways")
	assert.Error(t, err)
	assert.Panics(t, func() { MustEase("nope") })
}

func TestSchedulerRunsToCompletion(t *testing.T) {
	s := NewScheduler()
	var values []float64
	completed := 0
	s.Set("x", &Tween{
		Duration:   1,
		Ease:       Linear,
		OnUpdate:   func(v float64) { values = append(values, v) },
		OnComplete: func() { completed++ },
	})

	for i := 0; i < 4; i++ {
		s.Step(0.25)
	}
	s.Step(0.25)

	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, values)
	assert.Equal(t, 1, completed)
	assert.False(t, s.Active("x"))
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerReplaceSupersedes(t *testing.T) {
	s := NewScheduler()
	firstCompleted := false
	first := &Tween{Duration: 1, OnComplete: func() { firstCompleted = true }}
	s.Set("cursor", first)
	s.Step(0.5)

	var last float64
	s.Set("cursor", &Tween{Duration: 1, Ease: Linear, OnUpdate: func(v float64) { last = v }})
	s.Step(2)

	assert.False(t, firstCompleted)
	assert.False(t, first.Done())
	assert.Equal(t, 1.0, last)
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerAfter(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After("submit", 1.5, func() { calls++ })

	s.Step(1)
	assert.Equal(t, 0, calls)
	assert.True(t, s.Active("submit"))

	s.Step(0.6)
	assert.Equal(t, 1, calls)
	assert.False(t, s.Active("submit"))
}

func TestSchedulerCallbackMayReschedule(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var again func()
	again = func() {
		calls++
		if calls < 3 {
			s.After("loop", 1, again)
		}
	}
	s.After("loop", 1, again)

	for i := 0; i < 5; i++ {
		s.Step(1)
	}
	assert.Equal(t, 3, calls)
	assert.False(t, s.Active("loop"))
}

func TestSchedulerKill(t *testing.T) {
	s := NewScheduler()
	called := false
	s.After("a", 1, func() { called = true })
	assert.True(t, s.Kill("a"))
	assert.False(t, s.Kill("a"))
	s.Step(2)
	assert.False(t, called)
}
