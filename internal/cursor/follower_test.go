package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollscene/internal/page"
	"scrollscene/internal/tween"
)

func newFollower(t *testing.T) (*Follower, *tween.Scheduler) {
	t.Helper()
	s := tween.NewScheduler()
	f, err := NewFollower(s, Options{Duration: 0.1, Ease: "none"})
	require.NoError(t, err)
	return f, s
}

func TestFollowerReachesPointerAfterDuration(t *testing.T) {
	f, s := newFollower(t)
	f.Move(100, 50)

	s.Step(0.05)
	assert.InDelta(t, 50, f.Position().X, 1e-9, "eases rather than snapping")
	assert.InDelta(t, 25, f.Position().Y, 1e-9)

	s.Step(0.05)
	assert.Equal(t, page.Vec2{X: 100, Y: 50}, f.Position())
	assert.Equal(t, 0, s.Len())
}

func TestLatestMoveSupersedes(t *testing.T) {
	f, s := newFollower(t)
	f.Move(100, 0)
	s.Step(0.05)
	require.InDelta(t, 50, f.Position().X, 1e-9)

	f.Move(0, 200)
	f.Move(10, 20)
	assert.Equal(t, 1, s.Len(), "one pending tween per marker")

	for i := 0; i < 10; i++ {
		s.Step(0.02)
	}
	assert.Equal(t, page.Vec2{X: 10, Y: 20}, f.Position(), "never summed with stale targets")
	assert.Equal(t, 3, f.Moves())
}

func TestReplacementStartsFromCurrentPosition(t *testing.T) {
	f, s := newFollower(t)
	f.Move(100, 0)
	s.Step(0.05)

	f.Move(100, 100)
	s.Step(0.05)
	// Halfway from (50,0) to (100,100).
	assert.InDelta(t, 75, f.Position().X, 1e-9)
	assert.InDelta(t, 50, f.Position().Y, 1e-9)
}

func TestRepeatedTargetDoesNotRestart(t *testing.T) {
	f, s := newFollower(t)
	f.Move(100, 0)
	s.Step(0.05)
	f.Move(100, 0)
	s.Step(0.05)
	assert.Equal(t, page.Vec2{X: 100}, f.Position())
	assert.Equal(t, 1, f.Moves())
}

func TestPollTurnsChangesIntoMoves(t *testing.T) {
	f, s := newFollower(t)
	x, y, ok := 10.0, 10.0, true
	src := SourceFunc(func() (float64, float64, bool) { return x, y, ok })

	f.Poll(src)
	assert.Equal(t, page.Vec2{X: 10, Y: 10}, f.Position(), "first sample places the marker")
	assert.Equal(t, 0, f.Moves())

	f.Poll(src)
	assert.Equal(t, 0, f.Moves(), "unchanged pointer is not an event")

	x = 30
	f.Poll(src)
	assert.Equal(t, 1, f.Moves())

	ok = false
	x = 500
	f.Poll(src)
	assert.Equal(t, 1, f.Moves())

	s.Step(1)
	assert.Equal(t, page.Vec2{X: 30, Y: 10}, f.Position())
}

func TestNewFollowerRejectsUnknownEase(t *testing.T) {
	_, err := NewFollower(tween.NewScheduler(), Options{Duration: 0.1, Ease: "zigzag"})
	assert.Error(t, err)
}
