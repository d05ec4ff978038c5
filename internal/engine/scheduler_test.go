package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepUntilSteady drives the scheduler until the current transition
// (if any) commits.
func stepUntilSteady(t *testing.T, s *Scheduler, overall float64) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if !s.Transitioning() {
			return
		}
		s.Step(overall)
	}
	t.Fatal("transition never committed")
}

func TestScheduler_SilenceStillAdvances(t *testing.T) {
	s := newScheduler()
	s.SetDuration(400)

	// With zero intensity the dynamic duration equals the configured
	// one; the transition must begin on frame duration+1.
	for i := 0; i < 400; i++ {
		s.Step(0)
		assert.False(t, s.Transitioning(), "frame %d", i)
	}

	s.Step(0)
	assert.True(t, s.Transitioning())
	assert.Equal(t, PatternRays, s.Next())
	assert.Equal(t, PatternFractal, s.Current())
}

func TestScheduler_LoudAudioShortensDuration(t *testing.T) {
	s := newScheduler()
	s.SetDuration(450)

	// Full intensity shaves 200 frames but never below the floor.
	frames := 0
	for !s.Transitioning() {
		s.Step(1)
		frames++
		require.Less(t, frames, 450)
	}
	assert.Equal(t, 301, frames) // floor of 300, transition on the next frame

	s.SetDuration(10000)
	stepUntilSteady(t, s, 1)
	frames = 0
	for !s.Transitioning() {
		s.Step(1)
		frames++
	}
	assert.Equal(t, 9801, frames)
}

func TestScheduler_ProgressStaysInRange(t *testing.T) {
	s := newScheduler()
	s.SetDuration(300)
	s.SetSpeed(0.3) // coarse steps that would overshoot without the commit

	for i := 0; i < 5000; i++ {
		s.Step(1)
		assert.GreaterOrEqual(t, s.Progress(), 0.0)
		assert.LessOrEqual(t, s.Progress(), 1.0)
		if !s.Transitioning() {
			assert.Zero(t, s.Progress())
		}
	}
}

func TestScheduler_CycleIsDeterministic(t *testing.T) {
	s := newScheduler()
	s.SetDuration(300)
	start := s.Current()

	seen := make([]Pattern, 0, 10)
	for len(seen) < 10 {
		was := s.Current()
		for !s.Transitioning() {
			s.Step(1)
		}
		stepUntilSteady(t, s, 1)
		require.Equal(t, was.Next(), s.Current())
		seen = append(seen, s.Current())
	}

	// After ten completed transitions the cycle wraps to the start.
	assert.Equal(t, start, s.Current())
}

func TestScheduler_TransitionAcceleratedByAudio(t *testing.T) {
	quiet := newScheduler()
	loud := newScheduler()
	for _, s := range []*Scheduler{quiet, loud} {
		s.SetDuration(300)
		s.SetSpeed(0.01)
		for !s.Transitioning() {
			s.Step(0)
		}
	}

	quietFrames, loudFrames := 0, 0
	for quiet.Transitioning() {
		quiet.Step(0)
		quietFrames++
	}
	for loud.Transitioning() {
		loud.Step(1)
		loudFrames++
	}

	assert.Less(t, loudFrames, quietFrames)
}
