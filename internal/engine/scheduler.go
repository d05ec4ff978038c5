package engine

const (
	defaultPatternDuration = 600  // frames
	defaultTransitionSpeed = 0.02 // progress per frame
	minPatternDuration     = 300
)

// Scheduler is the pattern-transition state machine. At any moment it
// is either steady on one pattern or blending two; transitionProgress
// stays in [0,1] and the cycle order is fixed.
type Scheduler struct {
	current Pattern
	next    Pattern

	timer    int // frames elapsed in the current pattern
	duration int // configured frames per pattern

	transitioning bool
	progress      float64
	speed         float64
}

func newScheduler() *Scheduler {
	return &Scheduler{
		current:  PatternFractal,
		next:     PatternFractal.Next(),
		duration: defaultPatternDuration,
		speed:    defaultTransitionSpeed,
	}
}

// Step evaluates the transition rule once per frame. Loud audio
// shortens the dwell time and accelerates the blend.
func (s *Scheduler) Step(overall float64) {
	if !s.transitioning {
		s.timer++
		dynamic := s.duration - int(overall*200)
		if dynamic < minPatternDuration {
			dynamic = minPatternDuration
		}
		if s.timer > dynamic {
			s.next = s.current.Next()
			s.transitioning = true
			s.progress = 0
		}
		return
	}

	s.progress += s.speed * (1 + overall*0.5)
	if s.progress >= 1 {
		s.current = s.next
		s.progress = 0
		s.timer = 0
		s.transitioning = false
	}
}

// Current returns the active pattern.
func (s *Scheduler) Current() Pattern { return s.current }

// Next returns the incoming pattern of the transition in progress; its
// value is only meaningful while Transitioning reports true.
func (s *Scheduler) Next() Pattern { return s.next }

// Transitioning reports whether a cross-fade is in progress.
func (s *Scheduler) Transitioning() bool { return s.transitioning }

// Progress returns the cross-fade progress in [0,1].
func (s *Scheduler) Progress() float64 { return s.progress }

// SetDuration sets the configured frames per pattern. Out-of-range
// values are accepted; the dynamic floor still applies.
func (s *Scheduler) SetDuration(frames int) { s.duration = frames }

// Duration returns the configured frames per pattern.
func (s *Scheduler) Duration() int { return s.duration }

// SetSpeed sets the transition progress advanced per frame.
func (s *Scheduler) SetSpeed(perFrame float64) { s.speed = perFrame }

// Speed returns the configured transition speed.
func (s *Scheduler) Speed() float64 { return s.speed }
