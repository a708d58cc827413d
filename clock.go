package impulse

import (
	"time"
)

// Clock measures wall time between Start and Stop.
type Clock struct {
	now func() time.Time

	start, stop time.Time
}

// NewClock returns a clock reading time.Now. Start and Stop are both set, so Difference
// is near zero until the clock is used.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	c := &Clock{now: now}
	c.Start()
	c.Stop()
	return c
}

func (c *Clock) Start() {
	c.start = c.now()
}

func (c *Clock) Stop() {
	c.stop = c.now()
}

// Elapsed is the time since the last Start.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// Difference is the time between the last Start and Stop.
func (c *Clock) Difference() time.Duration {
	return c.stop.Sub(c.start)
}

// Current is the clock reading in nanoseconds.
func (c *Clock) Current() int64 {
	return c.now().UnixNano()
}

// MAX_ACCUMULATOR caps the time a Stepper catches up in one call.
const MAX_ACCUMULATOR = 0.1

// Stepper runs a Scene at its fixed Dt from variable frame times.
//
// In FrameStepping mode time is not accumulated; the scene moves only by one step per
// RequestStep.
type Stepper struct {
	Scene *Scene
	Clock *Clock

	MaxAccumulator float64
	FrameStepping  bool

	accumulator float64
	canStep     bool
}

func NewStepper(scene *Scene) *Stepper {
	return &Stepper{
		Scene:          scene,
		Clock:          NewClock(),
		MaxAccumulator: MAX_ACCUMULATOR,
	}
}

// Update feeds the time since the previous Update into Advance.
func (s *Stepper) Update() int {
	elapsed := s.Clock.Elapsed()
	s.Clock.Start()
	return s.Advance(elapsed.Seconds())
}

// Advance adds elapsed seconds to the accumulator and steps the scene while a full Dt
// is available. It returns the number of steps taken.
func (s *Stepper) Advance(elapsed float64) int {
	dt := s.Scene.Dt()

	s.accumulator += elapsed
	s.accumulator = Clamp(s.accumulator, 0, s.MaxAccumulator)

	steps := 0
	for s.accumulator >= dt {
		if !s.FrameStepping {
			s.Scene.Step()
			steps++
		} else if s.canStep {
			s.Scene.Step()
			steps++
			s.canStep = false
		}
		s.accumulator -= dt
	}
	return steps
}

// RequestStep lets the next Advance take one step while FrameStepping.
func (s *Stepper) RequestStep() {
	s.canStep = true
}

func (s *Stepper) Accumulator() float64 {
	return s.accumulator
}
