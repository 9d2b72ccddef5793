package engine

import "time"

// DefaultDuration is how long a Tween takes to reach its target.
const DefaultDuration = 300 * time.Millisecond

// Easing maps linear progress in [0, 1] to eased progress.
// The result may leave [0, 1] for curves with overshoot.
type Easing func(p float64) float64

// Spring settles with a slight overshoot past the target.
func Spring(p float64) float64 {
	return 1 + 2*(p-1)*(p-1)*(p-0.5)
}

// EaseOut decelerates monotonically into the target.
func EaseOut(p float64) float64 {
	return 1 - (p-1)*(p-1)
}

// Tween interpolates a scalar from its last value to its current target over
// a fixed duration. Sampling is a pure function of time, so it can be called
// any number of times per frame.
type Tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	ease     Easing
	clock    Clock
}

// NewTween creates a tween resting at initial.
// A nil clock falls back to SystemClock, a nil easing to EaseOut.
func NewTween(initial float64, ease Easing, clock Clock) *Tween {
	if clock == nil {
		clock = SystemClock{}
	}
	if ease == nil {
		ease = EaseOut
	}
	return &Tween{
		from:     initial,
		to:       initial,
		start:    clock.Now(),
		duration: DefaultDuration,
		ease:     ease,
		clock:    clock,
	}
}

// NewSpring creates a tween using the Spring curve.
func NewSpring(initial float64, clock Clock) *Tween {
	return NewTween(initial, Spring, clock)
}

// NewEaseOut creates a tween using the EaseOut curve.
func NewEaseOut(initial float64, clock Clock) *Tween {
	return NewTween(initial, EaseOut, clock)
}

// Set retargets the tween to v, starting from wherever it is right now.
func (t *Tween) Set(v float64) {
	t.SetAt(v, t.clock.Now())
}

// SetAt retargets the tween to v as of the given instant.
func (t *Tween) SetAt(v float64, now time.Time) {
	t.from = t.SampleAt(now)
	t.to = v
	t.start = now
}

// Value samples the tween at the clock's current time.
func (t *Tween) Value() float64 {
	return t.SampleAt(t.clock.Now())
}

// SampleAt returns the interpolated value at the given instant.
func (t *Tween) SampleAt(now time.Time) float64 {
	return t.from + t.ease(t.progress(now))*(t.to-t.from)
}

// Target returns the value the tween is heading to.
func (t *Tween) Target() float64 {
	return t.to
}

// Done reports whether the tween has reached its target at the given instant.
func (t *Tween) Done(now time.Time) bool {
	return t.progress(now) >= 1
}

// progress returns linear progress clamped to [0, 1].
func (t *Tween) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	return min(max(p, 0), 1)
}
