package tween

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

type tweenImpl struct {
	target     Target
	goal       []float32
	duration   time.Duration
	easing     EasingFunc
	onUpdate   func(progress float32)
	onComplete func()
}

// Tween describes an interpolation of a Target from its value at schedule time to a goal.
// A Tween is inert until handed to a Scheduler.
type Tween interface {
	// Target returns the driven property.
	Target() Target

	// Goal returns a copy of the goal values.
	Goal() []float32

	// Duration returns the interpolation length.
	Duration() time.Duration

	// Easing returns the easing function.
	Easing() EasingFunc
}

var _ Tween = &tweenImpl{}

// NewTween creates a tween towards goal over duration, eased with QuadraticInOut unless overridden.
//
// Parameters:
//   - target: the property to drive
//   - goal: the goal values, one per target component
//   - duration: the interpolation length; zero or negative completes on the first tick
//   - options: functional options (easing, callbacks)
//
// Returns:
//   - Tween: the new tween
func NewTween(target Target, goal []float32, duration time.Duration, options ...TweenBuilderOption) Tween {
	g := make([]float32, len(goal))
	copy(g, goal)
	t := &tweenImpl{
		target:   target,
		goal:     g,
		duration: duration,
		easing:   QuadraticInOut,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

// NewVec3Tween is NewTween for a three-component goal.
func NewVec3Tween(target Target, goal mgl32.Vec3, duration time.Duration, options ...TweenBuilderOption) Tween {
	return NewTween(target, goal[:], duration, options...)
}

func (t *tweenImpl) Target() Target {
	return t.target
}

func (t *tweenImpl) Goal() []float32 {
	out := make([]float32, len(t.goal))
	copy(out, t.goal)
	return out
}

func (t *tweenImpl) Duration() time.Duration {
	return t.duration
}

func (t *tweenImpl) Easing() EasingFunc {
	return t.easing
}
