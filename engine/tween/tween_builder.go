package tween

// TweenBuilderOption is a functional option for configuring a Tween.
type TweenBuilderOption func(*tweenImpl)

// WithEasing overrides the default QuadraticInOut easing. A nil function is ignored.
//
// Parameters:
//   - easing: the easing function
//
// Returns:
//   - TweenBuilderOption: option function to apply
func WithEasing(easing EasingFunc) TweenBuilderOption {
	return func(t *tweenImpl) {
		if easing != nil {
			t.easing = easing
		}
	}
}

// WithOnUpdate registers a callback invoked after the target is written on every tick.
//
// Parameters:
//   - fn: receives the eased progress in [0, 1]
//
// Returns:
//   - TweenBuilderOption: option function to apply
func WithOnUpdate(fn func(progress float32)) TweenBuilderOption {
	return func(t *tweenImpl) {
		t.onUpdate = fn
	}
}

// WithOnComplete registers a callback invoked exactly once when the tween reaches its goal.
// It is not invoked for cancelled tweens.
//
// Parameters:
//   - fn: the completion callback
//
// Returns:
//   - TweenBuilderOption: option function to apply
func WithOnComplete(fn func()) TweenBuilderOption {
	return func(t *tweenImpl) {
		t.onComplete = fn
	}
}
