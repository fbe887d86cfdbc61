package tween

// EasingFunc maps normalized time in [0, 1] to eased progress in [0, 1].
// Reference: https://easings.net/
type EasingFunc func(t float32) float32

// Linear applies no easing.
func Linear(t float32) float32 {
	return t
}

// QuadraticIn starts slow and accelerates: f(t) = t².
func QuadraticIn(t float32) float32 {
	return t * t
}

// QuadraticOut starts fast and decelerates: f(t) = 1 - (1-t)².
func QuadraticOut(t float32) float32 {
	return t * (2 - t)
}

// QuadraticInOut is the default easing: slow at both ends, fastest at the midpoint.
//
//	t < 0.5: f(t) = 2t²
//	t >= 0.5: f(t) = 1 - (-2t + 2)² / 2
func QuadraticInOut(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// CubicIn starts slow and accelerates: f(t) = t³.
func CubicIn(t float32) float32 {
	return t * t * t
}

// CubicOut starts fast and decelerates: f(t) = 1 - (1-t)³.
func CubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// CubicInOut is the cubic counterpart of QuadraticInOut.
func CubicInOut(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
