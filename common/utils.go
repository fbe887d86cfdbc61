package common

import "time"

// Coalesce returns the first value that is not the zero value of T.
// Used to give unnamed assets and nodes a generated fallback name.
//
// Parameters:
//   - values: candidates in order of preference
//
// Returns:
//   - T: the first non-zero candidate, or the zero value if every candidate is zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Positive returns v when it is greater than zero and fallback otherwise.
//
// Parameters:
//   - v: the configured value
//   - fallback: the value used when v is zero or negative
//
// Returns:
//   - T: v or fallback
func Positive[T ~int | ~float32 | ~float64 | time.Duration](v, fallback T) T {
	if v > 0 {
		return v
	}
	return fallback
}
