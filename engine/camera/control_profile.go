package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/chewxy/math32"
)

// Range is a closed interval of allowed values. Infinite bounds disable the limit.
type Range struct {
	Min float32
	Max float32
}

// Unbounded returns a range with infinite bounds.
func Unbounded() Range {
	return Range{Min: math32.Inf(-1), Max: math32.Inf(1)}
}

// Bounded reports whether both ends are finite.
func (r Range) Bounded() bool {
	return !math32.IsInf(r.Min, 0) && !math32.IsInf(r.Max, 0)
}

// Clamp limits v to the range.
func (r Range) Clamp(v float32) float32 {
	return math32.Max(r.Min, math32.Min(r.Max, v))
}

// Contains reports whether v lies within the range, inclusive.
func (r Range) Contains(v float32) bool {
	return v >= r.Min && v <= r.Max
}

// ControlProfile is an immutable set of orbit limits and input flags.
// Profiles are only obtainable through NewControlProfile, which validates them, and
// are swapped into a controller wholesale; no field ever carries over from a previous profile.
type ControlProfile struct {
	name string

	enabled       bool
	enablePan     bool
	enableZoom    bool
	enableRotate  bool
	enableDamping bool
	dampingFactor float32

	polar    Range
	azimuth  Range
	distance Range

	targetClamp    common.Box3
	hasTargetClamp bool

	rotateSpeed float32
	panSpeed    float32
	zoomSpeed   float32
}

// NewControlProfile builds and validates a profile. Unset fields take the free-orbit defaults:
// everything enabled except damping, polar [0, pi], unbounded azimuth, distance [0, +inf), no target clamp.
//
// Parameters:
//   - name: identifies the profile in logs
//   - options: functional options overriding defaults
//
// Returns:
//   - ControlProfile: the validated profile
//   - error: *common.ConfigError if any bound is inverted or out of domain
func NewControlProfile(name string, options ...ControlProfileOption) (ControlProfile, error) {
	p := ControlProfile{
		name:          name,
		enabled:       true,
		enablePan:     true,
		enableZoom:    true,
		enableRotate:  true,
		dampingFactor: 0.05,
		polar:         Range{Min: 0, Max: math32.Pi},
		azimuth:       Unbounded(),
		distance:      Range{Min: 0, Max: math32.Inf(1)},
		rotateSpeed:   1,
		panSpeed:      1,
		zoomSpeed:     1,
	}
	for _, opt := range options {
		opt(&p)
	}
	if err := p.validate(); err != nil {
		return ControlProfile{}, err
	}
	return p, nil
}

// validate checks every bound in the profile.
func (p ControlProfile) validate() error {
	ranges := []struct {
		field string
		r     Range
	}{
		{"polar", p.polar},
		{"azimuth", p.azimuth},
		{"distance", p.distance},
	}
	for _, rc := range ranges {
		if math32.IsNaN(rc.r.Min) || math32.IsNaN(rc.r.Max) {
			return &common.ConfigError{Field: p.field(rc.field), Reason: "bound is NaN"}
		}
		if rc.r.Min > rc.r.Max {
			return &common.ConfigError{
				Field:  p.field(rc.field),
				Reason: fmt.Sprintf("min %g > max %g", rc.r.Min, rc.r.Max),
			}
		}
	}
	if p.polar.Min < 0 || p.polar.Max > math32.Pi {
		return &common.ConfigError{Field: p.field("polar"), Reason: "must lie within [0, pi]"}
	}
	if p.distance.Min < 0 {
		return &common.ConfigError{Field: p.field("distance"), Reason: "min must not be negative"}
	}
	if p.hasTargetClamp && p.targetClamp.Empty() {
		return &common.ConfigError{
			Field:  p.field("target_clamp"),
			Reason: fmt.Sprintf("min %v exceeds max %v", p.targetClamp.Min, p.targetClamp.Max),
		}
	}
	if p.dampingFactor <= 0 || p.dampingFactor > 1 {
		return &common.ConfigError{Field: p.field("damping_factor"), Reason: "must lie within (0, 1]"}
	}
	return nil
}

func (p ControlProfile) field(name string) string {
	if p.name == "" {
		return name
	}
	return p.name + "." + name
}

func (p ControlProfile) Name() string {
	return p.name
}

func (p ControlProfile) Enabled() bool {
	return p.enabled
}

func (p ControlProfile) EnablePan() bool {
	return p.enablePan
}

func (p ControlProfile) EnableZoom() bool {
	return p.enableZoom
}

func (p ControlProfile) EnableRotate() bool {
	return p.enableRotate
}

func (p ControlProfile) EnableDamping() bool {
	return p.enableDamping
}

func (p ControlProfile) DampingFactor() float32 {
	return p.dampingFactor
}

func (p ControlProfile) Polar() Range {
	return p.polar
}

func (p ControlProfile) Azimuth() Range {
	return p.azimuth
}

func (p ControlProfile) Distance() Range {
	return p.distance
}

func (p ControlProfile) RotateSpeed() float32 {
	return p.rotateSpeed
}

func (p ControlProfile) PanSpeed() float32 {
	return p.panSpeed
}

func (p ControlProfile) ZoomSpeed() float32 {
	return p.zoomSpeed
}

// TargetClamp returns the box the orbit target is confined to, if the profile defines one.
//
// Returns:
//   - common.Box3: the clamp box
//   - bool: false when the target is unconstrained
func (p ControlProfile) TargetClamp() (common.Box3, bool) {
	return p.targetClamp, p.hasTargetClamp
}
