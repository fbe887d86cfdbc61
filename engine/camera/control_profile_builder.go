package camera

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ControlProfileOption is a functional option for configuring a ControlProfile.
type ControlProfileOption func(*ControlProfile)

// WithEnabled toggles the controller entirely. A disabled profile ignores input and never moves the camera.
func WithEnabled(enabled bool) ControlProfileOption {
	return func(p *ControlProfile) {
		p.enabled = enabled
	}
}

// WithPan toggles target panning.
func WithPan(enabled bool) ControlProfileOption {
	return func(p *ControlProfile) {
		p.enablePan = enabled
	}
}

// WithZoom toggles dolly in/out.
func WithZoom(enabled bool) ControlProfileOption {
	return func(p *ControlProfile) {
		p.enableZoom = enabled
	}
}

// WithRotate toggles orbiting around the target.
func WithRotate(enabled bool) ControlProfileOption {
	return func(p *ControlProfile) {
		p.enableRotate = enabled
	}
}

// WithDamping toggles inertia. When enabled each Update applies only DampingFactor of the pending motion.
func WithDamping(enabled bool) ControlProfileOption {
	return func(p *ControlProfile) {
		p.enableDamping = enabled
	}
}

// WithDampingFactor sets the share of pending motion applied per update, in (0, 1].
func WithDampingFactor(factor float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.dampingFactor = factor
	}
}

// WithPolarRange limits the angle from the +Y axis, in radians within [0, pi].
//
// Parameters:
//   - min, max: the allowed polar interval
//
// Returns:
//   - ControlProfileOption: option function to apply
func WithPolarRange(min, max float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.polar = Range{Min: min, Max: max}
	}
}

// WithAzimuthRange limits the angle around the +Y axis, measured from +Z towards +X.
// The interval may extend past pi to express a range that crosses the back of the orbit,
// for example [5pi/6, 7pi/6]; min must not exceed max.
//
// Parameters:
//   - min, max: the allowed azimuth interval
//
// Returns:
//   - ControlProfileOption: option function to apply
func WithAzimuthRange(min, max float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.azimuth = Range{Min: min, Max: max}
	}
}

// WithDistanceRange limits the camera-to-target distance.
//
// Parameters:
//   - min, max: the allowed distance interval
//
// Returns:
//   - ControlProfileOption: option function to apply
func WithDistanceRange(min, max float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.distance = Range{Min: min, Max: max}
	}
}

// WithTargetClamp confines the orbit target to an axis-aligned box.
//
// Parameters:
//   - min, max: opposite corners of the clamp box
//
// Returns:
//   - ControlProfileOption: option function to apply
func WithTargetClamp(min, max mgl32.Vec3) ControlProfileOption {
	return func(p *ControlProfile) {
		p.targetClamp = common.Box3{Min: min, Max: max}
		p.hasTargetClamp = true
	}
}

// WithRotateSpeed scales rotation input.
func WithRotateSpeed(speed float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.rotateSpeed = speed
	}
}

// WithPanSpeed scales pan input.
func WithPanSpeed(speed float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.panSpeed = speed
	}
}

// WithZoomSpeed scales dolly input.
func WithZoomSpeed(speed float32) ControlProfileOption {
	return func(p *ControlProfile) {
		p.zoomSpeed = speed
	}
}
