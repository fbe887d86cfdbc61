package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Profile names used by the showcase.
const (
	ProfileOverview   = "overview"
	ProfileLocked     = "locked"
	ProfileInspectBox = "inspect-box"
	ProfileDisabled   = "disabled"
)

// OverviewOptions returns the options of the room overview profile: a damped look-around
// from just in front of the target with horizontal panning along a one-unit rail.
func OverviewOptions() []ControlProfileOption {
	return []ControlProfileOption{
		WithDamping(true),
		WithPan(true),
		WithPanSpeed(21),
		WithZoom(false),
		WithRotate(true),
		WithDistanceRange(0, 0.1),
		WithPolarRange(1.1, 1.5),
		WithAzimuthRange(math32.Pi/1.2, 2*math32.Pi-math32.Pi/1.2),
		WithTargetClamp(mgl32.Vec3{-1, 0.7, -3}, mgl32.Vec3{1, 0.7, -3}),
	}
}

// InspectBoxOptions returns the options of the rotate-only profile used while looking at the box.
func InspectBoxOptions() []ControlProfileOption {
	return []ControlProfileOption{
		WithDamping(true),
		WithPan(false),
		WithZoom(false),
		WithRotate(true),
		WithPolarRange(0.6, 1.3),
		WithAzimuthRange(-3*math32.Pi/4, -math32.Pi/2),
	}
}

// LockedOptions returns the options of the profile used during scripted camera moves:
// input is ignored but the controller keeps tracking the tweened position and target.
func LockedOptions() []ControlProfileOption {
	return []ControlProfileOption{
		WithPan(false),
		WithZoom(false),
		WithRotate(false),
	}
}

// DisabledOptions returns the options of the profile that switches the controller off.
func DisabledOptions() []ControlProfileOption {
	return []ControlProfileOption{
		WithEnabled(false),
		WithPan(false),
		WithZoom(false),
		WithRotate(false),
	}
}

// DefaultProfiles builds the four built-in profiles keyed by name.
//
// Returns:
//   - map[string]ControlProfile: the validated profiles
//   - error: never non-nil for the built-in values, kept for symmetry with configured profiles
func DefaultProfiles() (map[string]ControlProfile, error) {
	builders := map[string][]ControlProfileOption{
		ProfileOverview:   OverviewOptions(),
		ProfileLocked:     LockedOptions(),
		ProfileInspectBox: InspectBoxOptions(),
		ProfileDisabled:   DisabledOptions(),
	}
	out := make(map[string]ControlProfile, len(builders))
	for name, opts := range builders {
		p, err := NewControlProfile(name, opts...)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}
