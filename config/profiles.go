package config

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// ProfileConfig overrides fields of a built-in control profile. Unset fields keep the built-in value.
type ProfileConfig struct {
	Pan         *bool        `mapstructure:"pan"`
	Zoom        *bool        `mapstructure:"zoom"`
	Rotate      *bool        `mapstructure:"rotate"`
	Damping     *bool        `mapstructure:"damping"`
	PanSpeed    *float32     `mapstructure:"panSpeed"`
	Polar       []float32    `mapstructure:"polar"`
	Azimuth     []float32    `mapstructure:"azimuth"`
	Distance    []float32    `mapstructure:"distance"`
	TargetClamp *ClampConfig `mapstructure:"targetClamp"`
}

// ClampConfig is an axis-aligned box given by two corners.
type ClampConfig struct {
	Min []float32 `mapstructure:"min"`
	Max []float32 `mapstructure:"max"`
}

// Profiles builds the orbit profiles: the built-in ones with any configured overrides applied.
// Every profile goes through camera.NewControlProfile, so an inverted bound fails here.
//
// Returns:
//   - map[string]camera.ControlProfile: validated profiles keyed by name
//   - error: *common.ConfigError for unknown profile names or invalid bounds
func (c *Config) Profiles() (map[string]camera.ControlProfile, error) {
	builtin := map[string][]camera.ControlProfileOption{
		camera.ProfileOverview:   camera.OverviewOptions(),
		camera.ProfileLocked:     camera.LockedOptions(),
		camera.ProfileInspectBox: camera.InspectBoxOptions(),
		camera.ProfileDisabled:   camera.DisabledOptions(),
	}
	for name := range c.ProfileOverrides {
		if _, ok := builtin[name]; !ok {
			return nil, &common.ConfigError{Field: "profiles." + name, Reason: "unknown profile"}
		}
	}

	out := make(map[string]camera.ControlProfile, len(builtin))
	for name, opts := range builtin {
		if override, ok := c.ProfileOverrides[name]; ok {
			extra, err := override.options("profiles." + name)
			if err != nil {
				return nil, err
			}
			opts = append(opts, extra...)
		}
		p, err := camera.NewControlProfile(name, opts...)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

// options converts the override into profile options applied after the built-in ones.
func (pc ProfileConfig) options(field string) ([]camera.ControlProfileOption, error) {
	var opts []camera.ControlProfileOption
	if pc.Pan != nil {
		opts = append(opts, camera.WithPan(*pc.Pan))
	}
	if pc.Zoom != nil {
		opts = append(opts, camera.WithZoom(*pc.Zoom))
	}
	if pc.Rotate != nil {
		opts = append(opts, camera.WithRotate(*pc.Rotate))
	}
	if pc.Damping != nil {
		opts = append(opts, camera.WithDamping(*pc.Damping))
	}
	if pc.PanSpeed != nil {
		opts = append(opts, camera.WithPanSpeed(*pc.PanSpeed))
	}

	ranges := []struct {
		name  string
		value []float32
		apply func(min, max float32) camera.ControlProfileOption
	}{
		{"polar", pc.Polar, camera.WithPolarRange},
		{"azimuth", pc.Azimuth, camera.WithAzimuthRange},
		{"distance", pc.Distance, camera.WithDistanceRange},
	}
	for _, r := range ranges {
		if r.value == nil {
			continue
		}
		if len(r.value) != 2 {
			return nil, &common.ConfigError{Field: field + "." + r.name, Reason: fmt.Sprintf("want [min, max], got %d values", len(r.value))}
		}
		opts = append(opts, r.apply(r.value[0], r.value[1]))
	}

	if pc.TargetClamp != nil {
		lo, err := vec3(field+".targetClamp.min", pc.TargetClamp.Min)
		if err != nil {
			return nil, err
		}
		hi, err := vec3(field+".targetClamp.max", pc.TargetClamp.Max)
		if err != nil {
			return nil, err
		}
		opts = append(opts, camera.WithTargetClamp(lo, hi))
	}
	return opts, nil
}

// vec3 converts a configured three-element list.
func vec3(field string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, &common.ConfigError{Field: field, Reason: fmt.Sprintf("want 3 components, got %d", len(v))}
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
