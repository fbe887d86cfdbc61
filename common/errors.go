package common

import "fmt"

// AssetLoadError reports that an asset could not be fetched or parsed.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

// ConfigError reports an invalid configuration value, such as a control profile
// whose minimum bound exceeds its maximum.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}

// MissingAssetError kinds.
const (
	AssetKindClip     = "clip"
	AssetKindNode     = "node"
	AssetKindMaterial = "material"
)

// MissingAssetError reports that a named clip, node or material is absent from a loaded scene.
type MissingAssetError struct {
	Kind string
	Name string
}

func (e *MissingAssetError) Error() string {
	return fmt.Sprintf("missing %s %q", e.Kind, e.Name)
}

// TransitionReentrancyError reports a trigger that arrived while a transition was still pending.
type TransitionReentrancyError struct {
	Mode    string
	Trigger string
}

func (e *TransitionReentrancyError) Error() string {
	return fmt.Sprintf("trigger %s ignored: transition pending in mode %s", e.Trigger, e.Mode)
}
