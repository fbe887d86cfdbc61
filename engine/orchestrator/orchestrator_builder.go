package orchestrator

import (
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/telemetry"
	"github.com/rs/zerolog"
)

// OrchestratorBuilderOption is a functional option for configuring an Orchestrator during construction.
type OrchestratorBuilderOption func(*orchestrator)

// WithLogger sets the logger used for transitions and failures.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - OrchestratorBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) OrchestratorBuilderOption {
	return func(o *orchestrator) {
		o.logger = logger
	}
}

// WithErrorHandler registers the callback receiving runtime transition errors.
//
// Parameters:
//   - fn: called once per failed or refused transition
//
// Returns:
//   - OrchestratorBuilderOption: a function that applies the handler option
func WithErrorHandler(fn func(error)) OrchestratorBuilderOption {
	return func(o *orchestrator) {
		o.onError = fn
	}
}

// WithRecorder sets the telemetry recorder. Defaults to one on the global meter provider.
func WithRecorder(r telemetry.Recorder) OrchestratorBuilderOption {
	return func(o *orchestrator) {
		o.recorder = r
	}
}

// WithProfiles replaces the built-in control profiles. The map must contain the
// overview, locked, inspect-box and disabled profiles.
func WithProfiles(profiles map[string]camera.ControlProfile) OrchestratorBuilderOption {
	return func(o *orchestrator) {
		o.profiles = profiles
	}
}

// WithChoreography replaces the default timings and offsets.
func WithChoreography(c Choreography) OrchestratorBuilderOption {
	return func(o *orchestrator) {
		o.choreo = c
	}
}
