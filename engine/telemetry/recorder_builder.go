package telemetry

import "go.opentelemetry.io/otel/metric"

// RecorderBuilderOption is a functional option for configuring a Recorder during construction.
type RecorderBuilderOption func(*recorder)

// WithMeter records on m instead of the global meter provider.
//
// Parameters:
//   - m: the meter to create instruments on
//
// Returns:
//   - RecorderBuilderOption: a function that applies the meter option
func WithMeter(m metric.Meter) RecorderBuilderOption {
	return func(r *recorder) {
		r.meter = m
	}
}
