package picking

import "github.com/rs/zerolog"

// GateBuilderOption is a functional option for configuring a Gate during construction.
type GateBuilderOption func(*gate)

// WithLogger sets the logger used for registration and activation events.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - GateBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) GateBuilderOption {
	return func(g *gate) {
		g.logger = logger
	}
}
