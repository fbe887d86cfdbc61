package model

import (
	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/rs/zerolog"
)

// ModelBuilderOption is a functional option shared by the model constructors.
type ModelBuilderOption func(*modelConfig)

// WithLogger is an option builder that sets the logger a model reports load events to.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - ModelBuilderOption: a function that applies the logger option
func WithLogger(logger zerolog.Logger) ModelBuilderOption {
	return func(c *modelConfig) {
		c.logger = logger
	}
}

// ManagerBuilderOption is a functional option for configuring a Manager during construction.
type ManagerBuilderOption func(*manager)

// WithManagerLogger sets the logger used for load progress.
//
// Parameters:
//   - logger: the zerolog logger
//
// Returns:
//   - ManagerBuilderOption: a function that applies the logger option
func WithManagerLogger(logger zerolog.Logger) ManagerBuilderOption {
	return func(m *manager) {
		m.logger = logger
	}
}

// WithWorkers sets the number of concurrent loads (minimum 1).
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - ManagerBuilderOption: a function that applies the worker count
func WithWorkers(n int) ManagerBuilderOption {
	return func(m *manager) {
		m.workers = common.Positive(n, 1)
	}
}
