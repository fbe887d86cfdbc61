package telemetry

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names exported by the recorder.
const (
	MetricTransitions      = "showcase.transitions"
	MetricTransitionErrors = "showcase.transition_errors"
	MetricActivations      = "showcase.activations"
	MetricMode             = "showcase.mode"
)

type recorder struct {
	mu *sync.Mutex

	meter       metric.Meter
	transitions metric.Int64Counter
	errors      metric.Int64Counter
	activations metric.Int64Counter
	mode        metric.Int64ObservableGauge

	registration metric.Registration
}

// Recorder counts showcase interaction events.
// All methods are safe to call from pointer handlers and tick callbacks.
type Recorder interface {
	// Transition records a completed mode transition.
	//
	// Parameters:
	//   - ctx: request context, usually context.Background()
	//   - from, to: mode names
	//   - trigger: the trigger name
	//   - id: the transition id
	Transition(ctx context.Context, from, to, trigger, id string)

	// TransitionError records a transition that was refused or aborted.
	//
	// Parameters:
	//   - ctx: request context
	//   - mode: the mode the transition started from
	//   - trigger: the trigger name
	//   - err: the failure
	TransitionError(ctx context.Context, mode, trigger string, err error)

	// Activation records a pointer activation of an interactive object.
	//
	// Parameters:
	//   - ctx: request context
	//   - object: the activated object name
	Activation(ctx context.Context, object string)

	// ObserveMode reports the current mode through the showcase.mode gauge.
	// A later call replaces the previous observer.
	//
	// Parameters:
	//   - fn: returns the mode ordinal and name on each collection
	//
	// Returns:
	//   - error: if the callback could not be registered
	ObserveMode(fn func() (int64, string)) error
}

var _ Recorder = &recorder{}

// NewRecorder creates a Recorder on the global OTel meter provider, which is a no-op until configured.
//
// Parameters:
//   - options: functional options to configure the recorder
//
// Returns:
//   - Recorder: the new recorder
//   - error: if an instrument could not be created
func NewRecorder(options ...RecorderBuilderOption) (Recorder, error) {
	r := &recorder{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(r)
	}
	if r.meter == nil {
		r.meter = meter()
	}

	var err error
	r.transitions, err = r.meter.Int64Counter(
		MetricTransitions,
		metric.WithDescription("Completed view mode transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transitions counter: %w", err)
	}

	r.errors, err = r.meter.Int64Counter(
		MetricTransitionErrors,
		metric.WithDescription("Refused or aborted view mode transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating transition errors counter: %w", err)
	}

	r.activations, err = r.meter.Int64Counter(
		MetricActivations,
		metric.WithDescription("Pointer activations of interactive objects"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating activations counter: %w", err)
	}

	r.mode, err = r.meter.Int64ObservableGauge(
		MetricMode,
		metric.WithDescription("Current view mode ordinal"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mode gauge: %w", err)
	}

	return r, nil
}

func (r *recorder) Transition(ctx context.Context, from, to, trigger, id string) {
	r.transitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
		attribute.String("trigger", trigger),
		attribute.String("transition_id", id),
	))
}

func (r *recorder) TransitionError(ctx context.Context, mode, trigger string, err error) {
	r.errors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("trigger", trigger),
		attribute.String("error", errorKind(err)),
	))
}

func (r *recorder) Activation(ctx context.Context, object string) {
	r.activations.Add(ctx, 1, metric.WithAttributes(attribute.String("object", object)))
}

func (r *recorder) ObserveMode(fn func() (int64, string)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.registration != nil {
		if err := r.registration.Unregister(); err != nil {
			return fmt.Errorf("unregistering mode callback: %w", err)
		}
		r.registration = nil
	}
	if fn == nil {
		return nil
	}

	reg, err := r.meter.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			ordinal, name := fn()
			o.ObserveInt64(r.mode, ordinal, metric.WithAttributes(attribute.String("mode", name)))
			return nil
		},
		r.mode,
	)
	if err != nil {
		return fmt.Errorf("registering mode callback: %w", err)
	}
	r.registration = reg
	return nil
}
