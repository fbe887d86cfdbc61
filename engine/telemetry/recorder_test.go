package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type countingCounter struct {
	noop.Int64Counter

	mu    sync.Mutex
	total int64
	sets  []attribute.Set
}

func (c *countingCounter) Add(_ context.Context, incr int64, options ...metric.AddOption) {
	cfg := metric.NewAddConfig(options)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total += incr
	c.sets = append(c.sets, cfg.Attributes())
}

type countingMeter struct {
	noop.Meter
	counters map[string]*countingCounter
}

func (m *countingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	c := &countingCounter{}
	m.counters[name] = c
	return c, nil
}

func TestRecorderCounts(t *testing.T) {
	m := &countingMeter{counters: map[string]*countingCounter{}}
	r, err := NewRecorder(WithMeter(m))
	require.NoError(t, err)

	ctx := context.Background()
	r.Transition(ctx, "Overview", "ApproachingBox", "hotspot-clicked", "id-1")
	r.Transition(ctx, "ApproachingBox", "InspectingBox", "approach-complete", "id-2")
	r.TransitionError(ctx, "BoxOpening", "opening-finished", &common.MissingAssetError{Kind: common.AssetKindClip, Name: "Opened"})
	r.Activation(ctx, "box")

	assert.Equal(t, int64(2), m.counters[MetricTransitions].total)
	assert.Equal(t, int64(1), m.counters[MetricTransitionErrors].total)
	assert.Equal(t, int64(1), m.counters[MetricActivations].total)

	to, ok := m.counters[MetricTransitions].sets[0].Value("to")
	require.True(t, ok)
	assert.Equal(t, "ApproachingBox", to.AsString())

	kind, ok := m.counters[MetricTransitionErrors].sets[0].Value("error")
	require.True(t, ok)
	assert.Equal(t, "missing_clip", kind.AsString())
}

func TestRecorderObserveMode(t *testing.T) {
	r, err := NewRecorder(WithMeter(noop.NewMeterProvider().Meter("test")))
	require.NoError(t, err)

	require.NoError(t, r.ObserveMode(func() (int64, string) { return 0, "Overview" }))
	require.NoError(t, r.ObserveMode(func() (int64, string) { return 1, "ApproachingBox" }))
	require.NoError(t, r.ObserveMode(nil))
}

func TestRecorderDefaultsToGlobalMeter(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		r.Activation(context.Background(), "device")
	})
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{&common.MissingAssetError{Kind: common.AssetKindMaterial, Name: "screen"}, "missing_material"},
		{fmt.Errorf("wrapped: %w", &common.TransitionReentrancyError{Mode: "BoxOpening", Trigger: "box-activated"}), "reentrancy"},
		{&common.AssetLoadError{Path: "a.glb", Err: errors.New("boom")}, "asset_load"},
		{&common.ConfigError{Field: "x", Reason: "y"}, "config"},
		{errors.New("boom"), "other"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorKind(tt.err))
	}
}
