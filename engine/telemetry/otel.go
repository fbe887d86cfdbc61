package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Carmen-Shannon/oxy-showcase/engine/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
