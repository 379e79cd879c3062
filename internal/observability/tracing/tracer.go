// Package tracing wires OpenTelemetry spans into the HTTP stack. The API
// does not ship its own exporter; whatever provider the host process
// configures (or the no-op default) receives the spans.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "my-website"

// GetTracer returns the application tracer for creating spans. It is
// resolved per call so a provider installed after startup is picked up.
func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}
