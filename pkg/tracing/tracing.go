// Package tracing exposes small OpenTelemetry helpers shared by the fault
// pipeline; the provider itself is installed by pkg/bootstrap.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns a named tracer for fault-lib components.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(name)
}

// TraceID returns the active trace id in ctx, or "" when no span is present.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}
