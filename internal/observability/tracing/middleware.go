package tracing

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/siawash1991/my-website/internal/handler/http/responsewriter"
)

// Middleware extracts W3C trace context from the incoming request, opens a
// server span around the handler, and echoes the trace ID back in the
// X-Trace-Id response header so clients can quote it in bug reports.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(
			r.Context(),
			propagation.HeaderCarrier(r.Header),
		)

		ctx, span := GetTracer().Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())

		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r.WithContext(ctx))

		span.SetAttributes(
			attribute.Int("http.status_code", rw.StatusCode()),
			attribute.String("http.method", r.Method),
			attribute.String("http.path", r.URL.Path),
		)
		if rw.StatusCode() >= 500 {
			span.SetAttributes(attribute.Bool("error", true))
		}
	})
}
