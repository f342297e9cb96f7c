// Package context provides request-scoped values extraction.
package context

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// TraceContext contains request tracing information.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, tc *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, tc)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}

// NewTraceContext builds a TraceContext for ctx.
// An active OpenTelemetry span wins over the supplied traceID; an empty
// traceID or requestID is generated.
func NewTraceContext(ctx context.Context, traceID, requestID string) *TraceContext {
	tc := &TraceContext{
		TraceID:   traceID,
		SpanID:    uuid.NewString()[:16],
		RequestID: requestID,
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		tc.TraceID = sc.TraceID().String()
		tc.SpanID = sc.SpanID().String()
	}

	if tc.TraceID == "" {
		tc.TraceID = uuid.NewString()
	}
	if tc.RequestID == "" {
		tc.RequestID = uuid.NewString()
	}
	return tc
}
