package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewTraceContextKeepsSuppliedIDs(t *testing.T) {
	tc := NewTraceContext(context.Background(), "trace-1", "req-1")

	assert.Equal(t, "trace-1", tc.TraceID)
	assert.Equal(t, "req-1", tc.RequestID)
	assert.Len(t, tc.SpanID, 16)
}

func TestNewTraceContextGeneratesMissingIDs(t *testing.T) {
	tc := NewTraceContext(context.Background(), "", "")

	assert.NotEmpty(t, tc.TraceID)
	assert.NotEmpty(t, tc.RequestID)
	assert.NotEqual(t, tc.TraceID, tc.RequestID)
}

func TestNewTraceContextPrefersSpanContext(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	tc := NewTraceContext(ctx, "ignored", "req-1")
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", tc.TraceID)
	assert.Equal(t, "00f067aa0ba902b7", tc.SpanID)
	assert.Equal(t, "req-1", tc.RequestID)
}

func TestTraceRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetTrace(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithTrace(ctx, &TraceContext{TraceID: "t", RequestID: "r"})
	assert.Equal(t, "r", GetRequestID(ctx))
}
