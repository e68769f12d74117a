package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextRoundTrip(t *testing.T) {
	log := zap.NewNop()
	ctx := WithContext(context.Background(), log)

	assert.Same(t, log, FromContext(ctx))
}

func TestFromContextMissingLogger(t *testing.T) {
	log := FromContext(context.Background())

	require.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("noop") })
}

func TestWithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithRequestID(context.Background(), zap.New(core), "req-7")
	enriched.Info("lead created")

	assert.Equal(t, "req-7", GetRequestID(ctx))
	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "req-7", logs[0].ContextMap()["request_id"])
}

func TestWithUserID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithUserID(context.Background(), zap.New(core), "user-3")
	enriched.Info("note added")

	assert.Equal(t, "user-3", GetUserID(ctx))
	logs := recorded.All()
	require.Len(t, logs, 1)
	assert.Equal(t, "user-3", logs[0].ContextMap()["user_id"])
}

func TestContextValuesMissing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
	assert.Empty(t, GetUserID(context.Background()))
}

func TestWithTraceContextNoSpan(t *testing.T) {
	log := zap.NewNop()

	assert.Same(t, log, WithTraceContext(context.Background(), log))
}

func TestWithTraceContextValidSpan(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	WithTraceContext(ctx, zap.New(core)).Info("converted")

	logs := recorded.All()
	require.Len(t, logs, 1)
	fields := logs[0].ContextMap()
	assert.Equal(t, spanCtx.TraceID().String(), fields["trace_id"])
	assert.Equal(t, spanCtx.SpanID().String(), fields["span_id"])
}
