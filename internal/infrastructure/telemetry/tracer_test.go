package telemetry

import (
	"context"
	"testing"

	"github.com/franq/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracerProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled config yields a no-op provider", func(t *testing.T) {
		tp, err := NewTracerProvider(ctx, config.TelemetryConfig{Enabled: false}, nil)
		require.NoError(t, err)
		assert.False(t, tp.IsEnabled())
	})

	t.Run("no-op provider shuts down cleanly", func(t *testing.T) {
		tp, err := NewTracerProvider(ctx, config.TelemetryConfig{Enabled: false}, nil)
		require.NoError(t, err)

		assert.NoError(t, tp.ForceFlush(ctx))
		assert.NoError(t, tp.Shutdown(ctx))
	})

	t.Run("no-op provider still hands out tracers", func(t *testing.T) {
		tp, err := NewTracerProvider(ctx, config.TelemetryConfig{Enabled: false}, nil)
		require.NoError(t, err)

		tracer := tp.Tracer("pipeline")
		assert.NotNil(t, tracer)

		_, span := tracer.Start(ctx, "test-span")
		span.End()
	})
}
