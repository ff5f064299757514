package telemetry

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestConfigureEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureEnv("secret", "")

	assert.Equal(t, DefaultEndpoint, os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Equal(t, "x-honeycomb-team=secret,x-honeycomb-dataset=campominato",
		os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestConfigureEnvKeepsEndpointAndSkipsEmptyKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureEnv("", "games")

	assert.Equal(t, "http://localhost:4318", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	assert.Empty(t, os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"))
}

func TestSetupAndShutdown(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdown, err := Setup(ctx)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	assert.NotNil(t, Tracer("test"))
	assert.NoError(t, shutdown(ctx))
}
