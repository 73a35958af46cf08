package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	p, err := Setup(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, p.Shutdown(context.Background()), "Shutdown on nil provider is a no-op")
}

func TestSetup_EnabledWithEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "127.0.0.1:4318")
	t.Setenv(ServiceNameEnv, "asciicanvas-test")

	p, err := Setup(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p)

	// No spans were recorded, so shutdown has nothing to send.
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestTracer_NotNil(t *testing.T) {
	assert.NotNil(t, Tracer("asciicanvas/test"))
}
