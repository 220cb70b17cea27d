package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("Success_CreateProviderWithNamespace", func(t *testing.T) {
		provider, err := NewProvider("tokenguard_test")

		require.NoError(t, err)
		assert.Equal(t, "tokenguard_test", provider.Namespace())
		assert.NotNil(t, provider.MeterProvider())
		assert.NotNil(t, provider.registry)
	})

	t.Run("Success_RuntimeCollectorsRegistered", func(t *testing.T) {
		provider, err := NewProvider("tokenguard_test")
		require.NoError(t, err)

		output := scrape(t, provider)

		assert.Contains(t, output, "go_goroutines")
	})
}

func TestProvider_Shutdown(t *testing.T) {
	t.Run("Success_ShutdownProvider", func(t *testing.T) {
		provider, err := NewProvider("tokenguard_test")
		require.NoError(t, err)

		assert.NoError(t, provider.Shutdown(context.Background()))
	})

	t.Run("Success_ShutdownNilMeterProvider", func(t *testing.T) {
		provider := &Provider{}

		assert.NoError(t, provider.Shutdown(context.Background()))
	})
}
