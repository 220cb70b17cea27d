package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPoolGauge(t *testing.T) {
	provider, err := NewProvider("pool_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	idle := 3
	err = RegisterPoolGauge(provider.MeterProvider(), "pool_test", func() []PoolSample {
		return []PoolSample{
			{Direction: "encrypt", Purpose: "content", Idle: idle},
			{Direction: "decrypt", Purpose: "content", Idle: 1},
		}
	})
	require.NoError(t, err)

	output := scrape(t, provider)
	assertMetricLine(t, output, `pool_test_transform_pool_idle`,
		`direction="encrypt".*purpose="content"`, `3`)
	assertMetricLine(t, output, `pool_test_transform_pool_idle`,
		`direction="decrypt".*purpose="content"`, `1`)

	idle = 7
	output = scrape(t, provider)
	assertMetricLine(t, output, `pool_test_transform_pool_idle`,
		`direction="encrypt".*purpose="content"`, `7`)
}
