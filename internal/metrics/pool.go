package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PoolSample is the number of idle cipher transforms held by one pool.
type PoolSample struct {
	Direction string
	Purpose   string
	Idle      int
}

// PoolSampler reports the current size of every transform pool.
type PoolSampler func() []PoolSample

// RegisterPoolGauge exposes transform pool occupancy as an observable gauge.
// The sampler is invoked on every collection.
func RegisterPoolGauge(meterProvider metric.MeterProvider, namespace string, sampler PoolSampler) error {
	meter := meterProvider.Meter(namespace)

	_, err := meter.Int64ObservableGauge(
		fmt.Sprintf("%s_transform_pool_idle", namespace),
		metric.WithDescription("Idle cipher transforms available for reuse"),
		metric.WithUnit("{transform}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			for _, sample := range sampler() {
				o.Observe(int64(sample.Idle), metric.WithAttributes(
					attribute.String("direction", sample.Direction),
					attribute.String("purpose", sample.Purpose),
				))
			}
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to create transform pool gauge: %w", err)
	}
	return nil
}
