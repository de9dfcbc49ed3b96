package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/songflow/flow/core"
)

// Metrics holds the OpenTelemetry instruments a stream reports to.
type Metrics struct {
	items    metric.Int64Counter
	errors   metric.Int64Counter
	measured metric.Float64Histogram
}

// NewMetrics creates the instruments <prefix>.items, <prefix>.errors and
// <prefix>.measure on meter.
func NewMetrics(meter metric.Meter, prefix string) (*Metrics, error) {
	items, err := meter.Int64Counter(prefix+".items", metric.WithDescription("count of values"))
	if err != nil {
		return nil, fmt.Errorf("create items counter: %w", err)
	}
	errs, err := meter.Int64Counter(prefix+".errors", metric.WithDescription("count of errors"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}
	measured, err := meter.Float64Histogram(prefix+".measure", metric.WithDescription("per-value measurement"))
	if err != nil {
		return nil, fmt.Errorf("create measure histogram: %w", err)
	}
	return &Metrics{items: items, errors: errs, measured: measured}, nil
}

// WithMetrics attaches hooks for type T that record into m. When measure is
// non-nil its result for every value is recorded in the histogram.
func WithMetrics[T any](ctx context.Context, m *Metrics, measure func(T) float64) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(v T) {
			m.items.Add(ctx, 1)
			if measure != nil {
				m.measured.Record(ctx, measure(v))
			}
		},
		OnError: func(error) {
			m.errors.Add(ctx, 1)
		},
	})
}
