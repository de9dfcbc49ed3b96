// Package observe attaches observation hooks (counters, structured logging,
// OpenTelemetry metrics) to streams through the context.
package observe

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/lguimbarda/songflow/flow/core"
)

// The hooks system is type-parameterized, so observers must be registered
// with the item type they want to observe:
//
//	ctx = observe.WithValueHook(ctx, func(v int) { fmt.Println("Value:", v) })
//	ctx = observe.WithErrorHook[int](ctx, func(err error) { slog.Error("failed", "err", err) })

// WithValueHook attaches a value observation hook for type T to the context.
func WithValueHook[T any](ctx context.Context, callback func(T)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnValue: callback,
	})
}

// WithErrorHook attaches an error observation hook for type T to the context.
func WithErrorHook[T any](ctx context.Context, callback func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnError: callback,
	})
}

// WithCompleteHook attaches a stream completion hook for type T to the context.
func WithCompleteHook[T any](ctx context.Context, callback func()) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{
		OnComplete: callback,
	})
}

// Counter counts values and errors.
type Counter struct {
	values atomic.Int64
	errors atomic.Int64
}

// Values returns the count of values processed.
func (c *Counter) Values() int64 { return c.values.Load() }

// Errors returns the count of errors encountered.
func (c *Counter) Errors() int64 { return c.errors.Load() }

// Total returns the total count of values and errors.
func (c *Counter) Total() int64 { return c.values.Load() + c.errors.Load() }

// WithCounter attaches counting hooks for type T and returns the counter for querying.
func WithCounter[T any](ctx context.Context) (context.Context, *Counter) {
	counter := &Counter{}
	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnValue: func(T) { counter.values.Add(1) },
		OnError: func(error) { counter.errors.Add(1) },
	})
	return ctx, counter
}

// WithLogging attaches hooks for type T that log stream activity to logger.
// Values and lifecycle events are logged at Debug, errors at Warn.
func WithLogging[T any](ctx context.Context, logger *slog.Logger, stage string) context.Context {
	logger = logger.With(slog.String("stage", stage))
	return core.WithHooks(ctx, core.Hooks[T]{
		OnStart: func() {
			logger.DebugContext(ctx, "stream started")
		},
		OnValue: func(v T) {
			logger.DebugContext(ctx, "value", slog.Any("value", v))
		},
		OnError: func(err error) {
			logger.WarnContext(ctx, "stream error", slog.Any("error", err))
		},
		OnComplete: func() {
			logger.DebugContext(ctx, "stream completed")
		},
	})
}
