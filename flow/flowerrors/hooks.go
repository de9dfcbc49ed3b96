package flowerrors

import (
	"context"
	"errors"

	"github.com/lguimbarda/songflow/flow/core"
)

// Hooks-based error observation. These do not modify the data flow; use the
// transformers in error.go to reshape errors.

// OnErrorDo registers handler for every error Result of type T produced by
// a Mapper on the returned context.
func OnErrorDo[T any](ctx context.Context, handler func(error)) context.Context {
	return core.WithHooks(ctx, core.Hooks[T]{OnError: handler})
}

// ErrorCollector collects errors for later inspection.
type ErrorCollector struct {
	errors    []error
	predicate func(error) bool
	maxErrors int // 0 = unlimited
}

// ErrorCollectorOption configures an ErrorCollector.
type ErrorCollectorOption func(*ErrorCollector)

// WithPredicate filters which errors to collect.
func WithPredicate(predicate func(error) bool) ErrorCollectorOption {
	return func(c *ErrorCollector) {
		c.predicate = predicate
	}
}

// WithMaxErrors limits the number of errors to collect.
func WithMaxErrors(max int) ErrorCollectorOption {
	return func(c *ErrorCollector) {
		c.maxErrors = max
	}
}

// Errors returns a copy of all collected errors.
func (c *ErrorCollector) Errors() []error {
	out := make([]error, len(c.errors))
	copy(out, c.errors)
	return out
}

// Count returns the number of collected errors.
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Err joins the collected errors, or returns nil when none were collected.
// errors.Is and errors.As see through the join.
func (c *ErrorCollector) Err() error {
	return errors.Join(c.errors...)
}

// WithErrorCollector attaches an error collecting hook for type T and returns
// the collector. The collector is not safe for use from several goroutines.
func WithErrorCollector[T any](ctx context.Context, opts ...ErrorCollectorOption) (context.Context, *ErrorCollector) {
	collector := &ErrorCollector{
		predicate: func(error) bool { return true },
	}
	for _, opt := range opts {
		opt(collector)
	}

	ctx = core.WithHooks(ctx, core.Hooks[T]{
		OnError: func(err error) {
			if !collector.predicate(err) {
				return
			}
			if collector.maxErrors > 0 && len(collector.errors) >= collector.maxErrors {
				return
			}
			collector.errors = append(collector.errors, err)
		},
	})
	return ctx, collector
}
