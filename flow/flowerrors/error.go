// Package flowerrors provides operators and hooks for observing and reshaping
// error Results as they travel through a stream.
package flowerrors

import (
	"context"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// mapResults builds a Transformer that rewrites error Results with fn.
// fn returns the replacement and whether to keep it. Values and sentinels
// pass through untouched.
func mapResults[T any](fn func(err error) (core.Result[T], bool)) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			for res := range in {
				if res.IsError() {
					var keep bool
					if res, keep = fn(res.Error()); !keep {
						continue
					}
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// OnError creates a Transformer that calls handler for every error Result.
// The handler is called for side effects; the error still passes through.
func OnError[T any](handler func(error)) core.Transformer[T, T] {
	return mapResults(func(err error) (core.Result[T], bool) {
		handler(err)
		return core.Err[T](err), true
	})
}

// CatchError creates a Transformer that handles errors matching predicate.
// If the handler returns a value, it replaces the error; if it returns an
// error, that error propagates. Non-matching errors pass through unchanged.
func CatchError[T any](predicate func(error) bool, handler func(error) (T, error)) core.Transformer[T, T] {
	return mapResults(func(err error) (core.Result[T], bool) {
		if !predicate(err) {
			return core.Err[T](err), true
		}
		value, herr := handler(err)
		if herr != nil {
			return core.Err[T](herr), true
		}
		return core.Ok(value), true
	})
}

// FilterErrors creates a Transformer that drops errors matching predicate.
func FilterErrors[T any](predicate func(error) bool) core.Transformer[T, T] {
	return mapResults(func(err error) (core.Result[T], bool) {
		return core.Err[T](err), !predicate(err)
	})
}

// IgnoreErrors creates a Transformer that drops all error Results.
func IgnoreErrors[T any]() core.Transformer[T, T] {
	return FilterErrors[T](func(error) bool { return true })
}

// MapErrors creates a Transformer that transforms errors using mapper.
func MapErrors[T any](mapper func(error) error) core.Transformer[T, T] {
	return mapResults(func(err error) (core.Result[T], bool) {
		return core.Err[T](mapper(err)), true
	})
}
