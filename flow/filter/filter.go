// Package filter provides operators that select which items of a stream
// continue downstream.
package filter

import (
	"context"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// Where creates a Transformer that only passes through items matching the predicate.
// Items that don't match are silently dropped. Errors and sentinels pass
// through unchanged. Relative order is preserved.
func Where[T any](predicate func(T) bool) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			for res := range in {
				if res.IsValue() && !predicate(res.Value()) {
					continue
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// Exclude creates a Transformer that filters out items matching the predicate.
// This is the inverse of Where.
func Exclude[T any](predicate func(T) bool) core.Transformer[T, T] {
	return Where(func(v T) bool { return !predicate(v) })
}

// MapWhere creates a Transformer that both filters and maps in a single pass.
// The function returns (value, true) to include the transformed value,
// or (_, false) to drop the item. Errors and sentinels are converted and
// passed through.
func MapWhere[IN, OUT any](fn func(IN) (OUT, bool)) core.Transformer[IN, OUT] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[IN]]) iter.Seq[core.Result[OUT]] {
		return func(yield func(core.Result[OUT]) bool) {
			for res := range in {
				var out core.Result[OUT]
				switch {
				case res.IsError():
					out = core.Err[OUT](res.Error())
				case res.IsSentinel():
					out = core.Sentinel[OUT](res.Sentinel())
				default:
					mapped, ok := fn(res.Value())
					if !ok {
						continue
					}
					out = core.Ok(mapped)
				}
				if !yield(out) {
					return
				}
			}
		}
	})
}

// Values creates a Transformer that drops errors and sentinels, keeping
// only values.
func Values[T any]() core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			for res := range in {
				if !res.IsValue() {
					continue
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}
