// Package aggregate provides operators that fold a stream into summary values.
package aggregate

import (
	"context"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Reduce creates a Transformer that reduces all items in the stream to a single value
// using the provided reducer function. The first item becomes the initial
// accumulator value. If the stream has no values, nothing is emitted.
// Errors and sentinels are passed through as they arrive.
func Reduce[T any](reducer func(acc, item T) T) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			var acc T
			hasAcc := false
			for res := range in {
				if !res.IsValue() {
					if !yield(res) {
						return
					}
					continue
				}
				if !hasAcc {
					acc = res.Value()
					hasAcc = true
				} else {
					acc = reducer(acc, res.Value())
				}
			}
			if hasAcc {
				yield(core.Ok(acc))
			}
		}
	})
}

// Fold creates a Transformer that folds all items in the stream into a single value
// using the provided folder function and initial value.
// Unlike Reduce, Fold always emits a value (the initial value if stream is empty).
func Fold[T, R any](initial R, folder func(acc R, item T) R) core.Transformer[T, R] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[R]] {
		return func(yield func(core.Result[R]) bool) {
			acc := initial
			for res := range in {
				switch {
				case res.IsError():
					if !yield(core.Err[R](res.Error())) {
						return
					}
				case res.IsSentinel():
					if !yield(core.Sentinel[R](res.Sentinel())) {
						return
					}
				default:
					acc = folder(acc, res.Value())
				}
			}
			yield(core.Ok(acc))
		}
	})
}

// Scan creates a Transformer that emits each intermediate accumulated value.
// The initial value itself is not emitted.
func Scan[T, R any](initial R, scanner func(acc R, item T) R) core.Transformer[T, R] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[R]] {
		return func(yield func(core.Result[R]) bool) {
			acc := initial
			for res := range in {
				var out core.Result[R]
				switch {
				case res.IsError():
					out = core.Err[R](res.Error())
				case res.IsSentinel():
					out = core.Sentinel[R](res.Sentinel())
				default:
					acc = scanner(acc, res.Value())
					out = core.Ok(acc)
				}
				if !yield(out) {
					return
				}
			}
		}
	})
}

// Sum folds the stream into the sum of selector over its values.
// An empty stream sums to zero.
func Sum[T any, N Number](selector func(T) N) core.Transformer[T, N] {
	return Fold(N(0), func(acc N, item T) N {
		return acc + selector(item)
	})
}

// Count folds the stream into the number of values it carried.
func Count[T any]() core.Transformer[T, int] {
	return Fold(0, func(acc int, _ T) int {
		return acc + 1
	})
}
