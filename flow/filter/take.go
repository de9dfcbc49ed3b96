package filter

import (
	"context"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// Take creates a Transformer that passes through only the first n values.
// Errors and sentinels pass through without counting. Once n values have
// been emitted the upstream is no longer pulled.
// If n <= 0, an empty stream is returned.
func Take[T any](n int) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			if n <= 0 {
				return
			}
			count := 0
			for res := range in {
				if !yield(res) {
					return
				}
				if res.IsValue() {
					count++
					if count >= n {
						return
					}
				}
			}
		}
	})
}
