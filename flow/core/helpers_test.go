package core

import (
	"context"
	"iter"
)

// fromSlice builds a stream of value Results for tests.
func fromSlice[T any](items []T) Stream[T] {
	return fromResults(func() []Result[T] {
		results := make([]Result[T], len(items))
		for i, item := range items {
			results[i] = Ok(item)
		}
		return results
	}()...)
}

func fromResults[T any](results ...Result[T]) Stream[T] {
	return Emit(func(ctx context.Context) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for _, res := range results {
				if ctx.Err() != nil {
					return
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}
