package flow

import (
	"context"
	"iter"
)

// FromSlice creates a Stream that emits each element from the given slice in
// order. The slice is read lazily on every Emit, so a stream can be replayed.
func FromSlice[T any](items []T) Stream[T] {
	return Emit(func(ctx context.Context) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for _, item := range items {
				if ctx.Err() != nil {
					return
				}
				if !yield(Ok(item)) {
					return
				}
			}
		}
	})
}

// FromIter creates a Stream from a Go 1.23+ iterator sequence.
func FromIter[T any](seq iter.Seq[T]) Stream[T] {
	return Emit(func(ctx context.Context) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for item := range seq {
				if ctx.Err() != nil {
					return
				}
				if !yield(Ok(item)) {
					return
				}
			}
		}
	})
}

// Empty creates a Stream that emits nothing.
func Empty[T any]() Stream[T] {
	return Emit(func(context.Context) iter.Seq[Result[T]] {
		return func(func(Result[T]) bool) {}
	})
}

// Once creates a Stream that emits a single value.
func Once[T any](value T) Stream[T] {
	return FromSlice([]T{value})
}

// FromError creates a Stream that emits a single error Result.
func FromError[T any](err error) Stream[T] {
	return Emit(func(context.Context) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			yield(Err[T](err))
		}
	})
}

// Generate creates a Stream from fn. fn returns the next value and true to
// continue, or false to end the stream. A non-nil error becomes an error
// Result and generation continues.
func Generate[T any](fn func() (T, bool, error)) Stream[T] {
	return Emit(func(ctx context.Context) iter.Seq[Result[T]] {
		return func(yield func(Result[T]) bool) {
			for ctx.Err() == nil {
				value, ok, err := fn()
				if err != nil {
					if !yield(Err[T](err)) {
						return
					}
					continue
				}
				if !ok || !yield(Ok(value)) {
					return
				}
			}
		}
	})
}
