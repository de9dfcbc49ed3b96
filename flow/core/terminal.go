package core

import (
	"context"
	"errors"
)

// Terminal functions consume a stream and produce a final result, such as
// a slice of values, the first value, or nothing but the side effects.

// ErrEmptyStream is returned by First when the stream produced no value.
var ErrEmptyStream = errors.New("stream is empty")

// Slice collects all stream values into a slice. It stops at the first error
// Result and returns that error with no partial values. Sentinels are skipped.
func Slice[OUT any](ctx context.Context, in Stream[OUT]) ([]OUT, error) {
	var result []OUT
	for res := range in.Emit(ctx) {
		if res.IsError() {
			return nil, res.Error()
		}
		if res.IsSentinel() {
			continue
		}
		result = append(result, res.Value())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// First returns the first value from the stream and stops it.
func First[OUT any](ctx context.Context, in Stream[OUT]) (OUT, error) {
	var zero OUT
	for res := range in.Emit(ctx) {
		switch {
		case res.IsError():
			return zero, res.Error()
		case res.IsSentinel():
			continue
		default:
			return res.Value(), nil
		}
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return zero, ErrEmptyStream
}

// Run executes the stream for side effects only, stopping at the first error.
func Run[OUT any](ctx context.Context, in Stream[OUT]) error {
	for res := range in.Emit(ctx) {
		if res.IsError() {
			return res.Error()
		}
	}
	return ctx.Err()
}

// Count returns the number of values in the stream. Errors and sentinels are
// not counted.
func Count[OUT any](ctx context.Context, in Stream[OUT]) int {
	n := 0
	for res := range in.Emit(ctx) {
		if res.IsValue() {
			n++
		}
	}
	return n
}
