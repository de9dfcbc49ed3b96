// Package core defines the core abstractions for data flow processing:
// streams, transformers, emitters and result handling.
//
// Streams are pull-based: nothing runs until a terminal ranges over
// Emit, and every stage executes on the caller's goroutine.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other flow packages.
package core

import (
	"context"
	"iter"
)

// Stream represents a flow of data.
// Stream answers the question: "What operations will produce the stream's data?".
type Stream[OUT any] interface {
	Emit(context.Context) iter.Seq[Result[OUT]]
}

// Transformer represents a data processing unit that transforms
// a Stream of type IN into a Stream of type OUT. Transformers can
// be composed to build complex data processing pipelines.
// They answer the question: "What operations are being applied to the stream's data?".
type Transformer[IN, OUT any] interface {
	Apply(Stream[IN]) Stream[OUT]
}

// Emitter is a function producing a sequence of results. It is the lowest
// level implementation of Stream and answers the question:
// "How is the stream's data produced?".
type Emitter[OUT any] func(context.Context) iter.Seq[Result[OUT]]

// Emit creates an Emitter from a sequence-producing function.
func Emit[OUT any](emitter func(context.Context) iter.Seq[Result[OUT]]) Emitter[OUT] {
	return emitter
}

func (e Emitter[OUT]) Emit(ctx context.Context) iter.Seq[Result[OUT]] {
	return e(ctx)
}

// Transmitter turns a sequence of IN results into a sequence of OUT results.
// It is the lowest level implementation of Transformer and answers the
// question: "How is the stream's data transformed?".
type Transmitter[IN, OUT any] func(context.Context, iter.Seq[Result[IN]]) iter.Seq[Result[OUT]]

// Transmit creates a Transmitter from a sequence transformation function.
func Transmit[IN, OUT any](transmitter func(context.Context, iter.Seq[Result[IN]]) iter.Seq[Result[OUT]]) Transmitter[IN, OUT] {
	return transmitter
}

func (t Transmitter[IN, OUT]) Apply(in Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) iter.Seq[Result[OUT]] {
		return t(ctx, in.Emit(ctx))
	})
}

// Collect gathers every Result, errors and sentinels included.
func Collect[OUT any](ctx context.Context, stream Stream[OUT]) []Result[OUT] {
	var results []Result[OUT]
	for res := range stream.Emit(ctx) {
		results = append(results, res)
	}
	return results
}

// All returns the stream's results as an iterator.
func All[OUT any](ctx context.Context, stream Stream[OUT]) iter.Seq[Result[OUT]] {
	return stream.Emit(ctx)
}
