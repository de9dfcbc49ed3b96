package core

import (
	"context"
	"iter"
)

// Mapper maps a Result of type IN to a Result of type OUT. It keeps the
// cardinality of the flow (one input item produces one output item).
// It answers the question: "What is done to each item in the flow?"
type Mapper[IN, OUT any] func(Result[IN]) (Result[OUT], error)

// Map creates a Mapper from a transformation function. Errors returned by
// mapFunc become error Results; a panic becomes an ErrPanic error Result.
// Incoming errors and sentinels pass through with their original error.
func Map[IN, OUT any](mapFunc func(IN) (OUT, error)) Mapper[IN, OUT] {
	return func(res Result[IN]) (out Result[OUT], err error) {
		defer func() {
			if r := recover(); r != nil {
				err = NewPanicError(r)
			}
		}()

		if res.IsError() {
			return Err[OUT](res.Error()), nil
		}
		if res.IsSentinel() {
			return Sentinel[OUT](res.Sentinel()), nil
		}
		mapped, err := mapFunc(res.Value())
		if err != nil {
			return Err[OUT](err), nil
		}
		return Ok(mapped), nil
	}
}

// Apply transforms a stream using this Mapper. Hooks registered for OUT on
// the emitting context observe every produced Result.
func (m Mapper[IN, OUT]) Apply(s Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) iter.Seq[Result[OUT]] {
		return func(yield func(Result[OUT]) bool) {
			hooks := newHookInvoker[OUT](ctx)
			hooks.invokeStart()
			defer hooks.invokeComplete()

			for resIn := range s.Emit(ctx) {
				resOut, err := m(resIn)
				if err != nil {
					resOut = Err[OUT](err)
				}
				hooks.invokeResult(resOut)
				if !yield(resOut) {
					return
				}
			}
		}
	})
}

// FlatMapper maps a Result of type IN to zero or more Results of type OUT.
// It answers the question: "How are items in the flow reduced or expanded?"
type FlatMapper[IN, OUT any] func(Result[IN]) ([]Result[OUT], error)

// FlatMap creates a FlatMapper from a function returning a slice.
func FlatMap[IN, OUT any](flatMapFunc func(IN) ([]OUT, error)) FlatMapper[IN, OUT] {
	return func(res Result[IN]) (outs []Result[OUT], err error) {
		defer func() {
			if r := recover(); r != nil {
				err = NewPanicError(r)
			}
		}()

		if res.IsError() {
			return []Result[OUT]{Err[OUT](res.Error())}, nil
		}
		if res.IsSentinel() {
			return []Result[OUT]{Sentinel[OUT](res.Sentinel())}, nil
		}
		mapped, err := flatMapFunc(res.Value())
		if err != nil {
			return []Result[OUT]{Err[OUT](err)}, nil
		}
		results := make([]Result[OUT], len(mapped))
		for i, v := range mapped {
			results[i] = Ok(v)
		}
		return results, nil
	}
}

// Apply transforms a stream using this FlatMapper.
func (fm FlatMapper[IN, OUT]) Apply(s Stream[IN]) Stream[OUT] {
	return Emit(func(ctx context.Context) iter.Seq[Result[OUT]] {
		return func(yield func(Result[OUT]) bool) {
			hooks := newHookInvoker[OUT](ctx)
			hooks.invokeStart()
			defer hooks.invokeComplete()

			for resIn := range s.Emit(ctx) {
				resOuts, err := fm(resIn)
				if err != nil {
					resOuts = []Result[OUT]{Err[OUT](err)}
				}
				for _, resOut := range resOuts {
					hooks.invokeResult(resOut)
					if !yield(resOut) {
						return
					}
				}
			}
		}
	})
}
