package core

import (
	"context"
)

// Hooks holds typed observation callbacks for a stream.
// All fields are optional - nil means no observation for that event.
// Hooks run inline with stream processing, so they should be fast.
type Hooks[T any] struct {
	OnStart    func()      // Stream begins processing
	OnValue    func(T)     // Successful value produced
	OnError    func(error) // Error produced
	OnSentinel func(error) // Sentinel produced
	OnComplete func()      // Stream finished (also on early stop)
}

// hooksKey is unexported to prevent collisions with user context keys.
type hooksKey[T any] struct{}

// WithHooks attaches typed hooks to the context.
// Multiple calls compose in FIFO order: hooks from earlier calls are
// invoked before hooks from later calls.
//
// Example:
//
//	ctx := core.WithHooks(ctx, core.Hooks[int]{
//	    OnValue: func(v int) { log.Printf("Value: %d", v) },
//	})
func WithHooks[T any](ctx context.Context, hooks Hooks[T]) context.Context {
	if ctx == nil {
		panic("nil context")
	}

	existing := hooksFrom[T](ctx)
	sets := make([]Hooks[T], len(existing), len(existing)+1)
	copy(sets, existing)
	sets = append(sets, hooks)
	return context.WithValue(ctx, hooksKey[T]{}, sets)
}

func hooksFrom[T any](ctx context.Context) []Hooks[T] {
	if ctx == nil {
		return nil
	}
	sets, _ := ctx.Value(hooksKey[T]{}).([]Hooks[T])
	return sets
}

// hookInvoker caches the hook sets found on a context for one stream run.
type hookInvoker[T any] struct {
	sets []Hooks[T]
}

func newHookInvoker[T any](ctx context.Context) hookInvoker[T] {
	return hookInvoker[T]{sets: hooksFrom[T](ctx)}
}

func (h hookInvoker[T]) invokeStart() {
	for _, hooks := range h.sets {
		if hooks.OnStart != nil {
			hooks.OnStart()
		}
	}
}

func (h hookInvoker[T]) invokeComplete() {
	for _, hooks := range h.sets {
		if hooks.OnComplete != nil {
			hooks.OnComplete()
		}
	}
}

// invokeResult fires OnValue, OnError or OnSentinel depending on res.
func (h hookInvoker[T]) invokeResult(res Result[T]) {
	for _, hooks := range h.sets {
		switch {
		case res.IsValue():
			if hooks.OnValue != nil {
				hooks.OnValue(res.Value())
			}
		case res.IsSentinel():
			if hooks.OnSentinel != nil {
				hooks.OnSentinel(res.Sentinel())
			}
		default:
			if hooks.OnError != nil {
				hooks.OnError(res.Error())
			}
		}
	}
}
