package observe

import (
	"context"
	"iter"
	"time"

	"github.com/lguimbarda/songflow/flow/core"
)

// StreamMetrics holds statistics about one run of a stream.
type StreamMetrics struct {
	TotalItems    int64
	ValueCount    int64
	ErrorCount    int64
	SentinelCount int64

	StartTime time.Time
	EndTime   time.Time
}

// Elapsed is the time between the first pull and the end of the run.
func (m StreamMetrics) Elapsed() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}

// Meter creates a Transformer that counts the Results passing through it.
// onComplete receives the totals when the run ends, including when the
// consumer stops early.
func Meter[T any](onComplete func(StreamMetrics)) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			metrics := StreamMetrics{StartTime: time.Now()}
			defer func() {
				metrics.EndTime = time.Now()
				if onComplete != nil {
					onComplete(metrics)
				}
			}()

			for res := range in {
				metrics.TotalItems++
				switch {
				case res.IsError():
					metrics.ErrorCount++
				case res.IsSentinel():
					metrics.SentinelCount++
				default:
					metrics.ValueCount++
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// Spy creates a Transformer that shows every Result, errors and sentinels
// included, to inspector without changing the stream.
func Spy[T any](inspector func(core.Result[T])) core.Transformer[T, T] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			for res := range in {
				inspector(res)
				if !yield(res) {
					return
				}
			}
		}
	})
}
