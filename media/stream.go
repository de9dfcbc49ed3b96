package media

import (
	"context"
	"iter"

	"github.com/lguimbarda/songflow/flow/aggregate"
	"github.com/lguimbarda/songflow/flow/core"
	"github.com/lguimbarda/songflow/flow/filter"
)

// Decode is the stream form of Parse. Records are numbered from 0 in the
// order they arrive on each Emit; a bad record becomes an error Result
// holding its *ValidationError. Upstream errors and sentinels pass through
// without taking a position.
func Decode() core.Transformer[Record, MediaItem] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[Record]]) iter.Seq[core.Result[MediaItem]] {
		return func(yield func(core.Result[MediaItem]) bool) {
			index := 0
			for res := range in {
				var out core.Result[MediaItem]
				switch {
				case res.IsError():
					out = core.Err[MediaItem](res.Error())
				case res.IsSentinel():
					out = core.Sentinel[MediaItem](res.Sentinel())
				default:
					item, err := decodeRecord(index, res.Value())
					index++
					out = core.Ok(item)
					if err != nil {
						out = core.Err[MediaItem](err)
					}
				}
				if !yield(out) {
					return
				}
			}
		}
	})
}

// ExcludeArtist is the stream form of FilterExcluding.
func ExcludeArtist(artist string) core.Transformer[MediaItem, MediaItem] {
	return filter.Exclude(func(item MediaItem) bool {
		return item.Artist == artist
	})
}

// AddLike emits a copy of every item with one more like. It is a Mapper, so
// hooks registered for MediaItem observe its output.
func AddLike() core.Transformer[MediaItem, MediaItem] {
	return core.Map(func(item MediaItem) (MediaItem, error) {
		item.LikeCount++
		return item, nil
	})
}

// SumDuration folds a stream of items into their total duration.
func SumDuration() core.Transformer[MediaItem, float64] {
	return aggregate.Sum(func(item MediaItem) float64 {
		return item.DurationSeconds
	})
}
