package media

import (
	"github.com/samber/lo"
)

// Parse decodes records in order. Either every record decodes and the
// result has the same length and order, or the first failing record's
// *ValidationError is returned and no items are.
func Parse(records []Record) ([]MediaItem, error) {
	items := make([]MediaItem, 0, len(records))
	for i, rec := range records {
		item, err := decodeRecord(i, rec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FilterExcluding returns a new slice holding the items whose artist is not
// artist (exact, case-sensitive match), in their original order. items is
// not modified.
func FilterExcluding(items []MediaItem, artist string) []MediaItem {
	return lo.Reject(items, func(item MediaItem, _ int) bool {
		return item.Artist == artist
	})
}

// IncrementLikes adds one like to every item in place and returns the same
// slice. Each call adds exactly one more.
func IncrementLikes(items []MediaItem) []MediaItem {
	for i := range items {
		items[i].LikeCount++
	}
	return items
}

// TotalDuration sums the items' durations; it is 0 for no items.
func TotalDuration(items []MediaItem) float64 {
	return lo.SumBy(items, func(item MediaItem) float64 {
		return item.DurationSeconds
	})
}
