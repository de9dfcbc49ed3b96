// Package benchmarks compares songflow's pipeline forms against popular Go
// collection and stream libraries doing the same work.
package benchmarks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lguimbarda/songflow/media"
)

// Test data sizes
const (
	SmallSize  = 100
	MediumSize = 1_000
	LargeSize  = 10_000
)

const excluded = "Rick Astley"

var artists = []string{"Rick Astley", "Stevie Wonder", "Nina Simone", "Aretha Franklin"}

// generateRecords builds n valid records; every fourth one is by the
// excluded artist.
func generateRecords(n int) []media.Record {
	records := make([]media.Record, n)
	for i := range records {
		records[i] = media.Record{
			"title":    "Track " + strconv.Itoa(i),
			"artist":   artists[i%len(artists)],
			"duration": float64(i%7) + 0.5,
		}
	}
	return records
}

// generateItems returns the parsed form of generateRecords(n).
func generateItems(n int) []media.MediaItem {
	items, err := media.Parse(generateRecords(n))
	if err != nil {
		panic(fmt.Sprintf("generateItems: %v", err))
	}
	return items
}

func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

func squareWithErr(x int) (int, error) {
	return x * x, nil
}

func square(x int) int {
	return x * x
}

func isEven(x int) bool {
	return x%2 == 0
}

var ctx = context.Background()
