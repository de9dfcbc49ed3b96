package media

import (
	"math"
)

// MediaItem is a validated song. Only LikeCount changes after construction.
type MediaItem struct {
	Title           string  `json:"title" yaml:"title"`
	Artist          string  `json:"artist" yaml:"artist"`
	DurationSeconds float64 `json:"duration" yaml:"duration"`
	LikeCount       int     `json:"likes" yaml:"likes"`
}

// NewMediaItem builds a MediaItem with no likes. It fails with a
// *ValidationError (Index -1) when title or artist is empty or the duration
// is negative, NaN or infinite.
func NewMediaItem(title, artist string, durationSeconds float64) (MediaItem, error) {
	return newItem(-1, title, artist, durationSeconds)
}

func newItem(index int, title, artist string, durationSeconds float64) (MediaItem, error) {
	switch {
	case title == "":
		return MediaItem{}, invalid(index, FieldTitle, ErrEmptyField)
	case artist == "":
		return MediaItem{}, invalid(index, FieldArtist, ErrEmptyField)
	case !validDuration(durationSeconds):
		return MediaItem{}, invalid(index, FieldDuration, ErrInvalidDuration)
	}
	return MediaItem{Title: title, Artist: artist, DurationSeconds: durationSeconds}, nil
}

func validDuration(d float64) bool {
	return d >= 0 && !math.IsInf(d, 1) // NaN fails d >= 0
}
