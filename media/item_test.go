package media_test

import (
	"errors"
	"math"
	"testing"

	"github.com/lguimbarda/songflow/media"
)

func TestNewMediaItem(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		artist    string
		duration  float64
		wantField string
		wantErr   error
	}{
		{name: "valid", title: "Superstition", artist: "Stevie Wonder", duration: 4.3},
		{name: "zero duration", title: "Silence", artist: "Nobody", duration: 0},
		{name: "empty title", title: "", artist: "X", duration: 1, wantField: media.FieldTitle, wantErr: media.ErrEmptyField},
		{name: "empty artist", title: "A", artist: "", duration: 1, wantField: media.FieldArtist, wantErr: media.ErrEmptyField},
		{name: "negative duration", title: "A", artist: "X", duration: -0.5, wantField: media.FieldDuration, wantErr: media.ErrInvalidDuration},
		{name: "NaN duration", title: "A", artist: "X", duration: math.NaN(), wantField: media.FieldDuration, wantErr: media.ErrInvalidDuration},
		{name: "infinite duration", title: "A", artist: "X", duration: math.Inf(1), wantField: media.FieldDuration, wantErr: media.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := media.NewMediaItem(tt.title, tt.artist, tt.duration)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				want := media.MediaItem{Title: tt.title, Artist: tt.artist, DurationSeconds: tt.duration}
				if item != want {
					t.Errorf("got %+v, want %+v", item, want)
				}
				return
			}

			var verr *media.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Index != -1 {
				t.Errorf("Index = %d, want -1", verr.Index)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v does not wrap %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &media.ValidationError{Index: 0, Field: "title", Err: media.ErrMissingField}
	if got, want := err.Error(), "record 0: title: missing required field"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &media.ValidationError{Index: -1, Field: "artist", Err: media.ErrEmptyField}
	if got, want := err.Error(), "artist: must not be empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
