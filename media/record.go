package media

import (
	"encoding/json"
	"fmt"
)

// Record is one decoded, loosely-typed input entry.
type Record = map[string]any

// Keys a Record must carry. Other keys are ignored.
const (
	FieldTitle    = "title"
	FieldArtist   = "artist"
	FieldDuration = "duration"
)

// FromRecord decodes a single record. Errors are *ValidationError with
// Index -1; use Parse to decode a batch with positions.
func FromRecord(rec Record) (MediaItem, error) {
	return decodeRecord(-1, rec)
}

func decodeRecord(index int, rec Record) (MediaItem, error) {
	title, err := stringField(index, rec, FieldTitle)
	if err != nil {
		return MediaItem{}, err
	}
	artist, err := stringField(index, rec, FieldArtist)
	if err != nil {
		return MediaItem{}, err
	}
	raw, ok := rec[FieldDuration]
	if !ok {
		return MediaItem{}, invalid(index, FieldDuration, ErrMissingField)
	}
	duration, err := toFloat(raw)
	if err != nil {
		return MediaItem{}, invalid(index, FieldDuration, err)
	}
	return newItem(index, title, artist, duration)
}

func stringField(index int, rec Record, key string) (string, error) {
	raw, ok := rec[key]
	if !ok {
		return "", invalid(index, key, ErrMissingField)
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalid(index, key, fmt.Errorf("%w: got %T, want string", ErrWrongType, raw))
	}
	return s, nil
}

// toFloat accepts the numeric shapes decoders produce: Go integer and float
// kinds (encoding/json, yaml, database/sql) and json.Number (UseNumber).
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrWrongType, n.String())
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: got %T, want number", ErrWrongType, v)
	}
}
