package json

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/lguimbarda/songflow/flow/core"
)

type track struct {
	Title    string  `json:"title"`
	Duration float64 `json:"duration"`
}

func fromSlice[T any](items []T) core.Stream[T] {
	return core.Emit(func(context.Context) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			for _, item := range items {
				if !yield(core.Ok(item)) {
					return
				}
			}
		}
	})
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []track
		errors   int
	}{
		{
			name:     "valid documents",
			input:    []string{`{"title":"A","duration":3.5}`, `{"title":"B","duration":1}`},
			expected: []track{{Title: "A", Duration: 3.5}, {Title: "B", Duration: 1}},
		},
		{
			name:     "invalid document continues",
			input:    []string{`{"title":`, `{"title":"B","duration":2}`},
			expected: []track{{Title: "B", Duration: 2}},
			errors:   1,
		},
		{
			name:  "empty input",
			input: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []track
			errs := 0
			for _, res := range core.Collect(context.Background(), Decode[track]().Apply(fromSlice(tt.input))) {
				if res.IsError() {
					errs++
					continue
				}
				got = append(got, res.Value())
			}
			if errs != tt.errors {
				t.Errorf("errors = %d, want %d", errs, tt.errors)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("got[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestDecodeUsesNumber(t *testing.T) {
	got, err := core.First(context.Background(), Decode[map[string]any]().Apply(fromSlice([]string{`{"duration":4.3}`})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, ok := got["duration"].(json.Number); !ok || n.String() != "4.3" {
		t.Errorf("duration = %#v, want json.Number 4.3", got["duration"])
	}
}

func TestEncode(t *testing.T) {
	got, err := core.Slice(context.Background(), Encode[track]().Apply(fromSlice([]track{{Title: "A", Duration: 2}})))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != `{"title":"A","duration":2}` {
		t.Errorf("got %v", got)
	}
}

func TestDecodeLines(t *testing.T) {
	input := `{"title":"A","duration":1}
{"title":"B","duration":2}

{"title":"C","duration":3}
`
	got, err := core.Slice(context.Background(), DecodeLines[track](strings.NewReader(input)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[2].Title != "C" {
		t.Errorf("got %+v", got)
	}
}

func TestDecodeLinesStopsOnMalformed(t *testing.T) {
	input := `{"title":"A","duration":1}
{"title": oops}
{"title":"C","duration":3}
`
	results := core.Collect(context.Background(), DecodeLines[track](strings.NewReader(input)))
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].IsValue() || !results[1].IsError() {
		t.Errorf("got %+v", results)
	}
}

func TestDecodeArray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "elements", input: `[{"title":"A"},{"title":"B"}]`, want: 2},
		{name: "empty array", input: `[]`, want: 0},
		{name: "object is not an array", input: `{"title":"A"}`, wantErr: ErrNotArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.Slice(context.Background(), DecodeArray[track](strings.NewReader(tt.input)))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d values, want %d", len(got), tt.want)
			}
		})
	}
}

func TestDecodeArrayTruncated(t *testing.T) {
	results := core.Collect(context.Background(), DecodeArray[track](strings.NewReader(`[{"title":"A"},{"title":`)))
	if len(results) != 2 || !results[0].IsValue() || !results[1].IsError() {
		t.Errorf("got %+v", results)
	}
}
