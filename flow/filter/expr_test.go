package filter_test

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/lguimbarda/songflow/flow"
	"github.com/lguimbarda/songflow/flow/filter"
	flowjson "github.com/lguimbarda/songflow/flow/json"
)

var songs = []map[string]any{
	{"title": "Never gonna give you up", "artist": "Rick Astley", "duration": 3.5},
	{"title": "Superstition", "artist": "Stevie Wonder", "duration": 4.3},
	{"title": "Feeling Good", "artist": "Nina Simone", "duration": 2.9},
}

func titles(records []map[string]any) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i], _ = rec["title"].(string)
	}
	return out
}

func TestExpr(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{
			name:       "exclude artist",
			expression: `artist != "Rick Astley"`,
			want:       []string{"Superstition", "Feeling Good"},
		},
		{
			name:       "numeric comparison",
			expression: `duration > 3`,
			want:       []string{"Never gonna give you up", "Superstition"},
		},
		{
			name:       "missing key is nil",
			expression: `genre == nil`,
			want:       []string{"Never gonna give you up", "Superstition", "Feeling Good"},
		},
		{
			name:       "empty keeps everything",
			expression: "",
			want:       []string{"Never gonna give you up", "Superstition", "Feeling Good"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, err := filter.Expr(tt.expression)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			got, err := flow.Slice(context.Background(), keep.Apply(flow.FromSlice(songs)))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			names := titles(got)
			if len(names) != len(tt.want) {
				t.Fatalf("got %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("got[%d] = %q, want %q", i, names[i], tt.want[i])
				}
			}
		})
	}
}

func TestExprInvalid(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "syntax", expression: `artist ==`},
		{name: "not boolean", expression: `1 + 2`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := filter.Expr(tt.expression)
			if !errors.Is(err, filter.ErrInvalidExpression) {
				t.Errorf("err = %v, want ErrInvalidExpression", err)
			}
		})
	}
}

func TestExprEvaluationError(t *testing.T) {
	keep, err := filter.Expr(`duration > 3`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	input := []map[string]any{
		{"duration": "long"},
		{"duration": 4.0},
	}
	got := flow.Collect(context.Background(), keep.Apply(flow.FromSlice(input)))
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if !errors.Is(got[0].Error(), filter.ErrEvaluationFailed) {
		t.Errorf("result[0] = %+v, want ErrEvaluationFailed", got[0])
	}
	if !got[1].IsValue() {
		t.Errorf("stream did not continue after evaluation error: %+v", got[1])
	}
}

func TestExprOverDecodedJSON(t *testing.T) {
	const input = `[
		{"title": "Never gonna give you up", "artist": "Rick Astley", "duration": 3.5},
		{"title": "Superstition", "artist": "Stevie Wonder", "duration": 4},
		{"title": "Feeling Good", "artist": "Nina Simone", "duration": 2.9},
		{"title": "Hallelujah", "artist": "Jeff Buckley", "duration": 3}
	]`

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{name: "float threshold", expression: `duration > 3`, want: []string{"Never gonna give you up", "Superstition"}},
		{name: "integer equality", expression: `duration == 3`, want: []string{"Hallelujah"}},
		{name: "arithmetic", expression: `duration * 2 < 7`, want: []string{"Feeling Good", "Hallelujah"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, err := filter.Expr(tt.expression)
			if err != nil {
				t.Fatalf("Expr(%q) error = %v", tt.expression, err)
			}
			got, err := flow.Slice(context.Background(), keep.Apply(flowjson.DecodeArray[map[string]any](strings.NewReader(input))))
			if err != nil {
				t.Fatalf("Slice() error = %v", err)
			}
			if !slices.Equal(titles(got), tt.want) {
				t.Errorf("kept %v, want %v", titles(got), tt.want)
			}
		})
	}
}

func TestExprLeavesRecordUntouched(t *testing.T) {
	rec := map[string]any{"title": "Superstition", "duration": json.Number("4.3")}
	keep, err := filter.Expr(`duration > 3`)
	if err != nil {
		t.Fatalf("Expr() error = %v", err)
	}

	got, err := flow.Slice(context.Background(), keep.Apply(flow.Once(rec)))
	if err != nil || len(got) != 1 {
		t.Fatalf("Slice() = %v, %v; want the record", got, err)
	}
	if _, ok := got[0]["duration"].(json.Number); !ok {
		t.Errorf("duration = %T, want json.Number", got[0]["duration"])
	}
}
