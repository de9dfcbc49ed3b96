// Package csv provides stream adapters for CSV encoding and decoding.
// It lets CSV rows enter flow pipelines and results leave them as CSV.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"

	"github.com/lguimbarda/songflow/flow/core"
)

// ErrNoHeader is returned by ReadMaps when the input has no header row.
var ErrNoHeader = errors.New("csv: missing header row")

// ReaderOption configures a CSV reader.
type ReaderOption func(*readerConfig)

type readerConfig struct {
	comma            rune
	comment          rune
	fieldsPerRecord  int
	lazyQuotes       bool
	trimLeadingSpace bool
	numeric          map[string]bool
}

func newReader(r io.Reader, cfg readerConfig) *csv.Reader {
	reader := csv.NewReader(r)
	if cfg.comma != 0 {
		reader.Comma = cfg.comma
	}
	reader.Comment = cfg.comment
	reader.FieldsPerRecord = cfg.fieldsPerRecord
	reader.LazyQuotes = cfg.lazyQuotes
	reader.TrimLeadingSpace = cfg.trimLeadingSpace
	return reader
}

func applyOptions(opts []ReaderOption) readerConfig {
	var cfg readerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(c *readerConfig) {
		c.comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(c *readerConfig) {
		c.comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(c *readerConfig) {
		c.fieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(c *readerConfig) {
		c.lazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(c *readerConfig) {
		c.trimLeadingSpace = trim
	}
}

// WithNumericColumns makes ReadMaps parse the named columns as float64.
// A cell that does not parse is kept as its string.
func WithNumericColumns(columns ...string) ReaderOption {
	return func(c *readerConfig) {
		if c.numeric == nil {
			c.numeric = make(map[string]bool, len(columns))
		}
		for _, col := range columns {
			c.numeric[col] = true
		}
	}
}

// ReadRecords creates a Stream that opens the CSV file at path on every
// Emit and emits each row as a string slice.
func ReadRecords(path string, opts ...ReaderOption) core.Stream[[]string] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[[]string]] {
		return func(yield func(core.Result[[]string]) bool) {
			file, err := os.Open(path)
			if err != nil {
				yield(core.Err[[]string](err))
				return
			}
			defer file.Close()
			for res := range ReadRecordsFrom(file, opts...).Emit(ctx) {
				if !yield(res) {
					return
				}
			}
		}
	})
}

// ReadRecordsFrom creates a Stream that reads CSV records from r.
// Malformed rows become error Results and reading continues; any other
// read error ends the stream.
func ReadRecordsFrom(r io.Reader, opts ...ReaderOption) core.Stream[[]string] {
	cfg := applyOptions(opts)
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[[]string]] {
		return func(yield func(core.Result[[]string]) bool) {
			reader := newReader(r, cfg)
			for ctx.Err() == nil {
				record, err := reader.Read()
				if errors.Is(err, io.EOF) {
					return
				}
				if err != nil {
					var perr *csv.ParseError
					if !yield(core.Err[[]string](err)) || !errors.As(err, &perr) {
						return
					}
					continue
				}
				if !yield(core.Ok(record)) {
					return
				}
			}
		}
	})
}

// ReadMaps reads CSV with a header row from r and emits one map per row,
// keyed by column name. Cells are strings unless their column was named in
// WithNumericColumns.
func ReadMaps(r io.Reader, opts ...ReaderOption) core.Stream[map[string]any] {
	return rowsToMaps(applyOptions(opts)).Apply(ReadRecordsFrom(r, opts...))
}

// rowsToMaps takes the first value as the header and keys every later row
// by it. Errors and sentinels pass through unchanged.
func rowsToMaps(cfg readerConfig) core.Transformer[[]string, map[string]any] {
	return core.Transmit(func(ctx context.Context, in iter.Seq[core.Result[[]string]]) iter.Seq[core.Result[map[string]any]] {
		return func(yield func(core.Result[map[string]any]) bool) {
			var header []string
			for res := range in {
				var out core.Result[map[string]any]
				switch {
				case res.IsError():
					out = core.Err[map[string]any](res.Error())
				case res.IsSentinel():
					out = core.Sentinel[map[string]any](res.Sentinel())
				case header == nil:
					header = res.Value()
					continue
				default:
					row, err := toMap(header, res.Value(), cfg.numeric)
					out = core.Ok(row)
					if err != nil {
						out = core.Err[map[string]any](err)
					}
				}
				if !yield(out) {
					return
				}
			}
			if header == nil && ctx.Err() == nil {
				yield(core.Err[map[string]any](ErrNoHeader))
			}
		}
	})
}

func toMap(header, row []string, numeric map[string]bool) (map[string]any, error) {
	if len(row) != len(header) {
		return nil, fmt.Errorf("csv: row has %d fields, header has %d", len(row), len(header))
	}
	out := make(map[string]any, len(header))
	for i, col := range header {
		if numeric[col] {
			if f, err := strconv.ParseFloat(row[i], 64); err == nil {
				out[col] = f
				continue
			}
		}
		out[col] = row[i]
	}
	return out, nil
}

// SkipHeader creates a Transformer that skips the first record (header row).
func SkipHeader() core.Transformer[[]string, []string] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[[]string]]) iter.Seq[core.Result[[]string]] {
		return func(yield func(core.Result[[]string]) bool) {
			first := true
			for res := range in {
				if first && res.IsValue() {
					first = false
					continue
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}

// WriteRecordsTo creates a Transformer that writes each record to w and
// passes it through. Output is flushed when the stream ends; a flush
// failure is emitted as a final error Result.
func WriteRecordsTo(w io.Writer) core.Transformer[[]string, []string] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[[]string]]) iter.Seq[core.Result[[]string]] {
		return func(yield func(core.Result[[]string]) bool) {
			writer := csv.NewWriter(w)
			for res := range in {
				if res.IsValue() {
					if err := writer.Write(res.Value()); err != nil {
						res = core.Err[[]string](err)
					}
				}
				if !yield(res) {
					writer.Flush()
					return
				}
			}
			writer.Flush()
			if err := writer.Error(); err != nil {
				yield(core.Err[[]string](err))
			}
		}
	})
}
