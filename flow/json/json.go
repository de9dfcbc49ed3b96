// Package json provides stream adapters for JSON encoding and decoding.
// It lets decoded JSON documents enter flow pipelines.
package json

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// ErrNotArray is returned by DecodeArray when the input does not start with '['.
var ErrNotArray = errors.New("json: expected array")

// Decode creates a Transformer that decodes JSON strings into typed values.
// Each input string is expected to be a valid JSON document. Numbers
// decoded into interface values become json.Number. Invalid JSON results
// in an error Result and the stream continues.
func Decode[T any]() core.Transformer[string, T] {
	return core.Map(func(doc string) (T, error) {
		var value T
		dec := json.NewDecoder(bytes.NewReader([]byte(doc)))
		dec.UseNumber()
		if err := dec.Decode(&value); err != nil {
			return value, err
		}
		return value, nil
	})
}

// Encode creates a Transformer that encodes typed values into JSON strings.
func Encode[T any]() core.Transformer[T, string] {
	return core.Map(func(value T) (string, error) {
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	})
}

// DecodeLines creates a Stream that reads newline-delimited JSON (NDJSON)
// from r and emits one value per document. A malformed document is emitted
// as an error Result; since the decoder cannot resynchronise, the stream
// ends after it.
func DecodeLines[T any](r io.Reader) core.Stream[T] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			dec := json.NewDecoder(r)
			dec.UseNumber()
			for ctx.Err() == nil {
				var value T
				if err := dec.Decode(&value); err != nil {
					if !errors.Is(err, io.EOF) {
						yield(core.Err[T](err))
					}
					return
				}
				if !yield(core.Ok(value)) {
					return
				}
			}
		}
	})
}

// DecodeArray creates a Stream that reads a JSON array from r and emits each
// element in order, without loading the whole array first.
func DecodeArray[T any](r io.Reader) core.Stream[T] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			dec := json.NewDecoder(r)
			dec.UseNumber()

			token, err := dec.Token()
			if err != nil {
				yield(core.Err[T](err))
				return
			}
			if delim, ok := token.(json.Delim); !ok || delim != '[' {
				yield(core.Err[T](fmt.Errorf("%w, got %v", ErrNotArray, token)))
				return
			}

			for dec.More() {
				if ctx.Err() != nil {
					return
				}
				var value T
				if err := dec.Decode(&value); err != nil {
					yield(core.Err[T](err))
					return
				}
				if !yield(core.Ok(value)) {
					return
				}
			}

			if _, err := dec.Token(); err != nil {
				yield(core.Err[T](err))
			}
		}
	})
}
