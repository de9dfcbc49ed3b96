// Package io provides stream adapters for line-oriented file I/O.
// It lets text files feed flow pipelines and results be written back out.
package io

import (
	"bufio"
	"context"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/lguimbarda/songflow/flow/core"
)

// ReadLines creates a Stream that opens the file at path on every Emit and
// emits each line without its trailing newline. If the file cannot be
// opened, the stream emits a single error.
func ReadLines(path string) core.Stream[string] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[string]] {
		return func(yield func(core.Result[string]) bool) {
			file, err := os.Open(path)
			if err != nil {
				yield(core.Err[string](err))
				return
			}
			defer file.Close()
			for res := range ReadLinesFrom(file).Emit(ctx) {
				if !yield(res) {
					return
				}
			}
		}
	})
}

// ReadLinesFrom creates a Stream that reads lines from r. Blank lines are
// skipped.
func ReadLinesFrom(r io.Reader) core.Stream[string] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[string]] {
		return func(yield func(core.Result[string]) bool) {
			scanner := bufio.NewScanner(r)
			for ctx.Err() == nil && scanner.Scan() {
				line := scanner.Text()
				if strings.TrimSpace(line) == "" {
					continue
				}
				if !yield(core.Ok(line)) {
					return
				}
			}
			if err := scanner.Err(); err != nil {
				yield(core.Err[string](err))
			}
		}
	})
}

// WriteTo creates a Transformer that writes each string to w followed by a
// newline. Items pass through unchanged after being written; output is
// flushed when the stream ends.
func WriteTo(w io.Writer) core.Transformer[string, string] {
	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[string]]) iter.Seq[core.Result[string]] {
		return func(yield func(core.Result[string]) bool) {
			writer := bufio.NewWriter(w)
			defer writer.Flush()

			for res := range in {
				if res.IsValue() {
					if _, err := writer.WriteString(res.Value() + "\n"); err != nil {
						res = core.Err[string](err)
					}
				}
				if !yield(res) {
					return
				}
			}
		}
	})
}
