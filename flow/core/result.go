package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrPanic wraps a recovered panic value as an error.
// It is produced when a user-provided function panics inside a Mapper or
// FlatMapper.
type ErrPanic struct {
	Value any
	Stack string // frames outside songflow/flow, innermost first
}

func (e ErrPanic) Error() string {
	if e.Stack == "" {
		return fmt.Sprintf("panic: %v", e.Value)
	}
	return fmt.Sprintf("panic: %v\n%s", e.Value, e.Stack)
}

// NewPanicError creates an ErrPanic from a recovered value.
func NewPanicError(recovered any) ErrPanic {
	// runtime.Callers, userStack, NewPanicError, deferred func
	return ErrPanic{Value: recovered, Stack: userStack(4)}
}

const flowPackages = "github.com/lguimbarda/songflow/flow"

func userStack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}

	var lines []string
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !internalFrame(frame.Function) {
			lines = append(lines, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
		}
		if !more {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// internalFrame reports whether function belongs to one of the flow packages.
// Test packages (core_test, filter_test, ...) count as callers.
func internalFrame(function string) bool {
	rest, ok := strings.CutPrefix(function, flowPackages)
	if !ok {
		return false
	}
	pkg, _, _ := strings.Cut(rest, ".")
	return !strings.HasSuffix(pkg, "_test")
}

// Result represents the outcome of processing an item in the stream.
// It exists in one of three states:
//   - Value: successful processing result (IsValue() returns true)
//   - Error: processing failure that is non-fatal (IsError() returns true)
//   - Sentinel: stream control signal like end-of-stream (IsSentinel() returns true)
//
// Errors do not stop a stream by themselves; terminals such as Slice decide
// whether the first error ends consumption.
type Result[OUT any] struct {
	value      OUT
	err        error
	isSentinel bool
}

// NewResult creates a Result with explicit control over all fields.
// Prefer Ok(), Err(), Sentinel(), or EndOfStream() for common cases.
func NewResult[OUT any](value OUT, err error, isSentinel bool) Result[OUT] {
	return Result[OUT]{value: value, err: err, isSentinel: isSentinel}
}

// Ok creates a successful Result containing the given value.
func Ok[OUT any](value OUT) Result[OUT] {
	return Result[OUT]{value: value}
}

// Err creates an error Result.
func Err[OUT any](err error) Result[OUT] {
	var zero OUT
	return Result[OUT]{value: zero, err: err}
}

// Sentinel creates a sentinel Result with an optional descriptive error.
func Sentinel[OUT any](err error) Result[OUT] {
	var zero OUT
	return Result[OUT]{value: zero, err: err, isSentinel: true}
}

// ErrEndOfStream is the sentinel error indicating normal stream termination.
var ErrEndOfStream = errors.New("end of stream")

// EndOfStream creates a sentinel Result indicating the stream has ended normally.
func EndOfStream[OUT any]() Result[OUT] {
	return Sentinel[OUT](ErrEndOfStream)
}

// IsValue returns true if this Result contains a successful value.
func (r Result[OUT]) IsValue() bool {
	return r.err == nil && !r.isSentinel
}

// IsSentinel returns true if this Result is a sentinel (control signal).
func (r Result[OUT]) IsSentinel() bool {
	return r.isSentinel
}

// IsError returns true if this Result contains a processing error.
func (r Result[OUT]) IsError() bool {
	return r.err != nil && !r.isSentinel
}

// Value returns the contained value. Only meaningful when IsValue() is true.
func (r Result[OUT]) Value() OUT {
	return r.value
}

// Error returns the error if this is an error Result.
// Returns nil for value Results and sentinels.
func (r Result[OUT]) Error() error {
	if r.isSentinel {
		return nil
	}
	return r.err
}

// Sentinel returns the sentinel's context error if this is a sentinel Result.
func (r Result[OUT]) Sentinel() error {
	if !r.isSentinel {
		return nil
	}
	return r.err
}

// Unwrap returns the value and error together.
func (r Result[OUT]) Unwrap() (OUT, error) {
	return r.value, r.err
}
