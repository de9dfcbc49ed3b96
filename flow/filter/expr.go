package filter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lguimbarda/songflow/flow/core"
)

var (
	// ErrInvalidExpression is returned when an expression does not compile.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrEvaluationFailed wraps runtime failures of a compiled expression.
	ErrEvaluationFailed = errors.New("expression evaluation failed")
)

// Expr compiles a boolean expr-lang expression and returns a Transformer that
// keeps the records for which it evaluates to true. Record keys are the
// expression's variables; a missing key evaluates as nil. json.Number values
// are seen as int64, or float64 when they are not integers. An empty
// expression keeps everything.
//
//	keep, err := filter.Expr(`artist != "Rick Astley" && duration > 3`)
//
// Evaluation errors become error Results wrapping ErrEvaluationFailed and
// the stream continues.
func Expr(expression string) (core.Transformer[map[string]any, map[string]any], error) {
	if expression == "" {
		return Where(func(map[string]any) bool { return true }), nil
	}

	program, err := expr.Compile(expression, expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	return core.Transmit(func(_ context.Context, in iter.Seq[core.Result[map[string]any]]) iter.Seq[core.Result[map[string]any]] {
		return func(yield func(core.Result[map[string]any]) bool) {
			for res := range in {
				if res.IsValue() {
					keep, err := evaluate(program, res.Value())
					if err != nil {
						res = core.Err[map[string]any](err)
					} else if !keep {
						continue
					}
				}
				if !yield(res) {
					return
				}
			}
		}
	}), nil
}

func evaluate(program *vm.Program, record map[string]any) (bool, error) {
	out, err := expr.Run(program, withNumbers(record))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: result is %T, not bool", ErrEvaluationFailed, out)
	}
	return keep, nil
}

// withNumbers converts json.Number values, which expr cannot compare, into
// int64 or float64. record is not modified; a copy is made only when needed.
func withNumbers(record map[string]any) map[string]any {
	var env map[string]any
	for key, v := range record {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if env == nil {
			env = maps.Clone(record)
		}
		if i, err := n.Int64(); err == nil {
			env[key] = i
		} else if f, err := n.Float64(); err == nil {
			env[key] = f
		}
	}
	if env == nil {
		return record
	}
	return env
}
