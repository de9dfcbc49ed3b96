// Package sql provides stream adapters for database operations using database/sql.
// It lets rows of a caller-owned database feed flow pipelines.
package sql

import (
	"context"
	"database/sql"
	"iter"

	"github.com/lguimbarda/songflow/flow/core"
)

// Scanner is a function that scans the current row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query creates a Stream that executes a query on every Emit and emits one
// value per row. Scan errors are emitted as error Results and the stream
// continues with the next row. Rows are closed when iteration ends,
// including when the consumer stops early.
func Query[T any](db *sql.DB, query string, scanner Scanner[T], args ...any) core.Stream[T] {
	return core.Emit(func(ctx context.Context) iter.Seq[core.Result[T]] {
		return func(yield func(core.Result[T]) bool) {
			rows, err := db.QueryContext(ctx, query, args...)
			if err != nil {
				yield(core.Err[T](err))
				return
			}
			defer rows.Close()

			for rows.Next() {
				value, err := scanner(rows)
				res := core.Ok(value)
				if err != nil {
					res = core.Err[T](err)
				}
				if !yield(res) {
					return
				}
			}
			if err := rows.Err(); err != nil {
				yield(core.Err[T](err))
			}
		}
	})
}

// QueryMaps queries for map results keyed by column name. Text columns that
// the driver returns as []byte are converted to string so the maps look
// like decoded JSON records.
func QueryMaps(db *sql.DB, query string, args ...any) core.Stream[map[string]any] {
	return Query(db, query, scanMap, args...)
}

func scanMap(rows *sql.Rows) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	record := make(map[string]any, len(cols))
	for i, col := range cols {
		if b, ok := values[i].([]byte); ok {
			record[col] = string(b)
			continue
		}
		record[col] = values[i]
	}
	return record, nil
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertID int64
	RowsAffected int64
}

// ExecMany creates a Transformer that executes a statement for each input value.
// The binder function converts the input value to statement arguments.
// Errors and sentinels are converted and passed through.
func ExecMany[T any](db *sql.DB, query string, binder func(T) []any) core.Transformer[T, ExecResult] {
	return core.Transmit(func(ctx context.Context, in iter.Seq[core.Result[T]]) iter.Seq[core.Result[ExecResult]] {
		return func(yield func(core.Result[ExecResult]) bool) {
			for res := range in {
				var out core.Result[ExecResult]
				switch {
				case res.IsError():
					out = core.Err[ExecResult](res.Error())
				case res.IsSentinel():
					out = core.Sentinel[ExecResult](res.Sentinel())
				default:
					out = exec(ctx, db, query, binder(res.Value()))
				}
				if !yield(out) {
					return
				}
			}
		}
	})
}

func exec(ctx context.Context, db *sql.DB, query string, args []any) core.Result[ExecResult] {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return core.Err[ExecResult](err)
	}
	lastID, _ := result.LastInsertId()
	affected, _ := result.RowsAffected()
	return core.Ok(ExecResult{LastInsertID: lastID, RowsAffected: affected})
}
