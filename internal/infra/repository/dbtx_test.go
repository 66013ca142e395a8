//go:build unit

package repository_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// scriptedDB answers Exec and QueryRow calls in order and records the SQL it saw.
type scriptedDB struct {
	mu    sync.Mutex
	execs []execResult
	rows  []scriptedRow
	seen  []string
}

type execResult struct {
	tag string
	err error
}

func (d *scriptedDB) onExec(tag string, err error) *scriptedDB {
	d.execs = append(d.execs, execResult{tag: tag, err: err})
	return d
}

func (d *scriptedDB) onRow(err error, values ...any) *scriptedDB {
	d.rows = append(d.rows, scriptedRow{values: values, err: err})
	return d
}

func (d *scriptedDB) statements() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.seen...)
}

func (d *scriptedDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = append(d.seen, strings.TrimSpace(sql))
	if len(d.execs) == 0 {
		panic("scriptedDB: unexpected Exec: " + sql)
	}
	r := d.execs[0]
	d.execs = d.execs[1:]
	return pgconn.NewCommandTag(r.tag), r.err
}

func (d *scriptedDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	panic("scriptedDB: Query is not scripted: " + sql)
}

func (d *scriptedDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = append(d.seen, strings.TrimSpace(sql))
	if len(d.rows) == 0 {
		panic("scriptedDB: unexpected QueryRow: " + sql)
	}
	r := d.rows[0]
	d.rows = d.rows[1:]
	return r
}

type scriptedRow struct {
	values []any
	err    error
}

func (r scriptedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scriptedRow: %d destinations for %d values", len(dest), len(r.values))
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int32:
			*d = v.(int32)
		case *int64:
			*d = v.(int64)
		case *bool:
			*d = v.(bool)
		case *string:
			*d = v.(string)
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("scriptedRow: unsupported destination %T", dest[i])
		}
	}
	return nil
}

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "scripted"}
}
