package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/traworker/internal/db"
)

// ErrInjected is returned by FailOnNthExecUoW when Err is unset.
var ErrInjected = errors.New("injected exec failure")

// FailOnNthExecUoW runs each transaction against DB but fails the FailOn-th
// write (counting from 1). Reads are passed through uncounted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	injected := u.Err
	if injected == nil {
		injected = ErrInjected
	}
	if err := fn(ctx, &failingExec{DBTX: tx, failOn: u.FailOn, err: injected}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.writes.Add(1) == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
