package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/streax/internal/db"
)

// FailOnNthExecUoW wraps a real unit of work and makes the FailOn-th write
// inside each transaction return Err. Reads pass through uncounted.
type FailOnNthExecUoW struct {
	Inner  db.UnitOfWork
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.Inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, left: u.FailOn, err: u.Err})
	})
}

type failingWrites struct {
	db.DBTX
	left int
	err  error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.left--
	if f.left == 0 {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
