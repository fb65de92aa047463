package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/mountainflow/internal/db"
)

// FailOnNthExecUoW injects Err on the Nth ExecContext call (counting from 1)
// inside the transaction. Reads pass through untouched.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &FailingExecDB{DBTX: tx, FailOn: u.FailOn, Err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

// FailingExecDB wraps a DBTX and fails writes. FailOn selects the Nth
// ExecContext call; zero fails every write.
type FailingExecDB struct {
	db.DBTX
	FailOn int
	Err    error

	count int
}

func (f *FailingExecDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.count++
	if f.FailOn == 0 || f.count == f.FailOn {
		return nil, f.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// Execs reports how many writes were attempted.
func (f *FailingExecDB) Execs() int { return f.count }
