package store

import (
	"context"
	"database/sql"
)

// DBTX is the common interface between *sql.DB and *sql.Tx.
// Store implementations accept it so they can run against either a pooled
// connection or an explicit transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
