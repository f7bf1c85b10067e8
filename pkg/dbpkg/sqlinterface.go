package dbpkg

import (
	"context"
	"database/sql"
)

// SQLInterface is satisfied by both *sql.DB and *sql.Tx, so repositories can
// run inside a test transaction.
type SQLInterface interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}
