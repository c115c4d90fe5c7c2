package reservation

import (
	"context"
	"database/sql"
)

// DBExecutor is the database dependency of the repository. *sql.DB satisfies
// it.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
