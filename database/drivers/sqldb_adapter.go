package drivers

import (
	"context"
	"database/sql"
)

// SQLDBAdapter wraps an existing *sql.DB as a Driver. Database
// selection is a no-op: the handle is assumed to already point at the
// right database. Useful for tests and for callers that manage their
// own connection.
type SQLDBAdapter struct {
	DB *sql.DB
}

func (a *SQLDBAdapter) SelectDatabase(_ string) error {
	return nil
}

func (a *SQLDBAdapter) Prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	return a.DB.PrepareContext(ctx, query)
}

func (a *SQLDBAdapter) Execute(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return a.DB.ExecContext(ctx, query, args...)
}

func (a *SQLDBAdapter) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return a.DB.QueryContext(ctx, query, args...)
}

func (a *SQLDBAdapter) Ping() error {
	return a.DB.Ping()
}

func (a *SQLDBAdapter) Close() error {
	return a.DB.Close()
}
