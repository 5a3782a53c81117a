package drivers

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNoDatabaseSelected is returned by statement operations invoked
// before SelectDatabase has succeeded.
var ErrNoDatabaseSelected = errors.New("no database selected")

// Driver is the narrow surface the wrapper consumes from a database
// client. One Driver owns exactly one live connection handle; it is
// never reconnected internally.
type Driver interface {
	// SelectDatabase makes the named database the target of all
	// subsequent statements on this connection.
	SelectDatabase(name string) error

	Prepare(ctx context.Context, query string) (*sql.Stmt, error)
	Execute(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	Ping() error
	Close() error
}

// BaseDriver is a base implementation that satisfies the statement side
// of the Driver interface. Concrete drivers embed it and provide their
// own connection and database-selection logic.
type BaseDriver struct {
	DB *sql.DB
}

// Prepare compiles a SQL template into a prepared statement.
func (d *BaseDriver) Prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if d.DB == nil {
		return nil, ErrNoDatabaseSelected
	}
	return d.DB.PrepareContext(ctx, query)
}

// Execute executes a command that does not return rows, such as INSERT, UPDATE, or DELETE.
func (d *BaseDriver) Execute(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if d.DB == nil {
		return nil, ErrNoDatabaseSelected
	}
	return d.DB.ExecContext(ctx, query, args...)
}

// Query executes a command that returns rows, such as SELECT.
func (d *BaseDriver) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	if d.DB == nil {
		return nil, ErrNoDatabaseSelected
	}
	return d.DB.QueryContext(ctx, query, args...)
}

// Ping verifies that the connection is still alive.
func (d *BaseDriver) Ping() error {
	if d.DB == nil {
		return ErrNoDatabaseSelected
	}
	return d.DB.Ping()
}

// Close closes the database connection.
func (d *BaseDriver) Close() error {
	if d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
