// Package database owns the single live connection handle used by the
// wrapper: it creates the session, selects the target database, and
// hands the handle out for the object's lifetime. There is no pooling
// and no reconnection; a handle that goes bad stays bad until the
// caller builds a new one.
package database

import (
	"fmt"

	"github.com/lucasvillarinho/querypack/database/drivers"
)

type database struct {
	engine drivers.Driver
	name   string
}

type Database interface {
	GetEngine() drivers.Driver
	Name() string
	Ping() error
	Close() error
}

// NewDatabase establishes one session with the given driver and selects
// the target database. Both steps are fatal on failure: the session
// error is returned as a *ConnectionError and the selection error as a
// *DatabaseSelectionError, and no usable Database is returned. No retry
// is attempted.
//
// Numeric values in results are kept native (int64/float64 rather than
// stringified) — prepared statements use the drivers' binary protocols
// and the query package coerces text-protocol cells — which the
// executor relies on for correct type round-tripping.
//
// Parameters:
//   - driver: the database driver (DriverMySQL, DriverMattn, DriverModernc)
//   - host: server address, or directory path for the SQLite drivers
//   - username: session user (ignored by the SQLite drivers)
//   - password: session password (ignored by the SQLite drivers)
//   - name: the database to select
//
// Returns:
//   - Database: the database instance
//   - error: an error if the operation failed
func NewDatabase(driver Driver, host, username, password, name string) (Database, error) {
	engine, err := NewEngine(driver, host, username, password)
	if err != nil {
		return nil, &ConnectionError{Host: host, Err: err}
	}

	if err := engine.SelectDatabase(name); err != nil {
		_ = engine.Close()
		return nil, &DatabaseSelectionError{Name: name, Err: err}
	}

	return &database{
		engine: engine,
		name:   name,
	}, nil
}

// GetEngine returns the connection handle.
func (db *database) GetEngine() drivers.Driver {
	return db.engine
}

// Name returns the selected database name.
func (db *database) Name() string {
	return db.name
}

// Ping verifies that the session is still alive.
func (db *database) Ping() error {
	if err := db.engine.Ping(); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	return nil
}

// Close closes the session.
func (db *database) Close() error {
	return db.engine.Close()
}
