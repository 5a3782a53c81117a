package drivers

import (
	"database/sql"
	"fmt"

	// Import the sqlite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"

	"github.com/lucasvillarinho/querypack/internal/helpers"
)

type driverModernc struct {
	BaseDriver
	path string
}

// NewModerncDriver creates a SQLite driver backed by
// "modernc.org/sqlite" (pure Go, no cgo). The host is a directory
// path; username and password are ignored.
func NewModerncDriver(host, _, _ string) (Driver, error) {
	return &driverModernc{path: host}, nil
}

// SelectDatabase opens the named database file under the driver's path.
func (d *driverModernc) SelectDatabase(name string) error {
	dsn, err := helpers.CreateDSN(d.path, name)
	if err != nil {
		return fmt.Errorf("creating DSN: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	d.DB = db

	return nil
}
