package drivers

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lucasvillarinho/querypack/internal/helpers"
)

type driverMattn struct {
	BaseDriver
	path string
}

// NewMattnDriver creates a SQLite driver backed by
// "github.com/mattn/go-sqlite3". The host is a directory path; SQLite
// has no credentials, so username and password are ignored. The
// database file itself is opened by SelectDatabase.
func NewMattnDriver(host, _, _ string) (Driver, error) {
	return &driverMattn{path: host}, nil
}

// SelectDatabase opens the named database file under the driver's path.
func (d *driverMattn) SelectDatabase(name string) error {
	dsn, err := helpers.CreateDSN(d.path, name)
	if err != nil {
		return fmt.Errorf("creating DSN: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
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
