package drivers

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

type driverMySQL struct {
	BaseDriver
}

// NewMySQLDriver opens a MySQL connection to the given host using
// "github.com/go-sql-driver/mysql". The connection is verified with a
// ping before it is returned, so a bad host or bad credentials fail
// here rather than on the first statement.
//
// Prepared statements run over the binary protocol, which already
// yields native integer and float values; text-protocol results are
// normalized by the query package.
func NewMySQLDriver(host, username, password string) (Driver, error) {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = host
	cfg.User = username
	cfg.Passwd = password

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &driverMySQL{
		BaseDriver: BaseDriver{
			DB: db,
		},
	}, nil
}

// SelectDatabase switches the session to the named database.
func (d *driverMySQL) SelectDatabase(name string) error {
	_, err := d.DB.Exec(fmt.Sprintf("USE `%s`", name))
	if err != nil {
		return fmt.Errorf("use database %q: %w", name, err)
	}

	return nil
}
