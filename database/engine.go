package database

import (
	"fmt"

	"github.com/lucasvillarinho/querypack/database/drivers"
)

type Driver string

const (
	// DriverMySQL "github.com/go-sql-driver/mysql".
	DriverMySQL Driver = "mysql"
	// DriverMattn "github.com/mattn/go-sqlite3".
	DriverMattn Driver = "mattn"
	// DriverModernc "modernc.org/sqlite".
	DriverModernc Driver = "modernc"
)

var supportedDrivers = map[Driver]func(host, username, password string) (drivers.Driver, error){
	DriverMySQL:   drivers.NewMySQLDriver,
	DriverMattn:   drivers.NewMattnDriver,
	DriverModernc: drivers.NewModerncDriver,
}

// NewEngine creates a connection handle using the given driver.
func NewEngine(dt Driver, host, username, password string) (drivers.Driver, error) {
	createDriverFunc, exists := supportedDrivers[dt]
	if !exists {
		return nil, fmt.Errorf("unsupported driver type: %s", dt)
	}

	engine, err := createDriverFunc(host, username, password)
	if err != nil {
		return nil, fmt.Errorf("error creating driver: %w", err)
	}

	return engine, nil
}
