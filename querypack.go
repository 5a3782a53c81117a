// Package querypack is a thin convenience layer over a relational
// database client: one connection, parameterized statements with typed
// bind variables, and normalized results.
package querypack

import (
	"github.com/lucasvillarinho/querypack/config"
	"github.com/lucasvillarinho/querypack/database"
	"github.com/lucasvillarinho/querypack/query"
)

// New establishes a session with the given driver, selects the target
// database, and returns a runner on that connection. Construction
// failures are hard: a *database.ConnectionError or
// *database.DatabaseSelectionError means no usable runner exists.
func New(driver database.Driver, host, username, password, name string, opts ...query.Option) (*query.Runner, error) {
	db, err := database.NewDatabase(driver, host, username, password, name)
	if err != nil {
		return nil, err
	}

	return query.NewRunner(db, opts...), nil
}

// NewFromConfig is New with settings taken from a loaded config.
func NewFromConfig(cfg *config.Config, opts ...query.Option) (*query.Runner, error) {
	return New(database.Driver(cfg.Driver), cfg.Host, cfg.Username, cfg.Password, cfg.Database, opts...)
}
