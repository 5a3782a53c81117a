// Package audit records failed statements into a table in the same
// database, so query failures survive process restarts. It writes
// through the connection handle directly and never touches the
// runner's last-call state.
package audit

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lucasvillarinho/querypack/database"
	"github.com/lucasvillarinho/querypack/database/drivers"
	"github.com/lucasvillarinho/querypack/internal/helpers"
)

const createTableSQL = `
    CREATE TABLE IF NOT EXISTS querypack_log (
        query TEXT,
        error TEXT,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );`

const insertSQL = `INSERT INTO querypack_log (query, error) VALUES (?, ?)`

type Recorder interface {
	Fail(ctx context.Context, query string, failure error)
}

type recorder struct {
	engine drivers.Driver
	logger zerolog.Logger
}

// NewRecorder creates a failure recorder backed by the querypack_log
// table, creating the table if needed.
//
// Parameters:
//   - ctx: the context
//   - db: the database session
//   - logger: destination for the recorder's own failures
//
// Returns:
//   - Recorder: the recorder instance
//   - error: an error if the log table could not be created
func NewRecorder(ctx context.Context, db database.Database, logger zerolog.Logger) (Recorder, error) {
	rc := &recorder{
		engine: db.GetEngine(),
		logger: logger,
	}

	if _, err := rc.engine.Execute(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create log table: %w", err)
	}

	return rc, nil
}

// Fail records one failed statement. Recording errors are logged, not
// returned: auditing must never turn a soft query failure into a hard
// one.
func (rc *recorder) Fail(ctx context.Context, query string, failure error) {
	_, err := rc.engine.Execute(ctx, insertSQL, helpers.NormalizeQuery(query), failure.Error())
	if err != nil {
		rc.logger.Error().Err(err).Msg("recording query failure")
	}
}
