// Package query is a thin convenience layer over a live database
// connection: it prepares parameterized SQL templates, binds typed
// variables, executes them, and normalizes rows and errors into a
// small Outcome value.
//
// Each call runs the same linear pipeline: build the statement text,
// derive bind type tags, prepare and execute, then optionally fetch.
// Per-call failures are never panicked; they are recorded into the
// returned Outcome (and its last-call mirror on the Runner), while
// construction failures in the database package are returned hard.
//
// A Runner is not safe for concurrent use: it drives a single
// synchronous connection with no internal locking, so concurrent
// callers must serialize access or use one Runner each.
package query

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/lucasvillarinho/querypack/database"
	"github.com/lucasvillarinho/querypack/database/drivers"
	"github.com/lucasvillarinho/querypack/internal/helpers"
)

// Runner executes parameterized statements on one connection and keeps
// the outcome of the most recent call.
type Runner struct {
	engine drivers.Driver
	logger zerolog.Logger
	last   Outcome
}

// NewRunner creates a Runner on the database's connection handle.
//
// Parameters:
//   - db: the established database session
//   - opts: runner options (e.g. WithLogger)
//
// Returns:
//   - *Runner: the runner instance
func NewRunner(db database.Database, opts ...Option) *Runner {
	r := &Runner{
		engine: db.GetEngine(),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes the SQL template with the given bind variables and
// returns the outcome. The last-call state (HasError, LastError,
// RowsAffected, Rows) is overwritten at the start of every call, so it
// never holds stale values from an earlier call.
//
// With no variables the template is executed directly, skipping the
// preparation step. Defaults: results are fetched, the driver's
// diagnostic text is appended to the stored error message, and no
// placeholder tuple is generated; see the RunOption values.
func (r *Runner) Run(ctx context.Context, template string, vars []Value, opts ...RunOption) Outcome {
	cfg := runConfig{driverError: true, fetchResult: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Reset before any stage runs, so a failure at any point leaves
	// well-defined values.
	r.last = Outcome{}

	start := time.Now()
	out := r.execute(ctx, template, vars, cfg)
	r.last = out

	if out.Err != nil {
		r.logger.Error().
			Err(out.Err).
			Str("query", helpers.NormalizeQuery(template)).
			Msg("query failed")
		return out
	}

	r.logger.Debug().
		Str("query", helpers.NormalizeQuery(template)).
		Int64("affected", out.Affected).
		Dur("elapsed", time.Since(start)).
		Msg("query executed")

	return out
}

func (r *Runner) execute(ctx context.Context, template string, vars []Value, cfg runConfig) Outcome {
	if cfg.autoBrackets {
		if len(vars) == 0 {
			return Outcome{Err: &InvalidSyntaxError{
				Message: cfg.message + "auto brackets require at least one bind variable",
			}}
		}
		template = appendPlaceholders(template, len(vars))
	}

	if len(vars) == 0 {
		return r.executeRaw(ctx, template, cfg)
	}

	stmt, err := r.engine.Prepare(ctx, template)
	if err != nil {
		return Outcome{Err: &InvalidSyntaxError{
			Message: composeMessage(cfg, err),
			Err:     err,
		}}
	}
	defer func() { _ = stmt.Close() }()

	bnd, err := bindValues(vars)
	if err != nil {
		return Outcome{Err: err}
	}

	if cfg.fetchResult {
		rows, err := stmt.QueryContext(ctx, bnd.args...)
		if err != nil {
			return Outcome{Err: &ExecutionError{
				Message: composeMessage(cfg, err),
				Err:     err,
			}}
		}
		defer func() { _ = rows.Close() }()

		return fetch(rows, cfg)
	}

	res, err := stmt.ExecContext(ctx, bnd.args...)
	if err != nil {
		return Outcome{Err: &ExecutionError{
			Message: composeMessage(cfg, err),
			Err:     err,
		}}
	}

	return Outcome{Affected: affectedCount(res)}
}

// executeRaw runs the template directly on the connection, with no
// preparation step at all.
func (r *Runner) executeRaw(ctx context.Context, template string, cfg runConfig) Outcome {
	if cfg.fetchResult {
		rows, err := r.engine.Query(ctx, template)
		if err != nil {
			return Outcome{Err: &ExecutionError{
				Message: composeMessage(cfg, err),
				Err:     err,
			}}
		}
		defer func() { _ = rows.Close() }()

		return fetch(rows, cfg)
	}

	res, err := r.engine.Execute(ctx, template)
	if err != nil {
		return Outcome{Err: &ExecutionError{
			Message: composeMessage(cfg, err),
			Err:     err,
		}}
	}

	return Outcome{Affected: affectedCount(res)}
}

// HasError reports whether the most recent call failed.
func (r *Runner) HasError() bool {
	return r.last.Err != nil
}

// LastError returns the stored error message of the most recent call,
// or "" on success.
func (r *Runner) LastError() string {
	if r.last.Err == nil {
		return ""
	}
	return r.last.Err.Error()
}

// RowsAffected returns the affected-row count of the most recent call.
func (r *Runner) RowsAffected() int64 {
	return r.last.Affected
}

// Rows returns the result set of the most recent call.
func (r *Runner) Rows() []Row {
	return r.last.Rows
}

// Last returns the full outcome of the most recent call.
func (r *Runner) Last() Outcome {
	return r.last
}

// Close closes the underlying connection.
func (r *Runner) Close() error {
	return r.engine.Close()
}

// fetch materializes the cursor and reports the fetched row count as
// the affected count, the way read statements conventionally do.
func fetch(rows *sql.Rows, cfg runConfig) Outcome {
	result, err := normalizeRows(rows)
	if err != nil {
		return Outcome{Err: &ExecutionError{
			Message: composeMessage(cfg, err),
			Err:     err,
		}}
	}

	return Outcome{Rows: result, Affected: int64(len(result))}
}

func affectedCount(res sql.Result) int64 {
	if res == nil {
		return -1
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Not all drivers report an affected count.
		return -1
	}
	return n
}

func composeMessage(cfg runConfig, err error) string {
	if cfg.driverError {
		return cfg.message + err.Error()
	}
	return cfg.message
}
