// Package health periodically pings the connection and logs when it
// goes bad. The wrapper never reconnects, so an alert here means the
// owner must build a new session; the query path itself stays
// synchronous and untouched.
package health

import (
	"fmt"
	"time"

	crf "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/lucasvillarinho/querypack/database"
	"github.com/lucasvillarinho/querypack/database/drivers"
)

// Interval represents a cron schedule interval.
type Interval string

const (
	EveryMinute    Interval = "*/1 * * * *"  // Run every minute
	Every5Minutes  Interval = "*/5 * * * *"  // Run every 5 minutes
	Every15Minutes Interval = "*/15 * * * *" // Run every 15 minutes
	EveryHour      Interval = "@hourly"      // Run every hour
)

type Checker interface {
	Start() error
	Stop()
}

type checker struct {
	engine   drivers.Driver
	cron     *crf.Cron
	interval Interval
	logger   zerolog.Logger
}

// NewChecker creates a connection health checker for the database
// session, scheduled in the given timezone (UTC if nil).
//
// Parameters:
//   - db: the database session
//   - interval: the ping schedule
//   - timezone: the scheduler timezone
//   - logger: destination for ping results
//
// Returns:
//   - Checker: the checker instance
func NewChecker(db database.Database, interval Interval, timezone *time.Location, logger zerolog.Logger) Checker {
	if timezone == nil {
		timezone = time.UTC
	}

	return &checker{
		engine:   db.GetEngine(),
		cron:     crf.New(crf.WithLocation(timezone)),
		interval: interval,
		logger:   logger,
	}
}

// Start schedules the periodic ping and begins execution.
func (c *checker) Start() error {
	_, err := c.cron.AddFunc(string(c.interval), c.check)
	if err != nil {
		return fmt.Errorf("failed to schedule health check: %w", err)
	}

	c.cron.Start()

	return nil
}

// Stop halts the scheduled pings.
func (c *checker) Stop() {
	c.cron.Stop()
}

func (c *checker) check() {
	if err := c.engine.Ping(); err != nil {
		c.logger.Error().Err(err).Msg("connection ping failed")
		return
	}

	c.logger.Debug().Msg("connection ping ok")
}
