package query

import "github.com/rs/zerolog"

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for per-statement debug and error
// events. The default is a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// runConfig holds the behavioral flags of one Run call.
type runConfig struct {
	message      string
	driverError  bool
	fetchResult  bool
	autoBrackets bool
}

// RunOption adjusts the behavior of a single Run call.
type RunOption func(*runConfig)

// WithMessage sets the caller-supplied text that prefixes the stored
// error message when the call fails.
func WithMessage(msg string) RunOption {
	return func(cfg *runConfig) {
		cfg.message = msg
	}
}

// WithoutDriverError stores the caller-supplied message alone on
// failure, without the driver's native diagnostic text appended. Use
// it when schema or query details must not leak to the reader of the
// error. The native error stays reachable through errors.Unwrap.
func WithoutDriverError() RunOption {
	return func(cfg *runConfig) {
		cfg.driverError = false
	}
}

// WithoutResult skips the fetching stage entirely and leaves the
// result set empty. The affected-row count is taken from the driver's
// execute result instead of the fetched row count.
func WithoutResult() RunOption {
	return func(cfg *runConfig) {
		cfg.fetchResult = false
	}
}

// WithAutoBrackets appends a placeholder tuple "(?,...,?)" sized to the
// variable list to the SQL template before preparing it. Requires at
// least one bind variable.
func WithAutoBrackets() RunOption {
	return func(cfg *runConfig) {
		cfg.autoBrackets = true
	}
}
