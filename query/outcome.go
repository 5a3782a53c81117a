package query

// Row is one result row: a mapping from column name to scalar value.
type Row map[string]interface{}

// Outcome is the full observable result of one Run call. Exactly one
// of the two shapes holds: Err == nil with Rows/Affected valid, or
// Err != nil with Rows empty and Affected reflecting whatever was
// captured before the failure (0 if it failed before executing).
type Outcome struct {
	// Rows is the materialized result set, in cursor order. Nil when
	// results were not requested or the call failed.
	Rows []Row

	// Affected is the affected-row count as reported by the driver for
	// write statements, or the number of fetched rows when results were
	// requested. 0 or -1 mean "no rows affected / not applicable"; the
	// exact semantics are driver-dependent.
	Affected int64

	// Err is nil on success. Its Error() text follows the caller's
	// message and driver-error flag; the native driver error stays
	// reachable through errors.Unwrap.
	Err error
}

// HasError reports whether the call failed.
func (o Outcome) HasError() bool {
	return o.Err != nil
}
