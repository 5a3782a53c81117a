package query

import sq "github.com/Masterminds/squirrel"

// appendPlaceholders appends a parenthesized placeholder tuple sized to
// count, e.g. 3 -> "(?,?,?)". Purely textual; the template itself is
// not validated. Callers must ensure count > 0.
func appendPlaceholders(template string, count int) string {
	return template + "(" + sq.Placeholders(count) + ")"
}
