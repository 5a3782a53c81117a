package helpers

import "strings"

// NormalizeQuery flattens a multi-line SQL template into one trimmed
// line, for log output.
func NormalizeQuery(query string) string {
	lines := strings.Split(query, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.TrimSpace(strings.Join(lines, " "))
}
