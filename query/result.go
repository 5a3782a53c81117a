package query

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// normalizeRows walks the cursor to completion and materializes every
// row into a column-name-keyed mapping, in cursor order. Column
// metadata is read once per statement. Text-protocol []byte cells are
// coerced to native int64/float64/string from the column type, so the
// caller sees the same shapes on the raw and prepared paths.
func normalizeRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading column names: %w", err)
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("reading column types: %w", err)
	}

	var result []Row

	for rows.Next() {
		cells := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range cells {
			ptrs[i] = &cells[i]
		}

		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(Row, len(columns))
		for i, name := range columns {
			row[name] = coerceCell(cells[i], types[i])
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("walking rows: %w", err)
	}

	return result, nil
}

// coerceCell converts a raw []byte cell into the native type named by
// the column metadata. Non-byte cells are already native and pass
// through untouched; binary columns stay []byte.
func coerceCell(cell interface{}, ct *sql.ColumnType) interface{} {
	raw, ok := cell.([]byte)
	if !ok {
		return cell
	}

	name := strings.ToUpper(ct.DatabaseTypeName())
	switch {
	case isIntegerType(name):
		if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
			return n
		}
	case isFloatType(name):
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return f
		}
	case strings.Contains(name, "BLOB") || strings.Contains(name, "BINARY"):
		return raw
	}

	return string(raw)
}

func isIntegerType(name string) bool {
	switch name {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "INTEGER", "BIGINT", "YEAR":
		return true
	}
	return false
}

func isFloatType(name string) bool {
	switch name {
	case "FLOAT", "DOUBLE", "DECIMAL", "NUMERIC", "REAL":
		return true
	}
	return false
}
