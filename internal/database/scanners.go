// FILE: scanners.go
// PURPOSE: Row scanning helpers. GetAll intentionally returns raw
// tuples rather than hydrated entities, matching the read contract of
// the administrative tooling that consumes it: every column as
// returned by the engine, row order engine-determined.
package database

import (
	"database/sql"
	"fmt"
	"time"
)

// scanRawRows drains rows into raw tuples. Byte slices are copied into
// strings because the driver reuses its buffers between Next calls.
func scanRawRows(rows *sql.Rows) ([][]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	var out [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	return out, rows.Err()
}

// dateOnly truncates a timestamp to its calendar date for DATE columns.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// dateTime formats a timestamp for DATETIME columns.
func dateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
