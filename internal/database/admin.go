// FILE: admin.go
// PURPOSE: Administrative helpers used by the CLI: venue stubs for
// seeding (the venue table is owned by an external system, but
// facilities cannot be generated into a void) and row counting for
// the stats view.
package database

import (
	"context"
	"fmt"
)

// Tables lists the entity tables in foreign-key order: parents first.
// Truncation walks it in reverse.
var Tables = []string{"users", "facility", "booking", "payment"}

// EnsureVenues guarantees venue rows with ids 1..n exist so facility
// generation has parents to reference. Existing rows are left alone.
func EnsureVenues(ctx context.Context, sess *Session, n int) error {
	const op = "venue.ensure"

	for id := 1; id <= n; id++ {
		_, err := sess.Exec(ctx,
			`INSERT IGNORE INTO venue (venue_id, venue_name) VALUES (?, ?)`,
			id, fmt.Sprintf("Venue %d", id),
		)
		if err != nil {
			return classify(op, err)
		}
	}
	return nil
}

// CountRows returns the row count of one entity table. The table name
// must come from Tables.
func CountRows(ctx context.Context, sess *Session, table string) (int64, error) {
	const op = "admin.count"

	valid := false
	for _, t := range Tables {
		if t == table {
			valid = true
			break
		}
	}
	if !valid {
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := sess.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, classify(op, err)
	}
	return count, nil
}
