// FILE: sequence.go
// PURPOSE: Generic id allocator shared by all four repositories.
// Each entity advances its primary key through a MariaDB sequence
// (`NEXTVAL(<seq>)`, available since 10.3). Before any bulk
// generation pass the sequence is restarted at max(id)+1 so generated
// ids never collide with manually inserted ones.
package database

import (
	"context"
	"fmt"
)

// sequenceSpec names the table, primary key column and sequence for
// one entity. All instances are compile-time constants, which is what
// makes the fmt.Sprintf DDL below safe.
type sequenceSpec struct {
	table    string
	idColumn string
	seqName  string
}

var (
	userSequence     = sequenceSpec{table: "users", idColumn: "user_id", seqName: "user_id_seq"}
	facilitySequence = sequenceSpec{table: "facility", idColumn: "facility_id", seqName: "facility_id_seq"}
	bookingSequence  = sequenceSpec{table: "booking", idColumn: "booking_id", seqName: "booking_id_seq"}
	paymentSequence  = sequenceSpec{table: "payment", idColumn: "payment_id", seqName: "payment_id_seq"}
)

// nextValueQuery returns the statement that computes the next id the
// sequence must start at: max(existing id)+1, or 1 for an empty table.
func (s sequenceSpec) nextValueQuery() string {
	return fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) + 1 FROM %s", s.idColumn, s.table)
}

// restartStatement returns the DDL that (re)creates the sequence
// starting at next. CREATE OR REPLACE makes the operation idempotent:
// restarting twice with no intervening inserts yields the same value.
func (s sequenceSpec) restartStatement(next int64) string {
	return fmt.Sprintf("CREATE OR REPLACE SEQUENCE %s START WITH %d", s.seqName, next)
}

// nextvalExpr is the SQL expression that draws the next id during
// bulk inserts.
func (s sequenceSpec) nextvalExpr() string {
	return fmt.Sprintf("NEXTVAL(%s)", s.seqName)
}

// resetSequence recomputes max(id)+1 and restarts the sequence
// through the session's administrative path, returning the next id
// the sequence will hand out. Sequence DDL implicitly commits in
// MariaDB, so the restart cannot ride inside a data transaction;
// collision-freedom during bulk generation instead comes from NEXTVAL
// itself, which never hands out the same value twice regardless of
// how many generators run concurrently.
func resetSequence(ctx context.Context, sess *Session, spec sequenceSpec) (int64, error) {
	var next int64
	if err := sess.QueryRow(ctx, spec.nextValueQuery()).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to compute next %s value: %w", spec.seqName, err)
	}

	if _, err := sess.Exec(ctx, spec.restartStatement(next)); err != nil {
		return 0, fmt.Errorf("failed to restart sequence %s: %w", spec.seqName, err)
	}

	return next, nil
}
