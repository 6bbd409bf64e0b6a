// FILE: repos.go
// PURPOSE: Repository bundle and the helpers shared by all four
// entity repositories: parent-row pre-checks, existence probes and
// batch insert chunking.
//
// Every repository owns its own Session, so a bundle holds four
// pinned connections. Concurrent callers need their own bundle.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aklymenko/booking-store/internal/config"
	"github.com/aklymenko/booking-store/internal/utils"
)

// batchInsertSize caps rows per INSERT during bulk generation.
const batchInsertSize = config.BatchInsertSize

// Repositories groups one repository per entity, each with its own
// session checked out of the pool.
type Repositories struct {
	Users      *UserRepo
	Facilities *FacilityRepo
	Bookings   *BookingRepo
	Payments   *PaymentRepo
}

// NewRepositories checks out four sessions and wires up the entity
// repositories. The RNG is forked per repository so synthetic batches
// stay reproducible per entity.
func NewRepositories(ctx context.Context, pool *Pool, log zerolog.Logger, rng *utils.Random) (*Repositories, error) {
	sessions := make([]*Session, 0, 4)
	for i := 0; i < 4; i++ {
		sess, err := pool.Session(ctx)
		if err != nil {
			for _, s := range sessions {
				s.Close()
			}
			return nil, fmt.Errorf("failed to open repository session: %w", err)
		}
		sessions = append(sessions, sess)
	}

	return &Repositories{
		Users:      NewUserRepo(sessions[0], log, rng.Fork()),
		Facilities: NewFacilityRepo(sessions[1], log, rng.Fork()),
		Bookings:   NewBookingRepo(sessions[2], log, rng.Fork()),
		Payments:   NewPaymentRepo(sessions[3], log, rng.Fork()),
	}, nil
}

// Close releases all repository sessions.
func (r *Repositories) Close() error {
	var firstErr error
	for _, sess := range []*Session{
		r.Users.sess, r.Facilities.sess, r.Bookings.sess, r.Payments.sess,
	} {
		if err := sess.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// requireParentTx verifies that the referenced parent row exists,
// querying the PARENT table by its primary key. This is the intended
// foreign-key pre-check; relying on engine constraint errors alone
// produces opaque diagnostics.
func requireParentTx(ctx context.Context, tx *sql.Tx, op, table, idColumn string, id int64) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", table, idColumn)

	var one int
	err := tx.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return newError(KindIntegrity, op, fmt.Errorf("%s %d does not exist", table, id))
	}
	if err != nil {
		return classify(op, err)
	}
	return nil
}

// requireNoChildrenTx rejects a delete while child rows still
// reference the target. The User and Facility relationships restrict
// rather than cascade; only Booking→Payment cascades.
func requireNoChildrenTx(ctx context.Context, tx *sql.Tx, op, childTable, fkColumn string, id int64) error {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", childTable, fkColumn)

	var one int
	err := tx.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return classify(op, err)
	}
	return newError(KindIntegrity, op,
		fmt.Errorf("rows in %s still reference %s %d", childTable, fkColumn, id))
}

// joinAssignments joins SET clause fragments; empty input yields "".
func joinAssignments(set []string) string {
	return strings.Join(set, ", ")
}

// rowExistsTx reports whether a row with the given primary key exists
// inside the current transaction.
func rowExistsTx(ctx context.Context, tx *sql.Tx, table, idColumn string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", table, idColumn)

	var one int
	err := tx.QueryRowContext(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// probeExists is the session-level existence check behind the Exists
// operations: tolerant of backend errors, logging them instead of
// propagating.
func probeExists(ctx context.Context, sess *Session, log zerolog.Logger, op, table, idColumn string, id int64) bool {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = ? LIMIT 1", table, idColumn)

	var one int
	err := sess.QueryRow(ctx, query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		log.Error().Str("op", op).Str("table", table).Int64("id", id).Err(err).
			Msg("existence probe failed")
		return false
	}
	return true
}

// collectIDs loads every primary key value currently in a table.
// Used to draw random foreign keys from the live parent id set.
func collectIDs(ctx context.Context, tx *sql.Tx, table, idColumn string) ([]int64, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", idColumn, table)

	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// requireParentIDs wraps collectIDs with the empty-parent guard for
// bulk generation: an empty parent table is an integrity fault, not a
// cryptic engine rejection.
func requireParentIDs(ctx context.Context, tx *sql.Tx, op, table, idColumn string) ([]int64, error) {
	ids, err := collectIDs(ctx, tx, table, idColumn)
	if err != nil {
		return nil, classify(op, err)
	}
	if len(ids) == 0 {
		return nil, newError(KindIntegrity, op,
			fmt.Errorf("cannot generate rows while %s is empty", table))
	}
	return ids, nil
}

// batchValues assembles a multi-row VALUES clause where each row
// draws its id from the sequence and binds the remaining columns.
func batchValues(nextval string, columnsPerRow, rows int) string {
	row := "(" + nextval + strings.Repeat(", ?", columnsPerRow) + ")"
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = row
	}
	return strings.Join(parts, ", ")
}

// ensureClassified guarantees callers see a classified error. WithTx
// can surface begin/commit failures that bypass classify.
func ensureClassified(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return classify(op, err)
}
