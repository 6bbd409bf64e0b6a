// FILE: repo_booking.go
// PURPOSE: Repository for the booking table. Bookings reference one
// user and one facility; deleting a booking cascades to its payments
// within the same transaction.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aklymenko/booking-store/internal/generator"
	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

func errInvalidStatus(s models.BookingStatus) error {
	return fmt.Errorf("unknown booking status %q", string(s))
}

// BookingRepo provides CRUD and bulk operations for bookings.
type BookingRepo struct {
	sess *Session
	log  zerolog.Logger
	gen  *generator.BookingGenerator
}

// NewBookingRepo creates a booking repository bound to one session.
func NewBookingRepo(sess *Session, log zerolog.Logger, rng *utils.Random) *BookingRepo {
	return &BookingRepo{
		sess: sess,
		log:  log.With().Str("repo", "booking").Logger(),
		gen:  generator.NewBookingGenerator(rng),
	}
}

// Add persists a new booking after verifying both parent rows exist
// and the status is one of the known values.
func (r *BookingRepo) Add(ctx context.Context, b *models.Booking) error {
	const op = "booking.add"

	if !b.Status.Valid() {
		err := newError(KindIntegrity, op, errInvalidStatus(b.Status))
		r.log.Error().Str("op", op).Int64("booking_id", b.BookingID).Err(err).Msg("add rejected")
		return err
	}

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "users", "user_id", b.UserID); err != nil {
			return err
		}
		if err := requireParentTx(ctx, tx, op, "facility", "facility_id", b.FacilityID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO booking (booking_id, user_id, facility_id, booking_date, start_time, end_time, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			b.BookingID, b.UserID, b.FacilityID, dateOnly(b.BookingDate), b.StartTime, b.EndTime, string(b.Status),
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("booking_id", b.BookingID).Err(err).Msg("add failed")
		return err
	}
	return nil
}

// GetAll returns every booking row as a raw tuple in engine order.
func (r *BookingRepo) GetAll(ctx context.Context) ([][]any, error) {
	const op = "booking.get_all"

	rows, err := r.sess.Query(ctx, `SELECT * FROM booking`)
	if err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("query failed")
		return nil, err
	}
	defer rows.Close()

	tuples, err := scanRawRows(rows)
	if err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("scan failed")
		return nil, err
	}
	return tuples, nil
}

// Update overwrites the mutable fields of the booking with the given
// id, re-validating both parent references. Returns false without
// error when the booking does not exist.
func (r *BookingRepo) Update(ctx context.Context, bookingID int64, b *models.Booking) (bool, error) {
	const op = "booking.update"

	if !b.Status.Valid() {
		err := newError(KindIntegrity, op, errInvalidStatus(b.Status))
		r.log.Error().Str("op", op).Int64("booking_id", bookingID).Err(err).Msg("update rejected")
		return false, err
	}

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "users", "user_id", b.UserID); err != nil {
			return err
		}
		if err := requireParentTx(ctx, tx, op, "facility", "facility_id", b.FacilityID); err != nil {
			return err
		}

		exists, err := rowExistsTx(ctx, tx, "booking", "booking_id", bookingID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		_, err = tx.ExecContext(ctx, `
			UPDATE booking
			SET user_id = ?, facility_id = ?, booking_date = ?, start_time = ?, end_time = ?, status = ?
			WHERE booking_id = ?`,
			b.UserID, b.FacilityID, dateOnly(b.BookingDate), b.StartTime, b.EndTime, string(b.Status), bookingID,
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("booking_id", bookingID).Err(err).Msg("update failed")
		return false, err
	}
	return found, nil
}

// Delete removes the booking with the given id along with its
// payments, in one transaction. Returns false without error when the
// booking does not exist.
func (r *BookingRepo) Delete(ctx context.Context, bookingID int64) (bool, error) {
	const op = "booking.delete"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExistsTx(ctx, tx, "booking", "booking_id", bookingID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		// Cascade: payments depend on the booking.
		if _, err := tx.ExecContext(ctx, `DELETE FROM payment WHERE booking_id = ?`, bookingID); err != nil {
			return classify(op, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM booking WHERE booking_id = ?`, bookingID); err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("booking_id", bookingID).Err(err).Msg("delete failed")
		return false, err
	}
	return found, nil
}

// Exists reports whether a booking with the given id is stored.
func (r *BookingRepo) Exists(ctx context.Context, bookingID int64) bool {
	return probeExists(ctx, r.sess, r.log, "booking.exists", "booking", "booking_id", bookingID)
}

// ResetIDSequence restarts the booking id sequence at
// max(booking_id)+1 and returns the next id it will hand out.
func (r *BookingRepo) ResetIDSequence(ctx context.Context) (int64, error) {
	const op = "booking.reset_sequence"

	next, err := resetSequence(ctx, r.sess, bookingSequence)
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return 0, err
	}
	return next, nil
}

// GenerateRandomBatch inserts n synthetic bookings whose user and
// facility references are drawn from the live parent id sets. Fails
// with an integrity error while either parent table is empty.
func (r *BookingRepo) GenerateRandomBatch(ctx context.Context, n int) error {
	const op = "booking.generate"

	if n <= 0 {
		return nil
	}

	if _, err := resetSequence(ctx, r.sess, bookingSequence); err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return err
	}

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		userIDs, err := requireParentIDs(ctx, tx, op, "users", "user_id")
		if err != nil {
			return err
		}
		facilityIDs, err := requireParentIDs(ctx, tx, op, "facility", "facility_id")
		if err != nil {
			return err
		}

		bookings := r.gen.GenerateN(n, userIDs, facilityIDs)
		for start := 0; start < len(bookings); start += batchInsertSize {
			chunk := bookings[start:min(start+batchInsertSize, len(bookings))]

			stmt := `INSERT INTO booking (booking_id, user_id, facility_id, booking_date, start_time, end_time, status) VALUES ` +
				batchValues(bookingSequence.nextvalExpr(), 6, len(chunk))

			args := make([]any, 0, len(chunk)*6)
			for i := range chunk {
				b := &chunk[i]
				args = append(args, b.UserID, b.FacilityID, dateOnly(b.BookingDate), b.StartTime, b.EndTime, string(b.Status))
			}

			if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
				return classify(op, err)
			}
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int("count", n).Err(err).Msg("batch generation failed")
		return err
	}
	return nil
}

// Truncate removes every booking row. The payment foreign key is
// declared ON DELETE CASCADE, so dependent payments go with them.
func (r *BookingRepo) Truncate(ctx context.Context) error {
	const op = "booking.truncate"

	if _, err := r.sess.Exec(ctx, `DELETE FROM booking`); err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("truncate failed")
		return err
	}
	return nil
}
