// FILE: repo_payment.go
// PURPOSE: Repository for the payment table. Payments are leaves of
// the foreign-key chain: they reference one booking and nothing
// references them.
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

// PaymentRepo provides CRUD and bulk operations for payments.
type PaymentRepo struct {
	sess *Session
	log  zerolog.Logger
	gen  *generator.PaymentGenerator
}

// NewPaymentRepo creates a payment repository bound to one session.
func NewPaymentRepo(sess *Session, log zerolog.Logger, rng *utils.Random) *PaymentRepo {
	return &PaymentRepo{
		sess: sess,
		log:  log.With().Str("repo", "payment").Logger(),
		gen:  generator.NewPaymentGenerator(rng),
	}
}

// Add persists a new payment after verifying its booking exists and
// the amount is non-negative.
func (r *PaymentRepo) Add(ctx context.Context, p *models.Payment) error {
	const op = "payment.add"

	if p.Amount().IsNegative() {
		err := newError(KindIntegrity, op, fmt.Errorf("negative amount %s", p.Amount()))
		r.log.Error().Str("op", op).Int64("payment_id", p.PaymentID).Err(err).Msg("add rejected")
		return err
	}

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "booking", "booking_id", p.BookingID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO payment (payment_id, booking_id, amount, payment_date, payment_status)
			VALUES (?, ?, ?, ?, ?)`,
			p.PaymentID, p.BookingID, p.Amount().String(), dateTime(p.PaymentDate), p.Paid,
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("payment_id", p.PaymentID).Err(err).Msg("add failed")
		return err
	}
	return nil
}

// GetAll returns every payment row as a raw tuple in engine order.
func (r *PaymentRepo) GetAll(ctx context.Context) ([][]any, error) {
	const op = "payment.get_all"

	rows, err := r.sess.Query(ctx, `SELECT * FROM payment`)
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

// Update overwrites the mutable fields of the payment with the given
// id, re-validating the booking reference. Returns false without
// error when the payment does not exist.
func (r *PaymentRepo) Update(ctx context.Context, paymentID int64, p *models.Payment) (bool, error) {
	const op = "payment.update"

	if p.Amount().IsNegative() {
		err := newError(KindIntegrity, op, fmt.Errorf("negative amount %s", p.Amount()))
		r.log.Error().Str("op", op).Int64("payment_id", paymentID).Err(err).Msg("update rejected")
		return false, err
	}

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "booking", "booking_id", p.BookingID); err != nil {
			return err
		}

		exists, err := rowExistsTx(ctx, tx, "payment", "payment_id", paymentID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		_, err = tx.ExecContext(ctx, `
			UPDATE payment SET booking_id = ?, amount = ?, payment_date = ?, payment_status = ?
			WHERE payment_id = ?`,
			p.BookingID, p.Amount().String(), dateTime(p.PaymentDate), p.Paid, paymentID,
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("payment_id", paymentID).Err(err).Msg("update failed")
		return false, err
	}
	return found, nil
}

// Delete removes the payment with the given id. Returns false without
// error when the payment does not exist.
func (r *PaymentRepo) Delete(ctx context.Context, paymentID int64) (bool, error) {
	const op = "payment.delete"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExistsTx(ctx, tx, "payment", "payment_id", paymentID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		if _, err := tx.ExecContext(ctx, `DELETE FROM payment WHERE payment_id = ?`, paymentID); err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("payment_id", paymentID).Err(err).Msg("delete failed")
		return false, err
	}
	return found, nil
}

// Exists reports whether a payment with the given id is stored.
func (r *PaymentRepo) Exists(ctx context.Context, paymentID int64) bool {
	return probeExists(ctx, r.sess, r.log, "payment.exists", "payment", "payment_id", paymentID)
}

// ResetIDSequence restarts the payment id sequence at
// max(payment_id)+1 and returns the next id it will hand out.
func (r *PaymentRepo) ResetIDSequence(ctx context.Context) (int64, error) {
	const op = "payment.reset_sequence"

	next, err := resetSequence(ctx, r.sess, paymentSequence)
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return 0, err
	}
	return next, nil
}

// GenerateRandomBatch inserts n synthetic payments whose booking
// references are drawn from the live booking id set. Fails with an
// integrity error while the booking table is empty.
func (r *PaymentRepo) GenerateRandomBatch(ctx context.Context, n int) error {
	const op = "payment.generate"

	if n <= 0 {
		return nil
	}

	if _, err := resetSequence(ctx, r.sess, paymentSequence); err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return err
	}

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		bookingIDs, err := requireParentIDs(ctx, tx, op, "booking", "booking_id")
		if err != nil {
			return err
		}

		payments := r.gen.GenerateN(n, bookingIDs)
		for start := 0; start < len(payments); start += batchInsertSize {
			chunk := payments[start:min(start+batchInsertSize, len(payments))]

			stmt := `INSERT INTO payment (payment_id, booking_id, amount, payment_date, payment_status) VALUES ` +
				batchValues(paymentSequence.nextvalExpr(), 4, len(chunk))

			args := make([]any, 0, len(chunk)*4)
			for i := range chunk {
				p := &chunk[i]
				args = append(args, p.BookingID, p.Amount().String(), dateTime(p.PaymentDate), p.Paid)
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

// Truncate removes every payment row.
func (r *PaymentRepo) Truncate(ctx context.Context) error {
	const op = "payment.truncate"

	if _, err := r.sess.Exec(ctx, `DELETE FROM payment`); err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("truncate failed")
		return err
	}
	return nil
}
