// FILE: repo_facility.go
// PURPOSE: Repository for the facility table. Facilities belong to a
// venue managed outside this system; the venue reference is validated
// against the venue table before any write.
package database

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/aklymenko/booking-store/internal/generator"
	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

// FacilityRepo provides CRUD and bulk operations for facilities.
type FacilityRepo struct {
	sess *Session
	log  zerolog.Logger
	gen  *generator.FacilityGenerator
}

// NewFacilityRepo creates a facility repository bound to one session.
func NewFacilityRepo(sess *Session, log zerolog.Logger, rng *utils.Random) *FacilityRepo {
	return &FacilityRepo{
		sess: sess,
		log:  log.With().Str("repo", "facility").Logger(),
		gen:  generator.NewFacilityGenerator(rng),
	}
}

// Add persists a new facility after verifying its venue exists.
func (r *FacilityRepo) Add(ctx context.Context, f *models.Facility) error {
	const op = "facility.add"

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "venue", "venue_id", f.VenueID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO facility (facility_id, facility_name, facility_type, venue_id)
			VALUES (?, ?, ?, ?)`,
			f.FacilityID, f.FacilityName, string(f.FacilityType), f.VenueID,
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("facility_id", f.FacilityID).Err(err).Msg("add failed")
		return err
	}
	return nil
}

// GetAll returns every facility row as a raw tuple in engine order.
func (r *FacilityRepo) GetAll(ctx context.Context) ([][]any, error) {
	const op = "facility.get_all"

	rows, err := r.sess.Query(ctx, `SELECT * FROM facility`)
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

// Update overwrites the mutable fields of the facility with the given
// id, re-validating the venue reference. Returns false without error
// when the facility does not exist.
func (r *FacilityRepo) Update(ctx context.Context, facilityID int64, f *models.Facility) (bool, error) {
	const op = "facility.update"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		if err := requireParentTx(ctx, tx, op, "venue", "venue_id", f.VenueID); err != nil {
			return err
		}

		exists, err := rowExistsTx(ctx, tx, "facility", "facility_id", facilityID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		_, err = tx.ExecContext(ctx, `
			UPDATE facility SET facility_name = ?, facility_type = ?, venue_id = ?
			WHERE facility_id = ?`,
			f.FacilityName, string(f.FacilityType), f.VenueID, facilityID,
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("facility_id", facilityID).Err(err).Msg("update failed")
		return false, err
	}
	return found, nil
}

// Delete removes the facility with the given id. Returns false
// without error when absent, and an integrity error while bookings
// still reference the facility.
func (r *FacilityRepo) Delete(ctx context.Context, facilityID int64) (bool, error) {
	const op = "facility.delete"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExistsTx(ctx, tx, "facility", "facility_id", facilityID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		if err := requireNoChildrenTx(ctx, tx, op, "booking", "facility_id", facilityID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM facility WHERE facility_id = ?`, facilityID); err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("facility_id", facilityID).Err(err).Msg("delete failed")
		return false, err
	}
	return found, nil
}

// Exists reports whether a facility with the given id is stored.
func (r *FacilityRepo) Exists(ctx context.Context, facilityID int64) bool {
	return probeExists(ctx, r.sess, r.log, "facility.exists", "facility", "facility_id", facilityID)
}

// ResetIDSequence restarts the facility id sequence at
// max(facility_id)+1 and returns the next id it will hand out.
func (r *FacilityRepo) ResetIDSequence(ctx context.Context) (int64, error) {
	const op = "facility.reset_sequence"

	next, err := resetSequence(ctx, r.sess, facilitySequence)
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return 0, err
	}
	return next, nil
}

// GenerateRandomBatch inserts n synthetic facilities whose venue
// references are drawn from the live venue id set. Fails with an
// integrity error while the venue table is empty.
func (r *FacilityRepo) GenerateRandomBatch(ctx context.Context, n int) error {
	const op = "facility.generate"

	if n <= 0 {
		return nil
	}

	if _, err := resetSequence(ctx, r.sess, facilitySequence); err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return err
	}

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		venueIDs, err := requireParentIDs(ctx, tx, op, "venue", "venue_id")
		if err != nil {
			return err
		}

		facilities := r.gen.GenerateN(n, venueIDs)
		for start := 0; start < len(facilities); start += batchInsertSize {
			chunk := facilities[start:min(start+batchInsertSize, len(facilities))]

			stmt := `INSERT INTO facility (facility_id, facility_name, facility_type, venue_id) VALUES ` +
				batchValues(facilitySequence.nextvalExpr(), 3, len(chunk))

			args := make([]any, 0, len(chunk)*3)
			for i := range chunk {
				f := &chunk[i]
				args = append(args, f.FacilityName, string(f.FacilityType), f.VenueID)
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

// Truncate removes every facility row.
func (r *FacilityRepo) Truncate(ctx context.Context) error {
	const op = "facility.truncate"

	if _, err := r.sess.Exec(ctx, `DELETE FROM facility`); err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("truncate failed")
		return err
	}
	return nil
}
