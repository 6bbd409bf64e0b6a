// FILE: repo_users.go
// PURPOSE: Repository for the users table. Users have no parent
// references; they anchor the booking foreign-key chain.
package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/aklymenko/booking-store/internal/generator"
	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

// UserRepo provides CRUD and bulk operations for users.
type UserRepo struct {
	sess *Session
	log  zerolog.Logger
	gen  *generator.UserGenerator
}

// NewUserRepo creates a user repository bound to one session.
func NewUserRepo(sess *Session, log zerolog.Logger, rng *utils.Random) *UserRepo {
	return &UserRepo{
		sess: sess,
		log:  log.With().Str("repo", "users").Logger(),
		gen:  generator.NewUserGenerator(rng),
	}
}

// Add persists a new user.
func (r *UserRepo) Add(ctx context.Context, u *models.User) error {
	const op = "users.add"

	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (user_id, first_name, last_name, email, phone_number, date_of_registration)
			VALUES (?, ?, ?, ?, ?, ?)`,
			u.UserID, u.FirstName, u.LastName, u.Email, u.PhoneNumber, dateOnly(u.DateOfRegistration),
		)
		if err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("user_id", u.UserID).Err(err).Msg("add failed")
		return err
	}
	return nil
}

// GetAll returns every user row as a raw tuple in engine order.
func (r *UserRepo) GetAll(ctx context.Context) ([][]any, error) {
	const op = "users.get_all"

	rows, err := r.sess.Query(ctx, `SELECT * FROM users`)
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

// UserPatch lists the mutable user fields. Nil fields are left
// untouched.
type UserPatch struct {
	FirstName          *string
	LastName           *string
	Email              *string
	PhoneNumber        *string
	DateOfRegistration *time.Time
}

// assignments builds the SET clause and its arguments.
func (p UserPatch) assignments() (string, []any) {
	var set []string
	var args []any

	if p.FirstName != nil {
		set = append(set, "first_name = ?")
		args = append(args, *p.FirstName)
	}
	if p.LastName != nil {
		set = append(set, "last_name = ?")
		args = append(args, *p.LastName)
	}
	if p.Email != nil {
		set = append(set, "email = ?")
		args = append(args, *p.Email)
	}
	if p.PhoneNumber != nil {
		set = append(set, "phone_number = ?")
		args = append(args, *p.PhoneNumber)
	}
	if p.DateOfRegistration != nil {
		set = append(set, "date_of_registration = ?")
		args = append(args, dateOnly(*p.DateOfRegistration))
	}

	return joinAssignments(set), args
}

// Update applies the patch to the user with the given id. Returns
// false without error when the user does not exist. An empty patch
// only reports existence.
func (r *UserRepo) Update(ctx context.Context, userID int64, patch UserPatch) (bool, error) {
	const op = "users.update"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExistsTx(ctx, tx, "users", "user_id", userID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		set, args := patch.assignments()
		if set == "" {
			return nil
		}

		args = append(args, userID)
		if _, err := tx.ExecContext(ctx, "UPDATE users SET "+set+" WHERE user_id = ?", args...); err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("user_id", userID).Err(err).Msg("update failed")
		return false, err
	}
	return found, nil
}

// Delete removes the user with the given id. Returns false without
// error when the user does not exist, and an integrity error while
// the user still owns bookings.
func (r *UserRepo) Delete(ctx context.Context, userID int64) (bool, error) {
	const op = "users.delete"

	found := false
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		exists, err := rowExistsTx(ctx, tx, "users", "user_id", userID)
		if err != nil {
			return classify(op, err)
		}
		if !exists {
			return nil
		}
		found = true

		// Dependent bookings block the delete rather than cascading.
		if err := requireNoChildrenTx(ctx, tx, op, "booking", "user_id", userID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID); err != nil {
			return classify(op, err)
		}
		return nil
	})
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Int64("user_id", userID).Err(err).Msg("delete failed")
		return false, err
	}
	return found, nil
}

// Exists reports whether a user with the given id is stored. Backend
// errors are logged and reported as absence.
func (r *UserRepo) Exists(ctx context.Context, userID int64) bool {
	return probeExists(ctx, r.sess, r.log, "users.exists", "users", "user_id", userID)
}

// ResetIDSequence restarts the user id sequence at max(user_id)+1 and
// returns the next id it will hand out.
func (r *UserRepo) ResetIDSequence(ctx context.Context) (int64, error) {
	const op = "users.reset_sequence"

	next, err := resetSequence(ctx, r.sess, userSequence)
	if err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return 0, err
	}
	return next, nil
}

// GenerateRandomBatch inserts n synthetic users with sequence-drawn
// ids.
func (r *UserRepo) GenerateRandomBatch(ctx context.Context, n int) error {
	const op = "users.generate"

	if n <= 0 {
		return nil
	}

	if _, err := resetSequence(ctx, r.sess, userSequence); err != nil {
		err = ensureClassified(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("sequence reset failed")
		return err
	}

	users := r.gen.GenerateN(n)
	err := r.sess.WithTx(ctx, func(tx *sql.Tx) error {
		for start := 0; start < len(users); start += batchInsertSize {
			chunk := users[start:min(start+batchInsertSize, len(users))]

			stmt := `INSERT INTO users (user_id, first_name, last_name, email, phone_number, date_of_registration) VALUES ` +
				batchValues(userSequence.nextvalExpr(), 5, len(chunk))

			args := make([]any, 0, len(chunk)*5)
			for i := range chunk {
				u := &chunk[i]
				args = append(args, u.FirstName, u.LastName, u.Email, u.PhoneNumber, dateOnly(u.DateOfRegistration))
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

// Truncate removes every user row.
func (r *UserRepo) Truncate(ctx context.Context) error {
	const op = "users.truncate"

	if _, err := r.sess.Exec(ctx, `DELETE FROM users`); err != nil {
		err = classify(op, err)
		r.log.Error().Str("op", op).Err(err).Msg("truncate failed")
		return err
	}
	return nil
}
