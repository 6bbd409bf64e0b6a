// Package database provides the storage layer for the booking system.
//
// FILE: errors.go
// PURPOSE: Typed error taxonomy for repository operations. Callers that
// only need the boolean contract can ignore kinds entirely; callers
// that want diagnosability can switch on them.
package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// Kind classifies a repository failure.
type Kind int

const (
	// KindStorage covers connectivity and query execution failures.
	KindStorage Kind = iota

	// KindNotFound means the target row does not exist. Update and
	// Delete surface this as a plain false instead of an error.
	KindNotFound

	// KindIntegrity means a referenced foreign key does not resolve
	// to an existing parent row, or a delete would orphan children.
	KindIntegrity
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindIntegrity:
		return "integrity"
	default:
		return "storage"
	}
}

// Error wraps a storage failure with its classification and the
// operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a classified storage error.
func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// ErrKind reports the Kind carried by err, or KindStorage when err
// is not a classified storage error.
func ErrKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsIntegrity reports whether err is a referential-integrity failure.
func IsIntegrity(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindIntegrity
}

// MySQL/MariaDB server error numbers the classifier understands.
const (
	mysqlErrDupEntry        = 1062 // duplicate primary/unique key
	mysqlErrRowIsReferenced = 1451 // delete blocked by child rows
	mysqlErrNoReferencedRow = 1452 // insert/update with missing parent
)

// classify maps a raw driver error onto the taxonomy. The repositories
// pre-check foreign keys themselves, so a driver-level 1452 means the
// pre-check raced a concurrent delete; it is still an integrity fault.
func classify(op string, err error) *Error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return newError(KindNotFound, op, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlErrNoReferencedRow, mysqlErrRowIsReferenced:
			return newError(KindIntegrity, op, err)
		case mysqlErrDupEntry:
			return newError(KindIntegrity, op, err)
		}
	}

	return newError(KindStorage, op, err)
}
