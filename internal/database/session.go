// FILE: session.go
// PURPOSE: Transactional gateway shared by all repositories. A Session
// pins one connection from the pool for its whole lifetime, wraps
// operations in a transaction that commits on clean return and rolls
// back on any failure, and exposes a raw execution path for
// administrative statements (sequence DDL, truncation, venue stubs).
//
// A Session is not safe for unsynchronized concurrent use. Callers
// that operate from multiple goroutines must give each its own
// repository with its own session.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Session is a transaction-scoped execution handle over a single
// pinned database connection.
type Session struct {
	pool      *Pool
	conn      *sql.Conn
	opTimeout time.Duration
}

// Close releases the pinned connection back to the pool.
func (s *Session) Close() error {
	return s.conn.Close()
}

// withTimeout applies the configured per-operation timeout, if any.
func (s *Session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout > 0 {
		return context.WithTimeout(ctx, s.opTimeout)
	}
	return ctx, func() {}
}

// WithTx runs fn inside a transaction on the session's connection.
// The transaction commits when fn returns nil and rolls back when it
// returns an error or panics. Rollback errors after a failed fn are
// deliberately discarded; the original failure is what matters.
func (s *Session) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		s.pool.recordQuery(err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		s.pool.recordQuery(err)
		return err
	}

	if err := tx.Commit(); err != nil {
		s.pool.recordQuery(err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.pool.recordQuery(nil)
	return nil
}

// Exec runs a single statement outside any explicit transaction.
// Used for administrative statements that are atomic on their own.
func (s *Session) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	result, err := s.conn.ExecContext(ctx, query, args...)
	s.pool.recordQuery(err)
	return result, err
}

// Query executes a read-only statement on the session's connection.
// Like QueryRow, no session timeout: rows outlive this call.
func (s *Session) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	s.pool.recordQuery(err)
	return rows, err
}

// QueryRow executes a statement expected to return at most one row.
// No session timeout is applied here: the row is consumed after this
// call returns, and cancelling the context before Scan would poison
// the result. The caller's context still applies.
func (s *Session) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	row := s.conn.QueryRowContext(ctx, query, args...)
	s.pool.recordQuery(nil)
	return row
}
