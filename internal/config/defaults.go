// Package config contains compile-time defaults for the booking
// store tooling. Edit these values and recompile to tune behavior.
package config

import "time"

// Connection pool defaults
const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 5 * time.Minute
	DefaultConnMaxIdleTime = 1 * time.Minute

	// DefaultOpTimeout bounds each transactional storage operation.
	DefaultOpTimeout = 30 * time.Second
)

// Seed volume defaults, applied when flags and config leave a count
// unset. Counts respect foreign-key order: venues before facilities,
// users and facilities before bookings, bookings before payments.
const (
	DefaultNumVenues     = 10
	DefaultNumUsers      = 1000
	DefaultNumFacilities = 50
	DefaultNumBookings   = 5000
	DefaultNumPayments   = 5000
)

// BatchInsertSize caps rows per INSERT statement during bulk
// generation to keep packets below the server's max_allowed_packet.
const BatchInsertSize = 500
