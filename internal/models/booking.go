package models

import (
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingPending   BookingStatus = "pending"
)

// Valid reports whether s is one of the known booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingCancelled, BookingPending:
		return true
	}
	return false
}

// Booking reserves a facility for a user during a time window.
// Deleting a booking removes its payments as well.
//
// StartTime and EndTime are wall-clock values ("15:04:05") stored in
// TIME columns; BookingDate carries the calendar date.
type Booking struct {
	BookingID   int64         `db:"booking_id" json:"booking_id"`
	UserID      int64         `db:"user_id" json:"user_id"`
	FacilityID  int64         `db:"facility_id" json:"facility_id"`
	BookingDate time.Time     `db:"booking_date" json:"booking_date"`
	StartTime   string        `db:"start_time" json:"start_time"`
	EndTime     string        `db:"end_time" json:"end_time"`
	Status      BookingStatus `db:"status" json:"status"`
}
