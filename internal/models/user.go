package models

import (
	"time"
)

// User represents a registered customer who can hold bookings.
type User struct {
	UserID             int64     `db:"user_id" json:"user_id"`
	FirstName          string    `db:"first_name" json:"first_name"`
	LastName           string    `db:"last_name" json:"last_name"`
	Email              string    `db:"email" json:"email"`
	PhoneNumber        string    `db:"phone_number" json:"phone_number"`
	DateOfRegistration time.Time `db:"date_of_registration" json:"date_of_registration"`
}
