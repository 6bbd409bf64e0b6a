package models

import (
	"time"

	"github.com/aklymenko/booking-store/internal/utils"
)

// Payment records money received for a booking. Amounts are stored as
// integer cents to avoid floating point drift; the payment table's
// DECIMAL column maps to/from cents at the repository boundary.
type Payment struct {
	PaymentID   int64     `db:"payment_id" json:"payment_id"`
	BookingID   int64     `db:"booking_id" json:"booking_id"`
	AmountCents int64     `db:"amount" json:"amount_cents"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	Paid        bool      `db:"payment_status" json:"payment_status"`
}

// Amount returns the payment amount as a Money value.
func (p *Payment) Amount() utils.Money {
	return utils.Cents(p.AmountCents)
}
