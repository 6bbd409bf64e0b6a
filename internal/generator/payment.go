package generator

import (
	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

// Payment amount bounds in cents.
const (
	minPaymentCents = 500   // 5.00
	maxPaymentCents = 20000 // 200.00
)

// PaymentGenerator creates synthetic payments against existing
// bookings.
type PaymentGenerator struct {
	rng *utils.Random
}

// NewPaymentGenerator creates a new payment generator
func NewPaymentGenerator(rng *utils.Random) *PaymentGenerator {
	return &PaymentGenerator{rng: rng}
}

// Generate creates one synthetic payment with a non-negative amount,
// a payment timestamp within the past 30 days and a coin-flip paid
// flag. The booking reference is drawn uniformly from the live
// booking id set.
func (g *PaymentGenerator) Generate(bookingIDs []int64) models.Payment {
	return models.Payment{
		BookingID:   g.rng.PickInt64(bookingIDs),
		AmountCents: g.rng.Int64Range(minPaymentCents, maxPaymentCents),
		PaymentDate: g.rng.DateInPast(30),
		Paid:        g.rng.Bool(),
	}
}

// GenerateN creates n synthetic payments.
func (g *PaymentGenerator) GenerateN(n int, bookingIDs []int64) []models.Payment {
	payments := make([]models.Payment, 0, n)
	for i := 0; i < n; i++ {
		payments = append(payments, g.Generate(bookingIDs))
	}
	return payments
}
