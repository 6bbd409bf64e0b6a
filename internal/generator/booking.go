package generator

import (
	"fmt"

	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

var bookingStatuses = []string{
	string(models.BookingConfirmed),
	string(models.BookingCancelled),
	string(models.BookingPending),
}

// BookingGenerator creates synthetic bookings against existing users
// and facilities.
type BookingGenerator struct {
	rng *utils.Random
}

// NewBookingGenerator creates a new booking generator
func NewBookingGenerator(rng *utils.Random) *BookingGenerator {
	return &BookingGenerator{rng: rng}
}

// Generate creates one synthetic booking. The date falls within the
// next 30 days, the slot starts between 08:00 and 20:00 and runs for
// two hours, and both foreign keys are drawn uniformly from the live
// parent id sets.
func (g *BookingGenerator) Generate(userIDs, facilityIDs []int64) models.Booking {
	start := g.rng.TimeOfDay(8, 20)

	return models.Booking{
		UserID:      g.rng.PickInt64(userIDs),
		FacilityID:  g.rng.PickInt64(facilityIDs),
		BookingDate: g.rng.DateWithinDays(30),
		StartTime:   start,
		EndTime:     addHours(start, 2),
		Status:      models.BookingStatus(g.rng.PickString(bookingStatuses)),
	}
}

// GenerateN creates n synthetic bookings.
func (g *BookingGenerator) GenerateN(n int, userIDs, facilityIDs []int64) []models.Booking {
	bookings := make([]models.Booking, 0, n)
	for i := 0; i < n; i++ {
		bookings = append(bookings, g.Generate(userIDs, facilityIDs))
	}
	return bookings
}

// addHours shifts a "HH:MM:SS" wall-clock value forward, wrapping at
// midnight the way TIME columns do.
func addHours(clock string, hours int) string {
	var h, m, s int
	fmt.Sscanf(clock, "%d:%d:%d", &h, &m, &s)
	h = (h + hours) % 24
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
