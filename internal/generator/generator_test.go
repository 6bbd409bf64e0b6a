package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

func containsInt64(ids []int64, v int64) bool {
	for _, id := range ids {
		if id == v {
			return true
		}
	}
	return false
}

func TestUserGenerator(t *testing.T) {
	gen := NewUserGenerator(utils.NewRandom(42))

	t.Run("FieldShapes", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			u := gen.Generate()

			if u.UserID != 0 {
				t.Fatalf("Generator must not assign ids, got %d", u.UserID)
			}
			if u.FirstName == "" || u.LastName == "" {
				t.Fatalf("Expected non-empty name, got %q %q", u.FirstName, u.LastName)
			}

			wantEmail := strings.ToLower(u.FirstName + "." + u.LastName + "@gmail.com")
			if u.Email != wantEmail {
				t.Errorf("Expected email %q, got %q", wantEmail, u.Email)
			}

			if !strings.HasPrefix(u.PhoneNumber, "380") {
				t.Errorf("Expected 380-prefixed phone, got %q", u.PhoneNumber)
			}
			if len(u.PhoneNumber) != 12 {
				t.Errorf("Expected 12-digit phone, got %q", u.PhoneNumber)
			}

			if u.DateOfRegistration.IsZero() {
				t.Error("Expected a registration date")
			}
		}
	})

	t.Run("GenerateN", func(t *testing.T) {
		users := gen.GenerateN(25)
		if len(users) != 25 {
			t.Errorf("Expected 25 users, got %d", len(users))
		}
	})

	t.Run("Reproducible", func(t *testing.T) {
		a := NewUserGenerator(utils.NewRandom(7)).GenerateN(10)
		b := NewUserGenerator(utils.NewRandom(7)).GenerateN(10)
		for i := range a {
			if a[i].Email != b[i].Email || a[i].PhoneNumber != b[i].PhoneNumber {
				t.Fatalf("Same seed must produce same users, diverged at %d", i)
			}
		}
	})
}

func TestFacilityGenerator(t *testing.T) {
	gen := NewFacilityGenerator(utils.NewRandom(42))
	venueIDs := []int64{3, 8, 21}

	for i := 0; i < 100; i++ {
		f := gen.Generate(venueIDs)

		if f.FacilityID != 0 {
			t.Fatalf("Generator must not assign ids, got %d", f.FacilityID)
		}
		if !containsInt64(venueIDs, f.VenueID) {
			t.Errorf("Venue %d not drawn from provided ids", f.VenueID)
		}
		if f.FacilityType != models.FacilityIndoor && f.FacilityType != models.FacilityOutdoor {
			t.Errorf("Unexpected facility type %q", f.FacilityType)
		}

		known := false
		for _, name := range facilityNames {
			if f.FacilityName == name {
				known = true
			}
		}
		if !known {
			t.Errorf("Unexpected facility name %q", f.FacilityName)
		}
	}
}

func TestBookingGenerator(t *testing.T) {
	gen := NewBookingGenerator(utils.NewRandom(42))
	userIDs := []int64{1, 2, 3}
	facilityIDs := []int64{10, 20}

	for i := 0; i < 100; i++ {
		b := gen.Generate(userIDs, facilityIDs)

		if !containsInt64(userIDs, b.UserID) {
			t.Errorf("User %d not drawn from provided ids", b.UserID)
		}
		if !containsInt64(facilityIDs, b.FacilityID) {
			t.Errorf("Facility %d not drawn from provided ids", b.FacilityID)
		}
		if !b.Status.Valid() {
			t.Errorf("Unexpected status %q", b.Status)
		}

		var h, m, s int
		if _, err := fmt.Sscanf(b.StartTime, "%d:%d:%d", &h, &m, &s); err != nil {
			t.Fatalf("Bad start time %q: %v", b.StartTime, err)
		}
		if h < 8 || h >= 20 {
			t.Errorf("Start hour %d outside 08-20 window", h)
		}
		if want := addHours(b.StartTime, 2); b.EndTime != want {
			t.Errorf("Expected end %q for start %q, got %q", want, b.StartTime, b.EndTime)
		}
	}
}

func TestAddHours(t *testing.T) {
	tests := []struct {
		clock string
		hours int
		want  string
	}{
		{"08:30:00", 2, "10:30:00"},
		{"19:45:15", 2, "21:45:15"},
		{"23:00:00", 2, "01:00:00"},
		{"00:00:00", 0, "00:00:00"},
	}

	for _, tt := range tests {
		if got := addHours(tt.clock, tt.hours); got != tt.want {
			t.Errorf("addHours(%q, %d) = %q, want %q", tt.clock, tt.hours, got, tt.want)
		}
	}
}

func TestPaymentGenerator(t *testing.T) {
	gen := NewPaymentGenerator(utils.NewRandom(42))
	bookingIDs := []int64{5, 6, 7}

	sawPaid, sawUnpaid := false, false
	for i := 0; i < 200; i++ {
		p := gen.Generate(bookingIDs)

		if !containsInt64(bookingIDs, p.BookingID) {
			t.Errorf("Booking %d not drawn from provided ids", p.BookingID)
		}
		if p.AmountCents < minPaymentCents || p.AmountCents > maxPaymentCents {
			t.Errorf("Amount %d outside [%d, %d]", p.AmountCents, minPaymentCents, maxPaymentCents)
		}
		if p.PaymentDate.IsZero() {
			t.Error("Expected a payment date")
		}

		if p.Paid {
			sawPaid = true
		} else {
			sawUnpaid = true
		}
	}

	if !sawPaid || !sawUnpaid {
		t.Error("Expected both paid and unpaid payments across 200 draws")
	}
}
