package database

import (
	"strings"
	"testing"
	"time"
)

func TestBatchValues(t *testing.T) {
	t.Run("SingleRow", func(t *testing.T) {
		got := batchValues("NEXTVAL(user_id_seq)", 2, 1)
		want := "(NEXTVAL(user_id_seq), ?, ?)"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("MultipleRows", func(t *testing.T) {
		got := batchValues("NEXTVAL(payment_id_seq)", 1, 3)
		want := "(NEXTVAL(payment_id_seq), ?), (NEXTVAL(payment_id_seq), ?), (NEXTVAL(payment_id_seq), ?)"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("PlaceholderCount", func(t *testing.T) {
		got := batchValues("NEXTVAL(booking_id_seq)", 6, 500)
		if n := strings.Count(got, "?"); n != 3000 {
			t.Errorf("Expected 3000 placeholders, got %d", n)
		}
		if n := strings.Count(got, "NEXTVAL"); n != 500 {
			t.Errorf("Expected 500 sequence draws, got %d", n)
		}
	})
}

func TestUserPatchAssignments(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("Empty", func(t *testing.T) {
		set, args := UserPatch{}.assignments()
		if set != "" {
			t.Errorf("Expected empty SET clause, got %q", set)
		}
		if len(args) != 0 {
			t.Errorf("Expected no args, got %d", len(args))
		}
	})

	t.Run("SingleField", func(t *testing.T) {
		set, args := UserPatch{Email: str("new@x.com")}.assignments()
		if set != "email = ?" {
			t.Errorf("Expected single assignment, got %q", set)
		}
		if len(args) != 1 || args[0] != "new@x.com" {
			t.Errorf("Unexpected args %v", args)
		}
	})

	t.Run("AllFields", func(t *testing.T) {
		reg := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
		patch := UserPatch{
			FirstName:          str("Ann"),
			LastName:           str("Lee"),
			Email:              str("a@x.com"),
			PhoneNumber:        str("3801234567"),
			DateOfRegistration: &reg,
		}

		set, args := patch.assignments()
		for _, col := range []string{"first_name", "last_name", "email", "phone_number", "date_of_registration"} {
			if !strings.Contains(set, col+" = ?") {
				t.Errorf("Missing assignment for %s in %q", col, set)
			}
		}
		if len(args) != 5 {
			t.Fatalf("Expected 5 args, got %d", len(args))
		}
		// DATE columns get the calendar date only
		if args[4] != "2024-01-01" {
			t.Errorf("Expected date-only value, got %v", args[4])
		}
	})
}

func TestDateFormatting(t *testing.T) {
	ts := time.Date(2024, 6, 1, 10, 5, 30, 0, time.UTC)

	if got := dateOnly(ts); got != "2024-06-01" {
		t.Errorf("Expected 2024-06-01, got %s", got)
	}
	if got := dateTime(ts); got != "2024-06-01 10:05:30" {
		t.Errorf("Expected 2024-06-01 10:05:30, got %s", got)
	}
}
