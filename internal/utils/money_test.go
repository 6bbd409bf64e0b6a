package utils

import (
	"testing"
)

func TestMoneyCreation(t *testing.T) {
	t.Run("Cents", func(t *testing.T) {
		m := Cents(1234)
		if m.ToCents() != 1234 {
			t.Errorf("Expected 1234 cents, got %d", m.ToCents())
		}
	})

	t.Run("FromFloat", func(t *testing.T) {
		m := FromFloat(19.99)
		if m.ToCents() != 1999 {
			t.Errorf("Expected 1999 cents, got %d", m.ToCents())
		}

		m = FromFloat(-5.75)
		if m.ToCents() != -575 {
			t.Errorf("Expected -575 cents, got %d", m.ToCents())
		}
	})
}

func TestMoneyParseDecimal(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"50.00", 5000},
		{"50", 5000},
		{"0.05", 5},
		{"1234.5", 123450},
		{"-3.25", -325},
		{" 7.10 ", 710},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			m, err := ParseDecimal(tc.in)
			if err != nil {
				t.Fatalf("ParseDecimal(%q) failed: %v", tc.in, err)
			}
			if m.ToCents() != tc.want {
				t.Errorf("ParseDecimal(%q) = %d cents, want %d", tc.in, m.ToCents(), tc.want)
			}
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		if _, err := ParseDecimal(""); err == nil {
			t.Error("Expected error for empty string")
		}
		if _, err := ParseDecimal("abc"); err == nil {
			t.Error("Expected error for non-numeric string")
		}
	})
}

func TestMoneyString(t *testing.T) {
	t.Run("Positive", func(t *testing.T) {
		if got := Cents(5000).String(); got != "50.00" {
			t.Errorf("Expected 50.00, got %s", got)
		}
	})

	t.Run("SubUnit", func(t *testing.T) {
		if got := Cents(5).String(); got != "0.05" {
			t.Errorf("Expected 0.05, got %s", got)
		}
	})

	t.Run("Negative", func(t *testing.T) {
		if got := Cents(-325).String(); got != "-3.25" {
			t.Errorf("Expected -3.25, got %s", got)
		}
	})
}

func TestMoneyRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 5000, 123456789} {
		m := Cents(cents)
		parsed, err := ParseDecimal(m.String())
		if err != nil {
			t.Fatalf("ParseDecimal(%q) failed: %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("Round trip mismatch: %d -> %s -> %d", cents, m.String(), parsed.ToCents())
		}
	}
}

func TestMoneyIsNegative(t *testing.T) {
	if !Cents(-525).IsNegative() {
		t.Error("Expected negative result")
	}
	if Cents(1050).IsNegative() {
		t.Error("Expected positive value")
	}
	if Cents(0).IsNegative() {
		t.Error("Expected zero to be non-negative")
	}
}
