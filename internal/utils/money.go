package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Money represents a monetary value in integer cents. The payment
// table stores DECIMAL(10,2); values cross that boundary through
// String and ParseDecimal so arithmetic in Go stays exact.
type Money int64

// Cents creates a Money value from cents only
func Cents(cents int64) Money {
	return Money(cents)
}

// FromFloat creates a Money value from a float64, rounding to the
// nearest cent.
func FromFloat(amount float64) Money {
	if amount >= 0 {
		return Money(amount*100 + 0.5)
	}
	return Money(amount*100 - 0.5)
}

// ParseDecimal converts a decimal string such as "50.00" (the form a
// DECIMAL column scans into) to Money.
func ParseDecimal(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty decimal string")
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q: %w", s, err)
	}

	cents := int64(0)
	if frac != "" {
		// Normalize to exactly two fractional digits
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid decimal %q: %w", s, err)
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// ToCents returns the value in cents (the underlying representation)
func (m Money) ToCents() int64 {
	return int64(m)
}

// ToFloat returns the value as a float64 (display only)
func (m Money) ToFloat() float64 {
	return float64(m) / 100
}

// IsNegative reports whether the value is below zero
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the value as a plain decimal ("50.00"), the form a
// DECIMAL column accepts.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
