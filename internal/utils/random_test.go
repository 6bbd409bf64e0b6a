package utils

import (
	"strings"
	"testing"
	"time"
)

func TestRandomReproducibility(t *testing.T) {
	seed := int64(42)

	rng1 := NewRandom(seed)
	rng2 := NewRandom(seed)

	t.Run("IntN", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v1 := rng1.IntN(1000)
			v2 := rng2.IntN(1000)
			if v1 != v2 {
				t.Errorf("Mismatch at iteration %d: %d != %d", i, v1, v2)
				return
			}
		}
	})

	rng1 = NewRandom(seed)
	rng2 = NewRandom(seed)

	t.Run("Mixed operations", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			if rng1.IntN(100) != rng2.IntN(100) {
				t.Error("IntN mismatch")
				return
			}
			if rng1.Float64() != rng2.Float64() {
				t.Error("Float64 mismatch")
				return
			}
			if rng1.Bool() != rng2.Bool() {
				t.Error("Bool mismatch")
				return
			}
			if rng1.TimeOfDay(8, 22) != rng2.TimeOfDay(8, 22) {
				t.Error("TimeOfDay mismatch")
				return
			}
		}
	})
}

func TestRandomSeedStorage(t *testing.T) {
	rng := NewRandom(12345)
	if rng.Seed() != 12345 {
		t.Errorf("Expected seed 12345, got %d", rng.Seed())
	}

	rng = NewRandom(0)
	if rng.Seed() == 0 {
		t.Error("Expected non-zero auto-generated seed")
	}
}

func TestRandomFork(t *testing.T) {
	rng := NewRandom(7)
	fork1 := rng.Fork()

	rng = NewRandom(7)
	fork2 := rng.Fork()

	for i := 0; i < 100; i++ {
		if fork1.IntN(1000) != fork2.IntN(1000) {
			t.Error("Forked RNGs with same parent seed diverged")
			return
		}
	}
}

func TestRandomRanges(t *testing.T) {
	rng := NewRandom(99)

	t.Run("IntRange", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.IntRange(10, 20)
			if v < 10 || v > 20 {
				t.Fatalf("IntRange(10, 20) returned %d", v)
			}
		}
	})

	t.Run("Int64Range", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			v := rng.Int64Range(1, 5)
			if v < 1 || v > 5 {
				t.Fatalf("Int64Range(1, 5) returned %d", v)
			}
		}
	})

	t.Run("Degenerate range", func(t *testing.T) {
		if v := rng.IntRange(5, 5); v != 5 {
			t.Errorf("Expected 5, got %d", v)
		}
		if v := rng.IntN(0); v != 0 {
			t.Errorf("Expected 0 for IntN(0), got %d", v)
		}
	})
}

func TestRandomPick(t *testing.T) {
	rng := NewRandom(3)

	t.Run("PickString", func(t *testing.T) {
		options := []string{"a", "b", "c"}
		for i := 0; i < 100; i++ {
			v := rng.PickString(options)
			if v != "a" && v != "b" && v != "c" {
				t.Fatalf("PickString returned unexpected value %q", v)
			}
		}
		if rng.PickString(nil) != "" {
			t.Error("Expected empty string for empty slice")
		}
	})

	t.Run("PickInt64", func(t *testing.T) {
		ids := []int64{10, 20, 30}
		seen := make(map[int64]bool)
		for i := 0; i < 300; i++ {
			v := rng.PickInt64(ids)
			if v != 10 && v != 20 && v != 30 {
				t.Fatalf("PickInt64 returned unexpected value %d", v)
			}
			seen[v] = true
		}
		if len(seen) != 3 {
			t.Errorf("Expected all 3 ids drawn over 300 picks, got %d", len(seen))
		}
		if rng.PickInt64(nil) != 0 {
			t.Error("Expected 0 for empty slice")
		}
	})
}

func TestRandomDates(t *testing.T) {
	rng := NewRandom(11)

	t.Run("DateInPast", func(t *testing.T) {
		now := time.Now()
		for i := 0; i < 100; i++ {
			d := rng.DateInPast(365)
			if d.After(now.Add(time.Second)) {
				t.Fatalf("DateInPast returned future date %v", d)
			}
			if d.Before(now.AddDate(0, 0, -366)) {
				t.Fatalf("DateInPast returned date too far back: %v", d)
			}
		}
	})

	t.Run("DateWithinDays", func(t *testing.T) {
		now := time.Now()
		for i := 0; i < 100; i++ {
			d := rng.DateWithinDays(30)
			if d.Before(now.Add(-time.Second)) {
				t.Fatalf("DateWithinDays returned past date %v", d)
			}
			if d.After(now.AddDate(0, 0, 31)) {
				t.Fatalf("DateWithinDays returned date too far ahead: %v", d)
			}
		}
	})
}

func TestRandomTimeOfDay(t *testing.T) {
	rng := NewRandom(5)

	for i := 0; i < 500; i++ {
		s := rng.TimeOfDay(8, 22)
		parsed, err := time.Parse("15:04:05", s)
		if err != nil {
			t.Fatalf("TimeOfDay returned unparseable value %q: %v", s, err)
		}
		h := parsed.Hour()
		if h < 8 || h >= 22 {
			t.Fatalf("TimeOfDay(8, 22) returned hour %d (%s)", h, s)
		}
		if !strings.Contains(s, ":") || len(s) != 8 {
			t.Fatalf("TimeOfDay returned malformed value %q", s)
		}
	}
}
