package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// Random provides a deterministic pseudo-random number generator with
// convenient methods for synthetic data generation. Given the same
// seed it reproduces the same sequence.
type Random struct {
	rng  *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRandom creates a new Random instance with the given seed.
// If seed is 0, a cryptographically random seed is generated.
func NewRandom(seed int64) *Random {
	var actualSeed uint64
	if seed == 0 {
		actualSeed = generateRandomSeed()
	} else {
		actualSeed = uint64(seed)
	}

	return &Random{
		rng:  rand.New(rand.NewPCG(actualSeed, actualSeed^0xDEADBEEF)),
		seed: actualSeed,
	}
}

// generateRandomSeed creates a cryptographically random seed
func generateRandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Fallback to time-based seed if crypto/rand fails
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Seed returns the seed used to initialize this RNG
func (r *Random) Seed() uint64 {
	return r.seed
}

// Fork creates a new Random instance with a derived seed. Each
// repository gets its own fork so batches stay reproducible per
// entity regardless of generation order.
func (r *Random) Fork() *Random {
	r.mu.Lock()
	defer r.mu.Unlock()

	newSeed := r.rng.Uint64()
	return &Random{
		rng:  rand.New(rand.NewPCG(newSeed, newSeed^0xCAFEBABE)),
		seed: newSeed,
	}
}

// IntN returns a pseudo-random int in [0, n)
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// IntRange returns a pseudo-random int in [min, max]
func (r *Random) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.IntN(max-min+1)
}

// Int64N returns a pseudo-random int64 in [0, n)
func (r *Random) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Int64N(n)
}

// Int64Range returns a pseudo-random int64 in [min, max]
func (r *Random) Int64Range(min, max int64) int64 {
	if min >= max {
		return min
	}
	return min + r.Int64N(max-min+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Bool returns a pseudo-random boolean
func (r *Random) Bool() bool {
	return r.IntN(2) == 1
}

// PickString returns a random string from the slice
func (r *Random) PickString(slice []string) string {
	if len(slice) == 0 {
		return ""
	}
	return slice[r.IntN(len(slice))]
}

// PickInt64 returns a random int64 from the slice
func (r *Random) PickInt64(slice []int64) int64 {
	if len(slice) == 0 {
		return 0
	}
	return slice[r.IntN(len(slice))]
}

// Duration returns a random duration in [min, max]
func (r *Random) Duration(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	return min + time.Duration(r.Int64N(int64(max-min+1)))
}

// Date returns a random date between start and end (inclusive)
func (r *Random) Date(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	delta := end.Sub(start)
	return start.Add(r.Duration(0, delta))
}

// DateInPast returns a random date within the given number of days
// before now. daysBack must be positive.
func (r *Random) DateInPast(daysBack int) time.Time {
	if daysBack <= 0 {
		return time.Now()
	}
	end := time.Now()
	start := end.AddDate(0, 0, -daysBack)
	return r.Date(start, end)
}

// DateWithinDays returns a random date within the given number of
// days after now.
func (r *Random) DateWithinDays(daysAhead int) time.Time {
	if daysAhead <= 0 {
		return time.Now()
	}
	start := time.Now()
	end := start.AddDate(0, 0, daysAhead)
	return r.Date(start, end)
}

// TimeOfDay returns a random wall-clock time between the given hours
// formatted as "HH:MM:SS" for TIME columns.
func (r *Random) TimeOfDay(startHour, endHour int) string {
	if startHour < 0 {
		startHour = 0
	}
	if endHour <= startHour {
		endHour = startHour + 1
	}
	if endHour > 24 {
		endHour = 24
	}
	secs := r.IntRange(startHour*3600, endHour*3600-1)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
