// Package generator produces synthetic booking-domain records for
// bulk seeding. Generators never assign primary keys; ids come from
// the per-entity sequences at insert time.
package generator

import (
	"fmt"
	"strings"

	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

// Name pools for synthetic users.
var (
	firstNames = []string{
		"Michael", "Sofia", "Tom", "Alex", "Stan",
		"Anna", "John", "Emma", "Oliver", "Ava",
	}
	lastNames = []string{
		"Wall", "Johnes", "Tesla", "Fire", "Smith",
		"Brown", "Taylor", "Wilson", "Davies", "Evans",
	}
)

// UserGenerator creates synthetic users with plausible contact data.
type UserGenerator struct {
	rng *utils.Random
}

// NewUserGenerator creates a new user generator
func NewUserGenerator(rng *utils.Random) *UserGenerator {
	return &UserGenerator{rng: rng}
}

// Generate creates one synthetic user. Email derives from the name,
// phone numbers carry the 380 country prefix, and registration falls
// within the past year.
func (g *UserGenerator) Generate() models.User {
	first := g.rng.PickString(firstNames)
	last := g.rng.PickString(lastNames)

	return models.User{
		FirstName:          first,
		LastName:           last,
		Email:              strings.ToLower(first + "." + last + "@gmail.com"),
		PhoneNumber:        g.generatePhone(),
		DateOfRegistration: g.rng.DateInPast(365),
	}
}

// GenerateN creates n synthetic users.
func (g *UserGenerator) GenerateN(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, g.Generate())
	}
	return users
}

func (g *UserGenerator) generatePhone() string {
	return fmt.Sprintf("380%09d", g.rng.Int64Range(100000000, 999999999))
}
