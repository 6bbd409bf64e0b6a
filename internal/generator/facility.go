package generator

import (
	"github.com/aklymenko/booking-store/internal/models"
	"github.com/aklymenko/booking-store/internal/utils"
)

// Sport names offered by synthetic facilities. "Voleyball" keeps the
// spelling existing datasets were seeded with.
var facilityNames = []string{"Football", "Basketball", "Voleyball", "Golf", "Tennis"}

// FacilityGenerator creates synthetic facilities attached to existing
// venues.
type FacilityGenerator struct {
	rng *utils.Random
}

// NewFacilityGenerator creates a new facility generator
func NewFacilityGenerator(rng *utils.Random) *FacilityGenerator {
	return &FacilityGenerator{rng: rng}
}

// Generate creates one synthetic facility whose venue is drawn
// uniformly from the given live venue ids.
func (g *FacilityGenerator) Generate(venueIDs []int64) models.Facility {
	facilityType := models.FacilityIndoor
	if g.rng.Bool() {
		facilityType = models.FacilityOutdoor
	}

	return models.Facility{
		FacilityName: g.rng.PickString(facilityNames),
		FacilityType: facilityType,
		VenueID:      g.rng.PickInt64(venueIDs),
	}
}

// GenerateN creates n synthetic facilities.
func (g *FacilityGenerator) GenerateN(n int, venueIDs []int64) []models.Facility {
	facilities := make([]models.Facility, 0, n)
	for i := 0; i < n; i++ {
		facilities = append(facilities, g.Generate(venueIDs))
	}
	return facilities
}
