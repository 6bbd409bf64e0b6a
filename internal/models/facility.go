package models

// FacilityType categorizes a facility by where it operates.
type FacilityType string

const (
	FacilityIndoor  FacilityType = "Indoor"
	FacilityOutdoor FacilityType = "Outdoor"
)

// Facility represents a bookable facility belonging to a venue.
// The venue itself is managed outside this system and referenced
// only by id.
type Facility struct {
	FacilityID   int64        `db:"facility_id" json:"facility_id"`
	FacilityName string       `db:"facility_name" json:"facility_name"`
	FacilityType FacilityType `db:"facility_type" json:"facility_type"`
	VenueID      int64        `db:"venue_id" json:"venue_id"`
}
