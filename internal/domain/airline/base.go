package airline

import "airadmin/internal/shared/errors"

// Base is a location-anchored presence record. At most one base per airline
// carries the headquarter flag.
type Base struct {
	AirportID    uint
	AirlineID    uint
	Scale        int
	FoundedCycle int
	Headquarter  bool
	CountryCode  string
}

// NewHeadquarterBase builds the scale-1 HQ base written after a reset or
// create.
func NewHeadquarterBase(airlineID, airportID uint, countryCode string, cycle int) (*Base, error) {
	if airportID == 0 {
		return nil, errors.NewValidationError("airport is required for a base")
	}
	return &Base{
		AirportID:    airportID,
		AirlineID:    airlineID,
		Scale:        1,
		FoundedCycle: cycle,
		Headquarter:  true,
		CountryCode:  countryCode,
	}, nil
}
