package catalog

import "context"

// AirportRepository reads the airport reference table.
type AirportRepository interface {
	// LargestByCountry returns the best home candidate for a country:
	// largest size first, then population, then id for a stable tie-break.
	// Returns ErrNoSuitableAirport when the country has no airports.
	LargestByCountry(ctx context.Context, countryCode string) (*Airport, error)

	// GetByIATA returns the airport with the given IATA code, nil when
	// absent.
	GetByIATA(ctx context.Context, iata string) (*Airport, error)
}

// ModelRepository reads the airplane model catalog.
type ModelRepository interface {
	// ListBelowPrice returns models priced strictly below the ceiling,
	// ordered by price ascending.
	ListBelowPrice(ctx context.Context, ceiling int64) ([]*AirplaneModel, error)
}

// CycleRepository reads the simulation clock.
type CycleRepository interface {
	// Current returns the latest cycle, zero when the table is empty.
	Current(ctx context.Context) (int, error)
}
