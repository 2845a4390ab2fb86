// Package services holds the supporting services of the bot lifecycle:
// home-base resolution and fleet provisioning.
package services

import (
	"context"
	"errors"

	"airadmin/internal/domain/catalog"
	"airadmin/internal/shared/logger"
)

// HomeResolver picks the home airport for a bot airline. It prefers the
// stored country code and falls back to inferring a country from the
// airline name. An unresolvable home is an expected outcome, reported as
// catalog.ErrNoSuitableAirport together with whatever country code was
// inferred along the way.
type HomeResolver struct {
	airports  catalog.AirportRepository
	countries *CountryMap
	logger    logger.Interface
}

// NewHomeResolver creates a home resolver.
func NewHomeResolver(airports catalog.AirportRepository, countries *CountryMap, log logger.Interface) *HomeResolver {
	return &HomeResolver{airports: airports, countries: countries, logger: log}
}

// Resolve returns the best home airport and the country code that produced
// it. When no airport can be found the returned code may still be non-empty
// (an inferred country with no airports); callers keep it on the profile.
func (r *HomeResolver) Resolve(ctx context.Context, countryCode, airlineName string) (*catalog.Airport, string, error) {
	if countryCode == "" && airlineName != "" {
		if inferred, ok := r.countries.CountryFor(airlineName); ok {
			r.logger.Debugw("inferred country from airline name",
				"airline_name", airlineName, "country_code", inferred)
			countryCode = inferred
		}
	}

	if countryCode == "" {
		return nil, "", catalog.ErrNoSuitableAirport
	}

	airport, err := r.airports.LargestByCountry(ctx, countryCode)
	if err != nil {
		if errors.Is(err, catalog.ErrNoSuitableAirport) {
			return nil, countryCode, catalog.ErrNoSuitableAirport
		}
		return nil, countryCode, err
	}

	return airport, countryCode, nil
}
