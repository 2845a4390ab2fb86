// Package catalog exposes the read-only reference data the lifecycle
// manager consumes: airports, airplane models, and the simulation clock.
package catalog

import "errors"

// ErrNoSuitableAirport signals that no home airport could be resolved. It
// is an expected condition, not a failure: callers proceed without a base.
var ErrNoSuitableAirport = errors.New("no suitable airport for home base")

// Airport is reference data; never mutated here.
type Airport struct {
	ID          uint
	IATA        string
	Name        string
	City        string
	CountryCode string
	Size        int
	Population  int64
}

// AirplaneModel is the aircraft catalog entry used to filter candidates
// below the provisioning price ceiling.
type AirplaneModel struct {
	ID    uint
	Name  string
	Price int64
}
