package route

import "context"

// Repository defines route persistence scoped to one airline.
type Repository interface {
	// DeleteByAirline removes the airline's link assignments and
	// consumption records first, then the links themselves, returning the
	// link count.
	DeleteByAirline(ctx context.Context, airlineID uint) (int64, error)

	// CountByAirline counts the airline's links.
	CountByAirline(ctx context.Context, airlineID uint) (int64, error)
}
