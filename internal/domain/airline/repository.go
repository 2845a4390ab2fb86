package airline

import (
	"context"

	"github.com/shopspring/decimal"
)

// Stats is the read model returned for the bot listing: the airline row
// joined with its profile and dependent-row counts.
type Stats struct {
	ID             uint
	Name           string
	Type           Type
	Balance        decimal.Decimal
	Reputation     float64
	ServiceQuality float64
	RouteCount     int64
	AircraftCount  int64
	BaseCount      int64
}

// Repository defines airline aggregate persistence. Write operations run
// inside the caller's transaction when one is present in the context; none
// of them commits independently.
type Repository interface {
	// GetByID retrieves an airline by id, nil when absent.
	GetByID(ctx context.Context, id uint) (*Airline, error)

	// GetProfile retrieves the financial profile, nil when absent.
	GetProfile(ctx context.Context, airlineID uint) (*FinancialProfile, error)

	// ListByType retrieves all airlines of the given category.
	ListByType(ctx context.Context, t Type) ([]*Airline, error)

	// ListStatsByType retrieves the reporting read model for a category.
	ListStatsByType(ctx context.Context, t Type) ([]*Stats, error)

	// Create inserts a new airline and sets its id.
	Create(ctx context.Context, a *Airline) error

	// CreateProfile inserts a fresh financial profile.
	CreateProfile(ctx context.Context, p *FinancialProfile) error

	// ResetProfile rewrites balance, reputation and service quality in
	// place. An empty countryCode leaves the stored code untouched.
	ResetProfile(ctx context.Context, airlineID uint, balance decimal.Decimal, reputation, serviceQuality float64, countryCode string) error

	// DeleteBases removes every base of the airline, returning the count.
	DeleteBases(ctx context.Context, airlineID uint) (int64, error)

	// InsertBase inserts one base row.
	InsertBase(ctx context.Context, b *Base) error

	// DeleteAppeal removes the airline's loyalty/awareness rows.
	DeleteAppeal(ctx context.Context, airlineID uint) error
}
