package airline

import (
	"github.com/shopspring/decimal"

	"airadmin/internal/shared/errors"
)

// FinancialProfile is the one-to-one airline_info row. Balance is a DECIMAL
// column and must never round-trip through a float.
type FinancialProfile struct {
	AirlineID            uint
	Balance              decimal.Decimal
	Reputation           float64
	ServiceQuality       float64
	TargetServiceQuality float64
	CountryCode          string
	Initialized          bool
}

// NewFinancialProfile validates the score ranges before the profile is
// handed to the repository.
func NewFinancialProfile(airlineID uint, balance decimal.Decimal, reputation, serviceQuality float64, countryCode string) (*FinancialProfile, error) {
	if reputation < 0 || reputation > 100 {
		return nil, errors.NewValidationError("reputation must be within [0,100]")
	}
	if serviceQuality < 0 || serviceQuality > 100 {
		return nil, errors.NewValidationError("service quality must be within [0,100]")
	}
	return &FinancialProfile{
		AirlineID:            airlineID,
		Balance:              balance,
		Reputation:           reputation,
		ServiceQuality:       serviceQuality,
		TargetServiceQuality: serviceQuality,
		CountryCode:          countryCode,
		Initialized:          true,
	}, nil
}
