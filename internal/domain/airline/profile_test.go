package airline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airadmin/internal/shared/errors"
)

func TestNewFinancialProfile(t *testing.T) {
	p, err := NewFinancialProfile(7, decimal.NewFromInt(200000), 0, 50, "US")
	require.NoError(t, err)

	assert.Equal(t, uint(7), p.AirlineID)
	assert.True(t, p.Balance.Equal(decimal.NewFromInt(200000)))
	assert.Equal(t, float64(0), p.Reputation)
	assert.Equal(t, float64(50), p.ServiceQuality)
	assert.Equal(t, float64(50), p.TargetServiceQuality)
	assert.Equal(t, "US", p.CountryCode)
	assert.True(t, p.Initialized)
}

func TestNewFinancialProfile_Validation(t *testing.T) {
	_, err := NewFinancialProfile(1, decimal.Zero, -1, 50, "US")
	assert.True(t, errors.IsValidationError(err))

	_, err = NewFinancialProfile(1, decimal.Zero, 101, 50, "US")
	assert.True(t, errors.IsValidationError(err))

	_, err = NewFinancialProfile(1, decimal.Zero, 50, 150, "US")
	assert.True(t, errors.IsValidationError(err))
}

func TestNewHeadquarterBase(t *testing.T) {
	base, err := NewHeadquarterBase(3, 42, "FR", 120)
	require.NoError(t, err)

	assert.Equal(t, uint(3), base.AirlineID)
	assert.Equal(t, uint(42), base.AirportID)
	assert.Equal(t, 1, base.Scale)
	assert.Equal(t, 120, base.FoundedCycle)
	assert.True(t, base.Headquarter)
	assert.Equal(t, "FR", base.CountryCode)
}

func TestNewHeadquarterBase_RequiresAirport(t *testing.T) {
	_, err := NewHeadquarterBase(3, 0, "FR", 120)
	assert.True(t, errors.IsValidationError(err))
}

func TestAirlineIsBot(t *testing.T) {
	assert.True(t, (&Airline{Type: TypeBot}).IsBot())
	assert.False(t, (&Airline{Type: TypeRegular}).IsBot())
}
