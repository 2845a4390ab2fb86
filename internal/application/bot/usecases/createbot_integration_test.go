package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/domain/airline"
	"airadmin/internal/infrastructure/persistence"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

func (e *testEnv) createUseCase() *CreateBotUseCase {
	return NewCreateBotUseCase(e.tx, e.airlines, e.airports, e.cycles,
		e.provisioner, e.startingBalance, e.serviceQuality, logger.NewLogger())
}

func TestCreateBot_ByCountry(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	airportID := env.seedCatalog(t, "AU", 6)

	uc := env.createUseCase()
	result, err := uc.Execute(ctx, dto.CreateBotRequest{Name: "Fresh Bot", CountryCode: "AU"})
	require.NoError(t, err)

	assert.NotZero(t, result.AirlineID)
	assert.Equal(t, "Fresh Bot", result.AirlineName)
	assert.Equal(t, "AU", result.CountryCode)
	assert.Equal(t, 5, result.AircraftAdded)
	assert.True(t, result.HQCreated)

	created, err := env.airlines.GetByID(ctx, result.AirlineID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, airline.TypeBot, created.Type)

	profile, err := env.airlines.GetProfile(ctx, result.AirlineID)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.Balance.Equal(decimal.NewFromInt(200000)))
	assert.Zero(t, profile.Reputation)
	assert.Equal(t, float64(50), profile.ServiceQuality)
	assert.Equal(t, "AU", profile.CountryCode)

	var base persistence.AirlineBaseModel
	require.NoError(t, env.gdb.Where("airline = ?", result.AirlineID).First(&base).Error)
	assert.Equal(t, airportID, base.Airport)
	assert.True(t, base.Headquarter)

	assert.Equal(t, int64(5), env.count(t, &persistence.AirplaneModel{}, "owner = ?", result.AirlineID))
}

func TestCreateBot_AirportHintWins(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 3)
	cdg := persistence.AirportModel{IATA: "CDG", CountryCode: "FR", Size: 7, Population: 3_000_000}
	require.NoError(t, env.gdb.Create(&cdg).Error)

	uc := env.createUseCase()
	result, err := uc.Execute(ctx, dto.CreateBotRequest{
		Name:        "Hinted Bot",
		CountryCode: "AU",
		AirportIATA: "CDG",
	})
	require.NoError(t, err)

	// The airport's own country wins over the requested one.
	assert.Equal(t, "FR", result.CountryCode)

	var base persistence.AirlineBaseModel
	require.NoError(t, env.gdb.Where("airline = ?", result.AirlineID).First(&base).Error)
	assert.Equal(t, cdg.ID, base.Airport)
}

func TestCreateBot_UnknownAirport(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t, "AU", 3)

	uc := env.createUseCase()
	_, err := uc.Execute(context.Background(), dto.CreateBotRequest{Name: "Bot", AirportIATA: "XXX"})
	assert.True(t, apperrors.IsNotFoundError(err))

	// The failed creation left no airline behind.
	assert.Zero(t, env.count(t, &persistence.AirlineModel{}, "name = ?", "Bot"))
}

func TestCreateBot_CountryWithoutAirports(t *testing.T) {
	env := newTestEnv(t)
	env.seedCatalog(t, "AU", 3)

	uc := env.createUseCase()
	_, err := uc.Execute(context.Background(), dto.CreateBotRequest{Name: "Bot", CountryCode: "ZZ"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateBot_DefaultsToUS(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "US", 3)

	uc := env.createUseCase()
	result, err := uc.Execute(ctx, dto.CreateBotRequest{Name: "Default Bot"})
	require.NoError(t, err)
	assert.Equal(t, "US", result.CountryCode)
}
