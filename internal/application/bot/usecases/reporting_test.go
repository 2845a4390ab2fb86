package usecases

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airadmin/internal/domain/airline"
	"airadmin/internal/infrastructure/persistence"
	"airadmin/internal/shared/logger"
)

func seedStatsBot(t *testing.T, env *testEnv, name string, balance int64, reputation, serviceQuality float64) uint {
	model := persistence.AirlineModel{Name: name, AirlineType: int(airline.TypeBot)}
	require.NoError(t, env.gdb.Create(&model).Error)
	require.NoError(t, env.gdb.Create(&persistence.AirlineInfoModel{
		Airline:        model.ID,
		Balance:        decimal.NewFromInt(balance),
		Reputation:     reputation,
		ServiceQuality: serviceQuality,
		Initialized:    true,
	}).Error)
	return model.ID
}

func TestListBots(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	premium := seedStatsBot(t, env, "Premium Air", 0, 0, 80)
	seedStatsBot(t, env, "Balanced Air", 0, 50, 50)
	require.NoError(t, env.gdb.Create(&persistence.LinkModel{Airline: premium, FromAirport: 1, ToAirport: 2}).Error)

	uc := NewListBotsUseCase(env.airlines, logger.NewLogger())
	views, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// Ordered by name.
	assert.Equal(t, "Balanced Air", views[0].Name)
	assert.Equal(t, string(airline.PersonalityBalanced), views[0].Personality)

	assert.Equal(t, "Premium Air", views[1].Name)
	assert.Equal(t, string(airline.PersonalityPremium), views[1].Personality)
	assert.Equal(t, "0", views[1].Balance)
	assert.Equal(t, int64(1), views[1].RouteCount)
}

func TestGetBotsSummary(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := seedStatsBot(t, env, "Premium Air", 0, 0, 80)
	b := seedStatsBot(t, env, "Aggressive Air", 150_000_000, 50, 50)
	seedStatsBot(t, env, "Balanced Air", 0, 50, 50)

	require.NoError(t, env.gdb.Create(&persistence.LinkModel{Airline: a, FromAirport: 1, ToAirport: 2}).Error)
	require.NoError(t, env.gdb.Create(&persistence.LinkModel{Airline: b, FromAirport: 1, ToAirport: 2}).Error)
	require.NoError(t, env.gdb.Create(&persistence.AirplaneModel{Owner: b, Model: 1}).Error)

	uc := NewGetBotsSummaryUseCase(env.airlines, logger.NewLogger())
	summary, err := uc.Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalBots)
	assert.Equal(t, int64(2), summary.TotalRoutes)
	assert.Equal(t, int64(1), summary.TotalAircraft)

	// Every personality has a bucket, even when empty.
	assert.Len(t, summary.PersonalityDistribution, len(airline.AllPersonalities))
	assert.Equal(t, int64(1), summary.PersonalityDistribution[string(airline.PersonalityPremium)])
	assert.Equal(t, int64(1), summary.PersonalityDistribution[string(airline.PersonalityAggressive)])
	assert.Equal(t, int64(1), summary.PersonalityDistribution[string(airline.PersonalityBalanced)])
	assert.Equal(t, int64(0), summary.PersonalityDistribution[string(airline.PersonalityBudget)])
}

func TestGetCycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("empty clock", func(t *testing.T) {
		uc := NewGetCycleUseCase(env.cycles)
		info, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Zero(t, info.Cycle)
		assert.Equal(t, 1, info.Week)
		assert.Equal(t, 1, info.Year)
	})

	t.Run("derived week and year", func(t *testing.T) {
		require.NoError(t, env.gdb.Create(&persistence.CycleModel{Cycle: 130}).Error)

		uc := NewGetCycleUseCase(env.cycles)
		info, err := uc.Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, 130, info.Cycle)
		assert.Equal(t, 27, info.Week)
		assert.Equal(t, 3, info.Year)
	})
}
