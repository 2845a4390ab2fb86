package usecases

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"airadmin/internal/application/bot/services"
	"airadmin/internal/domain/airline"
	"airadmin/internal/domain/catalog"
	"airadmin/internal/domain/fleet"
	"airadmin/internal/domain/route"
	"airadmin/internal/infrastructure/persistence"
	"airadmin/internal/shared/db"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// testEnv wires the full stack over an in-memory database. sqlite does not
// accept read-committed, so the transaction manager runs with the driver
// default isolation.
type testEnv struct {
	gdb         *gorm.DB
	tx          *db.TransactionManager
	airlines    airline.Repository
	routes      route.Repository
	fleet       fleet.Repository
	airports    catalog.AirportRepository
	cycles      catalog.CycleRepository
	resolver    *services.HomeResolver
	provisioner *services.FleetProvisioner

	startingBalance decimal.Decimal
	serviceQuality  float64
}

func newTestEnv(t *testing.T) *testEnv {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&persistence.AirlineModel{},
		&persistence.AirlineInfoModel{},
		&persistence.AirlineBaseModel{},
		&persistence.AirplaneModel{},
		&persistence.AirplaneConfigurationModel{},
		&persistence.LinkModel{},
		&persistence.LinkAssignmentModel{},
		&persistence.LinkConsumptionModel{},
		&persistence.AirlineAppealModel{},
		&persistence.AirportModel{},
		&persistence.AircraftTypeModel{},
		&persistence.CycleModel{},
	)
	require.NoError(t, err)

	log := logger.NewLogger()
	env := &testEnv{
		gdb:             gdb,
		tx:              db.NewTransactionManagerWithOptions(gdb, nil, 30*time.Second),
		airlines:        persistence.NewAirlineRepository(gdb, log),
		routes:          persistence.NewRouteRepository(gdb, log),
		fleet:           persistence.NewFleetRepository(gdb, log),
		airports:        persistence.NewAirportRepository(gdb, log),
		cycles:          persistence.NewCycleRepository(gdb, log),
		startingBalance: decimal.NewFromInt(200000),
		serviceQuality:  50,
	}

	countries := services.NewCountryMap(map[string]string{"Qantas": "AU", "Air France": "FR"})
	env.resolver = services.NewHomeResolver(env.airports, countries, log)
	env.provisioner = services.NewFleetProvisioner(
		persistence.NewModelRepository(gdb, log), env.fleet,
		40_000_000, 5, rand.New(rand.NewSource(1)), log)

	return env
}

func (e *testEnv) resetUseCase(fleetRepo fleet.Repository) *ResetBotUseCase {
	log := logger.NewLogger()
	provisioner := services.NewFleetProvisioner(
		persistence.NewModelRepository(e.gdb, log), fleetRepo,
		40_000_000, 5, rand.New(rand.NewSource(1)), log)
	return NewResetBotUseCase(e.tx, e.airlines, e.routes, fleetRepo, e.cycles,
		e.resolver, provisioner, e.startingBalance, e.serviceQuality, log)
}

func (e *testEnv) seedBot(t *testing.T, name, country string) uint {
	model := persistence.AirlineModel{Name: name, AirlineType: int(airline.TypeBot)}
	require.NoError(t, e.gdb.Create(&model).Error)
	require.NoError(t, e.gdb.Create(&persistence.AirlineInfoModel{
		Airline:        model.ID,
		Balance:        decimal.NewFromInt(9_999_999),
		Reputation:     77,
		ServiceQuality: 88,
		CountryCode:    country,
		Initialized:    true,
	}).Error)
	return model.ID
}

func (e *testEnv) seedDependents(t *testing.T, airlineID uint, links, airplanes, bases int) {
	for i := 0; i < links; i++ {
		link := persistence.LinkModel{Airline: airlineID, FromAirport: 1, ToAirport: 2}
		require.NoError(t, e.gdb.Create(&link).Error)
		require.NoError(t, e.gdb.Create(&persistence.LinkAssignmentModel{Link: link.ID}).Error)
		require.NoError(t, e.gdb.Create(&persistence.LinkConsumptionModel{Link: link.ID, Cycle: 100}).Error)
	}
	for i := 0; i < airplanes; i++ {
		plane := persistence.AirplaneModel{Owner: airlineID, Model: 1, Condition: 60}
		require.NoError(t, e.gdb.Create(&plane).Error)
		require.NoError(t, e.gdb.Create(&persistence.AirplaneConfigurationModel{Airplane: plane.ID}).Error)
	}
	for i := 0; i < bases; i++ {
		require.NoError(t, e.gdb.Create(&persistence.AirlineBaseModel{
			Airport: uint(100 + i), Airline: airlineID, Scale: 3,
		}).Error)
	}
	require.NoError(t, e.gdb.Create(&persistence.AirlineAppealModel{
		Airport: 1, Airline: airlineID, Loyalty: 50, Awareness: 50,
	}).Error)
}

func (e *testEnv) seedCatalog(t *testing.T, airportCountry string, modelCount int) uint {
	airport := persistence.AirportModel{IATA: "HUB", CountryCode: airportCountry, Size: 8, Population: 5_000_000}
	require.NoError(t, e.gdb.Create(&airport).Error)
	for i := 1; i <= modelCount; i++ {
		require.NoError(t, e.gdb.Create(&persistence.AircraftTypeModel{
			Name: "Model", Price: int64(i) * 5_000_000,
		}).Error)
	}
	require.NoError(t, e.gdb.Create(&persistence.CycleModel{Cycle: 130}).Error)
	return airport.ID
}

func (e *testEnv) count(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	var n int64
	q := e.gdb.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestResetBot_FullReset(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	airportID := env.seedCatalog(t, "AU", 6)
	botID := env.seedBot(t, "Qantas", "AU")
	env.seedDependents(t, botID, 3, 2, 2)

	uc := env.resetUseCase(env.fleet)
	summary, err := uc.Execute(ctx, botID)
	require.NoError(t, err)

	assert.Equal(t, botID, summary.AirlineID)
	assert.Equal(t, "Qantas", summary.AirlineName)
	assert.Equal(t, int64(3), summary.RoutesDeleted)
	assert.Equal(t, int64(2), summary.AircraftDeleted)
	assert.Equal(t, int64(2), summary.BasesDeleted)
	assert.Equal(t, 5, summary.AircraftAdded)
	assert.True(t, summary.HQCreated)

	// Profile rewound to starting values.
	profile, err := env.airlines.GetProfile(ctx, botID)
	require.NoError(t, err)
	assert.True(t, profile.Balance.Equal(decimal.NewFromInt(200000)))
	assert.Zero(t, profile.Reputation)
	assert.Equal(t, float64(50), profile.ServiceQuality)
	assert.Equal(t, "AU", profile.CountryCode)

	// No orphaned dependents anywhere.
	assert.Zero(t, env.count(t, &persistence.LinkModel{}, ""))
	assert.Zero(t, env.count(t, &persistence.LinkAssignmentModel{}, ""))
	assert.Zero(t, env.count(t, &persistence.LinkConsumptionModel{}, ""))
	assert.Zero(t, env.count(t, &persistence.AirplaneConfigurationModel{}, ""))
	assert.Zero(t, env.count(t, &persistence.AirlineAppealModel{}, ""))

	// One fresh HQ base at the country's largest airport.
	var base persistence.AirlineBaseModel
	require.NoError(t, env.gdb.Where("airline = ?", botID).First(&base).Error)
	assert.Equal(t, airportID, base.Airport)
	assert.True(t, base.Headquarter)
	assert.Equal(t, 1, base.Scale)
	assert.Equal(t, 130, base.FoundedCycle)

	// Five factory-fresh airplanes homed at the HQ.
	assert.Equal(t, int64(5), env.count(t, &persistence.AirplaneModel{}, "owner = ?", botID))
	var planes []persistence.AirplaneModel
	require.NoError(t, env.gdb.Where("owner = ?", botID).Find(&planes).Error)
	for _, p := range planes {
		assert.Equal(t, float64(100), p.Condition)
		assert.False(t, p.IsSold)
		require.NotNil(t, p.Home)
		assert.Equal(t, airportID, *p.Home)
		assert.Equal(t, 130, p.ConstructedCycle)
	}
}

func TestResetBot_UnknownAirline(t *testing.T) {
	env := newTestEnv(t)
	uc := env.resetUseCase(env.fleet)

	_, err := uc.Execute(context.Background(), 9999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestResetBot_RefusesNonBot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 3)
	human := persistence.AirlineModel{Name: "Human Airways", AirlineType: int(airline.TypeRegular)}
	require.NoError(t, env.gdb.Create(&human).Error)
	env.seedDependents(t, human.ID, 2, 1, 1)

	uc := env.resetUseCase(env.fleet)
	_, err := uc.Execute(ctx, human.ID)
	assert.True(t, apperrors.IsInvalidAirlineTypeError(err))

	// Nothing was touched.
	assert.Equal(t, int64(2), env.count(t, &persistence.LinkModel{}, "airline = ?", human.ID))
	assert.Equal(t, int64(1), env.count(t, &persistence.AirplaneModel{}, "owner = ?", human.ID))
}

func TestResetBot_MissingProfile(t *testing.T) {
	env := newTestEnv(t)

	model := persistence.AirlineModel{Name: "Profileless Bot", AirlineType: int(airline.TypeBot)}
	require.NoError(t, env.gdb.Create(&model).Error)

	uc := env.resetUseCase(env.fleet)
	_, err := uc.Execute(context.Background(), model.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestResetBot_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 6)
	botID := env.seedBot(t, "Qantas", "AU")
	env.seedDependents(t, botID, 3, 2, 2)

	uc := env.resetUseCase(env.fleet)
	_, err := uc.Execute(ctx, botID)
	require.NoError(t, err)

	// The second reset tears down what the first one built.
	second, err := uc.Execute(ctx, botID)
	require.NoError(t, err)
	assert.Zero(t, second.RoutesDeleted)
	assert.Equal(t, int64(5), second.AircraftDeleted)
	assert.Equal(t, int64(1), second.BasesDeleted)
	assert.Equal(t, 5, second.AircraftAdded)
	assert.True(t, second.HQCreated)

	assert.Equal(t, int64(1), env.count(t, &persistence.AirlineBaseModel{}, "airline = ?", botID))
	assert.Equal(t, int64(5), env.count(t, &persistence.AirplaneModel{}, "owner = ?", botID))
}

func TestResetBot_NoResolvableHome(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 4)
	botID := env.seedBot(t, "Mystery Air", "")
	env.seedDependents(t, botID, 1, 1, 1)

	uc := env.resetUseCase(env.fleet)
	summary, err := uc.Execute(ctx, botID)
	require.NoError(t, err)

	assert.False(t, summary.HQCreated)
	assert.Equal(t, 4, summary.AircraftAdded, "fleet is still provisioned, just without a home")

	assert.Zero(t, env.count(t, &persistence.AirlineBaseModel{}, "airline = ?", botID))

	var planes []persistence.AirplaneModel
	require.NoError(t, env.gdb.Where("owner = ?", botID).Find(&planes).Error)
	for _, p := range planes {
		assert.Nil(t, p.Home)
	}
}

// failingFleetRepo fails the teardown midway to exercise the rollback.
type failingFleetRepo struct {
	fleet.Repository
}

func (f *failingFleetRepo) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	return 0, apperrors.NewStorageError("disk on fire", nil)
}

func TestResetBot_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 3)
	botID := env.seedBot(t, "Qantas", "AU")
	env.seedDependents(t, botID, 3, 2, 2)

	uc := env.resetUseCase(&failingFleetRepo{env.fleet})
	_, err := uc.Execute(ctx, botID)
	require.Error(t, err)
	assert.True(t, apperrors.IsStorageError(err))

	// The routes were deleted inside the transaction and must be back.
	assert.Equal(t, int64(3), env.count(t, &persistence.LinkModel{}, "airline = ?", botID))
	assert.Equal(t, int64(3), env.count(t, &persistence.LinkAssignmentModel{}, ""))
	assert.Equal(t, int64(2), env.count(t, &persistence.AirlineBaseModel{}, "airline = ?", botID))

	profile, err := env.airlines.GetProfile(ctx, botID)
	require.NoError(t, err)
	assert.True(t, profile.Balance.Equal(decimal.NewFromInt(9_999_999)), "profile untouched after rollback")
	assert.Equal(t, float64(77), profile.Reputation)
}

func TestResetAllBots_PartialSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedCatalog(t, "AU", 3)
	goodID := env.seedBot(t, "Qantas", "AU")
	env.seedDependents(t, goodID, 2, 1, 1)

	// This bot has no airline_info row, so its reset fails.
	broken := persistence.AirlineModel{Name: "Broken Bot", AirlineType: int(airline.TypeBot)}
	require.NoError(t, env.gdb.Create(&broken).Error)

	resetBot := env.resetUseCase(env.fleet)
	uc := NewResetAllBotsUseCase(env.airlines, resetBot, logger.NewLogger())

	result, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, result.Results, 2)
	assert.Equal(t, []string{"Qantas"}, result.NamesSucceeded)

	for _, outcome := range result.Results {
		switch outcome.AirlineID {
		case goodID:
			assert.True(t, outcome.Success)
			require.NotNil(t, outcome.Summary)
			assert.Equal(t, int64(2), outcome.Summary.RoutesDeleted)
		case broken.ID:
			assert.False(t, outcome.Success)
			assert.NotEmpty(t, outcome.Error)
			assert.Nil(t, outcome.Summary)
		default:
			t.Fatalf("unexpected airline %d in results", outcome.AirlineID)
		}
	}

	// The good bot's reset stayed committed despite the other failure.
	assert.Zero(t, env.count(t, &persistence.LinkModel{}, "airline = ?", goodID))
	assert.Equal(t, int64(3), env.count(t, &persistence.AirplaneModel{}, "owner = ?", goodID))
}

func TestResetAllBots_NoBots(t *testing.T) {
	env := newTestEnv(t)

	resetBot := env.resetUseCase(env.fleet)
	uc := NewResetAllBotsUseCase(env.airlines, resetBot, logger.NewLogger())

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Results)
	assert.Empty(t, result.NamesSucceeded)
}
