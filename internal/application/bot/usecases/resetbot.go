// Package usecases contains the bot lifecycle orchestrations. Each
// single-airline operation runs inside one transaction owned here; the
// repositories never commit on their own.
package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/application/bot/services"
	"airadmin/internal/domain/airline"
	"airadmin/internal/domain/catalog"
	"airadmin/internal/domain/fleet"
	"airadmin/internal/domain/route"
	"airadmin/internal/shared/db"
	"airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// ResetBotUseCase bankrupts a single bot airline: dependents are torn down
// in foreign-key order, the profile rewound to starting values, and a fresh
// HQ base plus starter fleet provisioned. All of it commits atomically or
// not at all.
type ResetBotUseCase struct {
	tx          *db.TransactionManager
	airlines    airline.Repository
	routes      route.Repository
	fleet       fleet.Repository
	cycles      catalog.CycleRepository
	resolver    *services.HomeResolver
	provisioner *services.FleetProvisioner

	startingBalance decimal.Decimal
	serviceQuality  float64
	logger          logger.Interface
}

// NewResetBotUseCase creates a reset use case.
func NewResetBotUseCase(
	tx *db.TransactionManager,
	airlines airline.Repository,
	routes route.Repository,
	fleetRepo fleet.Repository,
	cycles catalog.CycleRepository,
	resolver *services.HomeResolver,
	provisioner *services.FleetProvisioner,
	startingBalance decimal.Decimal,
	serviceQuality float64,
	log logger.Interface,
) *ResetBotUseCase {
	return &ResetBotUseCase{
		tx:              tx,
		airlines:        airlines,
		routes:          routes,
		fleet:           fleetRepo,
		cycles:          cycles,
		resolver:        resolver,
		provisioner:     provisioner,
		startingBalance: startingBalance,
		serviceQuality:  serviceQuality,
		logger:          log,
	}
}

// Execute resets one bot airline. Refuses non-bot airlines. An
// unresolvable home location is not a failure: the reset completes without
// a base.
func (uc *ResetBotUseCase) Execute(ctx context.Context, airlineID uint) (*dto.ResetSummary, error) {
	var summary dto.ResetSummary

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		a, err := uc.airlines.GetByID(ctx, airlineID)
		if err != nil {
			return err
		}
		if a == nil {
			return errors.NewNotFoundError(fmt.Sprintf("airline %d not found", airlineID))
		}
		if !a.IsBot() {
			return errors.NewInvalidAirlineTypeError(
				fmt.Sprintf("airline %q is not a bot airline", a.Name))
		}

		profile, err := uc.airlines.GetProfile(ctx, airlineID)
		if err != nil {
			return err
		}
		if profile == nil {
			return errors.NewNotFoundError(fmt.Sprintf("airline %d has no financial profile", airlineID))
		}

		cycle, err := uc.cycles.Current(ctx)
		if err != nil {
			return err
		}

		home, countryCode, err := uc.resolver.Resolve(ctx, profile.CountryCode, a.Name)
		if err != nil && !stderrors.Is(err, catalog.ErrNoSuitableAirport) {
			return err
		}
		if home == nil {
			uc.logger.Warnw("no home airport resolvable, resetting without a base",
				"airline_id", airlineID, "airline_name", a.Name)
		}

		// Teardown in foreign-key order: route dependents, routes,
		// airplane configurations, airplanes, bases, appeal.
		routesDeleted, err := uc.routes.DeleteByAirline(ctx, airlineID)
		if err != nil {
			return err
		}
		aircraftDeleted, err := uc.fleet.DeleteByOwner(ctx, airlineID)
		if err != nil {
			return err
		}
		basesDeleted, err := uc.airlines.DeleteBases(ctx, airlineID)
		if err != nil {
			return err
		}
		if err := uc.airlines.DeleteAppeal(ctx, airlineID); err != nil {
			return err
		}

		if err := uc.airlines.ResetProfile(ctx, airlineID, uc.startingBalance, 0, uc.serviceQuality, countryCode); err != nil {
			return err
		}

		hqCreated := false
		if home != nil {
			base, err := airline.NewHeadquarterBase(airlineID, home.ID, home.CountryCode, cycle)
			if err != nil {
				return err
			}
			if err := uc.airlines.InsertBase(ctx, base); err != nil {
				return err
			}
			hqCreated = true
		}

		aircraftAdded, err := uc.provisioner.Provision(ctx, airlineID, home, cycle)
		if err != nil {
			return err
		}

		summary = dto.ResetSummary{
			AirlineID:       airlineID,
			AirlineName:     a.Name,
			RoutesDeleted:   routesDeleted,
			AircraftDeleted: aircraftDeleted,
			BasesDeleted:    basesDeleted,
			AircraftAdded:   aircraftAdded,
			HQCreated:       hqCreated,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("bot airline reset",
		"airline_id", summary.AirlineID,
		"airline_name", summary.AirlineName,
		"routes_deleted", summary.RoutesDeleted,
		"aircraft_deleted", summary.AircraftDeleted,
		"bases_deleted", summary.BasesDeleted,
		"aircraft_added", summary.AircraftAdded,
		"hq_created", summary.HQCreated)

	return &summary, nil
}
