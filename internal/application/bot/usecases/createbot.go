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
	"airadmin/internal/shared/db"
	"airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// defaultBotCountry is used when a create request names neither an airport
// nor a country.
const defaultBotCountry = "US"

// CreateBotUseCase creates a fresh bot airline: identity row, financial
// profile at starting values, HQ base, and starter fleet, all in one
// transaction. Unlike reset, creation requires a resolvable home airport.
type CreateBotUseCase struct {
	tx          *db.TransactionManager
	airlines    airline.Repository
	airports    catalog.AirportRepository
	cycles      catalog.CycleRepository
	provisioner *services.FleetProvisioner

	startingBalance decimal.Decimal
	serviceQuality  float64
	logger          logger.Interface
}

// NewCreateBotUseCase creates a create-bot use case.
func NewCreateBotUseCase(
	tx *db.TransactionManager,
	airlines airline.Repository,
	airports catalog.AirportRepository,
	cycles catalog.CycleRepository,
	provisioner *services.FleetProvisioner,
	startingBalance decimal.Decimal,
	serviceQuality float64,
	log logger.Interface,
) *CreateBotUseCase {
	return &CreateBotUseCase{
		tx:              tx,
		airlines:        airlines,
		airports:        airports,
		cycles:          cycles,
		provisioner:     provisioner,
		startingBalance: startingBalance,
		serviceQuality:  serviceQuality,
		logger:          log,
	}
}

// Execute creates the bot. The airport hint takes precedence over the
// country code; the airport's own country wins in that case.
func (uc *CreateBotUseCase) Execute(ctx context.Context, request dto.CreateBotRequest) (*dto.CreateBotResult, error) {
	var result dto.CreateBotResult

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		home, countryCode, err := uc.resolveHome(ctx, request)
		if err != nil {
			return err
		}

		cycle, err := uc.cycles.Current(ctx)
		if err != nil {
			return err
		}

		a := &airline.Airline{Name: request.Name, Type: airline.TypeBot}
		if err := uc.airlines.Create(ctx, a); err != nil {
			return err
		}

		profile, err := airline.NewFinancialProfile(a.ID, uc.startingBalance, 0, uc.serviceQuality, countryCode)
		if err != nil {
			return err
		}
		if err := uc.airlines.CreateProfile(ctx, profile); err != nil {
			return err
		}

		base, err := airline.NewHeadquarterBase(a.ID, home.ID, countryCode, cycle)
		if err != nil {
			return err
		}
		if err := uc.airlines.InsertBase(ctx, base); err != nil {
			return err
		}

		aircraftAdded, err := uc.provisioner.Provision(ctx, a.ID, home, cycle)
		if err != nil {
			return err
		}

		result = dto.CreateBotResult{
			AirlineID:     a.ID,
			AirlineName:   a.Name,
			CountryCode:   countryCode,
			AircraftAdded: aircraftAdded,
			HQCreated:     true,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("bot airline created",
		"airline_id", result.AirlineID,
		"airline_name", result.AirlineName,
		"country_code", result.CountryCode,
		"aircraft_added", result.AircraftAdded)

	return &result, nil
}

func (uc *CreateBotUseCase) resolveHome(ctx context.Context, request dto.CreateBotRequest) (*catalog.Airport, string, error) {
	if request.AirportIATA != "" {
		airport, err := uc.airports.GetByIATA(ctx, request.AirportIATA)
		if err != nil {
			return nil, "", err
		}
		if airport == nil {
			return nil, "", errors.NewNotFoundError(fmt.Sprintf("airport %s not found", request.AirportIATA))
		}
		return airport, airport.CountryCode, nil
	}

	countryCode := request.CountryCode
	if countryCode == "" {
		countryCode = defaultBotCountry
	}

	airport, err := uc.airports.LargestByCountry(ctx, countryCode)
	if err != nil {
		if stderrors.Is(err, catalog.ErrNoSuitableAirport) {
			return nil, "", errors.NewNotFoundError(fmt.Sprintf("no airport found in country %s", countryCode))
		}
		return nil, "", err
	}
	return airport, countryCode, nil
}
