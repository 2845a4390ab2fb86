package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"airadmin/internal/domain/catalog"
	"airadmin/internal/shared/db"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// AirportRepository implements catalog.AirportRepository over the read-only
// airport table.
type AirportRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAirportRepository creates a new airport repository.
func NewAirportRepository(gdb *gorm.DB, log logger.Interface) catalog.AirportRepository {
	return &AirportRepository{db: gdb, logger: log}
}

// LargestByCountry orders by size, population and id so that retries of the
// same input always pick the same airport.
func (r *AirportRepository) LargestByCountry(ctx context.Context, countryCode string) (*catalog.Airport, error) {
	var model AirportModel

	g := db.GetTxFromContext(ctx, r.db)
	err := g.Where("country_code = ?", countryCode).
		Order("airport_size DESC, population DESC, id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNoSuitableAirport
		}
		r.logger.Errorw("failed to query airports", "country_code", countryCode, "error", err)
		return nil, apperrors.NewStorageError("failed to query airports", err)
	}

	return airportFromModel(&model), nil
}

func (r *AirportRepository) GetByIATA(ctx context.Context, iata string) (*catalog.Airport, error) {
	var model AirportModel

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Where("iata = ?", iata).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get airport", "iata", iata, "error", err)
		return nil, apperrors.NewStorageError("failed to get airport", err)
	}

	return airportFromModel(&model), nil
}

func airportFromModel(m *AirportModel) *catalog.Airport {
	return &catalog.Airport{
		ID:          m.ID,
		IATA:        m.IATA,
		Name:        m.Name,
		City:        m.City,
		CountryCode: m.CountryCode,
		Size:        m.Size,
		Population:  m.Population,
	}
}

// ModelRepository implements catalog.ModelRepository over the read-only
// airplane_model table.
type ModelRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewModelRepository creates a new airplane model repository.
func NewModelRepository(gdb *gorm.DB, log logger.Interface) catalog.ModelRepository {
	return &ModelRepository{db: gdb, logger: log}
}

// ListBelowPrice returns the candidate pool for fleet provisioning, price
// ascending so the pool is deterministic.
func (r *ModelRepository) ListBelowPrice(ctx context.Context, ceiling int64) ([]*catalog.AirplaneModel, error) {
	var models []AircraftTypeModel

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Where("price < ?", ceiling).Order("price ASC").Find(&models).Error; err != nil {
		r.logger.Errorw("failed to list airplane models", "ceiling", ceiling, "error", err)
		return nil, apperrors.NewStorageError("failed to list airplane models", err)
	}

	result := make([]*catalog.AirplaneModel, 0, len(models))
	for _, m := range models {
		result = append(result, &catalog.AirplaneModel{
			ID:    m.ID,
			Name:  m.Name,
			Price: m.Price,
		})
	}
	return result, nil
}

// CycleRepository implements catalog.CycleRepository over the cycle table.
type CycleRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCycleRepository creates a new cycle repository.
func NewCycleRepository(gdb *gorm.DB, log logger.Interface) catalog.CycleRepository {
	return &CycleRepository{db: gdb, logger: log}
}

// Current returns the latest cycle; an empty table reads as cycle zero.
func (r *CycleRepository) Current(ctx context.Context) (int, error) {
	var current *int

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Model(&CycleModel{}).Select("MAX(cycle)").Scan(&current).Error; err != nil {
		r.logger.Errorw("failed to read current cycle", "error", err)
		return 0, apperrors.NewStorageError("failed to read current cycle", err)
	}

	if current == nil {
		return 0, nil
	}
	return *current, nil
}
