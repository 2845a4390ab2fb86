package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"airadmin/internal/domain/airline"
	"airadmin/internal/shared/db"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// AirlineRepository implements airline.Repository on the simulation schema.
type AirlineRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAirlineRepository creates a new airline repository.
func NewAirlineRepository(gdb *gorm.DB, log logger.Interface) airline.Repository {
	return &AirlineRepository{db: gdb, logger: log}
}

func (r *AirlineRepository) GetByID(ctx context.Context, id uint) (*airline.Airline, error) {
	var model AirlineModel

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get airline", "id", id, "error", err)
		return nil, apperrors.NewStorageError("failed to get airline", err)
	}

	return &airline.Airline{
		ID:   model.ID,
		Name: model.Name,
		Type: airline.Type(model.AirlineType),
	}, nil
}

func (r *AirlineRepository) GetProfile(ctx context.Context, airlineID uint) (*airline.FinancialProfile, error) {
	var model AirlineInfoModel

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Where("airline = ?", airlineID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get airline profile", "airline_id", airlineID, "error", err)
		return nil, apperrors.NewStorageError("failed to get airline profile", err)
	}

	return &airline.FinancialProfile{
		AirlineID:            model.Airline,
		Balance:              model.Balance,
		Reputation:           model.Reputation,
		ServiceQuality:       model.ServiceQuality,
		TargetServiceQuality: model.TargetServiceQuality,
		CountryCode:          model.CountryCode,
		Initialized:          model.Initialized,
	}, nil
}

func (r *AirlineRepository) ListByType(ctx context.Context, t airline.Type) ([]*airline.Airline, error) {
	var models []AirlineModel

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Where("airline_type = ?", int(t)).Order("name").Find(&models).Error; err != nil {
		r.logger.Errorw("failed to list airlines", "airline_type", int(t), "error", err)
		return nil, apperrors.NewStorageError("failed to list airlines", err)
	}

	airlines := make([]*airline.Airline, 0, len(models))
	for _, m := range models {
		airlines = append(airlines, &airline.Airline{
			ID:   m.ID,
			Name: m.Name,
			Type: airline.Type(m.AirlineType),
		})
	}
	return airlines, nil
}

// statsRow is the scan target for the joined listing query.
type statsRow struct {
	ID             uint            `gorm:"column:id"`
	Name           string          `gorm:"column:name"`
	AirlineType    int             `gorm:"column:airline_type"`
	Balance        decimal.Decimal `gorm:"column:balance"`
	Reputation     float64         `gorm:"column:reputation"`
	ServiceQuality float64         `gorm:"column:service_quality"`
	RouteCount     int64           `gorm:"column:route_count"`
	AircraftCount  int64           `gorm:"column:aircraft_count"`
	BaseCount      int64           `gorm:"column:base_count"`
}

func (r *AirlineRepository) ListStatsByType(ctx context.Context, t airline.Type) ([]*airline.Stats, error) {
	var rows []statsRow

	g := db.GetTxFromContext(ctx, r.db)
	err := g.Table("airline AS a").
		Select(`a.id, a.name, a.airline_type,
			COALESCE(ai.balance, 0) AS balance,
			COALESCE(ai.reputation, 0) AS reputation,
			COALESCE(ai.service_quality, 0) AS service_quality,
			(SELECT COUNT(*) FROM link WHERE link.airline = a.id) AS route_count,
			(SELECT COUNT(*) FROM airplane WHERE airplane.owner = a.id) AS aircraft_count,
			(SELECT COUNT(*) FROM airline_base WHERE airline_base.airline = a.id) AS base_count`).
		Joins("LEFT JOIN airline_info ai ON ai.airline = a.id").
		Where("a.airline_type = ?", int(t)).
		Order("a.name").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to list airline stats", "airline_type", int(t), "error", err)
		return nil, apperrors.NewStorageError("failed to list airline stats", err)
	}

	stats := make([]*airline.Stats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &airline.Stats{
			ID:             row.ID,
			Name:           row.Name,
			Type:           airline.Type(row.AirlineType),
			Balance:        row.Balance,
			Reputation:     row.Reputation,
			ServiceQuality: row.ServiceQuality,
			RouteCount:     row.RouteCount,
			AircraftCount:  row.AircraftCount,
			BaseCount:      row.BaseCount,
		})
	}
	return stats, nil
}

func (r *AirlineRepository) Create(ctx context.Context, a *airline.Airline) error {
	model := AirlineModel{
		Name:        a.Name,
		AirlineType: int(a.Type),
	}

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Create(&model).Error; err != nil {
		r.logger.Errorw("failed to create airline", "name", a.Name, "error", err)
		return apperrors.NewStorageError("failed to create airline", err)
	}

	a.ID = model.ID
	return nil
}

func (r *AirlineRepository) CreateProfile(ctx context.Context, p *airline.FinancialProfile) error {
	model := AirlineInfoModel{
		Airline:              p.AirlineID,
		Balance:              p.Balance,
		Reputation:           p.Reputation,
		ServiceQuality:       p.ServiceQuality,
		TargetServiceQuality: p.TargetServiceQuality,
		CountryCode:          p.CountryCode,
		Initialized:          p.Initialized,
	}

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Create(&model).Error; err != nil {
		r.logger.Errorw("failed to create airline profile", "airline_id", p.AirlineID, "error", err)
		return apperrors.NewStorageError("failed to create airline profile", err)
	}
	return nil
}

func (r *AirlineRepository) ResetProfile(ctx context.Context, airlineID uint, balance decimal.Decimal, reputation, serviceQuality float64, countryCode string) error {
	updates := map[string]interface{}{
		"balance":         balance,
		"reputation":      reputation,
		"service_quality": serviceQuality,
	}
	if countryCode != "" {
		updates["country_code"] = countryCode
	}

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Model(&AirlineInfoModel{}).Where("airline = ?", airlineID).Updates(updates).Error; err != nil {
		r.logger.Errorw("failed to reset airline profile", "airline_id", airlineID, "error", err)
		return apperrors.NewStorageError("failed to reset airline profile", err)
	}
	return nil
}

func (r *AirlineRepository) DeleteBases(ctx context.Context, airlineID uint) (int64, error) {
	g := db.GetTxFromContext(ctx, r.db)

	result := g.Where("airline = ?", airlineID).Delete(&AirlineBaseModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete airline bases", "airline_id", airlineID, "error", result.Error)
		return 0, apperrors.NewStorageError("failed to delete airline bases", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *AirlineRepository) InsertBase(ctx context.Context, b *airline.Base) error {
	model := AirlineBaseModel{
		Airport:      b.AirportID,
		Airline:      b.AirlineID,
		Scale:        b.Scale,
		FoundedCycle: b.FoundedCycle,
		Headquarter:  b.Headquarter,
		Country:      b.CountryCode,
	}

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Create(&model).Error; err != nil {
		r.logger.Errorw("failed to insert base", "airline_id", b.AirlineID, "airport_id", b.AirportID, "error", err)
		return apperrors.NewStorageError("failed to insert base", err)
	}
	return nil
}

func (r *AirlineRepository) DeleteAppeal(ctx context.Context, airlineID uint) error {
	g := db.GetTxFromContext(ctx, r.db)

	if err := g.Where("airline = ?", airlineID).Delete(&AirlineAppealModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete airline appeal", "airline_id", airlineID, "error", err)
		return apperrors.NewStorageError("failed to delete airline appeal", err)
	}
	return nil
}
