package persistence

import (
	"context"

	"gorm.io/gorm"

	"airadmin/internal/domain/route"
	"airadmin/internal/shared/db"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// RouteRepository implements route.Repository.
type RouteRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewRouteRepository creates a new route repository.
func NewRouteRepository(gdb *gorm.DB, log logger.Interface) route.Repository {
	return &RouteRepository{db: gdb, logger: log}
}

// DeleteByAirline removes assignments and consumption records before the
// links they reference, keeping the foreign keys satisfied at every step.
func (r *RouteRepository) DeleteByAirline(ctx context.Context, airlineID uint) (int64, error) {
	g := db.GetTxFromContext(ctx, r.db)

	linkIDs := g.Session(&gorm.Session{NewDB: true}).
		Model(&LinkModel{}).
		Select("id").
		Where("airline = ?", airlineID)

	if err := g.Where("link IN (?)", linkIDs).Delete(&LinkAssignmentModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete link assignments", "airline_id", airlineID, "error", err)
		return 0, apperrors.NewStorageError("failed to delete link assignments", err)
	}

	if err := g.Where("link IN (?)", linkIDs).Delete(&LinkConsumptionModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete link consumptions", "airline_id", airlineID, "error", err)
		return 0, apperrors.NewStorageError("failed to delete link consumptions", err)
	}

	result := g.Where("airline = ?", airlineID).Delete(&LinkModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete links", "airline_id", airlineID, "error", result.Error)
		return 0, apperrors.NewStorageError("failed to delete links", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *RouteRepository) CountByAirline(ctx context.Context, airlineID uint) (int64, error) {
	var count int64

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Model(&LinkModel{}).Where("airline = ?", airlineID).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count links", "airline_id", airlineID, "error", err)
		return 0, apperrors.NewStorageError("failed to count links", err)
	}
	return count, nil
}
