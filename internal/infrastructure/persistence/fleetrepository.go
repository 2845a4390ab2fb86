package persistence

import (
	"context"

	"gorm.io/gorm"

	"airadmin/internal/domain/fleet"
	"airadmin/internal/shared/db"
	apperrors "airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// FleetRepository implements fleet.Repository.
type FleetRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewFleetRepository creates a new fleet repository.
func NewFleetRepository(gdb *gorm.DB, log logger.Interface) fleet.Repository {
	return &FleetRepository{db: gdb, logger: log}
}

// DeleteByOwner removes airplane configurations before the airplanes they
// reference.
func (r *FleetRepository) DeleteByOwner(ctx context.Context, ownerID uint) (int64, error) {
	g := db.GetTxFromContext(ctx, r.db)

	airplaneIDs := g.Session(&gorm.Session{NewDB: true}).
		Model(&AirplaneModel{}).
		Select("id").
		Where("owner = ?", ownerID)

	if err := g.Where("airplane IN (?)", airplaneIDs).Delete(&AirplaneConfigurationModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete airplane configurations", "owner_id", ownerID, "error", err)
		return 0, apperrors.NewStorageError("failed to delete airplane configurations", err)
	}

	result := g.Where("owner = ?", ownerID).Delete(&AirplaneModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete airplanes", "owner_id", ownerID, "error", result.Error)
		return 0, apperrors.NewStorageError("failed to delete airplanes", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *FleetRepository) Insert(ctx context.Context, a *fleet.Airplane) error {
	model := AirplaneModel{
		Model:            a.ModelID,
		Owner:            a.OwnerID,
		ConstructedCycle: a.ConstructedCycle,
		PurchasedCycle:   a.PurchasedCycle,
		Condition:        a.Condition,
		DepreciationRate: a.DepreciationRate,
		Value:            a.Value,
		IsSold:           a.IsSold,
		DealerRatio:      a.DealerRatio,
		Home:             a.HomeAirportID,
		PurchaseRate:     a.PurchaseRate,
		Version:          a.Version,
	}

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Create(&model).Error; err != nil {
		r.logger.Errorw("failed to insert airplane", "owner_id", a.OwnerID, "model_id", a.ModelID, "error", err)
		return apperrors.NewStorageError("failed to insert airplane", err)
	}

	a.ID = model.ID
	return nil
}

func (r *FleetRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var count int64

	g := db.GetTxFromContext(ctx, r.db)
	if err := g.Model(&AirplaneModel{}).Where("owner = ? AND is_sold = ?", ownerID, false).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count airplanes", "owner_id", ownerID, "error", err)
		return 0, apperrors.NewStorageError("failed to count airplanes", err)
	}
	return count, nil
}
