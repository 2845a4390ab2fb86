package usecases

import (
	"context"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/domain/airline"
	"airadmin/internal/shared/logger"
)

// ListBotsUseCase returns every bot airline with its derived personality
// and dependent-row counts, for the reporting layer.
type ListBotsUseCase struct {
	airlines airline.Repository
	logger   logger.Interface
}

// NewListBotsUseCase creates a list-bots use case.
func NewListBotsUseCase(airlines airline.Repository, log logger.Interface) *ListBotsUseCase {
	return &ListBotsUseCase{airlines: airlines, logger: log}
}

// Execute lists all bot airlines ordered by name.
func (uc *ListBotsUseCase) Execute(ctx context.Context) ([]dto.BotView, error) {
	stats, err := uc.airlines.ListStatsByType(ctx, airline.TypeBot)
	if err != nil {
		return nil, err
	}

	views := make([]dto.BotView, 0, len(stats))
	for _, s := range stats {
		views = append(views, dto.BotView{
			ID:             s.ID,
			Name:           s.Name,
			Balance:        s.Balance.String(),
			Reputation:     s.Reputation,
			ServiceQuality: s.ServiceQuality,
			Personality:    string(airline.Classify(s.Balance, s.Reputation, s.ServiceQuality)),
			RouteCount:     s.RouteCount,
			AircraftCount:  s.AircraftCount,
			BaseCount:      s.BaseCount,
		})
	}
	return views, nil
}
