package usecases

import (
	"context"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/domain/airline"
	"airadmin/internal/shared/logger"
)

// GetBotsSummaryUseCase aggregates the bot population: totals and the
// personality distribution.
type GetBotsSummaryUseCase struct {
	airlines airline.Repository
	logger   logger.Interface
}

// NewGetBotsSummaryUseCase creates a summary use case.
func NewGetBotsSummaryUseCase(airlines airline.Repository, log logger.Interface) *GetBotsSummaryUseCase {
	return &GetBotsSummaryUseCase{airlines: airlines, logger: log}
}

// Execute computes the summary from a single stats query.
func (uc *GetBotsSummaryUseCase) Execute(ctx context.Context) (*dto.BotsSummary, error) {
	stats, err := uc.airlines.ListStatsByType(ctx, airline.TypeBot)
	if err != nil {
		return nil, err
	}

	distribution := make(map[string]int64, len(airline.AllPersonalities))
	for _, p := range airline.AllPersonalities {
		distribution[string(p)] = 0
	}

	summary := &dto.BotsSummary{
		TotalBots:               int64(len(stats)),
		PersonalityDistribution: distribution,
	}
	for _, s := range stats {
		summary.TotalRoutes += s.RouteCount
		summary.TotalAircraft += s.AircraftCount
		personality := airline.Classify(s.Balance, s.Reputation, s.ServiceQuality)
		distribution[string(personality)]++
	}

	return summary, nil
}
