package usecases

import (
	"context"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/domain/airline"
	"airadmin/internal/shared/logger"
)

// ResetAllBotsUseCase resets every bot airline. Each airline commits in its
// own transaction: a failure on one bot is recorded and does not roll back
// or stop the others.
type ResetAllBotsUseCase struct {
	airlines airline.Repository
	resetBot *ResetBotUseCase
	logger   logger.Interface
}

// NewResetAllBotsUseCase creates a batch reset use case.
func NewResetAllBotsUseCase(airlines airline.Repository, resetBot *ResetBotUseCase, log logger.Interface) *ResetAllBotsUseCase {
	return &ResetAllBotsUseCase{
		airlines: airlines,
		resetBot: resetBot,
		logger:   log,
	}
}

// Execute resets all bot airlines with partial-success semantics.
func (uc *ResetAllBotsUseCase) Execute(ctx context.Context) (*dto.ResetAllResult, error) {
	bots, err := uc.airlines.ListByType(ctx, airline.TypeBot)
	if err != nil {
		return nil, err
	}

	result := &dto.ResetAllResult{
		Results:        make([]dto.ResetOutcome, 0, len(bots)),
		NamesSucceeded: make([]string, 0, len(bots)),
	}

	for _, bot := range bots {
		summary, err := uc.resetBot.Execute(ctx, bot.ID)
		if err != nil {
			uc.logger.Errorw("failed to reset bot airline, continuing with the rest",
				"airline_id", bot.ID, "airline_name", bot.Name, "error", err)
			result.Results = append(result.Results, dto.ResetOutcome{
				AirlineID:   bot.ID,
				AirlineName: bot.Name,
				Success:     false,
				Error:       err.Error(),
			})
			continue
		}

		result.Results = append(result.Results, dto.ResetOutcome{
			AirlineID:   bot.ID,
			AirlineName: bot.Name,
			Success:     true,
			Summary:     summary,
		})
		result.NamesSucceeded = append(result.NamesSucceeded, bot.Name)
	}

	uc.logger.Infow("bot airline batch reset finished",
		"total", len(bots), "succeeded", len(result.NamesSucceeded))

	return result, nil
}
