package usecases

import (
	"context"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/domain/catalog"
)

// weeksPerYear is the simulation calendar: one cycle is one week.
const weeksPerYear = 52

// GetCycleUseCase reads the simulation clock.
type GetCycleUseCase struct {
	cycles catalog.CycleRepository
}

// NewGetCycleUseCase creates a cycle use case.
func NewGetCycleUseCase(cycles catalog.CycleRepository) *GetCycleUseCase {
	return &GetCycleUseCase{cycles: cycles}
}

// Execute returns the current cycle with its derived week and year.
func (uc *GetCycleUseCase) Execute(ctx context.Context) (*dto.CycleInfo, error) {
	cycle, err := uc.cycles.Current(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CycleInfo{
		Cycle: cycle,
		Week:  cycle%weeksPerYear + 1,
		Year:  cycle/weeksPerYear + 1,
	}, nil
}
