package usecases

import (
	"airadmin/internal/infrastructure/trigger"
	"airadmin/internal/shared/errors"
	"airadmin/internal/shared/logger"
)

// TriggerTurnUseCase asks the external simulation scheduler to start the
// next cycle by dropping a trigger file. The scheduler owns the semantics;
// this side only writes the signal.
type TriggerTurnUseCase struct {
	trigger *trigger.FileTrigger
	logger  logger.Interface
}

// NewTriggerTurnUseCase creates a trigger-turn use case.
func NewTriggerTurnUseCase(fileTrigger *trigger.FileTrigger, log logger.Interface) *TriggerTurnUseCase {
	return &TriggerTurnUseCase{trigger: fileTrigger, logger: log}
}

// Execute writes the trigger file.
func (uc *TriggerTurnUseCase) Execute() error {
	if err := uc.trigger.RequestTurn(); err != nil {
		uc.logger.Errorw("failed to write turn trigger", "error", err)
		return errors.NewInternalError("failed to write turn trigger", err.Error())
	}

	uc.logger.Info("turn trigger signal written")
	return nil
}
