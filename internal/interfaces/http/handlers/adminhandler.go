package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"airadmin/internal/application/bot/dto"
	"airadmin/internal/application/bot/usecases"
	"airadmin/internal/shared/logger"
	"airadmin/internal/shared/utils"
)

// AdminHandler serves the mutating admin endpoints: bot lifecycle
// operations and the turn trigger.
type AdminHandler struct {
	resetBot    *usecases.ResetBotUseCase
	resetAll    *usecases.ResetAllBotsUseCase
	createBot   *usecases.CreateBotUseCase
	triggerTurn *usecases.TriggerTurnUseCase
	logger      logger.Interface
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	resetBot *usecases.ResetBotUseCase,
	resetAll *usecases.ResetAllBotsUseCase,
	createBot *usecases.CreateBotUseCase,
	triggerTurn *usecases.TriggerTurnUseCase,
	log logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		resetBot:    resetBot,
		resetAll:    resetAll,
		createBot:   createBot,
		triggerTurn: triggerTurn,
		logger:      log,
	}
}

// ResetBot handles POST /api/admin/bots/:id/reset
func (h *AdminHandler) ResetBot(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid airline id")
		return
	}

	summary, err := h.resetBot.Execute(c.Request.Context(), uint(id))
	if err != nil {
		h.logger.Errorw("failed to reset bot airline", "airline_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := fmt.Sprintf("Reset bot airline %s. Deleted %d routes, %d aircraft, %d bases. Added %d new aircraft.",
		summary.AirlineName, summary.RoutesDeleted, summary.AircraftDeleted, summary.BasesDeleted, summary.AircraftAdded)
	utils.SuccessResponse(c, http.StatusOK, message, summary)
}

// ResetAllBots handles POST /api/admin/bots/reset
func (h *AdminHandler) ResetAllBots(c *gin.Context) {
	result, err := h.resetAll.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to reset bot airlines", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := fmt.Sprintf("Reset %d of %d bot airlines.", len(result.NamesSucceeded), len(result.Results))
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// CreateBot handles POST /api/admin/bots
func (h *AdminHandler) CreateBot(c *gin.Context) {
	var request dto.CreateBotRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createBot.Execute(c.Request.Context(), request)
	if err != nil {
		h.logger.Errorw("failed to create bot airline", "name", request.Name, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := fmt.Sprintf("Created bot airline %q (ID: %d) with HQ in %s. Added %d aircraft.",
		result.AirlineName, result.AirlineID, result.CountryCode, result.AircraftAdded)
	utils.CreatedResponse(c, result, message)
}

// TriggerTurn handles POST /api/admin/trigger-turn
func (h *AdminHandler) TriggerTurn(c *gin.Context) {
	if err := h.triggerTurn.Execute(); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK,
		"Turn trigger signal sent. The simulation will start the next cycle shortly.", nil)
}
