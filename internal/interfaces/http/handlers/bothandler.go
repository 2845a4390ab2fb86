// Package handlers contains the gin HTTP handlers of the admin API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"airadmin/internal/application/bot/usecases"
	"airadmin/internal/shared/logger"
	"airadmin/internal/shared/utils"
)

// BotHandler serves the read-only bot reporting endpoints.
type BotHandler struct {
	listBots   *usecases.ListBotsUseCase
	botSummary *usecases.GetBotsSummaryUseCase
	getCycle   *usecases.GetCycleUseCase
	logger     logger.Interface
}

// NewBotHandler creates a new BotHandler.
func NewBotHandler(
	listBots *usecases.ListBotsUseCase,
	botSummary *usecases.GetBotsSummaryUseCase,
	getCycle *usecases.GetCycleUseCase,
	log logger.Interface,
) *BotHandler {
	return &BotHandler{
		listBots:   listBots,
		botSummary: botSummary,
		getCycle:   getCycle,
		logger:     log,
	}
}

// ListBots handles GET /api/bots
func (h *BotHandler) ListBots(c *gin.Context) {
	bots, err := h.listBots.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list bots", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"bots": bots})
}

// GetSummary handles GET /api/bots/summary
func (h *BotHandler) GetSummary(c *gin.Context) {
	summary, err := h.botSummary.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to get bot summary", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// GetCycle handles GET /api/game/cycle
func (h *BotHandler) GetCycle(c *gin.Context) {
	info, err := h.getCycle.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to read current cycle", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", info)
}
