// Package http wires the gin engine: routes, middleware, and handler
// construction.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"airadmin/internal/infrastructure/ratelimit"
	"airadmin/internal/interfaces/http/handlers"
	"airadmin/internal/interfaces/http/middleware"
	"airadmin/internal/shared/logger"
)

// adminRateLimits bounds the destructive endpoints; generous enough for a
// human operator, tight enough to stop a stuck retry loop.
var adminRateLimits = ratelimit.RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   100,
}

// Router owns the gin engine and the route table.
type Router struct {
	engine  *gin.Engine
	db      *gorm.DB
	bots    *handlers.BotHandler
	admin   *handlers.AdminHandler
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

// NewRouter creates the router with its handlers already built.
func NewRouter(
	db *gorm.DB,
	bots *handlers.BotHandler,
	admin *handlers.AdminHandler,
	limiter ratelimit.RateLimiter,
	log logger.Interface,
) *Router {
	return &Router{
		engine:  gin.New(),
		db:      db,
		bots:    bots,
		admin:   admin,
		limiter: limiter,
		logger:  log,
	}
}

// SetupRoutes registers every endpoint.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())

	r.engine.GET("/health", r.health)

	api := r.engine.Group("/api")
	{
		api.GET("/bots", r.bots.ListBots)
		api.GET("/bots/summary", r.bots.GetSummary)
		api.GET("/game/cycle", r.bots.GetCycle)

		admin := api.Group("/admin")
		admin.Use(middleware.AdminRateLimit(r.limiter, adminRateLimits, r.logger))
		{
			admin.POST("/bots", r.admin.CreateBot)
			admin.POST("/bots/:id/reset", r.admin.ResetBot)
			admin.POST("/bots/reset", r.admin.ResetAllBots)
			admin.POST("/trigger-turn", r.admin.TriggerTurn)
		}
	}
}

// GetEngine exposes the engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) health(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		r.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
