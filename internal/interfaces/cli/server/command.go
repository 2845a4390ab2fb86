package server

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"airadmin/internal/application/bot/services"
	"airadmin/internal/application/bot/usecases"
	"airadmin/internal/infrastructure/config"
	"airadmin/internal/infrastructure/database"
	"airadmin/internal/infrastructure/persistence"
	"airadmin/internal/infrastructure/ratelimit"
	"airadmin/internal/infrastructure/trigger"
	httpRouter "airadmin/internal/interfaces/http"
	"airadmin/internal/interfaces/http/handlers"
	"airadmin/internal/shared/db"
	"airadmin/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the admin panel HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	gdb := database.Get()
	log := logger.NewLogger()

	countries, err := services.LoadCountryMap(cfg.Bot.CountryMapPath)
	if err != nil {
		logger.Warn("country map not loaded, name-based country inference disabled",
			"path", cfg.Bot.CountryMapPath, "error", err)
		countries = services.NewCountryMap(nil)
	}

	opTimeout := time.Duration(cfg.Database.OpTimeoutSeconds) * time.Second
	txManager := db.NewTransactionManager(gdb, opTimeout)

	airlineRepo := persistence.NewAirlineRepository(gdb, log)
	routeRepo := persistence.NewRouteRepository(gdb, log)
	fleetRepo := persistence.NewFleetRepository(gdb, log)
	airportRepo := persistence.NewAirportRepository(gdb, log)
	modelRepo := persistence.NewModelRepository(gdb, log)
	cycleRepo := persistence.NewCycleRepository(gdb, log)

	resolver := services.NewHomeResolver(airportRepo, countries, log)
	provisioner := services.NewFleetProvisioner(
		modelRepo,
		fleetRepo,
		cfg.Bot.ModelPriceCeiling,
		cfg.Bot.MaxFleetSize,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		log,
	)

	startingBalance := decimal.NewFromInt(cfg.Bot.StartingBalance)

	resetBot := usecases.NewResetBotUseCase(
		txManager, airlineRepo, routeRepo, fleetRepo, cycleRepo,
		resolver, provisioner, startingBalance, cfg.Bot.ServiceQuality, log)
	resetAll := usecases.NewResetAllBotsUseCase(airlineRepo, resetBot, log)
	createBot := usecases.NewCreateBotUseCase(
		txManager, airlineRepo, airportRepo, cycleRepo,
		provisioner, startingBalance, cfg.Bot.ServiceQuality, log)
	triggerTurn := usecases.NewTriggerTurnUseCase(trigger.NewFileTrigger(cfg.Bot.TriggerDir), log)
	listBots := usecases.NewListBotsUseCase(airlineRepo, log)
	botSummary := usecases.NewGetBotsSummaryUseCase(airlineRepo, log)
	getCycle := usecases.NewGetCycleUseCase(cycleRepo)

	botHandler := handlers.NewBotHandler(listBots, botSummary, getCycle, log)
	adminHandler := handlers.NewAdminHandler(resetBot, resetAll, createBot, triggerTurn, log)

	limiter := buildRateLimiter(cfg, log)

	router := httpRouter.NewRouter(gdb, botHandler, adminHandler, limiter, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func buildRateLimiter(cfg *config.Config, log logger.Interface) ratelimit.RateLimiter {
	if !cfg.Redis.Enabled {
		return ratelimit.NewNoopLimiter()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unreachable, admin rate limiting disabled", "addr", cfg.Redis.GetAddr(), "error", err)
		return ratelimit.NewNoopLimiter()
	}

	log.Infow("redis rate limiter enabled", "addr", cfg.Redis.GetAddr())
	return ratelimit.NewRedisRateLimiter(client)
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
