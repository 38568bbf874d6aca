package main

import (
	"log/slog"
	"os"

	portssvc "github.com/corebank/bank_ledger_app/internal/core/ports/services"
	"github.com/corebank/bank_ledger_app/internal/core/services"
	"github.com/corebank/bank_ledger_app/internal/handlers"
	"github.com/corebank/bank_ledger_app/internal/middleware"
	"github.com/corebank/bank_ledger_app/internal/platform/config"
	"github.com/corebank/bank_ledger_app/internal/repositories/memory"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// All ledger state is held in process memory for the lifetime of the run.
	store := memory.NewStore(cfg.AccountIDBase)
	logger.Info("In-memory ledger store initialized", slog.Int64("account_id_base", cfg.AccountIDBase))

	ledgerService := services.NewLedgerService(store, store)
	container := &portssvc.ServiceContainer{Ledger: ledgerService}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit configuration", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
