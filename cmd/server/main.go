package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/api"
	"github.com/vetipro/quoteapi/internal/catalog"
	"github.com/vetipro/quoteapi/internal/config"
	"github.com/vetipro/quoteapi/internal/draft"
	"github.com/vetipro/quoteapi/internal/repository"
	"github.com/vetipro/quoteapi/internal/repository/inmem"
	"github.com/vetipro/quoteapi/internal/repository/postgres"
	"github.com/vetipro/quoteapi/internal/service"
	"github.com/vetipro/quoteapi/internal/submit"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Connect to database; fall back to in-memory repositories so the
	// quote flow stays usable locally without Postgres (the archive is
	// then process-lifetime only).
	var repos *repository.Repositories
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Warn("Database unavailable, using in-memory repositories", zap.Error(err))
		repos = inmem.NewRepositories()
	} else {
		defer db.Close()
		repos = postgres.NewRepositories(db, logger)
	}

	// Wire the domain services
	cat := catalog.New(logger)
	store := draft.NewMemoryStore()
	submitter := submit.NewClient(cfg.Submit, logger)
	basketSvc := service.NewBasketService(logger)
	quoteSvc := service.NewQuoteService(store, repos, submitter, logger)

	router := api.NewRouter(cfg, cat, basketSvc, quoteSvc, repos, logger)

	logger.Info("Starting server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}
