package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api"
	"github.com/luxeshop/storefront-api/internal/cart"
	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/repository/postgres"
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

	// Connect to database
	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repos := postgres.NewRepositories(db, logger)

	// Session cart store
	carts := cart.NewStore(cfg.Redis, time.Duration(cfg.Cart.TTLHours)*time.Hour, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := carts.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// External data/auth service client
	store := cms.NewClient(cfg.CMS, logger)

	router := api.NewRouter(cfg, store, carts, repos, logger)

	logger.Info("Starting storefront API",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
