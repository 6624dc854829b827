package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/platform/seed"
	"github.com/SscSPs/rental_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/rental_ledger/pkg/database"
)

// ledger_seed loads the chart of accounts and accounting settings from SEED_FILE,
// or from the path given as the first argument.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	path := cfg.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	logger = logger.With(slog.String("seed_file", path))

	file, err := seed.LoadFile(path)
	if err != nil {
		logger.Error("Invalid seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	seeder := seed.NewSeeder(repos.ChartRepo, logger)
	summary, err := seeder.Apply(ctx, file, middleware.SystemUserID)
	if err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		database.ClosePgxPool(dbPool)
		os.Exit(1)
	}
	logger.Info("Seeding finished", slog.Int("accounts", summary.Accounts), slog.Int("settings", summary.Settings))
}
