package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/adminpro/internal/core/services"
	"github.com/SscSPs/adminpro/internal/messaging"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/SscSPs/adminpro/internal/repositories/database/pgsql"
	"github.com/SscSPs/adminpro/pkg/database"
)

// seed creates the administrator role, the default viewer role and the admin
// user described by SEED_ADMIN_* in the configured Postgres database.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Error("Seeding requires STORAGE_DRIVER=postgres", slog.String("storage", cfg.StorageDriver))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	svc := services.NewServiceContainer(cfg, repos, messaging.NoopPublisher{})

	res, err := services.EnsureAdmin(ctx, repos, svc, services.AdminSeed{
		Username: cfg.SeedAdminUsername,
		Password: cfg.SeedAdminPassword,
		Name:     cfg.SeedAdminName,
		Email:    cfg.SeedAdminEmail,
	})
	if err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Seeding complete",
		slog.String("admin_role_id", res.AdminRole.ID),
		slog.String("viewer_role_id", res.ViewerRole.ID),
		slog.String("admin_user_id", res.Admin.ID),
		slog.Bool("user_created", res.UserCreated),
	)
}
