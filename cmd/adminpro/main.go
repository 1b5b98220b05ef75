package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SscSPs/adminpro/cmd/docs"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	"github.com/SscSPs/adminpro/internal/core/services"
	"github.com/SscSPs/adminpro/internal/handlers"
	"github.com/SscSPs/adminpro/internal/messaging"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/SscSPs/adminpro/internal/repositories/database/pgsql"
	"github.com/SscSPs/adminpro/internal/repositories/memory"
	"github.com/SscSPs/adminpro/internal/validation"
	"github.com/SscSPs/adminpro/pkg/cache"
	"github.com/SscSPs/adminpro/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title AdminPro API
// @version 1.0
// @description Backend of the AdminPro admin dashboard: currencies, exchange-rate history, roles and users.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStore, err := setupStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, err := messaging.NewPublisher(cfg.RabbitMQURL, cfg.RabbitMQQueue)
	if err != nil {
		logger.Error("Failed to initialize event publisher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(cfg, repos, publisher)

	if cfg.StorageDriver == config.StorageMemory && cfg.SeedAdminPassword != "" {
		if _, err := services.EnsureAdmin(ctx, repos, serviceContainer, adminSeed(cfg)); err != nil {
			logger.Error("Failed to seed admin user", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer cache.CloseRedis(redisClient)
	}

	limiters, err := setupLimiters(cfg, redisClient)
	if err != nil {
		logger.Error("Failed to configure rate limiting", slog.String("error", err.Error()))
		os.Exit(1)
	}

	validation.Init()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiters)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// setupStorage builds the repositories for the configured driver. The returned
// func releases whatever the driver opened.
func setupStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("source", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		database.ClosePgxPool(dbPool)
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// setupLimiters creates the API and login limiters, backed by Redis when a
// client is given so limits are shared between instances.
func setupLimiters(cfg *config.Config, redisClient *redis.Client) (handlers.Limiters, error) {
	var limiters handlers.Limiters

	api, err := newLimiter(cfg.RateLimit, "adminpro_api", redisClient)
	if err != nil {
		return limiters, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}
	limiters.API = api

	// login attempts are counted apart from regular API traffic
	login, err := newLimiter(cfg.LoginRateLimit, "adminpro_login", redisClient)
	if err != nil {
		return limiters, fmt.Errorf("invalid LOGIN_RATE_LIMIT: %w", err)
	}
	limiters.Login = login

	return limiters, nil
}

// newLimiter returns nil when formatted is empty, which disables the limit.
func newLimiter(formatted, prefix string, redisClient *redis.Client) (*limiter.Limiter, error) {
	if formatted == "" {
		return nil, nil
	}
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}

	opts := limiter.StoreOptions{Prefix: prefix, MaxRetry: 3, CleanUpInterval: time.Minute}
	var store limiter.Store
	if redisClient != nil {
		store, err = redisstore.NewStoreWithOptions(redisClient, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memorystore.NewStoreWithOptions(opts)
	}
	return limiter.New(store, rate), nil
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.CORSAllowedOrigins
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
	c.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	c.AllowCredentials = true
	if len(c.AllowOrigins) == 0 {
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}
	return c
}

func adminSeed(cfg *config.Config) services.AdminSeed {
	return services.AdminSeed{
		Username: cfg.SeedAdminUsername,
		Password: cfg.SeedAdminPassword,
		Name:     cfg.SeedAdminName,
		Email:    cfg.SeedAdminEmail,
	}
}
