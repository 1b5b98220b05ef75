package handlers

import (
	"net/http"

	"github.com/SscSPs/adminpro/cmd/docs"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/middleware"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Limiters holds the optional rate limiters applied to the API. Nil disables a limiter.
type Limiters struct {
	API   *limiter.Limiter
	Login *limiter.Limiter
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiters Limiters,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	gate := domain.NewGate(cfg.LoginPath, cfg.LandingPath)

	public := r.Group("/api/v1")
	auth := registerAuthRoutes(public, services, limiters.Login)

	setupAPIV1Routes(r, cfg, gate, services, limiters.API, auth)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to
// specific entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	gate domain.Gate,
	services *portssvc.ServiceContainer,
	apiLimiter *limiter.Limiter,
	auth *authHandler,
) {
	chain := []gin.HandlerFunc{}
	if apiLimiter != nil {
		chain = append(chain, middleware.RateLimit(apiLimiter))
	}
	chain = append(chain,
		middleware.AuthMiddleware(cfg.JWTSecret, gate),
		middleware.LoadCurrentUser(services.User, gate),
	)
	v1 := r.Group("/api/v1", chain...)

	v1.GET("/auth/me", auth.me)
	registerCurrencyRoutes(v1, gate, services.Currency, services.ExchangeRate)
	registerRoleRoutes(v1, gate, services.Role)
	registerUserRoutes(v1, gate, services.User)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
