package handlers

import (
	"net/http"
	"slices"
	"time"

	"github.com/SscSPs/ledger_posting_engine/cmd/docs"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_engine/internal/middleware"
	"github.com/SscSPs/ledger_posting_engine/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// HealthCheck reports the state of one backing dependency.
type HealthCheck func() (name string, healthy bool)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	checks ...HealthCheck,
) {
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))

	r.GET("/health", healthHandler(checks))

	setupSwaggerRoutes(r, cfg)
	setupAPIV1Routes(r, cfg, services, rateLimiter)
}

// setupSwaggerRoutes serves the API description outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupAPIV1Routes configures the org-scoped /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")
	if rateLimiter != nil {
		v1.Use(middleware.RateLimit(rateLimiter))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	org := v1.Group("/orgs/:orgID")
	RegisterAccountRoutes(org, services.Account, services.Posting)
	RegisterJournalRoutes(org, services.Posting)
}

func healthHandler(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for _, check := range checks {
			name, healthy := check()
			if healthy {
				deps[name] = "up"
				continue
			}
			deps[name] = "down"
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": http.StatusText(status), "dependencies": deps})
	}
}

// corsConfig allows every origin when the list is empty or holds "*".
// Credentials are only allowed for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}
