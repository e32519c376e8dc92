package v1

import (
	"net/http"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	PortfolioUC domain.PortfolioUsecase
	ContactUC   domain.ContactUsecase
	SeedUC      domain.SeedUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	// Health probes for the hosting platform
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "portfolio-backend"})
	})

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// The public contact form gets its own, much stricter bucket.
	strict := api.Group("")
	strict.Use(middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config.RateLimitContactThreshold, window)))

	NewPortfolioHandler(api, deps.PortfolioUC)
	NewContactHandler(api, strict, deps.ContactUC)
	NewAdminHandler(api, deps.SeedUC)

	return r
}
