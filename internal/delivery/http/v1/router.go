package v1

import (
	"techflow-web-backend/config"
	"techflow-web-backend/internal/delivery/http/middleware"
	"techflow-web-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	LeadUC     domain.LeadUsecase
	EstimateUC domain.EstimateUsecase
	SiteUC     domain.SiteUsecase
	Config     *config.Config
	// Gatherer backs /metrics; nil leaves the route out
	Gatherer prometheus.Gatherer
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	isProduction := deps.Config.IsProduction()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins, isProduction)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.ErrorHandler(isProduction))

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	leadLimit := middleware.RateLimitMiddleware(middleware.LeadRateLimitConfig(deps.Config))

	NewSiteHandler(v1, deps.SiteUC)
	NewContactHandler(v1, leadLimit, deps.LeadUC, deps.SiteUC)
	NewCalculatorHandler(v1, leadLimit, deps.LeadUC, deps.EstimateUC)

	// Swagger
	if !isProduction {
		v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
