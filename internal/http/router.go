package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ecomly/ecomly-api/internal/metrics"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit       int
	RateWindow      time.Duration
	RequestTimeout  time.Duration
	CORSOrigins     []string
	SwaggerUser     string
	SwaggerPass     string
	AuthService     service.AuthService
	StaffService    service.StaffService
	UserService     service.UserService
	CategoryService service.CategoryService
	ProductService  service.ProductService
	OrderService    service.OrderService
	ReviewService   service.ReviewService
	ImageStorage    service.ImageStorage
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 30 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the store API.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")

	authRoutes := NewAuthRoutes(cfg.AuthService)
	catalogRoutes := NewCatalogRoutes(cfg.CategoryService, cfg.ProductService, cfg.ReviewService, cfg.ImageStorage)
	orderRoutes := NewOrderRoutes(cfg.OrderService, cfg.ReviewService)
	accountRoutes := NewAccountRoutes(cfg.StaffService, cfg.UserService)

	authRoutes.RegisterPublicRoutes(api)
	catalogRoutes.RegisterPublicRoutes(api)

	protected := authRoutes.GetProtectedGroup(api, &cfg)
	authRoutes.RegisterProtectedRoutes(protected)
	catalogRoutes.RegisterProtectedRoutes(protected)
	orderRoutes.RegisterProtectedRoutes(protected)
	accountRoutes.RegisterProtectedRoutes(protected)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "X-CSRF-Token", "Authorization", "X-Refresh-Token", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
