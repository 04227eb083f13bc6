// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/config"
	"github.com/ecomly/ecomly-api/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, *DatabaseComponents, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}

	serviceComponents := InitializeServices(cfg, dbComponents)

	healthHandler := http.NewHealthHandler()
	healthHandler.AddChecker("mongodb", http.HealthCheckerFunc(dbComponents.Mongo.HealthCheck))
	healthHandler.AddChecker("redis", http.HealthCheckerFunc(dbComponents.RedisKV.HealthCheck))
	healthHandler.RegisterCircuitBreaker("mongodb", dbComponents.MongoCircuitBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		RequestTimeout:  cfg.Server.RequestTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		AuthService:     serviceComponents.AuthService,
		StaffService:    serviceComponents.StaffService,
		UserService:     serviceComponents.UserService,
		CategoryService: serviceComponents.CategoryService,
		ProductService:  serviceComponents.ProductService,
		OrderService:    serviceComponents.OrderService,
		ReviewService:   serviceComponents.ReviewService,
		ImageStorage:    serviceComponents.ImageStorage,
	}

	return http.NewRouter(healthHandler, routerCfg), dbComponents, nil
}
