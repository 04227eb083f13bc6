// Package main is the entry point for the store API application.
//
// @title           Ecomly Store API
// @version         1.0.0
// @description     E-commerce backend with a Redis-cached catalog, atomic
// @description     stock management, and JWT-authenticated staff and
// @description     shopper accounts.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Auth
// @tag.description Authentication for staff and shopper accounts
//
// @tag.name        Catalog
// @tag.description Categories, products, and reviews
//
// @tag.name        Orders
// @tag.description Order placement and lifecycle
//
// @tag.name        Accounts
// @tag.description Staff and user account management
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	_ "github.com/ecomly/ecomly-api/docs" // swagger docs

	"github.com/ecomly/ecomly-api/config"
	"github.com/ecomly/ecomly-api/internal/app"
)

func main() {
	cfg := config.Load()

	router, dbComponents, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbComponents.Mongo.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to close MongoDB connection")
		}
		if err := dbComponents.RedisKV.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis connection")
		}
	}()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
