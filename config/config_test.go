package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 48*time.Hour, cfg.Cache.TTL)
		assert.Equal(t, 8, cfg.Cache.DefaultLimit)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "store", cfg.Database.DatabaseName)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
		assert.Empty(t, cfg.SMTP.Host)
		assert.Equal(t, "http://localhost:3000", cfg.SMTP.SiteURL)
		assert.Empty(t, cfg.Storage.Endpoint)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CACHE_TTL", "1h")
		_ = os.Setenv("CACHE_DEFAULT_LIMIT", "20")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		_ = os.Setenv("MONGODB_DATABASE", "shop")
		_ = os.Setenv("REDIS_ADDR", "redis:6379")
		_ = os.Setenv("REDIS_DB", "2")
		_ = os.Setenv("JWT_ACCESS_TOKEN_TTL", "5m")
		_ = os.Setenv("SMTP_HOST", "mail.example.com")
		_ = os.Setenv("S3_ENDPOINT", "minio:9000")
		_ = os.Setenv("S3_USE_SSL", "false")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, time.Hour, cfg.Cache.TTL)
		assert.Equal(t, 20, cfg.Cache.DefaultLimit)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "shop", cfg.Database.DatabaseName)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
		assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
		assert.Equal(t, "minio:9000", cfg.Storage.Endpoint)
		assert.False(t, cfg.Storage.UseSSL)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("CACHE_TTL", "two days")
		_ = os.Setenv("S3_USE_SSL", "maybe")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 48*time.Hour, cfg.Cache.TTL)
		assert.True(t, cfg.Storage.UseSSL)
	})

	t.Run("parses CORS origins with defaults preserved", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:3000")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
	})
}
