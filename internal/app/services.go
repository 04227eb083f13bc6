// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ecomly/ecomly-api/config"
	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/logger"
	"github.com/ecomly/ecomly-api/internal/service"
)

// ServiceComponents holds business-service components.
type ServiceComponents struct {
	AuthService     service.AuthService
	StaffService    service.StaffService
	UserService     service.UserService
	CategoryService service.CategoryService
	ProductService  service.ProductService
	OrderService    service.OrderService
	ReviewService   service.ReviewService
	ImageStorage    service.ImageStorage
}

// InitializeServices builds the per-entity cache engines and wires the
// business services on top of them.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	l := logger.Logger()

	staffEngine := cache.NewEngine(cache.Config[model.Staff]{
		Kind:         cache.KindStaff,
		Tag:          cache.TagStaffs,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
		Project:      model.Staff.Public,
	}, db.RedisKV, db.StaffStore, l)

	userEngine := cache.NewEngine(cache.Config[model.User]{
		Kind:         cache.KindUser,
		Tag:          cache.TagUsers,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
		Project:      model.User.Public,
	}, db.RedisKV, db.UserStore, l)

	categoryEngine := cache.NewEngine(cache.Config[model.Category]{
		Kind:         cache.KindCategory,
		Tag:          cache.TagCategories,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
	}, db.RedisKV, db.CategoryStore, l)

	productEngine := cache.NewEngine(cache.Config[model.Product]{
		Kind:         cache.KindProduct,
		Tag:          cache.TagProducts,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
	}, db.RedisKV, db.ProductStore, l)

	orderEngine := cache.NewEngine(cache.Config[model.Order]{
		Kind:         cache.KindOrder,
		Tag:          cache.TagOrders,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
	}, db.RedisKV, db.OrderStore, l)

	reviewEngine := cache.NewEngine(cache.Config[model.Review]{
		Kind:         cache.KindReview,
		Tag:          cache.TagReviews,
		TTL:          cfg.Cache.TTL,
		DefaultLimit: cfg.Cache.DefaultLimit,
	}, db.RedisKV, db.ReviewStore, l)

	var mailer service.Mailer = service.NoopMailer{}
	if cfg.SMTP.Host != "" {
		mailer = service.NewSMTPMailer(service.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			SiteURL:  cfg.SMTP.SiteURL,
		}, l)
	}

	var storage service.ImageStorage
	if cfg.Storage.Endpoint != "" {
		s3, err := service.NewS3Storage(service.StorageConfig{
			Endpoint:      cfg.Storage.Endpoint,
			Region:        cfg.Storage.Region,
			Bucket:        cfg.Storage.Bucket,
			AccessKey:     cfg.Storage.AccessKey,
			SecretKey:     cfg.Storage.SecretKey,
			UseSSL:        cfg.Storage.UseSSL,
			PublicBaseURL: cfg.Storage.PublicBaseURL,
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize object storage - image uploads disabled")
		} else {
			storage = s3
		}
	}

	tokenService := service.NewTokenService(db.TokenRepo, service.TokenConfig{
		SecretKey:        cfg.Auth.JWTSecretKey,
		RefreshSecretKey: cfg.Auth.JWTRefreshSecret,
		AccessTokenTTL:   cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL:  cfg.Auth.RefreshTokenTTL,
	})

	return &ServiceComponents{
		AuthService:     service.NewAuthService(db.StaffWriter, db.UserWriter, userEngine, tokenService, mailer),
		StaffService:    service.NewStaffService(staffEngine, db.StaffWriter),
		UserService:     service.NewUserService(userEngine, db.UserWriter),
		CategoryService: service.NewCategoryService(categoryEngine, db.CategoryWriter),
		ProductService:  service.NewProductService(productEngine, db.ProductWriter, db.CategoryWriter),
		OrderService:    service.NewOrderService(orderEngine, db.OrderWriter, db.ProductWriter, productEngine, mailer),
		ReviewService:   service.NewReviewService(reviewEngine, db.ReviewWriter, db.ProductWriter),
		ImageStorage:    storage,
	}
}
