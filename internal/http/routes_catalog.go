package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// CatalogRoutes handles category, product, and upload route registration.
type CatalogRoutes struct {
	categories *CategoryHandler
	products   *ProductHandler
	reviews    *ReviewHandler
	uploads    *UploadHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(
	categoryService service.CategoryService,
	productService service.ProductService,
	reviewService service.ReviewService,
	storage service.ImageStorage,
) *CatalogRoutes {
	routes := &CatalogRoutes{
		categories: NewCategoryHandler(categoryService),
		products:   NewProductHandler(productService),
		reviews:    NewReviewHandler(reviewService),
	}
	if storage != nil {
		routes.uploads = NewUploadHandler(storage)
	}
	return routes
}

// RegisterPublicRoutes registers the storefront's read-only catalog routes.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories/active", r.categories.ListActive)
	rg.GET("/categories/:categoryId", r.categories.Get)

	rg.GET("/products/active", r.products.ListActive)
	rg.GET("/products/:productId", r.products.Get)
	rg.GET("/products/:productId/reviews", r.reviews.ListForProduct)

	rg.GET("/reviews/:reviewId", r.reviews.Get)
}

// RegisterProtectedRoutes registers the back-office catalog routes. Content
// edits are limited to admin and editor staff.
func (r *CatalogRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	editors := protected.Group("")
	editors.Use(middleware.RequireStaffRole(model.RoleAdmin, model.RoleEditor))
	{
		editors.GET("/categories", r.categories.List)
		editors.GET("/categories/inactive", r.categories.ListInactive)
		editors.POST("/categories", r.categories.Create)
		editors.PATCH("/categories/:categoryId", r.categories.Update)
		editors.PATCH("/categories/:categoryId/status", r.categories.UpdateStatus)
		editors.DELETE("/categories/:categoryId", r.categories.Delete)

		editors.GET("/products", r.products.List)
		editors.GET("/products/inactive", r.products.ListInactive)
		editors.POST("/products", r.products.Create)
		editors.PATCH("/products/:productId", r.products.Update)
		editors.PATCH("/products/:productId/status", r.products.UpdateStatus)
		editors.DELETE("/products/:productId", r.products.Delete)

		if r.uploads != nil {
			editors.POST("/uploads", r.uploads.Upload)
			editors.DELETE("/uploads/:key", r.uploads.Remove)
		}
	}
}
