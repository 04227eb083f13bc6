package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// OrderRoutes handles order and review route registration.
type OrderRoutes struct {
	orders  *OrderHandler
	reviews *ReviewHandler
}

// NewOrderRoutes creates a new OrderRoutes instance.
func NewOrderRoutes(orderService service.OrderService, reviewService service.ReviewService) *OrderRoutes {
	return &OrderRoutes{
		orders:  NewOrderHandler(orderService),
		reviews: NewReviewHandler(reviewService),
	}
}

// RegisterProtectedRoutes registers order and review routes. Shoppers act on
// their own orders and reviews; listing all orders and moving them along the
// lifecycle is staff work.
func (r *OrderRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	shoppers := protected.Group("")
	shoppers.Use(middleware.RequireSubject(model.SubjectUser))
	{
		shoppers.GET("/orders/mine", r.orders.ListMine)
		shoppers.POST("/orders", r.orders.Create)
		shoppers.POST("/orders/:orderId/cancel", r.orders.Cancel)

		shoppers.POST("/reviews", r.reviews.Create)
		shoppers.PATCH("/reviews/:reviewId", r.reviews.Update)
	}

	// Review deletion is shared: the author or any staff member.
	protected.DELETE("/reviews/:reviewId", r.reviews.Delete)
	protected.GET("/orders/:orderId", r.orders.Get)

	staff := protected.Group("")
	staff.Use(middleware.RequireStaffRole())
	{
		staff.GET("/orders", r.orders.List)
		staff.GET("/reviews", r.reviews.List)
		staff.PATCH("/orders/:orderId/status", r.orders.UpdateStatus)
	}

	admins := protected.Group("")
	admins.Use(middleware.RequireStaffRole(model.RoleAdmin))
	{
		admins.DELETE("/orders/:orderId", r.orders.Delete)
	}
}
