package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// AccountRoutes handles staff and shopper account route registration.
type AccountRoutes struct {
	staffs *StaffHandler
	users  *UserHandler
}

// NewAccountRoutes creates a new AccountRoutes instance.
func NewAccountRoutes(staffService service.StaffService, userService service.UserService) *AccountRoutes {
	return &AccountRoutes{
		staffs: NewStaffHandler(staffService),
		users:  NewUserHandler(userService),
	}
}

// RegisterProtectedRoutes registers account management routes. Staff account
// management is admin-only; shopper account management is open to any staff.
func (r *AccountRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	// Shoppers manage their own profile.
	me := protected.Group("")
	me.Use(middleware.RequireSubject(model.SubjectUser))
	{
		me.GET("/users/me", r.users.GetMe)
		me.PATCH("/users/me", r.users.UpdateMe)
	}

	admins := protected.Group("")
	admins.Use(middleware.RequireStaffRole(model.RoleAdmin))
	{
		admins.GET("/staffs", r.staffs.List)
		admins.GET("/staffs/:staffId", r.staffs.Get)
		admins.POST("/staffs", r.staffs.Create)
		admins.PATCH("/staffs/:staffId", r.staffs.Update)
		admins.PATCH("/staffs/:staffId/status", r.staffs.UpdateStatus)
		admins.DELETE("/staffs/:staffId", r.staffs.Delete)
	}

	staff := protected.Group("")
	staff.Use(middleware.RequireStaffRole())
	{
		staff.GET("/users", r.users.List)
		staff.GET("/users/:userId", r.users.Get)
		staff.PATCH("/users/:userId/status", r.users.UpdateStatus)
		staff.DELETE("/users/:userId", r.users.Delete)
	}
}
