package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers authentication routes that don't require a
// token.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", r.handler.Login)
		auth.POST("/register", r.handler.Register)
		auth.POST("/refresh", r.handler.Refresh)
		auth.POST("/forgot-password", r.handler.ForgotPassword)
		auth.PATCH("/reset-password", r.handler.ResetPassword)
		auth.POST("/verify-email", r.handler.VerifyEmail)
		auth.POST("/staff/login", r.handler.LoginStaff)
		auth.POST("/staff/forgot-password", r.handler.ForgotPasswordStaff)
	}
}

// GetProtectedGroup returns a router group with JWT auth applied, shared by
// all authenticated route registrars.
func (r *AuthRoutes) GetProtectedGroup(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(r.authService))

	if cfg.RateLimit > 0 {
		accountLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		protected.Use(accountLimiter.AccountRateLimit())
	}

	return protected
}

// RegisterProtectedRoutes registers authentication routes that require a
// token.
func (r *AuthRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", r.handler.Logout)
	protected.PATCH("/auth/change-password", r.handler.ChangePassword)
}
