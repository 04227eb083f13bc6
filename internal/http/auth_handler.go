package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login requests for shopper accounts.
//
// @Summary      Login shopper
// @Description  Authenticates a shopper account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, user, err := h.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Account: dto.AccountResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// LoginStaff handles POST /api/auth/staff/login requests.
//
// @Summary      Login staff
// @Description  Authenticates a staff account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.LoginResponse "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/staff/login [post]
func (h *AuthHandler) LoginStaff(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, staff, err := h.authService.LoginStaff(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Account: dto.AccountResponse{
			ID:    staff.ID.Hex(),
			Email: staff.Email,
			Name:  staff.Name,
			Role:  staff.Role,
		},
	})
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register shopper
// @Description  Creates a new shopper account and returns a JWT token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration data"
// @Success      201 {object} dto.LoginResponse "Account created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - email already registered"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RegisterRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, user, err := h.authService.RegisterUser(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(dto.LoginResponse{
		Token:        tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Account: dto.AccountResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
			Name:  user.Name,
		},
	})
}

// refreshRequest is the body accepted by the refresh endpoint.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /api/auth/refresh requests.
//
// @Summary      Refresh tokens
// @Description  Exchanges a valid refresh token for a fresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body object true "Refresh token"
// @Success      200 {object} dto.SuccessResponse "New token pair"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[refreshRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(tokenPair)
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Logout
// @Description  Blacklists the access token and removes the refresh token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse "Logged out"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	accessToken := extractBearerToken(c)

	var req refreshRequest
	// The refresh token is optional on logout.
	_ = c.ShouldBindJSON(&req)

	if err := h.authService.Logout(c.Request.Context(), accessToken, req.RefreshToken); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"logged_out": true})
}

// ForgotPassword handles POST /api/auth/forgot-password requests for
// shopper accounts; ForgotPasswordStaff covers the staff variant. Both
// answer 200 whether or not the email exists.
//
// @Summary      Request password reset
// @Description  Emails a single-use password reset token to the account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ForgotPasswordRequest true "Account email"
// @Success      200 {object} dto.SuccessResponse "Reset email queued"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	h.forgotPassword(c, model.SubjectUser)
}

// ForgotPasswordStaff handles POST /api/auth/staff/forgot-password requests.
//
// @Summary      Request staff password reset
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ForgotPasswordRequest true "Account email"
// @Success      200 {object} dto.SuccessResponse "Reset email queued"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/staff/forgot-password [post]
func (h *AuthHandler) ForgotPasswordStaff(c *gin.Context) {
	h.forgotPassword(c, model.SubjectStaff)
}

func (h *AuthHandler) forgotPassword(c *gin.Context, subject string) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ForgotPasswordRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), subject, req.Email); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"sent": true})
}

// ResetPassword handles PATCH /api/auth/reset-password requests.
//
// @Summary      Reset password
// @Description  Redeems an emailed reset token and stores the new password
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ResetPasswordRequest true "Token and new password"
// @Success      200 {object} dto.SuccessResponse "Password reset"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/reset-password [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ResetPasswordRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"reset": true})
}

// ChangePassword handles PATCH /api/auth/change-password requests for the
// authenticated account, staff or shopper.
//
// @Summary      Change password
// @Description  Rotates the password after checking the current one
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ChangePasswordRequest true "Current and new password"
// @Success      200 {object} dto.SuccessResponse "Password changed"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - wrong current password"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/auth/change-password [patch]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.ChangePasswordRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"changed": true})
}

// VerifyEmail handles POST /api/auth/verify-email requests.
//
// @Summary      Verify email
// @Description  Redeems an emailed verification token and marks the account verified
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.VerifyEmailRequest true "Verification token"
// @Success      200 {object} dto.SuccessResponse "Email verified"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.VerifyEmailRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), req.Token); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"verified": true})
}

// extractBearerToken pulls the raw token out of the Authorization header.
func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
