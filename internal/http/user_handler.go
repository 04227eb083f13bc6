package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// UserHandler provides HTTP handlers for shopper account routes.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/users/:userId requests.
//
// @Summary      Get user account
// @Tags         Users
// @Produce      json
// @Param        userId path string true "User id"
// @Success      200 {object} dto.SuccessResponse "User account"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.users.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindUser, doc))
}

// List handles GET /api/users requests.
//
// @Summary      List user accounts
// @Tags         Users
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "User accounts with pagination"
// @Failure      404 {object} dto.ErrorResponse "No user accounts on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	col, err := h.users.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagUsers, col))
}

// GetMe handles GET /api/users/me requests for the acting shopper.
//
// @Summary      Get own profile
// @Tags         Users
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "User account"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	doc, err := h.users.Get(c.Request.Context(), identity.ID.Hex())
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindUser, doc))
}

// UpdateMe handles PATCH /api/users/me requests for the acting shopper.
//
// @Summary      Update own profile
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateAccountRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated user account"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequest[dto.UpdateAccountRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), identity.ID.Hex(), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"user": user.Public()})
}

// UpdateStatus handles PATCH /api/users/:userId/status requests.
//
// @Summary      Toggle user status
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        userId path string true "User id"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated user account"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/{userId}/status [patch]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	user, err := h.users.UpdateStatus(c.Request.Context(), c.Param("userId"), req.Status)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"user": user.Public()})
}

// Delete handles DELETE /api/users/:userId requests.
//
// @Summary      Delete user account
// @Tags         Users
// @Produce      json
// @Param        userId path string true "User id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.users.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
