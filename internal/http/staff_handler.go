package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/service"
)

// StaffHandler provides HTTP handlers for staff account routes.
type StaffHandler struct {
	staff service.StaffService
}

// NewStaffHandler creates a new staff handler.
func NewStaffHandler(staff service.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// Get handles GET /api/staffs/:staffId requests.
//
// @Summary      Get staff account
// @Tags         Staffs
// @Produce      json
// @Param        staffId path string true "Staff id"
// @Success      200 {object} dto.SuccessResponse "Staff account"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs/{staffId} [get]
func (h *StaffHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.staff.Get(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindStaff, doc))
}

// List handles GET /api/staffs requests.
//
// @Summary      List staff accounts
// @Tags         Staffs
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "Staff accounts with pagination"
// @Failure      404 {object} dto.ErrorResponse "No staff accounts on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs [get]
func (h *StaffHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	col, err := h.staff.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagStaffs, col))
}

// Create handles POST /api/staffs requests.
//
// @Summary      Create staff account
// @Tags         Staffs
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateStaffRequest true "Staff data"
// @Success      201 {object} dto.SuccessResponse "Created staff account"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      409 {object} dto.ErrorResponse "Email already registered"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs [post]
func (h *StaffHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateStaffRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	staff, err := h.staff.Create(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"staff": staff.Public()})
}

// Update handles PATCH /api/staffs/:staffId requests.
//
// @Summary      Update staff profile
// @Tags         Staffs
// @Accept       json
// @Produce      json
// @Param        staffId path string true "Staff id"
// @Param        request body dto.UpdateAccountRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated staff account"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs/{staffId} [patch]
func (h *StaffHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateAccountRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	staff, err := h.staff.Update(c.Request.Context(), c.Param("staffId"), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"staff": staff.Public()})
}

// UpdateStatus handles PATCH /api/staffs/:staffId/status requests.
//
// @Summary      Toggle staff status
// @Tags         Staffs
// @Accept       json
// @Produce      json
// @Param        staffId path string true "Staff id"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated staff account"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs/{staffId}/status [patch]
func (h *StaffHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	staff, err := h.staff.UpdateStatus(c.Request.Context(), c.Param("staffId"), req.Status)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"staff": staff.Public()})
}

// Delete handles DELETE /api/staffs/:staffId requests.
//
// @Summary      Delete staff account
// @Tags         Staffs
// @Produce      json
// @Param        staffId path string true "Staff id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/staffs/{staffId} [delete]
func (h *StaffHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.staff.Delete(c.Request.Context(), c.Param("staffId")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
