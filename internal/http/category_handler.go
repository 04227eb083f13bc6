package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/service"
)

// CategoryHandler provides HTTP handlers for category routes.
type CategoryHandler struct {
	categories service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Get handles GET /api/categories/:categoryId requests.
//
// @Summary      Get category
// @Description  Returns a single category, served from cache when possible
// @Tags         Categories
// @Produce      json
// @Param        categoryId path string true "Category id"
// @Success      200 {object} dto.SuccessResponse "Category"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/categories/{categoryId} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.categories.Get(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindCategory, doc))
}

// List handles GET /api/categories requests.
//
// @Summary      List categories
// @Description  Returns a page of categories regardless of status
// @Tags         Categories
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "Categories with pagination"
// @Failure      404 {object} dto.ErrorResponse "No categories on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	h.list(c, "")
}

// ListActive handles GET /api/categories/active requests.
//
// @Summary      List active categories
// @Tags         Categories
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "Active categories with pagination"
// @Failure      404 {object} dto.ErrorResponse "No categories on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/categories/active [get]
func (h *CategoryHandler) ListActive(c *gin.Context) {
	h.list(c, cache.StatusActive)
}

// ListInactive handles GET /api/categories/inactive requests.
//
// @Summary      List inactive categories
// @Tags         Categories
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Success      200 {object} dto.SuccessResponse "Inactive categories with pagination"
// @Failure      404 {object} dto.ErrorResponse "No categories on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories/inactive [get]
func (h *CategoryHandler) ListInactive(c *gin.Context) {
	h.list(c, cache.StatusInactive)
}

func (h *CategoryHandler) list(c *gin.Context, status cache.Status) {
	builder := NewResponseBuilder(c)

	q := parseListQuery(c)
	q.Status = status

	col, err := h.categories.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagCategories, col))
}

// Create handles POST /api/categories requests.
//
// @Summary      Create category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "Category data"
// @Success      201 {object} dto.SuccessResponse "Created category"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      409 {object} dto.ErrorResponse "Name already taken"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateCategoryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	category, err := h.categories.Create(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"category": category})
}

// Update handles PATCH /api/categories/:categoryId requests.
//
// @Summary      Update category
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        categoryId path string true "Category id"
// @Param        request body dto.UpdateCategoryRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated category"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories/{categoryId} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateCategoryRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	category, err := h.categories.Update(c.Request.Context(), c.Param("categoryId"), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"category": category})
}

// UpdateStatus handles PATCH /api/categories/:categoryId/status requests.
//
// @Summary      Toggle category status
// @Tags         Categories
// @Accept       json
// @Produce      json
// @Param        categoryId path string true "Category id"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated category"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories/{categoryId}/status [patch]
func (h *CategoryHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	category, err := h.categories.UpdateStatus(c.Request.Context(), c.Param("categoryId"), req.Status)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"category": category})
}

// Delete handles DELETE /api/categories/:categoryId requests.
//
// @Summary      Delete category
// @Tags         Categories
// @Produce      json
// @Param        categoryId path string true "Category id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.categories.Delete(c.Request.Context(), c.Param("categoryId")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
