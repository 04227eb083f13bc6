package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/service"
)

// ProductHandler provides HTTP handlers for product routes.
type ProductHandler struct {
	products service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// Get handles GET /api/products/:productId requests.
//
// @Summary      Get product
// @Description  Returns a single product, served from cache when possible
// @Tags         Products
// @Produce      json
// @Param        productId path string true "Product id"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{productId} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.products.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindProduct, doc))
}

// List handles GET /api/products requests.
//
// @Summary      List products
// @Description  Returns a page of products regardless of status
// @Tags         Products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "Products with pagination"
// @Failure      404 {object} dto.ErrorResponse "No products on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	h.list(c, "")
}

// ListActive handles GET /api/products/active requests.
//
// @Summary      List active products
// @Tags         Products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        search_by query string false "Name search term"
// @Success      200 {object} dto.SuccessResponse "Active products with pagination"
// @Failure      404 {object} dto.ErrorResponse "No products on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/active [get]
func (h *ProductHandler) ListActive(c *gin.Context) {
	h.list(c, cache.StatusActive)
}

// ListInactive handles GET /api/products/inactive requests.
//
// @Summary      List inactive products
// @Tags         Products
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Success      200 {object} dto.SuccessResponse "Inactive products with pagination"
// @Failure      404 {object} dto.ErrorResponse "No products on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/inactive [get]
func (h *ProductHandler) ListInactive(c *gin.Context) {
	h.list(c, cache.StatusInactive)
}

func (h *ProductHandler) list(c *gin.Context, status cache.Status) {
	builder := NewResponseBuilder(c)

	q := parseListQuery(c)
	q.Status = status

	col, err := h.products.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagProducts, col))
}

// Create handles POST /api/products requests.
//
// @Summary      Create product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateProductRequest true "Product data"
// @Success      201 {object} dto.SuccessResponse "Created product"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or unknown category"
// @Failure      409 {object} dto.ErrorResponse "Name already taken"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.Create(c.Request.Context(), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"product": product})
}

// Update handles PATCH /api/products/:productId requests.
//
// @Summary      Update product
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product id"
// @Param        request body dto.UpdateProductRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{productId} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateProductRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("productId"), *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"product": product})
}

// UpdateStatus handles PATCH /api/products/:productId/status requests.
//
// @Summary      Toggle product status
// @Tags         Products
// @Accept       json
// @Produce      json
// @Param        productId path string true "Product id"
// @Param        request body dto.UpdateStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{productId}/status [patch]
func (h *ProductHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	product, err := h.products.UpdateStatus(c.Request.Context(), c.Param("productId"), req.Status)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"product": product})
}

// Delete handles DELETE /api/products/:productId requests.
//
// @Summary      Delete product
// @Tags         Products
// @Produce      json
// @Param        productId path string true "Product id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/products/{productId} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.products.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
