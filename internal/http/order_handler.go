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

// OrderHandler provides HTTP handlers for order routes.
type OrderHandler struct {
	orders service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Get handles GET /api/orders/:orderId requests.
//
// @Summary      Get order
// @Description  Returns a single order, served from cache when possible
// @Tags         Orders
// @Produce      json
// @Param        orderId path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{orderId} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.orders.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindOrder, doc))
}

// List handles GET /api/orders requests. The optional status query parameter
// partitions the listing by order lifecycle state.
//
// @Summary      List orders
// @Tags         Orders
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Param        status query string false "pending, processing, shipped, delivered, or cancelled"
// @Success      200 {object} dto.SuccessResponse "Orders with pagination"
// @Failure      404 {object} dto.ErrorResponse "No orders on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	q := parseListQuery(c)
	q.Status = cache.Status(c.Query("status"))

	col, err := h.orders.List(c.Request.Context(), q)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagOrders, col))
}

// ListMine handles GET /api/orders/mine requests for the acting shopper.
//
// @Summary      List own orders
// @Tags         Orders
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Orders of the authenticated shopper"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/mine [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	orders, err := h.orders.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"orders": orders})
}

// Create handles POST /api/orders requests.
//
// @Summary      Place order
// @Description  Places an order for the authenticated shopper; product name and unit price are copied per line at order time
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "Order lines"
// @Success      201 {object} dto.SuccessResponse "Created order"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or unknown product"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      409 {object} dto.ErrorResponse "Insufficient stock"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), identity, *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"order": order})
}

// UpdateStatus handles PATCH /api/orders/:orderId/status requests.
//
// @Summary      Update order status
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        orderId path string true "Order id"
// @Param        request body dto.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{orderId}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateOrderStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"order": order})
}

// Cancel handles POST /api/orders/:orderId/cancel requests.
//
// @Summary      Cancel own order
// @Description  Cancels a pending order of the authenticated shopper and restores the claimed stock
// @Tags         Orders
// @Produce      json
// @Param        orderId path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Cancelled order"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      403 {object} dto.ErrorResponse "Not the order's owner or not cancellable"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{orderId}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	order, err := h.orders.Cancel(c.Request.Context(), c.Param("orderId"), identity)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"order": order})
}

// Delete handles DELETE /api/orders/:orderId requests.
//
// @Summary      Delete order
// @Description  Removes an order; stock claimed by a pending or processing order is restored
// @Tags         Orders
// @Produce      json
// @Param        orderId path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Deletion confirmation"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/orders/{orderId} [delete]
func (h *OrderHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.orders.Delete(c.Request.Context(), c.Param("orderId")); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
