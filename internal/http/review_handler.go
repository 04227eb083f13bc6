package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/service"
)

// ReviewHandler provides HTTP handlers for review routes.
type ReviewHandler struct {
	reviews service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Get handles GET /api/reviews/:reviewId requests.
//
// @Summary      Get review
// @Tags         Reviews
// @Produce      json
// @Param        reviewId path string true "Review id"
// @Success      200 {object} dto.SuccessResponse "Review"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/reviews/{reviewId} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	doc, err := h.reviews.Get(c.Request.Context(), c.Param("reviewId"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(documentPayload(cache.KindReview, doc))
}

// List handles GET /api/reviews requests.
//
// @Summary      List reviews
// @Tags         Reviews
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        limit query int false "Page size" default(8)
// @Param        sort_type query string false "asc or dsc" default(asc)
// @Success      200 {object} dto.SuccessResponse "Reviews with pagination"
// @Failure      404 {object} dto.ErrorResponse "No reviews on this page"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	col, err := h.reviews.List(c.Request.Context(), parseListQuery(c))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(collectionPayload(cache.TagReviews, col))
}

// ListForProduct handles GET /api/products/:productId/reviews requests.
//
// @Summary      List product reviews
// @Tags         Reviews
// @Produce      json
// @Param        productId path string true "Product id"
// @Success      200 {object} dto.SuccessResponse "Reviews of the product"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products/{productId}/reviews [get]
func (h *ReviewHandler) ListForProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	productID, err := primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return
	}

	reviews, err := h.reviews.ListForProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"reviews": reviews})
}

// Create handles POST /api/reviews requests.
//
// @Summary      Create review
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "Review data"
// @Success      201 {object} dto.SuccessResponse "Created review"
// @Failure      400 {object} dto.ErrorResponse "Invalid input or unknown product"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.CreateReviewRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	review, err := h.reviews.Create(c.Request.Context(), identity, *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessCreated(gin.H{"review": review})
}

// Update handles PATCH /api/reviews/:reviewId requests.
//
// @Summary      Update own review
// @Tags         Reviews
// @Accept       json
// @Produce      json
// @Param        reviewId path string true "Review id"
// @Param        request body dto.UpdateReviewRequest true "Fields to update"
// @Success      200 {object} dto.SuccessResponse "Updated review"
// @Failure      400 {object} dto.ErrorResponse "Invalid input"
// @Failure      403 {object} dto.ErrorResponse "Not the review's author"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reviews/{reviewId} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	req, err := BuildRequestAndValidate[dto.UpdateReviewRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	review, err := h.reviews.Update(c.Request.Context(), c.Param("reviewId"), identity, *req)
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"review": review})
}

// Delete handles DELETE /api/reviews/:reviewId requests.
//
// @Summary      Delete review
// @Description  Authors may delete their own reviews; staff may delete any
// @Tags         Reviews
// @Produce      json
// @Param        reviewId path string true "Review id"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      400 {object} dto.ErrorResponse "Invalid id"
// @Failure      403 {object} dto.ErrorResponse "Forbidden"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/reviews/{reviewId} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	identity, ok := middleware.GetIdentity(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), c.Param("reviewId"), identity); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"deleted": true})
}
