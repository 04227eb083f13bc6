// Package http wires the Gin handlers, routes, and router of the store API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/i18n"
	"github.com/ecomly/ecomly-api/internal/service"
)

// parseListQuery reads the shared listing query parameters. Pagination
// defaults and skip derivation happen inside the cache engine.
func parseListQuery(c *gin.Context) cache.Query {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	return cache.Query{
		Page:     page,
		Limit:    limit,
		SortType: c.Query("sort_type"),
		SearchBy: c.Query("search_by"),
	}
}

// respondServiceError translates service and cache errors into the API's
// error vocabulary.
func respondServiceError(builder *ResponseBuilder, err error) {
	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &validationErr):
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, cache.ErrInvalidID):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
	case errors.Is(err, cache.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrEmailTaken):
		builder.Error(http.StatusConflict, i18n.ErrKeyEmailTaken, err)
	case errors.Is(err, service.ErrNameTaken):
		builder.Error(http.StatusConflict, i18n.ErrKeyNameTaken, err)
	case errors.Is(err, service.ErrUnknownReference):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownReference, err)
	case errors.Is(err, service.ErrInsufficientStock):
		builder.Error(http.StatusConflict, i18n.ErrKeyInsufficientStock, err)
	case errors.Is(err, service.ErrInvalidCredentials):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrTokenBlacklisted):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, err)
	case errors.Is(err, service.ErrForbidden):
		builder.Error(http.StatusForbidden, i18n.ErrKeyForbidden, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// documentPayload shapes a single cached document response.
func documentPayload[T any](kind cache.Kind, doc *cache.Document[T]) gin.H {
	return gin.H{
		"from_cache": doc.FromCache,
		string(kind): doc.Payload,
	}
}

// collectionPayload shapes a cached listing response. The items land under
// the collection tag, matching the per-collection total field emitted by
// the pagination block.
func collectionPayload[T any](tag cache.Tag, col *cache.Collection[T]) gin.H {
	return gin.H{
		"from_cache": col.FromCache,
		string(tag):  col.Items,
		"pagination": col.Pagination,
		"links":      col.Pagination.Links(),
	}
}
