package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/i18n"
)

// RequireSubject returns a middleware that only lets accounts of the given
// subject through. Must run after JWTAuth.
func RequireSubject(subject string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c)
			return
		}
		if claims.Subject != subject {
			abortForbidden(c)
			return
		}
		c.Next()
	}
}

// RequireStaffRole returns a middleware that requires a staff account whose
// role is one of the given roles. An empty role list admits any staff.
// Must run after JWTAuth.
func RequireStaffRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c)
			return
		}
		if claims.Subject != model.SubjectStaff {
			abortForbidden(c)
			return
		}
		if len(roles) > 0 {
			allowed := false
			for _, role := range roles {
				if claims.Role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				abortForbidden(c)
				return
			}
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	locale := i18n.GetLocale(c)
	message := i18n.GetTranslator().Translate(i18n.ErrKeyUnauthorized, locale)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}

func abortForbidden(c *gin.Context) {
	locale := i18n.GetLocale(c)
	message := i18n.GetTranslator().Translate(i18n.ErrKeyForbidden, locale)
	errorResp := dto.NewError(dto.ErrCodeForbidden, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusForbidden, errorResp)
}
