package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
)

func withClaims(claims *dto.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(ClaimsKey, claims)
		}
		c.Next()
	}
}

func runGuard(guard gin.HandlerFunc, claims *dto.Claims) int {
	router := gin.New()
	router.Use(withClaims(claims), guard)
	router.GET("/secure", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
	return w.Code
}

func TestRequireSubject(t *testing.T) {
	shopper := &dto.Claims{AccountID: primitive.NewObjectID(), Subject: model.SubjectUser}
	staff := &dto.Claims{AccountID: primitive.NewObjectID(), Subject: model.SubjectStaff, Role: model.RoleAdmin}

	tests := []struct {
		name     string
		subject  string
		claims   *dto.Claims
		expected int
	}{
		{"matching subject passes", model.SubjectUser, shopper, http.StatusOK},
		{"staff blocked from shopper routes", model.SubjectUser, staff, http.StatusForbidden},
		{"shopper blocked from staff routes", model.SubjectStaff, shopper, http.StatusForbidden},
		{"missing claims unauthorized", model.SubjectUser, nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runGuard(RequireSubject(tt.subject), tt.claims))
		})
	}
}

func TestRequireStaffRole(t *testing.T) {
	claims := func(subject, role string) *dto.Claims {
		return &dto.Claims{AccountID: primitive.NewObjectID(), Subject: subject, Role: role}
	}

	tests := []struct {
		name     string
		roles    []string
		claims   *dto.Claims
		expected int
	}{
		{"any staff when no roles listed", nil, claims(model.SubjectStaff, model.RoleStaff), http.StatusOK},
		{"admin passes admin gate", []string{model.RoleAdmin}, claims(model.SubjectStaff, model.RoleAdmin), http.StatusOK},
		{"editor passes editor gate", []string{model.RoleAdmin, model.RoleEditor}, claims(model.SubjectStaff, model.RoleEditor), http.StatusOK},
		{"plain staff fails editor gate", []string{model.RoleAdmin, model.RoleEditor}, claims(model.SubjectStaff, model.RoleStaff), http.StatusForbidden},
		{"shopper always forbidden", nil, claims(model.SubjectUser, ""), http.StatusForbidden},
		{"missing claims unauthorized", []string{model.RoleAdmin}, nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, runGuard(RequireStaffRole(tt.roles...), tt.claims))
		})
	}
}
