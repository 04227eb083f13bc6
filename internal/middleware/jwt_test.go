package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/middleware"
	"github.com/ecomly/ecomly-api/internal/mocks"
	"github.com/ecomly/ecomly-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestJWTAuth(t *testing.T) {
	validClaims := &dto.Claims{
		AccountID: primitive.NewObjectID(),
		Subject:   model.SubjectUser,
		Email:     "ada@example.com",
		Name:      "Ada",
	}

	tests := []struct {
		name           string
		authHeader     string
		setupMocks     func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:           "missing header",
			authHeader:     "",
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer token",
			authHeader:     "Bearer ",
			setupMocks:     func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "bad-token").Return(nil, service.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer good-token",
			setupMocks: func(m *mocks.MockAuthService) {
				m.On("ValidateToken", mock.Anything, "good-token").Return(validClaims, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuth := new(mocks.MockAuthService)
			tt.setupMocks(mockAuth)

			var identity service.Identity
			var hasIdentity bool

			router := gin.New()
			router.Use(middleware.JWTAuth(mockAuth))
			router.GET("/secure", func(c *gin.Context) {
				identity, hasIdentity = middleware.GetIdentity(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.True(t, hasIdentity)
				assert.Equal(t, validClaims.AccountID, identity.ID)
				assert.Equal(t, model.SubjectUser, identity.Subject)
			}
			mockAuth.AssertExpectations(t)
		})
	}
}

func TestGetIdentity_BeforeAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := middleware.GetIdentity(c)
	assert.False(t, ok)
}
