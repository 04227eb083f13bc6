// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginStaff(ctx context.Context, email, password string) (*dto.TokenPair, *model.Staff, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var staff *model.Staff
	if args.Get(1) != nil {
		staff = args.Get(1).(*model.Staff)
	}
	return pair, staff, args.Error(2)
}

func (m *MockAuthService) LoginUser(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, req)
	var pair *dto.TokenPair
	if args.Get(0) != nil {
		pair = args.Get(0).(*dto.TokenPair)
	}
	var user *model.User
	if args.Get(1) != nil {
		user = args.Get(1).(*model.User)
	}
	return pair, user, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, subject, email string) error {
	args := m.Called(ctx, subject, email)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	args := m.Called(ctx, token, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, id service.Identity, currentPassword, newPassword string) error {
	args := m.Called(ctx, id, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*cache.Document[model.Category], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.Category]), args.Error(1)
}

func (m *MockCategoryService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Category], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.Category]), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id string, req dto.UpdateCategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateStatus(ctx context.Context, id, status string) (*model.Category, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Get(ctx context.Context, id string) (*cache.Document[model.Product], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.Product]), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Product], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.Product]), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*model.Product, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) UpdateStatus(ctx context.Context, id, status string) (*model.Product, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*cache.Document[model.Order], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.Order]), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Order], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.Order]), args.Error(1)
}

func (m *MockOrderService) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, customer service.Identity, req dto.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Cancel(ctx context.Context, id string, customer service.Identity) (*model.Order, error) {
	args := m.Called(ctx, id, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Get(ctx context.Context, id string) (*cache.Document[model.Review], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.Review]), args.Error(1)
}

func (m *MockReviewService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Review], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.Review]), args.Error(1)
}

func (m *MockReviewService) ListForProduct(ctx context.Context, productID primitive.ObjectID) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Review), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, customer service.Identity, req dto.CreateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, id string, customer service.Identity, req dto.UpdateReviewRequest) (*model.Review, error) {
	args := m.Called(ctx, id, customer, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id string, actor service.Identity) error {
	args := m.Called(ctx, id, actor)
	return args.Error(0)
}

type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) Get(ctx context.Context, id string) (*cache.Document[model.Staff], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.Staff]), args.Error(1)
}

func (m *MockStaffService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.Staff], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.Staff]), args.Error(1)
}

func (m *MockStaffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*model.Staff, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.Staff, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) UpdateStatus(ctx context.Context, id, status string) (*model.Staff, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Staff), args.Error(1)
}

func (m *MockStaffService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Get(ctx context.Context, id string) (*cache.Document[model.User], error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Document[model.User]), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, q cache.Query) (*cache.Collection[model.User], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cache.Collection[model.User]), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (*model.User, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) UpdateStatus(ctx context.Context, id, status string) (*model.User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokenPair(ctx context.Context, id service.Identity) (*dto.TokenPair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockTokenService) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockTokenService) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockTokenService) InvalidateAccountTokens(ctx context.Context, accountID primitive.ObjectID) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockTokenService) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockTokenService) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenService) GenerateStateToken(ctx context.Context, id service.Identity, tokenType string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, id, tokenType, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ConsumeStateToken(ctx context.Context, tokenString, tokenType string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString, tokenType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendWelcome(to, name string) error {
	args := m.Called(to, name)
	return args.Error(0)
}

func (m *MockMailer) SendOrderConfirmation(to, name, orderID string, total int64) error {
	args := m.Called(to, name, orderID, total)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordReset(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

func (m *MockMailer) SendEmailVerification(to, name, token string) error {
	args := m.Called(to, name, token)
	return args.Error(0)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Upload(ctx context.Context, r io.Reader, size int64, filename, contentType string) (model.Image, error) {
	args := m.Called(ctx, r, size, filename, contentType)
	return args.Get(0).(model.Image), args.Error(1)
}

func (m *MockImageStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
