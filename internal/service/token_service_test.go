package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/mocks"
	"github.com/ecomly/ecomly-api/internal/service"
)

func testTokenConfig() service.TokenConfig {
	return service.TokenConfig{
		SecretKey:        "test-secret-key",
		RefreshSecretKey: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}
}

func testIdentity() service.Identity {
	return service.Identity{
		ID:      primitive.NewObjectID(),
		Subject: model.SubjectUser,
		Email:   "ada@example.com",
		Name:    "Ada",
	}
}

func TestTokenService_GenerateTokenPair(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.Token) bool {
		return tok.AccountID == identity.ID &&
			tok.Subject == model.SubjectUser &&
			tok.Type == model.TokenRefresh &&
			tok.Token != ""
	})).Return(nil)

	pair, err := svc.GenerateTokenPair(context.Background(), identity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)
	mockRepo.AssertExpectations(t)
}

func TestTokenService_GenerateTokenPair_ZeroID(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())

	_, err := svc.GenerateTokenPair(context.Background(), service.Identity{Subject: model.SubjectUser})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()
	identity.Role = model.RoleAdmin
	identity.Subject = model.SubjectStaff

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	pair, err := svc.GenerateTokenPair(context.Background(), identity)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.AccountID)
	assert.Equal(t, model.SubjectStaff, claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestTokenService_ValidateAccessToken_Blacklisted(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())

	mockRepo.On("IsBlacklisted", mock.Anything, "revoked-token").Return(true, nil)

	_, err := svc.ValidateAccessToken(context.Background(), "revoked-token")
	assert.ErrorIs(t, err, service.ErrTokenBlacklisted)
}

func TestTokenService_ValidateAccessToken_WrongKey(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	svc := service.NewTokenService(mockRepo, testTokenConfig())
	pair, err := svc.GenerateTokenPair(context.Background(), testIdentity())
	require.NoError(t, err)

	otherCfg := testTokenConfig()
	otherCfg.SecretKey = "a-different-secret"
	other := service.NewTokenService(mockRepo, otherCfg)

	_, err = other.ValidateAccessToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

// Refresh tokens are signed with the refresh key; an access token must not
// pass refresh validation, nor the other way around.
func TestTokenService_KeysAreNotInterchangeable(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	svc := service.NewTokenService(mockRepo, testTokenConfig())
	pair, err := svc.GenerateTokenPair(context.Background(), testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.ValidateAccessToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, model.SubjectUser, claims.Subject)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockRepo.On("IsBlacklisted", mock.Anything, mock.Anything).Return(false, nil)

	cfg := testTokenConfig()
	cfg.AccessTokenTTL = -time.Minute
	svc := service.NewTokenService(mockRepo, cfg)

	pair, err := svc.GenerateTokenPair(context.Background(), testIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_InvalidateAccessToken(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.Token) bool {
		return tok.Type == model.TokenRefresh
	})).Return(nil)
	pair, err := svc.GenerateTokenPair(context.Background(), identity)
	require.NoError(t, err)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.Token) bool {
		return tok.Type == model.TokenBlacklist &&
			tok.AccountID == identity.ID &&
			tok.Token == pair.AccessToken &&
			tok.ExpiresAt.After(time.Now())
	})).Return(nil)

	require.NoError(t, svc.InvalidateAccessToken(context.Background(), pair.AccessToken))
	mockRepo.AssertExpectations(t)
}

func TestTokenService_StateToken(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()

	var stored *model.Token
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.Token) bool {
		stored = tok
		return tok.Type == model.TokenReset &&
			tok.AccountID == identity.ID &&
			tok.ExpiresAt.After(time.Now())
	})).Return(nil)

	token, err := svc.GenerateStateToken(context.Background(), identity, model.TokenReset, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	mockRepo.On("FindByToken", mock.Anything, token).Return(stored, nil)
	mockRepo.On("DeleteByToken", mock.Anything, token).Return(nil)

	claims, err := svc.ConsumeStateToken(context.Background(), token, model.TokenReset)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, claims.AccountID)
	assert.Equal(t, model.SubjectUser, claims.Subject)
	mockRepo.AssertCalled(t, "DeleteByToken", mock.Anything, token)
}

func TestTokenService_StateToken_WrongType(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.GenerateStateToken(context.Background(), identity, model.TokenVerify, time.Hour)
	require.NoError(t, err)

	mockRepo.On("FindByToken", mock.Anything, token).Return(&model.Token{
		AccountID: identity.ID,
		Type:      model.TokenVerify,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	// A verification token must not reset a password.
	_, err = svc.ConsumeStateToken(context.Background(), token, model.TokenReset)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "DeleteByToken")
}

func TestTokenService_StateToken_AlreadyConsumed(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.GenerateStateToken(context.Background(), testIdentity(), model.TokenReset, time.Hour)
	require.NoError(t, err)

	// No stored row means the token was already burned.
	mockRepo.On("FindByToken", mock.Anything, token).Return(nil, nil)

	_, err = svc.ConsumeStateToken(context.Background(), token, model.TokenReset)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenService_StateToken_ExpiredRow(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	identity := testIdentity()

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	token, err := svc.GenerateStateToken(context.Background(), identity, model.TokenReset, time.Hour)
	require.NoError(t, err)

	mockRepo.On("FindByToken", mock.Anything, token).Return(&model.Token{
		AccountID: identity.ID,
		Type:      model.TokenReset,
		Token:     token,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)

	_, err = svc.ConsumeStateToken(context.Background(), token, model.TokenReset)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
	mockRepo.AssertNotCalled(t, "DeleteByToken")
}

func TestTokenService_InvalidateAccountTokens(t *testing.T) {
	mockRepo := new(mocks.MockTokenRepository)
	svc := service.NewTokenService(mockRepo, testTokenConfig())
	accountID := primitive.NewObjectID()

	mockRepo.On("DeleteByAccountID", mock.Anything, accountID, model.TokenRefresh).Return(nil)

	require.NoError(t, svc.InvalidateAccountTokens(context.Background(), accountID))
	mockRepo.AssertExpectations(t)
}
