package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// Identity is the account information a token is minted for, shared by
// staff and shopper accounts.
type Identity struct {
	ID      primitive.ObjectID
	Subject string
	Email   string
	Name    string
	Role    string
}

// ClaimsWithJWT embeds application claims into JWT registered claims.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenService provides token-related operations.
type TokenService interface {
	// GenerateTokenPair generates a new access and refresh token pair for an account.
	GenerateTokenPair(ctx context.Context, id Identity) (*dto.TokenPair, error)
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// ValidateRefreshToken validates a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*dto.Claims, error)
	// InvalidateAccessToken blacklists an access token.
	InvalidateAccessToken(ctx context.Context, tokenString string) error
	// InvalidateAccountTokens removes all refresh tokens for an account.
	InvalidateAccountTokens(ctx context.Context, accountID primitive.ObjectID) error
	// DeleteRefreshToken removes a specific refresh token.
	DeleteRefreshToken(ctx context.Context, tokenString string) error
	// FindRefreshToken finds a refresh token by its string value.
	FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error)
	// GenerateStateToken mints a single-use token for a side flow such as a
	// password reset or an email verification.
	GenerateStateToken(ctx context.Context, id Identity, tokenType string, ttl time.Duration) (string, error)
	// ConsumeStateToken validates a state token of the given type and burns it.
	ConsumeStateToken(ctx context.Context, tokenString, tokenType string) (*dto.Claims, error)
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey        []byte
	refreshSecretKey []byte
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	tokenRepo        repository.TokenRepositoryInterface
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		secretKey:        []byte(cfg.SecretKey),
		refreshSecretKey: []byte(cfg.RefreshSecretKey),
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		tokenRepo:        tokenRepo,
	}
}

// GenerateTokenPair generates a new access and refresh token pair for an account.
func (s *TokenServiceImpl) GenerateTokenPair(ctx context.Context, id Identity) (*dto.TokenPair, error) {
	if id.ID.IsZero() {
		return nil, errors.New("account ID is zero, cannot create token")
	}

	accessToken, err := s.signToken(id, s.secretKey, s.accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshExpiresAt := time.Now().Add(s.refreshTokenTTL)
	refreshToken, err := s.signToken(id, s.refreshSecretKey, s.refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	token := &model.Token{
		AccountID: id.ID,
		Subject:   id.Subject,
		Token:     refreshToken,
		Type:      model.TokenRefresh,
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *TokenServiceImpl) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	isBlacklisted, err := s.tokenRepo.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrTokenBlacklisted
	}

	return s.parseToken(tokenString, s.secretKey)
}

// ValidateRefreshToken validates a refresh token and returns its claims.
func (s *TokenServiceImpl) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	return s.parseToken(tokenString, s.refreshSecretKey)
}

// InvalidateAccessToken blacklists an access token until its natural expiry.
func (s *TokenServiceImpl) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return err
	}

	claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT)
	if !ok {
		return ErrInvalidToken
	}

	expiresAt := time.Now().Add(s.accessTokenTTL)
	if claimsWithJWT.ExpiresAt != nil {
		expiresAt = claimsWithJWT.ExpiresAt.Time
	}

	blacklistToken := &model.Token{
		AccountID: claimsWithJWT.AccountID,
		Subject:   claimsWithJWT.Claims.Subject,
		Token:     tokenString,
		Type:      model.TokenBlacklist,
		ExpiresAt: expiresAt,
	}

	return s.tokenRepo.Create(ctx, blacklistToken)
}

// InvalidateAccountTokens removes all refresh tokens for an account.
func (s *TokenServiceImpl) InvalidateAccountTokens(ctx context.Context, accountID primitive.ObjectID) error {
	return s.tokenRepo.DeleteByAccountID(ctx, accountID, model.TokenRefresh)
}

// DeleteRefreshToken removes a specific refresh token.
func (s *TokenServiceImpl) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	return s.tokenRepo.DeleteByToken(ctx, tokenString)
}

// FindRefreshToken finds a refresh token by its string value.
func (s *TokenServiceImpl) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return s.tokenRepo.FindByToken(ctx, tokenString)
}

// GenerateStateToken mints a signed token for a side flow (password reset,
// email verification) and stores it so it can only be redeemed once.
func (s *TokenServiceImpl) GenerateStateToken(ctx context.Context, id Identity, tokenType string, ttl time.Duration) (string, error) {
	if id.ID.IsZero() {
		return "", errors.New("account ID is zero, cannot create token")
	}

	tokenString, err := s.signToken(id, s.secretKey, ttl)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s token: %w", tokenType, err)
	}

	token := &model.Token{
		AccountID: id.ID,
		Subject:   id.Subject,
		Token:     tokenString,
		Type:      tokenType,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store %s token: %w", tokenType, err)
	}

	return tokenString, nil
}

// ConsumeStateToken validates a state token, checks it is the expected type
// and still stored, and deletes it so a second redemption fails.
func (s *TokenServiceImpl) ConsumeStateToken(ctx context.Context, tokenString, tokenType string) (*dto.Claims, error) {
	claims, err := s.parseToken(tokenString, s.secretKey)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokenRepo.FindByToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Type != tokenType {
		return nil, ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	if err := s.tokenRepo.DeleteByToken(ctx, tokenString); err != nil {
		return nil, fmt.Errorf("failed to burn %s token: %w", tokenType, err)
	}

	return claims, nil
}

func (s *TokenServiceImpl) signToken(id Identity, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			AccountID: id.ID,
			Subject:   id.Subject,
			Email:     id.Email,
			Name:      id.Name,
			Role:      id.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

func (s *TokenServiceImpl) parseToken(tokenString string, key []byte) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claimsWithJWT, ok := token.Claims.(*ClaimsWithJWT); ok && token.Valid {
		return &claimsWithJWT.Claims, nil
	}

	return nil, ErrInvalidToken
}
