package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
	"github.com/ecomly/ecomly-api/internal/repository"
)

// AuthService provides authentication for both staff and shopper accounts.
type AuthService interface {
	LoginStaff(ctx context.Context, email, password string) (*dto.TokenPair, *model.Staff, error)
	LoginUser(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	ForgotPassword(ctx context.Context, subject, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, id Identity, currentPassword, newPassword string) error
	VerifyEmail(ctx context.Context, token string) error
}

// Lifetimes of the emailed single-use tokens.
const (
	resetTokenTTL  = time.Hour
	verifyTokenTTL = 24 * time.Hour
)

// AuthServiceImpl implements AuthService. It verifies credentials against
// MongoDB and delegates token handling to TokenService. Registration writes
// through to the users collection cache.
type AuthServiceImpl struct {
	staffWriter  repository.DocumentWriter[model.Staff]
	userWriter   repository.DocumentWriter[model.User]
	users        *cache.Engine[model.User]
	tokenService TokenService
	mailer       Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	staffWriter repository.DocumentWriter[model.Staff],
	userWriter repository.DocumentWriter[model.User],
	users *cache.Engine[model.User],
	tokenService TokenService,
	mailer Mailer,
) AuthService {
	return &AuthServiceImpl{
		staffWriter:  staffWriter,
		userWriter:   userWriter,
		users:        users,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

// LoginStaff authenticates a staff account and returns JWT tokens.
func (s *AuthServiceImpl) LoginStaff(ctx context.Context, email, password string) (*dto.TokenPair, *model.Staff, error) {
	staff, err := s.staffWriter.FindOneBy(ctx, "email", email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find staff by email: %w", err)
	}
	if staff == nil || staff.Status != model.StatusActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.issueTokens(ctx, Identity{
		ID:      staff.ID,
		Subject: model.SubjectStaff,
		Email:   staff.Email,
		Name:    staff.Name,
		Role:    staff.Role,
	})
	if err != nil {
		return nil, nil, err
	}

	return tokenPair, staff, nil
}

// LoginUser authenticates a shopper account and returns JWT tokens.
func (s *AuthServiceImpl) LoginUser(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userWriter.FindOneBy(ctx, "email", email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || user.Status != model.StatusActive {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokenPair, err := s.issueTokens(ctx, Identity{
		ID:      user.ID,
		Subject: model.SubjectUser,
		Email:   user.Email,
		Name:    user.Name,
	})
	if err != nil {
		return nil, nil, err
	}

	return tokenPair, user, nil
}

// RegisterUser creates a shopper account, invalidates the cached user
// listings, and sends a welcome email.
func (s *AuthServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*dto.TokenPair, *model.User, error) {
	existing, err := s.userWriter.FindOneBy(ctx, "email", req.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashed),
		Phone:     req.Phone,
		Status:    model.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.userWriter.Insert(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	user.ID = id

	s.users.InvalidateCollection(ctx)
	s.users.Repopulate(ctx, id.Hex(), user.Public())

	if err := s.mailer.SendWelcome(user.Email, user.Name); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
	}

	s.sendVerificationEmail(ctx, Identity{
		ID:      user.ID,
		Subject: model.SubjectUser,
		Email:   user.Email,
		Name:    user.Name,
	})

	tokenPair, err := s.issueTokens(ctx, Identity{
		ID:      user.ID,
		Subject: model.SubjectUser,
		Email:   user.Email,
		Name:    user.Name,
	})
	if err != nil {
		return nil, nil, err
	}

	return tokenPair, user, nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair. The old
// refresh token is rotated out before the new one is stored.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Type != model.TokenRefresh {
		return nil, ErrInvalidToken
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	identity, err := s.lookupIdentity(ctx, claims)
	if err != nil {
		return nil, err
	}

	if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to delete old refresh token: %w", err)
	}

	return s.tokenService.GenerateTokenPair(ctx, identity)
}

// ValidateToken validates an access token and returns its claims.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	return s.tokenService.ValidateAccessToken(ctx, tokenString)
}

// Logout blacklists the access token and removes the refresh token.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokenService.InvalidateAccessToken(ctx, accessToken); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate access token during logout")
			errs = append(errs, fmt.Errorf("invalidate access token: %w", err))
		}
	}

	if refreshToken != "" {
		if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Msg("failed to delete refresh token during logout")
			errs = append(errs, fmt.Errorf("delete refresh token: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ForgotPassword mails a single-use reset token to the account with the
// given email. Unknown emails are not reported to the caller, so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, subject, email string) error {
	identity, err := s.findAccountByEmail(ctx, subject, email)
	if err != nil {
		return err
	}
	if identity == nil {
		return nil
	}

	token, err := s.tokenService.GenerateStateToken(ctx, *identity, model.TokenReset, resetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create reset token: %w", err)
	}

	if err := s.mailer.SendPasswordReset(identity.Email, identity.Name, token); err != nil {
		log.Warn().Err(err).Str("email", identity.Email).Msg("failed to send password reset email")
	}

	return nil
}

// ResetPassword redeems a reset token and stores the new password. All
// refresh tokens of the account are revoked so stolen sessions die with
// the old password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := s.tokenService.ConsumeStateToken(ctx, token, model.TokenReset)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.updatePassword(ctx, claims.Subject, claims.AccountID, string(hashed)); err != nil {
		return err
	}

	if err := s.tokenService.InvalidateAccountTokens(ctx, claims.AccountID); err != nil {
		log.Warn().Err(err).Msg("failed to revoke refresh tokens after password reset")
	}

	return nil
}

// ChangePassword rotates the password of the acting account after checking
// the current one.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, id Identity, currentPassword, newPassword string) error {
	var storedHash string
	switch id.Subject {
	case model.SubjectStaff:
		staff, err := s.staffWriter.Get(ctx, id.ID)
		if err != nil {
			return err
		}
		if staff == nil {
			return ErrInvalidCredentials
		}
		storedHash = staff.Password
	case model.SubjectUser:
		user, err := s.userWriter.Get(ctx, id.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrInvalidCredentials
		}
		storedHash = user.Password
	default:
		return ErrInvalidToken
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.updatePassword(ctx, id.Subject, id.ID, string(hashed)); err != nil {
		return err
	}

	if err := s.tokenService.InvalidateAccountTokens(ctx, id.ID); err != nil {
		log.Warn().Err(err).Msg("failed to revoke refresh tokens after password change")
	}

	return nil
}

// VerifyEmail redeems a verification token and marks the shopper account
// verified. The users cache is refreshed because the verified flag is part
// of the public projection.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.tokenService.ConsumeStateToken(ctx, token, model.TokenVerify)
	if err != nil {
		return err
	}
	if claims.Subject != model.SubjectUser {
		return ErrInvalidToken
	}

	matched, err := s.userWriter.Update(ctx, claims.AccountID, bson.M{
		"verified":   true,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	if !matched {
		return cache.ErrNotFound
	}

	user, err := s.userWriter.Get(ctx, claims.AccountID)
	if err != nil || user == nil {
		return err
	}

	s.users.InvalidateCollection(ctx)
	s.users.Repopulate(ctx, claims.AccountID.Hex(), user.Public())

	return nil
}

// sendVerificationEmail mints a verification token and mails it. Failures
// are logged only; registration never fails on mail delivery.
func (s *AuthServiceImpl) sendVerificationEmail(ctx context.Context, id Identity) {
	token, err := s.tokenService.GenerateStateToken(ctx, id, model.TokenVerify, verifyTokenTTL)
	if err != nil {
		log.Warn().Err(err).Str("email", id.Email).Msg("failed to create verification token")
		return
	}
	if err := s.mailer.SendEmailVerification(id.Email, id.Name, token); err != nil {
		log.Warn().Err(err).Str("email", id.Email).Msg("failed to send verification email")
	}
}

// findAccountByEmail resolves an active account of the given subject; nil
// identity when no such account exists.
func (s *AuthServiceImpl) findAccountByEmail(ctx context.Context, subject, email string) (*Identity, error) {
	switch subject {
	case model.SubjectStaff:
		staff, err := s.staffWriter.FindOneBy(ctx, "email", email)
		if err != nil {
			return nil, err
		}
		if staff == nil || staff.Status != model.StatusActive {
			return nil, nil
		}
		return &Identity{ID: staff.ID, Subject: model.SubjectStaff, Email: staff.Email, Name: staff.Name, Role: staff.Role}, nil
	case model.SubjectUser:
		user, err := s.userWriter.FindOneBy(ctx, "email", email)
		if err != nil {
			return nil, err
		}
		if user == nil || user.Status != model.StatusActive {
			return nil, nil
		}
		return &Identity{ID: user.ID, Subject: model.SubjectUser, Email: user.Email, Name: user.Name}, nil
	default:
		return nil, ErrInvalidToken
	}
}

// updatePassword writes a new password hash for the account.
func (s *AuthServiceImpl) updatePassword(ctx context.Context, subject string, accountID primitive.ObjectID, hash string) error {
	patch := bson.M{"password": hash, "updated_at": time.Now()}
	switch subject {
	case model.SubjectStaff:
		matched, err := s.staffWriter.Update(ctx, accountID, patch)
		if err != nil {
			return err
		}
		if !matched {
			return cache.ErrNotFound
		}
		return nil
	case model.SubjectUser:
		matched, err := s.userWriter.Update(ctx, accountID, patch)
		if err != nil {
			return err
		}
		if !matched {
			return cache.ErrNotFound
		}
		return nil
	default:
		return ErrInvalidToken
	}
}

// issueTokens rotates refresh tokens for the account and mints a new pair.
func (s *AuthServiceImpl) issueTokens(ctx context.Context, id Identity) (*dto.TokenPair, error) {
	if err := s.tokenService.InvalidateAccountTokens(ctx, id.ID); err != nil {
		return nil, fmt.Errorf("failed to invalidate existing tokens: %w", err)
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return tokenPair, nil
}

// lookupIdentity re-reads the account named by refresh claims so a rotated
// pair always carries the current role and status.
func (s *AuthServiceImpl) lookupIdentity(ctx context.Context, claims *dto.Claims) (Identity, error) {
	switch claims.Subject {
	case model.SubjectStaff:
		staff, err := s.staffWriter.Get(ctx, claims.AccountID)
		if err != nil {
			return Identity{}, err
		}
		if staff == nil || staff.Status != model.StatusActive {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{
			ID:      staff.ID,
			Subject: model.SubjectStaff,
			Email:   staff.Email,
			Name:    staff.Name,
			Role:    staff.Role,
		}, nil
	case model.SubjectUser:
		user, err := s.userWriter.Get(ctx, claims.AccountID)
		if err != nil {
			return Identity{}, err
		}
		if user == nil || user.Status != model.StatusActive {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{
			ID:      user.ID,
			Subject: model.SubjectUser,
			Email:   user.Email,
			Name:    user.Name,
		}, nil
	default:
		return Identity{}, ErrInvalidToken
	}
}
