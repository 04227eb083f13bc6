package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecomly/ecomly-api/internal/cache"
	"github.com/ecomly/ecomly-api/internal/domain/dto"
	"github.com/ecomly/ecomly-api/internal/domain/model"
)

// fakeTokenService keeps state tokens in a map so redemption is single-use,
// like the real implementation backed by the token collection.
type fakeTokenService struct {
	stateClaims map[string]*dto.Claims
	stateTypes  map[string]string
	minted      int
	mintedTypes []string
	revoked     []primitive.ObjectID
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		stateClaims: make(map[string]*dto.Claims),
		stateTypes:  make(map[string]string),
	}
}

func (f *fakeTokenService) GenerateTokenPair(_ context.Context, id Identity) (*dto.TokenPair, error) {
	return &dto.TokenPair{AccessToken: "access-" + id.ID.Hex(), RefreshToken: "refresh-" + id.ID.Hex(), ExpiresIn: 900}, nil
}

func (f *fakeTokenService) ValidateAccessToken(context.Context, string) (*dto.Claims, error) {
	return nil, ErrInvalidToken
}

func (f *fakeTokenService) ValidateRefreshToken(string) (*dto.Claims, error) {
	return nil, ErrInvalidToken
}

func (f *fakeTokenService) InvalidateAccessToken(context.Context, string) error { return nil }

func (f *fakeTokenService) InvalidateAccountTokens(_ context.Context, accountID primitive.ObjectID) error {
	f.revoked = append(f.revoked, accountID)
	return nil
}

func (f *fakeTokenService) DeleteRefreshToken(context.Context, string) error { return nil }

func (f *fakeTokenService) FindRefreshToken(context.Context, string) (*model.Token, error) {
	return nil, nil
}

func (f *fakeTokenService) GenerateStateToken(_ context.Context, id Identity, tokenType string, _ time.Duration) (string, error) {
	f.minted++
	f.mintedTypes = append(f.mintedTypes, tokenType)
	token := fmt.Sprintf("%s-token-%d", tokenType, f.minted)
	f.stateClaims[token] = &dto.Claims{AccountID: id.ID, Subject: id.Subject, Email: id.Email, Name: id.Name, Role: id.Role}
	f.stateTypes[token] = tokenType
	return token, nil
}

func (f *fakeTokenService) ConsumeStateToken(_ context.Context, tokenString, tokenType string) (*dto.Claims, error) {
	claims, ok := f.stateClaims[tokenString]
	if !ok || f.stateTypes[tokenString] != tokenType {
		return nil, ErrInvalidToken
	}
	delete(f.stateClaims, tokenString)
	delete(f.stateTypes, tokenString)
	return claims, nil
}

// fakeMailer records every outbound email.
type fakeMailer struct {
	sent   []string
	tokens []string
}

func (m *fakeMailer) SendWelcome(string, string) error {
	m.sent = append(m.sent, "welcome")
	return nil
}

func (m *fakeMailer) SendOrderConfirmation(string, string, string, int64) error {
	m.sent = append(m.sent, "order_confirmation")
	return nil
}

func (m *fakeMailer) SendPasswordReset(_, _, token string) error {
	m.sent = append(m.sent, "password_reset")
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *fakeMailer) SendEmailVerification(_, _, token string) error {
	m.sent = append(m.sent, "email_verification")
	m.tokens = append(m.tokens, token)
	return nil
}

type authFixture struct {
	log    *eventLog
	kv     *fakeKV
	staffs *fakeWriter[model.Staff]
	users  *fakeWriter[model.User]
	tokens *fakeTokenService
	mailer *fakeMailer
	svc    AuthService
}

func newAuthFixture() *authFixture {
	log := &eventLog{}
	kv := newFakeKV(log)
	staffs := newFakeWriter[model.Staff](log, "staffs")
	users := newFakeWriter[model.User](log, "users")
	tokens := newFakeTokenService()
	mailer := &fakeMailer{}

	userEngine := cache.NewEngine(cache.Config[model.User]{
		Kind:    cache.KindUser,
		Tag:     cache.TagUsers,
		Project: model.User.Public,
	}, kv, stubStore[model.User]{}, zerolog.Nop())

	return &authFixture{
		log:    log,
		kv:     kv,
		staffs: staffs,
		users:  users,
		tokens: tokens,
		mailer: mailer,
		svc:    NewAuthService(staffs, users, userEngine, tokens, mailer),
	}
}

func (f *authFixture) seedUser(email, password string) *model.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		ID:       primitive.NewObjectID(),
		Name:     "Jane Doe",
		Email:    email,
		Password: string(hashed),
		Status:   model.StatusActive,
	}
	f.users.docs[user.ID] = user
	f.users.seedOneBy("email", email, user)
	return user
}

func TestAuthService_RegisterInvalidatesOnceAndSendsVerification(t *testing.T) {
	f := newAuthFixture()

	pair, user, err := f.svc.RegisterUser(context.Background(), dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, pair)
	require.NotNil(t, user)

	assert.Equal(t, 1, f.log.count("cache_invalidate"))
	assert.Less(t, f.log.indexOf("users_insert"), f.log.indexOf("cache_invalidate"))

	assert.Contains(t, f.mailer.sent, "welcome")
	assert.Contains(t, f.mailer.sent, "email_verification")
	assert.Equal(t, []string{model.TokenVerify}, f.tokens.mintedTypes)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser("jane@example.com", "oldpassword1")

	t.Run("known email mails a reset token", func(t *testing.T) {
		require.NoError(t, f.svc.ForgotPassword(context.Background(), model.SubjectUser, "jane@example.com"))

		require.Len(t, f.mailer.tokens, 1)
		assert.Contains(t, f.mailer.sent, "password_reset")
		assert.Equal(t, []string{model.TokenReset}, f.tokens.mintedTypes)
		assert.Equal(t, user.ID, f.tokens.stateClaims[f.mailer.tokens[0]].AccountID)
	})

	t.Run("unknown email is silent", func(t *testing.T) {
		before := f.tokens.minted
		require.NoError(t, f.svc.ForgotPassword(context.Background(), model.SubjectUser, "nobody@example.com"))
		assert.Equal(t, before, f.tokens.minted)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser("jane@example.com", "oldpassword1")

	require.NoError(t, f.svc.ForgotPassword(context.Background(), model.SubjectUser, "jane@example.com"))
	require.Len(t, f.mailer.tokens, 1)
	token := f.mailer.tokens[0]

	require.NoError(t, f.svc.ResetPassword(context.Background(), token, "brandnewpass1"))

	require.Len(t, f.users.patches, 1)
	storedHash, _ := f.users.patches[0]["password"].(string)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("brandnewpass1")))
	assert.Equal(t, []primitive.ObjectID{user.ID}, f.tokens.revoked,
		"all sessions must die with the old password")

	// The token is single use.
	err := f.svc.ResetPassword(context.Background(), token, "anotherpass99")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser("jane@example.com", "oldpassword1")
	identity := Identity{ID: user.ID, Subject: model.SubjectUser, Email: user.Email, Name: user.Name}

	t.Run("wrong current password", func(t *testing.T) {
		err := f.svc.ChangePassword(context.Background(), identity, "not-the-password", "brandnewpass1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, f.users.patches)
	})

	t.Run("success rotates hash and revokes sessions", func(t *testing.T) {
		require.NoError(t, f.svc.ChangePassword(context.Background(), identity, "oldpassword1", "brandnewpass1"))

		require.Len(t, f.users.patches, 1)
		storedHash, _ := f.users.patches[0]["password"].(string)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("brandnewpass1")))
		assert.Equal(t, []primitive.ObjectID{user.ID}, f.tokens.revoked)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	f := newAuthFixture()
	user := f.seedUser("jane@example.com", "oldpassword1")

	token, err := f.tokens.GenerateStateToken(context.Background(), Identity{
		ID:      user.ID,
		Subject: model.SubjectUser,
		Email:   user.Email,
		Name:    user.Name,
	}, model.TokenVerify, time.Hour)
	require.NoError(t, err)

	require.NoError(t, f.svc.VerifyEmail(context.Background(), token))

	require.Len(t, f.users.patches, 1)
	assert.Equal(t, true, f.users.patches[0]["verified"])
	assert.Equal(t, 1, f.log.count("cache_invalidate"))
	assert.Less(t, f.log.indexOf("users_update"), f.log.indexOf("cache_invalidate"))
	assert.True(t, f.kv.has(cache.DocumentKey(cache.KindUser, user.ID.Hex())))
}

func TestAuthService_VerifyEmailRejectsStaffToken(t *testing.T) {
	f := newAuthFixture()

	token, err := f.tokens.GenerateStateToken(context.Background(), Identity{
		ID:      primitive.NewObjectID(),
		Subject: model.SubjectStaff,
		Email:   "admin@example.com",
	}, model.TokenVerify, time.Hour)
	require.NoError(t, err)

	err = f.svc.VerifyEmail(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, f.log.count("cache_invalidate"))
}
