package auth

import (
	"context"
	"testing"
	"time"

	"moviehub/pkg/auth"
	"moviehub/pkg/config"
	"moviehub/pkg/model"
	"moviehub/pkg/redis"
	userService "moviehub/service-api/internal/service/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserService struct {
	user *model.User
}

func (f *fakeUserService) GetUserByUsername(username string) (*model.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, userService.ErrUserNotFound
	}
	return f.user, nil
}

func (f *fakeUserService) GetUserByID(id uuid.UUID) (*model.User, error) {
	return f.user, nil
}

func (f *fakeUserService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserService) Verify(uid, token string) error { return nil }

func (f *fakeUserService) ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) error {
	return nil
}

func (f *fakeUserService) ChangePassword(userID uuid.UUID, req *model.ChangePasswordRequest) error {
	return nil
}

type fakeAuthRepo struct {
	tokens map[string]*model.Token
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{tokens: make(map[string]*model.Token)}
}

func (f *fakeAuthRepo) StoreRefreshToken(userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	f.tokens[tokenHash] = &model.Token{UserID: userID, Value: tokenHash, ExpiresAt: expiresAt}
	return nil
}

func (f *fakeAuthRepo) GetRefreshToken(tokenHash string) (*model.Token, error) {
	return f.tokens[tokenHash], nil
}

func (f *fakeAuthRepo) DeleteRefreshToken(tokenHash string) error {
	delete(f.tokens, tokenHash)
	return nil
}

func (f *fakeAuthRepo) DeleteAllUserTokens(userID uuid.UUID) error {
	for k, v := range f.tokens {
		if v.UserID == userID {
			delete(f.tokens, k)
		}
	}
	return nil
}

func newTestService(t *testing.T, user *model.User) (Service, *fakeAuthRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	redisClient := redis.NewClientFromAddr(mr.Addr())
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 24 * time.Hour,
		},
	}
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)
	repo := newFakeAuthRepo()

	return NewAuthService(cfg, jwtManager, &fakeUserService{user: user}, repo, redisClient), repo
}

func testUser(t *testing.T, active bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:           uuid.New(),
		Username:     "gopher",
		Email:        "gopher@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     active,
	}
}

func TestLoginSucceeds(t *testing.T) {
	svc, repo := newTestService(t, testUser(t, true))

	resp, err := svc.Login(&model.LoginRequest{Username: "gopher", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.Equal(t, "gopher", resp.User.Username)
	assert.Len(t, repo.tokens, 1)
}

func TestLoginRejections(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		active    bool
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown username",
			username:  "nobody",
			password:  "secret123",
			active:    true,
			wantField: "username",
			wantMsg:   "This username is not registered.",
		},
		{
			name:      "wrong password",
			username:  "gopher",
			password:  "wrong-pass",
			active:    true,
			wantField: "password",
			wantMsg:   "Password is incorrect.",
		},
		{
			name:      "unverified user",
			username:  "gopher",
			password:  "secret123",
			active:    false,
			wantField: "username",
			wantMsg:   "This user is not verified yet.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, testUser(t, tt.active))

			_, err := svc.Login(&model.LoginRequest{Username: tt.username, Password: tt.password})
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Fields[tt.wantField])
		})
	}
}

func TestLogoutBlacklistsAccessToken(t *testing.T) {
	svc, repo := newTestService(t, testUser(t, true))
	ctx := context.Background()

	resp, err := svc.Login(&model.LoginRequest{Username: "gopher", Password: "secret123"})
	require.NoError(t, err)

	revoked, err := svc.IsBlacklisted(ctx, resp.Access)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, svc.Logout(ctx, resp.Access, resp.Refresh))

	revoked, err = svc.IsBlacklisted(ctx, resp.Access)
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Empty(t, repo.tokens)
}

func TestLogoutRejectsUnknownRefreshToken(t *testing.T) {
	user := testUser(t, true)
	svc, _ := newTestService(t, user)

	// a validly signed refresh token that was never stored
	jwtManager := auth.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	stray, err := jwtManager.GenerateRefreshToken(user)
	require.NoError(t, err)

	err = svc.Logout(context.Background(), "", stray)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
