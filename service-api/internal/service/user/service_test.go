package user

import (
	"context"
	"strings"
	"testing"
	"time"

	"moviehub/pkg/auth"
	"moviehub/pkg/config"
	"moviehub/pkg/model"
	"moviehub/pkg/queue"
	userRepo "moviehub/service-api/internal/repository/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byUsername map[string]*model.User
	byEmail    map[string]*model.User
	created    []*model.User
	activated  []uuid.UUID
	passwords  map[uuid.UUID]string
	createErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*model.User),
		byEmail:    make(map[string]*model.User),
		passwords:  make(map[uuid.UUID]string),
	}
}

func (f *fakeUserRepo) add(user *model.User) {
	f.byUsername[strings.ToLower(user.Username)] = user
	f.byEmail[user.Email] = user
}

func (f *fakeUserRepo) Create(user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, user)
	f.add(user)
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*model.User, error) {
	return f.byUsername[strings.ToLower(username)], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(id uuid.UUID) (*model.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Activate(id uuid.UUID) error {
	f.activated = append(f.activated, id)
	return nil
}

func (f *fakeUserRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	f.passwords[id] = passwordHash
	return nil
}

type fakeAuthRepo struct {
	tokens  map[uuid.UUID]int
	revoked []uuid.UUID
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{tokens: make(map[uuid.UUID]int)}
}

func (f *fakeAuthRepo) StoreRefreshToken(userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	f.tokens[userID]++
	return nil
}

func (f *fakeAuthRepo) GetRefreshToken(tokenHash string) (*model.Token, error) { return nil, nil }

func (f *fakeAuthRepo) DeleteRefreshToken(tokenHash string) error { return nil }

func (f *fakeAuthRepo) DeleteAllUserTokens(userID uuid.UUID) error {
	delete(f.tokens, userID)
	f.revoked = append(f.revoked, userID)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		AppBaseURL: "http://localhost:8080",
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			VerifyTokenTTL: 5 * time.Minute,
		},
	}
}

func validRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Username:  "gopher",
		FirstName: "Go",
		LastName:  "Pher",
		Email:     "gopher@example.com",
		Password1: "secret123",
		Password2: "secret123",
	}
}

func newService(repo *fakeUserRepo) Service {
	svc, _ := newServiceWithAuth(repo)
	return svc
}

func newServiceWithAuth(repo *fakeUserRepo) (Service, *fakeAuthRepo) {
	authRepo := newFakeAuthRepo()
	svc := NewUserService(testConfig(), repo, authRepo, queue.NewPublisher("amqp://localhost:5672/"))
	return svc, authRepo
}

func TestRegisterCreatesInactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	user, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	assert.Equal(t, model.RoleUser, user.Role)
	require.Len(t, repo.created, 1)

	// password is stored hashed
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegisterValidation(t *testing.T) {
	taken := &model.User{ID: uuid.New(), Username: "Taken", Email: "taken@example.com"}

	tests := []struct {
		name      string
		mutate    func(req *model.RegisterRequest)
		wantField string
		wantMsg   string
	}{
		{
			name:      "malformed username",
			mutate:    func(req *model.RegisterRequest) { req.Username = "1bad" },
			wantField: "username",
			wantMsg: "Username must be 3–30 characters, start with a letter or underscore, " +
				"and use only letters, numbers, or underscores.",
		},
		{
			name:      "username taken case-insensitively",
			mutate:    func(req *model.RegisterRequest) { req.Username = "taken" },
			wantField: "username",
			wantMsg:   "A user with that username already exists.",
		},
		{
			name:      "malformed email",
			mutate:    func(req *model.RegisterRequest) { req.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   "Invalid email entered.",
		},
		{
			name:      "email in use",
			mutate:    func(req *model.RegisterRequest) { req.Email = "taken@example.com" },
			wantField: "email",
			wantMsg:   "This email is already in use.",
		},
		{
			name:      "digits in first name",
			mutate:    func(req *model.RegisterRequest) { req.FirstName = "Go1" },
			wantField: "first_name",
			wantMsg:   "First name must contain alphabetic characters only. No digits or symbols allowed.",
		},
		{
			name:      "symbols in last name",
			mutate:    func(req *model.RegisterRequest) { req.LastName = "Ph-er" },
			wantField: "last_name",
			wantMsg:   "Last name must contain alphabetic characters only. No digits or symbols allowed.",
		},
		{
			name:      "password mismatch",
			mutate:    func(req *model.RegisterRequest) { req.Password2 = "different123" },
			wantField: "password",
			wantMsg:   "Passwords do not match.",
		},
		{
			name: "password too short",
			mutate: func(req *model.RegisterRequest) {
				req.Password1 = "short"
				req.Password2 = "short"
			},
			wantField: "password",
			wantMsg:   "Password must be at least 8 characters long.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			repo.add(taken)
			svc := newService(repo)

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Fields[tt.wantField])
		})
	}
}

func TestVerifyActivatesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	user, err := svc.Register(context.Background(), validRequest())
	require.NoError(t, err)

	vts := auth.NewVerifyTokenService("test-secret", 5*time.Minute)
	token, err := vts.GenerateToken(user.ID)
	require.NoError(t, err)
	uid := auth.EncodeUID(user.ID)

	require.NoError(t, svc.Verify(uid, token))
	assert.Equal(t, []uuid.UUID{user.ID}, repo.activated)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	err := svc.Verify("not-base64!", "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidLink)
}

func TestResendVerificationChecks(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	inactive := &model.User{ID: uuid.New(), Username: "gopher",
		Email: "gopher@example.com", PasswordHash: string(hash)}
	active := &model.User{ID: uuid.New(), Username: "veteran",
		Email: "veteran@example.com", PasswordHash: string(hash), IsActive: true}

	repo := newFakeUserRepo()
	repo.add(inactive)
	repo.add(active)
	svc := newService(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
		wantMsg   string
	}{
		{
			name:      "unknown email",
			email:     "missing@example.com",
			password:  "secret123",
			wantField: "email",
			wantMsg:   "No user with this email address.",
		},
		{
			name:      "wrong password",
			email:     "gopher@example.com",
			password:  "wrong-pass",
			wantField: "password",
			wantMsg:   "Password is incorrect.",
		},
		{
			name:      "already verified",
			email:     "veteran@example.com",
			password:  "secret123",
			wantField: "email",
			wantMsg:   "This user is already verified.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ResendVerification(ctx, &model.ResendVerificationRequest{
				Email: tt.email, Password: tt.password,
			})
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Fields[tt.wantField])
		})
	}

	require.NoError(t, svc.ResendVerification(ctx, &model.ResendVerificationRequest{
		Email: "gopher@example.com", Password: "secret123",
	}))
}

func TestChangePassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Username: "gopher",
		Email: "gopher@example.com", PasswordHash: string(hash), IsActive: true}

	repo := newFakeUserRepo()
	repo.add(user)
	svc, authRepo := newServiceWithAuth(repo)
	authRepo.tokens[user.ID] = 2 // outstanding refresh tokens from two sessions

	err = svc.ChangePassword(user.ID, &model.ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "newsecret1", ConfirmNewPassword: "newsecret1",
	})
	var validationErr *model.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Old password is incorrect.", validationErr.Fields["old_password"])
	assert.Empty(t, authRepo.revoked, "a rejected change must not revoke sessions")

	err = svc.ChangePassword(user.ID, &model.ChangePasswordRequest{
		OldPassword: "secret123", NewPassword: "secret123", ConfirmNewPassword: "secret123",
	})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "New password must be different from the old one.", validationErr.Fields["password"])

	require.NoError(t, svc.ChangePassword(user.ID, &model.ChangePasswordRequest{
		OldPassword: "secret123", NewPassword: "newsecret1", ConfirmNewPassword: "newsecret1",
	}))
	assert.NotEmpty(t, repo.passwords[user.ID])

	// every outstanding refresh token is revoked with the old password
	assert.Equal(t, []uuid.UUID{user.ID}, authRepo.revoked)
	assert.NotContains(t, authRepo.tokens, user.ID)
}

// A duplicate racing past the registration pre-checks hits the unique
// constraint; the violation must surface as the same field error, not a 500.
func TestRegisterMapsCreateConflict(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		wantField string
		wantMsg   string
	}{
		{
			name:      "username race",
			createErr: userRepo.ErrUsernameTaken,
			wantField: "username",
			wantMsg:   "A user with that username already exists.",
		},
		{
			name:      "email race",
			createErr: userRepo.ErrEmailTaken,
			wantField: "email",
			wantMsg:   "This email is already in use.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			repo.createErr = tt.createErr
			svc := newService(repo)

			_, err := svc.Register(context.Background(), validRequest())
			var validationErr *model.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantMsg, validationErr.Fields[tt.wantField])
		})
	}
}
