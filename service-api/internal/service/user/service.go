package user

import (
	"context"
	"errors"
	"regexp"
	"time"

	"moviehub/pkg/auth"
	"moviehub/pkg/config"
	"moviehub/pkg/logger"
	"moviehub/pkg/model"
	"moviehub/pkg/queue"
	authRepo "moviehub/service-api/internal/repository/auth"
	userRepo "moviehub/service-api/internal/repository/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidLink  = errors.New("invalid or expired verification link")
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]{2,29}$`)
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	alphaPattern    = regexp.MustCompile(`^[a-zA-Z]+$`)
)

// Service defines the user service interface
type Service interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Verify(uid, token string) error
	ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) error
	ChangePassword(userID uuid.UUID, req *model.ChangePasswordRequest) error
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id uuid.UUID) (*model.User, error)
}

// userService provides user-related services.
type userService struct {
	userRepo    userRepo.Repository
	authRepo    authRepo.Repository
	verifyToken *auth.VerifyTokenService
	publisher   *queue.Publisher
	baseURL     string
}

// NewUserService creates a new user service instance.
func NewUserService(
	cfg *config.Config,
	userRepo userRepo.Repository,
	authRepo authRepo.Repository,
	publisher *queue.Publisher,
) Service {
	return &userService{
		userRepo:    userRepo,
		authRepo:    authRepo,
		verifyToken: auth.NewVerifyTokenService(cfg.JWT.Secret, cfg.JWT.VerifyTokenTTL),
		publisher:   publisher,
		baseURL:     cfg.AppBaseURL,
	}
}

// Register validates the registration payload, creates an inactive user and
// queues the verification email.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password1)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         model.RoleUser,
		IsActive:     false,
		CreatedAt:    time.Now(),
	}

	err = s.userRepo.Create(user)
	if err != nil {
		// a duplicate racing past the pre-checks hits the unique constraint
		switch {
		case errors.Is(err, userRepo.ErrUsernameTaken):
			return nil, model.NewValidationError("username", "A user with that username already exists.")
		case errors.Is(err, userRepo.ErrEmailTaken):
			return nil, model.NewValidationError("email", "This email is already in use.")
		}
		return nil, err
	}

	s.queueVerification(user)

	return user, nil
}

// Verify activates the account addressed by the verification link.
func (s *userService) Verify(uid, token string) error {
	userID, err := auth.DecodeUID(uid)
	if err != nil {
		return ErrInvalidLink
	}

	_, err = s.verifyToken.ValidateToken(token, userID)
	if err != nil {
		return ErrInvalidLink
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidLink
	}
	if user.IsActive {
		// already verified; the link is still answered with success so a
		// double click never shows an error page
		return nil
	}

	return s.userRepo.Activate(user.ID)
}

// ResendVerification re-queues the verification email for an inactive user.
func (s *userService) ResendVerification(ctx context.Context, req *model.ResendVerificationRequest) error {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return model.NewValidationError("email", "No user with this email address.")
	}

	if err := userRepo.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return model.NewValidationError("password", "Password is incorrect.")
	}

	if user.IsActive {
		return model.NewValidationError("email", "This user is already verified.")
	}

	s.queueVerification(user)
	return nil
}

// ChangePassword replaces the caller's password after checking the old one.
func (s *userService) ChangePassword(userID uuid.UUID, req *model.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := userRepo.VerifyPassword(user.PasswordHash, req.OldPassword); err != nil {
		return model.NewValidationError("old_password", "Old password is incorrect.")
	}
	if req.NewPassword != req.ConfirmNewPassword {
		return model.NewValidationError("password", "New password fields didn't match.")
	}
	if req.OldPassword == req.NewPassword {
		return model.NewValidationError("password", "New password must be different from the old one.")
	}
	if len(req.NewPassword) < 8 {
		return model.NewValidationError("password", "Password must be at least 8 characters long.")
	}

	hashedPassword, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(user.ID, hashedPassword); err != nil {
		return err
	}

	// every outstanding refresh token dies with the old password
	return s.authRepo.DeleteAllUserTokens(user.ID)
}

// GetUserByUsername retrieves a user by username
func (s *userService) GetUserByUsername(username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) validateRegistration(req *model.RegisterRequest) error {
	if !usernamePattern.MatchString(req.Username) {
		return model.NewValidationError("username",
			"Username must be 3–30 characters, start with a letter or underscore, "+
				"and use only letters, numbers, or underscores.")
	}

	existing, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.NewValidationError("username", "A user with that username already exists.")
	}

	if !emailPattern.MatchString(req.Email) {
		return model.NewValidationError("email", "Invalid email entered.")
	}

	existing, err = s.userRepo.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return model.NewValidationError("email", "This email is already in use.")
	}

	if !alphaPattern.MatchString(req.FirstName) {
		return model.NewValidationError("first_name",
			"First name must contain alphabetic characters only. No digits or symbols allowed.")
	}
	if !alphaPattern.MatchString(req.LastName) {
		return model.NewValidationError("last_name",
			"Last name must contain alphabetic characters only. No digits or symbols allowed.")
	}

	if req.Password1 != req.Password2 {
		return model.NewValidationError("password", "Passwords do not match.")
	}
	if len(req.Password1) < 8 {
		return model.NewValidationError("password", "Password must be at least 8 characters long.")
	}

	return nil
}

// queueVerification publishes the verification event without blocking the
// request; failures are logged and swallowed.
func (s *userService) queueVerification(user *model.User) {
	verifyURL, err := s.verifyToken.VerifyURL(s.baseURL, user.ID)
	if err != nil {
		logger.Error(err, "failed to build verification url")
		return
	}

	event := queue.VerificationEvent{
		Email:     user.Email,
		Username:  user.Username,
		VerifyURL: verifyURL,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.publisher.PublishVerification(ctx, event); err != nil {
			logger.Error(err, "failed to queue verification email")
		}
	}()
}

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}
