package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"moviehub/pkg/auth"
	"moviehub/pkg/config"
	"moviehub/pkg/model"
	"moviehub/pkg/redis"
	authRepo "moviehub/service-api/internal/repository/auth"
	userRepo "moviehub/service-api/internal/repository/user"
	userService "moviehub/service-api/internal/service/user"
)

var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// blacklistPrefix namespaces revoked access tokens in redis.
const blacklistPrefix = "blacklist:access:"

// Service defines the auth service interface
type Service interface {
	Login(req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, accessToken, refreshToken string) error
	IsBlacklisted(ctx context.Context, accessToken string) (bool, error)
}

// authService provides auth-related services.
type authService struct {
	jwtManager  *auth.JWTManager
	userService userService.Service
	authRepo    authRepo.Repository
	redisClient *redis.Client
	refreshTTL  time.Duration
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	cfg *config.Config,
	jwtManager *auth.JWTManager,
	userService userService.Service,
	authRepo authRepo.Repository,
	redisClient *redis.Client,
) Service {
	return &authService{
		jwtManager:  jwtManager,
		userService: userService,
		authRepo:    authRepo,
		redisClient: redisClient,
		refreshTTL:  cfg.JWT.RefreshTokenTTL,
	}
}

// Login authenticates a user and returns a token pair. Each failure mode
// carries the field it belongs to.
func (s *authService) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userService.GetUserByUsername(req.Username)
	if err != nil {
		if err == userService.ErrUserNotFound {
			return nil, model.NewValidationError("username", "This username is not registered.")
		}
		return nil, err
	}

	if err := userRepo.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, model.NewValidationError("password", "Password is incorrect.")
	}

	if !user.IsActive {
		return nil, model.NewValidationError("username", "This user is not verified yet.")
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	// Store refresh token hash in database
	err = s.authRepo.StoreRefreshToken(user.ID, hashToken(refreshToken), time.Now().Add(s.refreshTTL))
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Access:  accessToken,
		Refresh: refreshToken,
		User:    user.ToProfile(),
	}, nil
}

// Logout revokes the refresh token and blacklists the access token for its
// remaining lifetime.
func (s *authService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if _, err := s.jwtManager.VerifyToken(refreshToken, auth.TokenTypeRefresh); err != nil {
		return ErrInvalidRefreshToken
	}

	stored, err := s.authRepo.GetRefreshToken(hashToken(refreshToken))
	if err != nil {
		return err
	}
	if stored == nil {
		return ErrInvalidRefreshToken
	}

	if err := s.authRepo.DeleteRefreshToken(hashToken(refreshToken)); err != nil {
		return err
	}

	return s.blacklistAccessToken(ctx, accessToken)
}

// IsBlacklisted reports whether an access token has been revoked by logout.
func (s *authService) IsBlacklisted(ctx context.Context, accessToken string) (bool, error) {
	return s.redisClient.Exists(ctx, blacklistPrefix+hashToken(accessToken))
}

func (s *authService) blacklistAccessToken(ctx context.Context, accessToken string) error {
	claims, err := s.jwtManager.VerifyToken(accessToken, auth.TokenTypeAccess)
	if err != nil {
		// an expired access token needs no blacklist entry
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	return s.redisClient.Set(ctx, blacklistPrefix+hashToken(accessToken), "1", ttl)
}

// hashToken creates a SHA-256 hash of a token for storage
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
