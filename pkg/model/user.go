package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. IsActive flips to true once the
// email address has been verified.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never include in JSON responses
	Role         string    `json:"role" db:"role"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserRole constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password1 string `json:"password1" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    UserProfile `json:"user"`
}

// LogoutRequest carries the refresh token to revoke
type LogoutRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ChangePasswordRequest represents the password-change payload
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required"`
}

// ResendVerificationRequest re-triggers the verification email flow
type ResendVerificationRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfile represents user information safe for public consumption
type UserProfile struct {
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	IsActive  bool      `json:"is_active"`
}

// ToProfile converts User to UserProfile
func (u *User) ToProfile() UserProfile {
	profile := UserProfile{
		UserID:   u.ID,
		Username: u.Username,
		IsActive: u.IsActive,
	}
	if u.FirstName != "" {
		profile.FirstName = &u.FirstName
	}
	if u.LastName != "" {
		profile.LastName = &u.LastName
	}
	return profile
}
