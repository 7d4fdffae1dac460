package controller

import (
	"net/http"

	"moviehub/pkg/auth"
	"moviehub/pkg/logger"
	"moviehub/pkg/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Register handles user registration. The account starts inactive and a
// verification email is queued.
func (ctrl *controller) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := ctrl.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Infof("user registered: %s", user.Username)
	respondData(c, http.StatusCreated, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"message":  "Verification email has been sent.",
	})
}

// Login handles user authentication
func (ctrl *controller) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	response, err := ctrl.authService.Login(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Infof("user logged in: %s", response.User.Username)
	respondData(c, http.StatusOK, response)
}

// Logout revokes the refresh token and blacklists the current access token
func (ctrl *controller) Logout(c *gin.Context) {
	var req model.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := ctrl.authService.Logout(c.Request.Context(), auth.BearerToken(c), req.Refresh)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// Verify activates the account addressed by an emailed verification link
func (ctrl *controller) Verify(c *gin.Context) {
	err := ctrl.userService.Verify(c.Param("uid"), c.Param("token"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Email verified successfully."})
}

// ResendVerification re-queues the verification email for an inactive user
func (ctrl *controller) ResendVerification(c *gin.Context) {
	var req model.ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := ctrl.userService.ResendVerification(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Verification email has been sent."})
}

// ChangePassword replaces the authenticated user's password
func (ctrl *controller) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID, ok := contextUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, true, "Authentication required.")
		return
	}

	err := ctrl.userService.ChangePassword(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{"message": "Password changed successfully."})
}

// HealthCheck reports service liveness
func (ctrl *controller) HealthCheck(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{"status": "ok"})
}

func contextUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(auth.ContextUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
