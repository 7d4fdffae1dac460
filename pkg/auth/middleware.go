package auth

import (
	"net/http"
	"strings"

	"moviehub/pkg/model"

	"github.com/gin-gonic/gin"
)

// gin context keys set by AuthMiddleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

func abortWithEnvelope(c *gin.Context, status int, friendly bool, msg interface{}) {
	c.AbortWithStatusJSON(status, model.Envelope{
		Data: nil,
		Error: &model.ErrorInfo{
			ErrorID:    status,
			IsFriendly: friendly,
			ErrorMsg:   msg,
		},
		Success: false,
	})
}

// BearerToken extracts the raw bearer token from the Authorization header,
// or an empty string.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AuthMiddleware validates the access token and stores the caller identity
// in the gin context.
func AuthMiddleware(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			abortWithEnvelope(c, http.StatusUnauthorized, true, "Authentication credentials were not provided.")
			return
		}

		claims, err := jwtManager.VerifyToken(token, TokenTypeAccess)
		if err != nil {
			abortWithEnvelope(c, http.StatusUnauthorized, true, "Invalid or expired access token.")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortWithEnvelope(c, http.StatusUnauthorized, true, "Invalid or expired access token.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole restricts a route to callers carrying the given role claim.
// It must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != role {
			abortWithEnvelope(c, http.StatusForbidden, true, "You do not have permission to perform this action.")
			return
		}
		c.Next()
	}
}
