package middleware

import (
	"net/http"

	"moviehub/pkg/auth"
	"moviehub/pkg/logger"
	"moviehub/pkg/model"
	authService "moviehub/service-api/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// BlacklistGuard rejects access tokens revoked by logout. It runs on
// authenticated groups after the JWT middleware has accepted the token.
func BlacklistGuard(authSvc authService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.BearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		revoked, err := authSvc.IsBlacklisted(c.Request.Context(), token)
		if err != nil {
			// redis being down must not lock every user out
			logger.Error(err, "blacklist lookup failed")
			c.Next()
			return
		}

		if revoked {
			c.AbortWithStatusJSON(http.StatusForbidden, model.Envelope{
				Data: nil,
				Error: &model.ErrorInfo{
					ErrorID:    http.StatusForbidden,
					IsFriendly: true,
					ErrorMsg:   "This token has been revoked. Please log in again.",
				},
				Success: false,
			})
			return
		}

		c.Next()
	}
}
