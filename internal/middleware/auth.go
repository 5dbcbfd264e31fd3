package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/contactbook-backend/internal/logger"
	"github.com/yungbote/contactbook-backend/internal/requestdata"
	"github.com/yungbote/contactbook-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	userService services.UserService
}

func NewAuthMiddleware(log *logger.Logger, userService services.UserService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, userService: userService}
}

// RequireAuth resolves the opaque session token to a user and stores it in the
// request context. The token is the raw Authorization header value; clients of
// this API do not send a "Bearer " prefix.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		user, err := am.userService.GetByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": "Unauthorized"})
			return
		}
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil {
			rd = &requestdata.RequestData{}
		}
		rd.TokenString = token
		rd.User = user
		c.Request = c.Request.WithContext(requestdata.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("Authorization"))
}
