package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/domain"
	"github.com/notesfe/notes-api/internal/dto"
	"github.com/notesfe/notes-api/internal/service"
	"go.uber.org/zap"
)

const userContextKey = "auth_user"

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The message distinguishes a missing header from a malformed one.
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", "Authorization token required"
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", "Invalid token format. Use: Bearer <token>"
	}

	return parts[1], ""
}

// AuthMiddleware resolves the bearer token against the provider and attaches
// the user to the request context. Every rejection terminates the request
// with 401.
func AuthMiddleware(loginService service.LoginService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, msg := bearerToken(c)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Error: msg})
			c.Abort()
			return
		}

		resp, err := loginService.GetUser(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token validation rejected", zap.Error(err))
			respondError(c, err, http.StatusUnauthorized, "Error validating authentication token")
			c.Abort()
			return
		}

		c.Set(userContextKey, resp.User)
		c.Next()
	}
}

// CurrentUser returns the user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok && user != nil
}
