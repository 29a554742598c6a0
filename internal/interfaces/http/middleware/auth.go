package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/infrastructure/userservice"
	"github.com/coffeetech/farms/internal/shared/constants"
	"github.com/coffeetech/farms/internal/shared/logger"
	"github.com/coffeetech/farms/internal/shared/utils"
)

// SessionVerifier exchanges a session token for its user.
type SessionVerifier interface {
	VerifySessionToken(ctx context.Context, token string) (*userservice.User, error)
}

type AuthMiddleware struct {
	verifier SessionVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier SessionVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireSession reads session_token from the query, falling back to a Bearer
// Authorization header, and stores the verified user in the context.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			m.logger.Warnw("request without session token", "path", c.Request.URL.Path)
			m.reject(c)
			return
		}

		user, err := m.verifier.VerifySessionToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, userservice.ErrNotFound) {
				m.logger.Warnw("invalid session token", "path", c.Request.URL.Path)
			} else {
				m.logger.Errorw("failed to verify session token", "path", c.Request.URL.Path, "error", err)
			}
			m.reject(c)
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgSessionExpired)
	c.Abort()
}

func sessionToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.Query(constants.QuerySessionToken)); token != "" {
		return token
	}

	scheme, token, ok := strings.Cut(c.GetHeader(constants.HeaderAuthorization), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetUser returns the user stored by RequireSession, or nil.
func GetUser(c *gin.Context) *userservice.User {
	v, ok := c.Get(constants.ContextKeyUser)
	if !ok {
		return nil
	}
	user, _ := v.(*userservice.User)
	return user
}
