package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	ErrTokenMissing = errs.New("access token missing")
	ErrTokenInvalid = errs.New("access token invalid")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUsernameKey = "username"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth rejects a request without a token with 401 and one with a bad token with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrTokenMissing, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusForbidden, errs.Mark(err, ErrTokenInvalid), "Invalid or expired token", nil)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// extractToken prefers the cookie over the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, identity usecase.Identity) {
	c.Set(ctxUserIDKey, identity.UserID)
	c.Set(ctxUsernameKey, identity.Username)
	c.Set(ctxClaimsKey, map[string]any{
		"user_id":  identity.UserID.String(),
		"username": identity.Username,
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(ctxUsernameKey)
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}
