//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"car-rental-api/internal/pkg/clock"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token that expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-2 * time.Minute))
	service := jwt.NewService(h.cfg.Secret, time.Minute, issuedAt)
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}

// CreateForgedToken signs a well-formed token with the wrong secret.
func (h *JWTHelper) CreateForgedToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret+"-forged", time.Hour, clock.NewRealClock())
	token, err := service.GenerateAccessToken(userID, username)
	require.NoError(t, err)
	return token
}
