//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"car-rental-api/internal/handler/dto/request"
	"car-rental-api/tests/common/dbtest"
	"car-rental-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username string) (uuid.UUID, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, username)
	return userID, LoginUser(t, router, username, dbtest.TestPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
