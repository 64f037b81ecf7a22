//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/internal/usecase"
	"car-rental-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	identity usecase.Identity
	valid    string
}

func (v stubValidator) ValidateToken(token string) (usecase.Identity, error) {
	if token != v.valid {
		return usecase.Identity{}, errors.New("token is expired")
	}
	return v.identity, nil
}

func newAuthRouter(identity usecase.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.NewAuthMiddleware(stubValidator{identity: identity, valid: "good-token"})

	router := gin.New()
	router.GET("/private", mw.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		name, _ := middleware.GetUsername(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "username": name})
	})
	router.GET("/optional", mw.OptionalAuth(), func(c *gin.Context) {
		_, ok := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	identity := usecase.Identity{UserID: uuid.New(), Username: "taro"}
	router := newAuthRouter(identity)

	t.Run("bearer token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "good-token")

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, identity.UserID.String(), body["user_id"])
		assert.Equal(t, "taro", body["username"])
	})

	t.Run("cookie token", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "good-token"}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/private", nil, cookies, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token is 403", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "forged")
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Invalid or expired token")
	})
}

func TestOptionalAuth(t *testing.T) {
	router := newAuthRouter(usecase.Identity{UserID: uuid.New(), Username: "taro"})

	cases := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "no token", token: "", want: false},
		{name: "bad token", token: "forged", want: false},
		{name: "good token", token: "good-token", want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/optional", nil, tc.token)

			var body map[string]bool
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, tc.want, body["authenticated"])
		})
	}
}
