package api

import (
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/config"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/pkg/jwt"
	"car-rental-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	jwtService *jwt.Service
	cfg        config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary User login
// @Description Login with username and password. The token is returned in the body and as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	expiry := h.jwtService.TokenDuration()
	cookie.SetAccessToken(c, h.cfg.Cookie, result.AccessToken, expiry)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(expiry.Seconds()),
		User: resdto.UserSummary{
			ID:       result.UserID,
			Username: result.Username,
		},
	})
}

// @Summary User logout
// @Description Clears the access token cookie. Tokens are stateless, so a bearer token stays valid until it expires.
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cfg.Cookie)
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Logged out"})
}

// @Summary Verify token
// @Description Reports the identity carried by the caller's token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.VerifyTokenResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingIdentity, "Access token required", nil)
		return
	}
	username, _ := middleware.GetUsername(c)

	c.JSON(http.StatusOK, resdto.VerifyTokenResponse{
		Valid: true,
		User: resdto.UserSummary{
			ID:       userID,
			Username: username,
		},
	})
}
