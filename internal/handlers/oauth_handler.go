package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"stockpulse_backend/internal/logger"
	"stockpulse_backend/internal/oauth"
	"stockpulse_backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

// OAuthHandler drives the Google authorization-code flow. The provider
// proves identity; this handler only links the account and redirects
// back to the front end with a freshly minted token pair.
type OAuthHandler struct {
	*BaseHandler
	authService services.AuthService
	google      *oauth.GoogleClient
	frontendURL string
}

func NewOAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	google *oauth.GoogleClient,
	frontendURL string,
) *OAuthHandler {
	return &OAuthHandler{
		BaseHandler: base,
		authService: authService,
		google:      google,
		frontendURL: frontendURL,
	}
}

func (h *OAuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.GET("/google", h.GoogleRedirect)
		authGroup.GET("/google/callback", h.GoogleCallback)
	}
}

func (h *OAuthHandler) GoogleRedirect(c *gin.Context) {
	if !h.google.Enabled() {
		h.redirectWithError(c, "google login is not configured")
		return
	}

	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthURL(state))
}

func (h *OAuthHandler) GoogleCallback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		h.redirectWithError(c, errParam)
		return
	}

	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		h.redirectWithError(c, "invalid oauth state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		h.redirectWithError(c, "missing authorization code")
		return
	}

	profile, err := h.google.FetchProfile(c.Request.Context(), code)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "google profile fetch failed", err)
		h.redirectWithError(c, "could not verify google account")
		return
	}

	tokens, err := h.authService.LoginWithGoogle(profile)
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "google login failed", err)
		h.redirectWithError(c, "could not sign in with google")
		return
	}

	query := url.Values{}
	query.Set("accessToken", tokens.AccessToken)
	query.Set("refreshToken", tokens.RefreshToken)
	c.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s/auth/callback?%s", h.frontendURL, query.Encode()))
}

func (h *OAuthHandler) redirectWithError(c *gin.Context, message string) {
	query := url.Values{}
	query.Set("error", message)
	c.Redirect(http.StatusTemporaryRedirect,
		fmt.Sprintf("%s/auth/callback?%s", h.frontendURL, query.Encode()))
}
