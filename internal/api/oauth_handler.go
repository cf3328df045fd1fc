package api

import (
	"net/http"

	"gympal/gains-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// OAuthHandler drives the GitHub login flow.
type OAuthHandler struct {
	oauthService service.OAuthService
}

// NewOAuthHandler creates a new OAuthHandler.
func NewOAuthHandler(oauthService service.OAuthService) *OAuthHandler {
	return &OAuthHandler{oauthService: oauthService}
}

// GithubRedirect sends the browser to the GitHub authorization page.
func (h *OAuthHandler) GithubRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.oauthService.AuthURL())
}

// GithubCallback exchanges the authorization code for a session token.
func (h *OAuthHandler) GithubCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		respondError(c, service.ErrOAuthFailed)
		return
	}

	user, token, err := h.oauthService.HandleGithubCallback(c.Request.Context(), code)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  MapUserToResponse(user, ""),
	})
}
