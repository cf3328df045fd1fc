package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gympal/gains-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeGithub stands in for both the OAuth token endpoint and the API.
func fakeGithub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.FormValue("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "gho_test",
			"token_type":   "bearer",
		})
	})

	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":    98765,
			"login": "alice-gh",
			"name":  "Alice",
		})
	})

	mux.HandleFunc("/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"email": "secondary@example.com", "primary": false},
			{"email": "alice@example.com", "primary": true},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestOAuthService(t *testing.T, repo *memUserRepo) (OAuthService, AuthService) {
	t.Helper()
	srv := fakeGithub(t)
	authSvc := NewAuthService(repo, testSecret, time.Hour)
	oauthSvc := NewOAuthService(repo, authSvc, OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		CallbackURL:  "http://localhost:8080/auth/github/callback",
		Expiration:   7 * 24 * time.Hour,
	},
		WithEndpoint(oauth2.Endpoint{
			AuthURL:  srv.URL + "/login/oauth/authorize",
			TokenURL: srv.URL + "/login/oauth/access_token",
		}),
		WithAPIBaseURL(srv.URL),
	)
	return oauthSvc, authSvc
}

func TestGithubCallbackCreatesUser(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, authSvc := newTestOAuthService(t, repo)
	ctx := context.Background()

	user, token, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, domain.ProviderGithub, user.Provider)
	assert.NotNil(t, user.LastLogin)

	stored, err := repo.GetByProviderID(ctx, domain.ProviderGithub, "98765")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	assert.False(t, stored.HasPassword())

	identity, err := authSvc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
}

func TestGithubCallbackAttachesToExistingEmail(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, _ := newTestOAuthService(t, repo)
	ctx := context.Background()

	authSvc := NewAuthService(repo, testSecret, time.Hour)
	existing, err := authSvc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	user, _, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)

	// Same account, now carrying the provider id. No duplicate created.
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "98765", user.GithubID)
	assert.Len(t, repo.users, 1)
}

func TestGithubCallbackExistingProviderUser(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, _ := newTestOAuthService(t, repo)
	ctx := context.Background()

	first, _, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)
	second, _, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.users, 1)
}

func TestGithubCallbackBadCode(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, _ := newTestOAuthService(t, repo)

	_, _, err := oauthSvc.HandleGithubCallback(context.Background(), "bad-code")
	assert.ErrorIs(t, err, ErrOAuthFailed)
	assert.Empty(t, repo.users)
}

func TestGithubCallbackRelogin_RevokesPriorSession(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, authSvc := newTestOAuthService(t, repo)
	ctx := context.Background()

	_, firstToken, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)
	_, secondToken, err := oauthSvc.HandleGithubCallback(ctx, "good-code")
	require.NoError(t, err)

	_, err = authSvc.Authenticate(ctx, secondToken)
	assert.NoError(t, err)
	_, err = authSvc.Authenticate(ctx, firstToken)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestAuthURLPointsAtAuthorize(t *testing.T) {
	repo := newMemUserRepo()
	oauthSvc, _ := newTestOAuthService(t, repo)

	url := oauthSvc.AuthURL()
	assert.Contains(t, url, "/login/oauth/authorize")
	assert.Contains(t, url, "client_id=client-id")
}
