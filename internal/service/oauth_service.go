package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// ErrOAuthFailed is the single user-facing failure for the whole OAuth
// flow; upstream detail is deliberately not preserved.
var ErrOAuthFailed = apperr.Unauthorized("GitHub authentication failed")

const githubAPIBaseURL = "https://api.github.com"

// sessionIssuer is the slice of AuthService the OAuth bridge needs.
type sessionIssuer interface {
	IssueSession(ctx context.Context, user *domain.User, lifetime time.Duration) (string, error)
}

// --- Service Interface ---

type OAuthService interface {
	// AuthURL returns the provider authorization URL to redirect to.
	AuthURL() string
	// HandleGithubCallback exchanges the authorization code, resolves or
	// creates the local account and issues a session.
	HandleGithubCallback(ctx context.Context, code string) (*domain.User, string, error)
}

// OAuthConfig holds the GitHub application credentials and the token
// lifetime for OAuth-issued sessions.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Expiration   time.Duration
}

// --- Service Implementation ---

type oauthService struct {
	userRepo   repository.UserRepository
	sessions   sessionIssuer
	oauthCfg   *oauth2.Config
	apiBaseURL string
	expiration time.Duration
}

// OAuthOption overrides provider endpoints, used by tests.
type OAuthOption func(*oauthService)

// WithEndpoint replaces the token exchange endpoint.
func WithEndpoint(endpoint oauth2.Endpoint) OAuthOption {
	return func(s *oauthService) {
		s.oauthCfg.Endpoint = endpoint
	}
}

// WithAPIBaseURL replaces the GitHub API base URL.
func WithAPIBaseURL(baseURL string) OAuthOption {
	return func(s *oauthService) {
		s.apiBaseURL = baseURL
	}
}

// NewOAuthService creates the GitHub OAuth bridge.
func NewOAuthService(userRepo repository.UserRepository, sessions sessionIssuer, cfg OAuthConfig, opts ...OAuthOption) OAuthService {
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = 7 * 24 * time.Hour
	}
	s := &oauthService{
		userRepo: userRepo,
		sessions: sessions,
		oauthCfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     githuboauth.Endpoint,
		},
		apiBaseURL: githubAPIBaseURL,
		expiration: expiration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *oauthService) AuthURL() string {
	return s.oauthCfg.AuthCodeURL("")
}

// githubProfile is the subset of the GitHub user payload we consume.
type githubProfile struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type githubEmail struct {
	Email   string `json:"email"`
	Primary bool   `json:"primary"`
}

func (s *oauthService) HandleGithubCallback(ctx context.Context, code string) (*domain.User, string, error) {
	token, err := s.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return nil, "", ErrOAuthFailed
	}
	client := s.oauthCfg.Client(ctx, token)

	var profile githubProfile
	if err := s.getJSON(ctx, client, "/user", &profile); err != nil {
		return nil, "", ErrOAuthFailed
	}

	var emails []githubEmail
	if err := s.getJSON(ctx, client, "/user/emails", &emails); err != nil {
		return nil, "", ErrOAuthFailed
	}

	email := profile.Email
	for _, e := range emails {
		if e.Primary {
			email = e.Email
			break
		}
	}
	if email == "" {
		return nil, "", ErrOAuthFailed
	}

	name := profile.Name
	if name == "" {
		name = profile.Login
	}

	user, err := s.findOrCreateUser(ctx, strconv.FormatInt(profile.ID, 10), email, name)
	if err != nil {
		return nil, "", ErrOAuthFailed
	}

	signed, err := s.sessions.IssueSession(ctx, user, s.expiration)
	if err != nil {
		return nil, "", ErrOAuthFailed
	}

	now := time.Now().UTC()
	if err := s.userRepo.SetLastLogin(ctx, user.ID, now); err != nil {
		return nil, "", ErrOAuthFailed
	}
	user.LastLogin = &now

	user.PasswordHash = ""
	return user, signed, nil
}

// findOrCreateUser resolves the GitHub identity to a local account:
// first by provider id, then by email (attaching the provider id to an
// existing account), and finally by creating a passwordless user.
func (s *oauthService) findOrCreateUser(ctx context.Context, githubID, email, name string) (*domain.User, error) {
	user, err := s.userRepo.GetByProviderID(ctx, domain.ProviderGithub, githubID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err = s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		if err := s.userRepo.AttachProvider(ctx, user.ID, domain.ProviderGithub, githubID); err != nil {
			return nil, err
		}
		user.GithubID = githubID
		user.Provider = domain.ProviderGithub
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = &domain.User{
		Email:    email,
		Name:     name,
		GithubID: githubID,
		Provider: domain.ProviderGithub,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *oauthService) getJSON(ctx context.Context, client *http.Client, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
