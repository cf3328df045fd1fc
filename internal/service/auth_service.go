package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---

// CodeProviderLogin marks a login rejected because the account must
// authenticate through an OAuth provider; the handler turns it into a
// redirect hint.
const CodeProviderLogin = "PROVIDER_LOGIN_REQUIRED"

var (
	ErrEmailTaken         = apperr.New(http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")
	ErrInvalidPassword    = apperr.Unauthorized("Invalid current password")
	ErrUserNotFound       = apperr.NotFound("User not found")
	// ErrUnauthenticated covers a missing, malformed, badly signed or
	// expired token; ErrSessionExpired a well-formed token whose session
	// claim no longer matches the stored session token.
	ErrUnauthenticated = apperr.New(http.StatusUnauthorized, "UNAUTHENTICATED", "Invalid token")
	ErrSessionExpired  = apperr.New(http.StatusUnauthorized, "SESSION_EXPIRED", "Session expired")
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrTokenGeneration = errors.New("failed to generate authentication token")
)

// ErrProviderLogin builds the provider-specific login rejection.
func ErrProviderLogin(provider domain.AuthProvider) *apperr.Error {
	return apperr.New(http.StatusUnauthorized, CodeProviderLogin,
		fmt.Sprintf("Please login with %s", provider.DisplayName()))
}

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID    primitive.ObjectID
	Email string
}

// --- Service Interface ---

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	// Authenticate verifies a bearer token end to end: signature and
	// expiry first, then the session token claim against the store.
	Authenticate(ctx context.Context, tokenString string) (*Identity, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	Profile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	SetAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) error
	// IssueSession mints a fresh session token for the user, overwriting
	// any prior one, and returns a signed JWT carrying it.
	IssueSession(ctx context.Context, user *domain.User, lifetime time.Duration) (string, error)
}

// --- Service Implementation ---

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register handles new user registration through the password path.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("name, email and password are required")
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Provider:     domain.ProviderLocal,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique email index catches the race between the existence
		// check and the insert.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = userID

	user.PasswordHash = ""
	return user, nil
}

// Login authenticates through the password path and issues a session.
// Accounts without a local password are told which provider to use.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, apperr.Validation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.HasPassword() {
		if user.Provider != domain.ProviderLocal {
			return "", nil, ErrProviderLogin(user.Provider)
		}
		// A local account with no password should not exist, but the
		// stored data can get there; steer the user to OAuth.
		return "", nil, ErrProviderLogin(domain.ProviderGithub)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.IssueSession(ctx, user, s.jwtExpiration)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	if err := s.userRepo.SetLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.LastLogin = &now

	user.PasswordHash = ""
	return token, user, nil
}

// Authenticate resolves a bearer token to an identity.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, ErrUnauthenticated
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Account gone: treat like a revoked session.
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	// The stored session token is the revocation mechanism: logout
	// clears it, relogin replaces it, and either invalidates every
	// token still carrying the old value.
	if user.SessionToken == "" || user.SessionToken != claims.SessionToken {
		return nil, ErrSessionExpired
	}

	return &Identity{ID: user.ID, Email: user.Email}, nil
}

// Logout clears the stored session token, revoking all outstanding
// tokens for the user.
func (s *authService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	err := s.userRepo.ClearSessionToken(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		// Already gone; logout is idempotent.
		return nil
	}
	return err
}

// ChangePassword verifies the current password when one exists. An
// OAuth-only account may set its first password without one.
func (s *authService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return apperr.Validation("new password is required")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if user.HasPassword() {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
			return ErrInvalidPassword
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrHashingFailed
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hashedPassword))
}

// Profile fetches the user behind an identity.
func (s *authService) Profile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// SetAvatar records the storage object key of the user's avatar.
func (s *authService) SetAvatar(ctx context.Context, userID primitive.ObjectID, objectKey string) error {
	err := s.userRepo.SetAvatar(ctx, userID, objectKey)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

// IssueSession persists a fresh session token on the user record and
// signs a JWT embedding it. Overwriting the stored token enforces a
// single active session per user.
func (s *authService) IssueSession(ctx context.Context, user *domain.User, lifetime time.Duration) (string, error) {
	sessionToken := uuid.NewString()
	if err := s.userRepo.SetSessionToken(ctx, user.ID, sessionToken); err != nil {
		return "", err
	}
	user.SessionToken = sessionToken

	token, err := s.generateJWT(user, sessionToken, lifetime)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return token, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID       string `json:"id"`
	Email        string `json:"email"`
	SessionToken string `json:"sessionToken"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User, sessionToken string, lifetime time.Duration) (string, error) {
	expirationTime := time.Now().Add(lifetime)
	claims := &jwtClaims{
		UserID:       user.ID.Hex(),
		Email:        user.Email,
		SessionToken: sessionToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gains-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
