package api

import (
	"net/http"
	"strings"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context key under which the authenticated identity is stored.
const contextIdentityKey = "identity"

// AuthMiddleware rejects requests without a valid bearer token. Token
// verification goes through the auth service so the stored session token
// is checked on every request, not just the signature.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			respondError(c, apperr.Unauthorized("Authorization header is missing or malformed"))
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Set(contextIdentityKey, identity)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a valid bearer token is
// present and continues anonymously otherwise. An invalid token is treated
// the same as no token.
func OptionalAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		identity, err := authService.Authenticate(c.Request.Context(), tokenString)
		if err == nil {
			c.Set(contextIdentityKey, identity)
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// identityFromContext returns the authenticated caller, if any.
func identityFromContext(c *gin.Context) (*service.Identity, bool) {
	raw, exists := c.Get(contextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := raw.(*service.Identity)
	return identity, ok
}

// requesterID returns the caller's id, or nil for anonymous requests.
// The nil form feeds the visibility predicates directly.
func requesterID(c *gin.Context) *primitive.ObjectID {
	identity, ok := identityFromContext(c)
	if !ok {
		return nil
	}
	id := identity.ID
	return &id
}

// mustIdentity returns the caller on routes behind AuthMiddleware.
func mustIdentity(c *gin.Context) (*service.Identity, bool) {
	identity, ok := identityFromContext(c)
	if !ok {
		respondError(c, apperr.Unauthorized("Authentication required"))
		return nil, false
	}
	return identity, true
}

// CORSMiddleware allows a single configured origin with credentials.
// A wildcard origin cannot be combined with credentials, so the origin
// is always echoed verbatim. OPTIONS preflights are answered with 204.
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
