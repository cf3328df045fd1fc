package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
	ProviderGithub AuthProvider = "github"
)

// DisplayName returns the user-facing provider name used in login hints.
func (p AuthProvider) DisplayName() string {
	switch p {
	case ProviderGoogle:
		return "Google"
	case ProviderGithub:
		return "GitHub"
	default:
		return "System"
	}
}

// User represents an account. PasswordHash is empty for accounts created
// through an OAuth provider. SessionToken is the single active session
// secret; it is overwritten on every login and cleared on logout, which
// is the sole revocation mechanism for outstanding JWTs.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"` // unique
	PasswordHash string             `bson:"passwordHash,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Provider     AuthProvider       `bson:"provider" json:"provider"`
	GoogleID     string             `bson:"googleId,omitempty" json:"-"`
	GithubID     string             `bson:"githubId,omitempty" json:"-"`
	Avatar       string             `bson:"avatar,omitempty" json:"-"` // object key in file storage
	LastLogin    *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	SessionToken string             `bson:"sessionToken,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasPassword reports whether the account can log in through the password path.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
