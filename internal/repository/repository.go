package repository

import (
	"context"
	"time"

	"gympal/gains-tracker/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicateKey = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	// SetSessionToken overwrites any prior token, enforcing a single
	// active session per user.
	SetSessionToken(ctx context.Context, id primitive.ObjectID, token string) error
	ClearSessionToken(ctx context.Context, id primitive.ObjectID) error
	AttachProvider(ctx context.Context, id primitive.ObjectID, provider domain.AuthProvider, providerUserID string) error
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
	SetAvatar(ctx context.Context, id primitive.ObjectID, objectKey string) error
}

// OwnedRepository is the set of query shapes shared by every ownable
// resource collection. A nil requester means an anonymous caller. All
// read paths implicitly exclude soft-deleted documents.
type OwnedRepository[T any] interface {
	Create(ctx context.Context, entity *T) (primitive.ObjectID, error)
	// GetVisible resolves to ErrNotFound both when the document does not
	// exist and when it is private to another user, so private resources
	// do not leak their existence.
	GetVisible(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*T, error)
	ListVisible(ctx context.Context, requester *primitive.ObjectID) ([]T, error)
	ListMine(ctx context.Context, owner primitive.ObjectID) ([]T, error)
	ListDefaults(ctx context.Context) ([]T, error)
	// SoftDelete stamps deletedAt on a document owned by owner. A miss
	// (absent or not owned) is ErrNotFound.
	SoftDelete(ctx context.Context, id, owner primitive.ObjectID) error
	// HardDelete removes the document outright. Maintenance only; not
	// reachable through the API.
	HardDelete(ctx context.Context, id primitive.ObjectID) error
}

// MuscleGroupScope narrows the exercise muscle-group lookup.
type MuscleGroupScope int

const (
	ScopeVisible  MuscleGroupScope = iota // owner-or-public rule
	ScopeMine                             // only the requester's own exercises
	ScopeDefaults                         // only system defaults
)

// ExerciseRepository adds exercise-specific queries and updates.
type ExerciseRepository interface {
	OwnedRepository[domain.Exercise]
	Update(ctx context.Context, id, owner primitive.ObjectID, exercise *domain.Exercise) error
	ListByMuscleGroup(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, scope MuscleGroupScope) ([]domain.Exercise, error)
}

// WorkoutRepository adds workout-specific updates.
type WorkoutRepository interface {
	OwnedRepository[domain.Workout]
	Update(ctx context.Context, id, owner primitive.ObjectID, workout *domain.Workout) error
}

// ProgramRepository adds program-specific updates.
type ProgramRepository interface {
	OwnedRepository[domain.Program]
	Update(ctx context.Context, id, owner primitive.ObjectID, program *domain.Program) error
}
