package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const userCollectionName = "users"

// mongoUserRepository implements the repository.UserRepository interface using MongoDB.
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository creates a new user repository backed by MongoDB.
// It expects a connected *mongo.Database instance.
func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		collection: db.Collection(userCollectionName),
	}
}

// Create inserts a new user into the database.
func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	if user.Email == "" || user.Name == "" {
		return primitive.NilObjectID, errors.New("user email and name are required")
	}
	if user.Provider == "" {
		user.Provider = domain.ProviderLocal
	}

	user.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves a user by their email address.
func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByID retrieves a user by their MongoDB ObjectID.
func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// GetByProviderID retrieves a user by the id assigned by an external
// identity provider.
func (r *mongoUserRepository) GetByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	field, err := providerIDField(provider)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{field: providerUserID})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password hash.
func (r *mongoUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	return r.setFields(ctx, id, bson.M{"passwordHash": passwordHash})
}

// SetSessionToken overwrites the stored session token. Any JWT carrying
// the previous value becomes invalid on its next use.
func (r *mongoUserRepository) SetSessionToken(ctx context.Context, id primitive.ObjectID, token string) error {
	return r.setFields(ctx, id, bson.M{"sessionToken": token})
}

// ClearSessionToken removes the session token, revoking every
// outstanding JWT for the user.
func (r *mongoUserRepository) ClearSessionToken(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$unset": bson.M{"sessionToken": ""},
		"$set":   bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AttachProvider records an external provider id on an existing account
// and switches its provider tag, letting a local-password account gain
// OAuth login.
func (r *mongoUserRepository) AttachProvider(ctx context.Context, id primitive.ObjectID, provider domain.AuthProvider, providerUserID string) error {
	field, err := providerIDField(provider)
	if err != nil {
		return err
	}
	return r.setFields(ctx, id, bson.M{field: providerUserID, "provider": provider})
}

// SetLastLogin stamps the last successful login time.
func (r *mongoUserRepository) SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return r.setFields(ctx, id, bson.M{"lastLogin": at.UTC()})
}

// SetAvatar records the storage object key of the user's avatar.
func (r *mongoUserRepository) SetAvatar(ctx context.Context, id primitive.ObjectID, objectKey string) error {
	return r.setFields(ctx, id, bson.M{"avatar": objectKey})
}

func (r *mongoUserRepository) setFields(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// providerIDField maps a provider to the document field holding its id.
func providerIDField(provider domain.AuthProvider) (string, error) {
	switch provider {
	case domain.ProviderGoogle:
		return "googleId", nil
	case domain.ProviderGithub:
		return "githubId", nil
	default:
		return "", errors.New("provider has no external id field")
	}
}

// EnsureUserIndexes creates necessary indexes for the users collection.
// Call this once during application startup.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "githubId", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	// Index creation failure is not fatal; queries still work without them.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		slog.Warn("failed to create indexes", "collection", collection.Name(), "error", err)
	}
}
