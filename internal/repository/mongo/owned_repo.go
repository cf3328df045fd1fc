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

// ownedPtr constrains the entity pointer to something that exposes the
// shared ownership fields.
type ownedPtr[T any] interface {
	*T
	Meta() *domain.Owned
}

// ownedRepo implements repository.OwnedRepository for a single
// collection. The concrete repositories embed it and add their
// entity-specific updates and lookups.
type ownedRepo[T any, PT ownedPtr[T]] struct {
	collection *mongo.Collection
}

func newOwnedRepo[T any, PT ownedPtr[T]](db *mongo.Database, collectionName string) ownedRepo[T, PT] {
	return ownedRepo[T, PT]{collection: db.Collection(collectionName)}
}

// Create stamps the id and timestamps and inserts the document. The
// caller is responsible for binding UserID; a nil UserID produces a
// default resource and is only used by seeding, outside request flow.
func (r *ownedRepo[T, PT]) Create(ctx context.Context, entity PT) (primitive.ObjectID, error) {
	meta := entity.Meta()
	meta.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}
	return insertedID, nil
}

// GetVisible retrieves one document the requester may see. Absence and
// invisibility are indistinguishable: both are ErrNotFound.
func (r *ownedRepo[T, PT]) GetVisible(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*T, error) {
	filter := allOf(bson.M{"_id": id}, notDeleted(), visibleTo(requester))

	var entity T
	err := r.collection.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// ListVisible returns every live document the requester may see.
func (r *ownedRepo[T, PT]) ListVisible(ctx context.Context, requester *primitive.ObjectID) ([]T, error) {
	return r.list(ctx, allOf(notDeleted(), visibleTo(requester)))
}

// ListMine returns every live document owned by owner, private or not.
func (r *ownedRepo[T, PT]) ListMine(ctx context.Context, owner primitive.ObjectID) ([]T, error) {
	return r.list(ctx, allOf(notDeleted(), ownedBy(owner)))
}

// ListDefaults returns every live system resource.
func (r *ownedRepo[T, PT]) ListDefaults(ctx context.Context) ([]T, error) {
	return r.list(ctx, allOf(notDeleted(), defaultsOnly()))
}

func (r *ownedRepo[T, PT]) list(ctx context.Context, filter bson.M) ([]T, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []T
	if err = cursor.All(ctx, &entities); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return entities, nil
}

// updateOwned applies a $set to a live document owned by owner. The
// caller includes updatedAt in set so the value written matches the one
// it returns. A miss is ErrNotFound; translating that into "forbidden
// because default" is the service layer's job.
func (r *ownedRepo[T, PT]) updateOwned(ctx context.Context, id, owner primitive.ObjectID, set bson.M) error {
	filter := allOf(bson.M{"_id": id}, notDeleted(), ownedBy(owner))

	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SoftDelete stamps deletedAt on a live document owned by owner.
func (r *ownedRepo[T, PT]) SoftDelete(ctx context.Context, id, owner primitive.ObjectID) error {
	filter := allOf(bson.M{"_id": id}, notDeleted(), ownedBy(owner))
	update := bson.M{"$set": bson.M{
		"deletedAt": time.Now().UTC(),
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// HardDelete removes a document regardless of owner or delete marker.
// Reserved for maintenance tooling.
func (r *ownedRepo[T, PT]) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ensureOwnedIndexes creates the indexes every ownable collection
// needs, plus any entity-specific extras.
func ensureOwnedIndexes(ctx context.Context, collection *mongo.Collection, extra ...mongo.IndexModel) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "isPrivate", Value: 1}},
			Options: options.Index(),
		},
	}
	indexes = append(indexes, extra...)

	// Index creation failure is not fatal; queries still work without them.
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		slog.Warn("failed to create indexes", "collection", collection.Name(), "error", err)
	}
}
