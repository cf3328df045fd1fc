package mongo

import (
	"context"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const exerciseCollectionName = "exercises"

// mongoExerciseRepository implements repository.ExerciseRepository.
type mongoExerciseRepository struct {
	ownedRepo[domain.Exercise, *domain.Exercise]
}

// NewMongoExerciseRepository creates a new Exercise repository backed by MongoDB.
func NewMongoExerciseRepository(db *mongo.Database) repository.ExerciseRepository {
	return &mongoExerciseRepository{
		ownedRepo: newOwnedRepo[domain.Exercise, *domain.Exercise](db, exerciseCollectionName),
	}
}

// Update applies the mutable exercise fields to a live document owned by
// owner. Ownership and the delete marker are enforced by the filter.
func (r *mongoExerciseRepository) Update(ctx context.Context, id, owner primitive.ObjectID, exercise *domain.Exercise) error {
	return r.updateOwned(ctx, id, owner, bson.M{
		"name":         exercise.Name,
		"description":  exercise.Description,
		"muscleGroups": exercise.MuscleGroups,
		"equipment":    exercise.Equipment,
		"isPrivate":    exercise.IsPrivate,
		"updatedAt":    exercise.UpdatedAt,
	})
}

// ListByMuscleGroup intersects the muscle-group filter with the
// requested visibility scope.
func (r *mongoExerciseRepository) ListByMuscleGroup(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, scope repository.MuscleGroupScope) ([]domain.Exercise, error) {
	groupFilter := bson.M{"muscleGroups": group}

	var filter bson.M
	switch scope {
	case repository.ScopeMine:
		if requester == nil {
			return []domain.Exercise{}, nil
		}
		filter = allOf(notDeleted(), groupFilter, ownedBy(*requester))
	case repository.ScopeDefaults:
		filter = allOf(notDeleted(), groupFilter, defaultsOnly())
	default:
		filter = allOf(notDeleted(), groupFilter, visibleTo(requester))
	}

	return r.list(ctx, filter)
}

// EnsureExerciseIndexes creates necessary indexes for the exercises collection.
func EnsureExerciseIndexes(ctx context.Context, collection *mongo.Collection) {
	ensureOwnedIndexes(ctx, collection, mongo.IndexModel{
		Keys:    bson.D{{Key: "muscleGroups", Value: 1}},
		Options: options.Index(),
	})
}
