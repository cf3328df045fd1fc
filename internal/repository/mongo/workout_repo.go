package mongo

import (
	"context"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository.
type mongoWorkoutRepository struct {
	ownedRepo[domain.Workout, *domain.Workout]
}

// NewMongoWorkoutRepository creates a new Workout repository backed by MongoDB.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		ownedRepo: newOwnedRepo[domain.Workout, *domain.Workout](db, workoutCollectionName),
	}
}

// Update applies the mutable workout fields, including the embedded
// exercise sequence, to a live document owned by owner.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id, owner primitive.ObjectID, workout *domain.Workout) error {
	return r.updateOwned(ctx, id, owner, bson.M{
		"name":        workout.Name,
		"description": workout.Description,
		"duration":    workout.Duration,
		"exercises":   workout.Exercises,
		"isPrivate":   workout.IsPrivate,
		"updatedAt":   workout.UpdatedAt,
	})
}

// EnsureWorkoutIndexes creates necessary indexes for the workouts collection.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	ensureOwnedIndexes(ctx, collection)
}
