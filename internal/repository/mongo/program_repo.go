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

const programCollectionName = "programs"

// mongoProgramRepository implements repository.ProgramRepository.
type mongoProgramRepository struct {
	ownedRepo[domain.Program, *domain.Program]
}

// NewMongoProgramRepository creates a new Program repository backed by MongoDB.
func NewMongoProgramRepository(db *mongo.Database) repository.ProgramRepository {
	return &mongoProgramRepository{
		ownedRepo: newOwnedRepo[domain.Program, *domain.Program](db, programCollectionName),
	}
}

// Update applies the mutable program fields, including the embedded
// workout schedule, to a live document owned by owner.
func (r *mongoProgramRepository) Update(ctx context.Context, id, owner primitive.ObjectID, program *domain.Program) error {
	return r.updateOwned(ctx, id, owner, bson.M{
		"name":        program.Name,
		"description": program.Description,
		"objective":   program.Objective,
		"level":       program.Level,
		"duration":    program.Duration,
		"frequency":   program.Frequency,
		"workouts":    program.Workouts,
		"isPrivate":   program.IsPrivate,
		"updatedAt":   program.UpdatedAt,
	})
}

// EnsureProgramIndexes creates necessary indexes for the programs collection.
func EnsureProgramIndexes(ctx context.Context, collection *mongo.Collection) {
	ensureOwnedIndexes(ctx, collection, mongo.IndexModel{
		Keys:    bson.D{{Key: "objective", Value: 1}},
		Options: options.Index(),
	})
}
