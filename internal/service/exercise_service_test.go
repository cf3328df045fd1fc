package service

import (
	"context"
	"testing"
	"time"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validExerciseInput() ExerciseInput {
	return ExerciseInput{
		Name:         "Bench Press",
		Description:  "Flat barbell press",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleTriceps},
		Equipment:    domain.EquipmentBar,
	}
}

func TestExerciseCreateStampsOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	var created *domain.Exercise
	repo := &fakeExerciseRepo{
		createFn: func(ctx context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
			created = e
			e.ID = primitive.NewObjectID()
			return e.ID, nil
		},
	}
	svc := NewExerciseService(repo)

	input := validExerciseInput()
	input.IsPrivate = true
	exercise, err := svc.Create(context.Background(), owner, input)
	require.NoError(t, err)

	require.NotNil(t, created)
	require.NotNil(t, exercise.UserID)
	assert.Equal(t, owner, *exercise.UserID)
	assert.True(t, exercise.IsPrivate)
	assert.False(t, exercise.IsDefault())
}

func TestExerciseCreateValidation(t *testing.T) {
	svc := NewExerciseService(&fakeExerciseRepo{})
	owner := primitive.NewObjectID()

	cases := []struct {
		name   string
		mutate func(*ExerciseInput)
	}{
		{"missing name", func(in *ExerciseInput) { in.Name = "" }},
		{"no muscle groups", func(in *ExerciseInput) { in.MuscleGroups = nil }},
		{"unknown muscle group", func(in *ExerciseInput) { in.MuscleGroups = []domain.MuscleGroup{"Wings"} }},
		{"unknown equipment", func(in *ExerciseInput) { in.Equipment = "Kettlebell" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validExerciseInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), owner, input)
			appErr := requireAppErr(t, err)
			assert.Equal(t, 400, appErr.Status)
		})
	}
}

func TestExerciseGetMergesMissingAndInvisible(t *testing.T) {
	repo := &fakeExerciseRepo{
		getVisibleFn: func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewExerciseService(repo)

	_, err := svc.Get(context.Background(), primitive.NewObjectID(), nil)
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseUpdateDefaultForbidden(t *testing.T) {
	repo := &fakeExerciseRepo{
		getVisibleFn: func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
			// UserID nil marks a system default.
			return &domain.Exercise{Owned: domain.Owned{ID: id}}, nil
		},
	}
	svc := NewExerciseService(repo)
	owner := primitive.NewObjectID()

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), owner, validExerciseInput())
	assert.ErrorIs(t, err, ErrUpdateDefaultExercise)

	err = svc.Delete(context.Background(), primitive.NewObjectID(), owner)
	assert.ErrorIs(t, err, ErrDeleteDefaultExercise)
}

func TestExerciseUpdateOwned(t *testing.T) {
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	staleStamp := time.Now().UTC().Add(-time.Hour)
	updateCalled := false
	repo := &fakeExerciseRepo{
		getVisibleFn: func(ctx context.Context, gotID primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
			require.Equal(t, id, gotID)
			require.NotNil(t, requester)
			return &domain.Exercise{
				Owned: domain.Owned{ID: id, UserID: &owner, IsPrivate: true, UpdatedAt: staleStamp},
				Name:  "Old name",
			}, nil
		},
		updateFn: func(ctx context.Context, gotID, gotOwner primitive.ObjectID, e *domain.Exercise) error {
			updateCalled = true
			assert.Equal(t, id, gotID)
			assert.Equal(t, owner, gotOwner)
			assert.Equal(t, "Bench Press", e.Name)
			assert.False(t, e.IsPrivate)
			assert.True(t, e.UpdatedAt.After(staleStamp))
			return nil
		},
	}
	svc := NewExerciseService(repo)

	input := validExerciseInput()
	input.IsPrivate = false
	updated, err := svc.Update(context.Background(), id, owner, input)
	require.NoError(t, err)
	assert.True(t, updateCalled)
	assert.Equal(t, "Bench Press", updated.Name)
	assert.True(t, updated.UpdatedAt.After(staleStamp))
}

func TestExerciseUpdateRepoMissIs404(t *testing.T) {
	owner := primitive.NewObjectID()
	repo := &fakeExerciseRepo{
		getVisibleFn: func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
			return &domain.Exercise{Owned: domain.Owned{ID: id, UserID: &owner}}, nil
		},
		updateFn: func(ctx context.Context, id, gotOwner primitive.ObjectID, e *domain.Exercise) error {
			return repository.ErrNotFound
		},
	}
	svc := NewExerciseService(repo)

	_, err := svc.Update(context.Background(), primitive.NewObjectID(), owner, validExerciseInput())
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestExerciseDeleteSoftDeletes(t *testing.T) {
	owner := primitive.NewObjectID()
	id := primitive.NewObjectID()
	softDeleted := false
	repo := &fakeExerciseRepo{
		getVisibleFn: func(ctx context.Context, gotID primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
			return &domain.Exercise{Owned: domain.Owned{ID: id, UserID: &owner}}, nil
		},
		softDeleteFn: func(ctx context.Context, gotID, gotOwner primitive.ObjectID) error {
			softDeleted = true
			assert.Equal(t, id, gotID)
			assert.Equal(t, owner, gotOwner)
			return nil
		},
	}
	svc := NewExerciseService(repo)

	require.NoError(t, svc.Delete(context.Background(), id, owner))
	assert.True(t, softDeleted)
}

func TestExerciseListByMuscleGroupScopes(t *testing.T) {
	var gotScope repository.MuscleGroupScope
	repo := &fakeExerciseRepo{
		listByMuscleGroupFn: func(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, scope repository.MuscleGroupScope) ([]domain.Exercise, error) {
			gotScope = scope
			return nil, nil
		},
	}
	svc := NewExerciseService(repo)
	ctx := context.Background()
	requester := primitive.NewObjectID()

	_, err := svc.ListByMuscleGroup(ctx, domain.MuscleChest, &requester, false, false)
	require.NoError(t, err)
	assert.Equal(t, repository.ScopeVisible, gotScope)

	_, err = svc.ListByMuscleGroup(ctx, domain.MuscleChest, &requester, true, false)
	require.NoError(t, err)
	assert.Equal(t, repository.ScopeMine, gotScope)

	_, err = svc.ListByMuscleGroup(ctx, domain.MuscleChest, &requester, false, true)
	require.NoError(t, err)
	assert.Equal(t, repository.ScopeDefaults, gotScope)

	// mine wins when both flags are set
	_, err = svc.ListByMuscleGroup(ctx, domain.MuscleChest, &requester, true, true)
	require.NoError(t, err)
	assert.Equal(t, repository.ScopeMine, gotScope)

	_, err = svc.ListByMuscleGroup(ctx, "Wings", &requester, false, false)
	appErr := requireAppErr(t, err)
	assert.Equal(t, 400, appErr.Status)
}
