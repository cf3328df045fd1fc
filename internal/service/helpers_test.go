package service

import (
	"context"
	"errors"
	"testing"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// requireAppErr asserts the error is a typed application error.
func requireAppErr(t *testing.T, err error) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "expected *apperr.Error, got %T: %v", err, err)
	return appErr
}

// fakeExerciseRepo is a function-field stub; unset methods fail the test
// when called.
type fakeExerciseRepo struct {
	createFn            func(ctx context.Context, e *domain.Exercise) (primitive.ObjectID, error)
	getVisibleFn        func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error)
	listVisibleFn       func(ctx context.Context, requester *primitive.ObjectID) ([]domain.Exercise, error)
	listMineFn          func(ctx context.Context, owner primitive.ObjectID) ([]domain.Exercise, error)
	listDefaultsFn      func(ctx context.Context) ([]domain.Exercise, error)
	softDeleteFn        func(ctx context.Context, id, owner primitive.ObjectID) error
	hardDeleteFn        func(ctx context.Context, id primitive.ObjectID) error
	updateFn            func(ctx context.Context, id, owner primitive.ObjectID, e *domain.Exercise) error
	listByMuscleGroupFn func(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, scope repository.MuscleGroupScope) ([]domain.Exercise, error)
}

func (f *fakeExerciseRepo) Create(ctx context.Context, e *domain.Exercise) (primitive.ObjectID, error) {
	return f.createFn(ctx, e)
}

func (f *fakeExerciseRepo) GetVisible(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
	return f.getVisibleFn(ctx, id, requester)
}

func (f *fakeExerciseRepo) ListVisible(ctx context.Context, requester *primitive.ObjectID) ([]domain.Exercise, error) {
	return f.listVisibleFn(ctx, requester)
}

func (f *fakeExerciseRepo) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Exercise, error) {
	return f.listMineFn(ctx, owner)
}

func (f *fakeExerciseRepo) ListDefaults(ctx context.Context) ([]domain.Exercise, error) {
	return f.listDefaultsFn(ctx)
}

func (f *fakeExerciseRepo) SoftDelete(ctx context.Context, id, owner primitive.ObjectID) error {
	return f.softDeleteFn(ctx, id, owner)
}

func (f *fakeExerciseRepo) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	return f.hardDeleteFn(ctx, id)
}

func (f *fakeExerciseRepo) Update(ctx context.Context, id, owner primitive.ObjectID, e *domain.Exercise) error {
	return f.updateFn(ctx, id, owner, e)
}

func (f *fakeExerciseRepo) ListByMuscleGroup(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, scope repository.MuscleGroupScope) ([]domain.Exercise, error) {
	return f.listByMuscleGroupFn(ctx, group, requester, scope)
}

// fakeWorkoutRepo mirrors fakeExerciseRepo for workouts.
type fakeWorkoutRepo struct {
	createFn       func(ctx context.Context, w *domain.Workout) (primitive.ObjectID, error)
	getVisibleFn   func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Workout, error)
	listVisibleFn  func(ctx context.Context, requester *primitive.ObjectID) ([]domain.Workout, error)
	listMineFn     func(ctx context.Context, owner primitive.ObjectID) ([]domain.Workout, error)
	listDefaultsFn func(ctx context.Context) ([]domain.Workout, error)
	softDeleteFn   func(ctx context.Context, id, owner primitive.ObjectID) error
	hardDeleteFn   func(ctx context.Context, id primitive.ObjectID) error
	updateFn       func(ctx context.Context, id, owner primitive.ObjectID, w *domain.Workout) error
}

func (f *fakeWorkoutRepo) Create(ctx context.Context, w *domain.Workout) (primitive.ObjectID, error) {
	return f.createFn(ctx, w)
}

func (f *fakeWorkoutRepo) GetVisible(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Workout, error) {
	return f.getVisibleFn(ctx, id, requester)
}

func (f *fakeWorkoutRepo) ListVisible(ctx context.Context, requester *primitive.ObjectID) ([]domain.Workout, error) {
	return f.listVisibleFn(ctx, requester)
}

func (f *fakeWorkoutRepo) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Workout, error) {
	return f.listMineFn(ctx, owner)
}

func (f *fakeWorkoutRepo) ListDefaults(ctx context.Context) ([]domain.Workout, error) {
	return f.listDefaultsFn(ctx)
}

func (f *fakeWorkoutRepo) SoftDelete(ctx context.Context, id, owner primitive.ObjectID) error {
	return f.softDeleteFn(ctx, id, owner)
}

func (f *fakeWorkoutRepo) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	return f.hardDeleteFn(ctx, id)
}

func (f *fakeWorkoutRepo) Update(ctx context.Context, id, owner primitive.ObjectID, w *domain.Workout) error {
	return f.updateFn(ctx, id, owner, w)
}

// fakeProgramRepo mirrors fakeExerciseRepo for programs.
type fakeProgramRepo struct {
	createFn       func(ctx context.Context, p *domain.Program) (primitive.ObjectID, error)
	getVisibleFn   func(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Program, error)
	listVisibleFn  func(ctx context.Context, requester *primitive.ObjectID) ([]domain.Program, error)
	listMineFn     func(ctx context.Context, owner primitive.ObjectID) ([]domain.Program, error)
	listDefaultsFn func(ctx context.Context) ([]domain.Program, error)
	softDeleteFn   func(ctx context.Context, id, owner primitive.ObjectID) error
	hardDeleteFn   func(ctx context.Context, id primitive.ObjectID) error
	updateFn       func(ctx context.Context, id, owner primitive.ObjectID, p *domain.Program) error
}

func (f *fakeProgramRepo) Create(ctx context.Context, p *domain.Program) (primitive.ObjectID, error) {
	return f.createFn(ctx, p)
}

func (f *fakeProgramRepo) GetVisible(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Program, error) {
	return f.getVisibleFn(ctx, id, requester)
}

func (f *fakeProgramRepo) ListVisible(ctx context.Context, requester *primitive.ObjectID) ([]domain.Program, error) {
	return f.listVisibleFn(ctx, requester)
}

func (f *fakeProgramRepo) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Program, error) {
	return f.listMineFn(ctx, owner)
}

func (f *fakeProgramRepo) ListDefaults(ctx context.Context) ([]domain.Program, error) {
	return f.listDefaultsFn(ctx)
}

func (f *fakeProgramRepo) SoftDelete(ctx context.Context, id, owner primitive.ObjectID) error {
	return f.softDeleteFn(ctx, id, owner)
}

func (f *fakeProgramRepo) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	return f.hardDeleteFn(ctx, id)
}

func (f *fakeProgramRepo) Update(ctx context.Context, id, owner primitive.ObjectID, p *domain.Program) error {
	return f.updateFn(ctx, id, owner, p)
}
