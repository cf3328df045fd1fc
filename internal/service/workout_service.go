package service

import (
	"context"
	"errors"
	"time"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---

var (
	ErrWorkoutNotFound      = apperr.NotFound("Workout not found")
	ErrUpdateDefaultWorkout = apperr.Forbidden("Cannot update default workout")
	ErrDeleteDefaultWorkout = apperr.Forbidden("Cannot delete default workout")
)

// WorkoutInput carries the caller-mutable workout fields. Exercises are
// embedded in full; a stale copy after the source exercise changes is
// accepted, not repaired.
type WorkoutInput struct {
	Name        string
	Description string
	Duration    int // seconds
	Exercises   []domain.WorkoutExercise
	IsPrivate   bool
}

func (in WorkoutInput) validate() error {
	if in.Name == "" {
		return apperr.Validation("Name is required")
	}
	if in.Duration < 1 {
		return apperr.Validation("Duration must be at least 1 second")
	}
	if len(in.Exercises) == 0 {
		return apperr.Validation("At least one exercise is required")
	}
	for _, e := range in.Exercises {
		if e.Sets < 1 || e.Reps < 1 {
			return apperr.Validation("Sets and reps must be at least 1")
		}
		if e.Weight != nil && *e.Weight < 0 {
			return apperr.Validation("Weight must be at least 0")
		}
	}
	return nil
}

// --- Service Interface ---

type WorkoutService interface {
	List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Workout, error)
	ListDefaults(ctx context.Context) ([]domain.Workout, error)
	ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Workout, error)
	Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Workout, error)
	Create(ctx context.Context, owner primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.ListVisible(ctx, requester)
}

func (s *workoutService) ListDefaults(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.ListDefaults(ctx)
}

func (s *workoutService) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.ListMine(ctx, owner)
}

func (s *workoutService) Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetVisible(ctx, id, requester)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Create(ctx context.Context, owner primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		Owned:       domain.Owned{UserID: &owner, IsPrivate: input.IsPrivate},
		Name:        input.Name,
		Description: input.Description,
		Duration:    input.Duration,
		Exercises:   input.Exercises,
	}

	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) Update(ctx context.Context, id, owner primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.workoutRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if existing.IsDefault() {
		return nil, ErrUpdateDefaultWorkout
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Duration = input.Duration
	existing.Exercises = input.Exercises
	existing.IsPrivate = input.IsPrivate
	existing.UpdatedAt = time.Now().UTC()

	if err := s.workoutRepo.Update(ctx, id, owner, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *workoutService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	existing, err := s.workoutRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	if existing.IsDefault() {
		return ErrDeleteDefaultWorkout
	}

	if err := s.workoutRepo.SoftDelete(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
