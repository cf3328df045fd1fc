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
	ErrExerciseNotFound      = apperr.NotFound("Exercise not found")
	ErrUpdateDefaultExercise = apperr.Forbidden("Cannot update default exercise")
	ErrDeleteDefaultExercise = apperr.Forbidden("Cannot delete default exercise")
)

// ExerciseInput carries the caller-mutable exercise fields.
type ExerciseInput struct {
	Name         string
	Description  string
	MuscleGroups []domain.MuscleGroup
	Equipment    domain.Equipment
	IsPrivate    bool
}

func (in ExerciseInput) validate() error {
	if in.Name == "" {
		return apperr.Validation("Name is required")
	}
	if len(in.MuscleGroups) == 0 {
		return apperr.Validation("At least one muscle group is required")
	}
	for _, g := range in.MuscleGroups {
		if !domain.ValidMuscleGroup(g) {
			return apperr.Validation("Invalid muscle group", string(g))
		}
	}
	if !domain.ValidEquipment(in.Equipment) {
		return apperr.Validation("Invalid equipment", string(in.Equipment))
	}
	return nil
}

// --- Service Interface ---

// ExerciseService applies the ownership-visibility rules over the
// exercise collection. A nil requester is an anonymous caller.
type ExerciseService interface {
	List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Exercise, error)
	ListDefaults(ctx context.Context) ([]domain.Exercise, error)
	ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Exercise, error)
	ListByMuscleGroup(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, onlyMine, onlyDefaults bool) ([]domain.Exercise, error)
	Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error)
	Create(ctx context.Context, owner primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// --- Service Implementation ---

type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{exerciseRepo: exerciseRepo}
}

func (s *exerciseService) List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListVisible(ctx, requester)
}

func (s *exerciseService) ListDefaults(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListDefaults(ctx)
}

func (s *exerciseService) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Exercise, error) {
	return s.exerciseRepo.ListMine(ctx, owner)
}

// ListByMuscleGroup filters by muscle group within the requested scope;
// onlyMine and onlyDefaults narrow the visibility predicate for the
// frontend filter controls.
func (s *exerciseService) ListByMuscleGroup(ctx context.Context, group domain.MuscleGroup, requester *primitive.ObjectID, onlyMine, onlyDefaults bool) ([]domain.Exercise, error) {
	if !domain.ValidMuscleGroup(group) {
		return nil, apperr.Validation("Invalid muscle group", string(group))
	}

	scope := repository.ScopeVisible
	switch {
	case onlyMine:
		scope = repository.ScopeMine
	case onlyDefaults:
		scope = repository.ScopeDefaults
	}

	return s.exerciseRepo.ListByMuscleGroup(ctx, group, requester, scope)
}

// Get resolves absence and invisibility to the same not-found failure.
func (s *exerciseService) Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetVisible(ctx, id, requester)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

func (s *exerciseService) Create(ctx context.Context, owner primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		Owned:        domain.Owned{UserID: &owner, IsPrivate: input.IsPrivate},
		Name:         input.Name,
		Description:  input.Description,
		MuscleGroups: input.MuscleGroups,
		Equipment:    input.Equipment,
	}

	if _, err := s.exerciseRepo.Create(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// Update distinguishes three outcomes: invisible or absent is 404,
// a default resource is 403, and an owned resource is mutated in place.
func (s *exerciseService) Update(ctx context.Context, id, owner primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.exerciseRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	if existing.IsDefault() {
		return nil, ErrUpdateDefaultExercise
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.MuscleGroups = input.MuscleGroups
	existing.Equipment = input.Equipment
	existing.IsPrivate = input.IsPrivate
	existing.UpdatedAt = time.Now().UTC()

	if err := s.exerciseRepo.Update(ctx, id, owner, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return existing, nil
}

// Delete soft-deletes an owned exercise, with the same default-resource
// pre-check as Update.
func (s *exerciseService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	existing, err := s.exerciseRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	if existing.IsDefault() {
		return ErrDeleteDefaultExercise
	}

	if err := s.exerciseRepo.SoftDelete(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
