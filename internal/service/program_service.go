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
	ErrProgramNotFound      = apperr.NotFound("Program not found")
	ErrUpdateDefaultProgram = apperr.Forbidden("Cannot update default program")
	ErrDeleteDefaultProgram = apperr.Forbidden("Cannot delete default program")
)

// ProgramInput carries the caller-mutable program fields.
type ProgramInput struct {
	Name        string
	Description string
	Objective   domain.ProgramObjective
	Level       domain.ProgramLevel
	Duration    int // weeks
	Frequency   *int
	Workouts    []domain.ProgramWorkout
	IsPrivate   bool
}

func (in ProgramInput) validate() error {
	if in.Name == "" {
		return apperr.Validation("Name is required")
	}
	if !domain.ValidProgramObjective(in.Objective) {
		return apperr.Validation("Invalid objective", string(in.Objective))
	}
	if in.Level != "" && !domain.ValidProgramLevel(in.Level) {
		return apperr.Validation("Invalid level", string(in.Level))
	}
	if in.Duration < 1 {
		return apperr.Validation("Duration must be at least 1 week")
	}
	if in.Frequency != nil && *in.Frequency < 1 {
		return apperr.Validation("Frequency must be at least 1 session per week")
	}
	if len(in.Workouts) == 0 {
		return apperr.Validation("At least one workout is required")
	}
	return nil
}

// --- Service Interface ---

type ProgramService interface {
	List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Program, error)
	ListDefaults(ctx context.Context) ([]domain.Program, error)
	ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Program, error)
	Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Program, error)
	Create(ctx context.Context, owner primitive.ObjectID, input ProgramInput) (*domain.Program, error)
	Update(ctx context.Context, id, owner primitive.ObjectID, input ProgramInput) (*domain.Program, error)
	Delete(ctx context.Context, id, owner primitive.ObjectID) error
}

// --- Service Implementation ---

type programService struct {
	programRepo repository.ProgramRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(programRepo repository.ProgramRepository) ProgramService {
	return &programService{programRepo: programRepo}
}

func (s *programService) List(ctx context.Context, requester *primitive.ObjectID) ([]domain.Program, error) {
	return s.programRepo.ListVisible(ctx, requester)
}

func (s *programService) ListDefaults(ctx context.Context) ([]domain.Program, error) {
	return s.programRepo.ListDefaults(ctx)
}

func (s *programService) ListMine(ctx context.Context, owner primitive.ObjectID) ([]domain.Program, error) {
	return s.programRepo.ListMine(ctx, owner)
}

func (s *programService) Get(ctx context.Context, id primitive.ObjectID, requester *primitive.ObjectID) (*domain.Program, error) {
	program, err := s.programRepo.GetVisible(ctx, id, requester)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

func (s *programService) Create(ctx context.Context, owner primitive.ObjectID, input ProgramInput) (*domain.Program, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	program := &domain.Program{
		Owned:       domain.Owned{UserID: &owner, IsPrivate: input.IsPrivate},
		Name:        input.Name,
		Description: input.Description,
		Objective:   input.Objective,
		Level:       input.Level,
		Duration:    input.Duration,
		Frequency:   input.Frequency,
		Workouts:    input.Workouts,
	}

	if _, err := s.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programService) Update(ctx context.Context, id, owner primitive.ObjectID, input ProgramInput) (*domain.Program, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	existing, err := s.programRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if existing.IsDefault() {
		return nil, ErrUpdateDefaultProgram
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Objective = input.Objective
	existing.Level = input.Level
	existing.Duration = input.Duration
	existing.Frequency = input.Frequency
	existing.Workouts = input.Workouts
	existing.IsPrivate = input.IsPrivate
	existing.UpdatedAt = time.Now().UTC()

	if err := s.programRepo.Update(ctx, id, owner, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return existing, nil
}

func (s *programService) Delete(ctx context.Context, id, owner primitive.ObjectID) error {
	existing, err := s.programRepo.GetVisible(ctx, id, &owner)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	if existing.IsDefault() {
		return ErrDeleteDefaultProgram
	}

	if err := s.programRepo.SoftDelete(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	return nil
}
