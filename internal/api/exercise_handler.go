package api

import (
	"net/http"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// --- DTOs ---

// ExerciseRequest defines the expected JSON for creating or updating an
// exercise. Enum membership is checked by the service layer.
type ExerciseRequest struct {
	Name         string               `json:"name" binding:"required"`
	Description  string               `json:"description"`
	MuscleGroups []domain.MuscleGroup `json:"muscleGroups" binding:"required"`
	Equipment    domain.Equipment     `json:"equipment" binding:"required"`
	IsPrivate    bool                 `json:"isPrivate"`
}

func (r ExerciseRequest) toInput() service.ExerciseInput {
	return service.ExerciseInput{
		Name:         r.Name,
		Description:  r.Description,
		MuscleGroups: r.MuscleGroups,
		Equipment:    r.Equipment,
		IsPrivate:    r.IsPrivate,
	}
}

// --- Handler Methods ---

// List returns every exercise visible to the caller.
func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context(), requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercises retrieved successfully", nonNilExercises(exercises))
}

// ListDefaults returns the system exercise library.
func (h *ExerciseHandler) ListDefaults(c *gin.Context) {
	exercises, err := h.exerciseService.ListDefaults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Default exercises retrieved successfully", nonNilExercises(exercises))
}

// ListMine returns the caller's own exercises, private ones included.
func (h *ExerciseHandler) ListMine(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	exercises, err := h.exerciseService.ListMine(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercises retrieved successfully", nonNilExercises(exercises))
}

// ListByMuscleGroup filters visible exercises by muscle group. The
// ?mine= and ?defaults= flags narrow the scope further.
func (h *ExerciseHandler) ListByMuscleGroup(c *gin.Context) {
	group := domain.MuscleGroup(c.Param("muscleGroup"))
	onlyMine := c.Query("mine") == "true"
	onlyDefaults := c.Query("defaults") == "true"

	exercises, err := h.exerciseService.ListByMuscleGroup(c.Request.Context(), group, requesterID(c), onlyMine, onlyDefaults)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercises retrieved successfully", nonNilExercises(exercises))
}

// Get returns one exercise if it is visible to the caller. An invisible
// private exercise answers the same 404 as a missing one.
func (h *ExerciseHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	exercise, err := h.exerciseService.Get(c.Request.Context(), id, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercise retrieved successfully", exercise)
}

// Create adds a user-owned exercise.
func (h *ExerciseHandler) Create(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Exercise created successfully", exercise)
}

// Update replaces the mutable fields of an owned exercise.
func (h *ExerciseHandler) Update(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), id, identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercise updated successfully", exercise)
}

// Delete soft deletes an owned exercise.
func (h *ExerciseHandler) Delete(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.exerciseService.Delete(c.Request.Context(), id, identity.ID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Exercise deleted successfully", nil)
}

// nonNilExercises normalizes a nil service result to an empty array.
func nonNilExercises(exercises []domain.Exercise) []domain.Exercise {
	if exercises == nil {
		return []domain.Exercise{}
	}
	return exercises
}
