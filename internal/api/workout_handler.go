package api

import (
	"net/http"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

// WorkoutRequest defines the expected JSON for creating or updating a
// workout. Exercises are embedded in full, matching the stored shape.
type WorkoutRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Duration    int                      `json:"duration" binding:"required"`
	Exercises   []domain.WorkoutExercise `json:"exercises" binding:"required"`
	IsPrivate   bool                     `json:"isPrivate"`
}

func (r WorkoutRequest) toInput() service.WorkoutInput {
	return service.WorkoutInput{
		Name:        r.Name,
		Description: r.Description,
		Duration:    r.Duration,
		Exercises:   r.Exercises,
		IsPrivate:   r.IsPrivate,
	}
}

// --- Handler Methods ---

func (h *WorkoutHandler) List(c *gin.Context) {
	workouts, err := h.workoutService.List(c.Request.Context(), requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Workouts retrieved successfully", nonNilWorkouts(workouts))
}

func (h *WorkoutHandler) ListDefaults(c *gin.Context) {
	workouts, err := h.workoutService.ListDefaults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Default workouts retrieved successfully", nonNilWorkouts(workouts))
}

func (h *WorkoutHandler) ListMine(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	workouts, err := h.workoutService.ListMine(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Workouts retrieved successfully", nonNilWorkouts(workouts))
}

func (h *WorkoutHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	workout, err := h.workoutService.Get(c.Request.Context(), id, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Workout retrieved successfully", workout)
}

func (h *WorkoutHandler) Create(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Workout created successfully", workout)
}

func (h *WorkoutHandler) Update(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	workout, err := h.workoutService.Update(c.Request.Context(), id, identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Workout updated successfully", workout)
}

func (h *WorkoutHandler) Delete(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), id, identity.ID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Workout deleted successfully", nil)
}

func nonNilWorkouts(workouts []domain.Workout) []domain.Workout {
	if workouts == nil {
		return []domain.Workout{}
	}
	return workouts
}
