package api

import (
	"net/http"
	"time"

	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgramHandler holds the program service dependency.
type ProgramHandler struct {
	programService service.ProgramService
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(programService service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programService: programService}
}

// --- DTOs ---

// ProgramRequest defines the expected JSON for creating or updating a
// program. The privacy key is `private` on this entity, unlike the
// `isPrivate` used by exercises and workouts.
type ProgramRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Objective   domain.ProgramObjective `json:"objective" binding:"required"`
	Level       domain.ProgramLevel     `json:"level"`
	Duration    int                     `json:"duration" binding:"required"`
	Frequency   *int                    `json:"frequency"`
	Workouts    []domain.ProgramWorkout `json:"workouts" binding:"required"`
	Private     bool                    `json:"private"`
}

func (r ProgramRequest) toInput() service.ProgramInput {
	return service.ProgramInput{
		Name:        r.Name,
		Description: r.Description,
		Objective:   r.Objective,
		Level:       r.Level,
		Duration:    r.Duration,
		Frequency:   r.Frequency,
		Workouts:    r.Workouts,
		IsPrivate:   r.Private,
	}
}

// ProgramResponse carries the `private` wire key for programs.
type ProgramResponse struct {
	ID          string                  `json:"id"`
	UserID      *string                 `json:"userId"`
	Private     bool                    `json:"private"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Objective   domain.ProgramObjective `json:"objective"`
	Level       domain.ProgramLevel     `json:"level,omitempty"`
	Duration    int                     `json:"duration"`
	Frequency   *int                    `json:"frequency,omitempty"`
	Workouts    []domain.ProgramWorkout `json:"workouts"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// MapProgramToResponse converts a domain.Program to its response DTO.
func MapProgramToResponse(p *domain.Program) ProgramResponse {
	var userID *string
	if p.UserID != nil {
		hex := p.UserID.Hex()
		userID = &hex
	}
	return ProgramResponse{
		ID:          p.ID.Hex(),
		UserID:      userID,
		Private:     p.IsPrivate,
		Name:        p.Name,
		Description: p.Description,
		Objective:   p.Objective,
		Level:       p.Level,
		Duration:    p.Duration,
		Frequency:   p.Frequency,
		Workouts:    p.Workouts,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// MapProgramsToResponse converts a slice of programs to response DTOs.
func MapProgramsToResponse(programs []domain.Program) []ProgramResponse {
	responses := make([]ProgramResponse, len(programs))
	for i := range programs {
		responses[i] = MapProgramToResponse(&programs[i])
	}
	return responses
}

// --- Handler Methods ---

func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programService.List(c.Request.Context(), requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Programs retrieved successfully", MapProgramsToResponse(programs))
}

func (h *ProgramHandler) ListDefaults(c *gin.Context) {
	programs, err := h.programService.ListDefaults(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Default programs retrieved successfully", MapProgramsToResponse(programs))
}

func (h *ProgramHandler) ListMine(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	programs, err := h.programService.ListMine(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Programs retrieved successfully", MapProgramsToResponse(programs))
}

func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	program, err := h.programService.Get(c.Request.Context(), id, requesterID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Program retrieved successfully", MapProgramToResponse(program))
}

func (h *ProgramHandler) Create(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	program, err := h.programService.Create(c.Request.Context(), identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, "Program created successfully", MapProgramToResponse(program))
}

func (h *ProgramHandler) Update(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	program, err := h.programService.Update(c.Request.Context(), id, identity.ID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Program updated successfully", MapProgramToResponse(program))
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseObjectID(c, "id")
	if !ok {
		return
	}

	if err := h.programService.Delete(c.Request.Context(), id, identity.ID); err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, "Program deleted successfully", nil)
}
