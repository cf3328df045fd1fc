package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gympal/gains-tracker/internal/apperr"
	"gympal/gains-tracker/internal/domain"
	"gympal/gains-tracker/internal/service"
	"gympal/gains-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// githubAuthPath is returned as a hint when a password login hits an
// OAuth-only account.
const githubAuthPath = "/auth/github"

// UserHandler holds the auth service and file storage dependencies.
type UserHandler struct {
	authService service.AuthService
	fileStorage storage.FileStorage
}

// NewUserHandler creates a new UserHandler. fileStorage may be nil when
// no object storage is configured; avatar endpoints then return 500.
func NewUserHandler(authService service.AuthService, fileStorage storage.FileStorage) *UserHandler {
	return &UserHandler{authService: authService, fileStorage: fileStorage}
}

// --- DTOs ---

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// UserResponse is the account shape returned to clients. Credentials and
// provider ids never leave the server.
type UserResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Provider  string     `json:"provider"`
	AvatarURL string     `json:"avatarUrl,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// MapUserToResponse converts a domain.User to its response DTO.
func MapUserToResponse(user *domain.User, avatarURL string) UserResponse {
	return UserResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		Provider:  string(user.Provider),
		AvatarURL: avatarURL,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// --- Handler Methods ---

// Register creates a local-password account.
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, "User registered successfully", gin.H{
		"name":  user.Name,
		"email": user.Email,
	})
}

// Login authenticates through the password path and returns a fresh
// session JWT. OAuth-only accounts get a 401 carrying the provider hint
// so clients can redirect to the right flow.
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if appErr, ok := err.(*apperr.Error); ok && appErr.Code == service.CodeProviderLogin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":        "error",
				"code":          appErr.Code,
				"message":       appErr.Message,
				"githubAuthUrl": githubAuthPath,
			})
			return
		}
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Login successful", gin.H{
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	})
}

// ChangePassword updates the caller's password. Accounts without a local
// password (OAuth-created) may set one without providing oldPassword.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), identity.ID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, "Password changed successfully", nil)
}

// Profile returns the caller's account, with a presigned avatar download
// URL when an avatar has been uploaded.
func (h *UserHandler) Profile(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	avatarURL := ""
	if user.Avatar != "" && h.fileStorage != nil {
		avatarURL, err = h.fileStorage.GeneratePresignedDownloadURL(c.Request.Context(), user.Avatar, 0)
		if err != nil {
			// Profile still renders without the avatar link.
			slog.Warn("failed to presign avatar download", "user", user.ID.Hex(), "error", err)
			avatarURL = ""
		}
	}

	respondData(c, http.StatusOK, "Profile retrieved successfully", MapUserToResponse(user, avatarURL))
}

// Avatar issues a presigned upload URL for a fresh object key and records
// the key on the account. The client performs the PUT itself.
func (h *UserHandler) Avatar(c *gin.Context) {
	identity, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if h.fileStorage == nil {
		respondError(c, apperr.Internal("File storage is not configured"))
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), identity.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	previousKey := user.Avatar

	objectKey := fmt.Sprintf("avatars/%s/%s", identity.ID.Hex(), uuid.NewString())
	uploadURL, err := h.fileStorage.GeneratePresignedUploadURL(c.Request.Context(), objectKey, req.ContentType, 0)
	if err != nil {
		respondError(c, apperr.Internal("Failed to generate upload URL"))
		return
	}

	if err := h.authService.SetAvatar(c.Request.Context(), identity.ID, objectKey); err != nil {
		respondError(c, err)
		return
	}

	// The replaced object is unreachable once the key changes; removal is
	// best effort.
	if previousKey != "" {
		if err := h.fileStorage.DeleteObject(c.Request.Context(), previousKey); err != nil {
			slog.Warn("failed to delete replaced avatar object", "user", identity.ID.Hex(), "key", previousKey, "error", err)
		}
	}

	respondData(c, http.StatusOK, "Avatar upload URL generated", gin.H{
		"uploadUrl": uploadURL,
		"key":       objectKey,
	})
}

// Logout revokes the caller's session. Anonymous calls succeed without
// doing anything so clients can always clear local state.
func (h *UserHandler) Logout(c *gin.Context) {
	if identity, ok := identityFromContext(c); ok {
		if err := h.authService.Logout(c.Request.Context(), identity.ID); err != nil {
			respondError(c, err)
			return
		}
	}

	respondData(c, http.StatusOK, "Logged out successfully", nil)
}
