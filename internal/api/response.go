package api

import (
	"errors"
	"log/slog"

	"gympal/gains-tracker/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// respondData writes the success envelope used by every handler.
func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{"message": message, "data": data})
}

// respondError maps a typed application error onto the wire error shape.
// Anything that is not an *apperr.Error becomes a generic 500 with no
// detail leaked to the caller.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		slog.Error("unhandled error", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		appErr = apperr.Internal("Internal server error")
	}

	body := gin.H{
		"status":  "error",
		"message": appErr.Message,
	}
	if appErr.Code != "" {
		body["code"] = appErr.Code
	}
	if len(appErr.Fields) > 0 {
		body["errors"] = appErr.Fields
	}

	c.AbortWithStatusJSON(appErr.Status, body)
}

// respondBindingError converts a gin binding failure into a 400.
func respondBindingError(c *gin.Context, err error) {
	respondError(c, apperr.Validation("Invalid request body", err.Error()))
}

// parseObjectID parses a path id parameter.
func parseObjectID(c *gin.Context, param string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(param))
	if err != nil {
		respondError(c, apperr.BadRequest("Invalid id"))
		return primitive.NilObjectID, false
	}
	return id, true
}
