package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatusAndCode(t *testing.T) {
	cases := []struct {
		err    *Error
		status int
		code   string
	}{
		{BadRequest("x"), http.StatusBadRequest, "BAD_REQUEST"},
		{Unauthorized("x"), http.StatusUnauthorized, "AUTHENTICATION_ERROR"},
		{Forbidden("x"), http.StatusForbidden, "AUTHORIZATION_ERROR"},
		{NotFound("x"), http.StatusNotFound, "NOT_FOUND"},
		{Conflict("x"), http.StatusConflict, "CONFLICT_ERROR"},
		{Internal("x"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, "x", tc.err.Error())
	}
}

func TestValidationCarriesFieldMessages(t *testing.T) {
	err := Validation("Invalid input", "name is required", "email is malformed")
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Len(t, err.Fields, 2)

	data, jsonErr := json.Marshal(err)
	require.NoError(t, jsonErr)
	assert.Contains(t, string(data), `"errors":["name is required","email is malformed"]`)
	assert.NotContains(t, string(data), "Status", "HTTP status stays out of the body")
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := NotFound("Exercise not found")
	wrapped := fmt.Errorf("loading exercise: %w", base)

	var appErr *Error
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}
