package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	RespondWithJSON(rec, req, http.StatusCreated, map[string]string{"title": "x"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"title":"x"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("includes_trace_id_from_context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(context.WithValue(req.Context(), TraceIDKey, "trace-123"))

		RespondWithError(rec, req, http.StatusBadRequest, "User email is required")

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "User email is required", body.Error)
		assert.Equal(t, "trace-123", body.TraceID)
	})

	t.Run("status_code_is_not_serialized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		RespondWithError(rec, req, http.StatusNotFound, "Task not found")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "Code")
		assert.NotContains(t, raw, "code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)

	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError,
		"Failed to create task", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to create task", body.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused",
		"raw error details stay out of the response")
}
