package response_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"NotFound", errors.NotFoundf("universe 9 not found"), http.StatusNotFound, "not_found"},
		{"Validation", errors.Validation("radius must be at most 2"), http.StatusBadRequest, "validation"},
		{"Unauthorized", errors.Unauthorized("missing token"), http.StatusUnauthorized, "unauthorized"},
		{"Forbidden", errors.Forbidden("admin only"), http.StatusForbidden, "forbidden"},
		{"Conflict", errors.Conflictf("taken"), http.StatusConflict, "conflict"},
		{"MethodNotAllowed", errors.MethodNotAllowed("PATCH"), http.StatusMethodNotAllowed, "method_not_allowed"},
		{"External", errors.External("db down"), http.StatusServiceUnavailable, "external"},
		{"RateLimited", errors.RateLimited("slow down"), http.StatusTooManyRequests, "rate_limited"},
		{"Untyped", fmt.Errorf("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/universes/9", nil)

			response.Error(rec, req, discard, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body.Error)
			assert.Equal(t, tt.err.Error(), body.Message)
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestErrorWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	response.ErrorWithMessage(rec, req, discard, errors.WrapInternal("query failed", fmt.Errorf("pq: secret detail")), "something went wrong")

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body.Message)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	response.Success(rec, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.Success(rec, http.StatusNoContent, nil)
	assert.Empty(t, rec.Body.String())
}
