package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/phenomenon"
	"cosmos-server/internal/phenomenon/handlers"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/phenomena/{seed}/{index}", handlers.NewPhenomenonHandler().GetPhenomenon)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetPhenomenon(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   phenomenon.Phenomenon
	}{
		{"Standalone", "/api/phenomena/31337/4", phenomenon.Generate(phenomenon.Params{Seed: 31337, Index: 4})},
		{"InGalaxy", "/api/phenomena/31337/4?galaxy_size=50000", phenomenon.Generate(phenomenon.Params{Seed: 31337, Index: 4, Parent: &phenomenon.ParentGalaxy{Size: 50000}})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var got phenomenon.Phenomenon
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPhenomenon_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(t, "/api/phenomena/1/0?galaxy_size=-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, "/api/phenomena/1/0?galaxy_size=wide").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, "/api/phenomena/1/zero").Code)
}
