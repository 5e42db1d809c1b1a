package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/planet"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/spectral"
	"cosmos-server/internal/star"
	"cosmos-server/internal/star/handlers"
)

func newMux() *http.ServeMux {
	h := handlers.NewStarHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stars/{seed}/{index}", h.GetStar)
	mux.HandleFunc("GET /api/stars/{seed}/{index}/planets/{planet}", h.GetPlanet)
	return mux
}

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetStar(t *testing.T) {
	rec := get(t, "/api/stars/509440680/0?galaxy_size=119756")
	require.Equal(t, http.StatusOK, rec.Code)

	var got star.Star
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, star.Generate(star.Params{Seed: 509440680, Parent: star.ParentGalaxy{Size: 119756}}), got)
	assert.Equal(t, spectral.O, got.SpectralClass)
	assert.Len(t, got.Planets, 5)
}

func TestGetStar_TextSeed(t *testing.T) {
	rec := get(t, "/api/stars/alpha-centauri/-3")
	require.Equal(t, http.StatusOK, rec.Code)

	var got star.Star
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, prng.HashString("alpha-centauri"), got.Seed)
	assert.Equal(t, 3, got.Index)
}

func TestGetStar_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"BadIndex", "/api/stars/1/first"},
		{"NegativeSize", "/api/stars/1/0?galaxy_size=-5"},
		{"BadAge", "/api/stars/1/0?galaxy_age=old"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, get(t, tt.target).Code)
		})
	}
}

func TestGetPlanet(t *testing.T) {
	p := star.Params{Seed: 509440680, Parent: star.ParentGalaxy{Size: 119756}}

	rec := get(t, "/api/stars/509440680/0/planets/2?galaxy_size=119756")
	require.Equal(t, http.StatusOK, rec.Code)

	var got planet.Planet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, star.Generate(p).Planets[2], got)
}

func TestGetPlanet_OutOfRange(t *testing.T) {
	rec := get(t, "/api/stars/509440680/0/planets/5?galaxy_size=119756")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}
