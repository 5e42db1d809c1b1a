package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmos-server/internal/planet"
	"cosmos-server/internal/planet/handlers"
	"cosmos-server/internal/spectral"
)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/planets/{seed}/{index}", handlers.NewPlanetHandler().GetPlanet)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetPlanet(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   planet.Planet
	}{
		{"NoHost", "/api/planets/777/2", planet.Generate(planet.Params{Seed: 777, Index: 2})},
		{"HostG", "/api/planets/777/2?star_class=G", planet.Generate(planet.Params{Seed: 777, Index: 2, Host: &planet.HostStar{SpectralClass: spectral.G}})},
		{"NegativeSeed", "/api/planets/-777/-2", planet.Generate(planet.Params{Seed: 777, Index: 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var got planet.Planet
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPlanet_HostShapesResult(t *testing.T) {
	var bare, hosted planet.Planet
	require.NoError(t, json.Unmarshal(get(t, "/api/planets/777/2").Body.Bytes(), &bare))
	require.NoError(t, json.Unmarshal(get(t, "/api/planets/777/2?star_class=G").Body.Bytes(), &hosted))

	assert.Equal(t, 2783.0, bare.RadiusKm)
	assert.Equal(t, 1750.0, hosted.RadiusKm)
}

func TestGetPlanet_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(t, "/api/planets/777/2?star_class=Z").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, "/api/planets/777/x").Code)
}
