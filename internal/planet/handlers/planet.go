package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/planet"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/spectral"
)

type PlanetHandler struct{}

func NewPlanetHandler() *PlanetHandler {
	return &PlanetHandler{}
}

// GetPlanet handles GET /api/planets/{seed}/{index}?star_class=
func (h *PlanetHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_planet")

	seed, err := params.Seed(r, "seed")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	index, err := params.Index(r, "index")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	p := planet.Params{Seed: seed, Index: index}
	if raw := r.URL.Query().Get("star_class"); raw != "" {
		class, err := spectral.Parse(raw)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid star_class", err))
			return
		}
		p.Host = &planet.HostStar{SpectralClass: class}
	}

	response.Success(w, http.StatusOK, planet.Generate(p))
}
