package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/star"
)

// StarHandler regenerates solar systems from their seed. It holds no state.
type StarHandler struct{}

func NewStarHandler() *StarHandler {
	return &StarHandler{}
}

// GetStar handles GET /api/stars/{seed}/{index}
func (h *StarHandler) GetStar(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_star")

	p, err := starParams(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, star.Generate(p))
}

// GetPlanet handles GET /api/stars/{seed}/{index}/planets/{planet}
func (h *StarHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_star_planet")

	p, err := starParams(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	i, err := params.Index(r, "planet")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	pl, ok := star.PlanetAt(p, i)
	if !ok {
		response.Error(w, r, logger, errors.NotFoundf("star %d-%d has no planet %d", p.Seed, p.Index, i))
		return
	}

	response.Success(w, http.StatusOK, pl)
}

func starParams(r *http.Request) (star.Params, error) {
	seed, err := params.Seed(r, "seed")
	if err != nil {
		return star.Params{}, err
	}
	index, err := params.Index(r, "index")
	if err != nil {
		return star.Params{}, err
	}
	size, err := params.QueryFloat(r, "galaxy_size", 0)
	if err != nil {
		return star.Params{}, err
	}
	age, err := params.QueryFloat(r, "galaxy_age", 0)
	if err != nil {
		return star.Params{}, err
	}
	if size < 0 || age < 0 {
		return star.Params{}, errors.Validation("galaxy_size and galaxy_age must not be negative")
	}

	return star.Params{
		Seed:   seed,
		Index:  index,
		Parent: star.ParentGalaxy{Size: size, Age: age},
	}, nil
}
