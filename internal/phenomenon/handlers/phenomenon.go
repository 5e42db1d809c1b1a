package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/phenomenon"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/shared/response"
)

type PhenomenonHandler struct{}

func NewPhenomenonHandler() *PhenomenonHandler {
	return &PhenomenonHandler{}
}

// GetPhenomenon handles GET /api/phenomena/{seed}/{index}?galaxy_size=
func (h *PhenomenonHandler) GetPhenomenon(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_phenomenon")

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
	size, err := params.QueryFloat(r, "galaxy_size", 0)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	if size < 0 {
		response.Error(w, r, logger, errors.Validation("galaxy_size must not be negative"))
		return
	}

	p := phenomenon.Params{Seed: seed, Index: index}
	if size > 0 {
		p.Parent = &phenomenon.ParentGalaxy{Size: size}
	}

	response.Success(w, http.StatusOK, phenomenon.Generate(p))
}
