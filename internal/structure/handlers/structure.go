package handlers

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/structure"
)

type StructureHandler struct{}

func NewStructureHandler() *StructureHandler {
	return &StructureHandler{}
}

// GetStructure handles GET /api/structures/{seed}/{index}?type=
func (h *StructureHandler) GetStructure(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_structure")

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

	p := structure.Params{Seed: seed, Index: index}
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := structure.ParseType(raw)
		if err != nil {
			response.Error(w, r, logger, errors.WrapValidation("invalid type", err))
			return
		}
		p.TypeHint = &t
	}

	response.Success(w, http.StatusOK, structure.Generate(p))
}
