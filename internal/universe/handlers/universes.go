package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/params"
	"cosmos-server/internal/shared/response"
	"cosmos-server/internal/spatial"
	"cosmos-server/internal/universe"
)

const maxBodyBytes = 1 << 20

type UniverseHandler struct {
	service *universe.Service
}

func NewUniverseHandler(service *universe.Service) *UniverseHandler {
	return &UniverseHandler{service: service}
}

// CreateUniverse handles POST /api/universes/create - Admin only
func (h *UniverseHandler) CreateUniverse(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "create_universe")

	var req universe.CreateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		response.Error(w, r, logger, errors.WrapValidation("invalid request body", err))
		return
	}

	record, err := h.service.CreateUniverse(r.Context(), req)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	logger.Info("Universe created", "universe_id", record.ID, "seed", record.Seed)
	response.Success(w, http.StatusCreated, record)
}

// GetUniverses handles GET /api/universes
func (h *UniverseHandler) GetUniverses(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_universes")

	records, err := h.service.ListUniverses(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, records)
}

// GetUniverse handles GET /api/universes/{id}
func (h *UniverseHandler) GetUniverse(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_universe")

	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	record, err := h.service.GetUniverse(r.Context(), id)
	if err != nil {
		response.Error(w, r, logger.With("universe_id", id), err)
		return
	}

	response.Success(w, http.StatusOK, record)
}

// DeleteUniverse handles DELETE /api/universes/{id}/delete - Admin only
func (h *UniverseHandler) DeleteUniverse(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "delete_universe")

	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.DeleteUniverse(r.Context(), id); err != nil {
		response.Error(w, r, logger.With("universe_id", id), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetGalaxy handles GET /api/universes/{id}/galaxies/{x}/{y}/{z}
func (h *UniverseHandler) GetGalaxy(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_galaxy")

	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	cell, err := params.Cell(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	view := r.URL.Query().Get("view")
	if view != "" && view != "full" && view != "summary" {
		response.Error(w, r, logger, errors.Validationf("unknown view %q", view))
		return
	}

	g, err := h.service.GalaxyAt(r.Context(), id, cell)
	if err != nil {
		response.Error(w, r, logger.With("universe_id", id, "cell", cell.String()), err)
		return
	}

	if view == "summary" {
		response.Success(w, http.StatusOK, galaxy.Summarize(g))
		return
	}
	response.Success(w, http.StatusOK, g)
}

// GetAmbientColor handles GET /api/universes/{id}/galaxies/{x}/{y}/{z}/ambient
func (h *UniverseHandler) GetAmbientColor(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_ambient_color")

	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	cell, err := params.Cell(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	color, err := h.service.AmbientColor(r.Context(), id, cell)
	if err != nil {
		response.Error(w, r, logger.With("universe_id", id), err)
		return
	}

	response.Success(w, http.StatusOK, color)
}

// GetRegion handles GET /api/universes/{id}/region/{x}/{y}/{z}?radius=1
func (h *UniverseHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "get_region")

	id, err := params.ID(r, "id")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	center, err := params.Cell(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}
	radius, err := regionRadius(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	galaxies, err := h.service.Region(r.Context(), id, center, radius)
	if err != nil {
		response.Error(w, r, logger.With("universe_id", id, "radius", radius), err)
		return
	}

	summaries := make([]galaxy.Summary, len(galaxies))
	for i, g := range galaxies {
		summaries[i] = galaxy.Summarize(g)
	}
	response.Success(w, http.StatusOK, summaries)
}

func regionRadius(r *http.Request) (int, error) {
	return params.QueryInt(r, "radius", spatial.DefaultRegionRadius)
}

// RegionCost prices a region request at perCell tokens for every cell it spans. Radii
// the handler rejects cost a single token.
func RegionCost(perCell int) func(*http.Request) int {
	return func(r *http.Request) int {
		radius, err := regionRadius(r)
		if err != nil || radius < 0 || radius > spatial.MaxRegionRadius {
			return 1
		}
		return max(1, perCell) * spatial.RegionSize(radius)
	}
}
