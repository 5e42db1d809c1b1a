package server

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/middleware"
	phenomenonHandlers "cosmos-server/internal/phenomenon/handlers"
	planetHandlers "cosmos-server/internal/planet/handlers"
	serverHandlers "cosmos-server/internal/server/handlers"
	starHandlers "cosmos-server/internal/star/handlers"
	structureHandlers "cosmos-server/internal/structure/handlers"
	"cosmos-server/internal/universe"
	universeHandlers "cosmos-server/internal/universe/handlers"
)

// Costs are the rate limit tokens charged by generation endpoints. Everything else costs
// one token.
type Costs struct {
	Galaxy     int
	RegionCell int
}

type Routes struct {
	universeService *universe.Service
	tokens          middleware.TokenValidator
	limiter         *middleware.RateLimiter
	costs           Costs
	db              serverHandlers.Pinger
	redis           serverHandlers.Pinger
}

// NewRoutes wires the API. db and redis may be nil when disabled.
func NewRoutes(universeService *universe.Service, tokens middleware.TokenValidator, limiter *middleware.RateLimiter, costs Costs, db, redis serverHandlers.Pinger) *Routes {
	return &Routes{
		universeService: universeService,
		tokens:          tokens,
		limiter:         limiter,
		costs:           costs,
		db:              db,
		redis:           redis,
	}
}

func (r *Routes) Setup() *http.ServeMux {
	logger := slog.With("component", "routes", "operation", "setup")
	logger.Debug("Setting up application routes")

	mux := http.NewServeMux()

	healthHandler := serverHandlers.NewHealthHandler(r.db, r.redis)
	universeHandler := universeHandlers.NewUniverseHandler(r.universeService)
	starHandler := starHandlers.NewStarHandler()
	planetHandler := planetHandlers.NewPlanetHandler()
	phenomenonHandler := phenomenonHandlers.NewPhenomenonHandler()
	structureHandler := structureHandlers.NewStructureHandler()

	requireAdmin := middleware.RequireAdmin(r.tokens)
	light := r.limiter.Middleware
	heavy := r.limiter.Limit(r.costs.Galaxy)
	region := r.limiter.LimitBy(universeHandlers.RegionCost(r.costs.RegionCell))

	// Public endpoints
	mux.Handle("GET /api/server/health", healthHandler)
	mux.Handle("GET /api/universes", light(http.HandlerFunc(universeHandler.GetUniverses)))
	mux.Handle("GET /api/universes/{id}", light(http.HandlerFunc(universeHandler.GetUniverse)))

	// Generation endpoints
	mux.Handle("GET /api/universes/{id}/galaxies/{x}/{y}/{z}", heavy(http.HandlerFunc(universeHandler.GetGalaxy)))
	mux.Handle("GET /api/universes/{id}/galaxies/{x}/{y}/{z}/ambient", heavy(http.HandlerFunc(universeHandler.GetAmbientColor)))
	mux.Handle("GET /api/universes/{id}/region/{x}/{y}/{z}", region(http.HandlerFunc(universeHandler.GetRegion)))
	mux.Handle("GET /api/stars/{seed}/{index}", light(http.HandlerFunc(starHandler.GetStar)))
	mux.Handle("GET /api/stars/{seed}/{index}/planets/{planet}", light(http.HandlerFunc(starHandler.GetPlanet)))
	mux.Handle("GET /api/planets/{seed}/{index}", light(http.HandlerFunc(planetHandler.GetPlanet)))
	mux.Handle("GET /api/phenomena/{seed}/{index}", light(http.HandlerFunc(phenomenonHandler.GetPhenomenon)))
	mux.Handle("GET /api/structures/{seed}/{index}", light(http.HandlerFunc(structureHandler.GetStructure)))

	// Admin-only endpoints (bearer token with admin role)
	mux.Handle("POST /api/universes/create", requireAdmin(http.HandlerFunc(universeHandler.CreateUniverse)))
	mux.Handle("DELETE /api/universes/{id}/delete", requireAdmin(http.HandlerFunc(universeHandler.DeleteUniverse)))

	logger.Info("Routes configured successfully",
		"public_endpoints", []string{"/api/server/health", "/api/universes", "/api/universes/{id}"},
		"generation_endpoints", []string{"/api/universes/{id}/galaxies", "/api/universes/{id}/region", "/api/stars", "/api/planets", "/api/phenomena", "/api/structures"},
		"admin_endpoints", []string{"/api/universes/create", "/api/universes/{id}/delete"},
		"galaxy_cost", r.costs.Galaxy,
		"region_cell_cost", r.costs.RegionCell,
	)

	return mux
}
