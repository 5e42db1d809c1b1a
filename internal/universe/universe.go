package universe

import (
	"context"
	"log/slog"
	"math"
	"time"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
)

// Config is the identity of a universe. Zero sizes resolve to the galaxy defaults.
type Config struct {
	Seed    uint32
	SizeMin float64
	SizeMax float64
}

func (c Config) resolve() Config {
	if c.SizeMin == 0 {
		c.SizeMin = galaxy.DefaultSizeMin
	}
	if c.SizeMax == 0 {
		c.SizeMax = galaxy.DefaultSizeMax
	}
	return c
}

// Universe generates galaxies on demand and keeps each one in its store. Two universes
// never share a store unless one is passed explicitly.
type Universe struct {
	config Config
	store  GalaxyStore
	logger *slog.Logger
}

type Option func(*Universe)

func WithStore(store GalaxyStore) Option {
	return func(u *Universe) {
		u.store = store
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Universe) {
		u.logger = logger
	}
}

func New(cfg Config, opts ...Option) *Universe {
	u := &Universe{
		config: cfg.resolve(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.store == nil {
		u.store = NewMemoryStore()
	}
	u.logger = u.logger.With("component", "universe", "seed", u.config.Seed)
	return u
}

func (u *Universe) Config() Config {
	return u.config
}

// GalaxyAt returns the galaxy of cell, generating it on the first request.
func (u *Universe) GalaxyAt(cell spatial.Cell) galaxy.Galaxy {
	return u.GalaxyAtContext(context.Background(), cell)
}

// GalaxyAtContext is GalaxyAt with a context for stores that do I/O.
func (u *Universe) GalaxyAtContext(ctx context.Context, cell spatial.Cell) galaxy.Galaxy {
	if g, ok := u.store.Load(ctx, cell); ok {
		return g
	}

	start := time.Now()
	g := galaxy.Generate(galaxy.Params{
		UniverseSeed: u.config.Seed,
		Cell:         cell,
		SizeMin:      u.config.SizeMin,
		SizeMax:      u.config.SizeMax,
	})
	u.logger.Debug("Generated galaxy",
		"operation", "galaxy_at",
		"cell", cell.String(),
		"galaxy_id", g.ID,
		"num_systems", g.NumSystems,
		"duration", time.Since(start),
	)

	u.store.Save(ctx, cell, g)
	return g
}

// Region returns the galaxies of the cube of cells within radius of center, in x, y, z
// order. It stops early when ctx is done.
func (u *Universe) Region(ctx context.Context, center spatial.Cell, radius int) ([]galaxy.Galaxy, error) {
	if radius < 0 || radius > spatial.MaxRegionRadius {
		return nil, errors.Validationf("radius must be between 0 and %d", spatial.MaxRegionRadius)
	}

	cells := spatial.Region(center, radius)
	galaxies := make([]galaxy.Galaxy, 0, len(cells))
	for _, cell := range cells {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		galaxies = append(galaxies, u.GalaxyAtContext(ctx, cell))
	}
	return galaxies, nil
}

// AmbientColorFor is the scene ambient light of g: its dominant class color, dimmed.
func AmbientColorFor(g galaxy.Galaxy) [3]uint8 {
	rgb := g.DominantSpectral.RGB()
	return [3]uint8{
		dim(rgb[0], 6),
		dim(rgb[1], 6),
		dim(rgb[2], 10),
	}
}

func dim(c uint8, floor float64) uint8 {
	return uint8(math.Max(floor, prng.Round(float64(c)*0.06)))
}

// AmbientColorFor is the package function bound to u, for callers holding a Universe.
func (u *Universe) AmbientColorFor(g galaxy.Galaxy) [3]uint8 {
	return AmbientColorFor(g)
}
