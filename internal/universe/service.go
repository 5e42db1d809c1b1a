package universe

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/prng"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
)

const maxNameLength = 100

type ServiceConfig struct {
	DefaultSizeMin float64
	DefaultSizeMax float64
	// CacheTTL bounds how long a galaxy stays in Redis
	CacheTTL time.Duration
}

// Service is the universe registry plus one engine per registered universe.
type Service struct {
	records    Records
	shared     redis.Cmdable
	config     ServiceConfig
	logger     *slog.Logger
	randomSeed func() uint32

	mu      sync.Mutex
	engines map[int]*Universe
}

// NewService builds the registry over records. shared may be nil to keep galaxies in
// process memory only.
func NewService(records Records, shared redis.Cmdable, cfg ServiceConfig, logger *slog.Logger) *Service {
	if cfg.DefaultSizeMin == 0 {
		cfg.DefaultSizeMin = galaxy.DefaultSizeMin
	}
	if cfg.DefaultSizeMax == 0 {
		cfg.DefaultSizeMax = galaxy.DefaultSizeMax
	}
	logger.Debug("Initializing universe service", "redis", shared != nil)

	return &Service{
		records:    records,
		shared:     shared,
		config:     cfg,
		logger:     logger,
		randomSeed: rand.Uint32,
		engines:    make(map[int]*Universe),
	}
}

func (s *Service) CreateUniverse(ctx context.Context, req CreateRequest) (*Record, error) {
	logger := s.logger.With("component", "universe_service", "operation", "create_universe")

	record, err := s.newRecord(req)
	if err != nil {
		return nil, err
	}

	if err := s.records.CreateUniverse(ctx, record); err != nil {
		return nil, err
	}

	logger.Info("Universe registered",
		"universe_id", record.ID,
		"name", record.Name,
		"seed", record.Seed,
		"size_min", record.SizeMin,
		"size_max", record.SizeMax,
	)
	return record, nil
}

func (s *Service) newRecord(req CreateRequest) (*Record, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.Validation("name is required")
	}
	if len(name) > maxNameLength {
		return nil, errors.Validationf("name must be at most %d characters", maxNameLength)
	}

	sizeMin, sizeMax := s.config.DefaultSizeMin, s.config.DefaultSizeMax
	if req.SizeMin != nil {
		sizeMin = *req.SizeMin
	}
	if req.SizeMax != nil {
		sizeMax = *req.SizeMax
	}
	if sizeMin <= 0 {
		return nil, errors.Validation("size_min must be positive")
	}
	if sizeMin >= sizeMax {
		return nil, errors.Validation("size_min must be below size_max")
	}
	if sizeMax > MaxSize {
		return nil, errors.Validationf("size_max must be at most %d", MaxSize)
	}

	var seed uint32
	if req.Seed != nil {
		seed = prng.NormalizeSeed(*req.Seed)
	} else {
		seed = s.randomSeed()
	}

	return &Record{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Seed:        seed,
		SizeMin:     sizeMin,
		SizeMax:     sizeMax,
	}, nil
}

func (s *Service) GetUniverse(ctx context.Context, id int) (*Record, error) {
	return s.records.GetUniverse(ctx, id)
}

func (s *Service) ListUniverses(ctx context.Context) ([]*Record, error) {
	return s.records.ListUniverses(ctx)
}

func (s *Service) DeleteUniverse(ctx context.Context, id int) error {
	if err := s.records.DeleteUniverse(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.engines, id)
	s.mu.Unlock()

	s.logger.Info("Universe deleted", "component", "universe_service", "universe_id", id)
	return nil
}

func (s *Service) GalaxyAt(ctx context.Context, id int, cell spatial.Cell) (galaxy.Galaxy, error) {
	u, err := s.engine(ctx, id)
	if err != nil {
		return galaxy.Galaxy{}, err
	}
	return u.GalaxyAtContext(ctx, cell), nil
}

func (s *Service) AmbientColor(ctx context.Context, id int, cell spatial.Cell) (AmbientColor, error) {
	g, err := s.GalaxyAt(ctx, id, cell)
	if err != nil {
		return AmbientColor{}, err
	}
	return NewAmbientColor(AmbientColorFor(g)), nil
}

func (s *Service) Region(ctx context.Context, id int, center spatial.Cell, radius int) ([]galaxy.Galaxy, error) {
	u, err := s.engine(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.Region(ctx, center, radius)
}

// engine returns the Universe of registry entry id, building it on first use.
func (s *Service) engine(ctx context.Context, id int) (*Universe, error) {
	s.mu.Lock()
	u, ok := s.engines[id]
	s.mu.Unlock()
	if ok {
		return u, nil
	}

	record, err := s.records.GetUniverse(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg := record.Config()
	logger := s.logger.With("universe_id", id)
	var store GalaxyStore = NewMemoryStore()
	if s.shared != nil {
		store = NewTieredStore(store, NewRedisStore(s.shared, cfg, s.config.CacheTTL, logger))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.engines[id]; ok {
		return existing, nil
	}
	u = New(cfg, WithStore(store), WithLogger(logger))
	s.engines[id] = u
	return u, nil
}
