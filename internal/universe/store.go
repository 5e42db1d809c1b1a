package universe

import (
	"context"
	"sync"

	"cosmos-server/internal/galaxy"
	"cosmos-server/internal/spatial"
)

// GalaxyStore memoizes generated galaxies of one universe by cell. Load misses are not
// errors; a store that cannot answer reports a miss and the galaxy is regenerated.
type GalaxyStore interface {
	Load(ctx context.Context, cell spatial.Cell) (galaxy.Galaxy, bool)
	Save(ctx context.Context, cell spatial.Cell, g galaxy.Galaxy)
}

// MemoryStore keeps every galaxy for the life of the process. Galaxies are copied in and
// out, so callers may modify what they get.
type MemoryStore struct {
	mu       sync.RWMutex
	galaxies map[string]galaxy.Galaxy
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{galaxies: make(map[string]galaxy.Galaxy)}
}

func (s *MemoryStore) Load(_ context.Context, cell spatial.Cell) (galaxy.Galaxy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.galaxies[cell.Key()]
	if !ok {
		return galaxy.Galaxy{}, false
	}
	return g.Clone(), true
}

func (s *MemoryStore) Save(_ context.Context, cell spatial.Cell, g galaxy.Galaxy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.galaxies[cell.Key()] = g.Clone()
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.galaxies)
}

// TieredStore reads through a fast local store to a shared one and writes to both.
type TieredStore struct {
	local  GalaxyStore
	shared GalaxyStore
}

func NewTieredStore(local, shared GalaxyStore) *TieredStore {
	return &TieredStore{local: local, shared: shared}
}

func (s *TieredStore) Load(ctx context.Context, cell spatial.Cell) (galaxy.Galaxy, bool) {
	if g, ok := s.local.Load(ctx, cell); ok {
		return g, true
	}
	g, ok := s.shared.Load(ctx, cell)
	if ok {
		s.local.Save(ctx, cell, g)
	}
	return g, ok
}

func (s *TieredStore) Save(ctx context.Context, cell spatial.Cell, g galaxy.Galaxy) {
	s.local.Save(ctx, cell, g)
	s.shared.Save(ctx, cell, g)
}
