package universe

import (
	"context"
	"sort"
	"sync"
	"time"

	"cosmos-server/internal/shared/errors"
)

// MemoryRepository is the registry used when no database is configured. Its contents
// are lost on restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	records map[int]Record
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		records: make(map[int]Record),
		now:     time.Now,
	}
}

func (m *MemoryRepository) CreateUniverse(_ context.Context, record *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.records {
		if existing.Name == record.Name {
			return errors.Conflictf("universe named %q already exists", record.Name)
		}
	}

	now := m.now().UTC()
	record.ID = m.nextID
	record.CreatedAt = now
	record.UpdatedAt = now
	m.records[record.ID] = *record
	m.nextID++
	return nil
}

func (m *MemoryRepository) GetUniverse(_ context.Context, id int) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, errors.NotFoundf("universe not found with id: %d", id)
	}
	return &record, nil
}

func (m *MemoryRepository) ListUniverses(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Record, 0, len(m.records))
	for _, record := range m.records {
		record := record
		records = append(records, &record)
	}
	// newest first, like the Postgres query
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID > records[j].ID
	})
	return records, nil
}

func (m *MemoryRepository) DeleteUniverse(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return errors.NotFoundf("universe not found with id: %d", id)
	}
	delete(m.records, id)
	return nil
}
