package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository provides an in-memory Repository for tests and dry runs.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*PublishRecord
}

// NewMemoryRepository constructs an empty memory-backed history repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[uuid.UUID]*PublishRecord),
	}
}

func (r *MemoryRepository) Record(_ context.Context, record *PublishRecord) (*PublishRecord, error) {
	if record == nil {
		return nil, nil
	}
	cloned := cloneRecord(record)
	if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}
	if cloned.CreatedAt.IsZero() {
		cloned.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[cloned.ID] = cloned
	return cloneRecord(cloned), nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*PublishRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, &NotFoundError{Resource: "publish record", Key: id.String()}
	}
	return cloneRecord(record), nil
}

func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]*PublishRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*PublishRecord, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, cloneRecord(record))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) Prune(_ context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.records) <= keep {
		return 0, nil
	}

	ordered := make([]*PublishRecord, 0, len(r.records))
	for _, record := range r.records {
		ordered = append(ordered, record)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	removed := 0
	for _, record := range ordered[keep:] {
		delete(r.records, record.ID)
		removed++
	}
	return removed, nil
}

func cloneRecord(record *PublishRecord) *PublishRecord {
	if record == nil {
		return nil
	}
	cloned := *record
	return &cloned
}
