package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

type memoryGenerationRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]models.GenerationRecord
	seq     map[uuid.UUID]int
	next    int
}

func NewMemoryGenerationRepository() GenerationRepository {
	return &memoryGenerationRepository{
		records: make(map[uuid.UUID]models.GenerationRecord),
		seq:     make(map[uuid.UUID]int),
	}
}

func (r *memoryGenerationRepository) Create(record *models.GenerationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, ok := r.records[record.ID]; ok {
		return fmt.Errorf("failed to create generation record: duplicate id %s", record.ID)
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	r.records[record.ID] = *record
	r.seq[record.ID] = r.next
	r.next++
	return nil
}

func (r *memoryGenerationRepository) FindByID(id uuid.UUID) (*models.GenerationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("generation record %s: %w", id, ErrNotFound)
	}
	return &record, nil
}

func (r *memoryGenerationRepository) List(panel models.Panel, limit int) ([]models.GenerationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.GenerationRecord, 0, len(r.records))
	for _, record := range r.records {
		if panel != "" && record.Panel != panel {
			continue
		}
		out = append(out, record)
	}

	// Insertion order breaks ties between equal timestamps.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return r.seq[out[i].ID] > r.seq[out[j].ID]
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
