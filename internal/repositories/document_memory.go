package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

type memoryDocumentRepository struct {
	mu   sync.RWMutex
	docs map[uuid.UUID]models.Document
}

func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{docs: make(map[uuid.UUID]models.Document)}
}

func (r *memoryDocumentRepository) Create(document *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	now := time.Now()
	if document.CreatedAt.IsZero() {
		document.CreatedAt = now
	}
	document.UpdatedAt = now

	r.docs[document.ID] = *document
	return nil
}

func (r *memoryDocumentRepository) FindByID(id uuid.UUID) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	return &doc, nil
}

func (r *memoryDocumentRepository) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return fmt.Errorf("document %s: %w", id, ErrNotFound)
	}
	delete(r.docs, id)
	return nil
}
