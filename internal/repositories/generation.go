package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"nextgen/interview-coach/internal/models"
)

type GenerationRepository interface {
	Create(record *models.GenerationRecord) error
	FindByID(id uuid.UUID) (*models.GenerationRecord, error)
	// List returns records newest first. An empty panel lists every panel.
	List(panel models.Panel, limit int) ([]models.GenerationRecord, error)
}

type generationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) GenerationRepository {
	return &generationRepository{db: db}
}

func (r *generationRepository) Create(record *models.GenerationRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return fmt.Errorf("failed to create generation record: %w", err)
	}
	return nil
}

func (r *generationRepository) FindByID(id uuid.UUID) (*models.GenerationRecord, error) {
	var record models.GenerationRecord
	if err := r.db.Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("generation record %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find generation record: %w", err)
	}
	return &record, nil
}

func (r *generationRepository) List(panel models.Panel, limit int) ([]models.GenerationRecord, error) {
	query := r.db.Order("created_at DESC")
	if panel != "" {
		query = query.Where("panel = ?", panel)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []models.GenerationRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation records: %w", err)
	}
	return records, nil
}
