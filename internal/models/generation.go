package models

import (
	"time"

	"github.com/google/uuid"
)

// Panel identifies the feature view a generation belongs to.
type Panel string

const (
	PanelChat          Panel = "chat"
	PanelCode          Panel = "code_analysis"
	PanelResume        Panel = "resume_analysis"
	PanelQuestions     Panel = "question_generator"
	PanelAssessment    Panel = "skill_assessment"
	PanelMockInterview Panel = "mock_interview"
	PanelCommunication Panel = "communication_trainer"
)

// Source says whether a result came from the model or from a fallback builder.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// PipelineState is one step of a single generation run.
type PipelineState string

const (
	StateIdle             PipelineState = "idle"
	StateRequesting       PipelineState = "requesting"
	StateParsing          PipelineState = "parsing"
	StateFailed           PipelineState = "failed"
	StateFallbackBuilding PipelineState = "fallback_building"
	StateDone             PipelineState = "done"
)

// GenerationResult wraps a panel result with its provenance.
type GenerationResult[T any] struct {
	ID            uuid.UUID `json:"id"`
	Panel         Panel     `json:"panel"`
	Source        Source    `json:"source"`
	FailureReason string    `json:"failure_reason,omitempty"`
	Message       string    `json:"message"`
	Data          *T        `json:"data"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsFallback reports whether Data was fabricated locally.
func (r *GenerationResult[T]) IsFallback() bool {
	return r.Source == SourceFallback
}

// GenerationRecord is the stored form of a GenerationResult.
type GenerationRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Panel         Panel     `gorm:"type:text;index;not null" json:"panel"`
	Source        Source    `gorm:"type:text;not null" json:"source"`
	FailureReason string    `gorm:"type:text" json:"failure_reason,omitempty"`
	Title         string    `gorm:"type:text" json:"title"`
	Payload       string    `gorm:"type:jsonb" json:"-"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

func (GenerationRecord) TableName() string {
	return "generation_records"
}
