package models

import (
	"time"

	"github.com/google/uuid"
)

type RecordingKind string

const (
	RecordingAudio RecordingKind = "audio"
	RecordingVideo RecordingKind = "video"
)

type RecordingStatus string

const (
	RecordingActive  RecordingStatus = "recording"
	RecordingStopped RecordingStatus = "stopped"
	RecordingExpired RecordingStatus = "expired"
)

// RecordingSession holds an exclusive capture handle for one owner.
type RecordingSession struct {
	ID           uuid.UUID       `json:"id"`
	Owner        string          `json:"-"`
	Kind         RecordingKind   `json:"kind"`
	Status       RecordingStatus `json:"status"`
	Filename     string          `json:"-"`
	BytesWritten int64           `json:"bytesWritten"`
	ChunkCount   int             `json:"chunkCount"`
	StartedAt    time.Time       `json:"startedAt"`
	Deadline     time.Time       `json:"deadline"`
	LastChunkAt  time.Time       `json:"lastChunkAt"`
	StoppedAt    *time.Time      `json:"stoppedAt,omitempty"`
	ExerciseID   string          `json:"exerciseId,omitempty"`
}
