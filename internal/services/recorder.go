package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

// CheckPermission maps the browser's device prompt outcome to an error.
// An empty outcome is treated as granted.
func CheckPermission(outcome string) error {
	switch outcome {
	case "", "granted":
		return nil
	default:
		return fmt.Errorf("device access %q: %w", outcome, ErrPermission)
	}
}

// Recorder owns media capture sessions. Each owner may hold one active
// session at a time. Chunks are appended to storage untouched.
type Recorder interface {
	Start(ctx context.Context)
	Stop()
	Open(owner string, kind models.RecordingKind, limit time.Duration, exerciseID string) (*models.RecordingSession, error)
	Append(id uuid.UUID, data []byte) (*models.RecordingSession, error)
	Close(id uuid.UUID) (*models.RecordingSession, error)
	Get(id uuid.UUID) (*models.RecordingSession, error)
}

type recorder struct {
	mu           sync.Mutex
	storage      StorageService
	sessions     map[uuid.UUID]*models.RecordingSession
	owners       map[string]uuid.UUID
	idleGrace    time.Duration
	reapInterval time.Duration
	retention    time.Duration
	now          func() time.Time
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
}

func NewRecorder(storage StorageService, idleGrace, reapInterval time.Duration, now func() time.Time) Recorder {
	if now == nil {
		now = time.Now
	}
	if reapInterval <= 0 {
		reapInterval = 30 * time.Second
	}
	return &recorder{
		storage:      storage,
		sessions:     make(map[uuid.UUID]*models.RecordingSession),
		owners:       make(map[string]uuid.UUID),
		idleGrace:    idleGrace,
		reapInterval: reapInterval,
		retention:    time.Hour,
		now:          now,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Recorder. It runs the reaper until Stop is called or ctx
// is done.
func (r *recorder) Start(ctx context.Context) {
	r.wg.Add(1)
	go r.reapLoop(ctx)
	log.Println("✅ Recorder started successfully")
}

// Stop implements Recorder.
func (r *recorder) Stop() {
	log.Println("🛑 Stopping recorder...")
	r.stopOnce.Do(func() { close(r.stopChan) })
	r.wg.Wait()
	log.Println("✅ Recorder stopped")
}

func (r *recorder) Open(owner string, kind models.RecordingKind, limit time.Duration, exerciseID string) (*models.RecordingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, held := r.owners[owner]; held {
		return nil, fmt.Errorf("recording for %s: %w", owner, ErrBusy)
	}

	filename, err := r.storage.CreateFile(string(kind), ".webm")
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}

	now := r.now()
	session := &models.RecordingSession{
		ID:          uuid.New(),
		Owner:       owner,
		Kind:        kind,
		Status:      models.RecordingActive,
		Filename:    filename,
		StartedAt:   now,
		Deadline:    now.Add(limit),
		LastChunkAt: now,
		ExerciseID:  exerciseID,
	}

	r.sessions[session.ID] = session
	r.owners[owner] = session.ID
	RecordingSessionsActive.Inc()

	log.Printf("🎙️ Recording %s opened for %s", session.ID, owner)
	return copySession(session), nil
}

func (r *recorder) Append(id uuid.UUID, data []byte) (*models.RecordingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("recording %s: %w", id, ErrNotFound)
	}
	if session.Status != models.RecordingActive {
		return nil, newValidationError("Recording is not active")
	}
	if r.now().After(session.Deadline) {
		r.release(session, models.RecordingStopped)
		return nil, newValidationError("Recording time limit reached")
	}

	n, err := r.storage.AppendChunk(session.Filename, data)
	session.BytesWritten += n
	if err != nil {
		return nil, fmt.Errorf("failed to store chunk: %w", err)
	}
	session.ChunkCount++
	session.LastChunkAt = r.now()

	return copySession(session), nil
}

// Close releases the session. Closing a released session returns it as is.
func (r *recorder) Close(id uuid.UUID) (*models.RecordingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("recording %s: %w", id, ErrNotFound)
	}
	if session.Status == models.RecordingActive {
		r.release(session, models.RecordingStopped)
		log.Printf("⏹️ Recording %s stopped (%d bytes)", id, session.BytesWritten)
	}
	return copySession(session), nil
}

func (r *recorder) Get(id uuid.UUID) (*models.RecordingSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("recording %s: %w", id, ErrNotFound)
	}
	return copySession(session), nil
}

// release must be called with r.mu held.
func (r *recorder) release(session *models.RecordingSession, status models.RecordingStatus) {
	stoppedAt := r.now()
	session.Status = status
	session.StoppedAt = &stoppedAt
	if r.owners[session.Owner] == session.ID {
		delete(r.owners, session.Owner)
	}
	RecordingSessionsActive.Dec()
}

func (r *recorder) reapLoop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.reapInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting recording reaper")

	for {
		select {
		case <-r.stopChan:
			log.Println("🔄 Recording reaper stopped")
			return
		case <-ctx.Done():
			log.Println("🔄 Recording reaper stopped")
			return
		case <-ticker.C:
			if n := r.reap(); n > 0 {
				log.Printf("🧹 Released %d abandoned recordings", n)
			}
		}
	}
}

// reap expires sessions held past deadline plus grace and forgets released
// ones older than the retention window. It returns the number expired.
func (r *recorder) reap() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	expired := 0
	for id, session := range r.sessions {
		switch {
		case session.Status == models.RecordingActive && now.After(session.Deadline.Add(r.idleGrace)):
			r.release(session, models.RecordingExpired)
			expired++
		case session.Status != models.RecordingActive && session.StoppedAt != nil && now.Sub(*session.StoppedAt) > r.retention:
			delete(r.sessions, id)
		}
	}
	return expired
}

func copySession(s *models.RecordingSession) *models.RecordingSession {
	out := *s
	return &out
}
