package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/repositories"
)

// GenerationRequest describes one prompted generation for a panel.
type GenerationRequest[T any] struct {
	Panel models.Panel
	// Key identifies the calling panel instance for the busy guard.
	Key    string
	Prompt string
	Config GenerationConfig
	// Decode turns raw model text into a result. Defaults to DecodeResult[T].
	Decode func(raw string) (*T, error)
	// Fallback builds a substitute result after a network or parse failure.
	Fallback        func(cause error) *T
	LiveMessage     string
	FallbackMessage string
}

// Pipeline runs prompted generations: request, parse, and fall back on
// failure. Every finished run is stored in history.
type Pipeline struct {
	gemini  GeminiService
	history repositories.GenerationRepository
	busy    *BusyGuard
	now     func() time.Time
	onState func(models.Panel, models.PipelineState)
}

func NewPipeline(gemini GeminiService, history repositories.GenerationRepository, busy *BusyGuard) *Pipeline {
	if busy == nil {
		busy = NewBusyGuard()
	}
	return &Pipeline{
		gemini:  gemini,
		history: history,
		busy:    busy,
		now:     time.Now,
	}
}

// OnState registers a hook called on every state transition.
func (p *Pipeline) OnState(fn func(models.Panel, models.PipelineState)) {
	p.onState = fn
}

func (p *Pipeline) transition(panel models.Panel, state models.PipelineState) {
	log.Printf("🔄 [%s] %s", panel, state)
	if p.onState != nil {
		p.onState(panel, state)
	}
}

// BusyKey is the guard key for a panel instance.
func BusyKey(panel models.Panel, key string) string {
	if key == "" {
		key = "default"
	}
	return string(panel) + ":" + key
}

// Run executes req. It returns ErrBusy while the same panel instance already
// has a run in flight, and context.Canceled when the caller goes away; no
// fallback is built in either case. Network and parse failures never surface
// as errors, and an expired deadline counts as a network failure.
func Run[T any](ctx context.Context, p *Pipeline, req GenerationRequest[T]) (*models.GenerationResult[T], error) {
	release, err := p.busy.Acquire(BusyKey(req.Panel, req.Key))
	if err != nil {
		log.Printf("⚠️  [%s] generation already in progress", req.Panel)
		return nil, err
	}
	defer release()

	decode := req.Decode
	if decode == nil {
		decode = DecodeResult[T]
	}

	started := p.now()

	p.transition(req.Panel, models.StateRequesting)
	raw, err := p.gemini.GenerateText(ctx, req.Prompt, req.Config)

	var data *T
	if err == nil {
		p.transition(req.Panel, models.StateParsing)
		data, err = decode(raw)
	}

	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		log.Printf("⚠️  [%s] generation cancelled", req.Panel)
		return nil, context.Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: request timed out", ErrNetwork)
	}

	result := &models.GenerationResult[T]{
		ID:      uuid.New(),
		Panel:   req.Panel,
		Source:  models.SourceLive,
		Message: req.LiveMessage,
		Data:    data,
	}

	if err != nil {
		p.transition(req.Panel, models.StateFailed)
		log.Printf("❌ [%s] generation failed: %v", req.Panel, err)

		p.transition(req.Panel, models.StateFallbackBuilding)
		result.Source = models.SourceFallback
		result.FailureReason = err.Error()
		result.Message = req.FallbackMessage
		result.Data = req.Fallback(err)
	}

	result.CreatedAt = p.now()
	p.transition(req.Panel, models.StateDone)

	GenerationRequestsTotal.WithLabelValues(string(req.Panel), string(result.Source)).Inc()
	GenerationDuration.WithLabelValues(string(req.Panel)).Observe(result.CreatedAt.Sub(started).Seconds())

	p.record(result.ID, req.Panel, result.Source, result.FailureReason, result.CreatedAt, result.Data)

	return result, nil
}

type titled interface {
	ResultTitle() string
}

func (p *Pipeline) record(id uuid.UUID, panel models.Panel, source models.Source, reason string, at time.Time, data any) {
	if p.history == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("⚠️  [%s] failed to encode result for history: %v", panel, err)
		return
	}

	title := string(panel)
	if t, ok := data.(titled); ok {
		title = t.ResultTitle()
	}

	record := &models.GenerationRecord{
		ID:            id,
		Panel:         panel,
		Source:        source,
		FailureReason: reason,
		Title:         title,
		Payload:       string(payload),
		CreatedAt:     at,
	}
	if err := p.history.Create(record); err != nil {
		log.Printf("⚠️  [%s] failed to store result: %v", panel, err)
	}
}
