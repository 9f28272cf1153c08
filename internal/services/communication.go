package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

var ExerciseTypes = []Option{
	{ID: "pronunciation", Label: "Pronunciation", Color: "blue"},
	{ID: "fluency", Label: "Fluency", Color: "green"},
	{ID: "vocabulary", Label: "Vocabulary", Color: "purple"},
	{ID: "grammar", Label: "Grammar", Color: "orange"},
	{ID: "conversation", Label: "Conversation", Color: "red"},
}

// SampleExercises durations are in seconds.
var SampleExercises = []models.Exercise{
	{
		ID:          "1",
		Title:       "Technical Presentation",
		Description: "Practice explaining complex technical concepts clearly",
		Type:        "conversation",
		Difficulty:  "intermediate",
		Duration:    180,
		Content:     "Explain how a REST API works and its key principles. Include examples of HTTP methods and status codes.",
		TargetWords: []string{"REST", "API", "HTTP", "GET", "POST", "PUT", "DELETE", "status codes"},
		Tips: []string{
			"Use simple analogies to explain complex concepts",
			"Speak at a moderate pace",
			"Use clear transitions between ideas",
			"Include practical examples",
		},
	},
	{
		ID:          "2",
		Title:       "Pronunciation Practice",
		Description: "Focus on difficult technical terms and their correct pronunciation",
		Type:        "pronunciation",
		Difficulty:  "beginner",
		Duration:    120,
		Content:     "Read the following technical terms clearly: Algorithm, Authentication, Authorization, Asynchronous, Synchronous, Kubernetes, PostgreSQL, Elasticsearch, Microservices, Infrastructure.",
		TargetWords: []string{"Algorithm", "Authentication", "Authorization", "Asynchronous", "Kubernetes"},
		Tips: []string{
			"Break down complex words into syllables",
			"Practice each word multiple times",
			"Focus on stress patterns",
			"Record yourself and listen back",
		},
	},
	{
		ID:          "3",
		Title:       "Fluency Builder",
		Description: "Improve speaking flow and reduce hesitations",
		Type:        "fluency",
		Difficulty:  "intermediate",
		Duration:    240,
		Content:     "Describe your experience with a challenging project. Talk continuously for 3 minutes without long pauses. Focus on maintaining steady flow.",
		Tips: []string{
			"Plan your main points beforehand",
			"Use connecting words and phrases",
			"Don't worry about perfect grammar",
			"Keep talking even if you make mistakes",
		},
	},
	{
		ID:          "4",
		Title:       "Vocabulary Enhancement",
		Description: "Practice using advanced technical vocabulary in context",
		Type:        "vocabulary",
		Difficulty:  "advanced",
		Duration:    200,
		Content:     "Use these words in sentences related to software development: scalability, optimization, refactoring, deployment, integration, architecture, framework, paradigm.",
		TargetWords: []string{"scalability", "optimization", "refactoring", "deployment", "integration"},
		Tips: []string{
			"Create meaningful sentences",
			"Use words in proper context",
			"Explain the meaning if unsure",
			"Connect words to real experiences",
		},
	},
}

type CommunicationService interface {
	Exercises(exerciseType, difficulty string) []models.Exercise
	StartRecording(key string, req models.StartRecordingRequest) (*models.RecordingSession, error)
	AppendChunk(id uuid.UUID, data []byte) (*models.RecordingSession, error)
	StopRecording(ctx context.Context, key string, id uuid.UUID, transcript string) (*models.GenerationResult[models.CommunicationAnalysis], error)
	Prune() int
}

type analysisState int

const (
	analysisRunning analysisState = iota + 1
	analysisDone
)

type communicationService struct {
	mu sync.Mutex
	// analyses tracks recordings that have been claimed for analysis.
	analyses map[uuid.UUID]analysisState
	pipeline *Pipeline
	prompts  *PromptBuilder
	recorder Recorder
	rng      RandomSource
	genCfg   GenerationConfig
}

func NewCommunicationService(pipeline *Pipeline, recorder Recorder, rng RandomSource, genCfg GenerationConfig) CommunicationService {
	return &communicationService{
		analyses: make(map[uuid.UUID]analysisState),
		pipeline: pipeline,
		prompts:  NewPromptBuilder(),
		recorder: recorder,
		rng:      rng,
		genCfg:   genCfg,
	}
}

func (s *communicationService) Exercises(exerciseType, difficulty string) []models.Exercise {
	out := make([]models.Exercise, 0, len(SampleExercises))
	for _, ex := range SampleExercises {
		if exerciseType != "" && ex.Type != exerciseType {
			continue
		}
		if difficulty != "" && ex.Difficulty != difficulty {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func findExercise(id string) (models.Exercise, bool) {
	for _, ex := range SampleExercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

func (s *communicationService) StartRecording(key string, req models.StartRecordingRequest) (*models.RecordingSession, error) {
	exercise, ok := findExercise(req.ExerciseID)
	if !ok {
		return nil, fmt.Errorf("exercise %q: %w", req.ExerciseID, ErrNotFound)
	}
	if err := CheckPermission(req.Permission); err != nil {
		return nil, err
	}

	limit := time.Duration(exercise.Duration) * time.Second
	return s.recorder.Open(BusyKey(models.PanelCommunication, key), models.RecordingAudio, limit, exercise.ID)
}

func (s *communicationService) AppendChunk(id uuid.UUID, data []byte) (*models.RecordingSession, error) {
	current, err := s.recorder.Get(id)
	if err != nil {
		return nil, err
	}
	if current.ExerciseID == "" {
		return nil, fmt.Errorf("exercise recording %s: %w", id, ErrNotFound)
	}
	return s.recorder.Append(id, data)
}

func (s *communicationService) StopRecording(ctx context.Context, key string, id uuid.UUID, transcript string) (*models.GenerationResult[models.CommunicationAnalysis], error) {
	current, err := s.recorder.Get(id)
	if err != nil {
		return nil, err
	}
	if current.ExerciseID == "" {
		return nil, fmt.Errorf("exercise recording %s: %w", id, ErrNotFound)
	}

	s.mu.Lock()
	switch s.analyses[id] {
	case analysisDone:
		s.mu.Unlock()
		return nil, newValidationError("Recording already analyzed")
	case analysisRunning:
		s.mu.Unlock()
		return nil, fmt.Errorf("recording %s analysis: %w", id, ErrBusy)
	}
	s.analyses[id] = analysisRunning
	s.mu.Unlock()

	result, err := s.analyze(ctx, key, id, transcript)

	s.mu.Lock()
	if err != nil {
		delete(s.analyses, id)
	} else {
		s.analyses[id] = analysisDone
	}
	s.mu.Unlock()

	return result, err
}

func (s *communicationService) analyze(ctx context.Context, key string, id uuid.UUID, transcript string) (*models.GenerationResult[models.CommunicationAnalysis], error) {
	session, err := s.recorder.Close(id)
	if err != nil {
		return nil, err
	}

	exercise, _ := findExercise(session.ExerciseID)
	spoken := 0
	if session.StoppedAt != nil {
		spoken = int(session.StoppedAt.Sub(session.StartedAt) / time.Second)
	}
	if limit := exercise.Duration; spoken > limit {
		spoken = limit
	}

	result, err := Run(ctx, s.pipeline, GenerationRequest[models.CommunicationAnalysis]{
		Panel: models.PanelCommunication,
		Key:   key,
		Prompt: s.prompts.BuildCommunicationPrompt(CommunicationPromptInput{
			ExerciseTitle: exercise.Title,
			ExerciseType:  exercise.Type,
			Content:       exercise.Content,
			Transcript:    transcript,
			DurationSecs:  spoken,
		}),
		Config: s.genCfg,
		Fallback: func(error) *models.CommunicationAnalysis {
			return CommunicationAnalysisFallback(s.rng)
		},
		LiveMessage:     "Analysis complete!",
		FallbackMessage: "Analysis complete with sample feedback!",
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Prune drops analysis markers for recordings the recorder has forgotten.
func (s *communicationService) Prune() int {
	s.mu.Lock()
	ids := make([]uuid.UUID, 0, len(s.analyses))
	for id, state := range s.analyses {
		if state == analysisDone {
			ids = append(ids, id)
		}
	}
	s.mu.Unlock()

	pruned := 0
	for _, id := range ids {
		if _, err := s.recorder.Get(id); !errors.Is(err, ErrNotFound) {
			continue
		}
		s.mu.Lock()
		delete(s.analyses, id)
		s.mu.Unlock()
		pruned++
	}
	return pruned
}

// CommunicationAnalysisFallback builds placeholder speech feedback.
func CommunicationAnalysisFallback(rng RandomSource) *models.CommunicationAnalysis {
	return &models.CommunicationAnalysis{
		OverallScore:  float64(between(rng, 75, 25)),
		Pronunciation: float64(between(rng, 80, 20)),
		Fluency:       float64(between(rng, 70, 30)),
		Clarity:       float64(between(rng, 75, 25)),
		Pace:          float64(between(rng, 80, 20)),
		Confidence:    float64(between(rng, 70, 30)),
		Vocabulary:    float64(between(rng, 75, 25)),
		Grammar:       float64(between(rng, 80, 20)),
		FillerWords:   between(rng, 5, 15),
		PauseAnalysis: models.PauseAnalysis{
			TotalPauses:        between(rng, 5, 10),
			AveragePauseLength: 1 + rng.Float64()*2,
			AppropriatePauses:  between(rng, 7, 8),
		},
		Strengths: []string{
			"Clear pronunciation of technical terms",
			"Good pace and rhythm",
			"Confident delivery",
			"Appropriate use of pauses",
		},
		Improvements: []string{
			"Reduce filler words (um, uh)",
			"Improve sentence structure",
			"Work on voice projection",
			"Practice smoother transitions",
		},
		Recommendations: []string{
			"Practice reading technical documentation aloud",
			"Record yourself daily for 5 minutes",
			"Work on breathing techniques",
			"Join a public speaking group",
		},
		DetailedFeedback: "Your overall communication shows strong technical knowledge with clear articulation. Focus on reducing hesitations and maintaining consistent energy throughout your speech. Your pronunciation of technical terms is excellent, which is crucial for technical interviews.",
	}
}
