package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

var InterviewTypes = []Option{
	{ID: "technical", Label: "Technical Interview", Color: "blue"},
	{ID: "behavioral", Label: "Behavioral Interview", Color: "green"},
	{ID: "mixed", Label: "Mixed Interview", Color: "purple"},
}

var Companies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta",
	"Netflix", "Tesla", "Spotify", "Airbnb", "Uber",
}

var SampleInterviewQuestions = []models.InterviewQuestion{
	{
		ID:         "1",
		Question:   "Tell me about yourself and your background in software development.",
		Type:       "behavioral",
		Difficulty: "easy",
		Category:   "Introduction",
		TimeLimit:  120,
		Tips: []string{
			"Keep it concise and relevant to the role",
			"Highlight your key achievements",
			"Connect your experience to the job requirements",
		},
	},
	{
		ID:         "2",
		Question:   "Explain the difference between REST and GraphQL APIs.",
		Type:       "technical",
		Difficulty: "medium",
		Category:   "APIs",
		TimeLimit:  180,
		FollowUpQuestions: []string{
			"When would you choose GraphQL over REST?",
			"What are the performance implications of each?",
		},
		Tips: []string{
			"Provide clear definitions",
			"Give practical examples",
			"Discuss pros and cons of each",
		},
	},
	{
		ID:         "3",
		Question:   "Describe a challenging project you worked on and how you overcame the difficulties.",
		Type:       "behavioral",
		Difficulty: "medium",
		Category:   "Problem Solving",
		TimeLimit:  240,
		Tips: []string{
			"Use the STAR method (Situation, Task, Action, Result)",
			"Focus on your specific contributions",
			"Highlight lessons learned",
		},
	},
}

const defaultInterviewDuration = 30

type MockInterviewService interface {
	Start(key string, req models.StartInterviewRequest) (*models.InterviewSession, error)
	Get(id uuid.UUID) (*models.InterviewSession, error)
	Next(id uuid.UUID) (*models.InterviewSession, error)
	AppendRecording(id uuid.UUID, data []byte) (*models.RecordingSession, error)
	End(ctx context.Context, key string, id uuid.UUID, transcript string) (*models.GenerationResult[models.InterviewAnalysis], error)
	Prune(retention time.Duration) int
}

type interview struct {
	session   models.InterviewSession
	countdown *Countdown
	touched   time.Time
}

type mockInterviewService struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*interview
	pipeline  *Pipeline
	prompts   *PromptBuilder
	recorder  Recorder
	knowledge KnowledgeBase
	rng       RandomSource
	genCfg    GenerationConfig
	now       func() time.Time
}

func NewMockInterviewService(
	pipeline *Pipeline,
	recorder Recorder,
	knowledge KnowledgeBase,
	rng RandomSource,
	genCfg GenerationConfig,
	now func() time.Time,
) MockInterviewService {
	if now == nil {
		now = time.Now
	}
	if knowledge == nil {
		knowledge = noKnowledge{}
	}
	return &mockInterviewService{
		sessions:  make(map[uuid.UUID]*interview),
		pipeline:  pipeline,
		prompts:   NewPromptBuilder(),
		recorder:  recorder,
		knowledge: knowledge,
		rng:       rng,
		genCfg:    genCfg,
		now:       now,
	}
}

// interviewQuestions picks roughly one sample question per ten minutes.
func interviewQuestions(duration int) []models.InterviewQuestion {
	n := int(math.Ceil(float64(duration) / 10))
	if n > len(SampleInterviewQuestions) {
		n = len(SampleInterviewQuestions)
	}
	if n < 1 {
		n = 1
	}
	return append([]models.InterviewQuestion(nil), SampleInterviewQuestions[:n]...)
}

func (s *mockInterviewService) Start(key string, req models.StartInterviewRequest) (*models.InterviewSession, error) {
	if req.Role == "" || req.Company == "" {
		return nil, newValidationError("Please select job role and company")
	}
	if err := resultValidator.Struct(req); err != nil {
		return nil, newValidationError(fmt.Sprintf("Invalid interview settings: %v", err))
	}
	if err := CheckPermission(req.Permission); err != nil {
		return nil, err
	}

	if req.Type == "" {
		req.Type = "mixed"
	}
	if req.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}
	if req.Duration == 0 {
		req.Duration = defaultInterviewDuration
	}

	limit := time.Duration(req.Duration) * time.Minute
	recording, err := s.recorder.Open(BusyKey(models.PanelMockInterview, key), models.RecordingVideo, limit, "")
	if err != nil {
		return nil, err
	}

	countdown := NewCountdown(limit, s.now)
	iv := &interview{
		session: models.InterviewSession{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("%s Interview", req.Role),
			Role:        req.Role,
			Company:     req.Company,
			Type:        req.Type,
			Duration:    req.Duration,
			Difficulty:  req.Difficulty,
			Questions:   interviewQuestions(req.Duration),
			Status:      models.InterviewInProgress,
			RecordingID: &recording.ID,
			StartedAt:   s.now(),
		},
		countdown: countdown,
		touched:   s.now(),
	}

	s.mu.Lock()
	s.sessions[iv.session.ID] = iv
	s.mu.Unlock()

	return s.view(iv), nil
}

// lookup must be called with s.mu held.
func (s *mockInterviewService) lookup(id uuid.UUID) (*interview, error) {
	iv, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}
	if iv.session.Status == models.InterviewInProgress && iv.countdown.Expired() {
		s.finish(iv)
	}
	iv.touched = s.now()
	return iv, nil
}

func (s *mockInterviewService) finish(iv *interview) {
	iv.countdown.Stop()
	iv.session.Status = models.InterviewFinished
	if iv.session.RecordingID != nil {
		if _, err := s.recorder.Close(*iv.session.RecordingID); err != nil {
			log.Printf("⚠️  Failed to stop interview recording: %v", err)
		}
	}
}

func (s *mockInterviewService) Get(id uuid.UUID) (*models.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.view(iv), nil
}

func (s *mockInterviewService) Next(id uuid.UUID) (*models.InterviewSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if iv.session.Status != models.InterviewInProgress {
		return s.view(iv), nil
	}

	if iv.session.CurrentIndex < len(iv.session.Questions)-1 {
		iv.session.CurrentIndex++
	} else {
		s.finish(iv)
	}
	return s.view(iv), nil
}

func (s *mockInterviewService) AppendRecording(id uuid.UUID, data []byte) (*models.RecordingSession, error) {
	s.mu.Lock()
	iv, err := s.lookup(id)
	var recordingID *uuid.UUID
	if err == nil {
		recordingID = iv.session.RecordingID
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if recordingID == nil {
		return nil, newValidationError("Interview has no recording")
	}
	return s.recorder.Append(*recordingID, data)
}

func (s *mockInterviewService) End(ctx context.Context, key string, id uuid.UUID, transcript string) (*models.GenerationResult[models.InterviewAnalysis], error) {
	s.mu.Lock()
	iv, err := s.lookup(id)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	switch iv.session.Status {
	case models.InterviewAnalyzed:
		s.mu.Unlock()
		return nil, newValidationError("Interview already analyzed")
	case models.InterviewAnalyzing:
		s.mu.Unlock()
		return nil, fmt.Errorf("interview %s analysis: %w", id, ErrBusy)
	case models.InterviewInProgress:
		s.finish(iv)
	}
	// At most one End per interview reaches the model.
	iv.session.Status = models.InterviewAnalyzing
	session := iv.session
	s.mu.Unlock()

	questions := make([]string, len(session.Questions))
	for i, q := range session.Questions {
		questions[i] = q.Question
	}

	reference := s.knowledge.Retrieve(ctx,
		fmt.Sprintf("%s interview at %s", session.Role, session.Company),
		[]string{DocTypeInterviewGuide, DocTypeRoleProfile})

	result, err := Run(ctx, s.pipeline, GenerationRequest[models.InterviewAnalysis]{
		Panel: models.PanelMockInterview,
		Key:   key,
		Prompt: s.prompts.BuildMockInterviewPrompt(MockInterviewPromptInput{
			Role:       session.Role,
			Company:    session.Company,
			Type:       session.Type,
			Difficulty: session.Difficulty,
			Questions:  questions,
			Transcript: transcript,
			Context:    reference,
		}),
		Config: s.genCfg,
		Fallback: func(error) *models.InterviewAnalysis {
			return InterviewAnalysisFallback(session.Questions, s.rng)
		},
		LiveMessage:     "Interview analysis completed!",
		FallbackMessage: "Interview analysis completed with sample feedback!",
	})

	s.mu.Lock()
	iv.touched = s.now()
	if err != nil {
		iv.session.Status = models.InterviewFinished
		s.mu.Unlock()
		return nil, err
	}
	iv.session.Status = models.InterviewAnalyzed
	s.mu.Unlock()

	return result, nil
}

// Prune finishes expired interviews and forgets finished or analyzed ones
// untouched for longer than retention. It returns the number forgotten.
func (s *mockInterviewService) Prune(retention time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	pruned := 0
	for id, iv := range s.sessions {
		if iv.session.Status == models.InterviewInProgress && iv.countdown.Expired() {
			s.finish(iv)
			iv.touched = now
		}
		switch iv.session.Status {
		case models.InterviewFinished, models.InterviewAnalyzed:
			if now.Sub(iv.touched) > retention {
				delete(s.sessions, id)
				pruned++
			}
		}
	}
	return pruned
}

func (s *mockInterviewService) view(iv *interview) *models.InterviewSession {
	out := iv.session
	out.Questions = append([]models.InterviewQuestion(nil), iv.session.Questions...)
	out.RemainingSeconds = iv.countdown.RemainingSeconds()
	return &out
}

// InterviewAnalysisFallback builds placeholder feedback with one entry per
// question asked.
func InterviewAnalysisFallback(questions []models.InterviewQuestion, rng RandomSource) *models.InterviewAnalysis {
	feedback := make([]models.QuestionFeedback, 0, len(questions))
	for _, q := range questions {
		feedback = append(feedback, models.QuestionFeedback{
			QuestionID:  q.ID,
			Score:       float64(between(rng, 70, 30)),
			Feedback:    "Good response with relevant examples. Could be more concise.",
			Suggestions: []string{"Add more specific metrics", "Structure answer better"},
		})
	}

	return &models.InterviewAnalysis{
		OverallScore:        float64(between(rng, 70, 30)),
		Confidence:          float64(between(rng, 75, 25)),
		Clarity:             float64(between(rng, 80, 20)),
		TechnicalAccuracy:   float64(between(rng, 65, 35)),
		CommunicationSkills: float64(between(rng, 80, 20)),
		BodyLanguage:        float64(between(rng, 75, 25)),
		ResponseTime:        float64(between(rng, 70, 30)),
		Strengths: []string{
			"Clear communication",
			"Good technical knowledge",
			"Confident presentation",
			"Structured thinking",
		},
		Improvements: []string{
			"Provide more specific examples",
			"Improve eye contact",
			"Reduce filler words",
			"Better time management",
		},
		DetailedFeedback: feedback,
		Recommendations: []string{
			"Practice more behavioral questions",
			"Work on maintaining eye contact",
			"Prepare more specific examples",
			"Practice time management",
		},
	}
}
