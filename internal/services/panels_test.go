package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/repositories"
)

var testGenCfg = GenerationConfig{Temperature: 0.7, MaxOutputTokens: 2048}

func TestCodeAnalyzerFallbackOnNetworkFailure(t *testing.T) {
	code := strings.TrimSuffix(strings.Repeat("fmt.Println(x)\n", 20), "\n")
	require.Len(t, strings.Split(code, "\n"), 20)

	gemini := &fakeGemini{err: fmt.Errorf("%w: dial tcp: connection refused", ErrNetwork)}
	svc := NewCodeAnalyzerService(NewPipeline(gemini, nil, nil), NewRandomSource(1), testGenCfg)

	result, err := svc.Analyze(context.Background(), "", code)
	require.NoError(t, err)

	assert.True(t, result.IsFallback())
	assert.Equal(t, "Code analysis completed with mock data!", result.Message)
	assert.Equal(t, 20, result.Data.Metrics.LinesOfCode)
	assert.GreaterOrEqual(t, result.Data.Complexity, 30.0)
	assert.Less(t, result.Data.Complexity, 70.0)
	assert.Contains(t, gemini.lastPrompt(), code)
}

func TestCodeAnalysisFallbackBounds(t *testing.T) {
	low := CodeAnalysisFallback("x", fixedRand{n: 0})
	assert.Equal(t, 30.0, low.Complexity)
	assert.Equal(t, 60.0, low.Maintainability)
	assert.Equal(t, 70.0, low.Performance)
	assert.Equal(t, 50.0, low.Security)
	assert.Equal(t, 1, low.Metrics.LinesOfCode)

	high := CodeAnalysisFallback("x", fixedRand{n: 1 << 20})
	assert.Equal(t, 69.0, high.Complexity)
	assert.Equal(t, 89.0, high.Maintainability)
	assert.Equal(t, 94.0, high.Performance)
	assert.Equal(t, 84.0, high.Security)

	rng := NewRandomSource(42)
	for i := 0; i < 500; i++ {
		got := CodeAnalysisFallback("x", rng)
		require.GreaterOrEqual(t, got.Complexity, 30.0)
		require.Less(t, got.Complexity, 70.0)
		require.Less(t, got.Metrics.DuplicatedLines, 5)
	}
}

func TestCodeAnalyzerRejectsBlankInput(t *testing.T) {
	gemini := &fakeGemini{text: liveCodeJSON}
	svc := NewCodeAnalyzerService(NewPipeline(gemini, nil, nil), NewRandomSource(1), testGenCfg)

	_, err := svc.Analyze(context.Background(), "", "  \n\t")
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Please enter some code to analyze")
	assert.Zero(t, gemini.calls.Load())
}

func TestQuestionGeneratorLiveResult(t *testing.T) {
	set := models.QuestionSet{
		Title:       "Interview Questions for Software Engineer",
		Description: "Questions",
		TotalTime:   60,
		Difficulty:  "medium",
	}
	for i := 1; i <= 10; i++ {
		set.Questions = append(set.Questions, models.Question{
			ID:         fmt.Sprint(i),
			Question:   fmt.Sprintf("Question %d?", i),
			Type:       "technical",
			Difficulty: "medium",
			Category:   "General",
			Tags:       []string{"go"},
		})
	}
	body, err := json.Marshal(set)
	require.NoError(t, err)

	gemini := &fakeGemini{text: "```json\n" + string(body) + "\n```"}
	knowledge := &fakeKnowledge{context: "--- Context 1 (Score: 0.90) ---\nAsk about concurrency."}
	svc := NewQuestionGeneratorService(NewPipeline(gemini, nil, nil), knowledge, testGenCfg)

	result, err := svc.Generate(context.Background(), "", models.GenerateQuestionsRequest{
		Role:       "Software Engineer",
		Experience: "Mid Level (3-5 years)",
		Count:      10,
	})
	require.NoError(t, err)

	assert.Equal(t, models.SourceLive, result.Source)
	assert.Equal(t, "Interview questions generated successfully!", result.Message)
	assert.Len(t, result.Data.Questions, 10)
	assert.Equal(t, "Interview Questions for Software Engineer", result.Data.Title)

	prompt := gemini.lastPrompt()
	assert.Contains(t, prompt, "Generate 10 interview questions for a Software Engineer position with Mid Level (3-5 years) experience level.")
	assert.Contains(t, prompt, "Question types to include: technical, behavioral")
	assert.Contains(t, prompt, "Ask about concurrency.")
	assert.Equal(t, []string{"Interview questions for Software Engineer, Mid Level (3-5 years)"}, knowledge.queries)
}

func TestQuestionGeneratorFallback(t *testing.T) {
	svc := NewQuestionGeneratorService(NewPipeline(&fakeGemini{text: "no json"}, nil, nil), nil, testGenCfg)

	result, err := svc.Generate(context.Background(), "", models.GenerateQuestionsRequest{
		Role:       "Backend Developer",
		Experience: "Senior Level (6-10 years)",
		Difficulty: "hard",
		TimeLimit:  45,
	})
	require.NoError(t, err)

	assert.True(t, result.IsFallback())
	assert.Equal(t, "Sample interview questions generated!", result.Message)
	assert.Equal(t, "Interview Questions for Backend Developer", result.Data.Title)
	assert.Equal(t, "Comprehensive interview questions tailored for Senior Level (6-10 years) Backend Developer", result.Data.Description)
	assert.Equal(t, 45, result.Data.TotalTime)
	assert.Equal(t, "hard", result.Data.Difficulty)
	assert.Len(t, result.Data.Questions, 3)
}

func TestQuestionGeneratorValidation(t *testing.T) {
	gemini := &fakeGemini{}
	svc := NewQuestionGeneratorService(NewPipeline(gemini, nil, nil), nil, testGenCfg)

	tests := []struct {
		name string
		req  models.GenerateQuestionsRequest
	}{
		{"missing role", models.GenerateQuestionsRequest{Experience: "Executive Level"}},
		{"missing experience", models.GenerateQuestionsRequest{Role: "QA Engineer"}},
		{"unknown type", models.GenerateQuestionsRequest{Role: "QA Engineer", Experience: "Executive Level", Types: []string{"trivia"}}},
		{"too many", models.GenerateQuestionsRequest{Role: "QA Engineer", Experience: "Executive Level", Count: 500}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), "", tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Zero(t, gemini.calls.Load())
}

func TestChatSendLiveReply(t *testing.T) {
	gemini := &fakeGemini{text: "Closures capture variables from their enclosing scope."}
	temp := float32(0.2)
	svc := NewChatService(NewPipeline(gemini, nil, nil), fixedRand{n: 1, f: 0.5}, testGenCfg)

	result, err := svc.Send(context.Background(), "", models.ChatRequest{
		Message:     "What is a closure?",
		Personality: "coder",
		Language:    "fr",
		Temperature: &temp,
	})
	require.NoError(t, err)

	reply := result.Data
	assert.Equal(t, models.SourceLive, result.Source)
	assert.Equal(t, "Response generated", result.Message)
	assert.Equal(t, "Closures capture variables from their enclosing scope.", reply.Text)
	assert.True(t, reply.IsBot)
	assert.Equal(t, "coder", reply.Category)
	assert.InDelta(t, 0.85, reply.Confidence, 1e-9)
	assert.Equal(t, len(reply.Text)/4, reply.Tokens)
	assert.Equal(t, chatSuggestions[:3], reply.Suggestions)

	assert.Equal(t,
		"You are an expert programmer and coding mentor.\n\nUser: What is a closure?\n\nRespond in French.",
		gemini.lastPrompt())
	assert.Equal(t, GenerationConfig{Temperature: 0.2, MaxOutputTokens: 2048}, gemini.configs[0])
}

func TestChatSendEmptyModelText(t *testing.T) {
	svc := NewChatService(NewPipeline(&fakeGemini{text: ""}, nil, nil), fixedRand{}, testGenCfg)

	result, err := svc.Send(context.Background(), "", models.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, result.Source)
	assert.Equal(t, emptyReplyText, result.Data.Text)
	assert.Equal(t, "assistant", result.Data.Category)
}

func TestChatSendNetworkFailure(t *testing.T) {
	svc := NewChatService(NewPipeline(&fakeGemini{err: ErrNetwork}, nil, nil), fixedRand{}, testGenCfg)

	result, err := svc.Send(context.Background(), "", models.ChatRequest{Message: "hi"})
	require.NoError(t, err)
	assert.True(t, result.IsFallback())
	assert.Equal(t, "Failed to generate response", result.Message)
	assert.Equal(t, errorReplyText, result.Data.Text)
	assert.Equal(t, "error", result.Data.Category)
	assert.Zero(t, result.Data.Confidence)
}

func TestChatSendValidation(t *testing.T) {
	svc := NewChatService(NewPipeline(&fakeGemini{}, nil, nil), fixedRand{}, testGenCfg)

	for name, req := range map[string]models.ChatRequest{
		"blank":       {Message: "   "},
		"personality": {Message: "hi", Personality: "pirate"},
		"language":    {Message: "hi", Language: "tlh"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Send(context.Background(), "", req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestChatSuggestionsDoNotAliasCatalog(t *testing.T) {
	svc := NewChatService(NewPipeline(&fakeGemini{text: "ok"}, nil, nil), fixedRand{n: 2}, testGenCfg)

	result, err := svc.Send(context.Background(), "", models.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	result.Data.Suggestions[0] = "changed"
	assert.Equal(t, "Tell me more about this", chatSuggestions[0])
}

func TestResumeAnalyzerUsesStoredDocument(t *testing.T) {
	docs := repositories.NewMemoryDocumentRepository()
	doc := &models.Document{
		ID:            uuid.New(),
		Filename:      "resume.txt",
		FileType:      "resume",
		ExtractedText: "Jane Roe\nSenior Go Engineer\nKubernetes, gRPC",
	}
	require.NoError(t, docs.Create(doc))

	gemini := &fakeGemini{err: ErrNetwork}
	svc := NewResumeAnalyzerService(NewPipeline(gemini, nil, nil), docs, testGenCfg)

	result, err := svc.Analyze(context.Background(), "", "", &doc.ID)
	require.NoError(t, err)

	assert.True(t, result.IsFallback())
	assert.Equal(t, "Resume analysis completed with sample data!", result.Message)
	assert.Equal(t, ResumeAnalysisFallback(), result.Data)
	assert.Contains(t, gemini.lastPrompt(), "Senior Go Engineer")
}

func TestResumeAnalyzerErrors(t *testing.T) {
	docs := repositories.NewMemoryDocumentRepository()
	svc := NewResumeAnalyzerService(NewPipeline(&fakeGemini{}, nil, nil), docs, testGenCfg)

	missing := uuid.New()
	_, err := svc.Analyze(context.Background(), "", "", &missing)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Analyze(context.Background(), "", " ", nil)
	assert.ErrorIs(t, err, ErrValidation)
}
