package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"nextgen/interview-coach/internal/models"
)

var Personalities = []models.Personality{
	{
		ID:          "assistant",
		Name:        "General Assistant",
		Description: "Helpful and knowledgeable assistant",
		Avatar:      "🤖",
		Prompt:      "You are a helpful and knowledgeable AI assistant.",
		Color:       "blue",
	},
	{
		ID:          "interviewer",
		Name:        "Interview Expert",
		Description: "Specialized in interview questions and preparation",
		Avatar:      "👔",
		Prompt:      "You are an expert interviewer and career coach specializing in technical interviews.",
		Color:       "purple",
	},
	{
		ID:          "coder",
		Name:        "Code Mentor",
		Description: "Expert in programming and software development",
		Avatar:      "💻",
		Prompt:      "You are an expert programmer and coding mentor.",
		Color:       "green",
	},
	{
		ID:          "analyst",
		Name:        "Data Analyst",
		Description: "Specialized in data analysis and insights",
		Avatar:      "📊",
		Prompt:      "You are a data analyst expert specializing in insights and analytics.",
		Color:       "orange",
	},
}

var Languages = []models.Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹"},
}

var QuickActions = []models.QuickAction{
	{ID: "explain", Label: "Explain", Prompt: "Please explain this in detail:"},
	{ID: "summarize", Label: "Summarize", Prompt: "Please summarize:"},
	{ID: "code", Label: "Code Review", Prompt: "Please review this code:"},
	{ID: "improve", Label: "Improve", Prompt: "How can I improve:"},
	{ID: "debug", Label: "Debug", Prompt: "Help me debug this:"},
	{ID: "optimize", Label: "Optimize", Prompt: "How to optimize:"},
}

var chatSuggestions = []string{
	"Tell me more about this",
	"Can you provide an example?",
	"How does this work?",
	"What are the alternatives?",
}

const (
	emptyReplyText = "I couldn't generate a response. Please try again."
	errorReplyText = "I encountered an error while processing your request. Please try again."
)

type ChatService interface {
	Send(ctx context.Context, key string, req models.ChatRequest) (*models.GenerationResult[models.ChatMessage], error)
}

type chatService struct {
	pipeline *Pipeline
	prompts  *PromptBuilder
	rng      RandomSource
	genCfg   GenerationConfig
	now      func() time.Time
}

func NewChatService(pipeline *Pipeline, rng RandomSource, genCfg GenerationConfig) ChatService {
	return &chatService{
		pipeline: pipeline,
		prompts:  NewPromptBuilder(),
		rng:      rng,
		genCfg:   genCfg,
		now:      time.Now,
	}
}

func findPersonality(id string) (models.Personality, bool) {
	if id == "" {
		return Personalities[0], true
	}
	for _, p := range Personalities {
		if p.ID == id {
			return p, true
		}
	}
	return models.Personality{}, false
}

func findLanguage(code string) (models.Language, bool) {
	if code == "" {
		return Languages[0], true
	}
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return models.Language{}, false
}

func (s *chatService) Send(ctx context.Context, key string, req models.ChatRequest) (*models.GenerationResult[models.ChatMessage], error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, newValidationError("Please enter a message")
	}
	if err := resultValidator.Struct(req); err != nil {
		return nil, newValidationError("Invalid chat settings")
	}

	personality, ok := findPersonality(req.Personality)
	if !ok {
		return nil, newValidationError("Unknown personality: " + req.Personality)
	}
	language, ok := findLanguage(req.Language)
	if !ok {
		return nil, newValidationError("Unsupported language: " + req.Language)
	}

	genCfg := s.genCfg
	if req.Temperature != nil {
		genCfg.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		genCfg.MaxOutputTokens = *req.MaxTokens
	}

	started := s.now()

	return Run(ctx, s.pipeline, GenerationRequest[models.ChatMessage]{
		Panel:  models.PanelChat,
		Key:    key,
		Prompt: s.prompts.BuildChatPrompt(personality.Prompt, req.Message, language.Name),
		Config: genCfg,
		Decode: func(raw string) (*models.ChatMessage, error) {
			return s.reply(raw, personality.ID, started), nil
		},
		Fallback: func(error) *models.ChatMessage {
			return ChatErrorReply(s.now())
		},
		LiveMessage:     "Response generated",
		FallbackMessage: "Failed to generate response",
	})
}

func (s *chatService) reply(raw, category string, started time.Time) *models.ChatMessage {
	text := raw
	if text == "" {
		text = emptyReplyText
	}

	now := s.now()
	return &models.ChatMessage{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Text:           text,
		IsBot:          true,
		Timestamp:      now,
		Confidence:     0.7 + s.rng.Float64()*0.3,
		ProcessingTime: now.Sub(started).Milliseconds(),
		Tokens:         len(text) / 4,
		Category:       category,
		Suggestions:    append([]string(nil), chatSuggestions[:2+s.rng.IntN(3)]...),
	}
}

// ChatErrorReply is the bot turn shown when the model could not be reached.
func ChatErrorReply(at time.Time) *models.ChatMessage {
	return &models.ChatMessage{
		ID:         strconv.FormatInt(at.UnixMilli(), 10),
		Text:       errorReplyText,
		IsBot:      true,
		Timestamp:  at,
		Confidence: 0,
		Category:   "error",
	}
}
