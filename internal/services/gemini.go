package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"

	"nextgen/interview-coach/internal/config"
)

// GenerationConfig holds the per-call sampling options sent with a prompt.
type GenerationConfig struct {
	Temperature     float32
	MaxOutputTokens int32
}

type GeminiService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

// NewGeminiService builds the model client from cfg. Without an API key it
// returns a generator that fails every call with ErrNetwork.
func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	if cfg.APIKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, all panels will serve fallback results")
		return offlineGemini{}, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:     client,
		modelName:  cfg.Model,
		embedModel: cfg.EmbedModel,
	}, nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements GeminiService. It makes exactly one generateContent
// call and returns the first candidate's text, or "" when the response carries
// none.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	temperature := cfg.Temperature
	genCfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genCfg)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp == nil {
		return "", nil
	}

	log.Printf("📊 Gemini response received")
	return resp.Text(), nil
}

type offlineGemini struct{}

func (offlineGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return nil, fmt.Errorf("%w: no API key configured", ErrNetwork)
}

func (offlineGemini) GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error) {
	return "", fmt.Errorf("%w: no API key configured", ErrNetwork)
}
