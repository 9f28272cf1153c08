package services

import (
	"context"
	"strings"

	"nextgen/interview-coach/internal/models"
)

type CodeAnalyzerService interface {
	Analyze(ctx context.Context, key, code string) (*models.GenerationResult[models.CodeAnalysis], error)
}

type codeAnalyzerService struct {
	pipeline *Pipeline
	prompts  *PromptBuilder
	rng      RandomSource
	genCfg   GenerationConfig
}

func NewCodeAnalyzerService(pipeline *Pipeline, rng RandomSource, genCfg GenerationConfig) CodeAnalyzerService {
	return &codeAnalyzerService{
		pipeline: pipeline,
		prompts:  NewPromptBuilder(),
		rng:      rng,
		genCfg:   genCfg,
	}
}

func (s *codeAnalyzerService) Analyze(ctx context.Context, key, code string) (*models.GenerationResult[models.CodeAnalysis], error) {
	if strings.TrimSpace(code) == "" {
		return nil, newValidationError("Please enter some code to analyze")
	}

	return Run(ctx, s.pipeline, GenerationRequest[models.CodeAnalysis]{
		Panel:  models.PanelCode,
		Key:    key,
		Prompt: s.prompts.BuildCodeAnalysisPrompt(code),
		Config: s.genCfg,
		Fallback: func(error) *models.CodeAnalysis {
			return CodeAnalysisFallback(code, s.rng)
		},
		LiveMessage:     "Code analysis completed!",
		FallbackMessage: "Code analysis completed with mock data!",
	})
}

// CodeAnalysisFallback builds a placeholder report. Only linesOfCode is
// derived from the input.
func CodeAnalysisFallback(code string, rng RandomSource) *models.CodeAnalysis {
	return &models.CodeAnalysis{
		Complexity:      float64(between(rng, 30, 40)),
		Maintainability: float64(between(rng, 60, 30)),
		Performance:     float64(between(rng, 70, 25)),
		Security:        float64(between(rng, 50, 35)),
		Issues: []models.CodeIssue{
			{
				Type:     "warning",
				Message:  "Consider using more descriptive variable names",
				Line:     5,
				Severity: 3,
			},
			{
				Type:     "info",
				Message:  "This function could be optimized for better performance",
				Line:     12,
				Severity: 2,
			},
		},
		Suggestions: []string{
			"Add error handling for edge cases",
			"Consider breaking down large functions",
			"Add unit tests for better coverage",
			"Use consistent naming conventions",
		},
		Metrics: models.CodeMetrics{
			LinesOfCode:          len(strings.Split(code, "\n")),
			CyclomaticComplexity: between(rng, 5, 10),
			CognitiveComplexity:  between(rng, 8, 15),
			DuplicatedLines:      rng.IntN(5),
			TestCoverage:         float64(between(rng, 40, 40)),
		},
		Technologies:  []string{"JavaScript", "React", "TypeScript"},
		EstimatedTime: float64(between(rng, 2, 8)),
	}
}
