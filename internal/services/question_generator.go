package services

import (
	"context"
	"fmt"

	"nextgen/interview-coach/internal/models"
)

var JobRoles = []string{
	"Software Engineer",
	"Frontend Developer",
	"Backend Developer",
	"Full Stack Developer",
	"DevOps Engineer",
	"Data Scientist",
	"Product Manager",
	"UI/UX Designer",
	"QA Engineer",
	"System Administrator",
	"Mobile Developer",
	"Machine Learning Engineer",
}

var ExperienceLevels = []string{
	"Entry Level (0-2 years)",
	"Mid Level (3-5 years)",
	"Senior Level (6-10 years)",
	"Lead Level (10+ years)",
	"Executive Level",
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var QuestionTypes = []Option{
	{ID: "technical", Label: "Technical", Color: "blue"},
	{ID: "behavioral", Label: "Behavioral", Color: "green"},
	{ID: "situational", Label: "Situational", Color: "purple"},
	{ID: "cultural", Label: "Cultural Fit", Color: "orange"},
	{ID: "leadership", Label: "Leadership", Color: "red"},
}

var DifficultyLevels = []Option{
	{ID: "easy", Label: "Easy", Color: "green"},
	{ID: "medium", Label: "Medium", Color: "yellow"},
	{ID: "hard", Label: "Hard", Color: "red"},
}

const (
	defaultQuestionCount     = 10
	defaultQuestionTimeLimit = 60
	defaultDifficulty        = "medium"
)

type QuestionGeneratorService interface {
	Generate(ctx context.Context, key string, req models.GenerateQuestionsRequest) (*models.GenerationResult[models.QuestionSet], error)
}

type questionGeneratorService struct {
	pipeline  *Pipeline
	prompts   *PromptBuilder
	knowledge KnowledgeBase
	genCfg    GenerationConfig
}

func NewQuestionGeneratorService(pipeline *Pipeline, knowledge KnowledgeBase, genCfg GenerationConfig) QuestionGeneratorService {
	if knowledge == nil {
		knowledge = noKnowledge{}
	}
	return &questionGeneratorService{
		pipeline:  pipeline,
		prompts:   NewPromptBuilder(),
		knowledge: knowledge,
		genCfg:    genCfg,
	}
}

// withQuestionDefaults fills the form defaults the panel starts with.
func withQuestionDefaults(req models.GenerateQuestionsRequest) models.GenerateQuestionsRequest {
	if len(req.Types) == 0 {
		req.Types = []string{"technical", "behavioral"}
	}
	if req.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}
	if req.Count == 0 {
		req.Count = defaultQuestionCount
	}
	if req.TimeLimit == 0 {
		req.TimeLimit = defaultQuestionTimeLimit
	}
	return req
}

func (s *questionGeneratorService) Generate(ctx context.Context, key string, req models.GenerateQuestionsRequest) (*models.GenerationResult[models.QuestionSet], error) {
	if req.Role == "" || req.Experience == "" {
		return nil, newValidationError("Please select job role and experience level")
	}
	if err := resultValidator.Struct(req); err != nil {
		return nil, newValidationError(fmt.Sprintf("Invalid question settings: %v", err))
	}
	req = withQuestionDefaults(req)

	reference := s.knowledge.Retrieve(ctx,
		fmt.Sprintf("Interview questions for %s, %s", req.Role, req.Experience),
		[]string{DocTypeQuestionBank, DocTypeRoleProfile})

	prompt := s.prompts.BuildQuestionSetPrompt(QuestionPromptInput{
		Role:       req.Role,
		Experience: req.Experience,
		Types:      req.Types,
		Difficulty: req.Difficulty,
		Count:      req.Count,
		TimeLimit:  req.TimeLimit,
		Context:    reference,
	})

	return Run(ctx, s.pipeline, GenerationRequest[models.QuestionSet]{
		Panel:  models.PanelQuestions,
		Key:    key,
		Prompt: prompt,
		Config: s.genCfg,
		Fallback: func(error) *models.QuestionSet {
			return QuestionSetFallback(req)
		},
		LiveMessage:     "Interview questions generated successfully!",
		FallbackMessage: "Sample interview questions generated!",
	})
}

// QuestionSetFallback returns the three sample questions under a title built
// from the form.
func QuestionSetFallback(req models.GenerateQuestionsRequest) *models.QuestionSet {
	return &models.QuestionSet{
		Title:       fmt.Sprintf("Interview Questions for %s", req.Role),
		Description: fmt.Sprintf("Comprehensive interview questions tailored for %s %s", req.Experience, req.Role),
		TotalTime:   req.TimeLimit,
		Difficulty:  req.Difficulty,
		Questions: []models.Question{
			{
				ID:             "1",
				Question:       "Explain the concept of closures in JavaScript and provide a practical example.",
				Type:           "technical",
				Difficulty:     "medium",
				Category:       "JavaScript",
				ExpectedAnswer: "A closure is a function that has access to variables in its outer scope even after the outer function has returned.",
				FollowUpQuestions: []string{
					"How do closures affect memory management?",
					"Can you show an example of a closure causing a memory leak?",
				},
				EvaluationCriteria: []string{
					"Understanding of scope and lexical environment",
					"Ability to provide clear examples",
					"Knowledge of practical applications",
				},
				TimeLimit: 10,
				Tags:      []string{"JavaScript", "Functions", "Scope"},
			},
			{
				ID:             "2",
				Question:       "Tell me about a time when you had to work with a difficult team member.",
				Type:           "behavioral",
				Difficulty:     "medium",
				Category:       "Team Collaboration",
				ExpectedAnswer: "Should demonstrate conflict resolution skills and professional communication.",
				FollowUpQuestions: []string{
					"What would you do differently in that situation?",
					"How did you maintain team productivity?",
				},
				EvaluationCriteria: []string{
					"Communication skills",
					"Conflict resolution ability",
					"Professional maturity",
				},
				TimeLimit: 8,
				Tags:      []string{"Teamwork", "Communication", "Conflict Resolution"},
			},
			{
				ID:             "3",
				Question:       "How would you approach debugging a performance issue in a web application?",
				Type:           "situational",
				Difficulty:     "hard",
				Category:       "Problem Solving",
				ExpectedAnswer: "Systematic approach including profiling, monitoring, and optimization strategies.",
				FollowUpQuestions: []string{
					"What tools would you use for performance monitoring?",
					"How would you prioritize different performance optimizations?",
				},
				EvaluationCriteria: []string{
					"Systematic problem-solving approach",
					"Knowledge of debugging tools",
					"Understanding of performance optimization",
				},
				TimeLimit: 15,
				Tags:      []string{"Performance", "Debugging", "Web Development"},
			},
		},
	}
}
