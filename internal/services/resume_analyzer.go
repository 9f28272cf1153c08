package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
	"nextgen/interview-coach/internal/repositories"
)

type ResumeAnalyzerService interface {
	// Analyze runs the analyzer over resumeText, or over the text extracted
	// from an uploaded document when documentID is set.
	Analyze(ctx context.Context, key, resumeText string, documentID *uuid.UUID) (*models.GenerationResult[models.ResumeAnalysis], error)
}

type resumeAnalyzerService struct {
	pipeline *Pipeline
	prompts  *PromptBuilder
	docRepo  repositories.DocumentRepository
	genCfg   GenerationConfig
}

func NewResumeAnalyzerService(pipeline *Pipeline, docRepo repositories.DocumentRepository, genCfg GenerationConfig) ResumeAnalyzerService {
	return &resumeAnalyzerService{
		pipeline: pipeline,
		prompts:  NewPromptBuilder(),
		docRepo:  docRepo,
		genCfg:   genCfg,
	}
}

func (s *resumeAnalyzerService) Analyze(ctx context.Context, key, resumeText string, documentID *uuid.UUID) (*models.GenerationResult[models.ResumeAnalysis], error) {
	if documentID != nil {
		doc, err := s.docRepo.FindByID(*documentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load resume: %w", err)
		}
		resumeText = doc.ExtractedText
	}

	if strings.TrimSpace(resumeText) == "" {
		return nil, newValidationError("Please provide resume content to analyze")
	}

	return Run(ctx, s.pipeline, GenerationRequest[models.ResumeAnalysis]{
		Panel:  models.PanelResume,
		Key:    key,
		Prompt: s.prompts.BuildResumeAnalysisPrompt(resumeText),
		Config: s.genCfg,
		Fallback: func(error) *models.ResumeAnalysis {
			return ResumeAnalysisFallback()
		},
		LiveMessage:     "Resume analysis completed!",
		FallbackMessage: "Resume analysis completed with sample data!",
	})
}

// ResumeAnalysisFallback returns the fixed sample profile.
func ResumeAnalysisFallback() *models.ResumeAnalysis {
	return &models.ResumeAnalysis{
		PersonalInfo: models.PersonalInfo{
			Name:     "John Doe",
			Email:    "john.doe@email.com",
			Phone:    "+1-234-567-8900",
			Location: "San Francisco, CA",
			LinkedIn: "linkedin.com/in/johndoe",
			GitHub:   "github.com/johndoe",
			Website:  "johndoe.dev",
		},
		Summary: models.ResumeSummary{
			OverallScore:    85,
			ExperienceLevel: "Senior",
			PrimarySkills:   []string{"JavaScript", "React", "Node.js", "Python"},
			IndustryFocus:   []string{"Technology", "Software Development"},
			CareerStage:     "Senior Software Engineer",
		},
		Skills: models.ResumeSkills{
			Technical: []models.TechnicalSkill{
				{Name: "JavaScript", Level: 90, Category: "Programming"},
				{Name: "React", Level: 85, Category: "Frontend"},
				{Name: "Node.js", Level: 80, Category: "Backend"},
				{Name: "Python", Level: 75, Category: "Programming"},
				{Name: "AWS", Level: 70, Category: "Cloud"},
			},
			Soft: []models.SoftSkill{
				{Name: "Leadership", Level: 85},
				{Name: "Communication", Level: 90},
				{Name: "Problem Solving", Level: 95},
				{Name: "Team Collaboration", Level: 88},
			},
			Certifications: []models.Certification{
				{Name: "AWS Solutions Architect", Issuer: "Amazon", Year: "2023", Verified: true},
				{Name: "React Developer", Issuer: "Meta", Year: "2022", Verified: true},
			},
		},
		Experience: models.ResumeExperience{
			TotalYears: 6,
			Positions: []models.Position{
				{
					Title:            "Senior Software Engineer",
					Company:          "Tech Corp",
					Duration:         "2021 - Present",
					Responsibilities: []string{"Lead development team", "Architecture decisions", "Code reviews"},
					Achievements:     []string{"Improved performance by 40%", "Led team of 5 developers"},
					Technologies:     []string{"React", "Node.js", "AWS", "MongoDB"},
				},
			},
		},
		Education: models.ResumeEducation{
			Degrees: []models.Degree{
				{
					Degree:      "Bachelor of Science",
					Field:       "Computer Science",
					Institution: "Stanford University",
					Year:        "2018",
					GPA:         "3.8",
				},
			},
			RelevantCourses: []string{"Data Structures", "Algorithms", "Software Engineering"},
		},
		Projects: []models.ResumeProject{
			{
				Name:         "E-commerce Platform",
				Description:  "Full-stack e-commerce solution",
				Technologies: []string{"React", "Node.js", "MongoDB"},
				Impact:       "Increased sales by 30%",
				URL:          "github.com/johndoe/ecommerce",
			},
		},
		Strengths:       []string{"Strong technical skills", "Leadership experience", "Problem-solving abilities"},
		Weaknesses:      []string{"Limited mobile development experience", "Could improve DevOps skills"},
		Recommendations: []string{"Consider mobile development courses", "Gain more cloud certifications"},
		InterviewQuestions: models.InterviewQuestions{
			Technical: []string{
				"Explain the virtual DOM in React",
				"How do you handle state management in large applications?",
				"Describe your experience with microservices architecture",
			},
			Behavioral: []string{
				"Tell me about a time you led a difficult project",
				"How do you handle conflicts in your team?",
				"Describe a situation where you had to learn a new technology quickly",
			},
			Situational: []string{
				"How would you approach scaling a web application?",
				"What would you do if you disagreed with a technical decision?",
				"How would you mentor a junior developer?",
			},
			RoleSpecific: []string{
				"How do you ensure code quality in your team?",
				"Describe your approach to system design",
				"How do you stay updated with new technologies?",
			},
		},
		Marketability: models.Marketability{
			SalaryRange:      "$120,000 - $180,000",
			DemandLevel:      "High",
			Competitiveness:  88,
			ImprovementAreas: []string{"Mobile Development", "DevOps", "Machine Learning"},
		},
	}
}
