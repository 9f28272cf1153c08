package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCodeAnalysisPrompt creates prompt for code analysis
func (pb *PromptBuilder) BuildCodeAnalysisPrompt(code string) string {
	return fmt.Sprintf(`Analyze the following code and provide a detailed analysis in JSON format:

%s

Please provide analysis in this exact JSON structure:
{
  "complexity": number (0-100),
  "maintainability": number (0-100),
  "performance": number (0-100),
  "security": number (0-100),
  "issues": [
    {
      "type": "error|warning|info",
      "message": "description",
      "line": number,
      "severity": number (1-10)
    }
  ],
  "suggestions": ["suggestion1", "suggestion2"],
  "metrics": {
    "linesOfCode": number,
    "cyclomaticComplexity": number,
    "cognitiveComplexity": number,
    "duplicatedLines": number,
    "testCoverage": number
  },
  "technologies": ["tech1", "tech2"],
  "estimatedTime": number (in hours)
}`, code)
}

// BuildResumeAnalysisPrompt creates prompt for resume analysis
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze the following resume and provide a comprehensive analysis in JSON format:

%s

Please provide analysis in this exact JSON structure:
{
  "personalInfo": {
    "name": "string",
    "email": "string",
    "phone": "string",
    "location": "string",
    "linkedin": "string",
    "github": "string",
    "website": "string"
  },
  "summary": {
    "overallScore": number (0-100),
    "experienceLevel": "Junior|Mid|Senior|Lead|Executive",
    "primarySkills": ["skill1", "skill2"],
    "industryFocus": ["industry1", "industry2"],
    "careerStage": "string"
  },
  "skills": {
    "technical": [{"name": "string", "level": number (0-100), "category": "string"}],
    "soft": [{"name": "string", "level": number (0-100)}],
    "certifications": [{"name": "string", "issuer": "string", "year": "string", "verified": boolean}]
  },
  "experience": {
    "totalYears": number,
    "positions": [{
      "title": "string",
      "company": "string",
      "duration": "string",
      "responsibilities": ["string"],
      "achievements": ["string"],
      "technologies": ["string"]
    }]
  },
  "education": {
    "degrees": [{
      "degree": "string",
      "field": "string",
      "institution": "string",
      "year": "string",
      "gpa": "string"
    }],
    "relevantCourses": ["string"]
  },
  "projects": [{
    "name": "string",
    "description": "string",
    "technologies": ["string"],
    "impact": "string",
    "url": "string"
  }],
  "strengths": ["string"],
  "weaknesses": ["string"],
  "recommendations": ["string"],
  "interviewQuestions": {
    "technical": ["string"],
    "behavioral": ["string"],
    "situational": ["string"],
    "roleSpecific": ["string"]
  },
  "marketability": {
    "salaryRange": "string",
    "demandLevel": "High|Medium|Low",
    "competitiveness": number (0-100),
    "improvementAreas": ["string"]
  }
}`, resumeText)
}

// QuestionPromptInput is the form state of the question generator.
type QuestionPromptInput struct {
	Role       string
	Experience string
	Types      []string
	Difficulty string
	Count      int
	TimeLimit  int
	Context    string
}

// BuildQuestionSetPrompt creates prompt for interview question generation
func (pb *PromptBuilder) BuildQuestionSetPrompt(in QuestionPromptInput) string {
	prompt := fmt.Sprintf(`Generate %d interview questions for a %s position with %s experience level.

Question types to include: %s
Difficulty level: %s
Interview duration: %d minutes

Please provide the response in this exact JSON format:
{
  "title": "Interview Questions for %s",
  "description": "Comprehensive interview questions tailored for %s %s",
  "questions": [
    {
      "id": "unique_id",
      "question": "The actual question",
      "type": "technical|behavioral|situational|cultural|leadership",
      "difficulty": "easy|medium|hard",
      "category": "specific category like 'JavaScript', 'Problem Solving', etc.",
      "expectedAnswer": "Brief expected answer or key points",
      "followUpQuestions": ["follow up question 1", "follow up question 2"],
      "evaluationCriteria": ["criteria 1", "criteria 2", "criteria 3"],
      "timeLimit": number_in_minutes,
      "tags": ["tag1", "tag2", "tag3"]
    }
  ],
  "totalTime": %d,
  "difficulty": "%s"
}`,
		in.Count, in.Role, in.Experience,
		strings.Join(in.Types, ", "), in.Difficulty, in.TimeLimit,
		in.Role, in.Experience, in.Role,
		in.TimeLimit, in.Difficulty)

	return appendReference(prompt, in.Context)
}

// BuildChatPrompt creates the chat turn prompt for a persona and language
func (pb *PromptBuilder) BuildChatPrompt(personalityPrompt, message, languageName string) string {
	return fmt.Sprintf("%s\n\nUser: %s\n\nRespond in %s.", personalityPrompt, message, languageName)
}

// MockInterviewPromptInput describes a finished mock interview session.
type MockInterviewPromptInput struct {
	Role       string
	Company    string
	Type       string
	Difficulty string
	Questions  []string
	Transcript string
	Context    string
}

// BuildMockInterviewPrompt creates prompt for mock interview feedback
func (pb *PromptBuilder) BuildMockInterviewPrompt(in MockInterviewPromptInput) string {
	var questions strings.Builder
	for i, q := range in.Questions {
		fmt.Fprintf(&questions, "%d. %s\n", i+1, q)
	}

	transcript := in.Transcript
	if strings.TrimSpace(transcript) == "" {
		transcript = "No transcript available."
	}

	prompt := fmt.Sprintf(`You are an expert interviewer reviewing a %s mock interview for a %s position at %s.
Difficulty: %s

QUESTIONS ASKED:
%s
CANDIDATE TRANSCRIPT:
%s

Evaluate the candidate and return your response in this exact JSON structure:
{
  "overallScore": number (0-100),
  "confidence": number (0-100),
  "clarity": number (0-100),
  "technicalAccuracy": number (0-100),
  "communicationSkills": number (0-100),
  "bodyLanguage": number (0-100),
  "responseTime": number (0-100),
  "strengths": ["string"],
  "improvements": ["string"],
  "detailedFeedback": [
    {
      "questionId": "string",
      "score": number (0-100),
      "feedback": "string",
      "suggestions": ["string"]
    }
  ],
  "recommendations": ["string"]
}`, in.Type, in.Role, in.Company, in.Difficulty, questions.String(), transcript)

	return appendReference(prompt, in.Context)
}

// CommunicationPromptInput describes a finished speaking exercise.
type CommunicationPromptInput struct {
	ExerciseTitle string
	ExerciseType  string
	Content       string
	Transcript    string
	DurationSecs  int
}

// BuildCommunicationPrompt creates prompt for speaking exercise feedback
func (pb *PromptBuilder) BuildCommunicationPrompt(in CommunicationPromptInput) string {
	transcript := in.Transcript
	if strings.TrimSpace(transcript) == "" {
		transcript = "No transcript available."
	}

	return fmt.Sprintf(`You are a professional speech and communication coach.
The speaker completed the "%s" exercise (%s) and spoke for %d seconds.

EXERCISE CONTENT:
%s

SPEAKER TRANSCRIPT:
%s

Return your assessment in this exact JSON structure:
{
  "overallScore": number (0-100),
  "pronunciation": number (0-100),
  "fluency": number (0-100),
  "clarity": number (0-100),
  "pace": number (0-100),
  "confidence": number (0-100),
  "vocabulary": number (0-100),
  "grammar": number (0-100),
  "fillerWords": number,
  "pauseAnalysis": {
    "totalPauses": number,
    "averagePauseLength": number (seconds),
    "appropriatePauses": number
  },
  "strengths": ["string"],
  "improvements": ["string"],
  "recommendations": ["string"],
  "detailedFeedback": "string"
}`, in.ExerciseTitle, in.ExerciseType, in.DurationSecs, in.Content, transcript)
}

func appendReference(prompt, context string) string {
	if strings.TrimSpace(context) == "" {
		return prompt
	}
	return prompt + "\n\nREFERENCE MATERIAL (use it to ground your answer):\n" + context
}

// Helper to clean and format context from knowledge base results
func FormatRAGContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Context %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
