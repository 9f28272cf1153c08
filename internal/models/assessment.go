package models

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// AssessmentQuestion is a multiple-choice question. CorrectAnswer and
// Explanation are cleared before an active attempt is returned.
type AssessmentQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
	Points        int      `json:"points"`
	TimeLimit     int      `json:"timeLimit"`
}

type Assessment struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	Color        string               `json:"color"`
	Questions    []AssessmentQuestion `json:"questions"`
	TotalTime    int                  `json:"totalTime"`
	PassingScore int                  `json:"passingScore"`
}

type AttemptStatus string

const (
	AttemptActive   AttemptStatus = "active"
	AttemptPaused   AttemptStatus = "paused"
	AttemptFinished AttemptStatus = "finished"
)

type AssessmentAttempt struct {
	ID               uuid.UUID         `json:"id"`
	AssessmentID     string            `json:"assessmentId"`
	Status           AttemptStatus     `json:"status"`
	Answers          map[string]int    `json:"answers"`
	RemainingSeconds int               `json:"remainingSeconds"`
	StartedAt        time.Time         `json:"startedAt"`
	Assessment       Assessment        `json:"assessment"`
	Result           *AssessmentResult `json:"result,omitempty"`
	Message          string            `json:"message,omitempty"`
}

type AssessmentResult struct {
	AssessmentID    string         `json:"assessmentId"`
	Score           int            `json:"score"`
	Percentage      int            `json:"percentage"`
	TimeSpent       int            `json:"timeSpent"`
	CorrectAnswers  int            `json:"correctAnswers"`
	TotalQuestions  int            `json:"totalQuestions"`
	CategoryScores  map[string]int `json:"categoryScores"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Recommendations []string       `json:"recommendations"`
	Certificate     bool           `json:"certificate"`
}

func (AssessmentResult) ResultTitle() string { return "Assessment Result" }
