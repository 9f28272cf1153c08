package models

import (
	"time"

	"github.com/google/uuid"
)

type InterviewQuestion struct {
	ID                string   `json:"id"`
	Question          string   `json:"question"`
	Type              string   `json:"type"`
	Difficulty        string   `json:"difficulty"`
	Category          string   `json:"category"`
	TimeLimit         int      `json:"timeLimit"`
	FollowUpQuestions []string `json:"followUpQuestions,omitempty"`
	Tips              []string `json:"tips"`
}

type InterviewStatus string

const (
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewFinished   InterviewStatus = "finished"
	InterviewAnalyzing  InterviewStatus = "analyzing"
	InterviewAnalyzed   InterviewStatus = "analyzed"
)

type InterviewSession struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Role             string              `json:"role"`
	Company          string              `json:"company"`
	Type             string              `json:"type"`
	Duration         int                 `json:"duration"`
	Difficulty       string              `json:"difficulty"`
	Questions        []InterviewQuestion `json:"questions"`
	CurrentIndex     int                 `json:"currentIndex"`
	Status           InterviewStatus     `json:"status"`
	RemainingSeconds int                 `json:"remainingSeconds"`
	RecordingID      *uuid.UUID          `json:"recordingId,omitempty"`
	StartedAt        time.Time           `json:"startedAt"`
}

type InterviewAnalysis struct {
	OverallScore        float64            `json:"overallScore" validate:"min=0,max=100"`
	Confidence          float64            `json:"confidence" validate:"min=0,max=100"`
	Clarity             float64            `json:"clarity" validate:"min=0,max=100"`
	TechnicalAccuracy   float64            `json:"technicalAccuracy" validate:"min=0,max=100"`
	CommunicationSkills float64            `json:"communicationSkills" validate:"min=0,max=100"`
	BodyLanguage        float64            `json:"bodyLanguage" validate:"min=0,max=100"`
	ResponseTime        float64            `json:"responseTime" validate:"min=0,max=100"`
	Strengths           []string           `json:"strengths"`
	Improvements        []string           `json:"improvements"`
	DetailedFeedback    []QuestionFeedback `json:"detailedFeedback" validate:"dive"`
	Recommendations     []string           `json:"recommendations"`
}

type QuestionFeedback struct {
	QuestionID  string   `json:"questionId"`
	Score       float64  `json:"score" validate:"min=0,max=100"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

func (InterviewAnalysis) ResultTitle() string { return "Mock Interview Analysis" }
