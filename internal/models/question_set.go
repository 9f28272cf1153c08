package models

// QuestionSet is a generated list of interview questions.
type QuestionSet struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions" validate:"required,min=1,dive"`
	TotalTime   int        `json:"totalTime" validate:"min=0"`
	Difficulty  string     `json:"difficulty"`
}

type Question struct {
	ID                 string   `json:"id"`
	Question           string   `json:"question" validate:"required"`
	Type               string   `json:"type" validate:"oneof=technical behavioral situational cultural leadership"`
	Difficulty         string   `json:"difficulty" validate:"oneof=easy medium hard"`
	Category           string   `json:"category"`
	ExpectedAnswer     string   `json:"expectedAnswer,omitempty"`
	FollowUpQuestions  []string `json:"followUpQuestions,omitempty"`
	EvaluationCriteria []string `json:"evaluationCriteria,omitempty"`
	TimeLimit          int      `json:"timeLimit,omitempty" validate:"min=0"`
	Tags               []string `json:"tags"`
}

func (q QuestionSet) ResultTitle() string { return q.Title }
