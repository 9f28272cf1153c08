package models

type AnalyzeCodeRequest struct {
	Code string `json:"code"`
}

type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
	DocumentID string `json:"document_id"`
}

type GenerateQuestionsRequest struct {
	Role       string   `json:"role"`
	Experience string   `json:"experience"`
	Types      []string `json:"types" validate:"omitempty,dive,oneof=technical behavioral situational cultural leadership"`
	Difficulty string   `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Count      int      `json:"count" validate:"min=0,max=50"`
	TimeLimit  int      `json:"time_limit" validate:"min=0,max=240"`
}

type ChatRequest struct {
	Message     string   `json:"message"`
	Personality string   `json:"personality"`
	Language    string   `json:"language"`
	Temperature *float32 `json:"temperature" validate:"omitempty,min=0,max=2"`
	MaxTokens   *int32   `json:"max_tokens" validate:"omitempty,min=1,max=8192"`
}

type AnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     *int   `json:"answer"`
}

type StartInterviewRequest struct {
	Role       string `json:"role"`
	Company    string `json:"company"`
	Type       string `json:"type" validate:"omitempty,oneof=technical behavioral mixed"`
	Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Duration   int    `json:"duration" validate:"min=0,max=180"`
	// Permission is the outcome of the browser's device prompt.
	Permission string `json:"permission"`
}

type EndInterviewRequest struct {
	Transcript string `json:"transcript"`
}

type StartRecordingRequest struct {
	ExerciseID string `json:"exercise_id"`
	Permission string `json:"permission"`
}

type StopRecordingRequest struct {
	Transcript string `json:"transcript"`
}

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
	PageCount    int    `json:"page_count"`
	TextLength   int    `json:"text_length"`
}

// HistoryEntry is the list view of a stored generation.
type HistoryEntry struct {
	ID            string `json:"id"`
	Panel         Panel  `json:"panel"`
	Source        Source `json:"source"`
	Title         string `json:"title"`
	FailureReason string `json:"failure_reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}
