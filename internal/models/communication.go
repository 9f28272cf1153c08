package models

type Exercise struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Difficulty  string   `json:"difficulty"`
	Duration    int      `json:"duration"`
	Content     string   `json:"content"`
	TargetWords []string `json:"targetWords,omitempty"`
	Tips        []string `json:"tips"`
}

type CommunicationAnalysis struct {
	OverallScore     float64       `json:"overallScore" validate:"min=0,max=100"`
	Pronunciation    float64       `json:"pronunciation" validate:"min=0,max=100"`
	Fluency          float64       `json:"fluency" validate:"min=0,max=100"`
	Clarity          float64       `json:"clarity" validate:"min=0,max=100"`
	Pace             float64       `json:"pace" validate:"min=0,max=100"`
	Confidence       float64       `json:"confidence" validate:"min=0,max=100"`
	Vocabulary       float64       `json:"vocabulary" validate:"min=0,max=100"`
	Grammar          float64       `json:"grammar" validate:"min=0,max=100"`
	FillerWords      int           `json:"fillerWords" validate:"min=0"`
	PauseAnalysis    PauseAnalysis `json:"pauseAnalysis"`
	Strengths        []string      `json:"strengths"`
	Improvements     []string      `json:"improvements"`
	Recommendations  []string      `json:"recommendations"`
	DetailedFeedback string        `json:"detailedFeedback"`
}

type PauseAnalysis struct {
	TotalPauses        int     `json:"totalPauses" validate:"min=0"`
	AveragePauseLength float64 `json:"averagePauseLength" validate:"min=0"`
	AppropriatePauses  int     `json:"appropriatePauses" validate:"min=0"`
}

func (CommunicationAnalysis) ResultTitle() string { return "Communication Analysis" }
