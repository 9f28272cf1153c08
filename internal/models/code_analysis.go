package models

// CodeAnalysis is the report produced by the code analyzer panel.
type CodeAnalysis struct {
	Complexity      float64     `json:"complexity" validate:"min=0,max=100"`
	Maintainability float64     `json:"maintainability" validate:"min=0,max=100"`
	Performance     float64     `json:"performance" validate:"min=0,max=100"`
	Security        float64     `json:"security" validate:"min=0,max=100"`
	Issues          []CodeIssue `json:"issues" validate:"dive"`
	Suggestions     []string    `json:"suggestions"`
	Metrics         CodeMetrics `json:"metrics"`
	Technologies    []string    `json:"technologies"`
	EstimatedTime   float64     `json:"estimatedTime" validate:"min=0"`
}

type CodeIssue struct {
	Type     string `json:"type" validate:"oneof=error warning info"`
	Message  string `json:"message" validate:"required"`
	Line     int    `json:"line,omitempty" validate:"min=0"`
	Severity int    `json:"severity" validate:"min=0,max=10"`
}

type CodeMetrics struct {
	LinesOfCode          int     `json:"linesOfCode" validate:"min=0"`
	CyclomaticComplexity int     `json:"cyclomaticComplexity" validate:"min=0"`
	CognitiveComplexity  int     `json:"cognitiveComplexity" validate:"min=0"`
	DuplicatedLines      int     `json:"duplicatedLines" validate:"min=0"`
	TestCoverage         float64 `json:"testCoverage" validate:"min=0,max=100"`
}

func (CodeAnalysis) ResultTitle() string { return "Code Analysis" }
