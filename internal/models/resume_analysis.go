package models

// ResumeAnalysis is the report produced by the resume analyzer panel.
type ResumeAnalysis struct {
	PersonalInfo       PersonalInfo       `json:"personalInfo"`
	Summary            ResumeSummary      `json:"summary"`
	Skills             ResumeSkills       `json:"skills"`
	Experience         ResumeExperience   `json:"experience"`
	Education          ResumeEducation    `json:"education"`
	Projects           []ResumeProject    `json:"projects" validate:"dive"`
	Strengths          []string           `json:"strengths"`
	Weaknesses         []string           `json:"weaknesses"`
	Recommendations    []string           `json:"recommendations"`
	InterviewQuestions InterviewQuestions `json:"interviewQuestions"`
	Marketability      Marketability      `json:"marketability"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

type ResumeSummary struct {
	OverallScore    float64  `json:"overallScore" validate:"min=0,max=100"`
	ExperienceLevel string   `json:"experienceLevel"`
	PrimarySkills   []string `json:"primarySkills"`
	IndustryFocus   []string `json:"industryFocus"`
	CareerStage     string   `json:"careerStage"`
}

type ResumeSkills struct {
	Technical      []TechnicalSkill `json:"technical" validate:"dive"`
	Soft           []SoftSkill      `json:"soft" validate:"dive"`
	Certifications []Certification  `json:"certifications"`
}

type TechnicalSkill struct {
	Name     string  `json:"name" validate:"required"`
	Level    float64 `json:"level" validate:"min=0,max=100"`
	Category string  `json:"category"`
}

type SoftSkill struct {
	Name  string  `json:"name" validate:"required"`
	Level float64 `json:"level" validate:"min=0,max=100"`
}

type Certification struct {
	Name     string `json:"name"`
	Issuer   string `json:"issuer"`
	Year     string `json:"year"`
	Verified bool   `json:"verified"`
}

type ResumeExperience struct {
	TotalYears float64    `json:"totalYears" validate:"min=0"`
	Positions  []Position `json:"positions"`
}

type Position struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
}

type ResumeEducation struct {
	Degrees         []Degree `json:"degrees"`
	RelevantCourses []string `json:"relevantCourses"`
}

type Degree struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

type ResumeProject struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Impact       string   `json:"impact"`
	URL          string   `json:"url,omitempty"`
}

type InterviewQuestions struct {
	Technical    []string `json:"technical"`
	Behavioral   []string `json:"behavioral"`
	Situational  []string `json:"situational"`
	RoleSpecific []string `json:"roleSpecific"`
}

type Marketability struct {
	SalaryRange      string   `json:"salaryRange"`
	DemandLevel      string   `json:"demandLevel"`
	Competitiveness  float64  `json:"competitiveness" validate:"min=0,max=100"`
	ImprovementAreas []string `json:"improvementAreas"`
}

func (ResumeAnalysis) ResultTitle() string { return "Resume Analysis" }
