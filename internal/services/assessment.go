package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"nextgen/interview-coach/internal/models"
)

var SkillCategories = []models.SkillCategory{
	{ID: "frontend", Label: "Frontend Development", Color: "blue"},
	{ID: "backend", Label: "Backend Development", Color: "green"},
	{ID: "mobile", Label: "Mobile Development", Color: "purple"},
	{ID: "devops", Label: "DevOps & Cloud", Color: "orange"},
	{ID: "data", Label: "Data Science", Color: "red"},
	{ID: "ai", Label: "AI & Machine Learning", Color: "pink"},
}

func intPtr(v int) *int { return &v }

var SampleAssessments = []models.Assessment{
	{
		ID:           "react-fundamentals",
		Title:        "React Fundamentals",
		Description:  "Test your knowledge of React concepts, hooks, and best practices",
		Category:     "frontend",
		Color:        "blue",
		TotalTime:    30,
		PassingScore: 70,
		Questions: []models.AssessmentQuestion{
			{
				ID:       "1",
				Question: "What is the purpose of the useEffect hook in React?",
				Options: []string{
					"To manage component state",
					"To perform side effects in functional components",
					"To handle user events",
					"To render JSX elements",
				},
				CorrectAnswer: intPtr(1),
				Explanation:   "useEffect is used to perform side effects in functional components, such as data fetching, subscriptions, or manually changing the DOM.",
				Difficulty:    "medium",
				Category:      "React Hooks",
				Points:        10,
				TimeLimit:     60,
			},
			{
				ID:       "2",
				Question: "Which of the following is the correct way to update state in a functional component?",
				Options: []string{
					"this.setState({value: newValue})",
					"setState(newValue)",
					"const [value, setValue] = useState(); setValue(newValue)",
					"state.value = newValue",
				},
				CorrectAnswer: intPtr(2),
				Explanation:   "In functional components, you use the useState hook and call the setter function to update state.",
				Difficulty:    "easy",
				Category:      "React State",
				Points:        5,
				TimeLimit:     45,
			},
		},
	},
	{
		ID:           "javascript-advanced",
		Title:        "Advanced JavaScript",
		Description:  "Advanced concepts including closures, prototypes, and async programming",
		Category:     "frontend",
		Color:        "yellow",
		TotalTime:    45,
		PassingScore: 75,
		Questions: []models.AssessmentQuestion{
			{
				ID:            "1",
				Question:      "What will be the output of the following code?\n\nfor (var i = 0; i < 3; i++) {\n  setTimeout(() => console.log(i), 100);\n}",
				Options:       []string{"0 1 2", "3 3 3", "0 0 0", "undefined undefined undefined"},
				CorrectAnswer: intPtr(1),
				Explanation:   "Due to closure and var hoisting, all setTimeout callbacks will log 3, as they all reference the same variable i which becomes 3 after the loop ends.",
				Difficulty:    "hard",
				Category:      "Closures",
				Points:        15,
				TimeLimit:     90,
			},
		},
	},
}

var assessmentRecommendations = []string{
	"Review the topics you struggled with",
	"Practice more coding exercises",
	"Consider taking advanced courses",
}

type AssessmentService interface {
	Catalog(category string) []models.Assessment
	Start(assessmentID string) (*models.AssessmentAttempt, error)
	Get(attemptID uuid.UUID) (*models.AssessmentAttempt, error)
	Answer(attemptID uuid.UUID, questionID string, answer int) (*models.AssessmentAttempt, error)
	Pause(attemptID uuid.UUID) (*models.AssessmentAttempt, error)
	Resume(attemptID uuid.UUID) (*models.AssessmentAttempt, error)
	Finish(attemptID uuid.UUID) (*models.AssessmentAttempt, error)
	Prune(retention time.Duration) int
}

type attempt struct {
	id         uuid.UUID
	assessment models.Assessment
	answers    map[string]int
	countdown  *Countdown
	startedAt  time.Time
	touched    time.Time
	result     *models.AssessmentResult
}

type assessmentService struct {
	mu          sync.Mutex
	assessments []models.Assessment
	attempts    map[uuid.UUID]*attempt
	now         func() time.Time
}

func NewAssessmentService(now func() time.Time) AssessmentService {
	if now == nil {
		now = time.Now
	}
	return &assessmentService{
		assessments: SampleAssessments,
		attempts:    make(map[uuid.UUID]*attempt),
		now:         now,
	}
}

// hideAnswers strips correct answers and explanations from a copy of a.
func hideAnswers(a models.Assessment) models.Assessment {
	questions := make([]models.AssessmentQuestion, len(a.Questions))
	for i, q := range a.Questions {
		q.CorrectAnswer = nil
		q.Explanation = ""
		questions[i] = q
	}
	a.Questions = questions
	return a
}

func (s *assessmentService) Catalog(category string) []models.Assessment {
	out := make([]models.Assessment, 0, len(s.assessments))
	for _, a := range s.assessments {
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, hideAnswers(a))
	}
	return out
}

func (s *assessmentService) Start(assessmentID string) (*models.AssessmentAttempt, error) {
	var found *models.Assessment
	for i := range s.assessments {
		if s.assessments[i].ID == assessmentID {
			found = &s.assessments[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("assessment %q: %w", assessmentID, ErrNotFound)
	}

	a := &attempt{
		id:         uuid.New(),
		assessment: *found,
		answers:    make(map[string]int),
		countdown:  NewCountdown(time.Duration(found.TotalTime)*time.Minute, s.now),
		startedAt:  s.now(),
		touched:    s.now(),
	}

	s.mu.Lock()
	s.attempts[a.id] = a
	s.mu.Unlock()

	return s.view(a), nil
}

// lookup returns the attempt with the lock held. An expired attempt is
// finished before it is returned.
func (s *assessmentService) lookup(id uuid.UUID) (*attempt, error) {
	a, ok := s.attempts[id]
	if !ok {
		return nil, fmt.Errorf("attempt %s: %w", id, ErrNotFound)
	}
	if a.result == nil && a.countdown.Expired() {
		s.finish(a)
	}
	a.touched = s.now()
	return a, nil
}

// Prune forgets finished and paused attempts untouched for longer than
// retention. Running attempts are kept until their countdown expires.
func (s *assessmentService) Prune(retention time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	pruned := 0
	for id, a := range s.attempts {
		if a.result == nil && a.countdown.Expired() {
			s.finish(a)
			a.touched = now
		}
		if a.result == nil && !a.countdown.Paused() {
			continue
		}
		if now.Sub(a.touched) > retention {
			delete(s.attempts, id)
			pruned++
		}
	}
	return pruned
}

func (s *assessmentService) Get(id uuid.UUID) (*models.AssessmentAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.view(a), nil
}

func (s *assessmentService) Answer(id uuid.UUID, questionID string, answer int) (*models.AssessmentAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if a.result != nil {
		return nil, newValidationError("Assessment already finished")
	}
	if a.countdown.Paused() {
		return nil, newValidationError("Assessment is paused")
	}

	var question *models.AssessmentQuestion
	for i := range a.assessment.Questions {
		if a.assessment.Questions[i].ID == questionID {
			question = &a.assessment.Questions[i]
			break
		}
	}
	if question == nil {
		return nil, fmt.Errorf("question %q: %w", questionID, ErrNotFound)
	}
	if answer < 0 || answer >= len(question.Options) {
		return nil, newValidationError("Answer is out of range")
	}

	a.answers[questionID] = answer
	return s.view(a), nil
}

func (s *assessmentService) Pause(id uuid.UUID) (*models.AssessmentAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if a.result == nil {
		a.countdown.Pause()
	}
	return s.view(a), nil
}

func (s *assessmentService) Resume(id uuid.UUID) (*models.AssessmentAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if a.result == nil {
		a.countdown.Resume()
	}
	return s.view(a), nil
}

func (s *assessmentService) Finish(id uuid.UUID) (*models.AssessmentAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if a.result == nil {
		s.finish(a)
	}
	return s.view(a), nil
}

func (s *assessmentService) finish(a *attempt) {
	a.countdown.Stop()
	a.result = ScoreAssessment(a.assessment, a.answers, a.countdown.RemainingSeconds())
}

func (s *assessmentService) view(a *attempt) *models.AssessmentAttempt {
	out := &models.AssessmentAttempt{
		ID:               a.id,
		AssessmentID:     a.assessment.ID,
		Status:           models.AttemptActive,
		Answers:          make(map[string]int, len(a.answers)),
		RemainingSeconds: a.countdown.RemainingSeconds(),
		StartedAt:        a.startedAt,
		Assessment:       hideAnswers(a.assessment),
	}
	for k, v := range a.answers {
		out.Answers[k] = v
	}

	switch {
	case a.result != nil:
		out.Status = models.AttemptFinished
		out.Assessment = a.assessment
		out.Result = a.result
		out.Message = fmt.Sprintf("Assessment completed! Score: %d%%", a.result.Percentage)
	case a.countdown.Paused():
		out.Status = models.AttemptPaused
	}
	return out
}

// ScoreAssessment grades answers against the assessment's key.
func ScoreAssessment(a models.Assessment, answers map[string]int, remainingSeconds int) *models.AssessmentResult {
	correct := 0
	totalPoints := 0
	earned := 0
	categoryScores := make(map[string]int)
	var categories []string

	for _, q := range a.Questions {
		totalPoints += q.Points

		if _, seen := categoryScores[q.Category]; !seen {
			categoryScores[q.Category] = 0
			categories = append(categories, q.Category)
		}

		answer, answered := answers[q.ID]
		if answered && q.CorrectAnswer != nil && answer == *q.CorrectAnswer {
			correct++
			earned += q.Points
			categoryScores[q.Category]++
		}
	}

	percentage := 0
	if totalPoints > 0 {
		percentage = int(math.Round(float64(earned) / float64(totalPoints) * 100))
	}

	strengths := []string{}
	weaknesses := []string{}
	for _, cat := range categories {
		if categoryScores[cat] > 0 {
			strengths = append(strengths, cat)
		} else {
			weaknesses = append(weaknesses, cat)
		}
	}

	return &models.AssessmentResult{
		AssessmentID:    a.ID,
		Score:           earned,
		Percentage:      percentage,
		TimeSpent:       a.TotalTime*60 - remainingSeconds,
		CorrectAnswers:  correct,
		TotalQuestions:  len(a.Questions),
		CategoryScores:  categoryScores,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: append([]string(nil), assessmentRecommendations...),
		Certificate:     percentage >= a.PassingScore,
	}
}
