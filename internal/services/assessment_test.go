package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextgen/interview-coach/internal/models"
)

func TestScoreAssessment(t *testing.T) {
	t.Parallel()

	react := SampleAssessments[0]

	tests := []struct {
		name        string
		answers     map[string]int
		remaining   int
		wantPct     int
		wantScore   int
		wantCert    bool
		strengths   []string
		weaknesses  []string
		wantCorrect int
	}{
		{
			name:        "all correct",
			answers:     map[string]int{"1": 1, "2": 2},
			remaining:   1500,
			wantPct:     100,
			wantScore:   15,
			wantCert:    true,
			strengths:   []string{"React Hooks", "React State"},
			weaknesses:  []string{},
			wantCorrect: 2,
		},
		{
			name:        "only the hooks question",
			answers:     map[string]int{"1": 1, "2": 0},
			remaining:   1700,
			wantPct:     67,
			wantScore:   10,
			wantCert:    false,
			strengths:   []string{"React Hooks"},
			weaknesses:  []string{"React State"},
			wantCorrect: 1,
		},
		{
			name:        "unanswered",
			answers:     map[string]int{},
			remaining:   0,
			wantPct:     0,
			wantScore:   0,
			wantCert:    false,
			strengths:   []string{},
			weaknesses:  []string{"React Hooks", "React State"},
			wantCorrect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ScoreAssessment(react, tt.answers, tt.remaining)

			assert.Equal(t, tt.wantPct, got.Percentage)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantCert, got.Certificate)
			assert.Equal(t, tt.strengths, got.Strengths)
			assert.Equal(t, tt.weaknesses, got.Weaknesses)
			assert.Equal(t, tt.wantCorrect, got.CorrectAnswers)
			assert.Equal(t, 2, got.TotalQuestions)
			assert.Equal(t, 30*60-tt.remaining, got.TimeSpent)
			assert.Len(t, got.Recommendations, 3)
		})
	}
}

func TestAssessmentAttemptLifecycle(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	svc := NewAssessmentService(clock.Now)

	started, err := svc.Start("react-fundamentals")
	require.NoError(t, err)
	assert.Equal(t, models.AttemptActive, started.Status)
	assert.Equal(t, 1800, started.RemainingSeconds)
	for _, q := range started.Assessment.Questions {
		assert.Nil(t, q.CorrectAnswer, "answers are hidden while active")
		assert.Empty(t, q.Explanation)
	}

	_, err = svc.Answer(started.ID, "1", 1)
	require.NoError(t, err)

	_, err = svc.Answer(started.ID, "1", 9)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Answer(started.ID, "nope", 0)
	assert.ErrorIs(t, err, ErrNotFound)

	clock.Advance(2 * time.Minute)
	paused, err := svc.Pause(started.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptPaused, paused.Status)

	_, err = svc.Answer(started.ID, "2", 2)
	assert.ErrorIs(t, err, ErrValidation, "answers are rejected while paused")

	clock.Advance(time.Hour)
	resumed, err := svc.Resume(started.ID)
	require.NoError(t, err)
	assert.Equal(t, 1680, resumed.RemainingSeconds)

	_, err = svc.Answer(started.ID, "2", 2)
	require.NoError(t, err)

	clock.Advance(time.Minute)
	done, err := svc.Finish(started.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptFinished, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, 100, done.Result.Percentage)
	assert.Equal(t, 180, done.Result.TimeSpent)
	assert.Equal(t, "Assessment completed! Score: 100%", done.Message)
	assert.NotNil(t, done.Assessment.Questions[0].CorrectAnswer)

	_, err = svc.Answer(started.ID, "1", 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAssessmentFinishesWhenTimeRunsOut(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	svc := NewAssessmentService(clock.Now)

	started, err := svc.Start("javascript-advanced")
	require.NoError(t, err)

	clock.Advance(46 * time.Minute)
	got, err := svc.Get(started.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptFinished, got.Status)
	assert.Equal(t, 45*60, got.Result.TimeSpent)
	assert.False(t, got.Result.Certificate)
}

func TestAssessmentUnknownIDs(t *testing.T) {
	t.Parallel()

	svc := NewAssessmentService(nil)

	_, err := svc.Start("cobol-basics")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Len(t, svc.Catalog("frontend"), 2)
	assert.Empty(t, svc.Catalog("mobile"))
}

func TestAssessmentPrune(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	svc := NewAssessmentService(clock.Now)

	finished, err := svc.Start("react-fundamentals")
	require.NoError(t, err)
	_, err = svc.Finish(finished.ID)
	require.NoError(t, err)

	paused, err := svc.Start("react-fundamentals")
	require.NoError(t, err)
	_, err = svc.Pause(paused.ID)
	require.NoError(t, err)

	running, err := svc.Start("javascript-advanced")
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	assert.Zero(t, svc.Prune(time.Hour))

	// The running attempt expires during this sweep and is kept for now.
	clock.Advance(31 * time.Minute)
	assert.Equal(t, 2, svc.Prune(time.Hour))

	_, err = svc.Get(finished.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(paused.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AttemptFinished, got.Status)
}
