package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextgen/interview-coach/internal/models"
)

const liveInterviewJSON = `{"overallScore":81,"confidence":70,"clarity":88,"technicalAccuracy":76,` +
	`"communicationSkills":90,"bodyLanguage":65,"responseTime":72,` +
	`"strengths":["Structured answers"],"improvements":["Slow down"],` +
	`"detailedFeedback":[{"questionId":"1","score":80,"feedback":"Good","suggestions":["Be concise"]}],` +
	`"recommendations":["Practice STAR"]}`

func newTestInterviews(t *testing.T, gemini *fakeGemini) (MockInterviewService, *recorder, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	rec, _ := newTestRecorder(t, clock)
	svc := NewMockInterviewService(NewPipeline(gemini, nil, nil), rec, nil, NewRandomSource(5), testGenCfg, clock.Now)
	return svc, rec, clock
}

func TestInterviewQuestionsScaleWithDuration(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{0, 1},
		{5, 1},
		{10, 1},
		{15, 2},
		{30, 3},
		{90, 3},
	}
	for _, tt := range tests {
		assert.Len(t, interviewQuestions(tt.duration), tt.want, "duration %d", tt.duration)
	}
}

func TestMockInterviewLifecycle(t *testing.T) {
	gemini := &fakeGemini{text: liveInterviewJSON}
	svc, rec, clock := newTestInterviews(t, gemini)

	session, err := svc.Start("tab-1", models.StartInterviewRequest{
		Role:       "Backend Developer",
		Company:    "Spotify",
		Duration:   20,
		Permission: "granted",
	})
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer Interview", session.Title)
	assert.Equal(t, "mixed", session.Type)
	assert.Equal(t, "medium", session.Difficulty)
	assert.Equal(t, models.InterviewInProgress, session.Status)
	assert.Len(t, session.Questions, 2)
	assert.Equal(t, 20*60, session.RemainingSeconds)
	require.NotNil(t, session.RecordingID)

	recording, err := rec.Get(*session.RecordingID)
	require.NoError(t, err)
	assert.Equal(t, models.RecordingVideo, recording.Kind)
	assert.Equal(t, models.RecordingActive, recording.Status)

	clock.Advance(90 * time.Second)
	_, err = svc.AppendRecording(session.ID, []byte("vp8-frame"))
	require.NoError(t, err)

	next, err := svc.Next(session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, next.CurrentIndex)
	assert.Equal(t, 20*60-90, next.RemainingSeconds)

	// Advancing past the last question finishes the interview.
	done, err := svc.Next(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewFinished, done.Status)

	recording, err = rec.Get(*session.RecordingID)
	require.NoError(t, err)
	assert.Equal(t, models.RecordingStopped, recording.Status)

	result, err := svc.End(context.Background(), "tab-1", session.ID, "I built a payments service in Go.")
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, result.Source)
	assert.Equal(t, "Interview analysis completed!", result.Message)
	assert.Equal(t, 81.0, result.Data.OverallScore)

	prompt := gemini.lastPrompt()
	assert.Contains(t, prompt, "mixed mock interview for a Backend Developer position at Spotify")
	assert.Contains(t, prompt, "1. "+SampleInterviewQuestions[0].Question)
	assert.Contains(t, prompt, "I built a payments service in Go.")

	_, err = svc.End(context.Background(), "tab-1", session.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	analyzed, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewAnalyzed, analyzed.Status)
}

func TestMockInterviewExpires(t *testing.T) {
	svc, rec, clock := newTestInterviews(t, &fakeGemini{err: ErrNetwork})

	session, err := svc.Start("", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber", Duration: 10})
	require.NoError(t, err)

	clock.Advance(10*time.Minute + time.Second)

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewFinished, got.Status)
	assert.Zero(t, got.RemainingSeconds)

	recording, err := rec.Get(*session.RecordingID)
	require.NoError(t, err)
	assert.Equal(t, models.RecordingStopped, recording.Status)

	result, err := svc.End(context.Background(), "", session.ID, "")
	require.NoError(t, err)
	assert.True(t, result.IsFallback())
	assert.Equal(t, "Interview analysis completed with sample feedback!", result.Message)
	require.Len(t, result.Data.DetailedFeedback, 1)
	assert.Equal(t, "1", result.Data.DetailedFeedback[0].QuestionID)
}

func TestMockInterviewStartErrors(t *testing.T) {
	svc, rec, _ := newTestInterviews(t, &fakeGemini{})

	_, err := svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "Please select job role and company")

	_, err = svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber", Type: "panel"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber", Permission: "denied"})
	assert.ErrorIs(t, err, ErrPermission)
	assert.Empty(t, rec.sessions)

	_, err = svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber"})
	require.NoError(t, err)
	_, err = svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber"})
	assert.ErrorIs(t, err, ErrBusy)
}

func TestMockInterviewUnknownID(t *testing.T) {
	svc, _, _ := newTestInterviews(t, &fakeGemini{})

	id := uuid.New()
	_, err := svc.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Next(id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.AppendRecording(id, []byte("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.End(context.Background(), "", id, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockInterviewEndClaimsAnalysis(t *testing.T) {
	gemini := &fakeGemini{text: liveInterviewJSON, block: make(chan struct{}), started: make(chan struct{}, 1)}
	svc, _, _ := newTestInterviews(t, gemini)

	session, err := svc.Start("tab-1", models.StartInterviewRequest{Role: "Site Reliability Engineer", Company: "Netflix"})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.End(context.Background(), "tab-1", session.ID, "")
		done <- err
	}()
	<-gemini.started

	// A second tab ending the same interview must not start another analysis.
	_, err = svc.End(context.Background(), "tab-2", session.ID, "")
	assert.ErrorIs(t, err, ErrBusy)

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewAnalyzing, got.Status)

	close(gemini.block)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), gemini.calls.Load())

	got, err = svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewAnalyzed, got.Status)
}

func TestMockInterviewEndCancelledCanRetry(t *testing.T) {
	gemini := &fakeGemini{text: liveInterviewJSON, block: make(chan struct{}), started: make(chan struct{}, 1)}
	svc, _, _ := newTestInterviews(t, gemini)

	session, err := svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.End(ctx, "tab-1", session.ID, "")
		done <- err
	}()
	<-gemini.started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	got, err := svc.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewFinished, got.Status)

	close(gemini.block)
	result, err := svc.End(context.Background(), "tab-1", session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.SourceLive, result.Source)
}

func TestMockInterviewPrune(t *testing.T) {
	svc, _, clock := newTestInterviews(t, &fakeGemini{err: ErrNetwork})

	analyzed, err := svc.Start("tab-1", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber", Duration: 10})
	require.NoError(t, err)
	_, err = svc.End(context.Background(), "tab-1", analyzed.ID, "")
	require.NoError(t, err)

	running, err := svc.Start("tab-2", models.StartInterviewRequest{Role: "QA Engineer", Company: "Uber", Duration: 90})
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	assert.Zero(t, svc.Prune(time.Hour))

	clock.Advance(31 * time.Minute)
	assert.Equal(t, 1, svc.Prune(time.Hour))

	_, err = svc.Get(analyzed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(running.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterviewInProgress, got.Status)
}
