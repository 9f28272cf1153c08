package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextgen/interview-coach/internal/models"
)

func newTestCommunication(t *testing.T, gemini *fakeGemini) (CommunicationService, *recorder, StorageService, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	rec, store := newTestRecorder(t, clock)
	svc := NewCommunicationService(NewPipeline(gemini, nil, nil), rec, NewRandomSource(3), testGenCfg)
	return svc, rec, store, clock
}

func TestCommunicationExerciseFilters(t *testing.T) {
	svc, _, _, _ := newTestCommunication(t, &fakeGemini{})

	assert.Len(t, svc.Exercises("", ""), len(SampleExercises))

	intermediate := svc.Exercises("", "intermediate")
	require.Len(t, intermediate, 2)
	assert.Equal(t, "1", intermediate[0].ID)
	assert.Equal(t, "3", intermediate[1].ID)

	vocab := svc.Exercises("vocabulary", "")
	require.Len(t, vocab, 1)
	assert.Equal(t, "Vocabulary Enhancement", vocab[0].Title)

	assert.Empty(t, svc.Exercises("grammar", ""))
}

func TestCommunicationRecordAndAnalyze(t *testing.T) {
	gemini := &fakeGemini{err: ErrNetwork}
	svc, _, _, clock := newTestCommunication(t, gemini)

	session, err := svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "2", Permission: "granted"})
	require.NoError(t, err)
	assert.Equal(t, models.RecordingAudio, session.Kind)
	assert.Equal(t, "2", session.ExerciseID)
	assert.Equal(t, session.StartedAt.Add(120*time.Second), session.Deadline)

	clock.Advance(30 * time.Second)
	_, err = svc.AppendChunk(session.ID, []byte("opus-frame-1"))
	require.NoError(t, err)
	clock.Advance(15 * time.Second)
	updated, err := svc.AppendChunk(session.ID, []byte("opus-frame-2"))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.ChunkCount)
	assert.Equal(t, int64(24), updated.BytesWritten)

	result, err := svc.StopRecording(context.Background(), "tab-1", session.ID, "The quick brown fox")
	require.NoError(t, err)

	assert.True(t, result.IsFallback())
	assert.Equal(t, models.PanelCommunication, result.Panel)
	assert.Equal(t, "Analysis complete with sample feedback!", result.Message)
	assert.GreaterOrEqual(t, result.Data.OverallScore, 75.0)
	assert.Less(t, result.Data.OverallScore, 100.0)

	prompt := gemini.lastPrompt()
	assert.Contains(t, prompt, `"Pronunciation Practice" exercise (pronunciation) and spoke for 45 seconds`)
	assert.Contains(t, prompt, "The quick brown fox")

	_, err = svc.StopRecording(context.Background(), "tab-1", session.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	// The owner can record again once the first session is stopped.
	_, err = svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "1"})
	assert.NoError(t, err)
}

func TestCommunicationStoresChunksInOrder(t *testing.T) {
	svc, rec, store, _ := newTestCommunication(t, &fakeGemini{text: "{}"})

	session, err := svc.StartRecording("", models.StartRecordingRequest{ExerciseID: "3"})
	require.NoError(t, err)

	for _, chunk := range []string{"a", "bb", "ccc"} {
		_, err := svc.AppendChunk(session.ID, []byte(chunk))
		require.NoError(t, err)
	}

	held := rec.sessions[session.ID]
	data, err := os.ReadFile(store.GetFilePath(held.Filename))
	require.NoError(t, err)
	assert.Equal(t, "abbccc", string(data))
}

func TestCommunicationPermissionDenied(t *testing.T) {
	svc, rec, _, _ := newTestCommunication(t, &fakeGemini{})

	_, err := svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "1", Permission: "denied"})
	assert.ErrorIs(t, err, ErrPermission)
	assert.Empty(t, rec.sessions)
}

func TestCommunicationUnknownExerciseAndRecording(t *testing.T) {
	svc, rec, _, _ := newTestCommunication(t, &fakeGemini{})

	_, err := svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "99"})
	assert.ErrorIs(t, err, ErrNotFound)

	// Interview recordings carry no exercise and are not reachable here.
	video, err := rec.Open("mock_interview:tab-1", models.RecordingVideo, time.Minute, "")
	require.NoError(t, err)

	_, err = svc.AppendChunk(video.ID, []byte("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.StopRecording(context.Background(), "tab-1", video.ID, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommunicationSecondRecordingIsBusy(t *testing.T) {
	svc, _, _, _ := newTestCommunication(t, &fakeGemini{})

	_, err := svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "1"})
	require.NoError(t, err)

	_, err = svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "2"})
	assert.ErrorIs(t, err, ErrBusy)

	_, err = svc.StartRecording("tab-2", models.StartRecordingRequest{ExerciseID: "2"})
	assert.NoError(t, err)
}

func TestCommunicationStopClaimsAnalysis(t *testing.T) {
	gemini := &fakeGemini{err: ErrNetwork, block: make(chan struct{}), started: make(chan struct{}, 1)}
	svc, rec, _, clock := newTestCommunication(t, gemini)

	session, err := svc.StartRecording("tab-1", models.StartRecordingRequest{ExerciseID: "1"})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.StopRecording(context.Background(), "tab-1", session.ID, "")
		done <- err
	}()
	<-gemini.started

	_, err = svc.StopRecording(context.Background(), "tab-2", session.ID, "")
	assert.ErrorIs(t, err, ErrBusy)

	close(gemini.block)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), gemini.calls.Load())

	_, err = svc.StopRecording(context.Background(), "tab-2", session.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Zero(t, svc.Prune(), "the recorder still knows the session")

	clock.Advance(2 * time.Hour)
	rec.reap()
	assert.Equal(t, 1, svc.Prune())
}
