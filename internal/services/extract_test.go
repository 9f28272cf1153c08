package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextgen/interview-coach/internal/models"
)

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "wrapped in prose and fences",
			input: "Here you go:\n```json\n{\"a\":{\"b\":2}}\n```\nHope that helps {really}.",
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"msg":"use {x} and \"}\" freely","n":1} trailing`,
			want:  `{"msg":"use {x} and \"}\" freely","n":1}`,
		},
		{
			name:  "stops at first object",
			input: `{"first":true} {"second":true}`,
			want:  `{"first":true}`,
		},
		{
			name:    "no brace",
			input:   "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			input:   `{"a":{"b":1}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeResult(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		got, err := DecodeResult[models.CodeIssue](`Result: {"type":"warning","message":"m","line":3,"severity":4}`)
		require.NoError(t, err)
		assert.Equal(t, &models.CodeIssue{Type: "warning", Message: "m", Line: 3, Severity: 4}, got)
	})

	t.Run("trailing comma", func(t *testing.T) {
		_, err := DecodeResult[models.CodeIssue](`{"type":"warning","message":"m",}`)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := DecodeResult[models.CodeIssue](`{"type":"warning","message":"m","severity":"high"}`)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("schema mismatch", func(t *testing.T) {
		_, err := DecodeResult[models.CodeIssue](`{"type":"fatal","message":"m","severity":4}`)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("empty questions", func(t *testing.T) {
		_, err := DecodeResult[models.QuestionSet](`{"title":"x","questions":[]}`)
		assert.ErrorIs(t, err, ErrParse)
	})
}
