package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Interview Questions for Software Engineer", "Interview_Questions_for_Software_Engineer.json"},
		{"Code Analysis", "Code_Analysis.json"},
		{"Tabs\tand  double  spaces", "Tabs_and_double_spaces.json"},
		{"Interview Questions for C/C++ Developer", "Interview_Questions_for_C_C++_Developer.json"},
		{`Windows\Paths`, "Windows_Paths.json"},
		{"", ".json"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExportFilename(tt.title), tt.title)
	}
}

func TestPrettyJSONUsesTwoSpaces(t *testing.T) {
	t.Parallel()

	out, err := PrettyJSON(map[string]any{"title": "x", "n": 1})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"n\": 1,\n  \"title\": \"x\"\n}", string(out))

	re, err := PrettyJSON(json.RawMessage(`{"z":[1,2],"a":true}`))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"z\": [\n    1,\n    2\n  ],\n  \"a\": true\n}", string(re))

	_, err = PrettyJSON(json.RawMessage(`{"a":`))
	assert.Error(t, err)
}
