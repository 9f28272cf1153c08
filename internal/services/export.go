package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pathSeparators = strings.NewReplacer("/", "_", "\\", "_")
)

// ExportFilename turns a result title into a download name. Path separators
// become underscores so "C/C++" survives as one file name.
func ExportFilename(title string) string {
	return pathSeparators.Replace(whitespaceRun.ReplaceAllString(title, "_")) + ".json"
}

// PrettyJSON renders v with two-space indentation. A json.RawMessage is
// re-indented with its key order intact.
func PrettyJSON(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return out, nil
}
