package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var resultValidator = validator.New()

// ExtractJSON returns the first balanced {...} span in text. Braces inside
// JSON string literals are ignored, so the scan stops at the object's real end
// even when the model writes prose or a second object after it.
func ExtractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: unbalanced JSON object", ErrParse)
}

// DecodeResult extracts the JSON object from raw model text, decodes it into T
// and validates it against T's struct tags.
func DecodeResult[T any](raw string) (*T, error) {
	span, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal JSON: %v", ErrParse, err)
	}

	if err := resultValidator.Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: result does not match schema: %v", ErrParse, err)
	}

	return &out, nil
}
