package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSONArray is returned when the model answer contains no bracketed region.
var ErrNoJSONArray = errors.New("failed to parse AI response: no JSON array found")

// ParseSummarizedNews pulls the JSON array out of free-form model text. The array is taken
// from the first '[' to the last ']', so code fences and commentary around it are ignored.
// Elements are returned verbatim; their shape is not checked.
func ParseSummarizedNews(text string) ([]json.RawMessage, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end < start {
		return nil, ErrNoJSONArray
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summarized news: %w", err)
	}
	return items, nil
}
