package repository

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSummarizedNews(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantItems []string
	}{
		{
			name:      "plain array",
			input:     `[{"title":"A","link":"https://a","summary":"s","tickers":["AAPL"]}]`,
			wantItems: []string{`{"title":"A","link":"https://a","summary":"s","tickers":["AAPL"]}`},
		},
		{
			name:  "fenced with commentary",
			input: "Here is the result:\n```json\n[{\"title\":\"A\",\"link\":\"https://a\",\"summary\":\"요약\",\"tickers\":[]},{\"title\":\"B\",\"link\":\"https://b\",\"summary\":\"s\",\"tickers\":[\"005930.KS\"]}]\n```\nLet me know if you need more.",
			wantItems: []string{
				`{"title":"A","link":"https://a","summary":"요약","tickers":[]}`,
				`{"title":"B","link":"https://b","summary":"s","tickers":["005930.KS"]}`,
			},
		},
		{
			name:      "empty array",
			input:     "```\n[]\n```",
			wantItems: []string{},
		},
		{
			name:      "elements are not validated",
			input:     `[{"headline":"unexpected"}, 42, "text"]`,
			wantItems: []string{`{"headline":"unexpected"}`, `42`, `"text"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseSummarizedNews(tt.input)
			require.NoError(t, err)
			require.Len(t, items, len(tt.wantItems))
			for i, want := range tt.wantItems {
				assert.JSONEq(t, want, string(items[i]))
			}
		})
	}
}

func TestParseSummarizedNewsErrors(t *testing.T) {
	t.Run("no brackets", func(t *testing.T) {
		_, err := ParseSummarizedNews("I could not summarize these articles.")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("object instead of array", func(t *testing.T) {
		_, err := ParseSummarizedNews(`{"title":"A"}`)
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("closing bracket before opening", func(t *testing.T) {
		_, err := ParseSummarizedNews("] nothing here [")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseSummarizedNews(`[{"title": "A",}]`)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoJSONArray)
		var syntaxErr *json.SyntaxError
		assert.ErrorAs(t, err, &syntaxErr)
	})

	t.Run("brackets in surrounding prose widen the slice", func(t *testing.T) {
		_, err := ParseSummarizedNews(`Sources [1] and [2]: [{"title":"A"}]`)
		assert.Error(t, err)
	})
}
