package repository

import (
	"encoding/json"
	"fmt"

	"golang-daily-brief/internal/brief/dto"
)

const summarizeNewsPromptTemplate = `You are a financial news analyst preparing a daily market brief.

For every news item in the list below:
1. Write a short summary in %[1]s (one or two sentences).
2. Extract the stock ticker symbols the item is about (for example AAPL, TSLA, 005930.KS). Use an empty list when no ticker applies.

Respond strictly with a JSON array and nothing else. Keep the original order. Every element must be an object with exactly these fields:
{"title": "original title", "link": "original link", "summary": "summary in %[1]s", "tickers": ["TICKER"]}

News items:
%[2]s`

// BuildSummarizeNewsPrompt embeds the serialized news list in the summarization instructions.
func BuildSummarizeNewsPrompt(items []dto.NewsItem, language string) (string, error) {
	if items == nil {
		items = []dto.NewsItem{}
	}
	newsJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal news items: %w", err)
	}

	return fmt.Sprintf(summarizeNewsPromptTemplate, language, string(newsJSON)), nil
}
