package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang-daily-brief/internal/brief/config"
	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// AIRepository sends news to a generative model and returns its raw text answer.
type AIRepository interface {
	SummarizeNews(ctx context.Context, items []dto.NewsItem) (string, error)
}

// geminiAIRepository is an implementation of AIRepository that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	tokenLimiter   *rate.Limiter

	clientOnce  sync.Once
	genAiClient *genai.Client
	clientErr   error
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository.
// The SDK client is created on first use so a missing API key does not prevent startup.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger) AIRepository {
	requestLimiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.Gemini.MaxRequestPerMinute > 0 {
		secondsPerRequest := time.Minute / time.Duration(cfg.Gemini.MaxRequestPerMinute)
		requestLimiter = rate.NewLimiter(rate.Every(secondsPerRequest), 1)
	}

	var tokenLimiter *rate.Limiter
	if cfg.Gemini.MaxTokenPerMinute > 0 {
		tokenLimiter = rate.NewLimiter(rate.Limit(float64(cfg.Gemini.MaxTokenPerMinute)/60), cfg.Gemini.MaxTokenPerMinute)
	}

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		tokenLimiter:   tokenLimiter,
	}
}

// SummarizeNews builds the summarization prompt and sends it in a single request.
func (r *geminiAIRepository) SummarizeNews(ctx context.Context, items []dto.NewsItem) (string, error) {
	prompt, err := BuildSummarizeNewsPrompt(items, r.cfg.Summary.Language)
	if err != nil {
		return "", err
	}

	return r.executeGeminiAIRequest(ctx, prompt)
}

func (r *geminiAIRepository) client(ctx context.Context) (*genai.Client, error) {
	r.clientOnce.Do(func() {
		if r.cfg.Gemini.APIKey == "" {
			r.clientErr = errors.New("gemini api key is empty")
			return
		}
		r.genAiClient, r.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  r.cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{
				BaseURL: r.cfg.Gemini.BaseURL,
			},
		})
	})
	if r.clientErr != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", r.clientErr)
	}
	return r.genAiClient, nil
}

func (r *geminiAIRepository) executeGeminiAIRequest(ctx context.Context, prompt string) (string, error) {
	genAiClient, err := r.client(ctx)
	if err != nil {
		return "", err
	}

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	if r.tokenLimiter != nil {
		tokenResp, err := genAiClient.Models.CountTokens(ctx, r.cfg.Gemini.Model, contents, nil)
		if err != nil {
			return "", fmt.Errorf("failed to count tokens: %w", err)
		}

		totalTokens := int(tokenResp.TotalTokens)
		r.logger.DebugContext(ctx, "Gemini token count", logger.IntField("total_tokens", totalTokens))

		if totalTokens > r.cfg.Gemini.MaxTokenPerMinute/2 {
			r.logger.WarnContext(ctx, "Prompt uses more than 50% of the token budget", logger.IntField("total_tokens", totalTokens))
		}
		if err := r.tokenLimiter.WaitN(ctx, totalTokens); err != nil {
			return "", fmt.Errorf("failed to wait for token limit: %w", err)
		}
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	r.logger.DebugContext(ctx, "Request Gemini API", logger.StringField("model", r.cfg.Gemini.Model), logger.IntField("prompt_length", len(prompt)))

	resp, err := genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, contents, nil)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to send request to Gemini API", logger.ErrorField(err), logger.StringField("model", r.cfg.Gemini.Model))
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content found in Gemini response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
