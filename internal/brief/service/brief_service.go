package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang-daily-brief/internal/brief/config"
	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/internal/brief/repository"
	"golang-daily-brief/internal/entity"
	"golang-daily-brief/pkg/common"
	"golang-daily-brief/pkg/logger"
	"golang-daily-brief/pkg/telegram"
	"golang-daily-brief/pkg/utils"
)

// ErrMissingAPIKey is returned before any network call when the Gemini key is not configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")

// BriefService runs the fetch -> summarize -> store pipeline and reads its result back.
type BriefService interface {
	UpdateDailyBrief(ctx context.Context) (*dto.UpdateResult, error)
	GetDailyBrief(ctx context.Context) (*entity.DailyBrief, error)
}

// NewBriefService creates a new BriefService. notifier may be nil.
func NewBriefService(
	cfg *config.Config,
	log *logger.Logger,
	feedRepo repository.FeedRepository,
	aiRepo repository.AIRepository,
	kvRepo repository.KVRepository,
	notifier telegram.Notifier,
) BriefService {
	return &briefService{
		cfg:      cfg,
		logger:   log,
		feedRepo: feedRepo,
		aiRepo:   aiRepo,
		kvRepo:   kvRepo,
		notifier: notifier,
		now:      utils.TimeNowUTC,
	}
}

type briefService struct {
	cfg      *config.Config
	logger   *logger.Logger
	feedRepo repository.FeedRepository
	aiRepo   repository.AIRepository
	kvRepo   repository.KVRepository
	notifier telegram.Notifier
	now      func() time.Time
}

// UpdateDailyBrief fetches every feed in order, summarizes all items in one model call and
// overwrites the stored brief. Any failure aborts the run and nothing is written.
func (s *briefService) UpdateDailyBrief(ctx context.Context) (*dto.UpdateResult, error) {
	if s.cfg.Gemini.APIKey == "" {
		s.logger.ErrorContext(ctx, "Gemini API key is missing")
		return nil, ErrMissingAPIKey
	}

	items, err := s.aggregateNews(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Summarizing news", logger.IntField("count", len(items)))
	rawText, err := s.aiRepo.SummarizeNews(ctx, items)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to summarize news", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to summarize news: %w", err)
	}

	news, err := repository.ParseSummarizedNews(rawText)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to parse summarized news", logger.ErrorField(err), logger.StringField("response", rawText))
		return nil, err
	}

	brief := entity.DailyBrief{
		UpdatedAt: utils.ISOTimestamp(s.now()),
		News:      news,
	}
	payload, err := json.Marshal(brief)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal daily brief: %w", err)
	}

	if err := s.kvRepo.Set(ctx, s.storeKey(), payload); err != nil {
		s.logger.ErrorContext(ctx, "Failed to store daily brief", logger.ErrorField(err), logger.StringField("key", s.storeKey()))
		return nil, fmt.Errorf("failed to store daily brief: %w", err)
	}

	s.logger.InfoContext(ctx, "Daily brief updated",
		logger.StringField("key", s.storeKey()),
		logger.IntField("count", len(news)),
		logger.StringField("updated_at", brief.UpdatedAt),
	)

	s.notify(ctx, &brief)

	return &dto.UpdateResult{
		UpdatedAt: brief.UpdatedAt,
		Count:     len(news),
	}, nil
}

// GetDailyBrief returns the stored brief, or repository.ErrKeyNotFound before the first run.
func (s *briefService) GetDailyBrief(ctx context.Context) (*entity.DailyBrief, error) {
	payload, err := s.kvRepo.Get(ctx, s.storeKey())
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "Failed to read daily brief", logger.ErrorField(err))
		return nil, fmt.Errorf("failed to read daily brief: %w", err)
	}

	var brief entity.DailyBrief
	if err := json.Unmarshal(payload, &brief); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily brief: %w", err)
	}
	return &brief, nil
}

func (s *briefService) aggregateNews(ctx context.Context) ([]dto.NewsItem, error) {
	limit := s.cfg.Feed.ItemsPerFeed
	if limit <= 0 {
		limit = common.ItemsPerFeed
	}

	var items []dto.NewsItem
	for _, feedURL := range s.cfg.Feed.URLs {
		feedItems, err := s.feedRepo.FetchLatest(ctx, feedURL, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch news: %w", err)
		}
		items = append(items, feedItems...)
	}

	return items, nil
}

func (s *briefService) storeKey() string {
	if s.cfg.Store.Key == "" {
		return common.DailyBriefKey
	}
	return s.cfg.Store.Key
}

func (s *briefService) notify(ctx context.Context, brief *entity.DailyBrief) {
	if s.notifier == nil {
		return
	}

	messages := telegram.FormatDailyBriefForTelegram(brief)
	if err := s.notifier.SendMessages(messages); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send Telegram notification", logger.ErrorField(err))
		return
	}
	s.logger.InfoContext(ctx, "Telegram notification sent", logger.IntField("parts", len(messages)))
}
