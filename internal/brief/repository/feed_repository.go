package repository

import (
	"context"
	"fmt"
	"net/http"

	"golang-daily-brief/internal/brief/config"
	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/pkg/logger"
	"golang-daily-brief/pkg/utils"

	"github.com/mmcdole/gofeed"
)

// FeedRepository reads news items from RSS/Atom feeds.
type FeedRepository interface {
	FetchLatest(ctx context.Context, feedURL string, limit int) ([]dto.NewsItem, error)
}

type feedRepository struct {
	parser *gofeed.Parser
	logger *logger.Logger
}

// NewFeedRepository creates a FeedRepository backed by gofeed.
func NewFeedRepository(cfg *config.Config, log *logger.Logger) FeedRepository {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: cfg.Feed.Timeout}
	fp.UserAgent = cfg.Feed.UserAgent

	return &feedRepository{
		parser: fp,
		logger: log,
	}
}

// FetchLatest returns the first limit items of the feed in the feed's own order.
// Missing titles, links or dates come back as empty strings.
func (r *feedRepository) FetchLatest(ctx context.Context, feedURL string, limit int) ([]dto.NewsItem, error) {
	r.logger.InfoContext(ctx, "Processing RSS feed", logger.StringField("url", feedURL))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, fmt.Errorf("failed to parse RSS feed %s: %w", feedURL, err)
	}

	entries := feed.Items
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]dto.NewsItem, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			items = append(items, dto.NewsItem{})
			continue
		}
		items = append(items, dto.NewsItem{
			Title:         utils.CleanText(entry.Title),
			Link:          entry.Link,
			PublishedDate: entry.Published,
		})
	}

	r.logger.DebugContext(ctx, "Fetched RSS feed",
		logger.StringField("url", feedURL),
		logger.IntField("feed_items", len(feed.Items)),
		logger.IntField("taken", len(items)),
	)

	return items, nil
}
