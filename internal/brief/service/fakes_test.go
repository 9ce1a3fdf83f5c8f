package service

import (
	"context"
	"sync"

	"golang-daily-brief/internal/brief/dto"
	"golang-daily-brief/internal/brief/repository"
)

type fakeFeedRepository struct {
	feeds  map[string][]dto.NewsItem
	errs   map[string]error
	called []string
}

func (f *fakeFeedRepository) FetchLatest(_ context.Context, feedURL string, limit int) ([]dto.NewsItem, error) {
	f.called = append(f.called, feedURL)
	if err := f.errs[feedURL]; err != nil {
		return nil, err
	}
	items := f.feeds[feedURL]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type fakeAIRepository struct {
	response string
	err      error
	received []dto.NewsItem
	calls    int
}

func (f *fakeAIRepository) SummarizeNews(_ context.Context, items []dto.NewsItem) (string, error) {
	f.calls++
	f.received = items
	return f.response, f.err
}

type fakeKVRepository struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error
	sets   int
}

func newFakeKVRepository() *fakeKVRepository {
	return &fakeKVRepository{data: make(map[string][]byte)}
}

func (f *fakeKVRepository) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeKVRepository) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}
	return value, nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendMessages(parts []string) error {
	f.messages = append(f.messages, parts...)
	return f.err
}
