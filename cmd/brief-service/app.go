package main

import (
	"fmt"

	"golang-daily-brief/internal/brief/config"
	"golang-daily-brief/internal/brief/repository"
	"golang-daily-brief/internal/brief/service"
	"golang-daily-brief/pkg/common"
	"golang-daily-brief/pkg/logger"
	"golang-daily-brief/pkg/postgres"
	"golang-daily-brief/pkg/redis"
	"golang-daily-brief/pkg/telegram"
)

// newKVRepository opens the store selected by store.driver. The returned func releases its connections.
func newKVRepository(cfg *config.Config, appLogger *logger.Logger) (repository.KVRepository, func(), error) {
	switch cfg.Store.Driver {
	case common.StoreDriverRedis, "":
		redisClient, err := redis.NewClient(redis.Config{
			URL:      cfg.Redis.URL,
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		return repository.NewRedisKVRepository(redisClient.Client), func() { _ = redisClient.Close() }, nil

	case common.StoreDriverPostgres:
		db, err := postgres.NewDB(postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			TimeZone:        cfg.Database.TimeZone,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        cfg.Database.LogLevel,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		cleanup := func() {
			if sqlDB, err := db.DB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return repository.NewPostgresKVRepository(db.DB), cleanup, nil

	case common.StoreDriverMemory:
		appLogger.Warn("Using in-memory store, the brief is lost on restart")
		return repository.NewMemoryKVRepository(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// newNotifier returns nil when Telegram is disabled. A notifier that fails to start is logged and skipped.
func newNotifier(cfg *config.Config, appLogger *logger.Logger) telegram.Notifier {
	if !cfg.Telegram.Enabled {
		return nil
	}

	notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Error("Failed to initialize Telegram notifier, notifications disabled", logger.ErrorField(err))
		return nil
	}
	return notifier
}

// newBriefService wires the pipeline. The returned func releases the store.
func newBriefService(cfg *config.Config, appLogger *logger.Logger) (service.BriefService, func(), error) {
	kvRepo, cleanup, err := newKVRepository(cfg, appLogger)
	if err != nil {
		return nil, nil, err
	}

	feedRepo := repository.NewFeedRepository(cfg, appLogger)
	aiRepo := repository.NewGeminiAIRepository(cfg, appLogger)

	notifier := newNotifier(cfg, appLogger)

	return service.NewBriefService(cfg, appLogger, feedRepo, aiRepo, kvRepo, notifier), cleanup, nil
}
