package config

import (
	"time"

	"golang-daily-brief/pkg/common"
	"golang-daily-brief/pkg/config"
)

// Cron holds the shared secret that authorizes job triggers.
type Cron struct {
	Secret string `mapstructure:"secret"`
}

// Feed holds the RSS sources, fetched in order. A zero Timeout means no client-side limit.
type Feed struct {
	URLs         []string      `mapstructure:"urls"`
	ItemsPerFeed int           `mapstructure:"items_per_feed"`
	Timeout      time.Duration `mapstructure:"timeout"`
	UserAgent    string        `mapstructure:"user_agent"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	BaseURL             string `mapstructure:"base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Summary controls the prompt sent to the model.
type Summary struct {
	Language string `mapstructure:"language"`
}

// Store selects and addresses the key-value backend.
type Store struct {
	Driver string `mapstructure:"driver"`
	Key    string `mapstructure:"key"`
}

// Telegram holds configuration for the optional brief notification.
type Telegram struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the brief service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	API      config.API      `mapstructure:"api"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	Cron     Cron            `mapstructure:"cron"`
	Feed     Feed            `mapstructure:"feed"`
	Gemini   Gemini          `mapstructure:"gemini"`
	Summary  Summary         `mapstructure:"summary"`
	Store    Store           `mapstructure:"store"`
	Telegram Telegram        `mapstructure:"telegram"`
}

// Defaults lists every key with its fallback so each one can also be supplied through the environment.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                      "daily-brief",
		"app.env":                       "development",
		"app.version":                   "1.0.0",
		"logger.level":                  "info",
		"logger.encoding":               "json",
		"api.host":                      "",
		"api.port":                      8080,
		"database.host":                 "localhost",
		"database.port":                 5432,
		"database.user":                 "",
		"database.password":             "",
		"database.name":                 "",
		"database.ssl_mode":             "disable",
		"database.time_zone":            "UTC",
		"database.max_idle_conns":       2,
		"database.max_open_conns":       5,
		"database.conn_max_lifetime":    "30m",
		"database.log_level":            "warn",
		"redis.url":                     "",
		"redis.host":                    "localhost",
		"redis.port":                    6379,
		"redis.password":                "",
		"redis.db":                      0,
		"redis.pool_size":               5,
		"cron.secret":                   "",
		"feed.urls":                     common.DefaultFeedURLs,
		"feed.items_per_feed":           common.ItemsPerFeed,
		"feed.timeout":                  time.Duration(0),
		"feed.user_agent":               "Mozilla/5.0 (compatible; DailyBrief/1.0)",
		"gemini.api_key":                "",
		"gemini.model":                  common.DefaultGeminiModel,
		"gemini.base_url":               "",
		"gemini.max_request_per_minute": 15,
		"gemini.max_token_per_minute":   1000000,
		"summary.language":              common.DefaultSummaryLanguage,
		"store.driver":                  common.StoreDriverRedis,
		"store.key":                     common.DailyBriefKey,
		"telegram.enabled":              false,
		"telegram.bot_token":            "",
		"telegram.chat_id":              0,
	}
}

// Load loads the brief configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.LoadWithDefaults(path, Defaults(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
