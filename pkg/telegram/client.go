package telegram

import (
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// partDelay keeps multi-part briefs under Telegram's per-chat rate.
const partDelay = 100 * time.Millisecond

// Notifier delivers formatted briefs to one chat.
type Notifier interface {
	// SendMessages sends every part in order. A failed part does not stop the rest;
	// all failures are returned joined.
	SendMessages(parts []string) error
}

type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	delay  time.Duration
}

// NewClient creates a Notifier for chatID. The token is checked against the Bot API right away.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	if chatID == 0 {
		return nil, errors.New("telegram chat id is not configured")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &client{
		bot:    bot,
		chatID: chatID,
		delay:  partDelay,
	}, nil
}

func (c *client) SendMessages(parts []string) error {
	var errs []error
	for i, text := range parts {
		if i > 0 {
			time.Sleep(c.delay)
		}

		msg := tgbotapi.NewMessage(c.chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		if _, err := c.bot.Send(msg); err != nil {
			errs = append(errs, fmt.Errorf("failed to send part %d/%d: %w", i+1, len(parts), err))
		}
	}
	return errors.Join(errs...)
}
