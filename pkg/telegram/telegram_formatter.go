package telegram

import (
	"fmt"
	"html"
	"strings"

	"golang-daily-brief/internal/entity"
)

const maxMessageLength = 4090

// Per-field caps keep one escaped entry well under maxMessageLength even in the worst case
// of five bytes per rune after escaping.
const (
	maxTitleRunes   = 150
	maxSummaryRunes = 300
	maxTickerRunes  = 80
	maxLinkBytes    = 200
)

// FormatDailyBriefForTelegram renders the brief as HTML messages, splitting it so that no
// message exceeds Telegram's length limit. Elements that do not look like a summarized item are left out.
func FormatDailyBriefForTelegram(brief *entity.DailyBrief) []string {
	items := brief.SummarizedItems()
	if len(items) == 0 {
		return []string{"📰 <b>Daily Market Brief</b>\n\nNo news in today's brief."}
	}

	var (
		messages       []string
		currentMessage strings.Builder
	)
	part := 1

	startNewPart := func() {
		currentMessage.Reset()
		if part == 1 {
			fmt.Fprintf(&currentMessage, "📰 <b>Daily Market Brief</b>\n<i>%s</i>\n\n", html.EscapeString(brief.UpdatedAt))
		} else {
			fmt.Fprintf(&currentMessage, "📰 <b>Daily Market Brief (part %d)</b>\n\n", part)
		}
	}
	startNewPart()
	entries := 0

	for i, item := range items {
		entry := formatItem(i+1, item)

		if entries > 0 && currentMessage.Len()+len(entry) > maxMessageLength {
			messages = append(messages, currentMessage.String())
			part++
			startNewPart()
			entries = 0
		}
		currentMessage.WriteString(entry)
		entries++
	}

	messages = append(messages, currentMessage.String())
	return messages
}

func formatItem(n int, item entity.SummarizedItem) string {
	var b strings.Builder

	title := html.EscapeString(truncate(item.Title, maxTitleRunes))
	if title == "" {
		title = "(untitled)"
	}
	if item.Link != "" && len(item.Link) <= maxLinkBytes {
		fmt.Fprintf(&b, "%d. <a href=\"%s\">%s</a>\n", n, html.EscapeString(item.Link), title)
	} else {
		fmt.Fprintf(&b, "%d. %s\n", n, title)
	}

	if item.Summary != "" {
		fmt.Fprintf(&b, "💬 %s\n", html.EscapeString(truncate(item.Summary, maxSummaryRunes)))
	}
	if len(item.Tickers) > 0 {
		fmt.Fprintf(&b, "🏷 <code>%s</code>\n", html.EscapeString(truncate(strings.Join(item.Tickers, ", "), maxTickerRunes)))
	}
	b.WriteString("\n")

	return b.String()
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
