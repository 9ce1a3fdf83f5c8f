package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// DailyBrief is the summarized news document stored under a single key.
// News keeps each element exactly as the model returned it.
type DailyBrief struct {
	UpdatedAt string            `json:"updatedAt"`
	News      []json.RawMessage `json:"news"`
}

// SummarizedItem is the shape the model is asked to produce for every news item.
type SummarizedItem struct {
	Title   string   `json:"title"`
	Link    string   `json:"link"`
	Summary string   `json:"summary"`
	Tickers []string `json:"tickers"`
}

// SummarizedItems decodes the stored elements that fit the SummarizedItem shape and skips the rest.
func (b *DailyBrief) SummarizedItems() []SummarizedItem {
	items := make([]SummarizedItem, 0, len(b.News))
	for _, raw := range b.News {
		var item SummarizedItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}

// KVEntry is a row of the Postgres-backed key-value store.
type KVEntry struct {
	Key       string         `gorm:"primaryKey;type:varchar(255)" json:"key"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the KVEntry model.
func (KVEntry) TableName() string {
	return "kv_entries"
}
