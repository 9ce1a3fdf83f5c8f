package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-daily-brief/internal/entity"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewPostgresKVRepository creates a KVRepository backed by the kv_entries table.
func NewPostgresKVRepository(db *gorm.DB) KVRepository {
	return &postgresKVRepository{db: db}
}

type postgresKVRepository struct {
	db *gorm.DB
}

// Set upserts the row for key.
func (r *postgresKVRepository) Set(ctx context.Context, key string, value []byte) error {
	entry := entity.KVEntry{
		Key:   key,
		Value: datatypes.JSON(value),
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert kv entry %s: %w", key, err)
	}
	return nil
}

func (r *postgresKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var entry entity.KVEntry
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get kv entry %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}
