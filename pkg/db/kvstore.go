package db

import (
	"context"
	"errors"
	"time"

	"github.com/angelmondragon/restroboost-backend/pkg/kv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one serialized collection row in kv_entries.
type KVEntry struct {
	EntryKey   string    `gorm:"column:entry_key;primaryKey"`
	EntryValue string    `gorm:"column:entry_value;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

// KVStore persists blobs as rows of kv_entries.
type KVStore struct {
	client *Client
	now    func() time.Time
}

var _ kv.Backend = (*KVStore)(nil)

func NewKVStore(client *Client) *KVStore {
	return &KVStore{client: client, now: time.Now}
}

// EnsureSchema creates kv_entries when migrations are not managed by goose.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	return s.client.DB().WithContext(ctx).AutoMigrate(&KVEntry{})
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.client.DB().WithContext(ctx).
		Where("entry_key = ?", key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(entry.EntryValue), nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{
		EntryKey:   key,
		EntryValue: string(value),
		UpdatedAt:  s.now().UTC(),
	}
	return s.client.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"entry_value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.client.DB().WithContext(ctx).
		Where("entry_key IN ?", keys).
		Delete(&KVEntry{}).Error
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
