package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVBlob is one stored collection. The value stays an opaque JSON blob:
// the database is used as a key-value store, not as a relational schema.
type KVBlob struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text;not null"`
}

func (KVBlob) TableName() string {
	return "kv_blobs"
}

// GormStore keeps the collections in a single key-value table. Used when
// DB_DSN is set; the layout is the same full-replace blob per key as the
// file backend.
type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects with retries, the database may still be coming
// up when the server starts.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("connect to db after %d attempts: %w", maxAttempts, err)
}

// NewGormStore migrates the blob table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KVBlob{}); err != nil {
		return nil, fmt.Errorf("migrate kv_blobs: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (gs *GormStore) Load(key string, v any) error {
	var blob KVBlob
	if err := gs.db.First(&blob, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal([]byte(blob.Value), v)
}

func (gs *GormStore) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	blob := KVBlob{Key: key, Value: string(data)}
	return gs.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&blob).Error
}

func (gs *GormStore) Delete(key string) error {
	return gs.db.Delete(&KVBlob{}, "key = ?", key).Error
}
