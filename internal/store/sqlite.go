package store

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var _ Store = (*Client)(nil) // Ensure Client implements Store

// Record is a single key-value row.
type Record struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null"`
	Value string
}

// Client wraps the gorm.DB instance.
type Client struct {
	db *gorm.DB
}

// New opens the database at path and performs migrations.
func New(path string) (*Client, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Read(key string) (string, bool, error) {
	var rec Record
	if err := c.db.Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	return rec.Value, true, nil
}

func (c *Client) Write(key, value string) error {
	rec := Record{Key: key, Value: value}
	err := c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write record %q: %w", key, err)
	}
	return nil
}

func (c *Client) Delete(key string) error {
	if err := c.db.Unscoped().Where("key = ?", key).Delete(&Record{}).Error; err != nil {
		return fmt.Errorf("failed to delete record %q: %w", key, err)
	}
	return nil
}
