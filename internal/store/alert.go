package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"logitrack/internal/model"
)

// AlertStore persists alert records
type AlertStore struct {
	db *gorm.DB
}

// NewAlertStore creates an alert store
func NewAlertStore(db *gorm.DB) *AlertStore {
	return &AlertStore{db: db}
}

// BulkInsert writes a tick's alert batch in one statement
func (s *AlertStore) BulkInsert(ctx context.Context, alerts []model.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&alerts).Error
}

// List returns the most recent alerts, newest first
func (s *AlertStore) List(ctx context.Context, limit int) ([]model.Alert, error) {
	var alerts []model.Alert
	query := s.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// CountSince counts alerts created at or after the given time
func (s *AlertStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Alert{}).
		Where("timestamp >= ?", since).
		Count(&count).Error
	return count, err
}
