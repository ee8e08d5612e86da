package store

import (
	"context"

	"gorm.io/gorm"

	"logitrack/internal/model"
)

// RouteStore persists route records. Routes are immutable once created.
type RouteStore struct {
	db *gorm.DB
}

// NewRouteStore creates a route store
func NewRouteStore(db *gorm.DB) *RouteStore {
	return &RouteStore{db: db}
}

// Insert writes a new route record
func (s *RouteStore) Insert(ctx context.Context, route *model.Route) error {
	return s.db.WithContext(ctx).Create(route).Error
}

// List returns every persisted route
func (s *RouteStore) List(ctx context.Context) ([]model.Route, error) {
	var routes []model.Route
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}
