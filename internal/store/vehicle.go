package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"logitrack/internal/model"
)

// VehicleStore persists vehicle records keyed by id
type VehicleStore struct {
	db *gorm.DB
}

// NewVehicleStore creates a vehicle store
func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// Upsert inserts or fully replaces the vehicle record with the same id
func (s *VehicleStore) Upsert(ctx context.Context, vehicle *model.Vehicle) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(vehicle).Error
}

// List returns every persisted vehicle
func (s *VehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := s.db.WithContext(ctx).Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}
