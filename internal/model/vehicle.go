package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleStatus is the operational state of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusIdle        VehicleStatus = "idle"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle represents one tracked fleet vehicle
type Vehicle struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string        `json:"name" gorm:"type:varchar(100);not null"`
	DriverName  string        `json:"driver_name" gorm:"column:driver_name;type:varchar(100);not null"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
	Speed       float64       `json:"speed"`      // km/h, clamped to [0, 120]
	FuelLevel   float64       `json:"fuel_level"` // percentage, clamped to [0, 100]
	Status      VehicleStatus `json:"status" gorm:"type:varchar(20);not null;default:'idle';index"`
	RouteID     *string       `json:"route_id,omitempty" gorm:"column:route_id;type:varchar(36)"`
	Odometer    float64       `json:"odometer"`     // cumulative km, never decreases
	EngineHours float64       `json:"engine_hours"` // cumulative hours, never decreases
	LastUpdated time.Time     `json:"last_updated" gorm:"column:last_updated;not null"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle creates a vehicle in its initial state: stationary, full tank, idle.
func NewVehicle(name, driverName string, lat, lng float64) Vehicle {
	return Vehicle{
		ID:          uuid.NewString(),
		Name:        name,
		DriverName:  driverName,
		Lat:         lat,
		Lng:         lng,
		Speed:       0,
		FuelLevel:   100,
		Status:      VehicleStatusIdle,
		LastUpdated: time.Now().UTC(),
	}
}

// CreateVehicleRequest is the payload for registering a new vehicle
type CreateVehicleRequest struct {
	Name       string  `json:"name" binding:"required"`
	DriverName string  `json:"driver_name" binding:"required"`
	Lat        float64 `json:"lat" binding:"min=-90,max=90"`
	Lng        float64 `json:"lng" binding:"min=-180,max=180"`
}
