package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Waypoint is a single lat/lng point on a route
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Waypoints is stored as a JSONB column
type Waypoints []Waypoint

func (w Waypoints) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *Waypoints) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, w)
	case string:
		return json.Unmarshal([]byte(v), w)
	default:
		return fmt.Errorf("unsupported waypoints column type %T", value)
	}
}

// Route is an ordered sequence of waypoints, immutable after creation
type Route struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Waypoints     Waypoints `json:"waypoints" gorm:"type:jsonb;not null"`
	TotalDistance float64   `json:"total_distance"` // km
	EstimatedTime float64   `json:"estimated_time"` // minutes
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;not null"`
}

func (Route) TableName() string {
	return "routes"
}

// NewRoute creates a route with computed distance and duration
func NewRoute(name string, waypoints Waypoints, totalDistance, estimatedTime float64) Route {
	return Route{
		ID:            uuid.NewString(),
		Name:          name,
		Waypoints:     waypoints,
		TotalDistance: totalDistance,
		EstimatedTime: estimatedTime,
		CreatedAt:     time.Now().UTC(),
	}
}

// CreateRouteRequest is the payload for creating a route
type CreateRouteRequest struct {
	Name      string     `json:"name" binding:"required"`
	Waypoints []Waypoint `json:"waypoints" binding:"required,min=1"`
}
