package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertType classifies what triggered an alert
type AlertType string

const (
	AlertTypeSpeed          AlertType = "speed"
	AlertTypeFuel           AlertType = "fuel"
	AlertTypeMaintenance    AlertType = "maintenance"
	AlertTypeRouteDeviation AlertType = "route_deviation"
)

// AlertSeverity is ordered by increasing urgency
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a threshold breach derived from vehicle telemetry. Severity is
// fixed at creation time and never recomputed.
type Alert struct {
	ID        string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	VehicleID string        `json:"vehicle_id" gorm:"column:vehicle_id;type:varchar(36);not null;index"`
	Type      AlertType     `json:"type" gorm:"type:varchar(20);not null"`
	Message   string        `json:"message" gorm:"type:text"`
	Severity  AlertSeverity `json:"severity" gorm:"type:varchar(10);not null"`
	Timestamp time.Time     `json:"timestamp" gorm:"not null;index"`
	Resolved  bool          `json:"resolved" gorm:"not null;default:false"`
}

func (Alert) TableName() string {
	return "alerts"
}

// NewAlert stamps a new alert with id and current UTC time
func NewAlert(vehicleID string, alertType AlertType, message string, severity AlertSeverity) Alert {
	return Alert{
		ID:        uuid.NewString(),
		VehicleID: vehicleID,
		Type:      alertType,
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now().UTC(),
		Resolved:  false,
	}
}

// AlertListQuery filters the alert history endpoint
type AlertListQuery struct {
	Limit int `form:"limit,default=50"`
}
