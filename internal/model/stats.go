package model

import "time"

// FleetStats is a point-in-time aggregate over the live fleet plus the
// day's persisted alert count.
type FleetStats struct {
	TotalVehicles       int     `json:"total_vehicles"`
	ActiveVehicles      int     `json:"active_vehicles"`
	IdleVehicles        int     `json:"idle_vehicles"`
	MaintenanceVehicles int     `json:"maintenance_vehicles"`
	AvgFuelLevel        float64 `json:"avg_fuel_level"`
	TotalDistanceToday  float64 `json:"total_distance_today"`
	AlertsCount         int64   `json:"alerts_count"`
}

// FleetSnapshot bundles the full fleet state with one tick's alert batch.
// It is broadcast to real-time subscribers and never persisted.
type FleetSnapshot struct {
	Vehicles  []Vehicle `json:"vehicles"`
	Alerts    []Alert   `json:"alerts"`
	Timestamp time.Time `json:"timestamp"`
}
