package service

import (
	"context"
	"fmt"
	"time"

	"logitrack/internal/model"
)

// StatsService computes fleet-wide statistics on demand. Counts and fuel or
// distance aggregates come from the live registry; the alert count comes
// from the store. Nothing is cached.
type StatsService struct {
	registry *FleetRegistry
	alerts   AlertStore
}

// NewStatsService creates a stats service
func NewStatsService(registry *FleetRegistry, alerts AlertStore) *StatsService {
	return &StatsService{
		registry: registry,
		alerts:   alerts,
	}
}

// ComputeFleetStats returns a point-in-time aggregate of the fleet plus the
// number of alerts created since the start of the current UTC day
func (s *StatsService) ComputeFleetStats(ctx context.Context) (*model.FleetStats, error) {
	vehicles := s.registry.List()
	counts := s.registry.CountByStatus()

	var fuelSum, odometerSum float64
	for _, v := range vehicles {
		fuelSum += v.FuelLevel
		odometerSum += v.Odometer
	}

	avgFuel := 0.0
	if len(vehicles) > 0 {
		avgFuel = fuelSum / float64(len(vehicles))
	}

	alertsCount, err := s.alerts.CountSince(ctx, startOfUTCDay(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("count alerts: %w", err)
	}

	return &model.FleetStats{
		TotalVehicles:       len(vehicles),
		ActiveVehicles:      counts[model.VehicleStatusActive],
		IdleVehicles:        counts[model.VehicleStatusIdle],
		MaintenanceVehicles: counts[model.VehicleStatusMaintenance],
		AvgFuelLevel:        avgFuel,
		TotalDistanceToday:  odometerSum,
		AlertsCount:         alertsCount,
	}, nil
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
