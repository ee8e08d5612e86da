package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"logitrack/internal/model"
)

// FleetService handles vehicle business logic for the control surface. It
// reads through the live registry and writes through the vehicle store.
type FleetService struct {
	registry *FleetRegistry
	vehicles VehicleStore
	redis    *redis.Client
}

// NewFleetService creates a fleet service. redisClient may be nil.
func NewFleetService(registry *FleetRegistry, vehicles VehicleStore, redisClient *redis.Client) *FleetService {
	return &FleetService{
		registry: registry,
		vehicles: vehicles,
		redis:    redisClient,
	}
}

// CreateVehicle registers a new vehicle: stationary, full tank, idle. The
// record is persisted before it becomes visible in the registry, so a failed
// write never leaves a phantom in-memory-only vehicle.
func (s *FleetService) CreateVehicle(ctx context.Context, req *model.CreateVehicleRequest) (*model.Vehicle, error) {
	vehicle := model.NewVehicle(req.Name, req.DriverName, req.Lat, req.Lng)

	if err := s.vehicles.Upsert(ctx, &vehicle); err != nil {
		return nil, fmt.Errorf("persist vehicle: %w", err)
	}
	s.registry.Put(vehicle)

	return &vehicle, nil
}

// ListVehicles returns the current registry. An empty registry is first
// repopulated from the store, preserving persisted field values, so
// subsequent calls are served from memory.
func (s *FleetService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	if s.registry.Len() == 0 {
		persisted, err := s.vehicles.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("reload vehicles: %w", err)
		}
		for _, v := range persisted {
			s.registry.Put(v)
		}
		if len(persisted) > 0 {
			log.Printf("[Fleet] Reloaded %d vehicles from store", len(persisted))
		}
	}

	return s.registry.List(), nil
}

// LatestSnapshot returns the most recently broadcast snapshot from the
// Redis cache, falling back to a fresh snapshot of the registry with an
// empty alert list.
func (s *FleetService) LatestSnapshot(ctx context.Context) (*model.FleetSnapshot, error) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, snapshotCacheKey).Bytes()
		if err == nil {
			var snapshot model.FleetSnapshot
			if err := json.Unmarshal(data, &snapshot); err == nil {
				return &snapshot, nil
			}
			log.Printf("[Fleet] Discarding corrupt cached snapshot: %v", err)
		}
	}

	return &model.FleetSnapshot{
		Vehicles:  s.registry.List(),
		Alerts:    []model.Alert{},
		Timestamp: time.Now().UTC(),
	}, nil
}
