package service

import (
	"sync"

	"logitrack/internal/model"
)

// FleetRegistry is the authoritative in-memory view of the fleet. The
// simulation tick loop is its only steady-state writer; control-surface
// creation requests also write, but always as a whole-record Put, so
// readers never observe a half-applied update.
type FleetRegistry struct {
	mu       sync.RWMutex
	vehicles map[string]model.Vehicle
}

// NewFleetRegistry creates an empty registry
func NewFleetRegistry() *FleetRegistry {
	return &FleetRegistry{
		vehicles: make(map[string]model.Vehicle),
	}
}

// Put replaces the record for the vehicle's id with a copy
func (r *FleetRegistry) Put(vehicle model.Vehicle) {
	r.mu.Lock()
	r.vehicles[vehicle.ID] = vehicle
	r.mu.Unlock()
}

// Get returns a copy of the vehicle record, if present
func (r *FleetRegistry) Get(id string) (model.Vehicle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vehicles[id]
	return v, ok
}

// List returns copies of all vehicle records
func (r *FleetRegistry) List() []model.Vehicle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vehicles := make([]model.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		vehicles = append(vehicles, v)
	}
	return vehicles
}

// Len returns the number of registered vehicles
func (r *FleetRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.vehicles)
}

// CountByStatus returns the number of vehicles per status
func (r *FleetRegistry) CountByStatus() map[model.VehicleStatus]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[model.VehicleStatus]int)
	for _, v := range r.vehicles {
		counts[v.Status]++
	}
	return counts
}
