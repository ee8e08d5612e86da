package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"logitrack/internal/model"
)

// fakeVehicleStore is an in-memory VehicleStore
type fakeVehicleStore struct {
	mu       sync.Mutex
	records  map[string]model.Vehicle
	upserts  int
	listErr  error
	failByID map[string]bool
}

func newFakeVehicleStore() *fakeVehicleStore {
	return &fakeVehicleStore{
		records:  make(map[string]model.Vehicle),
		failByID: make(map[string]bool),
	}
}

func (f *fakeVehicleStore) Upsert(ctx context.Context, vehicle *model.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failByID[vehicle.ID] {
		return errors.New("write refused")
	}
	f.upserts++
	f.records[vehicle.ID] = *vehicle
	return nil
}

func (f *fakeVehicleStore) List(ctx context.Context) ([]model.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	vehicles := make([]model.Vehicle, 0, len(f.records))
	for _, v := range f.records {
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// fakeAlertStore is an in-memory AlertStore
type fakeAlertStore struct {
	mu        sync.Mutex
	alerts    []model.Alert
	inserts   int
	countErr  error
	lastSince time.Time
}

func newFakeAlertStore() *fakeAlertStore {
	return &fakeAlertStore{}
}

func (f *fakeAlertStore) BulkInsert(ctx context.Context, alerts []model.Alert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	f.alerts = append(f.alerts, alerts...)
	return nil
}

func (f *fakeAlertStore) List(ctx context.Context, limit int) ([]model.Alert, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	alerts := make([]model.Alert, len(f.alerts))
	copy(alerts, f.alerts)
	if limit > 0 && len(alerts) > limit {
		alerts = alerts[:limit]
	}
	return alerts, nil
}

func (f *fakeAlertStore) CountSince(ctx context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.lastSince = since
	var count int64
	for _, a := range f.alerts {
		if !a.Timestamp.Before(since) {
			count++
		}
	}
	return count, nil
}

// fakeRouteStore is an in-memory RouteStore
type fakeRouteStore struct {
	mu     sync.Mutex
	routes []model.Route
}

func (f *fakeRouteStore) Insert(ctx context.Context, route *model.Route) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = append(f.routes, *route)
	return nil
}

func (f *fakeRouteStore) List(ctx context.Context) ([]model.Route, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	routes := make([]model.Route, len(f.routes))
	copy(routes, f.routes)
	return routes, nil
}

// fakeBroadcaster records broadcast snapshots
type fakeBroadcaster struct {
	mu        sync.Mutex
	snapshots []*model.FleetSnapshot
}

func (f *fakeBroadcaster) BroadcastSnapshot(snapshot *model.FleetSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func (f *fakeBroadcaster) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snapshots)
}

func (f *fakeBroadcaster) last() *model.FleetSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snapshots) == 0 {
		return nil
	}
	return f.snapshots[len(f.snapshots)-1]
}
