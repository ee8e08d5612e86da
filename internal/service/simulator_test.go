package service

import (
	"context"
	"testing"
	"time"

	"logitrack/internal/model"
)

func newTestSimulator() (*Simulator, *fakeVehicleStore, *fakeAlertStore, *fakeBroadcaster) {
	registry := NewFleetRegistry()
	vehicles := newFakeVehicleStore()
	alerts := newFakeAlertStore()
	broadcaster := &fakeBroadcaster{}
	sim := NewSimulator(registry, vehicles, alerts, broadcaster, nil, nil, time.Hour)
	return sim, vehicles, alerts, broadcaster
}

func TestBootstrapSeedsSevenVehicles(t *testing.T) {
	sim, vehicles, _, _ := newTestSimulator()

	if err := sim.Bootstrap(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	if sim.registry.Len() != 7 {
		t.Fatalf("registry len = %d, want 7", sim.registry.Len())
	}
	if len(vehicles.records) != 7 {
		t.Fatalf("persisted %d vehicles, want 7", len(vehicles.records))
	}

	for _, v := range sim.registry.List() {
		if v.Speed < 20 || v.Speed > 80 {
			t.Errorf("%s speed = %v, want within [20, 80]", v.Name, v.Speed)
		}
		if v.FuelLevel < 30 || v.FuelLevel > 100 {
			t.Errorf("%s fuel = %v, want within [30, 100]", v.Name, v.FuelLevel)
		}
		if v.Odometer < 50000 || v.Odometer > 200000 {
			t.Errorf("%s odometer = %v, want within [50000, 200000]", v.Name, v.Odometer)
		}
		if v.EngineHours < 2000 || v.EngineHours > 8000 {
			t.Errorf("%s engine hours = %v, want within [2000, 8000]", v.Name, v.EngineHours)
		}
		if v.Status != model.VehicleStatusActive && v.Status != model.VehicleStatusIdle {
			t.Errorf("%s status = %s, want active or idle", v.Name, v.Status)
		}
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	sim, _, _, _ := newTestSimulator()

	if err := sim.Bootstrap(context.Background()); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	ids := make(map[string]bool)
	for _, v := range sim.registry.List() {
		ids[v.ID] = true
	}

	if err := sim.Bootstrap(context.Background()); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	if sim.registry.Len() != 7 {
		t.Fatalf("registry len after second bootstrap = %d, want 7", sim.registry.Len())
	}
	for _, v := range sim.registry.List() {
		if !ids[v.ID] {
			t.Errorf("unexpected new vehicle id %s after second bootstrap", v.ID)
		}
	}
}

func TestTickClampsSpeedAndFuel(t *testing.T) {
	sim, _, _, _ := newTestSimulator()

	// Extreme starting points: clamping must hold from any pre-tick value
	seeds := []model.Vehicle{
		{ID: "fast", Name: "fast", Speed: 119, FuelLevel: 0.2, Status: model.VehicleStatusActive},
		{ID: "slow", Name: "slow", Speed: 1, FuelLevel: 100, Status: model.VehicleStatusActive},
		{ID: "dry", Name: "dry", Speed: 60, FuelLevel: 0, Status: model.VehicleStatusActive},
	}
	for _, v := range seeds {
		sim.registry.Put(v)
	}

	for i := 0; i < 200; i++ {
		sim.tick()
		for _, v := range sim.registry.List() {
			if v.Speed < 0 || v.Speed > 120 {
				t.Fatalf("tick %d: %s speed = %v, outside [0, 120]", i, v.ID, v.Speed)
			}
			if v.FuelLevel < 0 || v.FuelLevel > 100 {
				t.Fatalf("tick %d: %s fuel = %v, outside [0, 100]", i, v.ID, v.FuelLevel)
			}
		}
	}
}

func TestTickAccumulatorsNeverDecrease(t *testing.T) {
	sim, _, _, _ := newTestSimulator()
	sim.registry.Put(model.Vehicle{ID: "v-1", Name: "v-1", Speed: 60, FuelLevel: 90, Odometer: 1000, EngineHours: 100, Status: model.VehicleStatusActive})

	prevOdometer, prevHours := 1000.0, 100.0
	for i := 0; i < 50; i++ {
		sim.tick()
		v, _ := sim.registry.Get("v-1")
		if v.Odometer < prevOdometer {
			t.Fatalf("tick %d: odometer decreased from %v to %v", i, prevOdometer, v.Odometer)
		}
		if v.EngineHours <= prevHours {
			t.Fatalf("tick %d: engine hours did not advance from %v", i, prevHours)
		}
		prevOdometer, prevHours = v.Odometer, v.EngineHours
	}
}

func TestTickLeavesInactiveVehiclesUntouched(t *testing.T) {
	sim, vehicles, _, _ := newTestSimulator()

	idle := model.Vehicle{ID: "idle", Name: "idle", Speed: 40, FuelLevel: 70, Status: model.VehicleStatusIdle}
	maint := model.Vehicle{ID: "maint", Name: "maint", Speed: 0, FuelLevel: 55, Status: model.VehicleStatusMaintenance}
	sim.registry.Put(idle)
	sim.registry.Put(maint)

	sim.tick()

	got, _ := sim.registry.Get("idle")
	if got != idle {
		t.Errorf("idle vehicle changed: %+v", got)
	}
	got, _ = sim.registry.Get("maint")
	if got != maint {
		t.Errorf("maintenance vehicle changed: %+v", got)
	}
	if vehicles.upserts != 0 {
		t.Errorf("inactive vehicles were persisted %d times", vehicles.upserts)
	}
}

func TestTickBroadcastsEvenWithoutActivity(t *testing.T) {
	sim, _, _, broadcaster := newTestSimulator()

	// Empty registry: the snapshot doubles as a heartbeat
	sim.tick()
	if broadcaster.count() != 1 {
		t.Fatalf("broadcasts = %d, want 1", broadcaster.count())
	}

	snap := broadcaster.last()
	if len(snap.Vehicles) != 0 || len(snap.Alerts) != 0 {
		t.Errorf("expected empty snapshot, got %d vehicles, %d alerts", len(snap.Vehicles), len(snap.Alerts))
	}
	if snap.Timestamp.IsZero() {
		t.Error("snapshot timestamp not set")
	}
}

func TestTickPersistsAlertBatchOnce(t *testing.T) {
	sim, _, alerts, broadcaster := newTestSimulator()

	// Fuel at 3%: the low-fuel and emergency rules both fire every tick
	sim.registry.Put(model.Vehicle{ID: "v-1", Name: "v-1", Speed: 10, FuelLevel: 3.5, Status: model.VehicleStatusActive})

	sim.tick()

	if alerts.inserts != 1 {
		t.Fatalf("bulk inserts = %d, want 1", alerts.inserts)
	}
	if len(alerts.alerts) != 2 {
		t.Fatalf("persisted alerts = %d, want 2", len(alerts.alerts))
	}
	if got := len(broadcaster.last().Alerts); got != 2 {
		t.Errorf("broadcast alerts = %d, want 2", got)
	}
}

func TestTickContinuesPastWriteFailure(t *testing.T) {
	sim, vehicles, _, broadcaster := newTestSimulator()

	vehicles.failByID["bad"] = true
	sim.registry.Put(model.Vehicle{ID: "bad", Name: "bad", Speed: 50, FuelLevel: 90, Status: model.VehicleStatusActive})
	sim.registry.Put(model.Vehicle{ID: "good", Name: "good", Speed: 50, FuelLevel: 90, Status: model.VehicleStatusActive})

	sim.tick()

	if _, ok := vehicles.records["good"]; !ok {
		t.Error("healthy vehicle was not persisted after a failed write")
	}
	if broadcaster.count() != 1 {
		t.Errorf("broadcasts = %d, want 1 despite write failure", broadcaster.count())
	}
	// The registry stays authoritative for the failed vehicle
	if _, ok := sim.registry.Get("bad"); !ok {
		t.Error("failed vehicle missing from registry")
	}
}

func TestStartStopCompletesInFlightTick(t *testing.T) {
	registry := NewFleetRegistry()
	vehicles := newFakeVehicleStore()
	alerts := newFakeAlertStore()
	broadcaster := &fakeBroadcaster{}
	sim := NewSimulator(registry, vehicles, alerts, broadcaster, nil, nil, 10*time.Millisecond)

	if err := sim.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Let a few ticks run, then stop; Stop must not return before the
	// loop has exited.
	time.Sleep(50 * time.Millisecond)
	sim.Stop()

	count := broadcaster.count()
	if count == 0 {
		t.Fatal("no ticks ran before stop")
	}
	time.Sleep(30 * time.Millisecond)
	if broadcaster.count() != count {
		t.Error("tick loop kept running after Stop returned")
	}
}
