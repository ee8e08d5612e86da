package service

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"logitrack/internal/model"
)

const (
	// SubjectFleetUpdate carries each tick's snapshot on the NATS bus
	SubjectFleetUpdate = "fleet.update"

	// simulated vehicle-time that elapses per tick, independent of the
	// wall-clock tick interval
	tickSeconds = 30.0

	snapshotCacheKey  = "fleet:snapshot:latest"
	snapshotCacheTTL  = 5 * time.Minute
	recentAlertsKey   = "fleet:alerts:recent"
	recentAlertsLimit = 99
)

// VehicleStore is the persistence surface the simulator writes vehicles through
type VehicleStore interface {
	Upsert(ctx context.Context, vehicle *model.Vehicle) error
	List(ctx context.Context) ([]model.Vehicle, error)
}

// AlertStore is the persistence surface for derived alerts
type AlertStore interface {
	BulkInsert(ctx context.Context, alerts []model.Alert) error
	List(ctx context.Context, limit int) ([]model.Alert, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// Broadcaster delivers a snapshot to all currently connected real-time
// subscribers, best effort
type Broadcaster interface {
	BroadcastSnapshot(snapshot *model.FleetSnapshot) error
}

// Simulator advances the fleet's telemetry on a fixed cadence, derives
// alerts from the updated metrics, persists both, and fans the resulting
// snapshot out to subscribers. It is the registry's single writer.
type Simulator struct {
	registry    *FleetRegistry
	vehicles    VehicleStore
	alerts      AlertStore
	broadcaster Broadcaster
	nats        *nats.Conn
	redis       *redis.Client
	interval    time.Duration
	rng         *rand.Rand

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulator creates a simulator. natsConn and redisClient may be nil;
// the corresponding fan-out paths are skipped.
func NewSimulator(registry *FleetRegistry, vehicles VehicleStore, alerts AlertStore, broadcaster Broadcaster, natsConn *nats.Conn, redisClient *redis.Client, interval time.Duration) *Simulator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Simulator{
		registry:    registry,
		vehicles:    vehicles,
		alerts:      alerts,
		broadcaster: broadcaster,
		nats:        natsConn,
		redis:       redisClient,
		interval:    interval,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

// Start seeds the fleet if needed and launches the tick loop
func (s *Simulator) Start() error {
	if err := s.Bootstrap(s.ctx); err != nil {
		return err
	}
	go s.run()
	log.Printf("[Simulator] Started, tick interval %s", s.interval)
	return nil
}

// Stop signals the tick loop and waits for the in-flight tick to complete
func (s *Simulator) Stop() {
	s.cancel()
	<-s.done
	log.Println("[Simulator] Stopped")
}

// seedVehicle is one entry of the fixed bootstrap fleet
type seedVehicle struct {
	name   string
	driver string
	lat    float64
	lng    float64
}

var seedFleet = []seedVehicle{
	{"Truck SP-001", "João Silva", -23.5505, -46.6333},
	{"Van SP-002", "Maria Santos", -23.5629, -46.6544},
	{"Truck SP-003", "Carlos Oliveira", -23.5489, -46.6388},
	{"Van SP-004", "Ana Costa", -23.5558, -46.6396},
	{"Truck SP-005", "Pedro Lima", -23.5475, -46.6361},
	{"Van SP-006", "Lucas Pereira", -23.5597, -46.6581},
	{"Truck SP-007", "Fernanda Rocha", -23.5534, -46.6418},
}

// Bootstrap populates an empty registry with the fixed seed fleet, writing
// each vehicle through the store before the first broadcast. Calling it on
// a non-empty registry is a no-op, so repeated calls never duplicate
// vehicles.
func (s *Simulator) Bootstrap(ctx context.Context) error {
	if s.registry.Len() > 0 {
		return nil
	}

	for _, seed := range seedFleet {
		v := model.NewVehicle(seed.name, seed.driver, seed.lat, seed.lng)
		v.Speed = s.uniform(20, 80)
		v.FuelLevel = s.uniform(30, 100)
		v.Odometer = s.uniform(50000, 200000)
		v.EngineHours = s.uniform(2000, 8000)
		if s.rng.Intn(2) == 0 {
			v.Status = model.VehicleStatusActive
		} else {
			v.Status = model.VehicleStatusIdle
		}

		if err := s.vehicles.Upsert(ctx, &v); err != nil {
			return err
		}
		s.registry.Put(v)
	}

	log.Printf("[Simulator] Bootstrapped fleet with %d vehicles", len(seedFleet))
	return nil
}

// run is the tick loop. The stop signal is only checked at loop boundaries,
// so an in-flight tick always completes.
func (s *Simulator) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

// tick advances every active vehicle, derives the tick's alert batch, and
// publishes a snapshot. Persistence failures are logged and never block the
// remaining vehicles or the broadcast.
func (s *Simulator) tick() {
	ctx := context.Background()
	var batch []model.Alert

	for _, v := range s.registry.List() {
		if v.Status != model.VehicleStatusActive {
			continue
		}

		v.Lat += s.uniform(-0.001, 0.001)
		v.Lng += s.uniform(-0.001, 0.001)
		v.Speed = clamp(v.Speed+s.uniform(-10, 15), 0, 120)
		v.FuelLevel = max(0, v.FuelLevel-s.uniform(0.1, 0.8))
		v.Odometer += v.Speed * (tickSeconds / 3600)
		v.EngineHours += tickSeconds / 3600
		v.LastUpdated = time.Now().UTC()

		batch = append(batch, EvaluateVehicleAlerts(&v)...)

		s.registry.Put(v)
		if err := s.vehicles.Upsert(ctx, &v); err != nil {
			log.Printf("[Simulator] Failed to persist vehicle %s: %v", v.ID, err)
		}
	}

	if len(batch) > 0 {
		if err := s.alerts.BulkInsert(ctx, batch); err != nil {
			log.Printf("[Simulator] Failed to persist alert batch: %v", err)
		} else {
			log.Printf("[Simulator] Generated %d new alerts", len(batch))
		}
	}

	if batch == nil {
		batch = []model.Alert{}
	}

	// Snapshot is published even when nothing changed; subscribers rely on
	// it as a heartbeat.
	snapshot := &model.FleetSnapshot{
		Vehicles:  s.registry.List(),
		Alerts:    batch,
		Timestamp: time.Now().UTC(),
	}
	s.publish(ctx, snapshot)
}

// publish fans a snapshot out to WebSocket subscribers, the NATS bus, and
// the Redis snapshot cache. Every path is best effort.
func (s *Simulator) publish(ctx context.Context, snapshot *model.FleetSnapshot) {
	if s.broadcaster != nil {
		if err := s.broadcaster.BroadcastSnapshot(snapshot); err != nil {
			log.Printf("[Simulator] Failed to broadcast snapshot: %v", err)
		}
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("[Simulator] Failed to marshal snapshot: %v", err)
		return
	}

	if s.nats != nil {
		if err := s.nats.Publish(SubjectFleetUpdate, data); err != nil {
			log.Printf("[Simulator] Failed to publish snapshot to NATS: %v", err)
		}
	}

	if s.redis != nil {
		s.cacheSnapshot(ctx, snapshot, data)
	}
}

// cacheSnapshot keeps the latest snapshot and a rolling window of recent
// alerts in Redis for pull-based consumers
func (s *Simulator) cacheSnapshot(ctx context.Context, snapshot *model.FleetSnapshot, data []byte) {
	if err := s.redis.Set(ctx, snapshotCacheKey, data, snapshotCacheTTL).Err(); err != nil {
		log.Printf("[Simulator] Failed to cache snapshot: %v", err)
		return
	}

	for _, alert := range snapshot.Alerts {
		alertData, err := json.Marshal(alert)
		if err != nil {
			continue
		}
		s.redis.LPush(ctx, recentAlertsKey, alertData)
	}
	if len(snapshot.Alerts) > 0 {
		s.redis.LTrim(ctx, recentAlertsKey, 0, recentAlertsLimit)
	}
}

// uniform returns a random float64 in [min, max)
func (s *Simulator) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
