package service

import (
	"context"
	"fmt"
	"math"

	"logitrack/internal/model"
)

// kmPerDegree treats one degree of latitude or longitude as roughly 111 km.
// Route distances are planning estimates, not geodesics.
const kmPerDegree = 111.0

// minutesPerKm converts route distance into an estimated duration
const minutesPerKm = 2.0

// RouteStore is the persistence surface for routes
type RouteStore interface {
	Insert(ctx context.Context, route *model.Route) error
	List(ctx context.Context) ([]model.Route, error)
}

// RouteService creates and lists delivery routes
type RouteService struct {
	routes RouteStore
}

// NewRouteService creates a route service
func NewRouteService(routes RouteStore) *RouteService {
	return &RouteService{routes: routes}
}

// CreateRoute computes the route's total distance and estimated duration
// from its waypoints and persists it. Routes are immutable after creation.
func (s *RouteService) CreateRoute(ctx context.Context, req *model.CreateRouteRequest) (*model.Route, error) {
	if len(req.Waypoints) == 0 {
		return nil, fmt.Errorf("route requires at least one waypoint")
	}

	distance := totalDistance(req.Waypoints)
	route := model.NewRoute(req.Name, req.Waypoints, distance, distance*minutesPerKm)

	if err := s.routes.Insert(ctx, &route); err != nil {
		return nil, fmt.Errorf("persist route: %w", err)
	}

	return &route, nil
}

// ListRoutes returns every persisted route
func (s *RouteService) ListRoutes(ctx context.Context) ([]model.Route, error) {
	return s.routes.List(ctx)
}

// totalDistance sums pairwise planar distances between consecutive waypoints
func totalDistance(waypoints []model.Waypoint) float64 {
	var total float64
	for i := 0; i < len(waypoints)-1; i++ {
		a, b := waypoints[i], waypoints[i+1]
		total += math.Sqrt(math.Pow(b.Lat-a.Lat, 2)+math.Pow(b.Lng-a.Lng, 2)) * kmPerDegree
	}
	return total
}
