package server

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"logitrack/internal/config"
	"logitrack/internal/handler"
	"logitrack/internal/service"
	"logitrack/internal/store"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router    *gin.Engine
	config    *config.Config
	db        *gorm.DB
	redis     *redis.Client
	nats      *nats.Conn
	registry  *service.FleetRegistry
	simulator *service.Simulator
	wsHub     *handler.WSHub
	wsHandler *handler.WSHandler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, natsConn *nats.Conn) *Server {
	return &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		nats:     natsConn,
		registry: service.NewFleetRegistry(),
	}
}

// Setup initializes stores, services, handlers and routes
func (s *Server) Setup() {
	// Stores
	vehicleStore := store.NewVehicleStore(s.db)
	alertStore := store.NewAlertStore(s.db)
	routeStore := store.NewRouteStore(s.db)

	// WebSocket hub first: the simulator broadcasts through it
	s.wsHub = handler.NewWSHub()
	s.wsHandler = handler.NewWSHandler(s.wsHub, s.registry)

	// Services
	fleetService := service.NewFleetService(s.registry, vehicleStore, s.redis)
	routeService := service.NewRouteService(routeStore)
	statsService := service.NewStatsService(s.registry, alertStore)
	reportService := service.NewReportService(s.registry, alertStore)
	s.simulator = service.NewSimulator(s.registry, vehicleStore, alertStore, s.wsHub, s.nats, s.redis, s.config.TickInterval)

	// Handlers
	vehicleHandler := handler.NewVehicleHandler(fleetService)
	routeHandler := handler.NewRouteHandler(routeService)
	alertHandler := handler.NewAlertHandler(alertStore)
	statsHandler := handler.NewStatsHandler(statsService, fleetService)
	reportHandler := handler.NewReportHandler(reportService)

	// Start WebSocket hub in background
	go s.wsHub.Run()
	log.Println("[Server] WebSocket hub started")

	// Setup Gin router
	s.router = gin.Default()

	// CORS middleware
	corsOrigin := s.config.CORSOrigins
	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", corsOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Swagger UI
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":            "ok",
			"connected_clients": s.wsHub.GetClientCount(),
			"fleet_size":        s.registry.Len(),
		})
	})

	// WebSocket routes
	s.router.GET("/ws/fleet", s.wsHandler.HandleFleet)
	s.router.GET("/ws/stats", s.wsHandler.GetStats)

	// API routes
	api := s.router.Group("/api/v1")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{"message": "LogiTrack API - Fleet Management System"})
		})

		vehicleHandler.RegisterRoutes(api)
		routeHandler.RegisterRoutes(api)
		alertHandler.RegisterRoutes(api)
		statsHandler.RegisterRoutes(api)
		reportHandler.RegisterRoutes(api)
	}
}

// GetSimulator returns the fleet simulator for lifecycle management
func (s *Server) GetSimulator() *service.Simulator {
	return s.simulator
}

// GetRouter returns the gin router for testing
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Run starts the HTTP server
func (s *Server) Run(addr string) error {
	log.Printf("[Server] HTTP server listening on %s", addr)
	return s.router.Run(addr)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() {
	if s.simulator != nil {
		s.simulator.Stop()
		log.Println("[Server] Simulator stopped")
	}
	if s.wsHub != nil {
		s.wsHub.Stop()
		log.Println("[Server] WebSocket hub stopped")
	}
}
