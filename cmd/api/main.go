package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"logitrack/internal/config"
	"logitrack/internal/model"
	"logitrack/internal/server"

	_ "logitrack/docs"
)

// @title LogiTrack API
// @version 1.0
// @description LogiTrack - Fleet Management System API

// @host localhost:8000
// @BasePath /api/v1

func main() {
	log.Println("[API] Starting LogiTrack API Server...")

	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		log.Println("[API] Loaded .env file")
	}

	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[API] Failed to connect to database: %v", err)
	}
	log.Println("[API] Connected to database")

	// Auto migrate
	if err := autoMigrate(db); err != nil {
		log.Fatalf("[API] Failed to migrate database: %v", err)
	}
	log.Println("[API] Database migrated")

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("[API] Failed to connect to Redis: %v", err)
	}
	log.Println("[API] Connected to Redis")
	defer redisClient.Close()

	// Connect to NATS
	natsConn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		log.Fatalf("[API] Failed to connect to NATS: %v", err)
	}
	log.Println("[API] Connected to NATS")
	defer natsConn.Close()

	// Create and setup server
	srv := server.NewServer(cfg, db, redisClient, natsConn)
	srv.Setup()

	// Start NATS consumers for fleet bus messages
	go startNATSConsumers(natsConn)

	// Start the fleet simulator
	if err := srv.GetSimulator().Start(); err != nil {
		log.Fatalf("[API] Failed to start simulator: %v", err)
	}
	log.Println("[API] Simulator started")

	// Start HTTP server
	addr := fmt.Sprintf(":%d", cfg.APIPort)
	go func() {
		if err := srv.Run(addr); err != nil {
			log.Fatalf("[API] Failed to start server: %v", err)
		}
	}()

	log.Printf("[API] Server ready on %s", addr)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("[API] Shutting down...")

	// Graceful shutdown: the simulator finishes its in-flight tick first
	srv.Shutdown()
	log.Println("[API] Server stopped")
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Vehicle{},
		&model.Route{},
		&model.Alert{},
	)
}

func startNATSConsumers(nc *nats.Conn) {
	// Subscribe to all fleet bus messages for logging/debugging
	nc.Subscribe("fleet.>", func(msg *nats.Msg) {
		log.Printf("[NATS] %s: %d bytes", msg.Subject, len(msg.Data))
	})

	log.Println("[NATS] Consumers started")
}
