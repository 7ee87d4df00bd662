package main // Entry point package

import (
	"context" // context cancellation for the background scanner
	"log"     // Logging library
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/restaurant-order-hub/internal/alert"      // kitchen overdue-item scanner
	"github.com/iliyamo/restaurant-order-hub/internal/config"     // Internal config loader
	"github.com/iliyamo/restaurant-order-hub/internal/handler"    // HTTP handlers
	"github.com/iliyamo/restaurant-order-hub/internal/hub"        // websocket broadcast hub
	"github.com/iliyamo/restaurant-order-hub/internal/middleware" // rate limiting middleware
	"github.com/iliyamo/restaurant-order-hub/internal/router"     // Internal router setup
	"github.com/iliyamo/restaurant-order-hub/internal/store"      // in-memory entity store and engines
)

func main() {
	if err := godotenv.Load(); err != nil { // Load .env if present
		log.Printf("no .env file loaded: %v", err) // Fine in production; env vars are already set
	}
	cfg := config.Load() // Load environment config

	broadcast := hub.New()     // Broadcast hub shared by all surfaces
	st := store.New(broadcast) // The single owner of all entity state
	if cfg.Env == "dev" {      // Demo data for local development only
		st.SeedDemo() // Default event, menu board and two tables
	}

	// Redis-backed rate limiting for the ordering surface; degrades to a
	// pass-through when redis is unreachable.
	rdb := config.NewRedisClient()
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}

	// The overdue-item scanner runs until shutdown; it only reads the
	// store, so it needs no coordination with the mutation path.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	scanner := alert.NewScanner(st, broadcast, 10*time.Second)
	go scanner.Run(ctx)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg.JWTSecret, cfg.AdminPassHash, cfg.AccessTTLMin),
		Menu:     handler.NewMenuHandler(st),
		Table:    handler.NewTableHandler(st),
		Session:  handler.NewSessionHandler(st),
		Order:    handler.NewOrderHandler(st),
		Payment:  handler.NewPaymentHandler(st),
		Event:    handler.NewEventHandler(st),
		Settings: handler.NewSettingsHandler(st),
	}, broadcast, cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
