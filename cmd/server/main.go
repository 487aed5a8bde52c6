package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Load variables from a .env file when present
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/eventzone/eventzone-web/internal/backend"    // EventZone backend client
	"github.com/eventzone/eventzone-web/internal/config"     // Internal config loader
	"github.com/eventzone/eventzone-web/internal/draft"      // Draft and snapshot store
	"github.com/eventzone/eventzone-web/internal/handler"    // HTTP handlers
	"github.com/eventzone/eventzone-web/internal/middleware" // Session, cache and rate-limit middleware
	"github.com/eventzone/eventzone-web/internal/model"      // Role constants
	"github.com/eventzone/eventzone-web/internal/router"     // Route dispatch table
)

func main() {
	_ = godotenv.Load() // A missing .env file is fine in containers

	cfg := config.Load() // Load environment config

	rdb := config.NewRedisClient() // May be nil; every consumer degrades gracefully
	if rdb == nil {
		log.Println("redis unavailable: drafts stay in memory, cache and rate limit disabled")
	}

	api := backend.New(cfg.BackendBaseURL, cfg.BackendTimeout) // EventZone backend client
	drafts := draft.NewStore(rdb, cfg.DraftTTL)                // Event drafts and profile snapshots

	mw := router.Middlewares{
		Session:   middleware.Session(cfg.JWTSecret),
		SoloAdmin: middleware.RequireRol(model.RolAdmin),
		Cache:     middleware.ListingCache(config.LoadCacheConfig(), rdb),
		RateLimit: middleware.AuthRateLimit(config.LoadRateLimitConfig(), rdb),
	}

	table := router.Nueva(
		handler.NewAuthHandler(cfg, api),
		handler.NewAdminHandler(cfg, api),
		handler.NewEventosHandler(cfg, api, drafts),
		handler.NewPerfilHandler(cfg, api, drafts),
		mw,
	)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	table.Register(e)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, backend=%s)", addr, cfg.Env, cfg.BackendBaseURL)

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
