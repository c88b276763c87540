package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/mkryukov/personal-site-content/internal/api/http"
	"github.com/mkryukov/personal-site-content/internal/config"
	"github.com/mkryukov/personal-site-content/internal/scheduler"
	"github.com/mkryukov/personal-site-content/internal/store"
	"github.com/mkryukov/personal-site-content/internal/transport"
	"github.com/mkryukov/personal-site-content/internal/weather"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Transport chain for the upstream weather API; strategy availability
	// is detected once here, not per call.
	chain := transport.NewChain(cfg.HTTPTimeout)

	// Weather manager over the on-disk cache.
	cache := store.NewFileCache(cfg.WeatherCachePath)
	manager := weather.NewManager(cache, chain)

	// Optional cache-warming job.
	warmer := scheduler.New(manager, cfg.ProfileJSONPath, cfg.WarmInterval)
	if err := warmer.Start(); err != nil {
		log.Fatalf("failed to start cache warmer: %v", err)
	}
	defer warmer.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "personal-site-content",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "personal-site-content",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, cfg, manager)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
