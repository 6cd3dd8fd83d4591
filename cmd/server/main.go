// Package main is the entry point for the Bankee API server. It constructs
// every dependency explicitly, owns the database and cache lifecycles, and
// starts the HTTP server.
package main

import (
	"context"
	"log"
	"time"

	"bankee/internal/config"
	"bankee/internal/repositories"
	"bankee/internal/repositories/cache"
	"bankee/internal/routes"
	"bankee/internal/services/history"
	"bankee/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
)

func main() {
	config.LoadEnv()

	db, err := repositories.Connect(repositories.DBConfigFromEnv())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to database")

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	cacheService := cache.NewService(redisClient, 24*time.Hour)
	defer func() {
		if err := cacheService.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}()

	// Stale balances from a previous run must not survive a restart.
	if err := cacheService.FlushAll(context.Background()); err != nil {
		log.Printf("Failed to flush Redis cache: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	for _, path := range []string{"/api/register", "/api/login"} {
		app.Use(path, limiter.New(limiter.Config{
			Max:        5,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(429).JSON(fiber.Map{
					"error": "Too many requests. Please try again later.",
				})
			},
		}))
	}

	routes.Setup(app, routes.Deps{
		DB:             db,
		Cache:          cacheService,
		JWTSecret:      config.GetEnv("JWT_SECRET", "bankee-dev-secret"),
		OpeningBalance: config.GetDecimalEnv("OPENING_BALANCE", decimal.NewFromInt(1000)),
		Metrics:        ledger.NewPrometheusMetrics(),
		Feed:           history.NewFeed(),
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
