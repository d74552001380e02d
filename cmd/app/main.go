package main

import (
	"festmap/internal/app"
	"festmap/pkg/cache"
	"festmap/pkg/config"
	"festmap/pkg/database"
	"festmap/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           FestMap API
// @version         1.0
// @description     Map journal API for the campus festival: posts pinned to locations, comments, and like toggles.

// @contact.name   API Support

// @host      localhost:5000
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := database.Migrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		panic(err)
	}

	if err := database.SeedLocations(db); err != nil {
		log.Error("Failed to seed locations: %v", err)
		panic(err)
	}

	// Redis is optional: without it the API loses rate limiting and the
	// like-count cache but stays fully functional.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	app.Run(cfg, log, db, redisClient)
}
