package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	festmapHTTP "festmap/internal/controller/http"
	"festmap/internal/repo/persistent"
	"festmap/internal/usecase"
	"festmap/pkg/config"
	"festmap/pkg/logger"
	"festmap/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const version = "1.0.0"

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	// Initialize repositories
	likeRepo := persistent.NewLikeRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	locationRepo := persistent.NewLocationRepository(db)

	// Initialize usecases
	likeUseCase := usecase.NewLikeUseCase(likeRepo, redisClient, log)
	postUseCase := usecase.NewPostUseCase(postRepo, locationRepo, redisClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, log)
	locationUseCase := usecase.NewLocationUseCase(locationRepo, postRepo)

	// Initialize HTTP handlers
	likeHandler := festmapHTTP.NewLikeHandler(likeUseCase, log, cfg.IsProduction())
	postHandler := festmapHTTP.NewPostHandler(postUseCase, log, cfg.IsProduction())
	commentHandler := festmapHTTP.NewCommentHandler(commentUseCase, log, cfg.IsProduction())
	locationHandler := festmapHTTP.NewLocationHandler(locationUseCase, log, cfg.IsProduction())

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(middleware.RequestIDMiddleware())

	api := r.Group("/api")
	if redisClient != nil {
		api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimit, time.Minute))
	}

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "FestMap API server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	})

	// Likes
	api.GET("/likes/posts/:postId", likeHandler.GetPostLikes)
	api.POST("/likes/posts/:postId", likeHandler.AddLike)
	api.DELETE("/likes/posts/:postId", likeHandler.RemoveLike)
	api.GET("/likes/user/:userIdentifier", likeHandler.GetLikedPosts)

	// Posts
	api.GET("/posts", postHandler.ListPosts)
	api.POST("/posts", postHandler.CreatePost)
	api.GET("/posts/:id", postHandler.GetPost)
	api.DELETE("/posts/:id", postHandler.DeletePost)

	// Comments
	api.GET("/comments/posts/:postId", commentHandler.ListByPost)
	api.POST("/comments/posts/:postId", commentHandler.CreateComment)
	api.GET("/comments/posts/:postId/count", commentHandler.CountByPost)
	api.GET("/comments/user/:authorName", commentHandler.ListByAuthor)
	api.GET("/comments/:id", commentHandler.GetComment)
	api.DELETE("/comments/:id", commentHandler.DeleteComment)

	// Locations
	api.GET("/locations", locationHandler.ListLocations)
	api.GET("/locations/:id", locationHandler.GetLocation)
	api.GET("/locations/:id/posts", locationHandler.GetLocationPosts)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("FestMap API starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down FestMap API...")

	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection if it was initialized
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("FestMap API exited")
}
