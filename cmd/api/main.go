package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeuskitchen/backend/config"
	"github.com/zeuskitchen/backend/internal/api"
	"github.com/zeuskitchen/backend/internal/database"
	"github.com/zeuskitchen/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	deps := api.Dependencies{
		DB:        db,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
	}

	// Image storage is optional; without S3 the upload endpoint is absent.
	if s3Cfg, err := config.NewS3Config(context.Background()); err == nil {
		// Images are served straight from the bucket, so it needs the
		// public-read policy in place.
		if err := s3Cfg.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("Failed to apply S3 bucket policy: %v", err)
		}
		deps.S3 = s3Cfg
	} else {
		log.Printf("S3 not configured, image uploads disabled: %v", err)
	}

	srv := server.New(cfg, deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
