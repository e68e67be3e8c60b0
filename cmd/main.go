package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"roam/internal/api"
	"roam/internal/config"
	"roam/internal/db"
	"roam/internal/services"
	"roam/internal/utils"
	"roam/internal/utils/logger"
)

func main() {
	logger := logger.New("roam")

	// check if .env file exists
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		logger.Info("No .env file found, skipping environment variable loading")
	} else {
		logger.Info("Loading environment variables from .env file")
		if err := godotenv.Load(); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := db.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Watch the connection pool
	db.MonitorConnection(10 * time.Minute)

	// Initialize S3 service
	s3Service, err := services.NewS3Service(
		cfg.Storage.S3.Bucket,
		cfg.Storage.S3.Endpoint,
		cfg.Storage.S3.Region,
		cfg.Storage.S3.AccessKey,
		cfg.Storage.S3.SecretKey,
	)
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Initialize mail + OTP services
	mailer := utils.NewEmailHandler(cfg.SMTP)
	otpService := services.NewOTPService(mailer, cfg.JWT.Secret)

	// Initialize tour store
	tourStore := services.NewMongoTourStore(db.GetDatabase())

	// Initialize API server
	apiServer := api.NewServer(cfg, api.Dependencies{
		Tours:    tourStore,
		Uploader: s3Service,
		OTP:      otpService,
	})

	go func() {
		logger.Success("API server starting on port %d", cfg.Server.Port)
		if err := apiServer.Start(); err != nil {
			logger.Error("API server error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown API server", err)
	}

	logger.Info("Server shutdown gracefully")
}
