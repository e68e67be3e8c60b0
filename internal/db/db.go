package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"roam/internal/config"
	"roam/internal/utils/logger"
)

var (
	client   *mongo.Client
	database *mongo.Database

	log = logger.New("db")
)

// Connect establishes the MongoDB connection and verifies it with a ping.
func Connect(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Mongo.URI)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database = client.Database(cfg.Mongo.Database)
	log.Success("Connected to MongoDB database %q", cfg.Mongo.Database)
	return nil
}

func Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// GetDatabase returns the connected database handle. Connect must have
// succeeded first.
func GetDatabase() *mongo.Database {
	return database
}

// MonitorConnection pings the server on the given interval and logs
// failures. Runs until the process exits.
func MonitorConnection(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				log.Error("MongoDB ping failed", err)
			}
			cancel()
		}
	}()
}

// Ping verifies the connection, for health checks.
func Ping(ctx context.Context) error {
	return client.Ping(ctx, readpref.Primary())
}
