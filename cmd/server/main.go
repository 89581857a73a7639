package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/loot-forge/internal/config"
	"github.com/KirkDiggler/loot-forge/internal/events"
	"github.com/KirkDiggler/loot-forge/internal/handlers/gateway"
	"github.com/KirkDiggler/loot-forge/internal/repositories/players"
	"github.com/KirkDiggler/loot-forge/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bus := events.NewBus()

	providerConfig := &services.ProviderConfig{
		Bus:  bus,
		Game: &cfg.Game,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis if an address is configured
	if cfg.Redis.Addr != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)

		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		// Test connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			cancel()
			log.Printf("Failed to connect to Redis: %v", pingErr)
			log.Println("Falling back to in-memory repository")
			redisClient = nil
		} else {
			cancel()
			log.Println("Successfully connected to Redis")

			providerConfig.PlayerRepository = players.NewRedisRepository(&players.RedisRepoConfig{
				Client: redisClient,
			})

			log.Println("Using Redis for persistence")
		}
	} else {
		log.Println("No Redis address configured, using in-memory repository")
	}

	serviceProvider := services.NewProvider(providerConfig)

	// Bridge client request events to the equipment ledger
	handler := gateway.NewHandler(&gateway.HandlerConfig{
		Ledger: serviceProvider.LedgerService,
		Bus:    bus,
	})
	handler.Register()

	// Restore all known players into the live ledger
	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := serviceProvider.LedgerService.RestoreAll(restoreCtx); err != nil {
		restoreCancel()
		log.Fatalf("Failed to restore player state: %v", err)
	}
	restoreCancel()

	log.Println("Equipment service is running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down")
	if redisClient != nil {
		if closeErr := redisClient.Close(); closeErr != nil {
			log.Printf("Failed to close Redis client: %v", closeErr)
		}
	}
}
