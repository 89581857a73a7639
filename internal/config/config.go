package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Game  GameConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GameConfig holds gameplay tuning values
type GameConfig struct {
	MaxInventory    int
	StartingExalted int
	StartingChaos   int
	StartingDivine  int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Game: GameConfig{
			MaxInventory:    getEnvAsIntOrDefault("MAX_INVENTORY", 60),
			StartingExalted: getEnvAsIntOrDefault("STARTING_EXALTED", 5),
			StartingChaos:   getEnvAsIntOrDefault("STARTING_CHAOS", 10),
			StartingDivine:  getEnvAsIntOrDefault("STARTING_DIVINE", 3),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
