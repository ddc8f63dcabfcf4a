package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database configuration
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Seeding configuration
	Seeding SeedingConfig
}

// SeedingConfig holds seeding and verification parameters
type SeedingConfig struct {
	// Actor is recorded in added_by and updated_by on seeded rows
	Actor string

	// WeightTolerance is the allowed drift of a group's weight total from
	// 1.0 before verification flags it. Rounding to 3 decimals can move a
	// total by roughly a thousandth, so the default leaves room for that.
	WeightTolerance float64

	// CacheEnabled controls whether seeding results are mirrored to Redis
	CacheEnabled bool

	// CacheTTLMinutes is how long mirrored watchlist data stays cached
	CacheTTLMinutes int
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Database configuration
		DatabaseHost:     getEnvOrDefault("DB_HOST", "localhost"),
		DatabasePort:     getEnvOrDefault("DB_PORT", "5432"),
		DatabaseName:     getEnvOrDefault("DB_NAME", "valuation"),
		DatabaseUser:     getEnvOrDefault("DB_USER", "valuation"),
		DatabasePassword: getEnvOrDefault("DB_PASSWORD", "valuation123"),
		DatabaseSSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),

		// Redis configuration
		RedisHost:     getEnvOrDefault("REDIS_HOST", "localhost"),
		RedisPort:     getEnvOrDefault("REDIS_PORT", "6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),

		// Seeding configuration
		Seeding: SeedingConfig{
			Actor:           getEnvOrDefault("SEED_ACTOR", "seeder"),
			WeightTolerance: getEnvFloat("SEED_WEIGHT_TOLERANCE", 0.002),
			CacheEnabled:    getEnvOrDefault("SEED_CACHE_ENABLED", "true") == "true",
			CacheTTLMinutes: getEnvInt("SEED_CACHE_TTL_MINUTES", 360),
		},
	}
}

// getEnvInt gets environment variable as int or returns default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	if _, err := fmt.Sscanf(value, "%d", &intValue); err != nil {
		return defaultValue
	}
	return intValue
}

// getEnvFloat gets environment variable as float64 or returns default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var floatValue float64
	if _, err := fmt.Sscanf(value, "%f", &floatValue); err != nil {
		return defaultValue
	}
	return floatValue
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
