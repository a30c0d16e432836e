package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port                   int
	LogLevel               string
	LogPretty              bool
	CatalogPath            string // empty uses the embedded catalog
	CatalogRefreshSchedule string
	RedisAddr              string // empty keeps the catalog in memory
	RedisCatalogKey        string
	RateLimitCapacity      int
	RateLimitWindow        time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnvAsInt("PORT", 8080),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogPretty:              getEnvAsBool("LOG_PRETTY", false),
		CatalogPath:            getEnv("CATALOG_PATH", ""),
		CatalogRefreshSchedule: getEnv("CATALOG_REFRESH_SCHEDULE", "@every 6h"),
		RedisAddr:              getEnv("REDIS_ADDR", ""),
		RedisCatalogKey:        getEnv("REDIS_CATALOG_KEY", "mortgage:catalog:snapshot"),
		RateLimitCapacity:      getEnvAsInt("RATE_LIMIT_CAPACITY", 30),
		RateLimitWindow:        getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.CatalogRefreshSchedule == "" {
		return fmt.Errorf("CATALOG_REFRESH_SCHEDULE is required")
	}
	if c.RateLimitCapacity <= 0 {
		return fmt.Errorf("RATE_LIMIT_CAPACITY must be positive")
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
