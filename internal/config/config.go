package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// Snapshot storage
	StorageBackend string // "file" or "postgres"
	SavePath       string // file backend: path to the save document
	SaveKey        string // storage key identifying the save slot

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Daily cycle poll interval for the background worker
	DailyPollInterval time.Duration

	DeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		Environment:    getEnv("ENVIRONMENT", "dev"),
		Version:        getEnv("VERSION", "dev"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageFile),
		SavePath:       getEnv("SAVE_PATH", "data/save.json"),
		SaveKey:        getEnv("SAVE_KEY", "CRYPTO_AUL_SAVE_V2"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBName:         getEnv("DB_NAME", "cryptoaul"),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", "data/deadletter.jsonl"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	pollStr := getEnv("DAILY_POLL_INTERVAL", "1m")
	poll, err := time.ParseDuration(pollStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_POLL_INTERVAL value: %w", err)
	}
	cfg.DailyPollInterval = poll

	if cfg.StorageBackend != StorageFile && cfg.StorageBackend != StoragePostgres {
		return nil, fmt.Errorf("invalid STORAGE_BACKEND value: %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
