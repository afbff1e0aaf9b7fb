package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultTableName is used when TABLE_NAME is not configured
const DefaultTableName = "AyaCleaningServiceRequests"

// Storage backends
const (
	StorageBackendDynamoDB = "dynamodb"
	StorageBackendSQLite   = "sqlite"
	StorageBackendMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Storage     StorageConfig
	DynamoDB    DynamoDBConfig
	SQLite      SQLiteConfig
	Logging     LoggingConfig
	RateLimit   RateLimitConfig
}

// StorageConfig selects where service requests are written
type StorageConfig struct {
	Backend   string // "dynamodb", "sqlite" or "memory"
	TableName string
}

// DynamoDBConfig holds the DynamoDB client configuration
type DynamoDBConfig struct {
	Region          string
	Endpoint        string // custom endpoint, e.g. localstack
	AccessKeyID     string
	SecretAccessKey string
}

// SQLiteConfig holds the local database configuration
type SQLiteConfig struct {
	Path         string
	MaxOpenConns int
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string
	Format string // "text" or "json"
}

// RateLimitConfig holds limits for the local HTTP server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STORAGE_BACKEND", StorageBackendDynamoDB)
	v.SetDefault("TABLE_NAME", DefaultTableName)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SQLITE_PATH", "./data/service_requests.db")
	v.SetDefault("SQLITE_MAX_OPEN_CONNS", 1)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Storage: StorageConfig{
			Backend:   strings.ToLower(v.GetString("STORAGE_BACKEND")),
			TableName: v.GetString("TABLE_NAME"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		SQLite: SQLiteConfig{
			Path:         v.GetString("SQLITE_PATH"),
			MaxOpenConns: v.GetInt("SQLITE_MAX_OPEN_CONNS"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	// An empty TABLE_NAME counts as unset
	if strings.TrimSpace(config.Storage.TableName) == "" {
		config.Storage.TableName = DefaultTableName
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case StorageBackendDynamoDB, StorageBackendSQLite, StorageBackendMemory:
	default:
		return fmt.Errorf("unsupported storage backend: %q", c.Storage.Backend)
	}

	if c.Storage.Backend == StorageBackendSQLite && c.SQLite.Path == "" {
		return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
	}

	return nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
