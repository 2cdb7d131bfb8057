package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds document store configuration
type StorageConfig struct {
	RootDir string
}

// PipelineConfig holds processing-related configuration
type PipelineConfig struct {
	ProcessTimeout    time.Duration
	MaxAttempts       int
	Workers           int
	QueueSize         int
	ReviewThreshold   float32
	FlagLowConfidence bool
	OCRLanguages      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			RootDir: getEnv("STORAGE_ROOT", "./uploads"),
		},
		Pipeline: PipelineConfig{
			ProcessTimeout:    getEnvAsDuration("PROCESS_TIMEOUT", 30*time.Second),
			MaxAttempts:       getEnvAsInt("PROCESS_MAX_ATTEMPTS", 3),
			Workers:           getEnvAsInt("PROCESS_WORKERS", 4),
			QueueSize:         getEnvAsInt("PROCESS_QUEUE_SIZE", 256),
			ReviewThreshold:   getEnvAsFloat32("REVIEW_THRESHOLD", 0.60),
			FlagLowConfidence: getEnvAsBool("FLAG_LOW_CONFIDENCE", false),
			OCRLanguages:      getEnv("OCR_LANGUAGES", "ind+eng"),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", nil)
	}
	if c.Storage.RootDir == "" {
		return NewAppError("CONFIG_ERROR", "STORAGE_ROOT is required", nil)
	}
	if c.Pipeline.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "PROCESS_MAX_ATTEMPTS must be >= 1", nil)
	}
	return nil
}
