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
	OSCE     OSCEConfig
	Batch    BatchConfig
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

// OSCEConfig holds the upstream OSCE endpoints and timeouts.
type OSCEConfig struct {
	FupBase     string
	ExpprovBase string
	Timeout     time.Duration
}

// BatchConfig holds the orchestrator knobs. It is injected explicitly into the
// batch service at construction so the core stays testable in isolation.
type BatchConfig struct {
	MaxConcurrent int
	MaxRetries    int
	RetryDelay    time.Duration
	ChunkSize     int
	ResultsDir    string
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
		OSCE: OSCEConfig{
			FupBase:     getEnv("OSCE_FUP_BASE", "https://apps.osce.gob.pe/perfilprov-ui/api/ficha-proveedor-cns"),
			ExpprovBase: getEnv("OSCE_EXPPROV_BASE", "https://apps.osce.gob.pe/perfilprov-ui/api/expprov-bus"),
			Timeout:     getEnvAsDuration("OSCE_API_TIMEOUT", 30*time.Second),
		},
		Batch: BatchConfig{
			MaxConcurrent: getEnvAsInt("BATCH_MAX_CONCURRENT", 20),
			MaxRetries:    getEnvAsInt("BATCH_MAX_RETRIES", 3),
			RetryDelay:    getEnvAsDuration("BATCH_RETRY_DELAY", 1*time.Second),
			ChunkSize:     getEnvAsInt("BATCH_CHUNK_SIZE", 100),
			ResultsDir:    getEnv("BATCH_RESULTS_DIR", "./batch_results"),
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
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OSCE.FupBase == "" {
		return NewAppError("CONFIG_ERROR", "OSCE_FUP_BASE is required", ErrInvalidInput)
	}
	if c.Batch.MaxConcurrent <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_MAX_CONCURRENT must be positive", ErrInvalidInput)
	}
	if c.Batch.ChunkSize <= 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_CHUNK_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
