package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Token   TokenConfig
	Sweep   SweepConfig
	CORS    CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// StorageConfig holds the location of uploaded ledger stores
type StorageConfig struct {
	DataDir string
}

// TokenConfig holds the fernet key and lifetime for store tokens.
// An empty Key means a random key is generated at startup, which invalidates
// outstanding tokens on restart; uploads are session-scoped so that is the
// default.
type TokenConfig struct {
	Key string
	TTL time.Duration
}

// SweepConfig holds the schedule for removing stale uploaded stores
type SweepConfig struct {
	Schedule string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("STORE_TOKEN_TTL", "12h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_TOKEN_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./data/stores"),
		},
		Token: TokenConfig{
			Key: getEnv("STORE_TOKEN_KEY", ""),
			TTL: ttl,
		},
		Sweep: SweepConfig{
			Schedule: getEnv("STORE_SWEEP_SCHEDULE", "@every 1h"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
