package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds client configuration.
type Config struct {
	APIBaseURL     string        // Base URL including the /api/v1 prefix
	RequestTimeout time.Duration // Transport-level timeout; requests are not otherwise aborted
	SessionFile    string        // Where the session context is serialized
	LocalStorePath string        // SQLite file backing the offline book store
	LogLevel       string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("CASHBOOK_API_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("CASHBOOK_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("CASHBOOK_SESSION_FILE", "")
	viper.SetDefault("CASHBOOK_LOCAL_STORE", "")
	viper.SetDefault("CASHBOOK_LOG_LEVEL", "info")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.APIBaseURL = viper.GetString("CASHBOOK_API_BASE_URL")
	cfg.LogLevel = viper.GetString("CASHBOOK_LOG_LEVEL")

	timeoutStr := viper.GetString("CASHBOOK_REQUEST_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 30 * time.Second
		log.Printf("Warning: Invalid value for CASHBOOK_REQUEST_TIMEOUT (%q). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.RequestTimeout = timeout

	cfg.SessionFile = viper.GetString("CASHBOOK_SESSION_FILE")
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultPath("session.toml")
	}
	cfg.LocalStorePath = viper.GetString("CASHBOOK_LOCAL_STORE")
	if cfg.LocalStorePath == "" {
		cfg.LocalStorePath = defaultPath("offline.db")
	}

	return cfg, nil
}

func defaultPath(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		// Fall back to the working directory when no home is resolvable.
		return name
	}
	return filepath.Join(base, "cashbookctl", name)
}
