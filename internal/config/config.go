// Package config reads the runtime configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	APIURL          *url.URL
	Port            string
	ShutdownTimeout time.Duration

	// Logging
	LogFormat string

	// Database
	DataDir    string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		LogFormat: os.Getenv("LOG_FORMAT"),

		DataDir:    getEnv("DATA_DIR", "data"),
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     getEnv("DB_USER", "couplefin"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "couplefin"),
	}

	rawURL := getEnv("API_URL", "http://localhost:"+cfg.Port)
	apiURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API_URL '%s': %w", rawURL, err)
	}
	cfg.APIURL = apiURL

	return cfg, cfg.Validate()
}

// Postgres reports if the snapshots are stored in PostgreSQL instead of SQLite.
func (c *Config) Postgres() bool {
	return c.DBHost != ""
}

// SQLitePath is the path of the SQLite database file.
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "couplefin.db")
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIURL == nil || c.APIURL.Scheme == "" || c.APIURL.Host == "" {
		errors = append(errors, "API_URL must be an absolute URL, e.g. https://couplefin.example.com/api")
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.ShutdownTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	if c.Postgres() {
		if c.DBUser == "" {
			errors = append(errors, "DB_USER cannot be empty when DB_HOST is set")
		}
		if c.DBName == "" {
			errors = append(errors, "DB_NAME cannot be empty when DB_HOST is set")
		}
	} else if c.DataDir == "" {
		errors = append(errors, "DATA_DIR cannot be empty when using sqlite")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
