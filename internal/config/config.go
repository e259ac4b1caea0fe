package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Dataset source. DatabaseURL takes precedence over DataFile when set.
	DataFile    string
	DatabaseURL string

	// Redis backs the rate limiter when set; otherwise limits are in-memory.
	RedisURL string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// RateLimit is the number of requests per minute allowed per IP.
	RateLimit int

	// Logging
	LogLevel  string // debug, info, warn, error
	LogFormat string // text or json

	// Charts
	ChartWidth  int
	ChartHeight int

	// Site Branding
	SiteTitle string // env: SITE_TITLE

	// ConfigFile is the optional YAML dashboard file.
	ConfigFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":8050"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8050"),
		DataFile:    getEnv("DATA_FILE", "data/spacex_launch_data.csv"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:   getEnv("TLS_CA_FILE", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),
		RateLimit:   getEnvInt("RATE_LIMIT", 100),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ChartWidth:  getEnvInt("CHART_WIDTH", 720),
		ChartHeight: getEnvInt("CHART_HEIGHT", 420),
		SiteTitle:   getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		ConfigFile:  getEnv("CONFIG_FILE", "dashboard.yaml"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}

// UsesDatabase reports whether records are loaded from Postgres.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}
